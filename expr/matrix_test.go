// Copyright 2014 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expr_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"gocas.dev/gocas/expr"
	"gocas.dev/gocas/numeric"
)

func n(v int64) expr.Handle { return expr.NewNumeric(numeric.IntegerFromInt64(v)) }

func TestMatrixElementwiseAdd(t *testing.T) {
	a, err := expr.NewMatrix(2, 2, []expr.Handle{n(1), n(2), n(3), n(4)})
	require.NoError(t, err)
	b, err := expr.NewMatrix(2, 2, []expr.Handle{n(10), n(20), n(30), n(40)})
	require.NoError(t, err)
	sum, err := expr.Add(a, b)
	require.NoError(t, err)
	rows, cols := sum.Dims()
	require.Equal(t, 2, rows)
	require.Equal(t, 2, cols)
	v, ok := sum.At(0, 0).Numeric()
	require.True(t, ok)
	require.Equal(t, "11", v.String())
}

func TestMatrixShapeMismatchErrors(t *testing.T) {
	a, err := expr.NewMatrix(1, 2, []expr.Handle{n(1), n(2)})
	require.NoError(t, err)
	b, err := expr.NewMatrix(2, 1, []expr.Handle{n(1), n(2)})
	require.NoError(t, err)
	_, err = expr.Add(a, b)
	require.Error(t, err)
}

func TestMatrixScale(t *testing.T) {
	a, err := expr.NewMatrix(1, 2, []expr.Handle{n(1), n(2)})
	require.NoError(t, err)
	scaled, err := expr.Mul(n(3), a)
	require.NoError(t, err)
	v, ok := scaled.At(0, 1).Numeric()
	require.True(t, ok)
	require.Equal(t, "6", v.String())
}

func TestMatrixHadamardMultiply(t *testing.T) {
	a, err := expr.NewMatrix(1, 2, []expr.Handle{n(2), n(3)})
	require.NoError(t, err)
	b, err := expr.NewMatrix(1, 2, []expr.Handle{n(4), n(5)})
	require.NoError(t, err)
	prod, err := expr.Mul(a, b)
	require.NoError(t, err)
	v0, _ := prod.At(0, 0).Numeric()
	v1, _ := prod.At(0, 1).Numeric()
	require.Equal(t, "8", v0.String())
	require.Equal(t, "15", v1.String())
}

func TestMatrixBadDataLength(t *testing.T) {
	_, err := expr.NewMatrix(2, 2, []expr.Handle{n(1), n(2)})
	require.Error(t, err)
}

func TestMatrixAndScalarAddIsDomainError(t *testing.T) {
	a, err := expr.NewMatrix(1, 1, []expr.Handle{n(1)})
	require.NoError(t, err)
	_, err = expr.Add(a, n(1))
	require.Error(t, err)
}
