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

func buildPoly(t *testing.T, x expr.Handle) expr.Handle {
	t.Helper()
	// 3*x^2 + 2*x + 5
	t1 := expr.Pow(x, expr.NewNumeric(numeric.Two))
	t1, err := expr.Mul(expr.NewNumeric(numeric.IntegerFromInt64(3)), t1)
	require.NoError(t, err)
	t2, err := expr.Mul(expr.NewNumeric(numeric.Two), x)
	require.NoError(t, err)
	t3 := expr.NewNumeric(numeric.IntegerFromInt64(5))
	sum, err := expr.Add(t1, t2)
	require.NoError(t, err)
	sum, err = expr.Add(sum, t3)
	require.NoError(t, err)
	return sum
}

func TestDegreeAndLdegree(t *testing.T) {
	x := expr.Sym("x")
	p := buildPoly(t, x)
	deg, err := expr.Degree(p, x)
	require.NoError(t, err)
	require.Equal(t, 2, deg)
	ldeg, err := expr.Ldegree(p, x)
	require.NoError(t, err)
	require.Equal(t, 0, ldeg)
}

func TestCoeffExtractsEachDegree(t *testing.T) {
	x := expr.Sym("x")
	p := buildPoly(t, x)
	c2, err := expr.Coeff(p, x, 2)
	require.NoError(t, err)
	v2, ok := c2.Numeric()
	require.True(t, ok)
	require.Equal(t, "3", v2.String())

	c1, err := expr.Coeff(p, x, 1)
	require.NoError(t, err)
	v1, ok := c1.Numeric()
	require.True(t, ok)
	require.Equal(t, "2", v1.String())

	c0, err := expr.Coeff(p, x, 0)
	require.NoError(t, err)
	v0, ok := c0.Numeric()
	require.True(t, ok)
	require.Equal(t, "5", v0.String())
}

func TestCollectRoundTrips(t *testing.T) {
	x := expr.Sym("x")
	p := buildPoly(t, x)
	collected, err := expr.Collect(p, x)
	require.NoError(t, err)
	require.True(t, expr.Equal(p, collected))
}
