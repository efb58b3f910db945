// Copyright 2014 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expr_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"gocas.dev/gocas/expr"
)

func TestEqualIgnoresContainerSliceComparability(t *testing.T) {
	x, y := expr.Sym("x"), expr.Sym("y")
	a, err := expr.Add(x, y)
	require.NoError(t, err)
	b, err := expr.Add(y, x)
	require.NoError(t, err)
	// Both a and b wrap an expairseq, whose pairs field is a slice; this
	// must not panic trying to compare the node interfaces directly.
	require.True(t, expr.Equal(a, b))
}

func TestEqualDistinguishesDifferentSums(t *testing.T) {
	x, y := expr.Sym("x"), expr.Sym("y")
	a, err := expr.Add(x, y)
	require.NoError(t, err)
	require.False(t, expr.Equal(a, x))
}

func TestCompareOrdersByKindThenValue(t *testing.T) {
	require.NotEqual(t, 0, expr.Compare(n(1), expr.Sym("x")))
	require.Equal(t, 0, expr.Compare(n(1), n(1)))
}
