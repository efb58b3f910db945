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

func TestSumCombinesLikeTerms(t *testing.T) {
	x := expr.Sym("x")
	sum, err := expr.Add(x, x)
	require.NoError(t, err)
	require.True(t, sum.IsProduct())
	require.Equal(t, "2*x", sum.String())
}

func TestSumDropsZeroCoefficient(t *testing.T) {
	x := expr.Sym("x")
	neg, err := expr.Sub(x, x)
	require.NoError(t, err)
	require.True(t, neg.IsNumeric())
	v, ok := neg.Numeric()
	require.True(t, ok)
	require.True(t, v.IsZero())
}

func TestSumCollapsesSingleton(t *testing.T) {
	x := expr.Sym("x")
	s := expr.NewNumeric(numeric.Zero)
	sum, err := expr.Add(x, s)
	require.NoError(t, err)
	require.True(t, expr.Equal(sum, x))
}

func TestProductFoldsOverallCoefficient(t *testing.T) {
	x := expr.Sym("x")
	p, err := expr.Mul(expr.NewNumeric(numeric.Two), x)
	require.NoError(t, err)
	p2, err := expr.Mul(p, expr.NewNumeric(numeric.IntegerFromInt64(3)))
	require.NoError(t, err)
	require.True(t, p2.IsProduct())
	require.Equal(t, "6*x", p2.String())
}

func TestProductCombinesPowersOfSameBase(t *testing.T) {
	x := expr.Sym("x")
	p, err := expr.Mul(x, x)
	require.NoError(t, err)
	require.True(t, p.IsPower())
	require.True(t, expr.Equal(p.Exponent(), expr.NewNumeric(numeric.Two)))
}

func TestFloatContaminatesOverallCoefficient(t *testing.T) {
	x := expr.Sym("x")
	half := expr.NewNumeric(numeric.FloatFromFloat64(0.5, 64))
	sum, err := expr.Add(x, half)
	require.NoError(t, err)
	require.True(t, sum.IsSum())
}

func TestSumCommutesOperandOrder(t *testing.T) {
	x, y := expr.Sym("x"), expr.Sym("y")
	a, err := expr.Add(x, y)
	require.NoError(t, err)
	b, err := expr.Add(y, x)
	require.NoError(t, err)
	require.True(t, expr.Equal(a, b))
}

func TestNestedSumFlattens(t *testing.T) {
	x, y, z := expr.Sym("x"), expr.Sym("y"), expr.Sym("z")
	inner, err := expr.Add(x, y)
	require.NoError(t, err)
	outer, err := expr.Add(inner, z)
	require.NoError(t, err)
	require.Equal(t, 3, outer.Nops())
}
