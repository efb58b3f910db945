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

func TestPowerZeroExponent(t *testing.T) {
	x := expr.Sym("x")
	p := expr.Pow(x, expr.NewNumeric(numeric.Zero))
	require.True(t, p.IsNumeric())
	v, _ := p.Numeric()
	require.True(t, v.IsOne())
}

func TestPowerOneExponent(t *testing.T) {
	x := expr.Sym("x")
	p := expr.Pow(x, expr.NewNumeric(numeric.One))
	require.True(t, expr.Equal(p, x))
}

func TestPowerOneBase(t *testing.T) {
	y := expr.Sym("y")
	p := expr.Pow(expr.NewNumeric(numeric.One), y)
	v, ok := p.Numeric()
	require.True(t, ok)
	require.True(t, v.IsOne())
}

func TestPowerNumericFold(t *testing.T) {
	p := expr.Pow(expr.NewNumeric(numeric.Two), expr.NewNumeric(numeric.IntegerFromInt64(10)))
	v, ok := p.Numeric()
	require.True(t, ok)
	require.Equal(t, "1024", v.String())
}

func TestPowerNestedExponentsCombine(t *testing.T) {
	x := expr.Sym("x")
	inner := expr.Pow(x, expr.NewNumeric(numeric.Two))
	outer := expr.Pow(inner, expr.NewNumeric(numeric.IntegerFromInt64(3)))
	require.True(t, outer.IsPower())
	require.True(t, expr.Equal(outer.Base(), x))
	require.True(t, expr.Equal(outer.Exponent(), expr.NewNumeric(numeric.IntegerFromInt64(6))))
}

func TestPowerSymbolicDivisionStaysSymbolic(t *testing.T) {
	x := expr.Sym("x")
	inv := expr.Pow(x, expr.NewNumeric(numeric.MinusOne))
	require.True(t, inv.IsPower())
}

func TestDivByZeroIsArithmeticError(t *testing.T) {
	x := expr.Sym("x")
	_, err := expr.Div(x, expr.NewNumeric(numeric.Zero))
	require.Error(t, err)
	require.True(t, numeric.ErrArithmetic.Is(err))
}

func TestDivBuildsReciprocalPower(t *testing.T) {
	x, y := expr.Sym("x"), expr.Sym("y")
	q, err := expr.Div(x, y)
	require.NoError(t, err)
	require.True(t, q.IsProduct())
}

func TestPowerExpandMultinomial(t *testing.T) {
	x, y := expr.Sym("x"), expr.Sym("y")
	sum, err := expr.Add(x, y)
	require.NoError(t, err)
	sq := expr.Pow(sum, expr.NewNumeric(numeric.Two))
	expanded, err := expr.Expand(sq)
	require.NoError(t, err)
	require.True(t, expanded.IsSum())
	require.Equal(t, 3, expanded.Nops())
}
