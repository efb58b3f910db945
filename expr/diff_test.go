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

func TestDiffSumRule(t *testing.T) {
	x := expr.Sym("x")
	sum, err := expr.Add(x, expr.NewNumeric(numeric.IntegerFromInt64(5)))
	require.NoError(t, err)
	d, err := expr.Diff(sum, x)
	require.NoError(t, err)
	require.True(t, d.IsNumeric())
	v, _ := d.Numeric()
	require.True(t, v.IsOne())
}

func TestDiffProductRule(t *testing.T) {
	x := expr.Sym("x")
	sq, err := expr.Mul(x, x)
	require.NoError(t, err)
	d, err := expr.Diff(sq, x)
	require.NoError(t, err)
	require.True(t, d.IsProduct())
	require.Equal(t, "2*x", d.String())
}

func TestDiffPowerRuleConstantExponent(t *testing.T) {
	x := expr.Sym("x")
	cube := expr.Pow(x, expr.NewNumeric(numeric.IntegerFromInt64(3)))
	d, err := expr.Diff(cube, x)
	require.NoError(t, err)
	require.Equal(t, "3*x^2", d.String())
}

func TestDiffOfUnrelatedSymbolIsZero(t *testing.T) {
	x, y := expr.Sym("x"), expr.Sym("y")
	d, err := expr.Diff(y, x)
	require.NoError(t, err)
	v, ok := d.Numeric()
	require.True(t, ok)
	require.True(t, v.IsZero())
}

func TestDiffUnregisteredFunctionFails(t *testing.T) {
	x := expr.Sym("x")
	f := expr.NewFunction("mystery", []expr.Handle{x})
	d, err := expr.Diff(f, x)
	require.NoError(t, err)
	require.True(t, d.IsFail())
}

func TestDiffNRepeated(t *testing.T) {
	x := expr.Sym("x")
	quart := expr.Pow(x, expr.NewNumeric(numeric.IntegerFromInt64(4)))
	d2, err := expr.DiffN(quart, x, 2)
	require.NoError(t, err)
	require.Equal(t, "12*x^2", d2.String())
}

func TestDiffNCProductRule(t *testing.T) {
	a, b := expr.NewSymbol("A"), expr.NewSymbol("B")
	x := expr.Sym("x")
	prod := expr.NCMul(a, b)
	d, err := expr.Diff(prod, x)
	require.NoError(t, err)
	v, ok := d.Numeric()
	require.True(t, ok)
	require.True(t, v.IsZero())
}
