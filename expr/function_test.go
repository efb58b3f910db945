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

func TestFunctionEvalFoldsNumericArgs(t *testing.T) {
	expr.RegisterFunction("double", expr.FunctionHooks{
		Eval: func(args []numeric.Number) (numeric.Number, error) {
			return numeric.Mul(args[0], numeric.Two)
		},
	})
	r := expr.NewFunction("double", []expr.Handle{n(21)})
	v, ok := r.Numeric()
	require.True(t, ok)
	require.Equal(t, "42", v.String())
}

func TestFunctionStaysSymbolicOverSymbol(t *testing.T) {
	expr.RegisterFunction("triple", expr.FunctionHooks{
		Eval: func(args []numeric.Number) (numeric.Number, error) {
			return numeric.Mul(args[0], numeric.IntegerFromInt64(3))
		},
	})
	x := expr.Sym("x")
	r := expr.NewFunction("triple", []expr.Handle{x})
	require.True(t, r.IsFunction())
	name, ok := r.FunctionName()
	require.True(t, ok)
	require.Equal(t, "triple", name)
}

func TestFunctionDiffChainRule(t *testing.T) {
	expr.RegisterFunction("sq", expr.FunctionHooks{
		Eval: func(args []numeric.Number) (numeric.Number, error) {
			return numeric.Mul(args[0], args[0])
		},
		Diff: func(args []expr.Handle, i int) (expr.Handle, error) {
			two := expr.NewNumeric(numeric.Two)
			p, err := expr.Mul(two, args[0])
			return p, err
		},
	})
	x := expr.Sym("x")
	sum, err := expr.Add(x, expr.NewNumeric(numeric.One))
	require.NoError(t, err)
	f := expr.NewFunction("sq", []expr.Handle{sum})
	d, err := expr.Diff(f, x)
	require.NoError(t, err)
	expanded, err := expr.Expand(d)
	require.NoError(t, err)
	require.Equal(t, "2*x + 2", expanded.String())
}
