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

func TestSubs1ReplacesSymbol(t *testing.T) {
	x := expr.Sym("x")
	sq := expr.Pow(x, expr.NewNumeric(numeric.Two))
	r, err := expr.Subs1(sq, x, expr.NewNumeric(numeric.IntegerFromInt64(3)))
	require.NoError(t, err)
	v, ok := r.Numeric()
	require.True(t, ok)
	require.Equal(t, "9", v.String())
}

func TestSubsSimultaneousDoesNotChain(t *testing.T) {
	x, y := expr.Sym("x"), expr.Sym("y")
	sum, err := expr.Add(x, y)
	require.NoError(t, err)
	r, err := expr.Subs(sum, []expr.Handle{x, y}, []expr.Handle{y, x})
	require.NoError(t, err)
	require.True(t, expr.Equal(r, sum))
}

func TestSubsMismatchedLengthsFails(t *testing.T) {
	x, y := expr.Sym("x"), expr.Sym("y")
	_, err := expr.Subs(x, []expr.Handle{x}, []expr.Handle{x, y})
	require.Error(t, err)
}

func TestHasDetectsOccurrence(t *testing.T) {
	x, y := expr.Sym("x"), expr.Sym("y")
	sum, err := expr.Add(x, y)
	require.NoError(t, err)
	require.True(t, sum.Has(x))
	require.False(t, sum.Has(expr.Sym("z")))
}
