// Copyright 2014 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expr_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"gocas.dev/gocas/expr"
)

func TestListPreservesOrderAndDoesNotCombine(t *testing.T) {
	x := expr.Sym("x")
	l := expr.NewList([]expr.Handle{n(1), x, n(1)})
	require.True(t, l.IsList())
	require.Equal(t, 3, l.Nops())
	require.Equal(t, "[1, x, 1]", l.String())
}

func TestTupleIsDistinctFromList(t *testing.T) {
	tup := expr.NewTuple([]expr.Handle{n(1), n(2)})
	require.True(t, tup.IsTuple())
	require.False(t, tup.IsList())
	require.Equal(t, "(1, 2)", tup.String())
}

func TestListSubstitutesElementwise(t *testing.T) {
	x := expr.Sym("x")
	l := expr.NewList([]expr.Handle{x, n(2)})
	r, err := l.Subs([]expr.Handle{x}, []expr.Handle{n(9)})
	require.NoError(t, err)
	require.Equal(t, "[9, 2]", r.String())
}
