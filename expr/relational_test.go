// Copyright 2014 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expr_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"gocas.dev/gocas/expr"
)

func TestRelationalFoldsNumericTrue(t *testing.T) {
	r := n(3).Lt(n(5))
	v, ok := r.Numeric()
	require.True(t, ok)
	require.True(t, v.IsOne())
}

func TestRelationalFoldsNumericFalse(t *testing.T) {
	r := n(5).Lt(n(3))
	v, ok := r.Numeric()
	require.True(t, ok)
	require.True(t, v.IsZero())
}

func TestRelationalStaysSymbolicOverSymbol(t *testing.T) {
	x := expr.Sym("x")
	r := x.Eq(n(5))
	require.True(t, r.IsRelational())
}

func TestRelationalEquality(t *testing.T) {
	r := n(4).Eq(n(4))
	v, ok := r.Numeric()
	require.True(t, ok)
	require.True(t, v.IsOne())
}
