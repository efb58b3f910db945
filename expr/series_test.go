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

func TestSeriesExpandPolynomialExact(t *testing.T) {
	x := expr.Sym("x")
	sq := expr.Pow(x, expr.NewNumeric(numeric.Two))
	s, err := expr.SeriesExpand(sq, x, expr.NewNumeric(numeric.Zero), 4)
	require.NoError(t, err)
	require.True(t, s.IsSeries())
	require.Equal(t, 4, s.Nops())
	// coefficient of x^2 is 1, x^0 and x^1 are 0.
	c0, ok := s.Op(0).Numeric()
	require.True(t, ok)
	require.True(t, c0.IsZero())
	c2, ok := s.Op(2).Numeric()
	require.True(t, ok)
	require.True(t, c2.IsOne())
}

func TestSeriesExpandNegativeOrderFails(t *testing.T) {
	x := expr.Sym("x")
	_, err := expr.SeriesExpand(x, x, expr.NewNumeric(numeric.Zero), -1)
	require.Error(t, err)
}

func TestSeriesExpandRequiresSymbol(t *testing.T) {
	x := expr.Sym("x")
	notASymbol := expr.NewNumeric(numeric.One)
	_, err := expr.SeriesExpand(x, notASymbol, expr.NewNumeric(numeric.Zero), 2)
	require.Error(t, err)
}
