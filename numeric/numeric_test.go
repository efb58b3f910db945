// Copyright 2014 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package numeric_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"gocas.dev/gocas/numeric"
)

func TestIntegerArithmetic(t *testing.T) {
	a := numeric.IntegerFromInt64(6)
	b := numeric.IntegerFromInt64(4)

	sum, err := numeric.Add(a, b)
	require.NoError(t, err)
	require.Equal(t, "10", sum.String())

	prod, err := numeric.Mul(a, b)
	require.NoError(t, err)
	require.Equal(t, "24", prod.String())

	// 6/4 is not exact over the integers: Div promotes to Rational.
	quo, err := numeric.Div(a, b)
	require.NoError(t, err)
	require.Equal(t, numeric.KindRational, quo.Kind())
	require.Equal(t, "3/2", quo.String())
}

func TestDivisionByZero(t *testing.T) {
	a := numeric.IntegerFromInt64(1)
	_, err := numeric.Div(a, numeric.Zero)
	require.Error(t, err)
	require.True(t, numeric.ErrArithmetic.Is(err))
}

func TestRationalShrinksToInteger(t *testing.T) {
	r := numeric.RationalFromInt64s(10, 5)
	sum, err := numeric.Add(r, numeric.Zero)
	require.NoError(t, err)
	require.Equal(t, numeric.KindInteger, sum.Kind())
	require.Equal(t, "2", sum.String())
}

func TestComplexArithmetic(t *testing.T) {
	i := numeric.NewComplex(numeric.RationalFromInt64s(0, 1), numeric.RationalFromInt64s(1, 1))
	sq, err := numeric.Mul(i, i)
	require.NoError(t, err)
	// i*i == -1, which shrinks all the way down to Integer.
	require.Equal(t, numeric.KindInteger, sq.Kind())
	require.True(t, sq.IsMinusOne())
}

func TestComplexDivision(t *testing.T) {
	one := numeric.NewComplex(numeric.RationalFromInt64s(1, 1), numeric.RationalFromInt64s(0, 1))
	i := numeric.NewComplex(numeric.RationalFromInt64s(0, 1), numeric.RationalFromInt64s(1, 1))
	quo, err := numeric.Div(one, i)
	require.NoError(t, err)
	// 1/i == -i
	require.Equal(t, numeric.KindComplex, quo.Kind())
	c := quo.(numeric.Complex)
	require.True(t, c.Re().IsZero())
	require.Equal(t, "-1", c.Im().String())
}

func TestFloatPromotion(t *testing.T) {
	f := numeric.FloatFromFloat64(1.5, 64)
	sum, err := numeric.Add(numeric.One, f)
	require.NoError(t, err)
	require.Equal(t, numeric.KindFloat, sum.Kind())
}

func TestPowNegativeExponent(t *testing.T) {
	two := numeric.IntegerFromInt64(2)
	r, err := numeric.Pow(two, numeric.IntegerFromInt64(-1))
	require.NoError(t, err)
	require.Equal(t, "1/2", r.String())
}

func TestEqualAndCmp(t *testing.T) {
	require.True(t, numeric.Equal(numeric.RationalFromInt64s(2, 1), numeric.IntegerFromInt64(2)))
	sign, ok := numeric.Cmp(numeric.IntegerFromInt64(3), numeric.IntegerFromInt64(5))
	require.True(t, ok)
	require.Equal(t, -1, sign)
}
