// Copyright 2014 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package numeric

import (
	"fmt"
	"math/big"
)

// Integer is an arbitrary-precision exact integer, grounded on ivy's
// BigInt (value/bigint.go): a thin wrapper embedding *big.Int so the
// stdlib's arithmetic does the heavy lifting.
type Integer struct {
	*big.Int
}

// NewInteger wraps x as an Integer.
func NewInteger(x *big.Int) Integer {
	return Integer{x}
}

// IntegerFromInt64 constructs an Integer from a machine integer.
func IntegerFromInt64(x int64) Integer {
	return Integer{big.NewInt(x)}
}

// ParseInteger parses s in the given base (0 means auto-detect, as
// strconv/big.Int.SetString does).
func ParseInteger(s string, base int) (Integer, bool) {
	z, ok := new(big.Int).SetString(s, base)
	if !ok {
		return Integer{}, false
	}
	return Integer{z}, true
}

func (i Integer) Kind() Kind { return KindInteger }

func (i Integer) String() string {
	if format := cfg().Format(); format != "" {
		return fmt.Sprintf(format, i.Int)
	}
	base := cfg().OutputBase()
	switch base {
	case 0, 10:
		return i.Int.String()
	case 2:
		return i.Int.Text(2)
	case 8:
		return i.Int.Text(8)
	case 16:
		return i.Int.Text(16)
	}
	return i.Int.Text(base)
}

func (i Integer) Add(o Number) Number {
	j := o.(Integer)
	return Integer{new(big.Int).Add(i.Int, j.Int)}
}

func (i Integer) Sub(o Number) Number {
	j := o.(Integer)
	return Integer{new(big.Int).Sub(i.Int, j.Int)}
}

func (i Integer) Mul(o Number) Number {
	j := o.(Integer)
	return Integer{new(big.Int).Mul(i.Int, j.Int)}
}

func (i Integer) Div(o Number) (Number, error) {
	j := o.(Integer)
	if j.Sign() == 0 {
		return nil, ErrArithmetic.New("division by zero")
	}
	q, r := new(big.Int).QuoRem(i.Int, j.Int, new(big.Int))
	if r.Sign() == 0 {
		return Integer{q}, nil
	}
	// Division doesn't stay exact over the integers; promote to rational.
	return i.Rational().Div(j.Rational())
}

func (i Integer) Neg() Number {
	return Integer{new(big.Int).Neg(i.Int)}
}

func (i Integer) Pow(o Number) (Number, error) {
	j, ok := o.(Integer)
	if !ok {
		r, err := i.Rational().Pow(o)
		return r, err
	}
	if j.Sign() < 0 {
		r, err := i.Rational().Pow(j)
		return r, err
	}
	if j.BitLen() > 63 {
		return nil, ErrArithmetic.New("exponent too large")
	}
	return Integer{new(big.Int).Exp(i.Int, j.Int, nil)}, nil
}

func (i Integer) Cmp(o Number) (int, bool) {
	j, ok := o.(Integer)
	if !ok {
		return 0, false
	}
	return i.Int.Cmp(j.Int), true
}

func (i Integer) Equal(o Number) bool {
	j, ok := o.(Integer)
	return ok && i.Int.Cmp(j.Int) == 0
}

func (i Integer) IsZero() bool      { return i.Sign() == 0 }
func (i Integer) IsOne() bool       { return i.Int.Cmp(big.NewInt(1)) == 0 }
func (i Integer) IsMinusOne() bool  { return i.Int.Cmp(big.NewInt(-1)) == 0 }
func (i Integer) IsInteger() bool   { return true }
func (i Integer) IsRational() bool  { return true }
func (i Integer) IsReal() bool      { return true }
func (i Integer) IsPositive() bool  { return i.Sign() > 0 }

func (i Integer) hashBits() uint64 {
	return fnvBytes(i.Int.Bytes())
}

// Rational returns i as an exact rational with denominator 1.
func (i Integer) Rational() Rational {
	return Rational{new(big.Rat).SetInt(i.Int)}
}

// Float converts i to an arbitrary-precision float at the given
// precision (in bits).
func (i Integer) Float(prec uint) Float {
	f := new(big.Float).SetPrec(prec).SetInt(i.Int)
	return Float{f, prec}
}
