// Copyright 2014 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package numeric

import (
	"fmt"
	"math/big"
)

// Float is an arbitrary-precision, inexact real number, grounded on
// ivy's BigFloat (value/bigfloat.go). Its precision is fixed at
// construction time; conversion back to an exact rational is not
// automatic — there is deliberately no Float.Rational method here.
type Float struct {
	*big.Float
	prec uint
}

// NewFloat wraps f as a Float at f's own precision.
func NewFloat(f *big.Float) Float {
	return Float{f, f.Prec()}
}

// FloatFromFloat64 constructs a Float at the given precision (bits)
// from a machine float.
func FloatFromFloat64(x float64, prec uint) Float {
	return Float{new(big.Float).SetPrec(prec).SetFloat64(x), prec}
}

// ParseFloat parses s at the given precision.
func ParseFloat(s string, prec uint) (Float, error) {
	f, _, err := big.ParseFloat(s, 10, prec, big.ToNearestEven)
	if err != nil {
		return Float{}, err
	}
	return Float{f, prec}, nil
}

func (f Float) Kind() Kind { return KindFloat }

func (f Float) String() string {
	if format := cfg().Format(); format != "" {
		return fmt.Sprintf(format, f.Float)
	}
	return f.Float.Text('g', int(float64(f.prec)*0.30103)+1)
}

// maxPrec returns the wider of f's and o's precision, so a mixed-
// precision operation never silently loses digits from the more
// precise operand.
func maxPrec(f, o Float) uint {
	if f.prec > o.prec {
		return f.prec
	}
	return o.prec
}

func (f Float) Add(o Number) Number {
	j := o.(Float)
	p := maxPrec(f, j)
	return Float{new(big.Float).SetPrec(p).Add(f.Float, j.Float), p}
}

func (f Float) Sub(o Number) Number {
	j := o.(Float)
	p := maxPrec(f, j)
	return Float{new(big.Float).SetPrec(p).Sub(f.Float, j.Float), p}
}

func (f Float) Mul(o Number) Number {
	j := o.(Float)
	p := maxPrec(f, j)
	return Float{new(big.Float).SetPrec(p).Mul(f.Float, j.Float), p}
}

func (f Float) Div(o Number) (Number, error) {
	j := o.(Float)
	if j.Sign() == 0 {
		return nil, ErrArithmetic.New("division by zero")
	}
	p := maxPrec(f, j)
	return Float{new(big.Float).SetPrec(p).Quo(f.Float, j.Float), p}, nil
}

func (f Float) Neg() Number {
	return Float{new(big.Float).SetPrec(f.prec).Neg(f.Float), f.prec}
}

// Pow raises f to a power via repeated squaring for integer exponents
// (the only exponent form the float kind is asked to evaluate; non-
// integer real exponents belong to the function registry's pow/exp/log
// bodies, outside the numeric backend's scope).
func (f Float) Pow(o Number) (Number, error) {
	exp, ok := o.(Integer)
	if !ok {
		return nil, errDomain.New(fmt.Sprintf("float exponentiation requires an integer exponent, got %s", o.Kind()))
	}
	if exp.Sign() == 0 {
		return Float{new(big.Float).SetPrec(f.prec).SetInt64(1), f.prec}, nil
	}
	if f.Sign() == 0 && exp.Sign() < 0 {
		return nil, ErrArithmetic.New("zero to a negative power")
	}
	n := exp.Int.Int64()
	neg := n < 0
	if neg {
		n = -n
	}
	acc := new(big.Float).SetPrec(f.prec).SetInt64(1)
	base := new(big.Float).SetPrec(f.prec).Set(f.Float)
	for n > 0 {
		if n&1 == 1 {
			acc.Mul(acc, base)
		}
		base.Mul(base, base)
		n >>= 1
	}
	if neg {
		one := new(big.Float).SetPrec(f.prec).SetInt64(1)
		acc.Quo(one, acc)
	}
	return Float{acc, f.prec}, nil
}

func (f Float) Cmp(o Number) (int, bool) {
	j, ok := o.(Float)
	if !ok {
		return 0, false
	}
	return f.Float.Cmp(j.Float), true
}

func (f Float) Equal(o Number) bool {
	j, ok := o.(Float)
	return ok && f.Float.Cmp(j.Float) == 0
}

func (f Float) IsZero() bool     { return f.Sign() == 0 }
func (f Float) IsOne() bool      { return f.Float.Cmp(big.NewFloat(1)) == 0 }
func (f Float) IsMinusOne() bool { return f.Float.Cmp(big.NewFloat(-1)) == 0 }
func (f Float) IsInteger() bool  { return f.Float.IsInt() }
func (f Float) IsRational() bool { return false }
func (f Float) IsReal() bool     { return true }
func (f Float) IsPositive() bool { return f.Sign() > 0 }

func (f Float) hashBits() uint64 {
	return fnvString(f.Float.Text('g', -1))
}

// Precision returns f's precision in bits.
func (f Float) Precision() uint { return f.prec }
