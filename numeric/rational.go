// Copyright 2014 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package numeric

import (
	"fmt"
	"math/big"
)

// Rational is an exact ratio of arbitrary-precision integers, grounded
// on ivy's BigRat (value/bigrat.go).
type Rational struct {
	*big.Rat
}

// NewRational wraps r as a Rational.
func NewRational(r *big.Rat) Rational {
	return Rational{r}
}

// RationalFromInt64s constructs num/den.
func RationalFromInt64s(num, den int64) Rational {
	return Rational{big.NewRat(num, den)}
}

// ParseRational parses s as "num/den" or a decimal.
func ParseRational(s string) (Rational, bool) {
	r, ok := new(big.Rat).SetString(s)
	if !ok {
		return Rational{}, false
	}
	return Rational{r}, true
}

func (r Rational) Kind() Kind { return KindRational }

func (r Rational) String() string {
	if r.IsInt() {
		return Integer{r.Num()}.String()
	}
	if format := cfg().Format(); format != "" {
		return fmt.Sprintf(cfg().RatFormat(), r.Num(), r.Denom())
	}
	return fmt.Sprintf("%s/%s", Integer{r.Num()}, Integer{r.Denom()})
}

func (r Rational) Add(o Number) Number {
	return shrinkRational(new(big.Rat).Add(r.Rat, o.(Rational).Rat))
}

func (r Rational) Sub(o Number) Number {
	return shrinkRational(new(big.Rat).Sub(r.Rat, o.(Rational).Rat))
}

func (r Rational) Mul(o Number) Number {
	return shrinkRational(new(big.Rat).Mul(r.Rat, o.(Rational).Rat))
}

func (r Rational) Div(o Number) (Number, error) {
	j := o.(Rational)
	if j.Sign() == 0 {
		return nil, ErrArithmetic.New("division by zero")
	}
	return shrinkRational(new(big.Rat).Quo(r.Rat, j.Rat)), nil
}

func (r Rational) Neg() Number {
	return Rational{new(big.Rat).Neg(r.Rat)}
}

// Pow raises r to an integer power. A non-integer exponent is a domain
// error at this kind; the expression layer instead keeps such powers
// symbolic (expr's power node) rather than calling Pow here.
func (r Rational) Pow(o Number) (Number, error) {
	exp, ok := o.(Integer)
	if !ok {
		return nil, errDomain.New(fmt.Sprintf("rational exponentiation requires an integer exponent, got %s", o.Kind()))
	}
	if exp.Sign() == 0 {
		return One, nil
	}
	if r.Sign() == 0 && exp.Sign() < 0 {
		return nil, ErrArithmetic.New("zero to a negative power")
	}
	if exp.BitLen() > 63 {
		return nil, ErrArithmetic.New("exponent too large")
	}
	n := exp.Int.Int64()
	neg := n < 0
	if neg {
		n = -n
	}
	num := new(big.Int).Exp(r.Num(), big.NewInt(n), nil)
	den := new(big.Int).Exp(r.Denom(), big.NewInt(n), nil)
	z := new(big.Rat)
	if neg {
		z.SetFrac(den, num)
	} else {
		z.SetFrac(num, den)
	}
	return shrinkRational(z), nil
}

func (r Rational) Cmp(o Number) (int, bool) {
	j, ok := o.(Rational)
	if !ok {
		return 0, false
	}
	return r.Rat.Cmp(j.Rat), true
}

func (r Rational) Equal(o Number) bool {
	j, ok := o.(Rational)
	return ok && r.Rat.Cmp(j.Rat) == 0
}

func (r Rational) IsZero() bool     { return r.Sign() == 0 }
func (r Rational) IsOne() bool      { return r.IsInt() && r.Num().Cmp(big.NewInt(1)) == 0 }
func (r Rational) IsMinusOne() bool { return r.IsInt() && r.Num().Cmp(big.NewInt(-1)) == 0 }
func (r Rational) IsInteger() bool  { return r.IsInt() }
func (r Rational) IsRational() bool { return true }
func (r Rational) IsReal() bool     { return true }
func (r Rational) IsPositive() bool { return r.Sign() > 0 }

func (r Rational) hashBits() uint64 {
	return fnvBytes(r.Num().Bytes())*31 + fnvBytes(r.Denom().Bytes())
}

// Float converts r to an arbitrary-precision float at the given
// precision (in bits).
func (r Rational) Float(prec uint) Float {
	f := new(big.Float).SetPrec(prec).SetRat(r.Rat)
	return Float{f, prec}
}

// rawAdd, rawSub, rawMul, rawNeg perform rational arithmetic without
// the numeric-folding shrink to Integer, so callers that need to stay
// in Rational (e.g. Complex's component-wise arithmetic) can chain
// them without a fragile type assertion.
func (r Rational) rawAdd(o Rational) Rational { return Rational{new(big.Rat).Add(r.Rat, o.Rat)} }
func (r Rational) rawSub(o Rational) Rational { return Rational{new(big.Rat).Sub(r.Rat, o.Rat)} }
func (r Rational) rawMul(o Rational) Rational { return Rational{new(big.Rat).Mul(r.Rat, o.Rat)} }
func (r Rational) rawNeg() Rational           { return Rational{new(big.Rat).Neg(r.Rat)} }
func (r Rational) rawDiv(o Rational) Rational { return Rational{new(big.Rat).Quo(r.Rat, o.Rat)} }

// shrinkRational demotes z to an Integer when its denominator is 1,
// mirroring ivy's BigRat.shrink: a numeric value is always stored in
// its narrowest exact kind, never a wider one than it needs.
func shrinkRational(z *big.Rat) Number {
	if z.IsInt() {
		return Integer{z.Num()}
	}
	return Rational{z}
}
