// Copyright 2014 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package numeric

import (
	"fmt"
)

// Complex is an exact Gaussian rational re + im*i. ivy has no complex
// type to ground this on directly; the shape (a struct of two
// same-kind parts with the arithmetic of a quadratic extension)
// follows the same embed-and-wrap idiom as BigRat/BigInt, generalized
// to a pair.
type Complex struct {
	re, im Rational
}

// NewComplex constructs re + im*i.
func NewComplex(re, im Rational) Complex {
	return Complex{re, im}
}

func (c Complex) Kind() Kind { return KindComplex }

func (c Complex) Re() Rational { return c.re }
func (c Complex) Im() Rational { return c.im }

func (c Complex) String() string {
	if c.im.IsZero() {
		return c.re.String()
	}
	if c.re.IsZero() {
		return fmt.Sprintf("%si", c.im)
	}
	if c.im.Sign() < 0 {
		return fmt.Sprintf("%s-%si", c.re, c.im.Neg())
	}
	return fmt.Sprintf("%s+%si", c.re, c.im)
}

func (c Complex) Add(o Number) Number {
	j := o.(Complex)
	return shrinkComplex(Complex{re: c.re.rawAdd(j.re), im: c.im.rawAdd(j.im)})
}

func (c Complex) Sub(o Number) Number {
	j := o.(Complex)
	return shrinkComplex(Complex{re: c.re.rawSub(j.re), im: c.im.rawSub(j.im)})
}

func (c Complex) Mul(o Number) Number {
	return shrinkComplex(c.rawMul(o.(Complex)))
}

// rawMul multiplies without shrinking, so callers that must stay in
// Complex (Pow's repeated squaring, Div's conjugate step) can chain it.
func (c Complex) rawMul(j Complex) Complex {
	// (a+bi)(c+di) = (ac-bd) + (ad+bc)i
	ac := c.re.rawMul(j.re)
	bd := c.im.rawMul(j.im)
	ad := c.re.rawMul(j.im)
	bc := c.im.rawMul(j.re)
	return Complex{re: ac.rawSub(bd), im: ad.rawAdd(bc)}
}

func (c Complex) Div(o Number) (Number, error) {
	j := o.(Complex)
	// (a+bi)/(c+di) = (a+bi)(c-di) / (c^2+d^2)
	denom := j.re.rawMul(j.re).rawAdd(j.im.rawMul(j.im))
	if denom.IsZero() {
		return nil, ErrArithmetic.New("division by zero")
	}
	// num = c * conj(j), computed without the shrinking Mul so the
	// result stays a Complex even when its imaginary part is zero.
	negJim := j.im.rawNeg()
	numRe := c.re.rawMul(j.re).rawSub(c.im.rawMul(negJim))
	numIm := c.re.rawMul(negJim).rawAdd(c.im.rawMul(j.re))
	return shrinkComplex(Complex{re: numRe.rawDiv(denom), im: numIm.rawDiv(denom)}), nil
}

func (c Complex) Neg() Number {
	return Complex{re: c.re.rawNeg(), im: c.im.rawNeg()}
}

// Pow raises c to a non-negative integer power by repeated squaring;
// negative integer powers go through Div(1, c^-n).
func (c Complex) Pow(o Number) (Number, error) {
	exp, ok := o.(Integer)
	if !ok {
		return nil, errDomain.New(fmt.Sprintf("complex exponentiation requires an integer exponent, got %s", o.Kind()))
	}
	if exp.Sign() == 0 {
		return One, nil
	}
	n := exp.Int.Int64()
	neg := n < 0
	if neg {
		n = -n
	}
	acc := Complex{re: RationalFromInt64s(1, 1), im: RationalFromInt64s(0, 1)}
	base := c
	for n > 0 {
		if n&1 == 1 {
			acc = acc.rawMul(base)
		}
		base = base.rawMul(base)
		n >>= 1
	}
	if neg {
		return NewComplex(RationalFromInt64s(1, 1), RationalFromInt64s(0, 1)).Div(acc)
	}
	return shrinkComplex(acc), nil
}

func (c Complex) Cmp(o Number) (int, bool) {
	j, ok := o.(Complex)
	if !ok || !c.im.IsZero() || !j.im.IsZero() {
		return 0, false
	}
	return c.re.Cmp(j.re)
}

func (c Complex) Equal(o Number) bool {
	j, ok := o.(Complex)
	return ok && c.re.Equal(j.re) && c.im.Equal(j.im)
}

func (c Complex) IsZero() bool     { return c.re.IsZero() && c.im.IsZero() }
func (c Complex) IsOne() bool      { return c.im.IsZero() && c.re.IsOne() }
func (c Complex) IsMinusOne() bool { return c.im.IsZero() && c.re.IsMinusOne() }
func (c Complex) IsInteger() bool  { return c.im.IsZero() && c.re.IsInteger() }
func (c Complex) IsRational() bool { return c.im.IsZero() }
func (c Complex) IsReal() bool     { return c.im.IsZero() }
func (c Complex) IsPositive() bool { return c.im.IsZero() && c.re.IsPositive() }

func (c Complex) hashBits() uint64 {
	return c.re.hashBits()*37 + c.im.hashBits()
}

// shrinkComplex demotes c to a Rational (or Integer, transitively) when
// its imaginary part is zero, keeping every numeric value stored in
// its narrowest exact kind.
func shrinkComplex(c Complex) Number {
	if c.im.IsZero() {
		if c.re.IsInt() {
			return Integer{c.re.Num()}
		}
		return c.re
	}
	return c
}
