// Copyright 2014 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package numeric is the exact/arbitrary-precision numeric backend:
// integers, rationals, Gaussian rationals (exact complex numbers), and
// arbitrary-precision floats, closed under + - * / and exponentiation,
// plus the predicate set the expression kernel needs (IsZero, IsOne,
// IsInteger, ...).
//
// It is modeled directly on ivy's value package (Int/BigInt/BigRat/
// BigFloat), generalized into a single Number interface implemented by
// four concrete kinds instead of ivy's APL-flavored type-switch tower.
package numeric // import "gocas.dev/gocas/numeric"

import (
	"fmt"

	"gocas.dev/gocas/config"
)

// Kind tags the four numeric representations this package supports.
type Kind int

const (
	KindInteger Kind = iota
	KindRational
	KindComplex
	KindFloat
	numKinds
)

func (k Kind) String() string {
	switch k {
	case KindInteger:
		return "integer"
	case KindRational:
		return "rational"
	case KindComplex:
		return "complex"
	case KindFloat:
		return "float"
	}
	return "unknown"
}

// A Number is an exact or arbitrary-precision scalar value. All
// operations are total except where noted (Div, Pow) and return an
// error built from a *errors.Kind in errors.go rather than panicking;
// this is the only layer that raises arithmetic errors, since every
// higher layer routes numeric operands through it.
type Number interface {
	fmt.Stringer

	Kind() Kind

	Add(Number) Number
	Sub(Number) Number
	Mul(Number) Number
	Div(Number) (Number, error)
	Neg() Number
	Pow(Number) (Number, error)

	// Cmp compares the receiver to other, returning (-1, 0, 1) and true
	// if both are real and thus totally ordered; (0, false) otherwise
	// (e.g. either operand is complex with nonzero imaginary part).
	Cmp(other Number) (sign int, ok bool)

	// Equal reports structural/value equality, used by the total order
	// in expr.Compare and by the sum/product combine-like-terms step.
	Equal(other Number) bool

	IsZero() bool
	IsOne() bool
	IsMinusOne() bool
	IsInteger() bool
	IsRational() bool
	IsReal() bool
	IsPositive() bool

	// hashBits feeds the order-independent structural hash a sum or
	// product node computes over its operands.
	hashBits() uint64
}

// Hash returns n's contribution to a node's structural hash.
func Hash(n Number) uint64 {
	return n.hashBits()
}

// Config is the process-wide configuration consulted for float
// precision and number-base formatting. It is set once at process
// startup (see gocas.dev/gocas's main) and is read-mostly thereafter.
var conf *config.Config

// SetConfig installs the configuration the numeric backend consults
// for float precision. It must be called before any float is
// constructed from a decimal digit count different from the default.
func SetConfig(c *config.Config) {
	conf = c
}

func cfg() *config.Config {
	if conf == nil {
		conf = &config.Config{}
	}
	return conf
}

// rank orders the four kinds for binary-operator type promotion: the
// operation is carried out at the kind of whichever operand ranks
// higher, after converting the lower-ranked operand up. Integer <
// Rational < Complex < Float mirrors ivy's binaryArithType, extended
// with Complex between Rational and Float: Complex is still exact
// (a Gaussian rational) so it outranks Rational, but Float is
// inherently inexact and always wins once introduced — mixed
// operations promote to the higher precision, and a rational promoted
// into a float loses exactness.
func rank(k Kind) int {
	switch k {
	case KindInteger:
		return 0
	case KindRational:
		return 1
	case KindComplex:
		return 2
	case KindFloat:
		return 3
	}
	panic("numeric: bad kind")
}

// promote converts a and b to a common kind suitable for a binary
// operation, the higher of the two by rank.
func promote(a, b Number) (Number, Number, error) {
	ka, kb := rank(a.Kind()), rank(b.Kind())
	target := a.Kind()
	if kb > ka {
		target = b.Kind()
	}
	pa, err := convert(a, target)
	if err != nil {
		return nil, nil, err
	}
	pb, err := convert(b, target)
	if err != nil {
		return nil, nil, err
	}
	return pa, pb, nil
}

// convert converts n to the given kind, or returns a domain error if
// the conversion would be lossy in a way the kernel refuses to do
// implicitly (Float -> anything exact; Complex with nonzero imaginary
// part -> Float).
func convert(n Number, to Kind) (Number, error) {
	if n.Kind() == to {
		return n, nil
	}
	switch to {
	case KindRational:
		switch v := n.(type) {
		case Integer:
			return v.Rational(), nil
		}
	case KindComplex:
		switch v := n.(type) {
		case Integer:
			return NewComplex(v.Rational(), Zero.Rational()), nil
		case Rational:
			return NewComplex(v, Zero.Rational()), nil
		}
	case KindFloat:
		switch v := n.(type) {
		case Integer:
			return v.Float(cfg().FloatPrecision()), nil
		case Rational:
			return v.Float(cfg().FloatPrecision()), nil
		case Complex:
			if !v.im.IsZero() {
				return nil, errMixedComplexFloat.New(n, to)
			}
			return v.re.Float(cfg().FloatPrecision()), nil
		}
	}
	return nil, errDomain.New(fmt.Sprintf("cannot convert %s to %s", n.Kind(), to))
}
