// Copyright 2014 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package numeric

// Add, Sub, Mul, and Div are the promoting entry points the
// expression kernel calls: they convert both operands to a common kind
// per the rank table in numeric.go (mirroring ivy's Binary, which looks
// up a whichType function before dispatching) and then dispatch to the
// kind-specific method.

func Add(a, b Number) (Number, error) {
	pa, pb, err := promote(a, b)
	if err != nil {
		return nil, err
	}
	return pa.Add(pb), nil
}

func Sub(a, b Number) (Number, error) {
	pa, pb, err := promote(a, b)
	if err != nil {
		return nil, err
	}
	return pa.Sub(pb), nil
}

func Mul(a, b Number) (Number, error) {
	pa, pb, err := promote(a, b)
	if err != nil {
		return nil, err
	}
	return pa.Mul(pb), nil
}

func Div(a, b Number) (Number, error) {
	pa, pb, err := promote(a, b)
	if err != nil {
		return nil, err
	}
	return pa.Div(pb)
}

// Pow does not promote the exponent to the base's kind: every Pow
// implementation wants an Integer exponent (or, for Rational's, an
// Integer). Symbolic (non-integer, non-numeric) exponents are handled
// above this layer by expr's power node, which keeps the expression
// unevaluated instead of calling into the numeric backend at all.
func Pow(base, exp Number) (Number, error) {
	return base.Pow(exp)
}

// Cmp compares a and b after promoting to a common kind, for use by
// expr.Compare's numeric tie-break.
func Cmp(a, b Number) (sign int, ok bool) {
	pa, pb, err := promote(a, b)
	if err != nil {
		return 0, false
	}
	return pa.Cmp(pb)
}

// Equal reports whether a and b denote the same numeric value, after
// promoting to a common kind.
func Equal(a, b Number) bool {
	pa, pb, err := promote(a, b)
	if err != nil {
		return false
	}
	return pa.Equal(pb)
}
