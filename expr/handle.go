// Copyright 2014 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expr

import "gocas.dev/gocas/numeric"

// Add builds the canonical a + b. If both operands are matrices it
// adds them elementwise instead, failing with ErrDomain on a shape
// mismatch; mixing a matrix with a non-matrix is also a domain error.
func Add(a, b Handle) (Handle, error) {
	am, aIsMat := a.n.(matrixNode)
	bm, bIsMat := b.n.(matrixNode)
	switch {
	case aIsMat && bIsMat:
		return addMatrices(am, bm)
	case aIsMat || bIsMat:
		return Handle{}, ErrDomain.New("cannot add a matrix and a scalar expression")
	default:
		return newSum([]Handle{a, b}), nil
	}
}

// Neg builds -h: for a matrix, the elementwise negation; otherwise the
// product of h with -1.
func Neg(h Handle) Handle {
	if m, ok := h.n.(matrixNode); ok {
		return scaleMatrix(m, NewNumeric(numeric.MinusOne))
	}
	return newProduct([]Handle{NewNumeric(numeric.MinusOne), h})
}

// Sub builds a - b.
func Sub(a, b Handle) (Handle, error) {
	return Add(a, Neg(b))
}

// Mul builds the canonical a * b. A matrix times a non-matrix scales
// every element; two matrices multiply elementwise (Hadamard), not as
// a linear map composition.
func Mul(a, b Handle) (Handle, error) {
	am, aIsMat := a.n.(matrixNode)
	bm, bIsMat := b.n.(matrixNode)
	switch {
	case aIsMat && bIsMat:
		return hadamardMatrices(am, bm)
	case aIsMat:
		return scaleMatrix(am, b), nil
	case bIsMat:
		return scaleMatrix(bm, a), nil
	default:
		return newProduct([]Handle{a, b}), nil
	}
}

// Div builds a / b, i.e. a * b^-1. Dividing by the literal zero is an
// arithmetic error raised immediately rather than left as a symbolic
// 1/0; dividing a non-matrix by anything else that merely might be
// zero (a symbol, say) stays symbolic, exactly like GiNaC's pow(x,-1).
func Div(a, b Handle) (Handle, error) {
	if _, ok := b.n.(matrixNode); ok {
		return Handle{}, ErrDomain.New("cannot divide by a matrix")
	}
	if v, ok := b.Numeric(); ok && v.IsZero() {
		return Handle{}, numeric.ErrArithmetic.New("division by zero")
	}
	return Mul(a, newPower(b, NewNumeric(numeric.MinusOne)))
}

// Pow builds the canonical base^exp.
func Pow(base, exp Handle) Handle {
	return newPower(base, exp)
}

func (h Handle) Add(o Handle) (Handle, error) { return Add(h, o) }
func (h Handle) Sub(o Handle) (Handle, error) { return Sub(h, o) }
func (h Handle) Mul(o Handle) (Handle, error) { return Mul(h, o) }
func (h Handle) Div(o Handle) (Handle, error) { return Div(h, o) }
func (h Handle) Pow(o Handle) Handle          { return Pow(h, o) }
func (h Handle) Neg() Handle                  { return Neg(h) }
