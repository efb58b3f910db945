// Copyright 2014 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expr

// Evalf numerically approximates h at the given bit precision: every
// numeric leaf and named constant is converted to a Float, symbols are
// left alone, and every composite is rebuilt from its Evalf'd operands
// through the same canonicalizing constructors eval and expand use, so
// the result stays in normal form. Non-commutative products and series
// are returned unchanged.
func Evalf(h Handle, prec uint) (Handle, error) {
	depth, err := nextDepth(0)
	if err != nil {
		return Handle{}, err
	}
	return evalf(h, prec, depth)
}

// Evalf is the method form of the package-level Evalf.
func (h Handle) Evalf(prec uint) (Handle, error) { return Evalf(h, prec) }

func evalf(h Handle, prec uint, depth int) (Handle, error) {
	if v, ok := h.Numeric(); ok {
		return NewNumeric(convertToFloatPrec(v, prec)), nil
	}
	if c, ok := h.AsConstant(); ok {
		v, err := c.Evalf(prec)
		if err != nil {
			return Handle{}, err
		}
		return NewNumeric(v), nil
	}
	if h.IsSymbol() {
		return h, nil
	}
	depth, err := nextDepth(depth)
	if err != nil {
		return Handle{}, err
	}
	switch {
	case h.IsPower():
		base, err := evalf(h.Base(), prec, depth)
		if err != nil {
			return Handle{}, err
		}
		exp, err := evalf(h.Exponent(), prec, depth)
		if err != nil {
			return Handle{}, err
		}
		return Pow(base, exp), nil
	case h.IsFunction():
		name, _ := h.FunctionName()
		args, err := evalfOperands(h, prec, depth)
		if err != nil {
			return Handle{}, err
		}
		return NewFunction(name, args), nil
	case h.IsSum():
		return evalfFold(h, prec, depth, Add)
	case h.IsProduct():
		return evalfFold(h, prec, depth, Mul)
	case h.IsList():
		items, err := evalfOperands(h, prec, depth)
		if err != nil {
			return Handle{}, err
		}
		return NewList(items), nil
	case h.IsTuple():
		items, err := evalfOperands(h, prec, depth)
		if err != nil {
			return Handle{}, err
		}
		return NewTuple(items), nil
	case h.IsMatrix():
		rows, cols := h.Dims()
		data, err := evalfOperands(h, prec, depth)
		if err != nil {
			return Handle{}, err
		}
		return NewMatrix(rows, cols, data)
	case h.IsRelational():
		op, lhs, rhs, _ := h.AsRelational()
		el, err := evalf(lhs, prec, depth)
		if err != nil {
			return Handle{}, err
		}
		er, err := evalf(rhs, prec, depth)
		if err != nil {
			return Handle{}, err
		}
		return NewRelational(el, er, op), nil
	case h.IsFail():
		op, args, _ := h.AsFail()
		out := make([]Handle, len(args))
		for i, a := range args {
			v, err := evalf(a, prec, depth)
			if err != nil {
				return Handle{}, err
			}
			out[i] = v
		}
		return NewFail(op, out), nil
	default:
		return h, nil
	}
}

func evalfOperands(h Handle, prec uint, depth int) ([]Handle, error) {
	out := make([]Handle, h.Nops())
	for i := range out {
		v, err := evalf(h.Op(i), prec, depth)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func evalfFold(h Handle, prec uint, depth int, op func(a, b Handle) (Handle, error)) (Handle, error) {
	n := h.Nops()
	if n == 0 {
		return h, nil
	}
	acc, err := evalf(h.Op(0), prec, depth)
	if err != nil {
		return Handle{}, err
	}
	for i := 1; i < n; i++ {
		v, err := evalf(h.Op(i), prec, depth)
		if err != nil {
			return Handle{}, err
		}
		acc, err = op(acc, v)
		if err != nil {
			return Handle{}, err
		}
	}
	return acc, nil
}
