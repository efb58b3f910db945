// Copyright 2014 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expr

import "gocas.dev/gocas/numeric"

// seriesNode holds a truncated Taylor expansion: coeffs[k] is the
// coefficient of (sym - point)^k for k in [0, order), with everything
// of order >= order folded into an implicit O((sym-point)^order) that
// text() prints but no other operation manipulates numerically.
type seriesNode struct {
	sym    *Symbol
	point  Handle
	order  int
	coeffs []Handle
}

// SeriesExpand computes the order-term Taylor expansion of h about
// sym = point, using repeated symbolic differentiation and
// evaluation-at-a-point rather than a dedicated series arithmetic: for
// the orders this kernel is meant to handle, computing each coefficient
// as f^(k)(point)/k! directly is simpler than threading truncated
// series algebra through every other node kind.
func SeriesExpand(h, sym, point Handle, order int) (Handle, error) {
	if order < 0 {
		return Handle{}, ErrInvalidArgument.New("series order must be non-negative")
	}
	s, ok := sym.AsSymbol()
	if !ok {
		return Handle{}, ErrInvalidArgument.New("series variable must be a symbol")
	}
	coeffs := make([]Handle, order)
	cur := h
	fact := numeric.One
	for k := 0; k < order; k++ {
		val, err := Subs1(cur, sym, point)
		if err != nil {
			return Handle{}, err
		}
		recip, err := numeric.Pow(fact, numeric.MinusOne)
		if err != nil {
			return Handle{}, err
		}
		coeffs[k] = newProduct([]Handle{val, NewNumeric(recip)})
		if k < order-1 {
			cur, err = Diff(cur, wrap(s))
			if err != nil {
				return Handle{}, err
			}
			fact = mustNumeric(numeric.Mul(fact, numeric.IntegerFromInt64(int64(k+1))))
		}
	}
	return wrap(seriesNode{sym: s, point: point, order: order, coeffs: coeffs}), nil
}

func (s seriesNode) kind() Kind { return KindSeries }
func (s seriesNode) nops() int  { return len(s.coeffs) }
func (s seriesNode) op(i int) Handle {
	if i < 0 || i >= len(s.coeffs) {
		panic(ErrRange.New("series operand index out of range"))
	}
	return s.coeffs[i]
}

func (s seriesNode) hash() uint64 {
	parts := make([]uint64, len(s.coeffs)+4)
	parts[0] = uint64(KindSeries)
	parts[1] = s.sym.hash()
	parts[2] = s.point.hash()
	parts[3] = uint64(s.order)
	for i, c := range s.coeffs {
		parts[i+4] = c.hash()
	}
	return mixHash(parts...)
}

func (s seriesNode) text(precedence int) string {
	diff := "(" + s.sym.Name() + " - " + s.point.String() + ")"
	str := ""
	for k, c := range s.coeffs {
		term := c.String()
		if k > 0 {
			term += "*" + diff
			if k > 1 {
				term += "^" + NewNumeric(numeric.IntegerFromInt64(int64(k))).String()
			}
		}
		if str != "" {
			str += " + "
		}
		str += term
	}
	if str != "" {
		str += " + "
	}
	return str + "O(" + diff + "^" + NewNumeric(numeric.IntegerFromInt64(int64(s.order))).String() + ")"
}

func (s seriesNode) evalSelf(depth int) (Handle, error)   { return wrap(s), nil }
func (s seriesNode) expandSelf(depth int) (Handle, error) { return wrap(s), nil }

func (s seriesNode) substSelf(m *substitution, depth int) (Handle, error) {
	if to, ok := m.lookup(wrap(s)); ok {
		return to, nil
	}
	depth, err := nextDepth(depth)
	if err != nil {
		return Handle{}, err
	}
	coeffs := make([]Handle, len(s.coeffs))
	for i, c := range s.coeffs {
		sc, err := c.n.substSelf(m, depth)
		if err != nil {
			return Handle{}, err
		}
		coeffs[i] = sc
	}
	point, err := s.point.n.substSelf(m, depth)
	if err != nil {
		return Handle{}, err
	}
	return wrap(seriesNode{sym: s.sym, point: point, order: s.order, coeffs: coeffs}), nil
}

func (s seriesNode) diffSelf(sym *Symbol, depth int) (Handle, error) {
	if sym != s.sym {
		return NewFail("Derivative", []Handle{wrap(s), Sym(sym.name)}), nil
	}
	if len(s.coeffs) <= 1 {
		return NewNumeric(numeric.Zero), nil
	}
	coeffs := make([]Handle, len(s.coeffs)-1)
	for k := 1; k < len(s.coeffs); k++ {
		coeffs[k-1] = newProduct([]Handle{NewNumeric(numeric.IntegerFromInt64(int64(k))), s.coeffs[k]})
	}
	return wrap(seriesNode{sym: s.sym, point: s.point, order: s.order - 1, coeffs: coeffs}), nil
}

func (s seriesNode) compareSameKind(other node) int {
	o := other.(seriesNode)
	if c := s.sym.compareSameKind(o.sym); c != 0 {
		return c
	}
	if c := Compare(s.point, o.point); c != 0 {
		return c
	}
	if s.order != o.order {
		return s.order - o.order
	}
	return compareHandleSlices(s.coeffs, o.coeffs)
}

func (s seriesNode) has(target Handle) bool {
	if Equal(wrap(s), target) {
		return true
	}
	for _, c := range s.coeffs {
		if c.Has(target) {
			return true
		}
	}
	return false
}

// IsSeries reports whether h is a truncated series expansion.
func (h Handle) IsSeries() bool {
	_, ok := h.n.(seriesNode)
	return ok
}
