// Copyright 2014 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expr

import "gocas.dev/gocas/numeric"

// ncProduct is a product whose factors do not commute (matrix or
// operator multiplication): order is part of the value. A scalar
// numeric prefactor still commutes freely to the front, and adjacent
// occurrences of the very same factor still fold into a power (A*A is
// always A^2, commutative or not), but the factor list itself is never
// reordered or reshuffled beyond that.
type ncProduct struct {
	overall numeric.Number
	factors []Handle
}

func (e ncProduct) kind() Kind { return KindNCProduct }

func (e ncProduct) hasOverallTerm() bool { return !e.overall.IsOne() }

func (e ncProduct) nops() int {
	n := len(e.factors)
	if e.hasOverallTerm() {
		n++
	}
	return n
}

func (e ncProduct) op(i int) Handle {
	if e.hasOverallTerm() {
		if i == 0 {
			return NewNumeric(e.overall)
		}
		i--
	}
	if i < 0 || i >= len(e.factors) {
		panic(ErrRange.New("ncproduct operand index out of range"))
	}
	return e.factors[i]
}

func (e ncProduct) hash() uint64 {
	parts := make([]uint64, len(e.factors)+2)
	parts[0] = uint64(KindNCProduct)
	parts[1] = numeric.Hash(e.overall)
	for i, f := range e.factors {
		parts[i+2] = f.hash()
	}
	return mixHash(parts...)
}

func (e ncProduct) text(precedence int) string {
	parts := make([]string, 0, e.nops())
	if e.hasOverallTerm() {
		parts = append(parts, e.overall.String())
	}
	for _, f := range e.factors {
		parts = append(parts, f.n.text(precProduct))
	}
	s := ""
	for i, p := range parts {
		if i > 0 {
			s += "**"
		}
		s += p
	}
	if precedence > precProduct {
		return "(" + s + ")"
	}
	return s
}

func (e ncProduct) evalSelf(depth int) (Handle, error) {
	depth, err := nextDepth(depth)
	if err != nil {
		return Handle{}, err
	}
	ops := make([]Handle, len(e.factors))
	for i, f := range e.factors {
		ev, err := f.n.evalSelf(depth)
		if err != nil {
			return Handle{}, err
		}
		ops[i] = ev
	}
	return newNCProductScaled(e.overall, ops), nil
}

func (e ncProduct) expandSelf(depth int) (Handle, error) {
	depth, err := nextDepth(depth)
	if err != nil {
		return Handle{}, err
	}
	factors := make([]Handle, len(e.factors))
	for i, f := range e.factors {
		ex, err := f.n.expandSelf(depth)
		if err != nil {
			return Handle{}, err
		}
		factors[i] = ex
	}
	acc := []Handle{NewNumeric(e.overall)}
	for _, f := range factors {
		if f.Kind() == KindSum {
			var next []Handle
			for _, a := range acc {
				for i := 0; i < f.Nops(); i++ {
					next = append(next, NCMul(a, f.Op(i)))
				}
			}
			acc = next
			continue
		}
		for i, a := range acc {
			acc[i] = NCMul(a, f)
		}
	}
	return newSum(acc), nil
}

func (e ncProduct) substSelf(m *substitution, depth int) (Handle, error) {
	if to, ok := m.lookup(wrap(e)); ok {
		return to, nil
	}
	depth, err := nextDepth(depth)
	if err != nil {
		return Handle{}, err
	}
	factors := make([]Handle, len(e.factors))
	for i, f := range e.factors {
		s, err := f.n.substSelf(m, depth)
		if err != nil {
			return Handle{}, err
		}
		factors[i] = s
	}
	return newNCProductScaled(e.overall, factors), nil
}

func (e ncProduct) diffSelf(sym *Symbol, depth int) (Handle, error) {
	depth, err := nextDepth(depth)
	if err != nil {
		return Handle{}, err
	}
	var terms []Handle
	for i := range e.factors {
		di, err := e.factors[i].n.diffSelf(sym, depth)
		if err != nil {
			return Handle{}, err
		}
		if di.IsNumeric() {
			if v, _ := di.Numeric(); v.IsZero() {
				continue
			}
		}
		chain := []Handle{NewNumeric(e.overall)}
		for j, f := range e.factors {
			if j == i {
				chain = append(chain, di)
			} else {
				chain = append(chain, f)
			}
		}
		var term Handle = chain[0]
		for _, c := range chain[1:] {
			term = NCMul(term, c)
		}
		terms = append(terms, term)
	}
	return newSum(terms), nil
}

func (e ncProduct) compareSameKind(other node) int {
	o := other.(ncProduct)
	if c := compareHandleSlices(e.factors, o.factors); c != 0 {
		return c
	}
	return compareNumeric(e.overall, o.overall)
}

func (e ncProduct) has(target Handle) bool {
	if Equal(wrap(e), target) {
		return true
	}
	for _, f := range e.factors {
		if f.Has(target) {
			return true
		}
	}
	return false
}

// NCMul builds the canonical non-commutative product a*b, preserving
// operand order.
func NCMul(a, b Handle) Handle {
	return newNCProductScaled(numeric.One, []Handle{a, b})
}

func newNCProductScaled(scale numeric.Number, operands []Handle) Handle {
	overall := scale
	var factors []Handle
	for _, o := range operands {
		switch {
		case o.Kind() == KindNumeric:
			v, _ := o.Numeric()
			overall = mustNumeric(numeric.Mul(overall, v))
		case o.Kind() == KindNCProduct:
			e := o.n.(ncProduct)
			overall = mustNumeric(numeric.Mul(overall, e.overall))
			factors = append(factors, e.factors...)
		default:
			if n := len(factors); n > 0 {
				if combined, ok := combineAdjacentFactor(factors[n-1], o); ok {
					factors[n-1] = combined
					continue
				}
			}
			factors = append(factors, o)
		}
	}
	if overall.IsZero() {
		return NewNumeric(numeric.Zero)
	}
	if len(factors) == 0 {
		return NewNumeric(overall)
	}
	if len(factors) == 1 && overall.IsOne() {
		return factors[0]
	}
	return wrap(ncProduct{overall: overall, factors: factors})
}

// combineAdjacentFactor folds next into prev when they're powers of the
// same base (A followed by A is A^2, A^2 followed by A is A^3), the one
// reordering-free simplification that's always valid for adjacent
// non-commutative factors: an element always commutes with itself.
func combineAdjacentFactor(prev, next Handle) (Handle, bool) {
	pb, pe, pok := powerParts(prev)
	if !pok {
		pb, pe = prev, numeric.One
	}
	nb, ne, nok := powerParts(next)
	if !nok {
		nb, ne = next, numeric.One
	}
	if !Equal(pb, nb) {
		return Handle{}, false
	}
	return newPower(pb, NewNumeric(mustNumeric(numeric.Add(pe, ne)))), true
}

// IsNCProduct reports whether h is a non-commutative product.
func (h Handle) IsNCProduct() bool {
	_, ok := h.n.(ncProduct)
	return ok
}
