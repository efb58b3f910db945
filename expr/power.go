// Copyright 2014 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expr

import "gocas.dev/gocas/numeric"

// powerNode is base^exp. Unlike a product's pairs, which only ever
// carry a numeric exponent, a standalone Power's exponent can be any
// expression at all (x^y is legal; only once x^y is folded into a
// product's pair list does the exponent have to be numeric).
type powerNode struct {
	base, exp Handle
}

// newPower builds the canonical base^exp, applying the handful of
// local rewrites that apply regardless of what exp turns out to be:
// x^0 = 1, x^1 = x, 1^y = 1, and folding two numeric operands directly
// through the numeric backend's own Pow when it succeeds (it refuses
// non-integer or irrational results, in which case the power stays
// symbolic).
func newPower(base, exp Handle) Handle {
	if exp.IsNumeric() {
		ev, _ := exp.Numeric()
		if ev.IsZero() {
			return NewNumeric(numeric.One)
		}
		if ev.IsOne() {
			return base
		}
		if base.IsNumeric() {
			bv, _ := base.Numeric()
			if r, err := numeric.Pow(bv, ev); err == nil {
				return NewNumeric(r)
			}
		}
		if b2, e2, ok := powerParts(base); ok && e2.Kind() == numeric.KindInteger {
			if combined, err := numeric.Mul(e2, ev); err == nil {
				return newPower(b2, NewNumeric(combined))
			}
		}
	}
	if base.IsNumeric() {
		if bv, _ := base.Numeric(); bv.IsOne() {
			return NewNumeric(numeric.One)
		}
	}
	return wrap(powerNode{base: base, exp: exp})
}

// powerParts returns a Power node's base and numeric exponent, used by
// the product-building pipeline's split step to pull x^n into a
// pair{x, n} instead of leaving it as an opaque rest expression.
func powerParts(h Handle) (base Handle, exp numeric.Number, ok bool) {
	p, isPower := h.n.(powerNode)
	if !isPower {
		return Handle{}, nil, false
	}
	v, isNum := p.exp.Numeric()
	if !isNum {
		return Handle{}, nil, false
	}
	return p.base, v, true
}

func (p powerNode) kind() Kind { return KindPower }
func (p powerNode) nops() int  { return 2 }
func (p powerNode) op(i int) Handle {
	switch i {
	case 0:
		return p.base
	case 1:
		return p.exp
	}
	panic(ErrRange.New("power has two operands"))
}

func (p powerNode) hash() uint64 {
	return mixHash(uint64(KindPower), p.base.hash(), p.exp.hash())
}

func (p powerNode) text(precedence int) string {
	s := p.base.n.text(precPower+1) + "^" + p.exp.n.text(precPower)
	if precedence > precPower {
		return "(" + s + ")"
	}
	return s
}

func (p powerNode) evalSelf(depth int) (Handle, error) {
	depth, err := nextDepth(depth)
	if err != nil {
		return Handle{}, err
	}
	b, err := p.base.n.evalSelf(depth)
	if err != nil {
		return Handle{}, err
	}
	e, err := p.exp.n.evalSelf(depth)
	if err != nil {
		return Handle{}, err
	}
	return newPower(b, e), nil
}

// maxMultinomialExpansion bounds how large an integer exponent
// expandSelf will expand a sum base by repeated multiplication before
// giving up and leaving the power symbolic; expanding (a+b)^10000 term
// by term is not a sane default.
const maxMultinomialExpansion = 64

func (p powerNode) expandSelf(depth int) (Handle, error) {
	depth, err := nextDepth(depth)
	if err != nil {
		return Handle{}, err
	}
	b, err := p.base.n.expandSelf(depth)
	if err != nil {
		return Handle{}, err
	}
	e, err := p.exp.n.expandSelf(depth)
	if err != nil {
		return Handle{}, err
	}
	if b.Kind() == KindSum && e.IsNumeric() {
		if v, _ := e.Numeric(); v.Kind() == numeric.KindInteger && v.IsPositive() {
			if n, ok := smallInt(v); ok && n <= maxMultinomialExpansion {
				acc := NewNumeric(numeric.One)
				for i := 0; i < n; i++ {
					var terms []Handle
					for _, a := range sumTerms(acc) {
						for _, t := range sumTerms(b) {
							terms = append(terms, newProduct([]Handle{a, t}))
						}
					}
					acc = newSum(terms)
				}
				return acc, nil
			}
		}
	}
	return newPower(b, e), nil
}

func smallInt(v numeric.Number) (int, bool) {
	i, ok := v.(numeric.Integer)
	if !ok || !i.IsInt64() {
		return 0, false
	}
	n := i.Int64()
	if n < 0 || n > maxMultinomialExpansion {
		return 0, false
	}
	return int(n), true
}

func (p powerNode) substSelf(m *substitution, depth int) (Handle, error) {
	if to, ok := m.lookup(wrap(p)); ok {
		return to, nil
	}
	depth, err := nextDepth(depth)
	if err != nil {
		return Handle{}, err
	}
	b, err := p.base.n.substSelf(m, depth)
	if err != nil {
		return Handle{}, err
	}
	e, err := p.exp.n.substSelf(m, depth)
	if err != nil {
		return Handle{}, err
	}
	return newPower(b, e), nil
}

// diffSelf applies the general logarithmic-derivative rule
// d(f^g) = f^g * (g' * ln(f) + g * f'/f), which degenerates to the
// ordinary power rule when g is constant (g' = 0) and to the
// exponential rule when f is constant (f' = 0). The constant-exponent
// case is special-cased for a directly simplified n*f^(n-1)*f' result
// instead of relying on the product pipeline to notice f^n * f^-1
// share a base (it won't, since the two appear in different summands).
func (p powerNode) diffSelf(sym *Symbol, depth int) (Handle, error) {
	depth, err := nextDepth(depth)
	if err != nil {
		return Handle{}, err
	}
	df, err := p.base.n.diffSelf(sym, depth)
	if err != nil {
		return Handle{}, err
	}
	if p.exp.IsNumeric() {
		ev, _ := p.exp.Numeric()
		nMinus1 := mustNumeric(numeric.Sub(ev, numeric.One))
		return newProduct([]Handle{NewNumeric(ev), newPower(p.base, NewNumeric(nMinus1)), df}), nil
	}
	dg, err := p.exp.n.diffSelf(sym, depth)
	if err != nil {
		return Handle{}, err
	}
	lnBase := NewFunction("ln", []Handle{p.base})
	term1 := newProduct([]Handle{dg, lnBase})
	term2 := newProduct([]Handle{p.exp, df, newPower(p.base, NewNumeric(numeric.MinusOne))})
	return newProduct([]Handle{wrap(p), newSum([]Handle{term1, term2})}), nil
}

func (p powerNode) compareSameKind(other node) int {
	o := other.(powerNode)
	if c := Compare(p.base, o.base); c != 0 {
		return c
	}
	return Compare(p.exp, o.exp)
}

func (p powerNode) has(target Handle) bool {
	return Equal(wrap(p), target) || p.base.Has(target) || p.exp.Has(target)
}

// IsPower reports whether h is a power node.
func (h Handle) IsPower() bool {
	_, ok := h.n.(powerNode)
	return ok
}

// Base and Exponent return h's operands if h is a power, or h itself
// and the numeric 1 otherwise — the convention every expression
// "is trivially itself to the first power", used by poly's normalizer
// to treat any expression uniformly as a power.
func (h Handle) Base() Handle {
	if p, ok := h.n.(powerNode); ok {
		return p.base
	}
	return h
}

func (h Handle) Exponent() Handle {
	if p, ok := h.n.(powerNode); ok {
		return p.exp
	}
	return NewNumeric(numeric.One)
}
