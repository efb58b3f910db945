// Copyright 2014 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expr

import (
	"sort"
	"strings"

	"gocas.dev/gocas/numeric"
)

// Precedence levels used by text() to decide when a child needs
// parenthesizing.
const (
	precSum = iota + 1
	precProduct
	precPower
	precAtom
)

// pair is one canonical operand of a sum or product: for a sum, term =
// coeff*rest; for a product, factor = rest^coeff. Folding the numeric
// multiplier/exponent into its own field instead of a nested Product/
// Power node is what makes the combine-like-terms step a single
// numeric.Add per pair instead of a structural rewrite.
type pair struct {
	rest  Handle
	coeff numeric.Number
}

// expairseq is the shared representation behind both Sum and Product:
// a sorted, deduplicated list of pairs plus one overall numeric value
// (the additive constant for a sum, the multiplicative prefactor for a
// product). Two sibling types in a class-hierarchy design collapse
// into one struct with a boolean discriminant here, the same move
// kind.go's doc comment calls out for the node hierarchy as a whole.
type expairseq struct {
	isProduct bool
	overall   numeric.Number
	pairs     []pair
}

func (e expairseq) kind() Kind {
	if e.isProduct {
		return KindProduct
	}
	return KindSum
}

func (e expairseq) hasOverallTerm() bool {
	if e.isProduct {
		return !e.overall.IsOne()
	}
	return !e.overall.IsZero()
}

func (e expairseq) nops() int {
	n := len(e.pairs)
	if e.hasOverallTerm() {
		n++
	}
	return n
}

// buildTerm materializes a sum pair back into a standalone expression:
// coeff*rest, or just rest when coeff is 1.
func buildTerm(p pair) Handle {
	if p.coeff.IsOne() {
		return p.rest
	}
	return newProduct([]Handle{NewNumeric(p.coeff), p.rest})
}

// buildFactor materializes a product pair back into a standalone
// expression: rest^coeff, or just rest when coeff is 1.
func buildFactor(p pair) Handle {
	if p.coeff.IsOne() {
		return p.rest
	}
	return newPower(p.rest, NewNumeric(p.coeff))
}

func (e expairseq) materialize(i int) Handle {
	if e.isProduct {
		if i == 0 && e.hasOverallTerm() {
			return NewNumeric(e.overall)
		}
		if e.hasOverallTerm() {
			i--
		}
		return buildFactor(e.pairs[i])
	}
	if i < len(e.pairs) {
		return buildTerm(e.pairs[i])
	}
	return NewNumeric(e.overall)
}

func (e expairseq) op(i int) Handle {
	if i < 0 || i >= e.nops() {
		panic(ErrRange.New("expairseq operand index out of range"))
	}
	return e.materialize(i)
}

func (e expairseq) hash() uint64 {
	parts := make([]uint64, len(e.pairs))
	for i, p := range e.pairs {
		parts[i] = mixHash(p.rest.hash(), numeric.Hash(p.coeff))
	}
	seed := mixHash(uint64(e.kind()), numeric.Hash(e.overall))
	return combineUnordered(seed, parts)
}

func (e expairseq) text(precedence int) string {
	myPrec := precSum
	joiner := " + "
	if e.isProduct {
		myPrec = precProduct
		joiner = "*"
	}

	var s string
	if e.isProduct {
		var parts []string
		if e.hasOverallTerm() {
			parts = append(parts, e.overall.String())
		}
		for _, p := range e.pairs {
			parts = append(parts, buildFactor(p).n.text(myPrec))
		}
		s = strings.Join(parts, joiner)
	} else {
		var b strings.Builder
		for i, p := range e.pairs {
			if i > 0 {
				b.WriteString(joiner)
			}
			b.WriteString(buildTerm(p).n.text(myPrec))
		}
		if e.hasOverallTerm() {
			ov := e.overall
			sign := " + "
			if !ov.IsZero() && !ov.IsPositive() {
				sign = " - "
				ov = ov.Neg()
			}
			if b.Len() > 0 {
				b.WriteString(sign)
			} else if sign == " - " {
				b.WriteString("-")
			}
			b.WriteString(ov.String())
		}
		s = b.String()
	}

	if precedence > myPrec {
		return "(" + s + ")"
	}
	return s
}

func (e expairseq) evalSelf(depth int) (Handle, error) {
	depth, err := nextDepth(depth)
	if err != nil {
		return Handle{}, err
	}
	ops := make([]Handle, e.nops())
	for i := range ops {
		child, err := e.op(i).n.evalSelf(depth)
		if err != nil {
			return Handle{}, err
		}
		ops[i] = child
	}
	if e.isProduct {
		return newProduct(ops), nil
	}
	return newSum(ops), nil
}

func (e expairseq) expandSelf(depth int) (Handle, error) {
	depth, err := nextDepth(depth)
	if err != nil {
		return Handle{}, err
	}
	if !e.isProduct {
		terms := make([]Handle, e.nops())
		for i := range terms {
			t, err := e.op(i).n.expandSelf(depth)
			if err != nil {
				return Handle{}, err
			}
			terms[i] = t
		}
		return newSum(terms), nil
	}
	// Product: expand each factor first, then distribute any
	// resulting sum factors over the rest.
	factors := make([]Handle, e.nops())
	for i := range factors {
		f, err := e.op(i).n.expandSelf(depth)
		if err != nil {
			return Handle{}, err
		}
		factors[i] = f
	}
	acc := []Handle{NewNumeric(numeric.One)}
	for _, f := range factors {
		if f.Kind() == KindSum {
			var next []Handle
			for _, a := range acc {
				for i := 0; i < f.Nops(); i++ {
					term, err := Mul(a, f.Op(i))
					if err != nil {
						return Handle{}, err
					}
					next = append(next, term)
				}
			}
			acc = next
			continue
		}
		for i, a := range acc {
			m, err := Mul(a, f)
			if err != nil {
				return Handle{}, err
			}
			acc[i] = m
		}
	}
	return newSum(acc), nil
}

func (e expairseq) substSelf(m *substitution, depth int) (Handle, error) {
	if to, ok := m.lookup(wrap(e)); ok {
		return to, nil
	}
	depth, err := nextDepth(depth)
	if err != nil {
		return Handle{}, err
	}
	ops := make([]Handle, e.nops())
	for i := range ops {
		s, err := e.op(i).n.substSelf(m, depth)
		if err != nil {
			return Handle{}, err
		}
		ops[i] = s
	}
	if e.isProduct {
		return newProduct(ops), nil
	}
	return newSum(ops), nil
}

func (e expairseq) diffSelf(sym *Symbol, depth int) (Handle, error) {
	depth, err := nextDepth(depth)
	if err != nil {
		return Handle{}, err
	}
	if !e.isProduct {
		terms := make([]Handle, e.nops())
		for i := range terms {
			d, err := e.op(i).n.diffSelf(sym, depth)
			if err != nil {
				return Handle{}, err
			}
			terms[i] = d
		}
		return newSum(terms), nil
	}
	// Product rule: d(f1*f2*...*fn) = sum_i df_i * (product of the rest).
	n := e.nops()
	var terms []Handle
	for i := 0; i < n; i++ {
		di, err := e.op(i).n.diffSelf(sym, depth)
		if err != nil {
			return Handle{}, err
		}
		if di.IsNumeric() {
			if v, _ := di.Numeric(); v.IsZero() {
				continue
			}
		}
		factors := []Handle{di}
		for j := 0; j < n; j++ {
			if j != i {
				factors = append(factors, e.op(j))
			}
		}
		terms = append(terms, newProduct(factors))
	}
	return newSum(terms), nil
}

func (e expairseq) compareSameKind(other node) int {
	o := other.(expairseq)
	if c := compareHandleSlices(pairRests(e.pairs), pairRests(o.pairs)); c != 0 {
		return c
	}
	for i := range e.pairs {
		if c := compareNumeric(e.pairs[i].coeff, o.pairs[i].coeff); c != 0 {
			return c
		}
	}
	return compareNumeric(e.overall, o.overall)
}

func pairRests(ps []pair) []Handle {
	out := make([]Handle, len(ps))
	for i, p := range ps {
		out[i] = p.rest
	}
	return out
}

func (e expairseq) has(target Handle) bool {
	if Equal(wrap(e), target) {
		return true
	}
	for i := 0; i < e.nops(); i++ {
		if e.op(i).Has(target) {
			return true
		}
	}
	return false
}

// newSum builds the canonical Sum over terms, running the full
// split/flatten/sort/combine/drop-zero/collapse pipeline.
func newSum(terms []Handle) Handle {
	return buildExpairseq(false, terms)
}

// newProduct builds the canonical Product over factors.
func newProduct(factors []Handle) Handle {
	return buildExpairseq(true, factors)
}

func buildExpairseq(isProduct bool, operands []Handle) Handle {
	var overall numeric.Number
	if isProduct {
		overall = numeric.One
	} else {
		overall = numeric.Zero
	}
	var pending []pair

	accumulate := func(n numeric.Number) {
		if isProduct {
			overall = mustNumeric(numeric.Mul(overall, n))
		} else {
			overall = mustNumeric(numeric.Add(overall, n))
		}
	}

	for _, o := range operands {
		switch {
		case o.Kind() == KindNumeric:
			v, _ := o.Numeric()
			accumulate(v)
		case !isProduct && o.Kind() == KindSum:
			e := o.n.(expairseq)
			pending = append(pending, e.pairs...)
			accumulate(e.overall)
		case isProduct && o.Kind() == KindProduct:
			e := o.n.(expairseq)
			pending = append(pending, e.pairs...)
			accumulate(e.overall)
		case !isProduct && o.Kind() == KindProduct:
			e := o.n.(expairseq)
			if e.hasOverallTerm() {
				rest := finishProduct(e.pairs, numeric.One)
				pending = append(pending, pair{rest: rest, coeff: e.overall})
			} else {
				pending = append(pending, pair{rest: o, coeff: numeric.One})
			}
		case isProduct && o.Kind() == KindPower:
			base, exp, ok := powerParts(o)
			if ok && (exp.Kind() == numeric.KindInteger || exp.Kind() == numeric.KindRational) {
				pending = append(pending, pair{rest: base, coeff: exp})
			} else {
				pending = append(pending, pair{rest: o, coeff: numeric.One})
			}
		default:
			pending = append(pending, pair{rest: o, coeff: numeric.One})
		}
	}

	sort.SliceStable(pending, func(i, j int) bool {
		return Compare(pending[i].rest, pending[j].rest) < 0
	})

	combined := pending[:0]
	for _, p := range pending {
		if len(combined) > 0 && Equal(combined[len(combined)-1].rest, p.rest) {
			last := &combined[len(combined)-1]
			last.coeff = mustNumeric(numeric.Add(last.coeff, p.coeff))
			continue
		}
		combined = append(combined, p)
	}

	final := combined[:0]
	hasFloat := overall.Kind() == numeric.KindFloat
	for _, p := range combined {
		if p.coeff.IsZero() {
			continue
		}
		if p.coeff.Kind() == numeric.KindFloat {
			hasFloat = true
		}
		final = append(final, p)
	}
	if hasFloat && overall.Kind() != numeric.KindFloat {
		overall = convertToFloatPrec(overall, cfg().FloatPrecision())
	}

	if isProduct {
		return finishProduct(final, overall)
	}
	return finishSum(final, overall)
}

func finishSum(pairs []pair, overall numeric.Number) Handle {
	if len(pairs) == 0 {
		return NewNumeric(overall)
	}
	if len(pairs) == 1 && overall.IsZero() {
		return buildTerm(pairs[0])
	}
	return wrap(expairseq{isProduct: false, overall: overall, pairs: pairs})
}

func finishProduct(pairs []pair, overall numeric.Number) Handle {
	if overall.IsZero() {
		return NewNumeric(numeric.Zero)
	}
	if len(pairs) == 0 {
		return NewNumeric(overall)
	}
	if len(pairs) == 1 && overall.IsOne() {
		return buildFactor(pairs[0])
	}
	return wrap(expairseq{isProduct: true, overall: overall, pairs: pairs})
}

func mustNumeric(n numeric.Number, err error) numeric.Number {
	if err != nil {
		// Add/Mul/Sub never error; only Div and Pow do. A panic here
		// would mean a future change started routing Div/Pow through
		// accumulate without updating this helper.
		panic(err)
	}
	return n
}

// IsSum reports whether h is a canonical sum.
func (h Handle) IsSum() bool {
	e, ok := h.n.(expairseq)
	return ok && !e.isProduct
}

// IsProduct reports whether h is a canonical product.
func (h Handle) IsProduct() bool {
	e, ok := h.n.(expairseq)
	return ok && e.isProduct
}
