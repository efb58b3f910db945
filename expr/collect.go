// Copyright 2014 Rob Pike. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package expr

import "gocas.dev/gocas/numeric"

func sumTerms(h Handle) []Handle {
	if h.IsSum() {
		n := h.Nops()
		out := make([]Handle, n)
		for i := 0; i < n; i++ {
			out[i] = h.Op(i)
		}
		return out
	}
	return []Handle{h}
}

// termDegree returns the exponent sym is raised to within term, where
// term is a single monomial (not itself a sum): 0 if sym doesn't
// appear, 1 for a bare sym, the exponent for sym^n, and the sum of the
// factors' degrees for a product.
func termDegree(term, sym Handle) int {
	switch {
	case Equal(term, sym):
		return 1
	case term.IsPower():
		if Equal(term.Base(), sym) {
			if n, ok := intExponent(term.Exponent()); ok {
				return n
			}
		}
		return 0
	case term.IsProduct():
		total := 0
		for i := 0; i < term.Nops(); i++ {
			total += termDegree(term.Op(i), sym)
		}
		return total
	default:
		return 0
	}
}

func intExponent(exp Handle) (int, bool) {
	v, ok := exp.Numeric()
	if !ok {
		return 0, false
	}
	iv, ok := v.(numeric.Integer)
	if !ok || !iv.IsInt64() {
		return 0, false
	}
	return int(iv.Int64()), true
}

// Degree returns the highest power of sym appearing in h once expanded,
// or 0 if sym does not appear at all.
func Degree(h, sym Handle) (int, error) {
	expanded, err := Expand(h)
	if err != nil {
		return 0, err
	}
	best := 0
	for _, term := range sumTerms(expanded) {
		if d := termDegree(term, sym); d > best {
			best = d
		}
	}
	return best, nil
}

// Ldegree returns the lowest power of sym appearing in h once expanded.
func Ldegree(h, sym Handle) (int, error) {
	expanded, err := Expand(h)
	if err != nil {
		return 0, err
	}
	terms := sumTerms(expanded)
	if len(terms) == 0 {
		return 0, nil
	}
	least := termDegree(terms[0], sym)
	for _, term := range terms[1:] {
		if d := termDegree(term, sym); d < least {
			least = d
		}
	}
	return least, nil
}

// Coeff returns the coefficient of sym^n in h once expanded: the sum,
// over every term whose sym-degree is exactly n, of that term with its
// sym^n factor stripped out.
func Coeff(h, sym Handle, n int) (Handle, error) {
	expanded, err := Expand(h)
	if err != nil {
		return Handle{}, err
	}
	var terms []Handle
	for _, term := range sumTerms(expanded) {
		if termDegree(term, sym) == n {
			terms = append(terms, stripDegree(term, sym, n))
		}
	}
	return newSum(terms), nil
}

func stripDegree(term, sym Handle, n int) Handle {
	if n == 0 {
		return term
	}
	if Equal(term, sym) || (term.IsPower() && Equal(term.Base(), sym)) {
		return NewNumeric(numeric.One)
	}
	if term.IsProduct() {
		var factors []Handle
		removed := false
		for i := 0; i < term.Nops(); i++ {
			f := term.Op(i)
			if !removed && (Equal(f, sym) || (f.IsPower() && Equal(f.Base(), sym))) {
				removed = true
				continue
			}
			factors = append(factors, f)
		}
		if len(factors) == 0 {
			return NewNumeric(numeric.One)
		}
		return newProduct(factors)
	}
	return term
}

// Collect rewrites h as an explicit sum of Coeff(h,sym,k)*sym^k terms,
// one per degree between h's Ldegree and Degree in sym, dropping any
// degree whose coefficient vanishes.
func Collect(h, sym Handle) (Handle, error) {
	lo, err := Ldegree(h, sym)
	if err != nil {
		return Handle{}, err
	}
	hi, err := Degree(h, sym)
	if err != nil {
		return Handle{}, err
	}
	var terms []Handle
	for k := lo; k <= hi; k++ {
		c, err := Coeff(h, sym, k)
		if err != nil {
			return Handle{}, err
		}
		if v, ok := c.Numeric(); ok && v.IsZero() {
			continue
		}
		terms = append(terms, newProduct([]Handle{c, newPower(sym, NewNumeric(numeric.IntegerFromInt64(int64(k))))}))
	}
	return newSum(terms), nil
}
