package poly

import (
	"gocas.dev/gocas/expr"
	"gocas.dev/gocas/numeric"
)

// splitNumDen separates h's top-level product into a numerator and a
// denominator, by pulling any factor raised to a negative integer
// power into the denominator (inverted to a positive power there).
// Anything else -- including the whole of h when it isn't a product
// at all -- is treated as an opaque numerator factor; this is what
// lets Normal run over an expression containing generators it knows
// nothing about, exactly as poly.FromExpr does for coefficients.
func splitNumDen(h expr.Handle) (num, den expr.Handle) {
	factors := []expr.Handle{h}
	if h.IsProduct() {
		factors = factors[:0]
		for i := 0; i < h.Nops(); i++ {
			factors = append(factors, h.Op(i))
		}
	}
	num = expr.NewNumeric(numeric.One)
	den = expr.NewNumeric(numeric.One)
	for _, f := range factors {
		base, n, ok := negativeIntegerPower(f)
		if ok {
			den, _ = expr.Mul(den, expr.Pow(base, expr.NewNumeric(numeric.IntegerFromInt64(-n))))
			continue
		}
		num, _ = expr.Mul(num, f)
	}
	return num, den
}

func negativeIntegerPower(f expr.Handle) (base expr.Handle, n int64, ok bool) {
	if !f.IsPower() {
		return expr.Handle{}, 0, false
	}
	v, ok := f.Exponent().Numeric()
	if !ok {
		return expr.Handle{}, 0, false
	}
	iv, ok := v.(numeric.Integer)
	if !ok || !iv.IsInt64() || iv.Int64() >= 0 {
		return expr.Handle{}, 0, false
	}
	return f.Base(), iv.Int64(), true
}

// Normal reduces h, read as one product of factors, to lowest terms in
// gen: factors raised to a negative integer power form the denominator,
// the rest the numerator, and the GCD of the two is cancelled.
// Subexpressions that don't involve gen are carried through as opaque
// polynomial coefficients rather than expanded. Normal does not bring a
// sum of fractions over a common denominator, and it does not replace
// non-polynomial subexpressions in gen by fresh symbols: a numerator or
// denominator that is not a polynomial in gen fails in FromExpr.
func Normal(h, gen expr.Handle) (expr.Handle, error) {
	numExpr, denExpr := splitNumDen(h)
	pNum, err := FromExpr(numExpr, gen)
	if err != nil {
		return expr.Handle{}, err
	}
	pDen, err := FromExpr(denExpr, gen)
	if err != nil {
		return expr.Handle{}, err
	}
	if pDen.IsZero() {
		return expr.Handle{}, ErrZeroDivisor.New("Normal")
	}
	if pDen.Degree() > 0 || !isLiteralOne(pDen.LeadingCoeff()) {
		g, err := FullGCD(pNum, pDen)
		if err != nil {
			return expr.Handle{}, err
		}
		if g.Degree() > 0 {
			pNum, err = Quo(pNum, g)
			if err != nil {
				return expr.Handle{}, err
			}
			pDen, err = Quo(pDen, g)
			if err != nil {
				return expr.Handle{}, err
			}
		}
	}
	numOut, err := pNum.ToExpr()
	if err != nil {
		return expr.Handle{}, err
	}
	if pDen.Degree() <= 0 && isLiteralOne(pDen.LeadingCoeff()) {
		return numOut, nil
	}
	denOut, err := pDen.ToExpr()
	if err != nil {
		return expr.Handle{}, err
	}
	return expr.Div(numOut, denOut)
}

func isLiteralOne(h expr.Handle) bool {
	v, ok := h.Numeric()
	return ok && v.IsOne()
}
