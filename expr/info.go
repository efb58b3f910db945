package expr

import "gocas.dev/gocas/numeric"

// Info reports whether h carries the named boolean attribute, the
// predicate side of the rewrite pipeline's evalf/info pair. Unknown
// predicate names report false rather than erroring, the same
// don't-know-don't-care stance ivy's attribute lookups take for an
// unrecognized key.
func (h Handle) Info(predicate string) bool {
	switch predicate {
	case "numeric":
		return h.IsNumeric()
	case "integer":
		v, ok := h.Numeric()
		return ok && v.IsInteger()
	case "posint":
		v, ok := h.Numeric()
		return ok && v.IsInteger() && v.IsPositive()
	case "positive":
		v, ok := h.Numeric()
		return ok && v.IsPositive()
	case "rational":
		v, ok := h.Numeric()
		return ok && v.IsRational()
	case "real":
		v, ok := h.Numeric()
		return ok && v.IsReal()
	case "symbol":
		return h.IsSymbol()
	case "polynomial":
		return h.isPolynomial()
	default:
		return false
	}
}

// isPolynomial reports whether h is built from symbols and numeric
// leaves using only sums, products, and integer, non-negative powers.
func (h Handle) isPolynomial() bool {
	switch {
	case h.IsSymbol(), h.IsNumeric():
		return true
	case h.IsSum(), h.IsProduct():
		for i := 0; i < h.Nops(); i++ {
			if !h.Op(i).isPolynomial() {
				return false
			}
		}
		return true
	case h.IsPower():
		exp, ok := h.Exponent().Numeric()
		if !ok {
			return false
		}
		e, ok := exp.(numeric.Integer)
		if !ok || e.Sign() < 0 {
			return false
		}
		return h.Base().isPolynomial()
	default:
		return false
	}
}
