package poly

import (
	"math/big"

	"github.com/sirupsen/logrus"

	"gocas.dev/gocas/expr"
	"gocas.dev/gocas/numeric"
)

// Content returns the GCD of p's integer coefficients, signed to match
// the leading coefficient. If p has any coefficient that isn't an
// exact integer (a symbolic coefficient, or a rational/float one),
// Content logs a fallback notice and reports a content of 1: the
// caller still gets a valid primitive-part factorization, just not a
// reduced one.
func Content(p Poly) (expr.Handle, error) {
	if p.IsZero() {
		return expr.NewNumeric(numeric.Zero), nil
	}
	var g *big.Int
	for _, c := range p.coeffs {
		v, ok := c.Numeric()
		if !ok {
			logrus.WithField("generator", p.gen.String()).Warn("poly: content fallback to 1, symbolic coefficient")
			return expr.NewNumeric(numeric.One), nil
		}
		iv, ok := v.(numeric.Integer)
		if !ok {
			logrus.WithField("generator", p.gen.String()).Warn("poly: content fallback to 1, non-integer coefficient")
			return expr.NewNumeric(numeric.One), nil
		}
		if iv.Sign() == 0 {
			continue
		}
		abs := new(big.Int).Abs(iv.Int)
		if g == nil {
			g = abs
		} else {
			g = new(big.Int).GCD(nil, nil, g, abs)
		}
	}
	if g == nil {
		return expr.NewNumeric(numeric.One), nil
	}
	if lead, ok := p.LeadingCoeff().Numeric(); ok {
		if li, ok := lead.(numeric.Integer); ok && li.Sign() < 0 {
			g = new(big.Int).Neg(g)
		}
	}
	return expr.NewNumeric(numeric.NewInteger(g)), nil
}

// PrimitivePart divides p by its Content, returning the primitive
// polynomial alongside the content that was removed.
func PrimitivePart(p Poly) (Poly, expr.Handle, error) {
	c, err := Content(p)
	if err != nil {
		return Poly{}, expr.Handle{}, err
	}
	if p.IsZero() {
		return p, c, nil
	}
	out := make([]expr.Handle, len(p.coeffs))
	for i, co := range p.coeffs {
		v, err := expr.Div(co, c)
		if err != nil {
			return Poly{}, expr.Handle{}, err
		}
		out[i] = v
	}
	return Poly{gen: p.gen, coeffs: out}.normalize(), c, nil
}
