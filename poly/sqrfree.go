package poly

import (
	"gocas.dev/gocas/expr"
	"gocas.dev/gocas/numeric"
)

// Derivative returns dp/d(gen).
func Derivative(p Poly) (Poly, error) {
	if p.Degree() <= 0 {
		return Poly{gen: p.gen}, nil
	}
	out := make([]expr.Handle, p.Degree())
	for i := 1; i <= p.Degree(); i++ {
		scaled, err := expr.Mul(p.Coeff(i), expr.NewNumeric(numeric.IntegerFromInt64(int64(i))))
		if err != nil {
			return Poly{}, err
		}
		out[i-1] = scaled
	}
	return Poly{gen: p.gen, coeffs: out}.normalize(), nil
}

// SquareFreePart returns p with every repeated irreducible factor
// collapsed to multiplicity 1: p / gcd(p, p').
func SquareFreePart(p Poly) (Poly, error) {
	if p.Degree() <= 0 {
		return p, nil
	}
	dp, err := Derivative(p)
	if err != nil {
		return Poly{}, err
	}
	if dp.IsZero() {
		return p, nil
	}
	g, err := FullGCD(p, dp)
	if err != nil {
		return Poly{}, err
	}
	if g.Degree() <= 0 {
		return p, nil
	}
	return Quo(p, g)
}

// Factor pairs a square-free polynomial with the multiplicity it
// appears at in a Decompose result.
type Factor struct {
	Poly         Poly
	Multiplicity int
}

// Decompose runs Yun's algorithm, factoring p into square-free pieces
// p = content * prod(Factor[i].Poly ^ Factor[i].Multiplicity), with
// every Factor[i].Poly pairwise coprime and square-free. It does not
// factor the pieces further (that needs irreducibility testing, which
// this package does not implement); each Factor.Poly may still be a
// product of several distinct irreducibles, just none repeated.
func Decompose(p Poly) ([]Factor, expr.Handle, error) {
	if p.IsZero() {
		return nil, expr.NewNumeric(numeric.Zero), nil
	}
	pp, content, err := PrimitivePart(p)
	if err != nil {
		return nil, expr.Handle{}, err
	}
	if pp.Degree() <= 0 {
		return nil, content, nil
	}
	dp, err := Derivative(pp)
	if err != nil {
		return nil, expr.Handle{}, err
	}
	a0, err := FullGCD(pp, dp)
	if err != nil {
		return nil, expr.Handle{}, err
	}
	b, err := Quo(pp, a0)
	if err != nil {
		return nil, expr.Handle{}, err
	}
	c, err := Quo(dp, a0)
	if err != nil {
		return nil, expr.Handle{}, err
	}
	bPrime, err := Derivative(b)
	if err != nil {
		return nil, expr.Handle{}, err
	}
	d, err := Sub(c, bPrime)
	if err != nil {
		return nil, expr.Handle{}, err
	}

	// g := gcd(b,d) isolates exactly the multiplicity-i factors at each
	// step: b's factors all appear once, d's terms each drop the
	// derivative-contributed factor of one irreducible, so only the
	// factors b and d still share -- the ones whose multiplicity in p
	// was exactly i -- survive the gcd.
	var factors []Factor
	for i := 1; b.Degree() > 0; i++ {
		g, err := FullGCD(b, d)
		if err != nil {
			return nil, expr.Handle{}, err
		}
		if g.Degree() > 0 {
			factors = append(factors, Factor{Poly: g, Multiplicity: i})
		}
		b, err = Quo(b, g)
		if err != nil {
			return nil, expr.Handle{}, err
		}
		c, err = Quo(d, g)
		if err != nil {
			return nil, expr.Handle{}, err
		}
		bPrime, err = Derivative(b)
		if err != nil {
			return nil, expr.Handle{}, err
		}
		d, err = Sub(c, bPrime)
		if err != nil {
			return nil, expr.Handle{}, err
		}
	}
	return factors, content, nil
}
