package poly

import (
	"gocas.dev/gocas/expr"
	"gocas.dev/gocas/numeric"
)

// shift returns p*gen^d, realized as a slice shift rather than a full
// multiplication.
func shift(p Poly, d int) Poly {
	if p.IsZero() || d == 0 {
		return p
	}
	out := make([]expr.Handle, len(p.coeffs)+d)
	for i := range out[:d] {
		out[i] = expr.NewNumeric(numeric.Zero)
	}
	copy(out[d:], p.coeffs)
	return Poly{gen: p.gen, coeffs: out}
}

// DivMod divides a by b over the coefficient field, via plain
// polynomial long division: at each step it cancels a's current
// leading term against b's using field division of the leading
// coefficients. It requires the coefficients to support exact
// division (expr.Div), so it is only exact when those coefficients
// live in a field (numeric rationals/floats, or symbolic ratios); for
// a ring of coefficients where that isn't guaranteed, use PseudoRem.
func DivMod(a, b Poly) (quo, rem Poly, err error) {
	if b.IsZero() {
		return Poly{}, Poly{}, ErrZeroDivisor.New("DivMod")
	}
	if err := sameGenerator(a, b); err != nil {
		return Poly{}, Poly{}, err
	}
	gen := generatorOf(a, b)
	width := a.Degree() - b.Degree() + 1
	if width < 0 {
		width = 0
	}
	quoCoeffs := make([]expr.Handle, width)
	for i := range quoCoeffs {
		quoCoeffs[i] = expr.NewNumeric(numeric.Zero)
	}
	rem = a
	for !rem.IsZero() && rem.Degree() >= b.Degree() {
		d := rem.Degree() - b.Degree()
		factor, ferr := expr.Div(rem.LeadingCoeff(), b.LeadingCoeff())
		if ferr != nil {
			return Poly{}, Poly{}, ferr
		}
		quoCoeffs[d] = factor
		sub, serr := Scale(shift(b, d), factor)
		if serr != nil {
			return Poly{}, Poly{}, serr
		}
		rem, err = Sub(rem, sub)
		if err != nil {
			return Poly{}, Poly{}, err
		}
	}
	quo = Poly{gen: gen, coeffs: quoCoeffs}.normalize()
	return quo, rem, nil
}

// Quo returns the quotient of a/b (see DivMod).
func Quo(a, b Poly) (Poly, error) {
	q, _, err := DivMod(a, b)
	return q, err
}

// Rem returns the remainder of a/b (see DivMod).
func Rem(a, b Poly) (Poly, error) {
	_, r, err := DivMod(a, b)
	return r, err
}

// PseudoRem computes the pseudo-remainder of a divided by b: the
// remainder of lc(b)^(deg(a)-deg(b)+1) * a divided by b, computed
// without ever dividing a coefficient. This keeps every intermediate
// value in the same ring the inputs came from, which is what makes it
// the workhorse of exact-integer GCD computation (PRS algorithms)
// instead of DivMod's field division.
func PseudoRem(a, b Poly) (Poly, error) {
	if b.IsZero() {
		return Poly{}, ErrZeroDivisor.New("PseudoRem")
	}
	if err := sameGenerator(a, b); err != nil {
		return Poly{}, err
	}
	if a.Degree() < b.Degree() {
		return a, nil
	}
	lcB := b.LeadingCoeff()
	r := a
	e := a.Degree() - b.Degree() + 1
	for !r.IsZero() && r.Degree() >= b.Degree() {
		d := r.Degree() - b.Degree()
		lhs, err := Scale(r, lcB)
		if err != nil {
			return Poly{}, err
		}
		rhsPoly, err := Scale(shift(b, d), r.LeadingCoeff())
		if err != nil {
			return Poly{}, err
		}
		r, err = Sub(lhs, rhsPoly)
		if err != nil {
			return Poly{}, err
		}
		e--
	}
	if e > 0 {
		factor := expr.NewNumeric(numeric.One)
		for i := 0; i < e; i++ {
			var err error
			factor, err = expr.Mul(factor, lcB)
			if err != nil {
				return Poly{}, err
			}
		}
		var err error
		r, err = Scale(r, factor)
		if err != nil {
			return Poly{}, err
		}
	}
	return r, nil
}

// Divide performs exact division: it returns an error if b does not
// divide a evenly (DivMod leaves a nonzero remainder).
func Divide(a, b Poly) (Poly, error) {
	q, r, err := DivMod(a, b)
	if err != nil {
		return Poly{}, err
	}
	if !r.IsZero() {
		return Poly{}, ErrNotExactDivision.New("Divide")
	}
	return q, nil
}
