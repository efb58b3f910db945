package poly

import (
	"strconv"

	"gocas.dev/gocas/expr"
	"gocas.dev/gocas/numeric"
)

// Poly is a univariate polynomial in one generator, with coefficients
// that may themselves be arbitrary expr.Handle values (numeric or
// symbolic in other generators). coeffs[i] holds the coefficient of
// gen^i; the slice is kept trimmed so the last entry is never a
// literal numeric zero, except for the zero polynomial, which has an
// empty coeffs slice.
type Poly struct {
	gen    expr.Handle
	coeffs []expr.Handle
}

// FromExpr collects h into a polynomial in gen. Every coefficient
// produced by expr.Coeff must be free of gen; if gen survives inside
// one (e.g. h contains 1/gen, or gen appears as a function argument),
// FromExpr reports ErrNotUnivariate rather than silently dropping it.
func FromExpr(h, gen expr.Handle) (Poly, error) {
	deg, err := expr.Degree(h, gen)
	if err != nil {
		return Poly{}, err
	}
	coeffs := make([]expr.Handle, deg+1)
	for i := 0; i <= deg; i++ {
		c, err := expr.Coeff(h, gen, i)
		if err != nil {
			return Poly{}, err
		}
		if c.Has(gen) {
			return Poly{}, ErrNotUnivariate.New("generator survives in coefficient of degree " + strconv.Itoa(i))
		}
		coeffs[i] = c
	}
	p := Poly{gen: gen, coeffs: coeffs}.normalize()

	// expr.Degree/Coeff only place non-negative integer powers of gen;
	// a negative or non-integer exponent (1/gen, gen^(1/2), gen inside
	// a function argument) is invisible to that pipeline rather than
	// reported. Catch it here by checking that nothing was lost.
	back, err := p.ToExpr()
	if err != nil {
		return Poly{}, err
	}
	expanded, err := expr.Expand(h)
	if err != nil {
		return Poly{}, err
	}
	if !expr.Equal(expanded, back) {
		return Poly{}, ErrNotUnivariate.New("generator " + gen.String() + " appears non-polynomially")
	}
	return p, nil
}

// ToExpr reconstructs the polynomial as a sum of coeff*gen^i terms.
func (p Poly) ToExpr() (expr.Handle, error) {
	if p.IsZero() {
		return expr.NewNumeric(numeric.Zero), nil
	}
	var terms []expr.Handle
	for i, c := range p.coeffs {
		if isLiteralZero(c) {
			continue
		}
		term, err := expr.Mul(c, expr.Pow(p.gen, expr.NewNumeric(numeric.IntegerFromInt64(int64(i)))))
		if err != nil {
			return expr.Handle{}, err
		}
		terms = append(terms, term)
	}
	sum := terms[0]
	var err error
	for _, t := range terms[1:] {
		sum, err = expr.Add(sum, t)
		if err != nil {
			return expr.Handle{}, err
		}
	}
	return sum, nil
}

// Generator returns the polynomial's variable.
func (p Poly) Generator() expr.Handle { return p.gen }

// Degree returns the polynomial's degree, or -1 for the zero
// polynomial.
func (p Poly) Degree() int { return len(p.coeffs) - 1 }

// IsZero reports whether p is the zero polynomial.
func (p Poly) IsZero() bool { return len(p.coeffs) == 0 }

// LeadingCoeff returns the coefficient of the highest-degree term, or
// the numeric zero handle if p is the zero polynomial.
func (p Poly) LeadingCoeff() expr.Handle {
	if p.IsZero() {
		return expr.NewNumeric(numeric.Zero)
	}
	return p.coeffs[len(p.coeffs)-1]
}

// Coeff returns the coefficient of gen^i, or the numeric zero handle
// if i is out of range.
func (p Poly) Coeff(i int) expr.Handle {
	if i < 0 || i >= len(p.coeffs) {
		return expr.NewNumeric(numeric.Zero)
	}
	return p.coeffs[i]
}

func isLiteralZero(h expr.Handle) bool {
	v, ok := h.Numeric()
	return ok && v.IsZero()
}

// normalize strips trailing coefficients that are literal numeric
// zeros, so Degree reflects the true degree of the polynomial rather
// than the width of the slice FromExpr happened to allocate.
func (p Poly) normalize() Poly {
	n := len(p.coeffs)
	for n > 0 && isLiteralZero(p.coeffs[n-1]) {
		n--
	}
	p.coeffs = p.coeffs[:n]
	return p
}

func sameGenerator(a, b Poly) error {
	if a.IsZero() || b.IsZero() {
		return nil
	}
	if !expr.Equal(a.gen, b.gen) {
		return ErrNotUnivariate.New("operands have different generators: " + a.gen.String() + " vs " + b.gen.String())
	}
	return nil
}

func generatorOf(a, b Poly) expr.Handle {
	if a.IsZero() {
		return b.gen
	}
	return a.gen
}

// Add returns a+b.
func Add(a, b Poly) (Poly, error) {
	if err := sameGenerator(a, b); err != nil {
		return Poly{}, err
	}
	n := len(a.coeffs)
	if len(b.coeffs) > n {
		n = len(b.coeffs)
	}
	out := make([]expr.Handle, n)
	for i := 0; i < n; i++ {
		ca, cb := a.Coeff(i), b.Coeff(i)
		sum, err := expr.Add(ca, cb)
		if err != nil {
			return Poly{}, err
		}
		out[i] = sum
	}
	return Poly{gen: generatorOf(a, b), coeffs: out}.normalize(), nil
}

// Sub returns a-b.
func Sub(a, b Poly) (Poly, error) {
	neg, err := Scale(b, expr.NewNumeric(numeric.MinusOne))
	if err != nil {
		return Poly{}, err
	}
	return Add(a, neg)
}

// Scale returns p with every coefficient multiplied by c.
func Scale(p Poly, c expr.Handle) (Poly, error) {
	out := make([]expr.Handle, len(p.coeffs))
	for i, pc := range p.coeffs {
		v, err := expr.Mul(pc, c)
		if err != nil {
			return Poly{}, err
		}
		out[i] = v
	}
	return Poly{gen: p.gen, coeffs: out}.normalize(), nil
}

// Mul returns a*b via the schoolbook convolution of coefficients.
func Mul(a, b Poly) (Poly, error) {
	if err := sameGenerator(a, b); err != nil {
		return Poly{}, err
	}
	if a.IsZero() || b.IsZero() {
		return Poly{}, nil
	}
	out := make([]expr.Handle, len(a.coeffs)+len(b.coeffs)-1)
	for i := range out {
		out[i] = expr.NewNumeric(numeric.Zero)
	}
	for i, ca := range a.coeffs {
		if isLiteralZero(ca) {
			continue
		}
		for j, cb := range b.coeffs {
			if isLiteralZero(cb) {
				continue
			}
			term, err := expr.Mul(ca, cb)
			if err != nil {
				return Poly{}, err
			}
			sum, err := expr.Add(out[i+j], term)
			if err != nil {
				return Poly{}, err
			}
			out[i+j] = sum
		}
	}
	return Poly{gen: generatorOf(a, b), coeffs: out}.normalize(), nil
}
