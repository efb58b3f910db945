package poly_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"gocas.dev/gocas/expr"
	"gocas.dev/gocas/poly"
)

func mustPoly(t *testing.T, h, gen expr.Handle) poly.Poly {
	t.Helper()
	p, err := poly.FromExpr(h, gen)
	require.NoError(t, err)
	return p
}

func polyOf(t *testing.T, x expr.Handle, coeffs ...int64) poly.Poly {
	t.Helper()
	var h expr.Handle
	for i, c := range coeffs {
		term, err := expr.Mul(num(c), expr.Pow(x, num(int64(i))))
		require.NoError(t, err)
		if i == 0 {
			h = term
		} else {
			h, err = expr.Add(h, term)
			require.NoError(t, err)
		}
	}
	return mustPoly(t, h, x)
}

func TestDivModExactDivision(t *testing.T) {
	x := expr.Sym("x")
	// (x+1)*(x+2) = x^2+3x+2
	a := polyOf(t, x, 2, 3, 1)
	b := polyOf(t, x, 1, 1) // x+1
	q, r, err := poly.DivMod(a, b)
	require.NoError(t, err)
	require.True(t, r.IsZero())
	qExpr, err := q.ToExpr()
	require.NoError(t, err)
	require.Equal(t, "x + 2", qExpr.String())
}

func TestDivModWithRemainder(t *testing.T) {
	x := expr.Sym("x")
	// x^2 + 1 divided by x+1: quotient x-1, remainder 2
	a := polyOf(t, x, 1, 0, 1)
	b := polyOf(t, x, 1, 1)
	q, r, err := poly.DivMod(a, b)
	require.NoError(t, err)
	require.False(t, r.IsZero())
	require.Equal(t, 0, r.Degree())
	v, ok := r.Coeff(0).Numeric()
	require.True(t, ok)
	require.Equal(t, "2", v.String())
	qExpr, err := q.ToExpr()
	require.NoError(t, err)
	require.Equal(t, "x - 1", qExpr.String())
}

func TestDivideErrorsOnInexactDivision(t *testing.T) {
	x := expr.Sym("x")
	a := polyOf(t, x, 1, 0, 1) // x^2+1
	b := polyOf(t, x, 1, 1)    // x+1
	_, err := poly.Divide(a, b)
	require.Error(t, err)
}

func TestPseudoRemExactForMonicDivisor(t *testing.T) {
	x := expr.Sym("x")
	// x^3+1 = (x+1)(x^2-x+1), divisor is monic so prem matches ordinary rem: 0.
	a := polyOf(t, x, 1, 0, 0, 1)
	b := polyOf(t, x, 1, 1)
	r, err := poly.PseudoRem(a, b)
	require.NoError(t, err)
	require.True(t, r.IsZero())
}

func TestDivModZeroDivisorErrors(t *testing.T) {
	x := expr.Sym("x")
	a := polyOf(t, x, 1, 1)
	var zero poly.Poly
	_, _, err := poly.DivMod(a, zero)
	require.Error(t, err)
}
