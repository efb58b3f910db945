package poly_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"gocas.dev/gocas/expr"
	"gocas.dev/gocas/numeric"
	"gocas.dev/gocas/poly"
)

func num(v int64) expr.Handle { return expr.NewNumeric(numeric.IntegerFromInt64(v)) }

// buildCubic returns 3*x^2 + 2*x + 5.
func buildCubic(t *testing.T, x expr.Handle) expr.Handle {
	t.Helper()
	t1, err := expr.Mul(num(3), expr.Pow(x, num(2)))
	require.NoError(t, err)
	t2, err := expr.Mul(num(2), x)
	require.NoError(t, err)
	sum, err := expr.Add(t1, t2)
	require.NoError(t, err)
	sum, err = expr.Add(sum, num(5))
	require.NoError(t, err)
	return sum
}

func TestFromExprRoundTrips(t *testing.T) {
	x := expr.Sym("x")
	h := buildCubic(t, x)
	p, err := poly.FromExpr(h, x)
	require.NoError(t, err)
	require.Equal(t, 2, p.Degree())
	back, err := p.ToExpr()
	require.NoError(t, err)
	require.True(t, expr.Equal(h, back))
}

func TestFromExprRejectsNonPolynomialGenerator(t *testing.T) {
	x := expr.Sym("x")
	recip := expr.Pow(x, num(-1))
	_, err := poly.FromExpr(recip, x)
	require.Error(t, err)
}

func TestAddSubMul(t *testing.T) {
	x := expr.Sym("x")
	a, err := poly.FromExpr(x, x) // x
	require.NoError(t, err)
	b, err := poly.FromExpr(num(1), x) // 1
	require.NoError(t, err)

	sum, err := poly.Add(a, b)
	require.NoError(t, err)
	sumExpr, err := sum.ToExpr()
	require.NoError(t, err)
	require.Equal(t, "x + 1", sumExpr.String())

	prod, err := poly.Mul(sum, sum) // (x+1)^2
	require.NoError(t, err)
	require.Equal(t, 2, prod.Degree())
	prodExpr, err := prod.ToExpr()
	require.NoError(t, err)
	expanded, err := expr.Expand(prodExpr)
	require.NoError(t, err)
	require.Equal(t, "2*x + x^2 + 1", expanded.String())
}

func TestDegreeMismatchGeneratorsError(t *testing.T) {
	x, y := expr.Sym("x"), expr.Sym("y")
	px, err := poly.FromExpr(x, x)
	require.NoError(t, err)
	py, err := poly.FromExpr(y, y)
	require.NoError(t, err)
	_, err = poly.Add(px, py)
	require.Error(t, err)
}

func TestZeroPolyHasDegreeMinusOne(t *testing.T) {
	x := expr.Sym("x")
	z, err := poly.FromExpr(num(0), x)
	require.NoError(t, err)
	require.True(t, z.IsZero())
	require.Equal(t, -1, z.Degree())
}
