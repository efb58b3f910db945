package poly_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"gocas.dev/gocas/expr"
	"gocas.dev/gocas/poly"
)

func TestContentExtractsIntegerGCD(t *testing.T) {
	x := expr.Sym("x")
	// 6x^2 + 9x + 3 has content 3.
	p := polyOf(t, x, 3, 9, 6)
	c, err := poly.Content(p)
	require.NoError(t, err)
	v, ok := c.Numeric()
	require.True(t, ok)
	require.Equal(t, "3", v.String())

	pp, content, err := poly.PrimitivePart(p)
	require.NoError(t, err)
	require.True(t, expr.Equal(content, c))
	ppExpr, err := pp.ToExpr()
	require.NoError(t, err)
	require.Equal(t, "3*x + 2*x^2 + 1", ppExpr.String())
}

func TestGCDOfCoprimePolysIsUnit(t *testing.T) {
	x := expr.Sym("x")
	a := polyOf(t, x, 1, 1)  // x+1
	b := polyOf(t, x, -1, 1) // x-1
	g, err := poly.GCD(a, b)
	require.NoError(t, err)
	require.Equal(t, 0, g.Degree())
}

func TestGCDFindsSharedFactor(t *testing.T) {
	x := expr.Sym("x")
	// a = (x+1)(x+2) = x^2+3x+2, b = (x+1)(x+3) = x^2+4x+3.
	a := polyOf(t, x, 2, 3, 1)
	b := polyOf(t, x, 3, 4, 1)
	g, err := poly.FullGCD(a, b)
	require.NoError(t, err)
	require.Equal(t, 1, g.Degree())
	gExpr, err := g.ToExpr()
	require.NoError(t, err)
	require.Equal(t, "x + 1", gExpr.String())
}
