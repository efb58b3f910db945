package poly_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"gocas.dev/gocas/expr"
	"gocas.dev/gocas/poly"
)

func TestDerivative(t *testing.T) {
	x := expr.Sym("x")
	// 3x^2+2x+5
	p := polyOf(t, x, 5, 2, 3)
	d, err := poly.Derivative(p)
	require.NoError(t, err)
	dExpr, err := d.ToExpr()
	require.NoError(t, err)
	require.Equal(t, "6*x + 2", dExpr.String())
}

func TestDecomposeFindsRepeatedFactor(t *testing.T) {
	x := expr.Sym("x")
	// (x-1)^2 * (x-2) = x^3 - 4x^2 + 5x - 2
	p := polyOf(t, x, -2, 5, -4, 1)
	factors, content, err := poly.Decompose(p)
	require.NoError(t, err)
	v, ok := content.Numeric()
	require.True(t, ok)
	require.True(t, v.IsOne())

	byMult := map[int]int{}
	for _, f := range factors {
		byMult[f.Multiplicity] = f.Poly.Degree()
	}
	require.Equal(t, 1, byMult[1])
	require.Equal(t, 1, byMult[2])
}

func TestSquareFreePartStripsMultiplicity(t *testing.T) {
	x := expr.Sym("x")
	p := polyOf(t, x, -2, 5, -4, 1) // (x-1)^2(x-2)
	sf, err := poly.SquareFreePart(p)
	require.NoError(t, err)
	require.Equal(t, 2, sf.Degree())
}
