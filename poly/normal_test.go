package poly_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"gocas.dev/gocas/expr"
	"gocas.dev/gocas/poly"
)

func TestNormalCancelsCommonFactor(t *testing.T) {
	x := expr.Sym("x")
	// (x^2-1)/(x-1) should reduce to x+1.
	numExpr := buildFromCoeffs(t, x, -1, 0, 1) // x^2-1
	denExpr := buildFromCoeffs(t, x, -1, 1)    // x-1
	frac, err := expr.Div(numExpr, denExpr)
	require.NoError(t, err)
	reduced, err := poly.Normal(frac, x)
	require.NoError(t, err)
	require.Equal(t, "x + 1", reduced.String())
}

func TestNormalLeavesCoprimeRatioAlone(t *testing.T) {
	x := expr.Sym("x")
	numExpr := buildFromCoeffs(t, x, 1, 1) // x+1
	denExpr := buildFromCoeffs(t, x, 1, 1, 1)
	frac, err := expr.Div(numExpr, denExpr)
	require.NoError(t, err)
	reduced, err := poly.Normal(frac, x)
	require.NoError(t, err)
	require.True(t, reduced.IsValid())
}

func buildFromCoeffs(t *testing.T, x expr.Handle, coeffs ...int64) expr.Handle {
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
	return h
}
