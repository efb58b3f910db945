package registry_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"gocas.dev/gocas/expr"
	"gocas.dev/gocas/numeric"
	"gocas.dev/gocas/registry"
)

func TestMain(m *testing.M) {
	registry.Install()
	m.Run()
}

func TestSinEvaluatesNumericArgument(t *testing.T) {
	h := expr.NewFunction("sin", []expr.Handle{expr.NewNumeric(numeric.IntegerFromInt64(0))})
	v, ok := h.Numeric()
	require.True(t, ok)
	f, ok := v.(numeric.Float)
	require.True(t, ok)
	got, _ := f.Float64()
	require.InDelta(t, math.Sin(0), got, 1e-9)
}

func TestSinStaysSymbolicOverSymbol(t *testing.T) {
	x := expr.Sym("x")
	h := expr.NewFunction("sin", []expr.Handle{x})
	require.True(t, h.IsFunction())
}

func TestCosDerivativeIsNegativeSin(t *testing.T) {
	x := expr.Sym("x")
	h := expr.NewFunction("cos", []expr.Handle{x})
	d, err := expr.Diff(h, x)
	require.NoError(t, err)
	require.Contains(t, d.String(), "sin")
}

func TestExpDerivativeIsExp(t *testing.T) {
	x := expr.Sym("x")
	h := expr.NewFunction("exp", []expr.Handle{x})
	d, err := expr.Diff(h, x)
	require.NoError(t, err)
	require.True(t, d.IsFunction())
	name, _ := d.FunctionName()
	require.Equal(t, "exp", name)
}

func TestInstallIsIdempotent(t *testing.T) {
	registry.Install()
	registry.Install()
	h := expr.NewFunction("abs", []expr.Handle{expr.NewNumeric(numeric.IntegerFromInt64(-3))})
	_, ok := h.Numeric()
	require.True(t, ok)
}
