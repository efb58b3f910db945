package archive_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"gocas.dev/gocas/archive"
	"gocas.dev/gocas/expr"
	"gocas.dev/gocas/numeric"
	"gocas.dev/gocas/registry"
)

func TestMain(m *testing.M) {
	registry.Install()
	m.Run()
}

func roundTrip(t *testing.T, h expr.Handle) expr.Handle {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, archive.Archive(&buf, h))
	got, err := archive.Unarchive(&buf)
	require.NoError(t, err)
	return got
}

func TestRoundTripSymbol(t *testing.T) {
	x := expr.Sym("x")
	got := roundTrip(t, x)
	require.True(t, got.IsSymbol())
	require.Equal(t, x.String(), got.String())
}

func TestRoundTripIntegerRationalFloat(t *testing.T) {
	for _, h := range []expr.Handle{
		expr.NewNumeric(numeric.IntegerFromInt64(-7)),
		expr.NewNumeric(numeric.RationalFromInt64s(3, 4)),
		expr.NewNumeric(numeric.FloatFromFloat64(1.5, 64)),
	} {
		got := roundTrip(t, h)
		require.True(t, got.IsNumeric())
		require.Equal(t, h.String(), got.String())
	}
}

func TestRoundTripSumOfPowersOfTrig(t *testing.T) {
	x := expr.Sym("x")
	sinx := expr.NewFunction("sin", []expr.Handle{x})
	cosx := expr.NewFunction("cos", []expr.Handle{x})
	two := expr.NewNumeric(numeric.Two)
	sin2, cos2 := expr.Pow(sinx, two), expr.Pow(cosx, two)
	sum, err := expr.Add(sin2, cos2)
	require.NoError(t, err)

	got := roundTrip(t, sum)
	require.Equal(t, sum.String(), got.String())
}

func TestArchiveIsStableAcrossTwoWritePasses(t *testing.T) {
	x := expr.Sym("x")
	sinx := expr.NewFunction("sin", []expr.Handle{x})
	cosx := expr.NewFunction("cos", []expr.Handle{x})
	two := expr.NewNumeric(numeric.Two)
	sum, err := expr.Add(expr.Pow(sinx, two), expr.Pow(cosx, two))
	require.NoError(t, err)

	var first, second bytes.Buffer
	require.NoError(t, archive.Archive(&first, sum))
	require.NoError(t, archive.Archive(&second, sum))
	require.Equal(t, first.Bytes(), second.Bytes())
}

func TestRoundTripProductOfEqualFactors(t *testing.T) {
	x := expr.Sym("x")
	shared, err := expr.Add(x, expr.NewNumeric(numeric.One))
	require.NoError(t, err)
	prod, err := expr.Mul(shared, shared)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, archive.Archive(&buf, prod))
	got, err := archive.Unarchive(&buf)
	require.NoError(t, err)
	require.Equal(t, prod.String(), got.String())
}

func TestRoundTripListTupleMatrixRelationalFail(t *testing.T) {
	x, y := expr.Sym("x"), expr.Sym("y")
	list := expr.NewList([]expr.Handle{x, y, expr.NewNumeric(numeric.One)})
	tup := expr.NewTuple([]expr.Handle{x, y})
	m, err := expr.NewMatrix(2, 2, []expr.Handle{x, y, y, x})
	require.NoError(t, err)
	rel := x.Lt(y)
	fail := expr.NewFail("Derivative", []expr.Handle{x, y})

	for _, h := range []expr.Handle{list, tup, m, rel, fail} {
		got := roundTrip(t, h)
		require.Equal(t, h.String(), got.String())
	}
}

func TestUnarchiveRejectsBadMagic(t *testing.T) {
	_, err := archive.Unarchive(bytes.NewReader([]byte("not an archive stream")))
	require.Error(t, err)
}

func TestUnarchiveRejectsFutureVersion(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, archive.Archive(&buf, expr.Sym("x")))
	raw := buf.Bytes()
	raw[4] = raw[4] + 1
	_, err := archive.Unarchive(bytes.NewReader(raw))
	require.True(t, archive.ErrVersion.Is(err))
}

func TestUnarchiveRejectsTruncatedStream(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, archive.Archive(&buf, expr.Sym("x")))
	raw := buf.Bytes()
	_, err := archive.Unarchive(bytes.NewReader(raw[:len(raw)-1]))
	require.Error(t, err)
}
