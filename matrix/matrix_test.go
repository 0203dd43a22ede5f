package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foldmat/foldmat/matrix"
	"github.com/foldmat/foldmat/pool"
	"github.com/foldmat/foldmat/render"
)

// TestRenderSource verifies *matrix.Matrix satisfies the render
// snapshot interface.
func TestRenderSource(_ *testing.T) {
	var _ render.Source = (*matrix.Matrix)(nil)
}

func mustFromRows(t *testing.T, rows [][]float64) *matrix.Matrix {
	t.Helper()
	m, err := matrix.FromRows(rows)
	require.NoError(t, err)
	return m
}

func TestChainedOperations(t *testing.T) {
	a := mustFromRows(t, [][]float64{{1, 2}, {4, 1}})
	b := mustFromRows(t, [][]float64{{1, 0}, {0, 1}})

	got := a.Multiply(b, matrix.Scalar(2)).Transpose().Subtract(b)

	assert.Equal(t, []float64{1, 8, 4, 1}, got.ToArray())
}

func TestAddSubtractRoundTrip(t *testing.T) {
	a := mustFromRows(t, [][]float64{{1.5, -2}, {0.25, 4}})
	b := mustFromRows(t, [][]float64{{3, 0.125}, {-7, 2}})

	got := matrix.AddOf(a, b).Subtract(b)

	assert.True(t, got.Equals(a))
}

func TestMultiplyIdentityNeutral(t *testing.T) {
	a := mustFromRows(t, [][]float64{{1.25, -2, 3}, {0.5, 7, -1}})

	got := matrix.MultiplyOf(a, matrix.New(3, 3))

	assert.True(t, got.Equals(a))
}

func TestScalarFoldingLaw(t *testing.T) {
	rows := [][]float64{{1, 2}, {3, 4}}

	single := matrix.MultiplyOf(mustFromRows(t, rows), matrix.Scalar(6))
	split := matrix.MultiplyOf(mustFromRows(t, rows), matrix.Scalar(2), matrix.Scalar(3))

	assert.True(t, single.Equals(split))
}

func TestPowerScenario(t *testing.T) {
	a := mustFromRows(t, [][]float64{{1, 2}, {4, 1}})

	a.Power(3)

	assert.Equal(t, []float64{25, 22, 44, 25}, a.ToArray())
}

func TestDeterminantScenario(t *testing.T) {
	a := mustFromRows(t, [][]float64{{6, 1, 1}, {4, -2, 5}, {2, 8, 7}})

	det, ok := a.Determinant()
	require.True(t, ok)
	assert.Equal(t, -306.0, det)
}

func TestShapeMismatchMultiplyNoop(t *testing.T) {
	a := mustFromRows(t, [][]float64{{1, 2}, {3, 4}})
	b := matrix.NewZero(3, 2)

	a.Multiply(b)

	assert.Equal(t, []float64{1, 2, 3, 4}, a.ToArray())
}

func TestSingularInvertNoop(t *testing.T) {
	a := mustFromRows(t, [][]float64{{3, 4}, {6, 8}})

	a.Invert()

	assert.Equal(t, []float64{3, 4, 6, 8}, a.ToArray())

	det, ok := a.Determinant()
	require.True(t, ok)
	assert.Equal(t, 0.0, det)
}

func TestInvertInvertRestores(t *testing.T) {
	rows := [][]float64{{4, 7}, {2, 6}}
	a := mustFromRows(t, rows)

	a.Invert().Invert()

	for r := 0; r < 2; r++ {
		for c := 0; c < 2; c++ {
			assert.InDelta(t, rows[r][c], a.At(r, c), 1e-12)
		}
	}
}

func TestMultiplyByInverseGivesIdentity(t *testing.T) {
	a := mustFromRows(t, [][]float64{{4, 7}, {2, 6}})

	id := matrix.MultiplyOf(a, a.Clone().Invert())

	for r := 0; r < 2; r++ {
		for c := 0; c < 2; c++ {
			want := 0.0
			if r == c {
				want = 1
			}
			assert.InDelta(t, want, id.At(r, c), 1e-12)
		}
	}
}

func TestEqualsShapeSensitive(t *testing.T) {
	a := mustFromRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	b := mustFromRows(t, [][]float64{{1, 2}, {3, 4}, {5, 6}})

	assert.False(t, a.Equals(b))
	assert.False(t, b.Equals(a))
}

func TestSetPoolIsolatedPool(t *testing.T) {
	// Arithmetic must be identical with a private pool installed.
	matrix.SetPool(pool.New())
	defer matrix.SetPool(nil)

	a := mustFromRows(t, [][]float64{{1, 2}, {3, 4}})
	b := mustFromRows(t, [][]float64{{5, 6}, {7, 8}})

	assert.Equal(t, []float64{19, 22, 43, 50}, matrix.MultiplyOf(a, b).ToArray())
}
