// Package matrix_test contains unit tests for the Dense implementation
// of the Matrix interface in the matrix package.
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/matform/matrix"
	"github.com/stretchr/testify/require"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects non-positive dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 5)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDense(5, 0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDense(-1, 3)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestNewDenseOverflow rejects shapes whose element count does not fit into int.
func TestNewDenseOverflow(t *testing.T) {
	_, err := matrix.NewDense(math.MaxInt/2+1, 2)
	require.ErrorIs(t, err, matrix.ErrTooLarge)
}

// TestRowsCols verifies that Rows() and Cols() return correct dimension values.
func TestRowsCols(t *testing.T) {
	m, err := matrix.NewDense(3, 4)
	require.NoError(t, err)

	require.Equal(t, 3, m.Rows())
	require.Equal(t, 4, m.Cols())
	r, c := m.Shape()
	require.Equal(t, [2]int{3, 4}, [2]int{r, c})
}

// TestAtSetOutOfBounds ensures At() and Set() return ErrOutOfRange on invalid access.
func TestAtSetOutOfBounds(t *testing.T) {
	m := MustDense(t, 2, 2)

	_, err := m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = m.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrIndexOutOfBounds) // deprecated alias still matches

	err = m.Set(2, 0, 1.23)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	err = m.Set(0, -1, 4.56)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestSetRejectsNonFinite checks the default NaN/Inf guard.
func TestSetRejectsNonFinite(t *testing.T) {
	m := MustDense(t, 1, 1)
	require.ErrorIs(t, m.Set(0, 0, math.NaN()), matrix.ErrNaNInf)
	require.ErrorIs(t, m.Set(0, 0, math.Inf(-1)), matrix.ErrNaNInf)
	require.Equal(t, 0.0, MustAt(t, m, 0, 0))
}

// TestSetGet validates Set() followed by At() on valid indices.
func TestSetGet(t *testing.T) {
	m := MustDense(t, 2, 3)
	require.NoError(t, m.Set(1, 2, 7.89))

	val, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 7.89, val)
}

// TestNewDenseFrom covers copy semantics, count mismatch and NaN rejection.
func TestNewDenseFrom(t *testing.T) {
	t.Parallel()

	src := []float64{1, 2, 3, 4, 5, 6}
	m, err := matrix.NewDenseFrom(2, 3, src)
	require.NoError(t, err)
	src[0] = 100 // must not leak into m
	CompareExact(t, [][]float64{{1, 2, 3}, {4, 5, 6}}, m)

	_, err = matrix.NewDenseFrom(2, 2, []float64{1, 2, 3})
	require.ErrorIs(t, err, matrix.ErrElementCountMismatch)

	_, err = matrix.NewDenseFrom(1, 2, []float64{1, math.NaN()})
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	_, err = matrix.NewDenseFrom(0, 2, nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestCloneIndependence ensures Clone() returns a deep copy that does not share storage.
func TestCloneIndependence(t *testing.T) {
	m := FromRows(t, [][]float64{{1, 0}, {0, 2}})

	clone := m.Clone()
	MustSet(t, clone, 0, 0, 3.0)

	require.Equal(t, 1.0, MustAt(t, m, 0, 0))
	require.Equal(t, 3.0, MustAt(t, clone, 0, 0))
}

// TestRawRow returns an independent copy of a row.
func TestRawRow(t *testing.T) {
	m := FromRows(t, [][]float64{{1, 2}, {3, 4}})
	row, err := m.RawRow(1)
	require.NoError(t, err)
	require.Equal(t, []float64{3, 4}, row)

	row[0] = 9
	require.Equal(t, 3.0, MustAt(t, m, 1, 0))

	_, err = m.RawRow(2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestStringOutput checks that String() formats the matrix as expected.
func TestStringOutput(t *testing.T) {
	m := FromRows(t, [][]float64{{1, 2.5}, {3, -4}})
	require.Equal(t, "[1, 2.5]\n[3, -4]\n", m.String())
}

// TestDoAndApply checks visiting order, early stop and in-place mapping.
func TestDoAndApply(t *testing.T) {
	m := FromRows(t, [][]float64{{1, 2}, {3, 4}})

	var seen []float64
	m.Do(func(_, _ int, v float64) bool {
		seen = append(seen, v)
		return len(seen) < 3
	})
	require.Equal(t, []float64{1, 2, 3}, seen)

	require.NoError(t, m.Apply(func(i, j int, v float64) float64 { return v*10 + float64(i+j) }))
	CompareExact(t, [][]float64{{10, 21}, {31, 42}}, m)

	err := m.Apply(func(_, _ int, _ float64) float64 { return math.Inf(1) })
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}
