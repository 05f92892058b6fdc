// SPDX-License-Identifier: MIT

// Package matrix_test verifies Dense storage semantics:
//  1. Constructor shape contracts and sentinel errors.
//  2. Bounds-checked At/Set with context-wrapped sentinels.
//  3. The extended-real cost policy (+Inf legal, NaN/-Inf rejected).
//  4. Deep-copy independence of Clone.
package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/akarpova/tourbound/matrix"
)

func TestNewDense_ShapeContracts(t *testing.T) {
	// Valid shape allocates a zero-filled buffer.
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	require.Equal(t, 2, m.Rows())
	require.Equal(t, 3, m.Cols())

	v, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 0.0, v)

	// Non-positive dimensions are rejected up-front.
	_, err = matrix.NewDense(0, 3)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.NewDense(2, -1)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestNewDenseFromRows_PolicyAndShape(t *testing.T) {
	inf := math.Inf(1)

	// +Inf entries are legal forbidden-edge data.
	m, err := matrix.NewDenseFromRows([][]float64{
		{inf, 1},
		{2, inf},
	})
	require.NoError(t, err)
	v, err := m.At(0, 0)
	require.NoError(t, err)
	require.True(t, math.IsInf(v, 1))

	// Ragged input violates the rectangular contract.
	_, err = matrix.NewDenseFromRows([][]float64{{0, 1}, {2}})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	// NaN and -Inf are never valid costs.
	_, err = matrix.NewDenseFromRows([][]float64{{0, math.NaN()}, {1, 0}})
	require.ErrorIs(t, err, matrix.ErrBadCost)
	_, err = matrix.NewDenseFromRows([][]float64{{0, math.Inf(-1)}, {1, 0}})
	require.ErrorIs(t, err, matrix.ErrBadCost)

	// Empty input has no shape.
	_, err = matrix.NewDenseFromRows(nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestDense_AtSet_BoundsAndPolicy(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	// In-range write/read round-trips.
	require.NoError(t, m.Set(0, 1, 4.5))
	v, err := m.At(0, 1)
	require.NoError(t, err)
	require.Equal(t, 4.5, v)

	// +Inf write is accepted (forbidden edge).
	require.NoError(t, m.Set(1, 0, math.Inf(1)))

	// Out-of-range indices return the sentinel through the context wrapper.
	_, err = m.At(2, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	err = m.Set(0, -1, 1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	// NaN / -Inf writes are rejected without mutating the cell.
	err = m.Set(0, 0, math.NaN())
	require.ErrorIs(t, err, matrix.ErrBadCost)
	err = m.Set(0, 0, math.Inf(-1))
	require.ErrorIs(t, err, matrix.ErrBadCost)
	v, err = m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 0.0, v)
}

func TestDense_Clone_Independence(t *testing.T) {
	m, err := matrix.NewDenseFromRows([][]float64{
		{0, 1},
		{2, 0},
	})
	require.NoError(t, err)

	cp, ok := m.Clone().(*matrix.Dense)
	require.True(t, ok, "Clone must preserve the concrete type")

	// Mutating the clone must not leak into the original.
	require.NoError(t, cp.Set(0, 1, 99))
	orig, err := m.At(0, 1)
	require.NoError(t, err)
	require.Equal(t, 1.0, orig)

	// And vice versa.
	require.NoError(t, m.Set(1, 0, 7))
	kept, err := cp.At(1, 0)
	require.NoError(t, err)
	require.Equal(t, 2.0, kept)
}
