// SPDX-License-Identifier: MIT
package sparse_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mmcsr/sparse"
)

// mustBuild ASSEMBLES a matrix from (i, j, v) triplets or fails the test.
func mustBuild(t *testing.T, rows, cols int, field sparse.Field, entries ...[3]float64) *sparse.Matrix {
	t.Helper()
	b, err := sparse.NewBuilder(rows, cols, field, sparse.General)
	require.NoError(t, err)
	for _, e := range entries {
		require.NoError(t, b.Append(int(e[0]), int(e[1]), complex(e[2], 0)))
	}
	m, err := b.Build()
	require.NoError(t, err)

	return m
}

func TestBuilder_CanonicalCSR(t *testing.T) {
	// Entries arrive out of order and (1,0) twice.
	m := mustBuild(t, 3, 3, sparse.FieldReal,
		[3]float64{2, 2, 5},
		[3]float64{1, 0, 1},
		[3]float64{0, 1, 2},
		[3]float64{1, 0, 3},
		[3]float64{0, 0, 1},
	)
	require.Equal(t, []int{0, 2, 3, 4}, m.RowPtr())
	require.Equal(t, []int{0, 1, 0, 2}, m.ColIndex())
	require.Equal(t, []complex128{1, 2, 4, 5}, m.Values())
	require.Equal(t, 4, m.NNZ())
	require.NoError(t, m.Validate())
}

func TestBuilder_EmptyRows(t *testing.T) {
	m := mustBuild(t, 5, 5, sparse.FieldReal,
		[3]float64{0, 0, 1},
		[3]float64{3, 4, 2},
		[3]float64{4, 1, 3},
	)
	require.Equal(t, []int{0, 1, 1, 1, 2, 3}, m.RowPtr())
	require.Len(t, m.RowPtr(), 6)
	require.Len(t, m.ColIndex(), 3)
}

func TestBuilder_Errors(t *testing.T) {
	_, err := sparse.NewBuilder(0, 1, sparse.FieldReal, sparse.General)
	require.ErrorIs(t, err, sparse.ErrInvalidDimensions)
	_, err = sparse.NewBuilder(sparse.MaxRows+1, 1, sparse.FieldReal, sparse.General)
	require.ErrorIs(t, err, sparse.ErrInvalidDimensions)
	_, err = sparse.NewCSR(2*sparse.MaxRows, 2*sparse.MaxRows, sparse.FieldReal, sparse.General, nil, nil, nil)
	require.ErrorIs(t, err, sparse.ErrInvalidDimensions)

	b, err := sparse.NewBuilder(2, 2, sparse.FieldReal, sparse.General)
	require.NoError(t, err)
	require.ErrorIs(t, b.Append(2, 0, 1), sparse.ErrOutOfRange)
	require.ErrorIs(t, b.Append(0, -1, 1), sparse.ErrOutOfRange)
	require.Zero(t, b.Len())
}

func TestNewCSR_Validation(t *testing.T) {
	m, err := sparse.NewCSR(2, 2, sparse.FieldComplex, sparse.Hermitian,
		[]int{0, 1, 2}, []int{1, 0}, []complex128{1i, -1i})
	require.NoError(t, err)
	require.Equal(t, sparse.FieldComplex, m.Field())
	require.Equal(t, sparse.Hermitian, m.Symmetry())

	cases := []struct {
		name     string
		rowPtr   []int
		colIndex []int
		values   []complex128
	}{
		{"short rowPtr", []int{0, 1}, []int{0}, []complex128{1}},
		{"nonzero base", []int{1, 1, 2}, []int{0, 1}, []complex128{1, 2}},
		{"decreasing", []int{0, 2, 1}, []int{0, 1}, []complex128{1, 2}},
		{"nnz mismatch", []int{0, 1, 3}, []int{0, 1}, []complex128{1, 2}},
		{"len mismatch", []int{0, 1, 2}, []int{0, 1}, []complex128{1}},
		{"column range", []int{0, 1, 2}, []int{0, 2}, []complex128{1, 2}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := sparse.NewCSR(2, 2, sparse.FieldReal, sparse.General, tc.rowPtr, tc.colIndex, tc.values)
			require.ErrorIs(t, err, sparse.ErrInvalidCSR)
		})
	}

	_, err = sparse.NewCSR(0, 2, sparse.FieldReal, sparse.General, []int{0}, nil, nil)
	require.ErrorIs(t, err, sparse.ErrInvalidDimensions)
}

func TestMatrix_AccessorsAreCopies(t *testing.T) {
	m := mustBuild(t, 2, 2, sparse.FieldReal, [3]float64{0, 0, 1}, [3]float64{1, 1, 2})
	rp := m.RowPtr()
	rp[0] = 99
	vals := m.Values()
	vals[0] = 42
	require.Equal(t, []int{0, 1, 2}, m.RowPtr())
	require.Equal(t, []complex128{1, 2}, m.Values())
}

func TestMatrix_AtAndRow(t *testing.T) {
	m := mustBuild(t, 3, 3, sparse.FieldReal,
		[3]float64{0, 2, 7},
		[3]float64{0, 0, 1},
		[3]float64{2, 1, 4},
	)
	v, err := m.At(0, 2)
	require.NoError(t, err)
	require.Equal(t, complex128(7), v)
	v, err = m.At(1, 1)
	require.NoError(t, err)
	require.Zero(t, v)
	_, err = m.At(3, 0)
	require.ErrorIs(t, err, sparse.ErrOutOfRange)

	cols, vals, err := m.Row(0)
	require.NoError(t, err)
	require.Equal(t, []int{0, 2}, cols)
	require.Equal(t, []complex128{1, 7}, vals)
	_, _, err = m.Row(-1)
	require.ErrorIs(t, err, sparse.ErrOutOfRange)
}

func TestMatrix_AtUnsortedRow(t *testing.T) {
	m, err := sparse.NewCSR(1, 3, sparse.FieldReal, sparse.General,
		[]int{0, 2}, []int{2, 0}, []complex128{5, 6})
	require.NoError(t, err)
	v, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, complex128(6), v)
}

func TestFieldAndSymmetryNames(t *testing.T) {
	f, ok := sparse.ParseField("COMPLEX")
	require.True(t, ok)
	require.Equal(t, sparse.FieldComplex, f)
	_, ok = sparse.ParseField("quaternion")
	require.False(t, ok)
	require.Equal(t, "pattern", sparse.FieldPattern.String())
	require.Equal(t, "unknown", sparse.Field(9).String())

	s, ok := sparse.ParseSymmetry("Skew-Symmetric")
	require.True(t, ok)
	require.Equal(t, sparse.SkewSymmetric, s)
	require.Equal(t, "hermitian", sparse.Hermitian.String())
}
