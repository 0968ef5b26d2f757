// SPDX-License-Identifier: MIT

// Package sparse - compressed sparse row (CSR) matrix.
//
// Purpose:
//   - Hold one immutable CSR instance: rowPtr (rows+1), colIndex (nnz), values (nnz).
//   - Values are complex128; real matrices carry a zero imaginary part.
//   - Validate every CSR invariant at construction so consumers can index freely.
//
// AI-Hints:
//   - Build from triplets with Builder; NewCSR is for arrays that are already CSR.
//   - Accessors return copies; the matrix is never mutated after construction.
package sparse

import (
	"fmt"
	"sort"
)

// MaxRows bounds the row count of a Matrix. rowPtr always holds rows+1
// integers, so the bound keeps that array allocatable whatever nnz is.
const MaxRows = 1 << 28

// validShape reports whether rows×cols is a constructible CSR shape.
func validShape(rows, cols int) bool {
	return rows > 0 && cols > 0 && rows <= MaxRows
}

// Matrix is a read-only sparse matrix in CSR layout.
// For each row r, the range [rowPtr[r], rowPtr[r+1]) of colIndex/values holds
// that row's entries.
type Matrix struct {
	rows, cols int
	field      Field
	symmetry   Symmetry
	rowPtr     []int
	colIndex   []int
	values     []complex128
}

// NewCSR validates and copies the given CSR arrays into a new Matrix.
// Implementation:
//   - Stage 1: validate shape (rows, cols > 0, rows <= MaxRows).
//   - Stage 2: copy arrays and run Validate on the result.
//
// Errors:
//   - ErrInvalidDimensions, ErrInvalidCSR (wrapped with the violated invariant).
//
// Complexity:
//   - Time O(rows + nnz), Space O(rows + nnz).
func NewCSR(rows, cols int, field Field, sym Symmetry, rowPtr, colIndex []int, values []complex128) (*Matrix, error) {
	if !validShape(rows, cols) {
		return nil, sparseErrorf("NewCSR", ErrInvalidDimensions)
	}
	m := &Matrix{
		rows:     rows,
		cols:     cols,
		field:    field,
		symmetry: sym,
		rowPtr:   append([]int(nil), rowPtr...),
		colIndex: append([]int(nil), colIndex...),
		values:   append([]complex128(nil), values...),
	}
	if err := m.Validate(); err != nil {
		return nil, sparseErrorf("NewCSR", err)
	}

	return m, nil
}

// Validate checks the CSR invariants:
// len(rowPtr)=rows+1, rowPtr[0]=0, non-decreasing rowPtr, rowPtr[rows]=nnz,
// len(colIndex)=len(values)=nnz, and every column index in [0, cols).
// Complexity: O(rows + nnz).
func (m *Matrix) Validate() error {
	if m == nil {
		return ErrNilMatrix
	}
	if len(m.rowPtr) != m.rows+1 {
		return fmt.Errorf("rowPtr length %d, want %d: %w", len(m.rowPtr), m.rows+1, ErrInvalidCSR)
	}
	if m.rowPtr[0] != 0 {
		return fmt.Errorf("rowPtr[0]=%d, want 0: %w", m.rowPtr[0], ErrInvalidCSR)
	}
	if len(m.colIndex) != len(m.values) {
		return fmt.Errorf("colIndex length %d != values length %d: %w", len(m.colIndex), len(m.values), ErrInvalidCSR)
	}
	for r := 0; r < m.rows; r++ {
		if m.rowPtr[r+1] < m.rowPtr[r] {
			return fmt.Errorf("rowPtr decreases at row %d: %w", r, ErrInvalidCSR)
		}
	}
	if m.rowPtr[m.rows] != len(m.colIndex) {
		return fmt.Errorf("rowPtr[%d]=%d, want nnz=%d: %w", m.rows, m.rowPtr[m.rows], len(m.colIndex), ErrInvalidCSR)
	}
	for k, c := range m.colIndex {
		if c < 0 || c >= m.cols {
			return fmt.Errorf("colIndex[%d]=%d outside [0,%d): %w", k, c, m.cols, ErrInvalidCSR)
		}
	}

	return nil
}

// Dims returns (rows, cols).
func (m *Matrix) Dims() (rows, cols int) { return m.rows, m.cols }

// Rows returns the row count.
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the column count.
func (m *Matrix) Cols() int { return m.cols }

// NNZ returns the number of stored entries.
func (m *Matrix) NNZ() int { return len(m.values) }

// Field returns the declared numeric field.
func (m *Matrix) Field() Field { return m.field }

// Symmetry returns the declared structural symmetry.
func (m *Matrix) Symmetry() Symmetry { return m.symmetry }

// RowPtr returns a copy of the row pointer array (length rows+1).
func (m *Matrix) RowPtr() []int { return append([]int(nil), m.rowPtr...) }

// ColIndex returns a copy of the column index array (length nnz).
func (m *Matrix) ColIndex() []int { return append([]int(nil), m.colIndex...) }

// Values returns a copy of the value array (length nnz).
func (m *Matrix) Values() []complex128 { return append([]complex128(nil), m.values...) }

// Row returns the column indices and values stored for row i (copies).
func (m *Matrix) Row(i int) ([]int, []complex128, error) {
	if i < 0 || i >= m.rows {
		return nil, nil, sparseErrorf("Row", ErrOutOfRange)
	}
	lo, hi := m.rowPtr[i], m.rowPtr[i+1]

	return append([]int(nil), m.colIndex[lo:hi]...), append([]complex128(nil), m.values[lo:hi]...), nil
}

// At returns the value at (i, j); entries not stored read as zero.
// Rows built by Builder are column-sorted, so the lookup is a binary search;
// rows of arbitrary CSR input fall back to a linear scan.
// Complexity: O(log k) for sorted rows, O(k) otherwise (k = entries in row i).
func (m *Matrix) At(i, j int) (complex128, error) {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		return 0, sparseErrorf("At", ErrOutOfRange)
	}
	lo, hi := m.rowPtr[i], m.rowPtr[i+1]
	cols := m.colIndex[lo:hi]
	if sort.IntsAreSorted(cols) {
		k := sort.SearchInts(cols, j)
		if k < len(cols) && cols[k] == j {
			return m.values[lo+k], nil
		}

		return 0, nil
	}
	var sum complex128
	for k, c := range cols {
		if c == j {
			sum += m.values[lo+k]
		}
	}

	return sum, nil
}
