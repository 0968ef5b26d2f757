// SPDX-License-Identifier: MIT

// Package sparse - dense materialization and products.
//
// Densifying costs O(rows*cols) memory regardless of nnz. This is the
// documented scalability limit of the SPD check, not an optimization target.
package sparse

import (
	"github.com/katalvlaran/mmcsr/matrix"
)

// ToDense materializes the real parts into a *matrix.Dense.
// The finite-only policy is disabled so NaN/Inf entries reach the caller's
// kernels unchanged. Duplicate column entries in a row are summed.
// Complexity: Time O(rows*cols + nnz), Space O(rows*cols).
func (m *Matrix) ToDense() (*matrix.Dense, error) {
	d, err := matrix.NewDense(m.rows, m.cols, matrix.WithValidateNaNInf(false))
	if err != nil {
		return nil, sparseErrorf("ToDense", err)
	}
	var (
		r, k int
		row  []float64
	)
	for r = 0; r < m.rows; r++ {
		if row, err = d.RawRowView(r); err != nil {
			return nil, sparseErrorf("ToDense", err)
		}
		for k = m.rowPtr[r]; k < m.rowPtr[r+1]; k++ {
			row[m.colIndex[k]] += real(m.values[k])
		}
	}

	return d, nil
}

// ToDenseComplex materializes the full complex values as row slices.
// Complexity: Time O(rows*cols + nnz), Space O(rows*cols).
func (m *Matrix) ToDenseComplex() [][]complex128 {
	out := make([][]complex128, m.rows)
	var r, k int
	for r = 0; r < m.rows; r++ {
		out[r] = make([]complex128, m.cols)
		for k = m.rowPtr[r]; k < m.rowPtr[r+1]; k++ {
			out[r][m.colIndex[k]] += m.values[k]
		}
	}

	return out
}

// RealEmbedding returns the 2r×2c real matrix [[Re, -Im], [Im, Re]].
// For a square complex A, A is Hermitian positive definite iff the embedding
// is symmetric positive definite, which lets real-only backends decide it.
// Complexity: Time O(4*rows*cols + nnz), Space O(4*rows*cols).
func (m *Matrix) RealEmbedding() (*matrix.Dense, error) {
	d, err := matrix.NewDense(2*m.rows, 2*m.cols, matrix.WithValidateNaNInf(false))
	if err != nil {
		return nil, sparseErrorf("RealEmbedding", err)
	}
	var (
		r, k, c  int
		re, im   float64
		top, bot []float64
	)
	for r = 0; r < m.rows; r++ {
		if top, err = d.RawRowView(r); err != nil {
			return nil, sparseErrorf("RealEmbedding", err)
		}
		if bot, err = d.RawRowView(m.rows + r); err != nil {
			return nil, sparseErrorf("RealEmbedding", err)
		}
		for k = m.rowPtr[r]; k < m.rowPtr[r+1]; k++ {
			c = m.colIndex[k]
			re, im = real(m.values[k]), imag(m.values[k])
			top[c] += re
			top[m.cols+c] -= im
			bot[c] += im
			bot[m.cols+c] += re
		}
	}

	return d, nil
}

// MulVec computes y = A·x.
// Errors: ErrDimensionMismatch when len(x) != Cols().
// Complexity: O(rows + nnz).
func (m *Matrix) MulVec(x []complex128) ([]complex128, error) {
	if len(x) != m.cols {
		return nil, sparseErrorf("MulVec", ErrDimensionMismatch)
	}
	y := make([]complex128, m.rows)
	var r, k int
	for r = 0; r < m.rows; r++ {
		for k = m.rowPtr[r]; k < m.rowPtr[r+1]; k++ {
			y[r] += m.values[k] * x[m.colIndex[k]]
		}
	}

	return y, nil
}
