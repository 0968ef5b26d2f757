// SPDX-License-Identifier: MIT
// Package matrix - Cholesky factorization kernel.
//
// Purpose:
//   - Decide symmetric positive definiteness by attempting A = L·Lᵀ.
//   - Keep the kernel deterministic (fixed j→i→k loop order, no pivoting).
//
// Notes:
//   - Only the lower triangle of A is read. Callers that need a strict SPD
//     answer validate symmetry first (ValidateSymmetric).

package matrix

import (
	"fmt"
	"math"
)

// Operation name constants for unified error wrapping.
const (
	opCholesky = "Cholesky"
)

// ZeroSum is the initial sum value for the inner products of the kernel.
const ZeroSum = 0.0

// ZeroPivot is the bound a Cholesky pivot must strictly exceed.
const ZeroPivot = 0.0

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Cholesky computes the lower-triangular factor L with A = L·Lᵀ.
// Implementation:
//   - Stage 1: Validate m (not nil, square); allocate L (n×n, finite-only policy off).
//   - Stage 2: For j=0..n-1: d = A[j,j] − Σ_k<j L[j,k]²; require d > 0; L[j,j] = √d;
//     then for i>j: L[i,j] = (A[i,j] − Σ_k<j L[i,k]·L[j,k]) / L[j,j].
//
// Behavior highlights:
//   - Fast path on *Dense operates on the flat buffers; fallback uses At.
//   - A NaN anywhere in the active column poisons d and is reported as ErrNaNInf.
//
// Inputs:
//   - m: square Matrix (n×n). Only the lower triangle (i ≥ j) is read.
//
// Returns:
//   - *Dense: L, lower triangular with a strictly positive diagonal.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare (Stage 1).
//   - ErrNaNInf when a pivot is NaN or ±Inf (Stage 2).
//   - ErrNotPositiveDefinite when a pivot d ≤ 0 (Stage 2).
//
// Determinism:
//   - Fixed j→i→k loop order; bit-for-bit reproducible.
//
// Complexity:
//   - Time O(n^3/3), Space O(n^2).
//
// AI-Hints:
//   - Use as an SPD oracle: success ⇔ A (lower-triangle view) is positive definite.
//   - Pass *Dense to hit the flat-slice fast path.
func Cholesky(m Matrix) (*Dense, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opCholesky, err)
	}

	n := m.Rows()
	L, err := NewDense(n, n, WithValidateNaNInf(false))
	if err != nil {
		return nil, matrixErrorf(opCholesky, err)
	}

	a, fast := m.(*Dense)
	at := func(i, j int) (float64, error) {
		if fast {
			return a.data[i*n+j], nil
		}

		return m.At(i, j)
	}

	var (
		i, j, k int
		sum, d  float64
		v, ljj  float64
	)
	for j = 0; j < n; j++ {
		// Diagonal pivot.
		if v, err = at(j, j); err != nil {
			return nil, matrixErrorf(opCholesky, err)
		}
		sum = ZeroSum
		for k = 0; k < j; k++ {
			sum += L.data[j*n+k] * L.data[j*n+k]
		}
		d = v - sum
		if math.IsNaN(d) || math.IsInf(d, 0) {
			return nil, matrixErrorf(opCholesky, fmt.Errorf("pivot %d: %w", j, ErrNaNInf))
		}
		if d <= ZeroPivot {
			return nil, matrixErrorf(opCholesky, fmt.Errorf("pivot %d: %w", j, ErrNotPositiveDefinite))
		}
		ljj = math.Sqrt(d)
		L.data[j*n+j] = ljj

		// Column j below the diagonal.
		for i = j + 1; i < n; i++ {
			if v, err = at(i, j); err != nil {
				return nil, matrixErrorf(opCholesky, err)
			}
			sum = ZeroSum
			for k = 0; k < j; k++ {
				sum += L.data[i*n+k] * L.data[j*n+k]
			}
			L.data[i*n+j] = (v - sum) / ljj
		}
	}

	return L, nil
}
