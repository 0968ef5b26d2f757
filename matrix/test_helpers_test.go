// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for kernels.
//   • Keep fixtures explicit so SPD/non-SPD expectations are verifiable by hand.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/mmcsr/matrix"
)

// hide WRAPS any Matrix to hide its concrete type from type assertions.
// Implementation:
//   - Stage 1: Embed matrix.Matrix to forward all methods.
//   - Stage 2: Use hide{X} in tests to force non-*Dense (fallback) paths.
//
// AI-Hints:
//   - Useful to assert fast-path == fallback bitwise.
type hide struct{ matrix.Matrix }

// MustDense ALLOCATES an r×c *Dense or fails the test (fatal on error).
func MustDense(t *testing.T, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	if err != nil {
		t.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}

	return m
}

// MustFrom BUILDS a *Dense from row slices or fails the test.
func MustFrom(t *testing.T, rows [][]float64, opts ...matrix.Option) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFrom(rows, opts...)
	if err != nil {
		t.Fatalf("NewDenseFrom: %v", err)
	}

	return m
}

// MustAt READS (i,j) or fails the test.
func MustAt(t *testing.T, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

// MustSet WRITES (i,j) or fails the test.
func MustSet(t *testing.T, m matrix.Matrix, i, j int, v float64) {
	t.Helper()
	if err := m.Set(i, j, v); err != nil {
		t.Fatalf("Set(%d,%d,%g): %v", i, j, v, err)
	}
}

// RandomSPD BUILDS a deterministic n×n SPD matrix A = BᵀB + n·I from a seed.
// Complexity: O(n^3).
func RandomSPD(t *testing.T, n int, seed int64) *matrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	b := make([][]float64, n)
	var i, j, k int
	for i = 0; i < n; i++ {
		b[i] = make([]float64, n)
		for j = 0; j < n; j++ {
			b[i][j] = rng.Float64()*2 - 1
		}
	}
	a := MustDense(t, n, n)
	var sum float64
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			sum = 0
			for k = 0; k < n; k++ {
				sum += b[k][i] * b[k][j]
			}
			if i == j {
				sum += float64(n)
			}
			MustSet(t, a, i, j, sum)
		}
	}

	return a
}

// reconstruct RETURNS L·Lᵀ as row slices.
func reconstruct(t *testing.T, L matrix.Matrix) [][]float64 {
	t.Helper()
	n := L.Rows()
	out := make([][]float64, n)
	var i, j, k int
	for i = 0; i < n; i++ {
		out[i] = make([]float64, n)
		for j = 0; j < n; j++ {
			for k = 0; k < n; k++ {
				out[i][j] += MustAt(t, L, i, k) * MustAt(t, L, j, k)
			}
		}
	}

	return out
}
