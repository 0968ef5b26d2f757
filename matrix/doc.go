// SPDX-License-Identifier: MIT

// Package matrix provides the dense linear-algebra core used by the SPD checker.
//
// The matrix package provides:
//
//   - Dense: a row-major float64 matrix with bounds-checked At/Set and an
//     optional finite-only numeric policy (options.go).
//   - Validators: a single source of truth for nil/square/symmetric/finite checks.
//   - Cholesky: a deterministic A = L·Lᵀ kernel whose success is the SPD oracle.
//
// Errors are package sentinels (errors.go) wrapped with an operation tag;
// match them with errors.Is.
//
// Dense materialization costs O(n²) memory; sparse inputs are densified by the
// caller (see package sparse) before they reach these kernels.
package matrix
