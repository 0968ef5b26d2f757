// SPDX-License-Identifier: MIT

// Package sparse holds the sparse matrix data model shared by the Matrix
// Market reader, the CSR text converter and the SPD checker.
//
// A Matrix is immutable CSR storage: rowPtr of length rows+1, colIndex and
// values of length nnz, with complex128 values (real matrices carry a zero
// imaginary part). Builder turns triplets into the canonical CSR form
// (sorted columns, duplicates summed); ToDense/RealEmbedding materialize it
// for the dense kernels in package matrix.
package sparse
