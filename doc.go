// Package mmcsr turns Matrix Market files into plain CSR text documents and
// tells you whether a matrix is positive definite.
//
// 🚀 What is mmcsr?
//
//	A small, deterministic toolkit that brings together:
//		• mmio: Matrix Market reader (coordinate & array; real, complex, integer, pattern)
//		• sparse: canonical CSR matrices + triplet builder
//		• csrtext: the CSR text document (write, read back, atomic file conversion)
//		• spd: positive-definiteness check over pluggable Cholesky backends
//		• matrix: dense core with validators and a native Cholesky kernel
//
// ✨ Why choose mmcsr?
//
//   - Byte-stable output: the same input always yields the same document
//   - No partial files: conversions write to a temp file and rename on success
//   - Swappable numerics: native kernel or gonum, same verdicts
//
// Under the hood, everything is organized under these subpackages:
//
//	matrix/  : Dense, validators, Cholesky
//	sparse/  : CSR Matrix, Builder, densification
//	mmio/    : Info, Read, ReadInfo, ParseError
//	csrtext/ : Document, Convert, ConvertFile, Read
//	spd/     : Factorizer, IsPositiveDefinite, Check
//	cmd/mmtool: convert, checkpd, info, version
//
// Quick example, the document for diag(2, 2):
//
//	# a.mtx
//	# (2, 2, 2, 'coordinate', 'real', 'symmetric')
//	3 2 2
//	0 0 2.00000000000000000000 0.0
//	1 1 2.00000000000000000000 0.0
//	2 -1 -1.00000000000000000000 0.0
//
//	go install github.com/katalvlaran/mmcsr/cmd/mmtool@latest
package mmcsr
