// SPDX-License-Identifier: MIT

// Package mmio reads Matrix Market (.mtx) exchange files.
//
// Supported banners:
//
//	%%MatrixMarket matrix <coordinate|array> <real|complex|integer|pattern> <general|symmetric|skew-symmetric|hermitian>
//
// Read returns the matrix in canonical CSR form (package sparse) together with
// its Info; Info.String renders the metadata tuple written into CSR documents.
// Any malformed or unreadable input yields a *ParseError.
//
// Writing Matrix Market files is out of scope.
package mmio
