// SPDX-License-Identifier: MIT
// Package sparse: sentinel error set.
// Every message is prefixed with "sparse: ..."; callers match with errors.Is.

package sparse

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDimensions indicates non-positive rows or cols, or more rows than MaxRows.
	ErrInvalidDimensions = errors.New("sparse: dimensions must be in (0, MaxRows] x (0, max int]")

	// ErrOutOfRange indicates a row or column index outside the matrix bounds.
	ErrOutOfRange = errors.New("sparse: index out of range")

	// ErrInvalidCSR indicates that rowPtr/colIndex/values violate the CSR invariants.
	ErrInvalidCSR = errors.New("sparse: invalid CSR layout")

	// ErrDimensionMismatch indicates a vector whose length does not match the matrix.
	ErrDimensionMismatch = errors.New("sparse: dimension mismatch")

	// ErrNilMatrix indicates that a nil *Matrix was used.
	ErrNilMatrix = errors.New("sparse: nil matrix")
)

// sparseErrorf wraps err with an operation tag, preserving it for errors.Is.
func sparseErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
