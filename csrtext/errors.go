// SPDX-License-Identifier: MIT
// Package csrtext: sentinel error set.

package csrtext

import (
	"errors"
	"fmt"
)

var (
	// ErrConversion marks an array-size inconsistency that makes the CSR arrays
	// impossible to walk (colIndex and values of different length). It is an
	// invariant violation and aborts the conversion before any byte is written.
	ErrConversion = errors.New("csrtext: inconsistent CSR arrays")

	// ErrUnsupportedField indicates a matrix field other than real or complex.
	ErrUnsupportedField = errors.New("csrtext: unsupported field")

	// ErrSyntax indicates a malformed CSR document on read.
	ErrSyntax = errors.New("csrtext: malformed document")

	// ErrNilMatrix indicates that a nil matrix was passed to Convert.
	ErrNilMatrix = errors.New("csrtext: nil matrix")
)

// csrErrorf wraps err with an operation tag, preserving it for errors.Is.
func csrErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
