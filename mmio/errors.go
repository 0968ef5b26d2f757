// SPDX-License-Identifier: MIT
// Package mmio: sentinel errors and the ParseError carrier.
//
// Every parse failure is returned as *ParseError wrapping exactly one of the
// sentinels below, so callers can branch with errors.As (class) or errors.Is
// (cause).

package mmio

import (
	"errors"
	"fmt"
)

var (
	// ErrBanner indicates a missing or malformed %%MatrixMarket banner line.
	ErrBanner = errors.New("mmio: invalid banner")

	// ErrUnsupported indicates a banner combination the reader does not handle
	// (non-matrix object, array+pattern, hermitian on a real field, ...).
	ErrUnsupported = errors.New("mmio: unsupported matrix type")

	// ErrSize indicates a missing or malformed size line.
	ErrSize = errors.New("mmio: invalid size line")

	// ErrEntry indicates a malformed data line (token count or number syntax).
	ErrEntry = errors.New("mmio: invalid entry")

	// ErrIndexRange indicates a 1-based coordinate outside the declared shape.
	ErrIndexRange = errors.New("mmio: entry index out of range")

	// ErrEntryCount indicates fewer or more data lines than declared.
	ErrEntryCount = errors.New("mmio: entry count mismatch")
)

// ParseError reports a malformed or unreadable Matrix Market input.
// Line is 1-based; 0 means the failure is not tied to a line (I/O, EOF).
type ParseError struct {
	Path string
	Line int
	Err  error
}

// Error renders "mmio: <path>:<line>: <cause>" omitting empty parts.
func (e *ParseError) Error() string {
	where := e.Path
	if where == "" {
		where = "<input>"
	}
	if e.Line > 0 {
		where = fmt.Sprintf("%s:%d", where, e.Line)
	}

	return fmt.Sprintf("mmio: %s: %v", where, e.Err)
}

// Unwrap exposes the cause for errors.Is.
func (e *ParseError) Unwrap() error { return e.Err }

// parseErrorf builds a *ParseError for line with a formatted cause wrapping sentinel.
func parseErrorf(line int, sentinel error, format string, args ...any) *ParseError {
	if format == "" {
		return &ParseError{Line: line, Err: sentinel}
	}

	return &ParseError{Line: line, Err: fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), sentinel)}
}

// WithPath stamps path onto err when it is a *ParseError; other errors are
// wrapped into a ParseError so the class is uniform at the file boundary.
func WithPath(path string, err error) error {
	if err == nil {
		return nil
	}
	var pe *ParseError
	if errors.As(err, &pe) {
		pe.Path = path

		return pe
	}

	return &ParseError{Path: path, Err: err}
}
