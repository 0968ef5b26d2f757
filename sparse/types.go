// SPDX-License-Identifier: MIT

// Package sparse: descriptive enums carried by a Matrix.
package sparse

import "strings"

// Field is the numeric field a matrix was declared with.
type Field int

// Field values. Real and Complex are the fields the CSR document supports;
// Integer and Pattern are accepted on input and stored as real values.
const (
	FieldReal Field = iota
	FieldComplex
	FieldInteger
	FieldPattern
)

var fieldNames = [...]string{
	FieldReal:    "real",
	FieldComplex: "complex",
	FieldInteger: "integer",
	FieldPattern: "pattern",
}

// String returns the Matrix Market spelling of the field.
func (f Field) String() string {
	if f < 0 || int(f) >= len(fieldNames) {
		return "unknown"
	}

	return fieldNames[f]
}

// ParseField maps a case-insensitive Matrix Market field name to a Field.
func ParseField(s string) (Field, bool) {
	s = strings.ToLower(s)
	for i, name := range fieldNames {
		if name == s {
			return Field(i), true
		}
	}

	return 0, false
}

// Symmetry is the structural symmetry a matrix was declared with.
type Symmetry int

// Symmetry values as declared by the Matrix Market banner.
const (
	General Symmetry = iota
	Symmetric
	SkewSymmetric
	Hermitian
)

var symmetryNames = [...]string{
	General:       "general",
	Symmetric:     "symmetric",
	SkewSymmetric: "skew-symmetric",
	Hermitian:     "hermitian",
}

// String returns the Matrix Market spelling of the symmetry.
func (s Symmetry) String() string {
	if s < 0 || int(s) >= len(symmetryNames) {
		return "unknown"
	}

	return symmetryNames[s]
}

// ParseSymmetry maps a case-insensitive Matrix Market symmetry name to a Symmetry.
func ParseSymmetry(s string) (Symmetry, bool) {
	s = strings.ToLower(s)
	for i, name := range symmetryNames {
		if name == s {
			return Symmetry(i), true
		}
	}

	return 0, false
}
