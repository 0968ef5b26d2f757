// SPDX-License-Identifier: MIT

package csrtext

import (
	"fmt"

	"github.com/katalvlaran/mmcsr/sparse"
)

// FieldKind selects the data-line layout. It is a closed variant: Real or Complex.
type FieldKind int

const (
	// Real renders "ptr ind re 0.0".
	Real FieldKind = iota
	// Complex renders "ptr ind re im".
	Complex
)

// String returns "real" or "complex".
func (k FieldKind) String() string {
	if k == Complex {
		return "complex"
	}

	return "real"
}

// FieldKindOf maps a matrix field onto the document variant.
// Errors: ErrUnsupportedField for integer and pattern fields.
func FieldKindOf(f sparse.Field) (FieldKind, error) {
	switch f {
	case sparse.FieldReal:
		return Real, nil
	case sparse.FieldComplex:
		return Complex, nil
	default:
		return 0, fmt.Errorf("%s: %w", f, ErrUnsupportedField)
	}
}
