// SPDX-License-Identifier: MIT

package mmio

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/mmcsr/sparse"
)

// Banner tokens.
const (
	bannerPrefix = "%%matrixmarket"
	objectMatrix = "matrix"
	commentMark  = '%'
)

// Format is the storage layout declared by the banner.
type Format string

// Supported layouts.
const (
	FormatCoordinate Format = "coordinate"
	FormatArray      Format = "array"
)

// Info is the metadata of a Matrix Market file: the banner plus the size line.
// Entries is the declared count for coordinate files and rows*cols for arrays.
type Info struct {
	Rows     int
	Cols     int
	Entries  int
	Format   Format
	Field    sparse.Field
	Symmetry sparse.Symmetry
}

// String renders the metadata tuple as the raw format line of a CSR document:
//
//	(3, 3, 4, 'coordinate', 'real', 'symmetric')
func (i Info) String() string {
	return fmt.Sprintf("(%d, %d, %d, '%s', '%s', '%s')",
		i.Rows, i.Cols, i.Entries, i.Format, i.Field, i.Symmetry)
}

// ParseInfo is the inverse of Info.String.
// Errors: ErrSize for a malformed tuple, ErrUnsupported for unknown names.
func ParseInfo(s string) (Info, error) {
	s = strings.TrimSpace(s)
	if len(s) < 2 || s[0] != '(' || s[len(s)-1] != ')' {
		return Info{}, fmt.Errorf("info tuple %q: %w", s, ErrSize)
	}
	parts := strings.Split(s[1:len(s)-1], ",")
	if len(parts) != 6 {
		return Info{}, fmt.Errorf("info tuple %q: want 6 fields: %w", s, ErrSize)
	}
	for k := range parts {
		parts[k] = strings.Trim(strings.TrimSpace(parts[k]), "'")
	}

	var (
		info Info
		err  error
		ok   bool
	)
	if info.Rows, err = atoi(parts[0]); err != nil {
		return Info{}, fmt.Errorf("rows %q: %w", parts[0], ErrSize)
	}
	if info.Cols, err = atoi(parts[1]); err != nil {
		return Info{}, fmt.Errorf("cols %q: %w", parts[1], ErrSize)
	}
	if info.Entries, err = atoi(parts[2]); err != nil {
		return Info{}, fmt.Errorf("entries %q: %w", parts[2], ErrSize)
	}
	info.Format = Format(strings.ToLower(parts[3]))
	if info.Format != FormatCoordinate && info.Format != FormatArray {
		return Info{}, fmt.Errorf("format %q: %w", parts[3], ErrUnsupported)
	}
	if info.Field, ok = sparse.ParseField(parts[4]); !ok {
		return Info{}, fmt.Errorf("field %q: %w", parts[4], ErrUnsupported)
	}
	if info.Symmetry, ok = sparse.ParseSymmetry(parts[5]); !ok {
		return Info{}, fmt.Errorf("symmetry %q: %w", parts[5], ErrUnsupported)
	}

	return info, nil
}

// parseBanner decodes "%%MatrixMarket matrix <format> <field> <symmetry>".
// Matching is case-insensitive.
func parseBanner(line string) (Format, sparse.Field, sparse.Symmetry, error) {
	tok := strings.Fields(strings.ToLower(line))
	if len(tok) == 0 || tok[0] != bannerPrefix {
		return "", 0, 0, parseErrorf(1, ErrBanner, "missing %%%%MatrixMarket header")
	}
	if len(tok) != 5 {
		return "", 0, 0, parseErrorf(1, ErrBanner, "want 5 banner tokens, got %d", len(tok))
	}
	if tok[1] != objectMatrix {
		return "", 0, 0, parseErrorf(1, ErrUnsupported, "object %q", tok[1])
	}

	format := Format(tok[2])
	if format != FormatCoordinate && format != FormatArray {
		return "", 0, 0, parseErrorf(1, ErrUnsupported, "format %q", tok[2])
	}
	field, ok := sparse.ParseField(tok[3])
	if !ok {
		return "", 0, 0, parseErrorf(1, ErrUnsupported, "field %q", tok[3])
	}
	sym, ok := sparse.ParseSymmetry(tok[4])
	if !ok {
		return "", 0, 0, parseErrorf(1, ErrUnsupported, "symmetry %q", tok[4])
	}

	if format == FormatArray && field == sparse.FieldPattern {
		return "", 0, 0, parseErrorf(1, ErrUnsupported, "pattern field requires coordinate format")
	}
	if sym == sparse.Hermitian && field != sparse.FieldComplex {
		return "", 0, 0, parseErrorf(1, ErrUnsupported, "hermitian symmetry requires complex field")
	}
	if sym == sparse.SkewSymmetric && field == sparse.FieldPattern {
		return "", 0, 0, parseErrorf(1, ErrUnsupported, "skew-symmetric pattern matrix")
	}

	return format, field, sym, nil
}
