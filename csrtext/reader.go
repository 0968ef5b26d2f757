// SPDX-License-Identifier: MIT

package csrtext

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/mmcsr/mmio"
	"github.com/katalvlaran/mmcsr/sparse"
)

const (
	commentMark   = '#'
	tokensPerLine = 4

	// maxPrealloc caps capacity reserved from the declared sizes; the arrays
	// grow past it only as real data lines arrive.
	maxPrealloc = 1 << 16
)

// Read parses a CSR document back into its arrays.
// Leading '#' lines fill Header (first Source, second Info). Each array takes
// the first N values of its column, N being its declared size, so -1
// sentinels past the end are ignored. Kind is Complex unless every fourth
// field is the literal 0.0.
//
// Errors: ErrSyntax (wrapped with the line number) or the reader's I/O error.
// Complexity: O(lines).
func Read(r io.Reader) (*Document, error) {
	sc := bufio.NewScanner(r)
	var (
		lineNo   int
		comments []string
		size     string
	)
	for sc.Scan() {
		lineNo++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		if text[0] == commentMark {
			comments = append(comments, strings.TrimSpace(text[1:]))
			continue
		}
		size = text
		break
	}
	if err := sc.Err(); err != nil {
		return nil, csrErrorf("Read", err)
	}
	if size == "" {
		return nil, fmt.Errorf("line %d: missing size line: %w", lineNo, ErrSyntax)
	}

	var rp, ci, ds int
	if _, err := fmt.Sscanf(size, "%d %d %d", &rp, &ci, &ds); err != nil || rp < 0 || ci < 0 || ds < 0 {
		return nil, fmt.Errorf("line %d: size line %q: %w", lineNo, size, ErrSyntax)
	}

	doc := &Document{
		Kind:     Real,
		RowPtr:   make([]int, 0, min(rp, maxPrealloc)),
		ColIndex: make([]int, 0, min(ci, maxPrealloc)),
		Values:   make([]complex128, 0, min(ds, maxPrealloc)),
	}
	if len(comments) > 0 {
		doc.Header.Source = comments[0]
	}
	if len(comments) > 1 {
		doc.Header.Info = comments[1]
	}

	lines := max(rp, ci, ds)
	for n := 0; n < lines; n++ {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return nil, csrErrorf("Read", err)
			}

			return nil, fmt.Errorf("line %d: got %d of %d data lines: %w", lineNo, n, lines, ErrSyntax)
		}
		lineNo++
		tok := strings.Fields(sc.Text())
		if len(tok) != tokensPerLine {
			return nil, fmt.Errorf("line %d: want %d fields, got %d: %w", lineNo, tokensPerLine, len(tok), ErrSyntax)
		}
		ptr, err1 := strconv.Atoi(tok[0])
		ind, err2 := strconv.Atoi(tok[1])
		re, err3 := strconv.ParseFloat(tok[2], 64)
		im, err4 := strconv.ParseFloat(tok[3], 64)
		if err1 != nil || err2 != nil || err3 != nil || err4 != nil {
			return nil, fmt.Errorf("line %d: %q: %w", lineNo, sc.Text(), ErrSyntax)
		}
		if tok[3] != realImagZero {
			doc.Kind = Complex
		}
		if n < rp {
			doc.RowPtr = append(doc.RowPtr, ptr)
		}
		if n < ci {
			doc.ColIndex = append(doc.ColIndex, ind)
		}
		if n < ds {
			doc.Values = append(doc.Values, complex(re, im))
		}
	}
	if ci != ds {
		return nil, fmt.Errorf("colIndexSize %d != dataSize %d: %w", ci, ds, ErrConversion)
	}

	return doc, nil
}

// Matrix rebuilds the sparse matrix. The column count comes from the Info
// header when it parses as a metadata tuple, otherwise from the largest
// column index.
// Errors: sparse.ErrInvalidCSR / sparse.ErrInvalidDimensions from validation.
func (d *Document) Matrix() (*sparse.Matrix, error) {
	rows := len(d.RowPtr) - 1
	field := sparse.FieldReal
	if d.Kind == Complex {
		field = sparse.FieldComplex
	}
	sym := sparse.General
	cols := 0
	if info, err := mmio.ParseInfo(d.Header.Info); err == nil {
		cols, sym = info.Cols, info.Symmetry
		if info.Field == sparse.FieldComplex || info.Field == sparse.FieldReal {
			field = info.Field
		}
	} else {
		for _, c := range d.ColIndex {
			cols = max(cols, c+1)
		}
		cols = max(cols, 1)
	}

	m, err := sparse.NewCSR(rows, cols, field, sym, d.RowPtr, d.ColIndex, d.Values)
	if err != nil {
		return nil, csrErrorf("Matrix", err)
	}

	return m, nil
}
