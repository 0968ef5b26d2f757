// SPDX-License-Identifier: MIT

// Package csrtext - the CSR text document and its writer.
//
// Layout:
//
//	# <source path>
//	# <raw format metadata>
//	<rowPtrSize> <colIndexSize> <dataSize>
//	<ptr> <ind> <re> <im>        (max of the three sizes lines)
//
// Behavior highlights:
//   - The three sizes are recorded independently; readers walk each array by
//     its own declared size.
//   - A cursor past its array prints the sentinel -1. An exhausted value
//     renders as the number -1 (real -1, imaginary 0).
//   - re/im always carry 20 digits after the decimal point; real documents
//     print the literal 0.0 as the fourth field.
package csrtext

import (
	"bufio"
	"io"
	"strconv"

	"github.com/katalvlaran/mmcsr/sparse"
)

// Formatting literals.
const (
	commentPrefix = "# "
	realImagZero  = "0.0"
	fracDigits    = 20
	sentinel      = -1
)

// Header is the comment block of a document.
type Header struct {
	Source string // path of the Matrix Market input
	Info   string // raw format metadata, e.g. mmio.Info.String()
}

// Document is a write-once CSR text artifact.
//
// Cursor design: the row-pointer array is walked by its own cursor; column
// indices and values belong to one CSR entity and share a single entry cursor.
// For any canonical CSR this produces byte-identical output to walking three
// independent cursors, while making a colIndex/values length split impossible
// to render silently (ErrConversion).
type Document struct {
	Header   Header
	Kind     FieldKind
	RowPtr   []int
	ColIndex []int
	Values   []complex128
}

// Convert builds the document for m. The arrays are copied from m.
// Errors: ErrNilMatrix; ErrConversion if m violates its CSR invariants.
// Complexity: O(rows + nnz).
func Convert(m *sparse.Matrix, kind FieldKind, hdr Header) (*Document, error) {
	if m == nil {
		return nil, csrErrorf("Convert", ErrNilMatrix)
	}

	return NewDocument(kind, hdr, m.RowPtr(), m.ColIndex(), m.Values())
}

// NewDocument builds a document from raw arrays whose sizes may differ
// (rowPtr is nominally rows+1, the others nnz). colIndex and values must have
// the same length because they share the entry cursor.
// Errors: ErrConversion when len(colIndex) != len(values).
func NewDocument(kind FieldKind, hdr Header, rowPtr, colIndex []int, values []complex128) (*Document, error) {
	if len(colIndex) != len(values) {
		return nil, csrErrorf("NewDocument", ErrConversion)
	}

	return &Document{
		Header:   hdr,
		Kind:     kind,
		RowPtr:   rowPtr,
		ColIndex: colIndex,
		Values:   values,
	}, nil
}

// Sizes returns (rowPtrSize, colIndexSize, dataSize) as written on the size line.
func (d *Document) Sizes() (rowPtrSize, colIndexSize, dataSize int) {
	return len(d.RowPtr), len(d.ColIndex), len(d.Values)
}

// Lines returns the number of data lines: max(rowPtrSize, colIndexSize, dataSize).
func (d *Document) Lines() int {
	return max(len(d.RowPtr), len(d.ColIndex), len(d.Values))
}

// countingWriter tracks bytes for io.WriterTo.
type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)

	return n, err
}

// WriteTo serializes the document. Output is deterministic: the same document
// always yields the same bytes.
// Implementation:
//   - Stage 1: two comment lines and the size line.
//   - Stage 2: for line = 0..Lines()-1 render ptr (row cursor) and ind/value
//     (entry cursor), substituting -1 past the end of each array.
//
// Complexity:
//   - Time O(max(rows+1, nnz)), Space O(1) beyond the buffered writer.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	bw := bufio.NewWriter(cw)

	bw.WriteString(commentPrefix)
	bw.WriteString(d.Header.Source)
	bw.WriteByte('\n')
	bw.WriteString(commentPrefix)
	bw.WriteString(d.Header.Info)
	bw.WriteByte('\n')

	rp, ci, ds := d.Sizes()
	buf := make([]byte, 0, 128)
	buf = strconv.AppendInt(buf, int64(rp), 10)
	buf = append(buf, ' ')
	buf = strconv.AppendInt(buf, int64(ci), 10)
	buf = append(buf, ' ')
	buf = strconv.AppendInt(buf, int64(ds), 10)
	buf = append(buf, '\n')
	bw.Write(buf)

	var (
		line, ptr, ind int
		val            complex128
	)
	lines := d.Lines()
	for line = 0; line < lines; line++ {
		ptr, ind, val = sentinel, sentinel, complex(sentinel, 0)
		if line < rp {
			ptr = d.RowPtr[line]
		}
		if line < ci {
			ind = d.ColIndex[line]
			val = d.Values[line]
		}
		buf = d.appendLine(buf[:0], ptr, ind, val)
		if _, err := bw.Write(buf); err != nil {
			return cw.n, csrErrorf("WriteTo", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return cw.n, csrErrorf("WriteTo", err)
	}

	return cw.n, nil
}

// appendLine renders one data line into buf.
func (d *Document) appendLine(buf []byte, ptr, ind int, val complex128) []byte {
	buf = strconv.AppendInt(buf, int64(ptr), 10)
	buf = append(buf, ' ')
	buf = strconv.AppendInt(buf, int64(ind), 10)
	buf = append(buf, ' ')
	buf = strconv.AppendFloat(buf, real(val), 'f', fracDigits, 64)
	buf = append(buf, ' ')
	if d.Kind == Complex {
		buf = strconv.AppendFloat(buf, imag(val), 'f', fracDigits, 64)
	} else {
		buf = append(buf, realImagZero...)
	}

	return append(buf, '\n')
}
