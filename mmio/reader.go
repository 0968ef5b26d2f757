// SPDX-License-Identifier: MIT

// Package mmio - Matrix Market reader.
//
// Purpose:
//   - ReadInfo: banner + size line only (metadata only, no entries read).
//   - Read: full parse into a canonical *sparse.Matrix.
//
// Behavior highlights:
//   - Symmetric/skew-symmetric/hermitian inputs are expanded to both triangles
//     (v, -v, conj(v) mirrored off the diagonal).
//   - Coordinate duplicates are summed; explicit zeros are kept.
//   - Array inputs are column-major; exact zeros are not stored.
package mmio

import (
	"bufio"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"fortio.org/safecast"

	"github.com/katalvlaran/mmcsr/sparse"
)

const (
	// maxLineBytes bounds a single input line.
	maxLineBytes = 1 << 20
	// maxPrealloc caps the triplet capacity reserved from the declared count.
	maxPrealloc = 1 << 16
)

// lineReader yields non-blank, non-comment lines with their 1-based numbers.
type lineReader struct {
	sc   *bufio.Scanner
	line int
}

func newLineReader(r io.Reader) *lineReader {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	return &lineReader{sc: sc}
}

// raw returns the next physical line.
func (lr *lineReader) raw() (string, bool, error) {
	if !lr.sc.Scan() {
		if err := lr.sc.Err(); err != nil {
			return "", false, &ParseError{Line: lr.line + 1, Err: err}
		}

		return "", false, nil
	}
	lr.line++

	return lr.sc.Text(), true, nil
}

// next returns the next line that is neither blank nor a % comment.
func (lr *lineReader) next() (string, bool, error) {
	for {
		text, ok, err := lr.raw()
		if err != nil || !ok {
			return "", ok, err
		}
		trimmed := strings.TrimSpace(text)
		if trimmed == "" || trimmed[0] == commentMark {
			continue
		}

		return trimmed, true, nil
	}
}

// atoi parses a base-10 integer through a checked int64→int conversion.
func atoi(tok string) (int, error) {
	v, err := strconv.ParseInt(tok, 10, 64)
	if err != nil {
		return 0, err
	}

	return safecast.Conv[int](v)
}

// readHeader consumes the banner and size line.
func readHeader(lr *lineReader) (Info, error) {
	first, ok, err := lr.raw()
	if err != nil {
		return Info{}, err
	}
	if !ok {
		return Info{}, parseErrorf(0, ErrBanner, "empty input")
	}
	format, field, sym, err := parseBanner(first)
	if err != nil {
		return Info{}, err
	}

	size, ok, err := lr.next()
	if err != nil {
		return Info{}, err
	}
	if !ok {
		return Info{}, parseErrorf(lr.line, ErrSize, "missing size line")
	}

	tok := strings.Fields(size)
	want := 3
	if format == FormatArray {
		want = 2
	}
	if len(tok) != want {
		return Info{}, parseErrorf(lr.line, ErrSize, "want %d integers, got %d", want, len(tok))
	}
	dims := make([]int, want)
	for k, s := range tok {
		if dims[k], err = atoi(s); err != nil {
			return Info{}, parseErrorf(lr.line, ErrSize, "%q: %v", s, err)
		}
	}

	info := Info{Rows: dims[0], Cols: dims[1], Format: format, Field: field, Symmetry: sym}
	if info.Rows <= 0 || info.Cols <= 0 {
		return Info{}, parseErrorf(lr.line, ErrSize, "dimensions %dx%d must be positive", info.Rows, info.Cols)
	}
	if sym != sparse.General && info.Rows != info.Cols {
		return Info{}, parseErrorf(lr.line, ErrSize, "%s matrix must be square, got %dx%d", sym, info.Rows, info.Cols)
	}
	cells, fits := cellCount(info.Rows, info.Cols)
	if format == FormatArray {
		if !fits {
			return Info{}, parseErrorf(lr.line, ErrSize, "array %dx%d overflows int", info.Rows, info.Cols)
		}
		info.Entries = cells
	} else {
		info.Entries = dims[2]
		if info.Entries < 0 {
			return Info{}, parseErrorf(lr.line, ErrSize, "negative entry count %d", info.Entries)
		}
		if fits && info.Entries > cells {
			return Info{}, parseErrorf(lr.line, ErrSize, "%d entries exceed %dx%d cells", info.Entries, info.Rows, info.Cols)
		}
	}

	return info, nil
}

// cellCount returns rows*cols and whether the product fits in an int.
func cellCount(rows, cols int) (int, bool) {
	if rows > math.MaxInt/cols {
		return 0, false
	}

	return rows * cols, true
}

// ReadInfo parses only the banner and size line of r.
// Errors: *ParseError wrapping ErrBanner, ErrUnsupported or ErrSize.
func ReadInfo(r io.Reader) (Info, error) {
	return readHeader(newLineReader(r))
}

// Read parses a complete Matrix Market stream into a canonical CSR matrix.
// Implementation:
//   - Stage 1: banner + size line (readHeader).
//   - Stage 2: entries (coordinate or array) into a sparse.Builder, mirroring
//     the other triangle for non-general symmetry.
//   - Stage 3: reject trailing data lines, then Build.
//
// Errors:
//   - *ParseError wrapping one of ErrBanner, ErrUnsupported, ErrSize, ErrEntry,
//     ErrIndexRange, ErrEntryCount, or the underlying I/O error.
//
// Complexity:
//   - Time O(t log t) for t stored entries (sort in Build), Space O(t).
func Read(r io.Reader) (*sparse.Matrix, Info, error) {
	lr := newLineReader(r)
	info, err := readHeader(lr)
	if err != nil {
		return nil, Info{}, err
	}

	b, err := sparse.NewBuilder(info.Rows, info.Cols, info.Field, info.Symmetry)
	if err != nil {
		return nil, Info{}, parseErrorf(lr.line, ErrSize, "%v", err)
	}

	if info.Format == FormatArray {
		err = readArray(lr, info, b)
	} else {
		err = readCoordinate(lr, info, b)
	}
	if err != nil {
		return nil, Info{}, err
	}

	extra, ok, err := lr.next()
	if err != nil {
		return nil, Info{}, err
	}
	if ok {
		return nil, Info{}, parseErrorf(lr.line, ErrEntryCount, "unexpected data %q after %d entries", extra, info.Entries)
	}

	m, err := b.Build()
	if err != nil {
		return nil, Info{}, parseErrorf(0, ErrEntry, "%v", err)
	}

	return m, info, nil
}

// ReadFile opens path, parses it with Read and always closes the file.
// Every error carries the path.
func ReadFile(path string) (*sparse.Matrix, Info, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, Info{}, WithPath(path, err)
	}
	defer f.Close()

	m, info, err := Read(f)
	if err != nil {
		return nil, Info{}, WithPath(path, err)
	}

	return m, info, nil
}

// ReadInfoFile is ReadInfo over a file path.
func ReadInfoFile(path string) (Info, error) {
	f, err := os.Open(path)
	if err != nil {
		return Info{}, WithPath(path, err)
	}
	defer f.Close()

	info, err := ReadInfo(f)
	if err != nil {
		return Info{}, WithPath(path, err)
	}

	return info, nil
}

// valueTokens is the number of value tokens per entry for field.
func valueTokens(field sparse.Field) int {
	switch field {
	case sparse.FieldComplex:
		return 2
	case sparse.FieldPattern:
		return 0
	default:
		return 1
	}
}

// parseValue decodes the value tokens of one entry.
func parseValue(field sparse.Field, tok []string) (complex128, error) {
	switch field {
	case sparse.FieldPattern:
		return 1, nil
	case sparse.FieldInteger:
		v, err := strconv.ParseInt(tok[0], 10, 64)
		if err != nil {
			return 0, err
		}

		return complex(float64(v), 0), nil
	case sparse.FieldComplex:
		re, err := strconv.ParseFloat(tok[0], 64)
		if err != nil {
			return 0, err
		}
		im, err := strconv.ParseFloat(tok[1], 64)
		if err != nil {
			return 0, err
		}

		return complex(re, im), nil
	default:
		re, err := strconv.ParseFloat(tok[0], 64)
		if err != nil {
			return 0, err
		}

		return complex(re, 0), nil
	}
}

// mirror returns the value stored at (j, i) for an entry v at (i, j), i != j.
func mirror(sym sparse.Symmetry, v complex128) complex128 {
	switch sym {
	case sparse.SkewSymmetric:
		return -v
	case sparse.Hermitian:
		return complex(real(v), -imag(v))
	default:
		return v
	}
}

// appendEntry stores v at zero-based (i, j) and its mirror when required.
func appendEntry(b *sparse.Builder, sym sparse.Symmetry, i, j int, v complex128) error {
	if err := b.Append(i, j, v); err != nil {
		return err
	}
	if sym != sparse.General && i != j {
		return b.Append(j, i, mirror(sym, v))
	}

	return nil
}

// readCoordinate reads info.Entries lines of "i j [value tokens]".
func readCoordinate(lr *lineReader, info Info, b *sparse.Builder) error {
	want := 2 + valueTokens(info.Field)
	reserve := min(info.Entries, maxPrealloc)
	if info.Symmetry != sparse.General {
		reserve *= 2
	}
	b.Grow(reserve)

	var (
		n, i, j int
		v       complex128
	)
	for n = 0; n < info.Entries; n++ {
		line, ok, err := lr.next()
		if err != nil {
			return err
		}
		if !ok {
			return parseErrorf(lr.line, ErrEntryCount, "got %d of %d entries", n, info.Entries)
		}
		tok := strings.Fields(line)
		if len(tok) != want {
			return parseErrorf(lr.line, ErrEntry, "want %d tokens, got %d", want, len(tok))
		}
		if i, err = atoi(tok[0]); err != nil {
			return parseErrorf(lr.line, ErrEntry, "row %q: %v", tok[0], err)
		}
		if j, err = atoi(tok[1]); err != nil {
			return parseErrorf(lr.line, ErrEntry, "column %q: %v", tok[1], err)
		}
		if i < 1 || i > info.Rows || j < 1 || j > info.Cols {
			return parseErrorf(lr.line, ErrIndexRange, "(%d, %d) outside %dx%d", i, j, info.Rows, info.Cols)
		}
		if v, err = parseValue(info.Field, tok[2:]); err != nil {
			return parseErrorf(lr.line, ErrEntry, "value: %v", err)
		}
		if err = appendEntry(b, info.Symmetry, i-1, j-1, v); err != nil {
			return parseErrorf(lr.line, ErrIndexRange, "%v", err)
		}
	}

	return nil
}

// readArray reads column-major values; non-general symmetry lists only the
// lower triangle (diagonal excluded for skew-symmetric).
func readArray(lr *lineReader, info Info, b *sparse.Builder) error {
	want := valueTokens(info.Field)
	var (
		i, j, first int
		v           complex128
	)
	for j = 0; j < info.Cols; j++ {
		switch info.Symmetry {
		case sparse.General:
			first = 0
		case sparse.SkewSymmetric:
			first = j + 1
		default:
			first = j
		}
		for i = first; i < info.Rows; i++ {
			line, ok, err := lr.next()
			if err != nil {
				return err
			}
			if !ok {
				return parseErrorf(lr.line, ErrEntryCount, "array ended before (%d, %d)", i+1, j+1)
			}
			tok := strings.Fields(line)
			if len(tok) != want {
				return parseErrorf(lr.line, ErrEntry, "want %d tokens, got %d", want, len(tok))
			}
			if v, err = parseValue(info.Field, tok); err != nil {
				return parseErrorf(lr.line, ErrEntry, "value: %v", err)
			}
			if v == 0 {
				continue
			}
			if err = appendEntry(b, info.Symmetry, i, j, v); err != nil {
				return parseErrorf(lr.line, ErrIndexRange, "%v", err)
			}
		}
	}

	return nil
}
