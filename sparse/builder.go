// SPDX-License-Identifier: MIT

// Package sparse - triplet (COO) accumulation and canonical CSR assembly.
package sparse

import "sort"

// triplet is one (i, j, v) entry collected by Builder.
type triplet struct {
	i, j int
	v    complex128
}

// Builder accumulates triplets and assembles a canonical CSR Matrix.
// The zero value is not usable; create it with NewBuilder.
type Builder struct {
	rows, cols int
	field      Field
	symmetry   Symmetry
	data       []triplet
}

// NewBuilder returns a Builder for a rows×cols matrix with the given metadata.
// Errors: ErrInvalidDimensions when rows or cols is not positive or rows > MaxRows.
func NewBuilder(rows, cols int, field Field, sym Symmetry) (*Builder, error) {
	if !validShape(rows, cols) {
		return nil, sparseErrorf("NewBuilder", ErrInvalidDimensions)
	}

	return &Builder{rows: rows, cols: cols, field: field, symmetry: sym}, nil
}

// Grow reserves capacity for n more triplets.
func (b *Builder) Grow(n int) {
	if n > 0 && cap(b.data)-len(b.data) < n {
		next := make([]triplet, len(b.data), len(b.data)+n)
		copy(next, b.data)
		b.data = next
	}
}

// Append records v at zero-based (i, j). Explicit zeros are kept.
// Errors: ErrOutOfRange for indices outside the declared shape.
func (b *Builder) Append(i, j int, v complex128) error {
	if i < 0 || i >= b.rows || j < 0 || j >= b.cols {
		return sparseErrorf("Append", ErrOutOfRange)
	}
	b.data = append(b.data, triplet{i: i, j: j, v: v})

	return nil
}

// Len reports the number of triplets appended so far (duplicates included).
func (b *Builder) Len() int { return len(b.data) }

// Build assembles the canonical CSR form: rows in order, column indices sorted
// within each row, duplicate (i, j) entries summed. The Builder can be reused.
// Implementation:
//   - Stage 1: stable sort triplets by (i, j).
//   - Stage 2: single pass merging duplicates and counting row lengths.
//   - Stage 3: prefix-sum row counts into rowPtr.
//
// Complexity:
//   - Time O(t log t + rows), Space O(t + rows) for t triplets.
func (b *Builder) Build() (*Matrix, error) {
	ts := append([]triplet(nil), b.data...)
	sort.SliceStable(ts, func(x, y int) bool {
		if ts[x].i != ts[y].i {
			return ts[x].i < ts[y].i
		}

		return ts[x].j < ts[y].j
	})

	rowPtr := make([]int, b.rows+1)
	colIndex := make([]int, 0, len(ts))
	values := make([]complex128, 0, len(ts))
	for k, t := range ts {
		last := len(colIndex) - 1
		if k > 0 && ts[k-1].i == t.i && ts[k-1].j == t.j {
			values[last] += t.v
			continue
		}
		colIndex = append(colIndex, t.j)
		values = append(values, t.v)
		rowPtr[t.i+1]++
	}
	for r := 0; r < b.rows; r++ {
		rowPtr[r+1] += rowPtr[r]
	}

	m := &Matrix{
		rows:     b.rows,
		cols:     b.cols,
		field:    b.field,
		symmetry: b.symmetry,
		rowPtr:   rowPtr,
		colIndex: colIndex,
		values:   values,
	}
	if err := m.Validate(); err != nil {
		return nil, sparseErrorf("Build", err)
	}

	return m, nil
}
