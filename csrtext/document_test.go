// SPDX-License-Identifier: MIT
package csrtext_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mmcsr/csrtext"
	"github.com/katalvlaran/mmcsr/mmio"
	"github.com/katalvlaran/mmcsr/sparse"
)

// render parses src, converts it and returns the document text.
func render(t *testing.T, src string) (string, *csrtext.Document) {
	t.Helper()
	m, info, err := mmio.Read(strings.NewReader(src))
	require.NoError(t, err)
	kind, err := csrtext.FieldKindOf(info.Field)
	require.NoError(t, err)
	doc, err := csrtext.Convert(m, kind, csrtext.Header{Source: "in.mtx", Info: info.String()})
	require.NoError(t, err)

	var buf bytes.Buffer
	n, err := doc.WriteTo(&buf)
	require.NoError(t, err)
	require.EqualValues(t, buf.Len(), n)

	return buf.String(), doc
}

// dataLines returns the lines after the two comments and the size line.
func dataLines(t *testing.T, text string) []string {
	t.Helper()
	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	require.GreaterOrEqual(t, len(lines), 3)

	return lines[3:]
}

func TestWriteTo_SizeLineAndLineCount(t *testing.T) {
	cases := []struct {
		name     string
		src      string
		sizeLine string
		lines    int
	}{
		{
			name:     "rows=2 nnz=3",
			src:      "%%MatrixMarket matrix coordinate real general\n2 2 3\n1 1 1.5\n1 2 2\n2 2 3\n",
			sizeLine: "3 3 3",
			lines:    3,
		},
		{
			name:     "rows=5 nnz=3",
			src:      "%%MatrixMarket matrix coordinate real general\n5 5 3\n1 1 1\n3 2 2\n5 5 3\n",
			sizeLine: "6 3 3",
			lines:    6,
		},
		{
			name:     "symmetric expands",
			src:      "%%MatrixMarket matrix coordinate real symmetric\n3 3 4\n1 1 4\n2 1 -1\n2 2 4\n3 3 2.5\n",
			sizeLine: "4 5 5",
			lines:    5,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			text, doc := render(t, tc.src)
			all := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
			require.Equal(t, tc.sizeLine, all[2])
			require.Len(t, dataLines(t, text), tc.lines)
			require.Equal(t, tc.lines, doc.Lines())
		})
	}
}

func TestWriteTo_ExactText(t *testing.T) {
	text, _ := render(t, "%%MatrixMarket matrix coordinate real general\n5 5 3\n1 1 1\n3 2 2\n5 5 3\n")
	want := strings.Join([]string{
		"# in.mtx",
		"# (5, 5, 3, 'coordinate', 'real', 'general')",
		"6 3 3",
		"0 0 1.00000000000000000000 0.0",
		"1 1 2.00000000000000000000 0.0",
		"1 4 3.00000000000000000000 0.0",
		"2 -1 -1.00000000000000000000 0.0",
		"2 -1 -1.00000000000000000000 0.0",
		"3 -1 -1.00000000000000000000 0.0",
	}, "\n") + "\n"
	require.Equal(t, want, text)
}

func TestWriteTo_RealFourthFieldIsLiteralZero(t *testing.T) {
	text, _ := render(t, "%%MatrixMarket matrix coordinate real symmetric\n3 3 4\n1 1 4\n2 1 -1\n2 2 4\n3 3 2.5\n")
	for _, line := range dataLines(t, text) {
		tok := strings.Fields(line)
		require.Len(t, tok, 4)
		require.Equal(t, "0.0", tok[3], line)
	}
}

func TestWriteTo_ComplexDigits(t *testing.T) {
	text, _ := render(t, "%%MatrixMarket matrix coordinate complex general\n2 2 2\n1 2 3.5 -2.25\n2 1 0 1\n")
	lines := dataLines(t, text)
	require.Equal(t, []string{
		"0 1 3.50000000000000000000 -2.25000000000000000000",
		"1 0 0.00000000000000000000 1.00000000000000000000",
		"2 -1 -1.00000000000000000000 0.00000000000000000000",
	}, lines)
}

func TestWriteTo_Deterministic(t *testing.T) {
	src := "%%MatrixMarket matrix coordinate real symmetric\n3 3 4\n1 1 4\n2 1 -1\n2 2 4\n3 3 2.5\n"
	a, _ := render(t, src)
	b, _ := render(t, src)
	require.Equal(t, a, b)
}

func TestNewDocument_LengthMismatch(t *testing.T) {
	_, err := csrtext.NewDocument(csrtext.Real, csrtext.Header{}, []int{0, 1}, []int{0}, nil)
	require.ErrorIs(t, err, csrtext.ErrConversion)

	doc, err := csrtext.NewDocument(csrtext.Real, csrtext.Header{}, []int{0, 1, 1, 1}, []int{0}, []complex128{7})
	require.NoError(t, err)
	rp, ci, ds := doc.Sizes()
	require.Equal(t, []int{4, 1, 1}, []int{rp, ci, ds})
	require.Equal(t, 4, doc.Lines())
}

func TestConvert_NilMatrix(t *testing.T) {
	_, err := csrtext.Convert(nil, csrtext.Real, csrtext.Header{})
	require.ErrorIs(t, err, csrtext.ErrNilMatrix)
}

func TestFieldKindOf(t *testing.T) {
	k, err := csrtext.FieldKindOf(sparse.FieldReal)
	require.NoError(t, err)
	require.Equal(t, csrtext.Real, k)
	require.Equal(t, "real", k.String())

	k, err = csrtext.FieldKindOf(sparse.FieldComplex)
	require.NoError(t, err)
	require.Equal(t, csrtext.Complex, k)
	require.Equal(t, "complex", k.String())

	for _, f := range []sparse.Field{sparse.FieldInteger, sparse.FieldPattern} {
		_, err = csrtext.FieldKindOf(f)
		require.ErrorIs(t, err, csrtext.ErrUnsupportedField, f.String())
	}
}

func TestRead_RoundTrip(t *testing.T) {
	cases := map[string]string{
		"real symmetric": "%%MatrixMarket matrix coordinate real symmetric\n3 3 4\n1 1 4\n2 1 -1\n2 2 4\n3 3 2.5\n",
		"real sparse":    "%%MatrixMarket matrix coordinate real general\n5 5 3\n1 1 1\n3 2 2\n5 5 3\n",
		"complex":        "%%MatrixMarket matrix coordinate complex general\n2 2 2\n1 2 3.5 -2.25\n2 1 0 1\n",
	}
	for name, src := range cases {
		t.Run(name, func(t *testing.T) {
			text, doc := render(t, src)
			back, err := csrtext.Read(strings.NewReader(text))
			require.NoError(t, err)
			require.Equal(t, doc.Header, back.Header)
			require.Equal(t, doc.Kind, back.Kind)
			require.Equal(t, doc.RowPtr, back.RowPtr)
			require.Equal(t, doc.ColIndex, back.ColIndex)
			require.Equal(t, doc.Values, back.Values)

			want, _, err := mmio.Read(strings.NewReader(src))
			require.NoError(t, err)
			got, err := back.Matrix()
			require.NoError(t, err)
			require.Equal(t, want.ToDenseComplex(), got.ToDenseComplex())
			require.Equal(t, want.Symmetry(), got.Symmetry())
		})
	}
}

func TestRead_InfersColumnsWithoutInfo(t *testing.T) {
	text := "# somewhere\n# free text\n3 2 2\n0 2 1.0 0.0\n1 0 2.0 0.0\n2 -1 -1.0 0.0\n"
	doc, err := csrtext.Read(strings.NewReader(text))
	require.NoError(t, err)
	require.Equal(t, csrtext.Real, doc.Kind)
	m, err := doc.Matrix()
	require.NoError(t, err)
	require.Equal(t, 2, m.Rows())
	require.Equal(t, 3, m.Cols())
}

func TestRead_Errors(t *testing.T) {
	cases := []struct {
		name string
		text string
		want error
	}{
		{"empty", "", csrtext.ErrSyntax},
		{"only comments", "# a\n# b\n", csrtext.ErrSyntax},
		{"bad size line", "# a\n# b\n3 x 3\n", csrtext.ErrSyntax},
		{"negative size", "# a\n# b\n-1 0 0\n", csrtext.ErrSyntax},
		{"huge declared sizes", "# a\n# b\n100000000000000 100000000000000 100000000000000\n0 -1 1.0 0.0\n", csrtext.ErrSyntax},
		{"short body", "# a\n# b\n2 1 1\n0 0 1.0 0.0\n", csrtext.ErrSyntax},
		{"field count", "# a\n# b\n1 0 0\n0 -1\n", csrtext.ErrSyntax},
		{"bad number", "# a\n# b\n1 0 0\n0 -1 abc 0.0\n", csrtext.ErrSyntax},
		{"split entry arrays", "# a\n# b\n2 2 1\n0 0 1.0 0.0\n1 0 -1.0 0.0\n", csrtext.ErrConversion},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := csrtext.Read(strings.NewReader(tc.text))
			require.ErrorIs(t, err, tc.want)
		})
	}
}
