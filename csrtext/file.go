// SPDX-License-Identifier: MIT

package csrtext

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/katalvlaran/mmcsr/mmio"
	"github.com/katalvlaran/mmcsr/sparse"
)

const (
	outputPerm = 0o644
	tempSuffix = ".tmp-*"
)

// Option configures ConvertFile.
type Option func(*options)

type options struct {
	codec  mmio.Codec
	logger *slog.Logger
}

// WithCodec substitutes the Matrix Market parser.
func WithCodec(c mmio.Codec) Option {
	return func(o *options) {
		if c != nil {
			o.codec = c
		}
	}
}

// WithLogger sets the structured logger; nil keeps the discard logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

func gatherOptions(opts ...Option) options {
	o := options{
		codec:  mmio.DefaultCodec{},
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// ConvertFile reads the Matrix Market file in and writes its CSR document to out.
// Implementation:
//   - Stage 1: parse in completely (a ParseError aborts before out is touched).
//   - Stage 2: map the field onto FieldKind and build the Document.
//   - Stage 3: write into a temp file beside out, sync, close, rename.
//
// Behavior highlights:
//   - On any failure no file named out is created and the temp file is removed.
//   - The output handle is closed on every path.
//
// Errors:
//   - *mmio.ParseError (input), ErrUnsupportedField, ErrConversion, I/O errors.
func ConvertFile(in, out string, opts ...Option) error {
	o := gatherOptions(opts...)
	log := o.logger.With("input", in, "output", out)

	m, info, err := readInput(o.codec, in)
	if err != nil {
		return err
	}
	log.Debug("parsed matrix market input",
		"rows", info.Rows, "cols", info.Cols, "entries", info.Entries,
		"format", string(info.Format), "field", info.Field.String(), "symmetry", info.Symmetry.String())

	kind, err := FieldKindOf(info.Field)
	if err != nil {
		return csrErrorf("ConvertFile", err)
	}
	doc, err := Convert(m, kind, Header{Source: in, Info: info.String()})
	if err != nil {
		return csrErrorf("ConvertFile", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(out), "."+filepath.Base(out)+tempSuffix)
	if err != nil {
		return csrErrorf("ConvertFile", err)
	}
	committed := false
	defer func() {
		if !committed {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	n, err := doc.WriteTo(tmp)
	if err != nil {
		return csrErrorf("ConvertFile", err)
	}
	if err = tmp.Chmod(outputPerm); err != nil {
		return csrErrorf("ConvertFile", err)
	}
	if err = tmp.Sync(); err != nil {
		return csrErrorf("ConvertFile", err)
	}
	if err = tmp.Close(); err != nil {
		return csrErrorf("ConvertFile", err)
	}
	if err = os.Rename(tmp.Name(), out); err != nil {
		_ = os.Remove(tmp.Name())
		committed = true // closed and removed above
		return csrErrorf("ConvertFile", err)
	}
	committed = true

	rp, ci, ds := doc.Sizes()
	log.Info("wrote csr document", "bytes", n, "row_ptr", rp, "col_index", ci, "data", ds)

	return nil
}

// readInput opens path and parses it with codec; errors carry the path.
func readInput(codec mmio.Codec, path string) (*sparse.Matrix, mmio.Info, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, mmio.Info{}, &mmio.ParseError{Path: path, Err: err}
	}
	defer f.Close()

	m, info, err := codec.Read(f)
	if err != nil {
		return nil, mmio.Info{}, mmio.WithPath(path, err)
	}

	return m, info, nil
}
