// SPDX-License-Identifier: MIT

package mmio

import (
	"io"

	"github.com/katalvlaran/mmcsr/sparse"
)

// Codec is the Matrix Market capability the converter and the checker depend
// on. Substitute it to plug in another parser.
type Codec interface {
	ReadInfo(r io.Reader) (Info, error)
	Read(r io.Reader) (*sparse.Matrix, Info, error)
}

// DefaultCodec is the package reader exposed as a Codec.
type DefaultCodec struct{}

var _ Codec = DefaultCodec{}

// ReadInfo delegates to the package-level ReadInfo.
func (DefaultCodec) ReadInfo(r io.Reader) (Info, error) { return ReadInfo(r) }

// Read delegates to the package-level Read.
func (DefaultCodec) Read(r io.Reader) (*sparse.Matrix, Info, error) { return Read(r) }
