// SPDX-License-Identifier: MIT
// Package spd - factorization backends.
//
// Purpose:
//   - Factorizer is the Cholesky capability the checker depends on; success
//     means the (lower-triangle view of the) input is positive definite.
//   - Native runs the deterministic matrix.Cholesky kernel.
//   - Gonum runs gonum's mat.Cholesky on a SymDense copy.

package spd

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/mmcsr/matrix"
)

// Factorizer attempts a Cholesky decomposition of a square matrix.
// A nil error means the factorization succeeded.
type Factorizer interface {
	Factorize(a matrix.Matrix) error
}

// Native factorizes with matrix.Cholesky.
type Native struct{}

var _ Factorizer = Native{}

// Factorize returns the kernel error unchanged (ErrNotPositiveDefinite,
// ErrNaNInf, ErrNonSquare, ErrNilMatrix).
func (Native) Factorize(a matrix.Matrix) error {
	_, err := matrix.Cholesky(a)

	return err
}

// Gonum factorizes with gonum.org/v1/gonum/mat.
type Gonum struct{}

var _ Factorizer = Gonum{}

// Factorize copies a into a SymDense and runs mat.Cholesky.Factorize.
// The SymDense is filled from the lower triangle so both backends read the
// same half of a.
// Errors: matrix.ErrNilMatrix, matrix.ErrNonSquare, matrix.ErrNotPositiveDefinite.
// Complexity: Time O(n^3/3), Space O(n^2).
func (Gonum) Factorize(a matrix.Matrix) error {
	if err := matrix.ValidateSquareNonNil(a); err != nil {
		return fmt.Errorf("Gonum: %w", err)
	}

	n := a.Rows()
	data := make([]float64, n*n)
	var (
		i, j int
		v    float64
		err  error
	)
	for i = 0; i < n; i++ {
		for j = 0; j <= i; j++ {
			if v, err = a.At(i, j); err != nil {
				return fmt.Errorf("Gonum: %w", err)
			}
			data[i*n+j] = v
			data[j*n+i] = v
		}
	}

	var chol mat.Cholesky
	if ok := chol.Factorize(mat.NewSymDense(n, data)); !ok {
		return fmt.Errorf("Gonum: %w", matrix.ErrNotPositiveDefinite)
	}

	return nil
}

// FactorizerByName resolves a configured backend name ("native", "gonum").
// The empty name selects Native.
func FactorizerByName(name string) (Factorizer, error) {
	switch name {
	case "", NameNative:
		return Native{}, nil
	case NameGonum:
		return Gonum{}, nil
	default:
		return nil, fmt.Errorf("factorizer %q: %w", name, ErrUnknownFactorizer)
	}
}

// Backend names accepted by FactorizerByName.
const (
	NameNative = "native"
	NameGonum  = "gonum"
)
