// SPDX-License-Identifier: MIT

// Package spd decides whether a matrix is symmetric (Hermitian) positive definite.
//
// The check materializes the matrix densely and attempts a Cholesky
// decomposition through a Factorizer. Any failure on the way (non-square
// shape, NaN/Inf, asymmetry, non-positive pivot) means "not positive
// definite": the boolean API never surfaces an error. Check and CheckDense
// expose the recovered cause for diagnostics.
//
// Complex matrices are tested through their real embedding [[Re,-Im],[Im,Re]],
// which is symmetric positive definite exactly when the matrix is Hermitian
// positive definite.
//
// Densifying costs O(n²) memory regardless of the number of stored entries.
package spd

import (
	"errors"
	"io"
	"log/slog"

	"github.com/katalvlaran/mmcsr/matrix"
	"github.com/katalvlaran/mmcsr/sparse"
)

var (
	// ErrUnknownFactorizer indicates a backend name FactorizerByName does not know.
	ErrUnknownFactorizer = errors.New("spd: unknown factorizer")

	// ErrNilMatrix indicates that a nil *sparse.Matrix was checked.
	ErrNilMatrix = errors.New("spd: nil matrix")
)

// Option configures a check.
type Option func(*options)

type options struct {
	factorizer Factorizer
	eps        float64
	logger     *slog.Logger
}

// WithFactorizer selects the Cholesky backend; nil keeps Native.
func WithFactorizer(f Factorizer) Option {
	return func(o *options) {
		if f != nil {
			o.factorizer = f
		}
	}
}

// WithSymmetryTolerance overrides matrix.DefaultEpsilon for the symmetry
// pre-check only; the factorization stays exact. eps is resolved through
// matrix.WithEpsilon, so a negative, NaN or Inf value panics.
func WithSymmetryTolerance(eps float64) Option {
	eps = matrix.NewOptions(matrix.WithEpsilon(eps)).Epsilon()

	return func(o *options) {
		o.eps = eps
	}
}

// WithLogger receives the recovered failure cause at debug level.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

func gatherOptions(opts ...Option) options {
	o := options{
		factorizer: Native{},
		eps:        matrix.NewOptions().Epsilon(),
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// IsPositiveDefinite reports whether m is symmetric (Hermitian) positive definite.
// Every failure yields false.
func IsPositiveDefinite(m *sparse.Matrix, opts ...Option) bool {
	ok, _ := Check(m, opts...)

	return ok
}

// IsPositiveDefiniteDense is IsPositiveDefinite for an already dense real matrix.
func IsPositiveDefiniteDense(a matrix.Matrix, opts ...Option) bool {
	ok, _ := CheckDense(a, opts...)

	return ok
}

// Check is IsPositiveDefinite returning the cause of a negative answer.
// Implementation:
//   - Stage 1: reject nil and non-square inputs.
//   - Stage 2: densify (ToDense for real/integer/pattern, RealEmbedding for complex).
//   - Stage 3: CheckDense.
//
// The returned error is diagnostic only; (false, err) is a normal outcome.
func Check(m *sparse.Matrix, opts ...Option) (bool, error) {
	o := gatherOptions(opts...)
	if m == nil {
		return o.reject(ErrNilMatrix)
	}
	if m.Rows() != m.Cols() {
		return o.reject(matrix.ErrNonSquare)
	}

	var (
		a   *matrix.Dense
		err error
	)
	if m.Field() == sparse.FieldComplex {
		a, err = m.RealEmbedding()
	} else {
		a, err = m.ToDense()
	}
	if err != nil {
		return o.reject(err)
	}

	return o.check(a)
}

// CheckDense is IsPositiveDefiniteDense returning the cause of a negative answer.
// Implementation:
//   - Stage 1: ValidateSquareNonNil, ValidateFinite, ValidateSymmetric(eps).
//   - Stage 2: Factorizer.Factorize.
//
// Complexity:
//   - Time O(n^2) validation + O(n^3/3) factorization.
func CheckDense(a matrix.Matrix, opts ...Option) (bool, error) {
	return gatherOptions(opts...).check(a)
}

func (o options) check(a matrix.Matrix) (bool, error) {
	if err := matrix.ValidateSquareNonNil(a); err != nil {
		return o.reject(err)
	}
	if err := matrix.ValidateFinite(a); err != nil {
		return o.reject(err)
	}
	if err := matrix.ValidateSymmetric(a, o.eps); err != nil {
		return o.reject(err)
	}
	if err := o.factorizer.Factorize(a); err != nil {
		return o.reject(err)
	}

	return true, nil
}

// reject logs the recovered cause and turns it into a negative answer.
func (o options) reject(err error) (bool, error) {
	o.logger.Debug("not positive definite", "cause", err)

	return false, err
}
