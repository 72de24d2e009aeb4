// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (two tiers, unified prefixes).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All operations MUST return these sentinels (optionally wrapped with
// an operation tag) and tests MUST check them via errors.Is. No operation
// panics on user-triggered error conditions.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON TIERS
// -------------
// Every specific sentinel wraps exactly one tier root:
//
//	ErrInvalidInput - structural: nil/released handle, non-positive shape,
//	                  bad index, ragged input rows.
//	ErrCalc         - domain: shape mismatch, non-square, NaN/Inf operand,
//	                  singular matrix.
//
// errors.Is(err, ErrCalc) and errors.Is(err, ErrNonSquare) both hold for a
// non-square determinant call. StatusOf collapses an error to its tier.
//
// ERROR PRIORITY (enforced in tests):
// validity (nil/released) -> shape compatibility -> numeric policy -> singularity.

var (
	// ErrInvalidInput is the root of the structural tier.
	ErrInvalidInput = errors.New("matrix: invalid input")

	// ErrCalc is the root of the domain tier.
	ErrCalc = errors.New("matrix: calculation error")
)

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = fmt.Errorf("%w: dimensions must be > 0", ErrInvalidInput)

	// ErrNilMatrix indicates a nil or released matrix (receiver or argument).
	ErrNilMatrix = fmt.Errorf("%w: nil or released matrix", ErrInvalidInput)

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	// Public indexers (At/Set) and Minor return this, never panic.
	ErrOutOfRange = fmt.Errorf("%w: index out of range", ErrInvalidInput)

	// ErrBadShape is returned when row slices handed to a builder are empty or ragged.
	ErrBadShape = fmt.Errorf("%w: invalid shape", ErrInvalidInput)

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., Add/Sub with different shapes, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = fmt.Errorf("%w: dimension mismatch", ErrCalc)

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = fmt.Errorf("%w: matrix is not square", ErrCalc)

	// ErrNaNInf signals a NaN or ±Inf scalar or cell where finite values are required.
	ErrNaNInf = fmt.Errorf("%w: NaN or Inf encountered", ErrCalc)

	// ErrSingular is returned by Inverse when the determinant is exactly zero.
	ErrSingular = fmt.Errorf("%w: singular matrix", ErrCalc)

	// ErrUndefinedAdjugate is returned by Inverse for 1×1 input: every minor of
	// a 1×1 matrix is 0×0, so the cofactor matrix cannot be formed.
	ErrUndefinedAdjugate = fmt.Errorf("%w: adjugate undefined for 1x1 matrix", ErrCalc)
)

// Status is the three-valued outcome of a fallible operation.
type Status int

const (
	// StatusOK means the operation succeeded (err == nil).
	StatusOK Status = iota
	// StatusInvalidInput means a structural precondition was violated.
	StatusInvalidInput
	// StatusCalc means the inputs were well-formed but mathematically unusable.
	StatusCalc
)

// String implements fmt.Stringer.
func (s Status) String() string {
	switch s {
	case StatusOK:
		return "OK"
	case StatusInvalidInput:
		return "ERR_INVALID_INPUT"
	case StatusCalc:
		return "ERR_CALC"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// StatusOf maps err onto its tier.
// Errors from outside this package (neither tier) are reported as StatusInvalidInput.
func StatusOf(err error) Status {
	switch {
	case err == nil:
		return StatusOK
	case errors.Is(err, ErrCalc):
		return StatusCalc
	default:
		return StatusInvalidInput
	}
}
