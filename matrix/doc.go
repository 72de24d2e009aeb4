// Package matrix is a small dense real-valued matrix library.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with bounds-checked At/Set, an
//     explicit Release, and an optional finite-value policy (options.go).
//   - Equal, the fixed-tolerance equality (values are scaled by EqualScale
//     and rounded before comparison).
//   - Add, Sub, Scale, Mul and Transpose, each returning a fresh *Dense.
//   - Minor, Determinant, Cofactors, Adjugate and Inverse, built on the
//     classical recursive Laplace expansion along the first row.
//
// Errors come in two tiers. ErrInvalidInput covers structural problems
// (nil or released matrices, non-positive shapes, bad indices); ErrCalc covers
// mathematically unusable inputs (shape mismatch, non-square, NaN/Inf,
// singular). Every specific sentinel wraps one of the two, so
//
//	if errors.Is(err, matrix.ErrCalc) { ... }
//
// works for any operation. StatusOf reduces an error to OK / ERR_INVALID_INPUT
// / ERR_CALC.
//
// The determinant family is O(n!) and meant for small matrices.
// No operation mutates its operands and the package holds no global state,
// so distinct matrices may be used from distinct goroutines freely.
package matrix
