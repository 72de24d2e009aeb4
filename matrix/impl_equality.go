// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Equal: the library's equality contract (fixed absolute tolerance by
//     scale-and-round). Every kernel test is phrased against it.
//   - AllClose: numpy-style |a-b| ≤ atol + rtol*|b| for callers that need a
//     magnitude-relative comparison.
//
// Notes:
//   - Equal multiplies each value by EqualScale and rounds half away from
//     zero before comparing, so two values agree when they match to about
//     7 decimal places. The tolerance is absolute: very large magnitudes
//     whose products exceed float64 integer precision compare by their
//     rounded representations, which is kept as is.
//   - NaN never equals anything (including NaN); +Inf equals +Inf.

package matrix

import (
	"math"
)

// EqualScale is the fixed factor applied before rounding in Equal.
const EqualScale = 1e7

// equalScaled reports whether x and y agree after scaling and rounding.
func equalScaled(x, y float64) bool {
	return math.Round(x*EqualScale) == math.Round(y*EqualScale)
}

// Equal reports whether a and b are valid, have the same shape, and agree
// cell by cell after scaling by EqualScale and rounding to the nearest integer.
//
// Behavior highlights:
//   - Invalid (nil/released) operands or differing shapes → false, never an error.
//   - Early exit on the first differing cell.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func Equal(a, b Matrix) bool {
	if !IsValid(a) || !IsValid(b) || !SameShape(a, b) {
		return false
	}

	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			for idx := range da.data {
				if !equalScaled(da.data[idx], db.data[idx]) {
					return false
				}
			}
			return true
		}
	}

	rows, cols := a.Rows(), a.Cols()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			av, errA := a.At(i, j)
			bv, errB := b.At(i, j)
			if errA != nil || errB != nil || !equalScaled(av, bv) {
				return false
			}
		}
	}

	return true
}

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
//
// Policy:
//   - a and b must be valid and have identical shapes.
//   - rtol, atol must be finite; negative values are normalized to |rtol|, |atol|.
//
// Errors:
//   - ErrNaNInf (bad tolerance), ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if err := validateScalar(rtol); err != nil {
		return false, matrixErrorf("AllClose", err)
	}
	if err := validateScalar(atol); err != nil {
		return false, matrixErrorf("AllClose", err)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)

	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf("AllClose", err)
	}

	rows, cols := a.Rows(), a.Cols()
	var av, bv float64
	var err error
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if av, err = a.At(i, j); err != nil {
				return false, matrixErrorf("AllClose", err)
			}
			if bv, err = b.At(i, j); err != nil {
				return false, matrixErrorf("AllClose", err)
			}
			if math.Abs(av-bv) > atol+rtol*math.Abs(bv) {
				return false, nil
			}
		}
	}

	return true, nil
}
