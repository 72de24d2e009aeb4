// SPDX-License-Identifier: MIT

// Package matrix - minors, determinant, cofactors, adjugate and inverse.
//
// Purpose:
//   - Determinant by recursive Laplace expansion along the first row.
//   - Cofactor matrix from the determinants of every (i,j) minor.
//   - Inverse = adjugate / determinant, adjugate = transpose(cofactors).
//
// Determinism:
//   - Fixed expansion row (0) and column order (0..n-1); sign starts at +1.
//     Results are reproducible bit for bit across runs.
//
// Complexity quicksheet:
//   - Minor: O(n²). Determinant: O(n!) for n ≥ 3. Cofactors/Inverse: O(n² · (n-1)!).
//     Intended for small matrices; no LU shortcut is taken.

package matrix

import "fmt"

// Minor returns a new (rows-1)×(cols-1) matrix equal to m with row exRow and
// column exCol removed. The relative order of the remaining rows and columns
// is preserved. The caller owns the result.
//
// Implementation:
//   - Stage 1: ValidateNotNil(m); bounds-check exRow/exCol.
//   - Stage 2: allocate (rows-1)×(cols-1); a 1-row or 1-column input fails here.
//   - Stage 3: copy every kept cell to (i - [i>exRow], j - [j>exCol]).
//
// Errors:
//   - ErrNilMatrix         (invalid m).
//   - ErrOutOfRange        (exRow/exCol outside m).
//   - ErrInvalidDimensions (the minor would have a zero dimension, e.g. 1×1 input).
//
// Complexity:
//   - Time O(r*c), Space O((r-1)*(c-1)).
func Minor(m Matrix, exRow, exCol int) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMinor, err)
	}
	rows, cols := m.Rows(), m.Cols()
	if exRow < 0 || exRow >= rows || exCol < 0 || exCol >= cols {
		return nil, matrixErrorf(opMinor, fmt.Errorf("exclude (%d,%d): %w", exRow, exCol, ErrOutOfRange))
	}
	res, err := newDenseLike(m, rows-1, cols-1)
	if err != nil {
		return nil, matrixErrorf(opMinor, err)
	}

	var i, j, dst int
	if dm, ok := m.(*Dense); ok {
		for i = 0; i < rows; i++ {
			if i == exRow {
				continue
			}
			for j = 0; j < cols; j++ {
				if j == exCol {
					continue
				}
				res.data[dst] = dm.data[i*cols+j]
				dst++
			}
		}
		return res, nil
	}

	var v float64
	for i = 0; i < rows; i++ {
		if i == exRow {
			continue
		}
		for j = 0; j < cols; j++ {
			if j == exCol {
				continue
			}
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opMinor, err)
			}
			res.data[dst] = v
			dst++
		}
	}

	return res, nil
}

// Determinant computes det(m) by Laplace expansion along the first row.
// MAIN DESCRIPTION:
//   - n=1: the single cell.
//   - n=2: a·d − b·c.
//   - n≥3: Σ_j (−1)^j · m[0,j] · det(Minor(m, 0, j)), sign +1 at j=0.
//
// Behavior highlights:
//   - Each minor is dropped right after its determinant is taken.
//   - Any failure inside the recursion is returned; no partial sum escapes.
//
// Errors:
//   - ErrNilMatrix (invalid-input tier), ErrNonSquare (calc tier).
//
// Complexity:
//   - Time O(n!), Space O(n²) live at any recursion depth.
func Determinant(m Matrix) (float64, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}
	det, err := determinant(m)
	if err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}

	return det, nil
}

// determinant is the recursive kernel; m is known valid and square.
func determinant(m Matrix) (float64, error) {
	n := m.Rows()
	switch n {
	case 1:
		return m.At(0, 0)
	case 2:
		a, err := m.At(0, 0)
		if err != nil {
			return 0, err
		}
		b, err := m.At(0, 1)
		if err != nil {
			return 0, err
		}
		c, err := m.At(1, 0)
		if err != nil {
			return 0, err
		}
		d, err := m.At(1, 1)
		if err != nil {
			return 0, err
		}
		return a*d - b*c, nil
	}

	var det float64
	sign := 1.0
	for j := 0; j < n; j++ {
		head, err := m.At(0, j)
		if err != nil {
			return 0, err
		}
		minor, err := Minor(m, 0, j)
		if err != nil {
			return 0, err
		}
		sub, err := determinant(minor)
		minor.Release()
		if err != nil {
			return 0, err
		}
		det += sign * head * sub
		sign = -sign
	}

	return det, nil
}

// Cofactors returns the cofactor matrix C with C[i,j] = (−1)^(i+j) · det(Minor(m, i, j)).
//
// Errors:
//   - ErrNilMatrix (invalid m), ErrNonSquare (calc tier).
//   - ErrInvalidDimensions for a 1×1 input: its only minor is 0×0.
//
// Complexity:
//   - Time O(n² · (n-1)!), Space O(n²).
func Cofactors(m Matrix) (*Dense, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opCofactors, err)
	}
	n := m.Rows()
	res, err := newDenseLike(m, n, n)
	if err != nil {
		return nil, matrixErrorf(opCofactors, err)
	}

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			minor, err := Minor(m, i, j)
			if err != nil {
				return nil, matrixErrorf(opCofactors, err)
			}
			d, err := determinant(minor)
			minor.Release()
			if err != nil {
				return nil, matrixErrorf(opCofactors, err)
			}
			if (i+j)%2 != 0 {
				d = -d
			}
			res.data[i*n+j] = d
		}
	}

	return res, nil
}

// Adjugate returns adj(m) = Cofactors(m)ᵀ.
//
// Errors:
//   - Same as Cofactors.
func Adjugate(m Matrix) (*Dense, error) {
	cof, err := Cofactors(m)
	if err != nil {
		return nil, matrixErrorf(opAdjugate, err)
	}
	adj, err := Transpose(cof)
	cof.Release()
	if err != nil {
		return nil, matrixErrorf(opAdjugate, err)
	}

	return adj, nil
}

// Inverse returns m⁻¹ = adj(m) / det(m).
// MAIN DESCRIPTION:
//   - Stage 1: validity → squareness.
//   - Stage 2: det(m); exactly 0 → ErrSingular. No epsilon is applied, so a
//     nearly singular matrix inverts to large entries rather than failing.
//   - Stage 3: adjugate, then cellwise division by det.
//
// Errors:
//   - ErrNilMatrix (invalid-input tier).
//   - ErrNonSquare, ErrSingular, ErrUndefinedAdjugate for 1×1 input (calc tier).
//
// Complexity:
//   - Time O(n² · (n-1)!), Space O(n²).
func Inverse(m Matrix) (*Dense, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	det, err := determinant(m)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	if det == 0 {
		return nil, matrixErrorf(opInverse, ErrSingular)
	}
	if m.Rows() == 1 {
		return nil, matrixErrorf(opInverse, ErrUndefinedAdjugate)
	}

	adj, err := Adjugate(m)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	for idx := range adj.data {
		adj.data[idx] /= det
	}

	return adj, nil
}
