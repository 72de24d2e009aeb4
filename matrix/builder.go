// SPDX-License-Identifier: MIT

// Package matrix: Dense builders from literal data.
//
// Purpose:
//   - NewFromRows: materialize a Dense from a [][]float64 literal (copying).
//   - NewProgression: fill a Dense row-major with an arithmetic progression,
//     start, start+step, start+2·step, ... Handy for fixtures: a square
//     progression with n ≥ 3 has rank ≤ 2 and is therefore singular.
//
// Determinism:
//   - Fixed i→j fill order; no randomness.

package matrix

import "fmt"

// NewFromRows builds a Dense whose row i is a copy of rows[i].
//
// Errors:
//   - ErrBadShape when rows is empty, a row is empty, or rows are ragged.
//   - ErrNaNInf when a value is not finite and WithValidateNaNInf is given.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewFromRows(rows [][]float64, opts ...Option) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("NewFromRows: %w", ErrBadShape)
	}
	r, c := len(rows), len(rows[0])
	for i := 1; i < r; i++ {
		if len(rows[i]) != c {
			return nil, fmt.Errorf("NewFromRows: row %d has %d values, want %d: %w", i, len(rows[i]), c, ErrBadShape)
		}
	}

	m, err := NewDenseWithOptions(r, c, opts...)
	if err != nil {
		return nil, err
	}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if err = m.Set(i, j, rows[i][j]); err != nil {
				return nil, fmt.Errorf("NewFromRows: %w", err)
			}
		}
	}

	return m, nil
}

// NewProgression returns a rows×cols Dense filled in row-major order with
// start, start+step, start+2·step, ...
//
// Errors:
//   - ErrInvalidDimensions on a non-positive shape.
func NewProgression(rows, cols int, start, step float64) (*Dense, error) {
	m, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}
	v := start
	for idx := range m.data {
		m.data[idx] = v
		v += step
	}

	return m, nil
}
