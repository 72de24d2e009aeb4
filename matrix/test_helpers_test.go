// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures and assertions for the kernels.
//   • Keep random data seeded so every failure is reproducible.

package matrix_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/densemat/matrix"
)

// hide wraps any Matrix to hide its concrete type from type assertions,
// forcing the generic At/Set fallback inside the kernels.
type hide struct{ matrix.Matrix }

// MustDense allocates an r×c *Dense or fails the test.
func MustDense(t testing.TB, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	if err != nil {
		t.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}

	return m
}

// MustRows builds a *Dense from row literals or fails the test.
func MustRows(t testing.TB, rows ...[]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromRows(rows)
	if err != nil {
		t.Fatalf("NewFromRows(%v): %v", rows, err)
	}

	return m
}

// MustProgression builds a row-major arithmetic progression or fails the test.
func MustProgression(t testing.TB, r, c int, start, step float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewProgression(r, c, start, step)
	if err != nil {
		t.Fatalf("NewProgression(%d,%d,%v,%v): %v", r, c, start, step, err)
	}

	return m
}

// MustAt reads m[i,j] or fails the test.
func MustAt(t testing.TB, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

// MustSet writes m[i,j] = v or fails the test.
func MustSet(t testing.TB, m matrix.Matrix, i, j int, v float64) {
	t.Helper()
	if err := m.Set(i, j, v); err != nil {
		t.Fatalf("Set(%d,%d,%v): %v", i, j, v, err)
	}
}

// RandomDense returns an r×c *Dense with values uniform in [-scale, scale),
// drawn from a source seeded with seed and snapped to multiples of 1/16.
// Dyadic values keep sums and small products exact, so algebraic identities
// hold bit for bit instead of straddling Equal's rounding boundary.
func RandomDense(t testing.TB, r, c int, seed int64, scale float64) *matrix.Dense {
	t.Helper()
	rnd := rand.New(rand.NewSource(seed))
	m := MustDense(t, r, c)
	var i, j int
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			MustSet(t, m, i, j, math.Round((2*rnd.Float64()-1)*scale*16)/16)
		}
	}

	return m
}

// RequireEqual fails unless got equals want under matrix.Equal.
func RequireEqual(t testing.TB, want, got matrix.Matrix) {
	t.Helper()
	if !matrix.Equal(want, got) {
		t.Fatalf("matrices differ:\nwant:\n%v\ngot:\n%v", want, got)
	}
}
