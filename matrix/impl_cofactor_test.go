// Package matrix_test contains unit tests for Minor, Determinant, Cofactors,
// Adjugate and Inverse.
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/densemat/matrix"
	"github.com/stretchr/testify/require"
)

// ---------- Minor ----------

func TestMinor_RemovesRowAndColumn(t *testing.T) {
	A := MustProgression(t, 3, 4, 1, 1)
	// [ 1  2  3  4]
	// [ 5  6  7  8]
	// [ 9 10 11 12]
	for _, tc := range []struct {
		row, col int
		want     [][]float64
	}{
		{0, 0, [][]float64{{6, 7, 8}, {10, 11, 12}}},
		{1, 2, [][]float64{{1, 2, 4}, {9, 10, 12}}},
		{2, 3, [][]float64{{1, 2, 3}, {5, 6, 7}}},
	} {
		t.Run(fmt.Sprintf("ex(%d,%d)", tc.row, tc.col), func(t *testing.T) {
			got, err := matrix.Minor(A, tc.row, tc.col)
			require.NoError(t, err)
			require.Equal(t, tc.want, got.RawRows())

			slow, err := matrix.Minor(hide{A}, tc.row, tc.col)
			require.NoError(t, err)
			require.Equal(t, tc.want, slow.RawRows())
		})
	}
}

func TestMinor_Errors(t *testing.T) {
	one := MustRows(t, []float64{0})
	m, err := matrix.Minor(one, 1, 1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.Nil(t, m)

	m, err = matrix.Minor(one, 0, 0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	require.Nil(t, m)

	_, err = matrix.Minor(MustDense(t, 3, 3), -1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	for name, bad := range invalidOperands(t) {
		_, err = matrix.Minor(bad, 0, 0)
		require.ErrorIsf(t, err, matrix.ErrNilMatrix, "case %s", name)
	}
}

// ---------- Determinant ----------

func TestDeterminant_BaseCases(t *testing.T) {
	det, err := matrix.Determinant(MustRows(t, []float64{21}))
	require.NoError(t, err)
	require.Equal(t, 21.0, det)

	det, err = matrix.Determinant(MustProgression(t, 2, 2, 3, 3))
	require.NoError(t, err)
	require.Equal(t, -18.0, det)
}

func TestDeterminant_Expansion(t *testing.T) {
	for _, tc := range []struct {
		name string
		m    [][]float64
		want float64
	}{
		{"3x3 worked", [][]float64{{2, 5, 7}, {6, 3, 4}, {5, -2, -3}}, -1},
		{"3x3 cofactor fixture", [][]float64{{1, 2, 3}, {0, 4, 2}, {5, 2, 1}}, -40},
		{"upper triangular", [][]float64{{2, 1, 7, 3}, {0, 3, 4, 1}, {0, 0, 5, 9}, {0, 0, 0, 7}}, 210},
		{"row swap of identity", [][]float64{{0, 1, 0}, {1, 0, 0}, {0, 0, 1}}, -1},
		{"5x5", [][]float64{
			{1, 0, 2, -1, 3},
			{0, 1, 0, 2, 1},
			{2, 0, 1, 0, 0},
			{1, 3, 0, 1, 2},
			{0, 1, 1, 0, 1},
		}, -32},
	} {
		t.Run(tc.name, func(t *testing.T) {
			A := MustRows(t, tc.m...)
			det, err := matrix.Determinant(A)
			require.NoError(t, err)
			require.Equal(t, tc.want, det)

			slow, err := matrix.Determinant(hide{A})
			require.NoError(t, err)
			require.Equal(t, det, slow)
		})
	}
}

// Square progressions with n ≥ 3 are singular; all-integer arithmetic keeps the zero exact.
func TestDeterminant_ProgressionIsZero(t *testing.T) {
	for n := 3; n <= 6; n++ {
		det, err := matrix.Determinant(MustProgression(t, n, n, 1, 1))
		require.NoError(t, err)
		require.Zerof(t, det, "n=%d", n)
	}
}

func TestDeterminant_Errors(t *testing.T) {
	_, err := matrix.Determinant(MustProgression(t, 3, 2, 1, 1))
	require.ErrorIs(t, err, matrix.ErrNonSquare)
	require.Equal(t, matrix.StatusCalc, matrix.StatusOf(err))

	for name, bad := range invalidOperands(t) {
		_, err = matrix.Determinant(bad)
		require.ErrorIsf(t, err, matrix.ErrInvalidInput, "case %s", name)
	}
}

func TestDeterminant_DoesNotMutate(t *testing.T) {
	A := MustRows(t, []float64{2, 5, 7}, []float64{6, 3, 4}, []float64{5, -2, -3})
	before := A.RawRows()
	_, err := matrix.Determinant(A)
	require.NoError(t, err)
	require.Equal(t, before, A.RawRows())
}

// ---------- Cofactors / Adjugate ----------

func TestCofactors_Worked(t *testing.T) {
	A := MustRows(t,
		[]float64{1, 2, 3},
		[]float64{0, 4, 2},
		[]float64{5, 2, 1},
	)
	want := MustRows(t,
		[]float64{0, 10, -20},
		[]float64{4, -14, 8},
		[]float64{-8, -2, 4},
	)

	got, err := matrix.Cofactors(A)
	require.NoError(t, err)
	RequireEqual(t, want, got)

	slow, err := matrix.Cofactors(hide{A})
	require.NoError(t, err)
	RequireEqual(t, want, slow)
}

func TestCofactors_2x2(t *testing.T) {
	got, err := matrix.Cofactors(MustRows(t, []float64{1, 2}, []float64{3, 4}))
	require.NoError(t, err)
	RequireEqual(t, MustRows(t, []float64{4, -3}, []float64{-2, 1}), got)
}

func TestCofactors_Errors(t *testing.T) {
	_, err := matrix.Cofactors(MustDense(t, 3, 2))
	require.ErrorIs(t, err, matrix.ErrNonSquare)

	_, err = matrix.Cofactors(MustRows(t, []float64{4}))
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	for name, bad := range invalidOperands(t) {
		_, err = matrix.Cofactors(bad)
		require.ErrorIsf(t, err, matrix.ErrInvalidInput, "case %s", name)
	}
}

// A·adj(A) == det(A)·I.
func TestAdjugate_Identity(t *testing.T) {
	A := MustRows(t, []float64{1, 2, 3}, []float64{0, 4, 2}, []float64{5, 2, 1})

	adj, err := matrix.Adjugate(A)
	require.NoError(t, err)
	prod, err := matrix.Mul(A, adj)
	require.NoError(t, err)

	I, err := matrix.NewIdentity(3)
	require.NoError(t, err)
	want, err := matrix.Scale(I, -40)
	require.NoError(t, err)
	RequireEqual(t, want, prod)
}

// ---------- Inverse ----------

func TestInverse_Worked(t *testing.T) {
	A := MustRows(t,
		[]float64{2, 5, 7},
		[]float64{6, 3, 4},
		[]float64{5, -2, -3},
	)
	want := MustRows(t,
		[]float64{1, -1, 1},
		[]float64{-38, 41, -34},
		[]float64{27, -29, 24},
	)

	got, err := matrix.Inverse(A)
	require.NoError(t, err)
	RequireEqual(t, want, got)

	I, err := matrix.NewIdentity(3)
	require.NoError(t, err)
	prod, err := matrix.Mul(A, got)
	require.NoError(t, err)
	RequireEqual(t, I, prod)
}

func TestInverse_2x2(t *testing.T) {
	got, err := matrix.Inverse(MustRows(t, []float64{4, 7}, []float64{2, 6}))
	require.NoError(t, err)
	RequireEqual(t, MustRows(t, []float64{0.6, -0.7}, []float64{-0.2, 0.4}), got)
}

func TestInverse_SingularProgression(t *testing.T) {
	for n := 3; n <= 5; n++ {
		_, err := matrix.Inverse(MustProgression(t, n, n, 1, 1))
		require.ErrorIsf(t, err, matrix.ErrSingular, "n=%d", n)
		require.Equal(t, matrix.StatusCalc, matrix.StatusOf(err))
	}
}

func TestInverse_Errors(t *testing.T) {
	_, err := matrix.Inverse(MustProgression(t, 5, 3, 1, 1))
	require.ErrorIs(t, err, matrix.ErrNonSquare)

	_, err = matrix.Inverse(MustRows(t, []float64{0}))
	require.ErrorIs(t, err, matrix.ErrSingular)

	_, err = matrix.Inverse(MustRows(t, []float64{5}))
	require.ErrorIs(t, err, matrix.ErrUndefinedAdjugate)
	require.Equal(t, matrix.StatusCalc, matrix.StatusOf(err))

	for name, bad := range invalidOperands(t) {
		_, err = matrix.Inverse(bad)
		require.ErrorIsf(t, err, matrix.ErrInvalidInput, "case %s", name)
		require.Equal(t, matrix.StatusInvalidInput, matrix.StatusOf(err))
	}
}

// Non-square input is a calc error for the whole family.
func TestNonSquareRejection(t *testing.T) {
	A := MustProgression(t, 3, 2, 1, 1)

	_, err := matrix.Determinant(A)
	require.ErrorIs(t, err, matrix.ErrCalc)
	_, err = matrix.Cofactors(A)
	require.ErrorIs(t, err, matrix.ErrCalc)
	_, err = matrix.Inverse(A)
	require.ErrorIs(t, err, matrix.ErrCalc)
}
