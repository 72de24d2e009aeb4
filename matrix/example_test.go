package matrix_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/densemat/matrix"
)

// ExampleInverse inverts a 3×3 matrix and checks A·A⁻¹ = I.
func ExampleInverse() {
	A, _ := matrix.NewFromRows([][]float64{
		{2, 5, 7},
		{6, 3, 4},
		{5, -2, -3},
	})

	inv, err := matrix.Inverse(A)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Print(inv)

	I, _ := matrix.NewIdentity(3)
	prod, _ := matrix.Mul(A, inv)
	fmt.Println("A·A⁻¹ = I:", matrix.Equal(prod, I))

	// Output:
	// [1, -1, 1]
	// [-38, 41, -34]
	// [27, -29, 24]
	// A·A⁻¹ = I: true
}

// ExampleDeterminant shows the singular progression fixture.
func ExampleDeterminant() {
	P, _ := matrix.NewProgression(3, 3, 1, 1)
	det, _ := matrix.Determinant(P)
	fmt.Println("det =", det)

	_, err := matrix.Inverse(P)
	fmt.Println(errors.Is(err, matrix.ErrSingular), matrix.StatusOf(err))

	// Output:
	// det = 0
	// true ERR_CALC
}

// ExampleCofactors prints the cofactor matrix and the adjugate.
func ExampleCofactors() {
	A, _ := matrix.NewFromRows([][]float64{
		{1, 2, 3},
		{0, 4, 2},
		{5, 2, 1},
	})

	C, _ := matrix.Cofactors(A)
	fmt.Print(C)

	adj, _ := matrix.Adjugate(A)
	fmt.Print(adj)

	// Output:
	// [0, 10, -20]
	// [4, -14, 8]
	// [-8, -2, 4]
	// [0, 4, -8]
	// [10, -14, -2]
	// [-20, 8, 4]
}

// ExampleStatusOf shows the two error tiers.
func ExampleStatusOf() {
	_, err := matrix.NewDense(0, 3)
	fmt.Println(matrix.StatusOf(err))

	a, _ := matrix.NewDense(2, 3)
	b, _ := matrix.NewDense(2, 3)
	_, err = matrix.Mul(a, b)
	fmt.Println(matrix.StatusOf(err))

	_, err = matrix.Add(a, b)
	fmt.Println(matrix.StatusOf(err))

	// Output:
	// ERR_INVALID_INPUT
	// ERR_CALC
	// OK
}
