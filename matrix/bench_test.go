// Package matrix_test provides benchmarks for core matrix package operations,
// using deterministic random fill for Dense matrices.
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/densemat/matrix"
)

// benchSizes are the matrix sizes for the O(n²)/O(n³) kernels.
var benchSizes = []int{64, 128, 256}

// cofactorSizes stay small: Laplace expansion is O(n!).
var cofactorSizes = []int{4, 6, 8}

// sinks to defeat dead-code elimination
var (
	sinkM matrix.Matrix
	sinkB bool
	sinkF float64
)

func BenchmarkAdd(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := RandomDense(b, n, n, 1337, 100)
			B := RandomDense(b, n, n, 4242, 100)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Sum(A, B)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkSub(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := RandomDense(b, n, n, 11, 100)
			B := RandomDense(b, n, n, 22, 100)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Diff(A, B)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkTranspose(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := RandomDense(b, n, n, 5, 100)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.T(A)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkScale(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := RandomDense(b, n, n, 9, 100)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.ScaleBy(A, 1.5)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkMul(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := RandomDense(b, n, n, 101, 10)
			B := RandomDense(b, n, n, 202, 10)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Product(A, B)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}

func BenchmarkEqual(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := RandomDense(b, n, n, 3, 100)
			B := A.Clone()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sinkB = matrix.Equal(A, B)
			}
		})
	}
}

func BenchmarkDeterminant(b *testing.B) {
	b.ReportAllocs()
	for _, n := range cofactorSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := RandomDense(b, n, n, 77, 10)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				d, err := matrix.Det(A)
				if err != nil {
					b.Fatal(err)
				}
				sinkF = d
			}
		})
	}
}

func BenchmarkInverse(b *testing.B) {
	b.ReportAllocs()
	for _, n := range cofactorSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			A := RandomDense(b, n, n, 88, 10)
			for i := 0; i < n; i++ {
				MustSet(b, A, i, i, MustAt(b, A, i, i)+float64(10*n))
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.InverseOf(A)
				if err != nil {
					b.Fatal(err)
				}
				sinkM = m
			}
		})
	}
}
