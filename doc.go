// Package densemat is a small, dependency-light library for dense real-valued
// matrices: construction, equality, element-wise and linear operators, and the
// cofactor family (minor, determinant, cofactors, adjugate, inverse).
//
// 🚀 What is densemat?
//
//	A deterministic, pure-Go toolkit that brings together:
//		• Storage: row-major Dense with bounds-checked At/Set and explicit Release
//		• Equality: fixed-resolution comparison (about 7 decimal places)
//		• Operators: Add, Sub, Scale, Mul, Transpose
//		• Cofactor family: Minor, Determinant (Laplace), Cofactors, Adjugate, Inverse
//		• Status: every error collapses to OK / ERR_INVALID_INPUT / ERR_CALC
//		• I/O: YAML/JSON matrix documents and a densemat CLI
//
// Under the hood, everything is organized under these packages:
//
//	matrix/        - Dense, validators, kernels, error tiers
//	matrixio/      - {"rows": [[...]]} documents in YAML or JSON, text rendering
//	cmd/densemat/  - command-line front end (det, inverse, mul, ...)
//	examples/      - runnable scenarios
//
// Quick example:
//
//	A, _ := matrix.NewFromRows([][]float64{{4, 7}, {2, 6}})
//	inv, _ := matrix.Inverse(A)
//	fmt.Print(inv) // [0.6, -0.7]\n[-0.2, 0.4]\n
//
// Laplace expansion costs O(n!) and is meant for small matrices. Determinant
// and Cofactors are exact on integer inputs, which keeps the singularity
// check in Inverse exact; Inverse itself divides by the determinant.
//
//	go get github.com/katalvlaran/densemat/matrix
package densemat
