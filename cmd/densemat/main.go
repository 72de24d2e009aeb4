// SPDX-License-Identifier: MIT
// densemat is a command-line front end for the matrix package.
//
// Operands are matrix documents (YAML or JSON, see package matrixio);
// "-" reads standard input.
//
//	densemat det a.yaml
//	densemat inverse --format json a.yaml
//	densemat mul a.yaml b.json
//	cat a.yaml | densemat minor - --row 0 --col 2
//
// Exit codes: 0 on success, 1 for invalid input, 2 for a calculation error.
package main

import (
	"os"

	"k8s.io/klog/v2"

	"github.com/katalvlaran/densemat/matrix"
)

func main() {
	code := Run(NewCommand(os.Stdin, os.Stdout, os.Stderr), os.Args[1:])
	klog.Flush()
	os.Exit(code)
}

// exitCode maps an error's status tier onto a process exit code.
func exitCode(err error) int {
	switch matrix.StatusOf(err) {
	case matrix.StatusOK:
		return 0
	case matrix.StatusCalc:
		return 2
	default:
		return 1
	}
}
