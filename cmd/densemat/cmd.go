// SPDX-License-Identifier: MIT

package main

import (
	goflag "flag"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"k8s.io/klog/v2"

	"github.com/katalvlaran/densemat/matrix"
	"github.com/katalvlaran/densemat/matrixio"
)

const cliLong = `densemat evaluates dense matrix operations on YAML or JSON documents.

A document lists the rows of a matrix:

    rows:
      - [2, 5, 7]
      - [6, 3, 4]
      - [5, -2, -3]

Pass "-" instead of a path to read an operand from standard input.`

// options carries the state shared by every subcommand.
type options struct {
	in     io.Reader
	out    io.Writer
	format matrixio.Format
	strict bool
}

// formatValue adapts matrixio.Format to pflag.Value.
type formatValue struct{ f *matrixio.Format }

var _ pflag.Value = formatValue{}

func (v formatValue) String() string {
	if v.f == nil {
		return ""
	}
	return string(*v.f)
}

func (v formatValue) Set(s string) error {
	f, err := matrixio.ParseFormat(s)
	if err != nil {
		return err
	}
	*v.f = f

	return nil
}

func (formatValue) Type() string { return "format" }

// NewCommand builds the densemat root command and its subcommands.
func NewCommand(in io.Reader, out, errOut io.Writer) *cobra.Command {
	o := &options{in: in, out: out, format: matrixio.FormatText}

	cmd := &cobra.Command{
		Use:           "densemat",
		Short:         "Dense matrix arithmetic on YAML/JSON documents",
		Long:          cliLong,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.SetIn(in)
	cmd.SetOut(out)
	cmd.SetErr(errOut)

	flags := cmd.PersistentFlags()
	flags.VarP(formatValue{&o.format}, "format", "o", "output format for matrix results: yaml|json|text")
	flags.BoolVar(&o.strict, "strict", false, "reject NaN and ±Inf cells while loading operands")

	klogFlags := goflag.NewFlagSet("klog", goflag.ContinueOnError)
	klog.InitFlags(klogFlags)
	flags.AddGoFlagSet(klogFlags)

	cmd.AddCommand(
		newUnaryCmd(o, "transpose FILE", "Print the transpose of a matrix", matrix.Transpose),
		newUnaryCmd(o, "cofactors FILE", "Print the cofactor matrix of a square matrix", matrix.Cofactors),
		newUnaryCmd(o, "adjugate FILE", "Print the adjugate (transposed cofactors) of a square matrix", matrix.Adjugate),
		newUnaryCmd(o, "inverse FILE", "Print the inverse of a square matrix", matrix.Inverse),
		newBinaryCmd(o, "add A B", "Print A + B", matrix.Add),
		newBinaryCmd(o, "sub A B", "Print A - B", matrix.Sub),
		newBinaryCmd(o, "mul A B", "Print the matrix product A·B", matrix.Mul),
		newDetCmd(o),
		newMinorCmd(o),
		newScaleCmd(o),
		newEqualCmd(o),
	)

	return cmd
}

// load decodes one operand, honoring --strict and "-" for stdin.
func (o *options) load(path string) (*matrix.Dense, error) {
	var opts []matrix.Option
	if o.strict {
		opts = append(opts, matrix.WithValidateNaNInf())
	}

	var (
		m   *matrix.Dense
		err error
	)
	if path == matrixio.StdinPath {
		m, err = matrixio.Read(o.in, opts...)
	} else {
		m, err = matrixio.Load(path, opts...)
	}
	if err != nil {
		return nil, err
	}
	klog.V(2).InfoS("Loaded operand", "path", path, "rows", m.Rows(), "cols", m.Cols())

	return m, nil
}

// emit writes a matrix result in the selected format.
func (o *options) emit(op string, m *matrix.Dense) error {
	klog.V(1).InfoS("Computed result", "op", op, "rows", m.Rows(), "cols", m.Cols())
	return matrixio.Write(o.out, m, o.format)
}

// Run executes cmd with args and returns the process exit code.
// Every failure, including cobra's own argument and flag errors, is reported
// on the command's error stream together with its status tier.
func Run(cmd *cobra.Command, args []string) int {
	cmd.SetArgs(args)
	err := cmd.Execute()
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v (%s)\n", err, matrix.StatusOf(err))
	}

	return exitCode(err)
}

// logged records which subcommand failed before handing err back to cobra.
func logged(op string, err error) error {
	if err != nil {
		klog.V(1).InfoS("Operation failed", "op", op, "status", matrix.StatusOf(err).String(), "err", err)
	}
	return err
}

func newUnaryCmd(o *options, use, short string, fn func(matrix.Matrix) (*matrix.Dense, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			op := c.Name()
			m, err := o.load(args[0])
			if err != nil {
				return logged(op, err)
			}
			res, err := fn(m)
			if err != nil {
				return logged(op, err)
			}
			return logged(op, o.emit(op, res))
		},
	}
}

func newBinaryCmd(o *options, use, short string, fn func(a, b matrix.Matrix) (*matrix.Dense, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(c *cobra.Command, args []string) error {
			op := c.Name()
			a, err := o.load(args[0])
			if err != nil {
				return logged(op, err)
			}
			b, err := o.load(args[1])
			if err != nil {
				return logged(op, err)
			}
			res, err := fn(a, b)
			if err != nil {
				return logged(op, err)
			}
			return logged(op, o.emit(op, res))
		},
	}
}

func newDetCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "det FILE",
		Short: "Print the determinant of a square matrix",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			m, err := o.load(args[0])
			if err != nil {
				return logged("det", err)
			}
			det, err := matrix.Determinant(m)
			if err != nil {
				return logged("det", err)
			}
			_, err = fmt.Fprintf(o.out, "%g\n", det)
			return logged("det", err)
		},
	}
}

func newMinorCmd(o *options) *cobra.Command {
	var row, col int
	cmd := &cobra.Command{
		Use:   "minor FILE --row R --col C",
		Short: "Print the matrix with row R and column C removed",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			m, err := o.load(args[0])
			if err != nil {
				return logged("minor", err)
			}
			res, err := matrix.Minor(m, row, col)
			if err != nil {
				return logged("minor", err)
			}
			return logged("minor", o.emit("minor", res))
		},
	}
	cmd.Flags().IntVar(&row, "row", 0, "zero-based row to remove")
	cmd.Flags().IntVar(&col, "col", 0, "zero-based column to remove")
	_ = cmd.MarkFlagRequired("row")
	_ = cmd.MarkFlagRequired("col")

	return cmd
}

func newScaleCmd(o *options) *cobra.Command {
	var by float64
	cmd := &cobra.Command{
		Use:   "scale FILE --by K",
		Short: "Print K·FILE",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			m, err := o.load(args[0])
			if err != nil {
				return logged("scale", err)
			}
			res, err := matrix.Scale(m, by)
			if err != nil {
				return logged("scale", err)
			}
			return logged("scale", o.emit("scale", res))
		},
	}
	cmd.Flags().Float64Var(&by, "by", 1, "scalar factor")
	_ = cmd.MarkFlagRequired("by")

	return cmd
}

func newEqualCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "equal A B",
		Short: "Print whether A and B agree to about 7 decimal places",
		Args:  cobra.ExactArgs(2),
		RunE: func(c *cobra.Command, args []string) error {
			a, err := o.load(args[0])
			if err != nil {
				return logged("equal", err)
			}
			b, err := o.load(args[1])
			if err != nil {
				return logged("equal", err)
			}
			_, err = fmt.Fprintln(o.out, matrix.Equal(a, b))
			return logged("equal", err)
		},
	}
}
