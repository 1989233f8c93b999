// SPDX-License-Identifier: MIT

// Command sparsebench fills the second-difference stencil into a chosen
// sparse layout, multiplies it by 0..n-1, checks both steps against their
// closed forms and reports timings. Small matrices are dumped in full.
//
// Results go to stdout; diagnostics go to stderr through log/slog.
//
// Usage:
//
//	sparsebench [-n size] [-l map|hash|coo] [--verify] [-v]
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"time"

	"github.com/katalvlaran/sparsemat/builder"
	"github.com/katalvlaran/sparsemat/interop"
	"github.com/katalvlaran/sparsemat/sparse"
	"github.com/spf13/cobra"
)

const (
	defaultSize     = 10000
	defaultLayout   = "map"
	defaultPrintMax = 10
	// maxVerifySize bounds the dense gonum copy (n² float64s).
	maxVerifySize = 2000
)

var (
	errUnknownLayout = errors.New("unknown layout")
	errTestsFailed   = errors.New("one or more checks FAILED")
)

// layouts maps the --layout flag to a constructor.
var layouts = map[string]func(opts ...sparse.Option) sparse.Matrix[float64]{
	"map":  func(opts ...sparse.Option) sparse.Matrix[float64] { return sparse.NewMapMatrix[float64](opts...) },
	"hash": func(opts ...sparse.Option) sparse.Matrix[float64] { return sparse.NewHashMatrix[float64](opts...) },
	"coo":  func(opts ...sparse.Option) sparse.Matrix[float64] { return sparse.NewCooMatrix[float64](opts...) },
}

type benchOptions struct {
	size     int
	layout   string
	printMax int
	verify   bool
	verbose  bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := benchOptions{}

	cmd := &cobra.Command{
		Use:          "sparsebench",
		Short:        "Fill and multiply the stencil matrix in a sparse layout",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := newLogger(cmd.ErrOrStderr(), opts.verbose)
			return runBench(cmd.OutOrStdout(), logger, opts)
		},
	}

	f := cmd.Flags()
	f.IntVarP(&opts.size, "size", "n", defaultSize, "matrix size N (N >= 2)")
	f.StringVarP(&opts.layout, "layout", "l", defaultLayout, "storage layout: map, hash or coo")
	f.IntVar(&opts.printMax, "print-max", defaultPrintMax, "dump the matrix when N is below this")
	f.BoolVar(&opts.verify, "verify", false, "cross-check the product with gonum's dense kernel")
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "debug logging")

	return cmd
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	h := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})

	return slog.New(h).With(slog.String("component", "sparsebench"))
}

func runBench(w io.Writer, logger *slog.Logger, o benchOptions) error {
	newMatrix, ok := layouts[o.layout]
	if !ok {
		names := make([]string, 0, len(layouts))
		for k := range layouts {
			names = append(names, k)
		}
		slices.Sort(names)
		return fmt.Errorf("%q (want one of %v): %w", o.layout, names, errUnknownLayout)
	}
	n := o.size
	m := newMatrix(sparse.WithCapacity(max(n, 0)))
	x := builder.Iota[float64](n)
	want := builder.StencilIotaProduct[float64](n)

	logger.Debug("fill start", slog.Int("n", n), slog.String("layout", o.layout))
	t0 := time.Now()
	if err := builder.Build(m, nil, builder.Stencil[float64](n)); err != nil {
		return fmt.Errorf("fill: %w", err)
	}
	fillTime := time.Since(t0)
	fillOK := m.Rows() == n && m.Cols() == n && m.NNZ() == 3*n-2
	printResult(w, fillOK, "mtx_fill")
	fmt.Fprintf(w, "mtx_fill time: \t%d ms\n", fillTime.Milliseconds())
	logger.Info("filled",
		slog.Int("rows", m.Rows()),
		slog.Int("cols", m.Cols()),
		slog.Int("nnz", m.NNZ()),
		slog.Duration("duration", fillTime))

	fmt.Fprintln(w)

	t0 = time.Now()
	y, err := m.MulVec(x)
	if err != nil {
		return fmt.Errorf("vmult: %w", err)
	}
	multTime := time.Since(t0)
	multOK := sparse.VecEqual(y, want)
	printResult(w, multOK, "vmult")
	fmt.Fprintf(w, "vmult time: \t%d ms\n", multTime.Milliseconds())
	logger.Info("multiplied", slog.Duration("duration", multTime))

	verifyOK := true
	if o.verify {
		verifyOK, err = verifyWithGonum(w, logger, m, x, y)
		if err != nil {
			return err
		}
	}

	fmt.Fprint(w, "\n============================\n\n")
	fmt.Fprint(w, "Matrix:\n\n")
	if n < o.printMax {
		if err := m.Fprint(w); err != nil {
			return fmt.Errorf("print: %w", err)
		}
	} else {
		fmt.Fprintln(w, "N is too large to print the matrix")
	}

	if !fillOK || !multOK || !verifyOK {
		return errTestsFailed
	}

	return nil
}

// verifyWithGonum compares y with the dense product. Sizes above
// maxVerifySize are skipped and count as passed.
func verifyWithGonum(w io.Writer, logger *slog.Logger, m sparse.Matrix[float64], x, y []float64) (bool, error) {
	if m.Rows() > maxVerifySize {
		logger.Warn("gonum check skipped",
			slog.Int("n", m.Rows()),
			slog.Int("max", maxVerifySize))
		return true, nil
	}
	ref, err := interop.MulVecReference(m, x)
	if err != nil {
		return false, fmt.Errorf("gonum check: %w", err)
	}
	ok := sparse.VecAllClose(ref, y, 0, 0)
	printResult(w, ok, "gonum")

	return ok, nil
}

func printResult(w io.Writer, ok bool, name string) {
	status := "FAILED"
	if ok {
		status = "PASSED"
	}
	fmt.Fprintf(w, "%s test: \t%s\n", name, status)
}
