// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/linalg/fraction"
	"github.com/katalvlaran/linalg/matrix"
)

type fmatrix = matrix.Dense[fraction.Fraction]

func runShow(cmd *cobra.Command, args []string) error {
	sys, err := loadSystem()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "A (%dx%d):\n%s", sys.A.Rows(), sys.A.Cols(), sys.A)
	if sys.B != nil {
		fmt.Fprintf(out, "b: %v\n", sys.B)
	}

	return nil
}

func runRREF(cmd *cobra.Command, args []string) error {
	sys, err := loadSystem()
	if err != nil {
		return err
	}
	rd, err := matrix.Reduce(sys.A)
	if err != nil {
		return err
	}
	logger.Info("Reduced matrix",
		zap.Int("rank", rd.Rank()),
		zap.Int("swaps", rd.Swaps),
		zap.Ints("pivots", rd.Pivots))

	out := cmd.OutOrStdout()
	fmt.Fprint(out, rd.Matrix)
	fmt.Fprintf(out, "rank: %d\nswaps: %d\npivot product: %s\npivot columns: %v\n",
		rd.Rank(), rd.Swaps, rd.PivotProduct, rd.Pivots)

	return nil
}

func runDet(cmd *cobra.Command, args []string) error {
	sys, err := loadSystem()
	if err != nil {
		return err
	}
	d, err := matrix.Det(sys.A)
	if err != nil {
		return err
	}
	logger.Info("Computed determinant", zap.Stringer("det", d))
	fmt.Fprintf(cmd.OutOrStdout(), "det: %s\n", d)

	return nil
}

func runIndependent(cmd *cobra.Command, args []string) error {
	sys, err := loadSystem()
	if err != nil {
		return err
	}
	ok, err := matrix.LinearlyIndependent(sys.A)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "linearly independent: %t\n", ok)

	return nil
}

func runSolve(cmd *cobra.Command, args []string) error {
	sys, err := loadSystem()
	if err != nil {
		return err
	}
	if sys.B == nil {
		return errNoRHS
	}

	return printSolution(cmd, sys.A, sys.B)
}

func printSolution(cmd *cobra.Command, a *fmatrix, b []fraction.Fraction) error {
	x, unique, err := matrix.Solve(a, b)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if !unique {
		logger.Warn("System has no unique solution", zap.Int("n", a.Rows()))
		fmt.Fprintln(out, "no unique solution")

		return nil
	}
	fmt.Fprintf(out, "x: %v\n", x)

	return nil
}

func runInverse(cmd *cobra.Command, args []string) error {
	sys, err := loadSystem()
	if err != nil {
		return err
	}
	inv, err := matrix.Inverse(sys.A)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), inv)

	return nil
}

// runDemo builds A from the column vectors (1,0,5), (-2,2,0), (1,-8,-5) and
// walks it through every derived operation.
func runDemo(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	ints := func(vs ...int64) []fraction.Fraction {
		fs := make([]fraction.Fraction, len(vs))
		for i, v := range vs {
			fs[i] = fraction.FromInt(v)
		}
		return fs
	}

	flat, err := matrix.NewDenseFrom(2, 3, ints(0, 1, 2, 3, 4, 5))
	if err != nil {
		return err
	}
	col0, err := flat.Col(0)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Matrix from flat data 0..5:\n%sColumn 0: %v\n\n", flat, col0)

	a, err := matrix.NewFromColumns([][]fraction.Fraction{ints(1, 0, 5), ints(-2, 2, 0), ints(1, -8, -5)})
	if err != nil {
		return err
	}
	logger.Debug("Built demo matrix", zap.Int("rows", a.Rows()), zap.Int("cols", a.Cols()))
	fmt.Fprintf(out, "A from columns v1, v2, v3:\n%s", a)

	ok, err := matrix.LinearlyIndependent(a)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "linearly independent: %t\n", ok)

	d, err := matrix.Det(a)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "det: %s\n", d)

	if err = printSolution(cmd, a, ints(0, 8, 10)); err != nil {
		return err
	}

	b, err := matrix.NewFromRows([][]fraction.Fraction{ints(1, 2), ints(3, 4), ints(5, 6)})
	if err != nil {
		return err
	}
	ab, err := matrix.Mul(a, b)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "A*B:\n%s", ab)
	fmt.Fprintf(out, "10/2 = %s\n", fraction.MustNew(10, 2))

	return nil
}
