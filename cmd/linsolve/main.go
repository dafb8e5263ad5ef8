// SPDX-License-Identifier: MIT

// Command linsolve reduces, inspects and solves exact rational linear systems.
//
// Systems are read from a YAML document (see internal/sysfile):
//
//	linsolve det -f system.yaml
//	linsolve solve -f system.yaml --verbose
//	linsolve demo
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/linalg/internal/sysfile"
)

var (
	// Global flags
	verbose    bool
	systemPath string

	// Logger
	logger *zap.Logger
)

var (
	errNoFile = errors.New("linsolve: no system document (use --file)")
	errNoRHS  = errors.New("linsolve: system document has no right-hand side `b`")
)

var rootCmd = &cobra.Command{
	Use:   "linsolve",
	Short: "Exact rational Gauss-Jordan elimination",
	Long: `linsolve works on matrices of exact fractions.

It reduces a coefficient matrix to reduced row echelon form and derives the
determinant, column independence, the inverse and the unique solution of A·x = b.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if logger != nil {
			return nil // injected
		}
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run the built-in example system",
	Args:  cobra.NoArgs,
	RunE:  runDemo,
}

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the coefficient matrix and right-hand side",
	Args:  cobra.NoArgs,
	RunE:  runShow,
}

var rrefCmd = &cobra.Command{
	Use:   "rref",
	Short: "Print the reduced row echelon form with elimination bookkeeping",
	Args:  cobra.NoArgs,
	RunE:  runRREF,
}

var detCmd = &cobra.Command{
	Use:   "det",
	Short: "Print the determinant of a square matrix",
	Args:  cobra.NoArgs,
	RunE:  runDet,
}

var independentCmd = &cobra.Command{
	Use:   "independent",
	Short: "Report whether the matrix columns are linearly independent",
	Args:  cobra.NoArgs,
	RunE:  runIndependent,
}

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Solve A·x = b for the unique x",
	Args:  cobra.NoArgs,
	RunE:  runSolve,
}

var inverseCmd = &cobra.Command{
	Use:   "inverse",
	Short: "Print the inverse of a square matrix",
	Args:  cobra.NoArgs,
	RunE:  runInverse,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&systemPath, "file", "f", "", "System document (YAML)")

	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(rrefCmd)
	rootCmd.AddCommand(detCmd)
	rootCmd.AddCommand(independentCmd)
	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(inverseCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadSystem reads the document named by --file.
func loadSystem() (*sysfile.System, error) {
	if systemPath == "" {
		return nil, errNoFile
	}
	sys, err := sysfile.Load(systemPath)
	if err != nil {
		return nil, err
	}
	logger.Debug("Loaded system",
		zap.String("path", systemPath),
		zap.Int("rows", sys.A.Rows()),
		zap.Int("cols", sys.A.Cols()),
		zap.Bool("rhs", sys.B != nil))

	return sys, nil
}
