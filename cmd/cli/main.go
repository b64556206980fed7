package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/Florin-Ionita/satsuite/internal/runner"
	"github.com/Florin-Ionita/satsuite/internal/solver"
)

// Exit codes follow the DIMACS solver convention: 0 for satisfiable, 20 for
// unsatisfiable, 1 for errors.
const unsatisfiableExitCode = 20

var (
	logger = logrus.New()
	debug  bool
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "satsuite",
		Short:        "Classical SAT solving: DPLL, exhaustive enumeration and a reference CDCL backend",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if debug {
				logger.SetLevel(logrus.DebugLevel)
			}
		},
	}
	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "use debug log level")
	cmd.AddCommand(newSolveCmd(), newEnumerateCmd(), newCompareCmd(), newRunCmd())
	return cmd
}

func newSolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "solve <file>",
		Short: "Find one satisfying assignment with the DPLL solver",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			formula, _, err := runner.LoadFormula(args[0])
			if err != nil {
				return err
			}

			result, err := solver.NewDPLLSolver().Solve(formula)
			if err != nil {
				return err
			}
			if !result.Satisfiable() {
				fmt.Printf("UNSATISFIABLE (%v)\n", result.Duration)
				os.Exit(unsatisfiableExitCode)
			}

			fmt.Printf("SATISFIABLE (%v)\n", result.Duration)
			fmt.Println(formatSolution(result.Solution))
			return nil
		},
	}
}

func newEnumerateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "enumerate <file>",
		Short: "Find every satisfying assignment with the exhaustive backtracking solver",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			formula, _, err := runner.LoadFormula(args[0])
			if err != nil {
				return err
			}

			enumeration, err := solver.NewBacktrackEnumerator().Enumerate(formula)
			if err != nil {
				return err
			}
			if !enumeration.Satisfiable() {
				fmt.Printf("UNSATISFIABLE (%v)\n", enumeration.Duration)
				os.Exit(unsatisfiableExitCode)
			}

			fmt.Printf("SATISFIABLE: %v solutions (%v)\n", len(enumeration.Solutions), enumeration.Duration)
			for _, solution := range enumeration.Solutions {
				fmt.Println(formatSolution(solution))
			}
			return nil
		},
	}
}

func newCompareCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "compare <file>",
		Short: "Run DPLL, exhaustive backtracking and gini side by side on one instance",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			formula, _, err := runner.LoadFormula(args[0])
			if err != nil {
				return err
			}

			comparison, err := runner.New(logger).Compare(formula)
			if err != nil {
				return err
			}

			fmt.Printf("DPLL:      %v (%v)\n", verdict(comparison.DPLL.Satisfiable()), comparison.DPLL.Duration)
			fmt.Printf("Backtrack: %v, %v solutions (%v)\n", verdict(comparison.Backtrack.Satisfiable()), len(comparison.Backtrack.Solutions), comparison.Backtrack.Duration)
			fmt.Printf("Gini:      %v (%v)\n", verdict(comparison.Gini.Satisfiable()), comparison.Gini.Duration)

			if !comparison.Agree {
				return fmt.Errorf("engines disagree on satisfiability")
			}
			if !comparison.DPLL.Satisfiable() {
				os.Exit(unsatisfiableExitCode)
			}
			return nil
		},
	}
}

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run <directory>",
		Short: "Run every .cnf and .yaml instance in a directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reports, err := runner.New(logger).RunDir(args[0])
			if err != nil {
				return err
			}

			failed := lo.CountBy(reports, func(report runner.Report) bool { return !report.Passed })
			fmt.Printf("%v instances, %v passed, %v failed\n", len(reports), len(reports)-failed, failed)
			if failed > 0 {
				return fmt.Errorf("%v instances failed", failed)
			}
			return nil
		},
	}
}

func verdict(satisfiable bool) string {
	if satisfiable {
		return "SATISFIABLE"
	}
	return "UNSATISFIABLE"
}

func formatSolution(solution solver.Solution) string {
	literals := lo.Map(solution, func(literal int64, _ int) string { return fmt.Sprintf("%d", literal) })
	return "v " + strings.Join(literals, " ") + " 0"
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logger.Fatal(err)
	}
}
