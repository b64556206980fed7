package runner

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/Florin-Ionita/satsuite/internal/cnf"
	"github.com/Florin-Ionita/satsuite/internal/solver"
)

// Comparison pits the two classical engines and the gini reference backend
// against the same formula.
type Comparison struct {
	DPLL      solver.Result
	Backtrack solver.Enumeration
	Gini      solver.Result
	Agree     bool
}

// Compare runs all three engines on one formula and checks they agree on
// satisfiability. The three runs share the formula read-only, so nothing is
// copied between them.
func (runner *Runner) Compare(formula cnf.Formula) (Comparison, error) {
	dpll, err := runner.solver.Solve(formula)
	if err != nil {
		return Comparison{}, fmt.Errorf("dpll: %w", err)
	}
	backtrack, err := runner.enumerator.Enumerate(formula)
	if err != nil {
		return Comparison{}, fmt.Errorf("backtrack: %w", err)
	}
	gini, err := solver.NewGiniSolver().Solve(formula)
	if err != nil {
		return Comparison{}, fmt.Errorf("gini: %w", err)
	}

	comparison := Comparison{
		DPLL:      dpll,
		Backtrack: backtrack,
		Gini:      gini,
		Agree: dpll.Satisfiable() == backtrack.Satisfiable() &&
			dpll.Satisfiable() == gini.Satisfiable(),
	}

	runner.logger.WithFields(logrus.Fields{
		"dpll":           dpll.Satisfiable(),
		"dpll_time":      dpll.Duration,
		"backtrack":      backtrack.Satisfiable(),
		"backtrack_time": backtrack.Duration,
		"solutions":      len(backtrack.Solutions),
		"gini":           gini.Satisfiable(),
		"gini_time":      gini.Duration,
		"agree":          comparison.Agree,
	}).Info("comparison finished")

	if !comparison.Agree {
		runner.logger.Error("engines disagree on satisfiability")
	}
	return comparison, nil
}
