package solver

import (
	"fmt"
	"time"

	"github.com/go-air/gini"
	"github.com/go-air/gini/z"

	"github.com/Florin-Ionita/satsuite/internal/cnf"
)

// Solve outcomes of the gini solver.
const (
	satisfiable   = 1
	unsatisfiable = -1
)

type giniSolver struct{}

// NewGiniSolver returns a backend over the gini CDCL solver. It serves as an
// independent reference implementation for the classical engines in the
// comparison harness and in tests.
func NewGiniSolver() Solver {
	return &giniSolver{}
}

func (solver *giniSolver) Solve(formula cnf.Formula) (Result, error) {
	start := time.Now()

	g := gini.New()
	occurs := make([]bool, formula.Variables+1)
	for _, clause := range formula.Clauses {
		for _, literal := range clause {
			occurs[literal.Var] = true
			g.Add(z.Dimacs2Lit(int(literal.Int())))
		}
		g.Add(z.LitNull)
	}

	switch outcome := g.Solve(); outcome {
	case satisfiable:
		solution := make(Solution, 0, formula.Variables)
		for variable := int64(1); variable <= formula.Variables; variable++ {
			// Variables absent from every clause are unconstrained; gini has
			// never seen them, so pick a fixed value.
			if !occurs[variable] {
				solution = append(solution, variable)
				continue
			}
			if g.Value(z.Dimacs2Lit(int(variable))) {
				solution = append(solution, variable)
			} else {
				solution = append(solution, -variable)
			}
		}
		return Result{Solution: solution, Duration: time.Since(start)}, nil
	case unsatisfiable:
		return Result{Duration: time.Since(start)}, nil
	default:
		return Result{}, fmt.Errorf("gini returned unexpected outcome %v", outcome)
	}
}
