package solver

import (
	"time"

	"github.com/Florin-Ionita/satsuite/internal/cnf"
)

// Solution is a complete assignment encoded as one signed literal per
// variable, in ascending variable order.
type Solution []int64

// Result is the outcome of a single-solution call. A nil Solution means the
// formula is unsatisfiable. The elapsed time is always recorded so engines
// can be compared on the same instance.
type Result struct {
	Solution Solution
	Duration time.Duration
}

func (r Result) Satisfiable() bool {
	return r.Solution != nil
}

// Enumeration is the outcome of an all-solutions call. An empty solution list
// means the formula is unsatisfiable.
type Enumeration struct {
	Solutions []Solution
	Duration  time.Duration
}

func (e Enumeration) Satisfiable() bool {
	return len(e.Solutions) > 0
}

// Solver finds one satisfying assignment of a formula, or reports that none
// exists. Implementations are deterministic pure functions of the input
// formula and treat it as read-only.
type Solver interface {
	Solve(formula cnf.Formula) (Result, error)
}

// Enumerator finds every satisfying assignment of a formula.
type Enumerator interface {
	Enumerate(formula cnf.Formula) (Enumeration, error)
}
