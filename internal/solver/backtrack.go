package solver

import (
	"time"

	"github.com/samber/lo"

	"github.com/Florin-Ionita/satsuite/internal/cnf"
)

type backtrackEnumerator struct{}

// NewBacktrackEnumerator returns the exhaustive solver: it walks the full
// assignment tree in ascending variable order, true before false, and
// collects every complete satisfying assignment instead of stopping at the
// first one. A branch is cut as soon as some clause is falsified; the cut is
// an accelerator only, since a falsified clause stays falsified under every
// extension of the branch, no solution is ever skipped. The solution list
// comes out in lexicographic order of the fixed branching order.
func NewBacktrackEnumerator() Enumerator {
	return &backtrackEnumerator{}
}

func (enumerator *backtrackEnumerator) Enumerate(formula cnf.Formula) (Enumeration, error) {
	start := time.Now()

	// A conflict under the empty assignment can never be repaired: report
	// unsatisfiable without branching at all.
	if formula.HasEmptyClause() || !propagate(formula, cnf.NewAssignment(formula.Variables)) {
		return Enumeration{Solutions: []Solution{}, Duration: time.Since(start)}, nil
	}

	solutions := make([]Solution, 0)
	enumerator.descend(formula, cnf.NewAssignment(formula.Variables), 1, &solutions)

	return Enumeration{Solutions: solutions, Duration: time.Since(start)}, nil
}

func (enumerator *backtrackEnumerator) descend(formula cnf.Formula, assignment *cnf.Assignment, variable int64, solutions *[]Solution) {
	if variable > formula.Variables {
		if formula.Eval(assignment) == cnf.True {
			*solutions = append(*solutions, assignment.Solution())
		}
		return
	}

	mark := assignment.Mark()
	for _, value := range []bool{true, false} {
		assignment.Bind(variable, value)
		if !falsified(formula, assignment) {
			enumerator.descend(formula, assignment, variable+1, solutions)
		}
		assignment.UndoTo(mark)
	}
}

func falsified(formula cnf.Formula, assignment *cnf.Assignment) bool {
	return lo.SomeBy(formula.Clauses, func(clause cnf.Clause) bool {
		return clause.Eval(assignment) == cnf.False
	})
}
