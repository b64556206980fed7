package solver

import (
	"time"

	"github.com/Florin-Ionita/satsuite/internal/cnf"
)

type dpllSolver struct{}

// NewDPLLSolver returns the classical DPLL backtracking solver: unit
// propagation and pure-literal elimination to saturation, then branching on
// the first unbound variable, true before false. The first satisfying
// assignment found is returned immediately.
func NewDPLLSolver() Solver {
	return &dpllSolver{}
}

func (solver *dpllSolver) Solve(formula cnf.Formula) (Result, error) {
	start := time.Now()
	assignment := cnf.NewAssignment(formula.Variables)

	if formula.HasEmptyClause() || !solver.search(formula, assignment) {
		return Result{Duration: time.Since(start)}, nil
	}

	// A branch can satisfy the formula before every variable is bound. The
	// remaining variables are unconstrained, so complete the assignment with
	// a fixed choice to keep the output deterministic.
	for variable := int64(1); variable <= formula.Variables; variable++ {
		if !assignment.Bound(variable) {
			assignment.Bind(variable, true)
		}
	}

	return Result{Solution: assignment.Solution(), Duration: time.Since(start)}, nil
}

// search recurses at most once per variable: propagation only adds forced
// bindings, and both polarities of every decision variable are tried before
// giving up, so the search is sound and complete.
func (solver *dpllSolver) search(formula cnf.Formula, assignment *cnf.Assignment) bool {
	if !propagate(formula, assignment) {
		return false
	}
	eliminatePure(formula, assignment)

	switch formula.Eval(assignment) {
	case cnf.True:
		return true
	case cnf.False:
		return false
	}

	variable := assignment.FirstUnbound()
	mark := assignment.Mark()

	assignment.Bind(variable, true)
	if solver.search(formula, assignment) {
		return true
	}
	assignment.UndoTo(mark)

	assignment.Bind(variable, false)
	if solver.search(formula, assignment) {
		return true
	}
	assignment.UndoTo(mark)

	return false
}
