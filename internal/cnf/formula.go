package cnf

import (
	"fmt"

	"github.com/samber/lo"
)

// Formula is a conjunction of clauses over the variables 1..Variables. It is
// built once from parsed input and never mutated afterwards; searches layer a
// mutable Assignment on top of it, so independent solver invocations can share
// one Formula without synchronization.
type Formula struct {
	Variables int64
	Clauses   []Clause
}

// New validates raw signed-integer clauses and builds a Formula over the
// declared variable count. Empty clauses, zero literals and variables outside
// the declared range are rejected here, before any search begins.
func New(variables int64, clauses [][]int64) (Formula, error) {
	if variables < 0 {
		return Formula{}, fmt.Errorf("negative variable count %d", variables)
	}

	formula := Formula{
		Variables: variables,
		Clauses:   make([]Clause, 0, len(clauses)),
	}
	for i, raw := range clauses {
		if len(raw) == 0 {
			return Formula{}, fmt.Errorf("clause %d is empty", i+1)
		}
		clause := make(Clause, 0, len(raw))
		for _, value := range raw {
			if value == 0 {
				return Formula{}, fmt.Errorf("clause %d references variable 0", i+1)
			}
			literal := LiteralFromInt(value)
			if literal.Var > variables {
				return Formula{}, fmt.Errorf("clause %d references variable %d outside the declared range 1..%d", i+1, literal.Var, variables)
			}
			clause = append(clause, literal)
		}
		formula.Clauses = append(formula.Clauses, clause)
	}
	return formula, nil
}

// FromClauses builds a Formula whose variable count is the largest variable
// mentioned in the clauses.
func FromClauses(clauses [][]int64) (Formula, error) {
	var variables int64
	for _, clause := range clauses {
		for _, value := range clause {
			if value == 0 {
				continue // New reports this with a clause index
			}
			variables = max(variables, LiteralFromInt(value).Var)
		}
	}
	return New(variables, clauses)
}

// Eval returns True when every clause is satisfied, False when some clause is
// falsified, and Unresolved otherwise. A formula with no clauses is True
// under any assignment.
func (f Formula) Eval(assignment *Assignment) Value {
	unresolved := false
	for _, clause := range f.Clauses {
		switch clause.Eval(assignment) {
		case False:
			return False
		case Unresolved:
			unresolved = true
		}
	}
	if unresolved {
		return Unresolved
	}
	return True
}

// HasEmptyClause reports whether the formula contains a clause that can never
// be satisfied. Such a formula is unsatisfiable without any search.
func (f Formula) HasEmptyClause() bool {
	return lo.SomeBy(f.Clauses, func(clause Clause) bool { return len(clause) == 0 })
}
