package solver

import "github.com/Florin-Ionita/satsuite/internal/cnf"

// propagate runs unit propagation to a fixed point, binding the forced
// literal of every unit clause. It returns false when some clause is
// falsified under the current assignment, in which case the caller must
// backtrack. Every pass rescans all clauses since a new binding can create
// new unit clauses or falsify a clause.
func propagate(formula cnf.Formula, assignment *cnf.Assignment) bool {
	for {
		again := false
		for _, clause := range formula.Clauses {
			switch clause.Eval(assignment) {
			case cnf.False:
				return false
			case cnf.True:
				continue
			}
			if literal, ok := clause.Unit(assignment); ok {
				assignment.Bind(literal.Var, literal.Positive)
				again = true
			}
		}
		if !again {
			return true
		}
	}
}

// eliminatePure binds every pure variable to the polarity that satisfies all
// of its occurrences. A variable is pure when it appears with a single
// polarity across the clauses not yet satisfied; no clause needs the opposite
// polarity, so the binding cannot falsify anything. Applied once per
// saturation pass by the single-solution search. The enumerator must not use
// it: it would collapse branches that hold distinct solutions.
func eliminatePure(formula cnf.Formula, assignment *cnf.Assignment) {
	const (
		positive = uint8(1) << 0
		negative = uint8(1) << 1
	)

	polarities := make(map[int64]uint8)
	for _, clause := range formula.Clauses {
		if clause.Eval(assignment) == cnf.True {
			continue
		}
		for _, literal := range clause {
			if assignment.Bound(literal.Var) {
				continue
			}
			if literal.Positive {
				polarities[literal.Var] |= positive
			} else {
				polarities[literal.Var] |= negative
			}
		}
	}

	// Bind in ascending variable order to keep the trail reproducible.
	for variable := int64(1); variable <= formula.Variables; variable++ {
		switch polarities[variable] {
		case positive:
			assignment.Bind(variable, true)
		case negative:
			assignment.Bind(variable, false)
		}
	}
}
