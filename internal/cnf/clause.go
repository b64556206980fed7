package cnf

import (
	"strings"

	"github.com/samber/lo"
)

// Clause is a disjunction of literals.
type Clause []Literal

// Eval returns True when some literal is satisfied, False when every literal
// is falsified, and Unresolved otherwise. An empty clause is permanently
// False.
func (c Clause) Eval(assignment *Assignment) Value {
	unresolved := false
	for _, literal := range c {
		switch assignment.Literal(literal) {
		case True:
			return True
		case Unresolved:
			unresolved = true
		}
	}
	if unresolved {
		return Unresolved
	}
	return False
}

// Unit returns the forced literal when exactly one literal of the clause is
// unbound and every other literal is falsified.
func (c Clause) Unit(assignment *Assignment) (Literal, bool) {
	var unit Literal
	found := false
	for _, literal := range c {
		switch assignment.Literal(literal) {
		case True:
			return Literal{}, false
		case Unresolved:
			if found {
				return Literal{}, false
			}
			unit = literal
			found = true
		}
	}
	return unit, found
}

func (c Clause) String() string {
	literals := lo.Map(c, func(literal Literal, _ int) string { return literal.String() })
	return "(" + strings.Join(literals, " ") + ")"
}
