package cnf

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func clause(literals ...int64) Clause {
	result := make(Clause, 0, len(literals))
	for _, literal := range literals {
		result = append(result, LiteralFromInt(literal))
	}
	return result
}

func TestClauseEval(t *testing.T) {
	assignment := NewAssignment(3)
	assignment.Bind(1, true)
	assignment.Bind(2, false)

	assert.Equal(t, True, clause(1, 2).Eval(assignment))
	assert.Equal(t, True, clause(-2).Eval(assignment))
	assert.Equal(t, False, clause(-1, 2).Eval(assignment))
	assert.Equal(t, Unresolved, clause(-1, 3).Eval(assignment))
	assert.Equal(t, False, Clause{}.Eval(assignment))
}

func TestClauseUnit(t *testing.T) {
	assignment := NewAssignment(3)
	assignment.Bind(1, false)

	// Exactly one unbound literal, all others falsified.
	literal, ok := clause(1, 3).Unit(assignment)
	assert.True(t, ok)
	assert.Equal(t, LiteralFromInt(3), literal)

	literal, ok = clause(1, -3).Unit(assignment)
	assert.True(t, ok)
	assert.Equal(t, LiteralFromInt(-3), literal)

	// Two unbound literals.
	_, ok = clause(2, 3).Unit(assignment)
	assert.False(t, ok)

	// A satisfied clause forces nothing.
	_, ok = clause(-1, 3).Unit(assignment)
	assert.False(t, ok)

	// A falsified clause has no unit literal either.
	_, ok = clause(1).Unit(assignment)
	assert.False(t, ok)
}

func TestLiteralNegation(t *testing.T) {
	literal := LiteralFromInt(-7)
	assert.Equal(t, int64(7), literal.Var)
	assert.False(t, literal.Positive)
	assert.Equal(t, int64(7), literal.Neg().Int())
	assert.Equal(t, literal, literal.Neg().Neg())
}
