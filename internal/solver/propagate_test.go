package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Florin-Ionita/satsuite/internal/cnf"
)

func TestPropagateChainsUnits(t *testing.T) {
	// {1} forces 1, which makes {-1, 2} unit, which makes {-2, 3} unit.
	formula := mustFormula(t, 3, [][]int64{{1}, {-1, 2}, {-2, 3}})
	assignment := cnf.NewAssignment(3)

	assert.True(t, propagate(formula, assignment))
	assert.Equal(t, cnf.True, assignment.Value(1))
	assert.Equal(t, cnf.True, assignment.Value(2))
	assert.Equal(t, cnf.True, assignment.Value(3))
	assert.Equal(t, cnf.True, formula.Eval(assignment))
}

func TestPropagateDetectsConflict(t *testing.T) {
	formula := mustFormula(t, 2, [][]int64{{1}, {-1, 2}, {-2}})
	assignment := cnf.NewAssignment(2)

	assert.False(t, propagate(formula, assignment))
}

func TestPropagateSaturatesWithoutUnits(t *testing.T) {
	formula := mustFormula(t, 2, [][]int64{{1, 2}, {-1, -2}})
	assignment := cnf.NewAssignment(2)

	assert.True(t, propagate(formula, assignment))
	assert.False(t, assignment.Bound(1))
	assert.False(t, assignment.Bound(2))
}

func TestEliminatePureBindsSinglePolarityVariables(t *testing.T) {
	// 1 occurs only positively, 2 only negatively, 3 with both polarities.
	formula := mustFormula(t, 3, [][]int64{{1, 3}, {1, -2}, {-2, -3}})
	assignment := cnf.NewAssignment(3)

	eliminatePure(formula, assignment)
	assert.Equal(t, cnf.True, assignment.Value(1))
	assert.Equal(t, cnf.False, assignment.Value(2))
	assert.False(t, assignment.Bound(3))
	assert.Equal(t, cnf.True, formula.Eval(assignment))
}

func TestEliminatePureSkipsSatisfiedClauses(t *testing.T) {
	// Once 1 is bound true, the first clause is satisfied and no longer
	// counts 3's negative occurrence, so 3 becomes pure positive.
	formula := mustFormula(t, 3, [][]int64{{1, -3}, {3, 2}})
	assignment := cnf.NewAssignment(3)
	assignment.Bind(1, true)

	eliminatePure(formula, assignment)
	assert.Equal(t, cnf.True, assignment.Value(3))
}

func TestEliminatePureNeverFalsifies(t *testing.T) {
	for i := 0; i < 25; i++ {
		formula := GenerateFormula(8, 15)
		assignment := cnf.NewAssignment(8)
		if !propagate(formula, assignment) {
			continue
		}
		eliminatePure(formula, assignment)
		assert.NotEqual(t, cnf.False, formula.Eval(assignment), "formula: %v", formula.Clauses)
	}
}
