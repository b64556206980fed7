package solver

import (
	"log"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Florin-Ionita/satsuite/internal/cnf"
)

func mustFormula(t *testing.T, variables int64, clauses [][]int64) cnf.Formula {
	t.Helper()
	formula, err := cnf.New(variables, clauses)
	assert.Nil(t, err)
	return formula
}

func TestDPLLFindsSatisfyingAssignment(t *testing.T) {
	formula := mustFormula(t, 3, [][]int64{{1, 2}, {-1, 3}, {2, -3}})

	result, err := NewDPLLSolver().Solve(formula)
	assert.Nil(t, err)
	assert.True(t, result.Satisfiable())
	assert.Len(t, result.Solution, 3)
	assert.True(t, AssertSolution(formula, result.Solution))
}

func TestDPLLReportsUnsatisfiable(t *testing.T) {
	formula := mustFormula(t, 1, [][]int64{{1}, {-1}})

	result, err := NewDPLLSolver().Solve(formula)
	assert.Nil(t, err)
	assert.False(t, result.Satisfiable())
	assert.Nil(t, result.Solution)
}

func TestDPLLTautologicalClause(t *testing.T) {
	formula := mustFormula(t, 1, [][]int64{{1, -1}})

	result, err := NewDPLLSolver().Solve(formula)
	assert.Nil(t, err)
	assert.True(t, result.Satisfiable())
	assert.Len(t, result.Solution, 1)
	assert.True(t, AssertSolution(formula, result.Solution))
}

func TestDPLLEmptyFormula(t *testing.T) {
	formula := mustFormula(t, 0, nil)

	result, err := NewDPLLSolver().Solve(formula)
	assert.Nil(t, err)
	assert.True(t, result.Satisfiable())
	assert.Empty(t, result.Solution)
}

func TestDPLLEmptyClauseShortCircuit(t *testing.T) {
	// An empty clause cannot come out of parsing, but a directly built
	// formula holding one is unsatisfiable without any search.
	formula := cnf.Formula{
		Variables: 2,
		Clauses:   []cnf.Clause{{cnf.LiteralFromInt(1)}, {}},
	}

	result, err := NewDPLLSolver().Solve(formula)
	assert.Nil(t, err)
	assert.False(t, result.Satisfiable())
}

func TestDPLLCompletesPartialAssignments(t *testing.T) {
	// Variable 3 is mentioned nowhere; the solution must still bind it.
	formula := mustFormula(t, 3, [][]int64{{1}, {-2}})

	result, err := NewDPLLSolver().Solve(formula)
	assert.Nil(t, err)
	assert.Equal(t, Solution{1, -2, 3}, result.Solution)
}

func TestDPLLIsDeterministic(t *testing.T) {
	formula := GenerateFormula(8, 20)

	first, err := NewDPLLSolver().Solve(formula)
	assert.Nil(t, err)
	for i := 0; i < 5; i++ {
		next, err := NewDPLLSolver().Solve(formula)
		assert.Nil(t, err)
		assert.Equal(t, first.Solution, next.Solution)
	}
}

func TestDPLLMatchesGini(t *testing.T) {
	dpllSolver := NewDPLLSolver()
	giniSolver := NewGiniSolver()
	unsatisfiableCount := 0

	for i := 0; i < 25; i++ {
		variables := int64(rand.Intn(12) + 1)
		clauses := rand.Intn(40) + 1
		formula := GenerateFormula(variables, clauses)

		result, err := dpllSolver.Solve(formula)
		assert.Nil(t, err)
		reference, err := giniSolver.Solve(formula)
		assert.Nil(t, err)

		assert.Equal(t, reference.Satisfiable(), result.Satisfiable(), "formula: %v", formula.Clauses)

		if !result.Satisfiable() {
			unsatisfiableCount++
			continue
		}
		assert.True(t, AssertSolution(formula, result.Solution))
		assert.True(t, AssertSolution(formula, reference.Solution))
	}

	log.Printf("Unsatisfiable instances: %v", unsatisfiableCount)
}
