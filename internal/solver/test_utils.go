package solver

import (
	"log"
	"math/rand"

	"github.com/Florin-Ionita/satsuite/internal/cnf"
)

// GenerateFormula builds a random CNF instance over the given number of
// variables. Every clause is guaranteed to hold at least one literal.
func GenerateFormula(variables int64, clauses int) cnf.Formula {
	raw := make([][]int64, clauses)

	for i := 0; i < clauses; i++ {
		raw[i] = make([]int64, 0, variables)
		for j := int64(0); j < variables; j++ {
			if rand.Float32() < 0.5 {
				var sign int64 = 1
				if rand.Float32() < 0.5 {
					sign = -1
				}
				raw[i] = append(raw[i], sign*(1+j))
			}
		}

		if len(raw[i]) == 0 {
			var sign int64 = 1
			if rand.Float32() < 0.5 {
				sign = -1
			}
			raw[i] = append(raw[i], sign*(1+rand.Int63n(variables)))
		}
	}

	formula, err := cnf.New(variables, raw)
	if err != nil {
		log.Panicf("generated an invalid instance: %v", err)
	}
	return formula
}

// AssertSolution reports whether a solution is well-formed (no duplicate nor
// contradictory literals) and satisfies every clause of the instance.
func AssertSolution(formula cnf.Formula, solution Solution) bool {
	literals := make(map[int64]bool)
	for _, literal := range solution {
		if literals[literal] || literals[-literal] {
			return false
		}
		literals[literal] = true
	}

	for _, clause := range formula.Clauses {
		satisfied := false
		for _, literal := range clause {
			if literals[literal.Int()] {
				satisfied = true
				break
			}
		}
		if !satisfied {
			return false
		}
	}

	return true
}
