package main

import (
	"fmt"
	"log"

	"github.com/Florin-Ionita/satsuite/internal/cnf"
	"github.com/Florin-Ionita/satsuite/internal/solver"
)

func main() {
	formula, err := cnf.FromClauses([][]int64{
		{1, 2},
		{-1, 3},
		{2, -3},
	})
	if err != nil {
		log.Fatalf("cannot build formula: %v", err)
	}

	result, err := solver.NewDPLLSolver().Solve(formula)
	if err != nil {
		log.Fatal(err)
	} else if !result.Satisfiable() {
		fmt.Println("Not satisfiable")
		return
	}
	fmt.Printf("DPLL solution: %v (%v)\n", result.Solution, result.Duration)

	enumeration, err := solver.NewBacktrackEnumerator().Enumerate(formula)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Backtrack found %v solutions (%v):\n", len(enumeration.Solutions), enumeration.Duration)
	for _, solution := range enumeration.Solutions {
		fmt.Printf("  %v\n", solution)
	}

	reference, err := solver.NewGiniSolver().Solve(formula)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Gini agrees: %v (%v)\n", reference.Satisfiable() == result.Satisfiable(), reference.Duration)
}
