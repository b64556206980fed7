package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/samber/lo"

	"github.com/Florin-Ionita/satsuite/internal/cnf"
	"github.com/Florin-Ionita/satsuite/internal/runner"
	"github.com/Florin-Ionita/satsuite/internal/solver"
)

type EngineType int

const (
	dpll EngineType = iota
	backtrack
	gini
)

type ResultType int

const (
	satisfiable ResultType = iota
	unsatisfiable
)

var (
	engineTypes = map[EngineType]string{
		dpll:      "dpll",
		backtrack: "backtrack",
		gini:      "gini",
	}
	resultTypes = map[ResultType]string{
		satisfiable:   "satisfiable",
		unsatisfiable: "unsatisfiable",
	}
)

type BenchmarkResult struct {
	Engine    EngineType
	Test      string
	Variables int64
	Clauses   int
	Duration  int64 // microseconds
	Solutions int
	Result    ResultType
}

func main() {
	var (
		testDirectory string
		output        string
	)
	flag.StringVar(&testDirectory, "tests", "test/instances", "directory holding .cnf and .yaml instances")
	flag.StringVar(&output, "output", "benchmark.csv", "CSV file to write results to")
	flag.Parse()

	entries, err := os.ReadDir(testDirectory)
	if err != nil {
		log.Fatalf("cannot read test directory: %v", err)
	}

	results := make([]BenchmarkResult, 0, 3*len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		file := testDirectory + "/" + entry.Name()

		formula, _, err := runner.LoadFormula(file)
		if err != nil {
			log.Printf("skipping %v: %v", file, err)
			continue
		}

		for _, engine := range []EngineType{dpll, backtrack, gini} {
			fmt.Printf("Benchmarking test \"%v\" with engine \"%v\"\n", entry.Name(), engineTypes[engine])

			result, err := measure(engine, formula)
			if err != nil {
				log.Fatalf("engine %v failed on %v: %v", engineTypes[engine], file, err)
			}
			result.Test = entry.Name()
			result.Variables = formula.Variables
			result.Clauses = len(formula.Clauses)
			results = append(results, result)
		}
	}

	if err := writeCsv(output, results); err != nil {
		log.Fatalf("cannot write results: %v", err)
	}
}

func measure(engine EngineType, formula cnf.Formula) (BenchmarkResult, error) {
	switch engine {
	case backtrack:
		enumeration, err := solver.NewBacktrackEnumerator().Enumerate(formula)
		if err != nil {
			return BenchmarkResult{}, err
		}
		result := BenchmarkResult{
			Engine:    engine,
			Duration:  enumeration.Duration.Microseconds(),
			Solutions: len(enumeration.Solutions),
			Result:    unsatisfiable,
		}
		if enumeration.Satisfiable() {
			result.Result = satisfiable
		}
		return result, nil
	default:
		var backend solver.Solver = solver.NewDPLLSolver()
		if engine == gini {
			backend = solver.NewGiniSolver()
		}
		solved, err := backend.Solve(formula)
		if err != nil {
			return BenchmarkResult{}, err
		}
		result := BenchmarkResult{
			Engine:   engine,
			Duration: solved.Duration.Microseconds(),
			Result:   unsatisfiable,
		}
		if solved.Satisfiable() {
			result.Result = satisfiable
			result.Solutions = 1
		}
		return result, nil
	}
}

func writeCsv(output string, results []BenchmarkResult) error {
	file, err := os.Create(output)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write([]string{"engine", "test", "variables", "clauses", "duration_us", "solutions", "result"}); err != nil {
		return err
	}

	rows := lo.Map(results, func(result BenchmarkResult, _ int) []string {
		return []string{
			engineTypes[result.Engine],
			result.Test,
			strconv.FormatInt(result.Variables, 10),
			strconv.Itoa(result.Clauses),
			strconv.FormatInt(result.Duration, 10),
			strconv.Itoa(result.Solutions),
			resultTypes[result.Result],
		}
	})
	return writer.WriteAll(rows)
}
