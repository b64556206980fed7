package runner

import (
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/Florin-Ionita/satsuite/internal/cnf"
)

// Expected outcomes a test case can declare.
const (
	ExpectedSat     = "SAT"
	ExpectedUnsat   = "UNSAT"
	ExpectedUnknown = "UNKNOWN"
)

// TestCase is a YAML-described SAT instance with an optional expected
// outcome. Clauses are lists of signed integers; the variable count is
// optional and derived from the clauses when absent.
type TestCase struct {
	Description string
	Expected    string
	Variables   int64
	Clauses     [][]int64
}

// TestCaseFromYaml loads a test case file.
func TestCaseFromYaml(file string) (TestCase, error) {
	bytes, err := os.ReadFile(file)
	if err != nil {
		return TestCase{}, err
	}

	var raw map[string]any
	if err := yaml.Unmarshal(bytes, &raw); err != nil {
		return TestCase{}, fmt.Errorf("cannot parse test case %v: %w", file, err)
	}

	var testCase TestCase
	if err := mapstructure.Decode(raw, &testCase); err != nil {
		return TestCase{}, fmt.Errorf("cannot decode test case %v: %w", file, err)
	}
	if testCase.Expected == "" {
		testCase.Expected = ExpectedUnknown
	}
	return testCase, nil
}

// Formula builds the CNF formula described by the test case.
func (testCase TestCase) Formula() (cnf.Formula, error) {
	if testCase.Variables > 0 {
		return cnf.New(testCase.Variables, testCase.Clauses)
	}
	return cnf.FromClauses(testCase.Clauses)
}
