// Package runner drives the solving engines against DIMACS and YAML test
// instances: one file, a whole directory, or a side-by-side engine
// comparison.
package runner

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/samber/lo"
	"github.com/sirupsen/logrus"

	"github.com/Florin-Ionita/satsuite/internal/cnf"
	"github.com/Florin-Ionita/satsuite/internal/dimacs"
	"github.com/Florin-Ionita/satsuite/internal/solver"
)

// Report is the outcome of running both classical engines against one
// instance.
type Report struct {
	Name                string
	Satisfiable         bool
	Solutions           int
	SolveDuration       time.Duration
	EnumerationDuration time.Duration
	Expected            string
	Passed              bool
}

type Runner struct {
	logger     *logrus.Logger
	solver     solver.Solver
	enumerator solver.Enumerator
}

func New(logger *logrus.Logger) *Runner {
	return &Runner{
		logger:     logger,
		solver:     solver.NewDPLLSolver(),
		enumerator: solver.NewBacktrackEnumerator(),
	}
}

// LoadFormula reads an instance file, dispatching on the extension: DIMACS
// for .cnf/.dimacs, YAML test cases for .yaml/.yml. It also returns the
// expected outcome declared by the file, ExpectedUnknown when it declares
// none.
func LoadFormula(file string) (cnf.Formula, string, error) {
	switch strings.ToLower(filepath.Ext(file)) {
	case ".cnf", ".dimacs":
		formula, err := dimacs.ParseFile(file)
		return formula, ExpectedUnknown, err
	case ".yaml", ".yml":
		testCase, err := TestCaseFromYaml(file)
		if err != nil {
			return cnf.Formula{}, "", err
		}
		formula, err := testCase.Formula()
		return formula, testCase.Expected, err
	default:
		return cnf.Formula{}, "", fmt.Errorf("unsupported instance file extension %q", filepath.Ext(file))
	}
}

// RunFile runs the single-solution solver and the enumerator against one
// instance file and checks the two agree with each other and with the file's
// expected outcome.
func (runner *Runner) RunFile(file string) (Report, error) {
	formula, expected, err := LoadFormula(file)
	if err != nil {
		return Report{}, err
	}

	runner.logger.WithFields(logrus.Fields{
		"file":      filepath.Base(file),
		"variables": formula.Variables,
		"clauses":   len(formula.Clauses),
	}).Info("running instance")

	result, err := runner.solver.Solve(formula)
	if err != nil {
		return Report{}, err
	}
	enumeration, err := runner.enumerator.Enumerate(formula)
	if err != nil {
		return Report{}, err
	}

	report := Report{
		Name:                file,
		Satisfiable:         result.Satisfiable(),
		Solutions:           len(enumeration.Solutions),
		SolveDuration:       result.Duration,
		EnumerationDuration: enumeration.Duration,
		Expected:            expected,
	}
	report.Passed = report.matchesExpected() && result.Satisfiable() == enumeration.Satisfiable()

	runner.logger.WithFields(logrus.Fields{
		"file":        filepath.Base(file),
		"satisfiable": report.Satisfiable,
		"solutions":   report.Solutions,
		"solve":       report.SolveDuration,
		"enumerate":   report.EnumerationDuration,
		"passed":      report.Passed,
	}).Info("instance finished")

	return report, nil
}

// RunDir runs every recognized instance file in a directory, in name order.
// Files that fail to run are logged and skipped.
func (runner *Runner) RunDir(dir string) ([]Report, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read directory: %w", err)
	}

	files := lo.FilterMap(entries, func(entry os.DirEntry, _ int) (string, bool) {
		if entry.IsDir() || !recognized(entry.Name()) {
			return "", false
		}
		return filepath.Join(dir, entry.Name()), true
	})
	if len(files) == 0 {
		return nil, fmt.Errorf("no instance files in %v", dir)
	}

	reports := make([]Report, 0, len(files))
	for _, file := range files {
		report, err := runner.RunFile(file)
		if err != nil {
			runner.logger.WithError(err).Errorf("cannot run %v", file)
			continue
		}
		reports = append(reports, report)
	}
	return reports, nil
}

func (report Report) matchesExpected() bool {
	switch report.Expected {
	case ExpectedSat:
		return report.Satisfiable
	case ExpectedUnsat:
		return !report.Satisfiable
	default:
		return true
	}
}

func recognized(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".cnf", ".dimacs", ".yaml", ".yml":
		return true
	}
	return false
}
