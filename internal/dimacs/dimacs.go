// Package dimacs reads and writes formulas in the DIMACS CNF interchange
// format: optional "c" comment lines, a "p cnf <variables> <clauses>" header,
// then clauses as whitespace-separated signed integers terminated by 0.
package dimacs

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/Florin-Ionita/satsuite/internal/cnf"
)

// Parse reads a DIMACS CNF problem and validates it into a Formula.
func Parse(r io.Reader) (cnf.Formula, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var (
		seenHeader bool
		variables  int64
		declared   int
		clauses    [][]int64
		current    []int64
		lineNumber int
	)

	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())

		// Empty lines, "c" comments, and "%" trailer lines found in some
		// benchmark suites.
		if line == "" || strings.HasPrefix(line, "c") || strings.HasPrefix(line, "%") {
			continue
		}

		if !seenHeader {
			fields := strings.Fields(line)
			if len(fields) != 4 || fields[0] != "p" || fields[1] != "cnf" {
				return cnf.Formula{}, fmt.Errorf("line %d: expected \"p cnf <variables> <clauses>\", got %q", lineNumber, line)
			}
			parsedVariables, err := strconv.ParseInt(fields[2], 10, 64)
			if err != nil || parsedVariables < 0 {
				return cnf.Formula{}, fmt.Errorf("line %d: invalid variable count %q", lineNumber, fields[2])
			}
			parsedClauses, err := strconv.Atoi(fields[3])
			if err != nil || parsedClauses < 0 {
				return cnf.Formula{}, fmt.Errorf("line %d: invalid clause count %q", lineNumber, fields[3])
			}
			variables, declared = parsedVariables, parsedClauses
			seenHeader = true
			continue
		}

		for _, token := range strings.Fields(line) {
			literal, err := strconv.ParseInt(token, 10, 64)
			if err != nil {
				return cnf.Formula{}, fmt.Errorf("line %d: non-integer token %q", lineNumber, token)
			}
			if literal == 0 {
				clauses = append(clauses, current)
				current = nil
				continue
			}
			current = append(current, literal)
		}
	}
	if err := scanner.Err(); err != nil {
		return cnf.Formula{}, err
	}

	if !seenHeader {
		return cnf.Formula{}, fmt.Errorf("missing \"p cnf\" header")
	}
	if len(current) > 0 {
		return cnf.Formula{}, fmt.Errorf("last clause is not terminated by 0")
	}
	// Some benchmarks carry a lone trailing "0"; ignore anything beyond the
	// declared clause count.
	if len(clauses) > declared {
		clauses = clauses[:declared]
	}
	if len(clauses) != declared {
		return cnf.Formula{}, fmt.Errorf("header declares %d clauses, found %d", declared, len(clauses))
	}

	return cnf.New(variables, clauses)
}

// ParseFile reads a DIMACS CNF file from disk.
func ParseFile(path string) (cnf.Formula, error) {
	file, err := os.Open(path)
	if err != nil {
		return cnf.Formula{}, fmt.Errorf("open file: %w", err)
	}
	defer file.Close()

	formula, err := Parse(file)
	if err != nil {
		return cnf.Formula{}, fmt.Errorf("%v: %w", path, err)
	}
	return formula, nil
}

// Write renders a formula in DIMACS CNF format.
func Write(formula cnf.Formula) string {
	var builder strings.Builder
	fmt.Fprintf(&builder, "p cnf %d %d\n", formula.Variables, len(formula.Clauses))
	for _, clause := range formula.Clauses {
		for _, literal := range clause {
			fmt.Fprintf(&builder, "%d ", literal.Int())
		}
		builder.WriteString("0\n")
	}
	return builder.String()
}
