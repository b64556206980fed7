package cnf

import "fmt"

// Literal is a variable paired with a polarity. Variables are identified by
// positive integers counted from 1, following the DIMACS convention.
type Literal struct {
	Var      int64
	Positive bool
}

// LiteralFromInt builds a literal from its signed DIMACS form. The caller
// must not pass 0.
func LiteralFromInt(literal int64) Literal {
	if literal < 0 {
		return Literal{Var: -literal, Positive: false}
	}
	return Literal{Var: literal, Positive: true}
}

// Neg returns the complementary literal.
func (l Literal) Neg() Literal {
	return Literal{Var: l.Var, Positive: !l.Positive}
}

// Int returns the literal in its signed DIMACS form.
func (l Literal) Int() int64 {
	if !l.Positive {
		return -l.Var
	}
	return l.Var
}

func (l Literal) String() string {
	return fmt.Sprintf("%d", l.Int())
}
