package cnf

import "log"

// Assignment is a mutable partial mapping from variables to truth values. A
// trail records the order in which bindings were added so backtracking can
// undo them in strict LIFO order via checkpoints instead of copying the whole
// mapping. Each Assignment is owned by a single search invocation.
type Assignment struct {
	values []Value // dense array indexed by variable id, slot 0 unused
	trail  []int64
}

func NewAssignment(variables int64) *Assignment {
	return &Assignment{
		values: make([]Value, variables+1),
		trail:  make([]int64, 0, variables),
	}
}

// Value returns the truth value currently bound to a variable.
func (a *Assignment) Value(variable int64) Value {
	return a.values[variable]
}

// Literal returns the truth value of a literal: True when its variable is
// bound consistently with its polarity, False when bound against it.
func (a *Assignment) Literal(literal Literal) Value {
	value := a.values[literal.Var]
	if value == Unresolved {
		return Unresolved
	}
	if (value == True) == literal.Positive {
		return True
	}
	return False
}

// Bind records a binding and appends it to the trail. Binding a variable that
// already holds the same value is a no-op. Rebinding to a conflicting value
// means the search discipline was violated and is fatal.
func (a *Assignment) Bind(variable int64, value bool) {
	if variable <= 0 || variable >= int64(len(a.values)) {
		log.Panicf("cannot bind variable %d: outside the range 1..%d", variable, len(a.values)-1)
	}

	truth := False
	if value {
		truth = True
	}

	if current := a.values[variable]; current != Unresolved {
		if current != truth {
			log.Panicf("cannot rebind variable %d from %v to %v", variable, current, truth)
		}
		return
	}

	a.values[variable] = truth
	a.trail = append(a.trail, variable)
}

// Mark captures the current trail length as a checkpoint for UndoTo.
func (a *Assignment) Mark() int {
	return len(a.trail)
}

// UndoTo removes bindings in reverse order until the trail shrinks back to
// the given checkpoint, restoring the mapping to exactly its state when the
// checkpoint was taken.
func (a *Assignment) UndoTo(mark int) {
	if mark < 0 || mark > len(a.trail) {
		log.Panicf("cannot undo to checkpoint %d with a trail of length %d", mark, len(a.trail))
	}
	for len(a.trail) > mark {
		variable := a.trail[len(a.trail)-1]
		a.trail = a.trail[:len(a.trail)-1]
		a.values[variable] = Unresolved
	}
}

// Bound reports whether the variable currently holds a value.
func (a *Assignment) Bound(variable int64) bool {
	return a.values[variable] != Unresolved
}

// Complete reports whether every variable is bound.
func (a *Assignment) Complete() bool {
	for _, value := range a.values[1:] {
		if value == Unresolved {
			return false
		}
	}
	return true
}

// FirstUnbound returns the smallest unbound variable id, or 0 when the
// assignment is complete. Branching on the first unbound variable keeps the
// search order fixed and reproducible.
func (a *Assignment) FirstUnbound() int64 {
	for variable := int64(1); variable < int64(len(a.values)); variable++ {
		if a.values[variable] == Unresolved {
			return variable
		}
	}
	return 0
}

// Solution copies the bound variables out as signed literals in ascending
// variable order. The copy is detached from the trail, so it survives
// backtracking.
func (a *Assignment) Solution() []int64 {
	solution := make([]int64, 0, len(a.values)-1)
	for variable := int64(1); variable < int64(len(a.values)); variable++ {
		switch a.values[variable] {
		case True:
			solution = append(solution, variable)
		case False:
			solution = append(solution, -variable)
		}
	}
	return solution
}
