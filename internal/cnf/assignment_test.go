package cnf

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBindAndUndoRestoresCheckpoint(t *testing.T) {
	assignment := NewAssignment(4)
	assignment.Bind(1, true)

	snapshot := assignment.Solution()
	mark := assignment.Mark()

	assignment.Bind(2, false)
	assignment.Bind(3, true)
	assert.True(t, assignment.Bound(2))
	assert.True(t, assignment.Bound(3))

	assignment.UndoTo(mark)
	assert.Equal(t, snapshot, assignment.Solution())
	assert.False(t, assignment.Bound(2))
	assert.False(t, assignment.Bound(3))
	assert.Equal(t, True, assignment.Value(1))
}

func TestUndoIsExactAfterRandomOperations(t *testing.T) {
	for i := 0; i < 20; i++ {
		variables := int64(rand.Intn(30) + 1)
		assignment := NewAssignment(variables)

		// Random preamble of bindings.
		for variable := int64(1); variable <= variables; variable++ {
			if rand.Float32() < 0.5 {
				assignment.Bind(variable, rand.Float32() < 0.5)
			}
		}

		snapshot := assignment.Solution()
		mark := assignment.Mark()

		for variable := int64(1); variable <= variables; variable++ {
			if !assignment.Bound(variable) {
				assignment.Bind(variable, rand.Float32() < 0.5)
			}
		}

		assignment.UndoTo(mark)
		assert.Equal(t, snapshot, assignment.Solution())
		assert.Equal(t, mark, assignment.Mark())
	}
}

func TestCompleteAndFirstUnbound(t *testing.T) {
	assignment := NewAssignment(3)
	assert.False(t, assignment.Complete())
	assert.Equal(t, int64(1), assignment.FirstUnbound())

	assignment.Bind(1, true)
	assert.Equal(t, int64(2), assignment.FirstUnbound())

	assignment.Bind(2, false)
	assignment.Bind(3, true)
	assert.True(t, assignment.Complete())
	assert.Equal(t, int64(0), assignment.FirstUnbound())
	assert.Equal(t, []int64{1, -2, 3}, assignment.Solution())
}

func TestRebindSameValueIsNoop(t *testing.T) {
	assignment := NewAssignment(2)
	assignment.Bind(1, true)
	mark := assignment.Mark()

	assignment.Bind(1, true)
	assert.Equal(t, mark, assignment.Mark())
}

func TestInvariantViolationsPanic(t *testing.T) {
	assignment := NewAssignment(2)
	assignment.Bind(1, true)

	assert.Panics(t, func() { assignment.Bind(1, false) })
	assert.Panics(t, func() { assignment.Bind(0, true) })
	assert.Panics(t, func() { assignment.Bind(3, true) })
	assert.Panics(t, func() { assignment.UndoTo(5) })
	assert.Panics(t, func() { assignment.UndoTo(-1) })
}
