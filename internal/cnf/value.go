package cnf

// Value is the truth value of a literal, clause or formula under a partial
// assignment.
type Value uint8

const (
	Unresolved Value = iota
	True
	False
)

func (v Value) String() string {
	return [...]string{"unresolved", "true", "false"}[v]
}
