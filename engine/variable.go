package engine

import "fmt"

// Variable is a logic variable.
type Variable struct {
	id  int64
	ref Term // nil while unbound

	// Constraint, when set, vets every binding the unifier attempts on this
	// variable. A veto fails the unification before anything is trailed.
	Constraint func(t Term) bool

	// Choices, when set, enumerates the candidate bindings labeling code may
	// try for this variable. See VarChoicesOf.
	Choices func() []Term
}

// NewVariable creates a fresh unbound variable.
func (m *Machine) NewVariable() *Variable {
	m.varCounter++
	return &Variable{id: m.varCounter}
}

func (v *Variable) String() string {
	return fmt.Sprintf("X%02d", v.id)
}

// Updatable is a cell whose value may be reassigned many times, each
// assignment trailed so that backtracking restores the previous one.
// Unlike a bound Variable, an Updatable never counts as a variable and
// Deref does not look through it.
type Updatable struct {
	value Term
}

// NewUpdatable creates a cell holding value.
func NewUpdatable(value Term) *Updatable {
	return &Updatable{value: value}
}

// Value returns the cell's current value.
func (u *Updatable) Value() Term {
	return u.value
}

func (u *Updatable) String() string {
	return fmt.Sprintf("<%v>", u.value)
}
