package engine

// Choice is a single alternative produced by a ChoiceIterator. Apply commits
// it, mutating only through the trail so that backtracking can undo it.
type Choice interface {
	Apply(m *Machine) bool
}

// ChoiceIterator lazily produces the alternatives of a predicate, one per
// backtrack into it.
type ChoiceIterator interface {
	// Next returns the next choice, or false when exhausted.
	Next() (Choice, bool)
}

// VarChoice unifies Var with Value when applied.
type VarChoice struct {
	Var   Term
	Value Term
}

func (c VarChoice) Apply(m *Machine) bool {
	return m.Unify(c.Var, c.Value)
}

// VarChoiceIterator yields one VarChoice per candidate value, in order.
type VarChoiceIterator struct {
	v      Term
	values []Term
}

// NewVarChoiceIterator creates an iterator binding v to each of values in
// turn.
func NewVarChoiceIterator(v Term, values ...Term) *VarChoiceIterator {
	return &VarChoiceIterator{v: v, values: values}
}

func (it *VarChoiceIterator) Next() (Choice, bool) {
	if len(it.values) == 0 {
		return nil, false
	}
	c := VarChoice{Var: it.v, Value: it.values[0]}
	it.values = it.values[1:]
	return c, true
}

// VarChoicesOf builds an iterator over the candidates the variable itself
// declares through its Choices hook, or nil when it declares none.
func VarChoicesOf(v *Variable) ChoiceIterator {
	if v.Choices == nil {
		return nil
	}
	return NewVarChoiceIterator(v, v.Choices()...)
}
