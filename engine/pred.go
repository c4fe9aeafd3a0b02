package engine

// Pred is the contract every search predicate honors. The engine enters a
// predicate once through Initialize, then returns to MoreChoices for as long
// as backtracking leads back to it.
type Pred interface {
	// Initialize runs once on entry and may set up per-call state, including
	// the choice iterator.
	Initialize(m *Machine) bool

	// MoreChoices advances to the next alternative, applying it through the
	// trail.
	MoreChoices(m *Machine) bool

	// TestChoice validates the consequences of the alternative just applied,
	// e.g. by running constraint checks.
	TestChoice(m *Machine) bool

	// Continuation is the predicate to run after this one succeeds, or nil.
	Continuation() Pred

	// SetContinuation links the predicate into a call chain.
	SetContinuation(k Pred)
}

// deterministic marks predicates the engine never leaves a choice point for.
type deterministic interface {
	deterministic()
}

func isDeterministic(p Pred) bool {
	_, ok := p.(deterministic)
	return ok
}

// Base provides the continuation link and the default hooks for a general,
// possibly nondeterministic predicate. Embed it and override what you need;
// typically Initialize installs the Iterator and TestChoice checks
// constraints.
type Base struct {
	cont Pred

	// Iterator yields this predicate's alternatives.
	Iterator ChoiceIterator
}

func (p *Base) Initialize(*Machine) bool {
	return true
}

func (p *Base) TestChoice(*Machine) bool {
	return true
}

// MoreChoices pulls alternatives from the iterator until one applies.
// Mutations of a failed alternative are rewound before the next is tried, so
// a vetoed choice never starves the remaining ones.
func (p *Base) MoreChoices(m *Machine) bool {
	if p.Iterator == nil {
		return false
	}
	for {
		c, ok := p.Iterator.Next()
		if !ok {
			return false
		}
		mark := m.trail.mark()
		if c.Apply(m) {
			return true
		}
		m.trail.rewind(mark)
	}
}

func (p *Base) Continuation() Pred {
	return p.cont
}

func (p *Base) SetContinuation(k Pred) {
	p.cont = k
}

// DetPred is the base for deterministic predicates: exactly one solution and
// no choice point left behind.
type DetPred struct {
	cont Pred
}

func (p *DetPred) Initialize(*Machine) bool {
	return true
}

func (p *DetPred) TestChoice(*Machine) bool {
	return true
}

// MoreChoices reports the single solution. The engine leaves no choice point
// for a deterministic predicate, so it is never asked for another.
func (p *DetPred) MoreChoices(*Machine) bool {
	return true
}

func (p *DetPred) Continuation() Pred {
	return p.cont
}

func (p *DetPred) SetContinuation(k Pred) {
	p.cont = k
}

func (p *DetPred) deterministic() {}

// SemiDetPred is the base for semi-deterministic predicates: at most one
// solution, with an overridden Initialize expected to do the failing.
type SemiDetPred struct {
	DetPred
}

// Fail always fails. Conjoin it after a side-effecting predicate to force
// enumeration of every solution.
var Fail Pred = &failPred{}

type failPred struct {
	cont Pred
}

func (p *failPred) Initialize(*Machine) bool {
	return false
}

func (p *failPred) MoreChoices(*Machine) bool {
	return false
}

func (p *failPred) TestChoice(*Machine) bool {
	return true
}

func (p *failPred) Continuation() Pred {
	return p.cont
}

func (p *failPred) SetContinuation(k Pred) {
	p.cont = k
}

func (p *failPred) deterministic() {}
