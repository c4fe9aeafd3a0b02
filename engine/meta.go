package engine

// Conjunct builds the sequence p1, p2, ..., pn: each predicate's continuation
// is the next one, and a continuation handed to the conjunct afterwards goes
// to the last element. An empty conjunct succeeds trivially.
func Conjunct(preds ...Pred) Pred {
	for i := 0; i+1 < len(preds); i++ {
		preds[i].SetContinuation(preds[i+1])
	}
	return &conjunction{preds: preds}
}

type conjunction struct {
	preds []Pred
	cont  Pred
}

func (c *conjunction) Initialize(*Machine) bool {
	return true
}

func (c *conjunction) MoreChoices(*Machine) bool {
	return true
}

func (c *conjunction) TestChoice(*Machine) bool {
	return true
}

func (c *conjunction) Continuation() Pred {
	if len(c.preds) == 0 {
		return c.cont
	}
	return c.preds[0]
}

func (c *conjunction) SetContinuation(k Pred) {
	c.cont = k
	if n := len(c.preds); n > 0 {
		c.preds[n-1].SetContinuation(k)
	}
}

func (c *conjunction) deterministic() {}

// Disjunction succeeds on the first branch that succeeds and offers the
// remaining branches, in order, to backtracking. Each branch runs with the
// disjunction's own continuation.
type Disjunction struct {
	Base
	preds []Pred
	cur   Pred
	cont  Pred
}

// NewDisjunction builds a disjunction over the given branches.
func NewDisjunction(preds ...Pred) *Disjunction {
	return &Disjunction{preds: preds}
}

// Initialize installs the iterator over the branches.
func (d *Disjunction) Initialize(*Machine) bool {
	d.Iterator = &branchIterator{d: d, branches: d.preds}
	return true
}

func (d *Disjunction) Continuation() Pred {
	return d.cur
}

func (d *Disjunction) SetContinuation(k Pred) {
	d.cont = k
}

type branchIterator struct {
	d        *Disjunction
	branches []Pred
}

func (it *branchIterator) Next() (Choice, bool) {
	if len(it.branches) == 0 {
		return nil, false
	}
	p := it.branches[0]
	it.branches = it.branches[1:]
	return branchChoice{d: it.d, pred: p}, true
}

// branchChoice routes the engine into one branch of a disjunction.
type branchChoice struct {
	d    *Disjunction
	pred Pred
}

func (c branchChoice) Apply(*Machine) bool {
	c.pred.SetContinuation(c.d.cont)
	c.d.cur = c.pred
	return true
}

// LoopFactory drives Loop: Continues is consulted before each iteration and
// Body supplies the predicate for the next one.
type LoopFactory interface {
	Continues(m *Machine) bool
	Body() Pred
}

// Loop behaves as the conjunction of factory bodies, unfolded one step at a
// time for as long as Continues holds. No chain is materialized up front.
func Loop(f LoopFactory) Pred {
	return &loopPred{factory: f}
}

type loopPred struct {
	factory LoopFactory
	cont    Pred
	next    Pred
}

// Initialize unfolds one step: either the next body chained into a fresh loop
// step, or, once Continues fails, the loop's own continuation.
func (l *loopPred) Initialize(m *Machine) bool {
	if !l.factory.Continues(m) {
		l.next = l.cont
		return true
	}
	body := l.factory.Body()
	step := &loopPred{factory: l.factory, cont: l.cont}
	body.SetContinuation(step)
	l.next = body
	return true
}

func (l *loopPred) MoreChoices(*Machine) bool {
	return true
}

func (l *loopPred) TestChoice(*Machine) bool {
	return true
}

func (l *loopPred) Continuation() Pred {
	return l.next
}

func (l *loopPred) SetContinuation(k Pred) {
	l.cont = k
}

func (l *loopPred) deterministic() {}

// Once runs p and commits to its first solution: every choice point created
// while proving p is cut as soon as it succeeds, so backtracking never
// re-enters p.
func Once(p Pred) Pred {
	return &oncePred{pred: p}
}

type oncePred struct {
	pred  Pred
	cont  Pred
	depth int
}

func (o *oncePred) Initialize(m *Machine) bool {
	o.depth = len(m.cps)
	o.pred.SetContinuation(&onceExit{once: o})
	return true
}

func (o *oncePred) MoreChoices(*Machine) bool {
	return true
}

func (o *oncePred) TestChoice(*Machine) bool {
	return true
}

func (o *oncePred) Continuation() Pred {
	return o.pred
}

func (o *oncePred) SetContinuation(k Pred) {
	o.cont = k
}

func (o *oncePred) deterministic() {}

// onceExit cuts the choice points accumulated while proving the guarded
// goal, then proceeds to the Once continuation.
type onceExit struct {
	once *oncePred
}

func (e *onceExit) Initialize(m *Machine) bool {
	m.cut(e.once.depth)
	return true
}

func (e *onceExit) MoreChoices(*Machine) bool {
	return true
}

func (e *onceExit) TestChoice(*Machine) bool {
	return true
}

func (e *onceExit) Continuation() Pred {
	return e.once.cont
}

func (e *onceExit) SetContinuation(Pred) {}

func (e *onceExit) deterministic() {}
