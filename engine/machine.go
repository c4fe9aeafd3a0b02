package engine

import (
	"fmt"

	"github.com/hashicorp/go-hclog"
)

// mode is the engine's execution state.
type mode uint8

const (
	enter mode = iota
	retry
	succeed
	fail
)

func (s mode) String() string {
	return [...]string{
		enter:   "enter",
		retry:   "retry",
		succeed: "succeed",
		fail:    "fail",
	}[s]
}

// choicePoint pairs a predicate that may still produce alternatives with the
// trail mark taken just before its last alternative was applied.
type choicePoint struct {
	pred Pred
	mark int
}

// Machine drives predicates over logic variables: it unifies through the
// trail, schedules alternatives on failure and rewinds bindings in strictly
// last-in-first-out order. A Machine is strictly single-threaded; a single
// call to Execute runs to completion on the calling goroutine.
type Machine struct {
	trail      trail
	cps        []choicePoint
	varCounter int64
	running    bool
	logger     hclog.Logger
}

// NewMachine creates a machine with no bindings and no pending alternatives.
func NewMachine() *Machine {
	return &Machine{logger: hclog.NewNullLogger()}
}

// SetLogger installs a logger for execution tracing. Passing nil restores
// the default discard logger.
func (m *Machine) SetLogger(l hclog.Logger) {
	if l == nil {
		l = hclog.NewNullLogger()
	}
	m.logger = l
}

// Execute runs p to completion and reports whether it succeeded. Whatever the
// outcome, every binding made during the call is undone before Execute
// returns; a predicate that needs to observe bindings must do so before its
// success propagates past the root (see Collect). A panic out of a user hook
// propagates after the same reset.
//
// Execute is not re-entrant: a predicate hook must not call Execute on the
// machine that invoked it.
func (m *Machine) Execute(p Pred) bool {
	if m.running {
		panic("pl: Execute is not re-entrant")
	}
	m.running = true
	m0 := m.trail.mark()
	defer func() {
		m.trail.rewind(m0)
		m.cps = m.cps[:0]
		m.running = false
	}()

	cur, state := p, enter
	for {
		if m.logger.IsTrace() {
			m.logger.Trace("step", "mode", state.String(), "pred", fmt.Sprintf("%T", cur), "trail", len(m.trail), "choice_points", len(m.cps))
		}
		switch state {
		case enter:
			if cur.Initialize(m) {
				state = retry
			} else {
				state = fail
			}
		case retry:
			mark := m.trail.mark()
			if !cur.MoreChoices(m) {
				state = fail
				break
			}
			if !isDeterministic(cur) {
				m.cps = append(m.cps, choicePoint{pred: cur, mark: mark})
			}
			if cur.TestChoice(m) {
				state = succeed
			} else {
				state = fail
			}
		case succeed:
			k := cur.Continuation()
			if k == nil {
				return true
			}
			cur, state = k, enter
		case fail:
			if len(m.cps) == 0 {
				return false
			}
			cp := m.cps[len(m.cps)-1]
			m.cps = m.cps[:len(m.cps)-1]
			m.trail.rewind(cp.mark)
			cur, state = cp.pred, retry
		}
	}
}

// Unify makes a and b equal. Variables bind through the trail so that
// backtracking undoes them; an Updatable on the left takes b as its new
// value; anything else is compared for equality. A failed unification leaves
// the trail exactly as it found it.
//
// Unify does not recurse over compound user values and performs no occurs
// check. Structural unification, where needed, is built on top of it in user
// predicates.
func (m *Machine) Unify(a, b Term) bool {
	a, b = Deref(a), Deref(b)
	if va, ok := a.(*Variable); ok {
		if vb, ok := b.(*Variable); ok && va == vb {
			return true
		}
		return m.bind(va, b)
	}
	if vb, ok := b.(*Variable); ok {
		return m.bind(vb, a)
	}
	if u, ok := a.(*Updatable); ok {
		if u == b {
			return true
		}
		m.Assign(u, b)
		return true
	}
	return eq(a, b)
}

// bind points v at t, honoring the variable's Constraint. Nothing is trailed
// on a veto.
func (m *Machine) bind(v *Variable, t Term) bool {
	if v.Constraint != nil && !v.Constraint(t) {
		return false
	}
	m.trail.push(trailEntry{v: v, prev: v.ref})
	v.ref = t
	return true
}

// Assign reassigns the cell's value through the trail.
func (m *Machine) Assign(u *Updatable, value Term) {
	m.trail.push(trailEntry{u: u, prev: u.value})
	u.value = value
}

// cut drops every choice point at or above depth, sealing the alternatives
// behind a committed goal. Bindings are untouched.
func (m *Machine) cut(depth int) {
	if depth < len(m.cps) {
		m.cps = m.cps[:depth]
	}
}
