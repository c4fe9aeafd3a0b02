package engine

import (
	"fmt"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// VarNames associates display names with terms, in insertion order. It is
// the bridge between a model's variables and human-readable solutions.
type VarNames struct {
	om *orderedmap.OrderedMap[string, Term]
}

// NewVarNames creates an empty registry.
func NewVarNames() *VarNames {
	return &VarNames{om: orderedmap.New[string, Term]()}
}

// Add registers t under name. Registering a name twice keeps the later term
// in the original position.
func (n *VarNames) Add(name string, t Term) {
	n.om.Set(name, t)
}

// Snapshot resolves every registered term now, before backtracking can undo
// the bindings, and returns the values keyed by name in insertion order.
func (n *VarNames) Snapshot() *Bindings {
	b := &Bindings{om: orderedmap.New[string, Term]()}
	for pair := n.om.Oldest(); pair != nil; pair = pair.Next() {
		b.om.Set(pair.Key, resolve(pair.Value))
	}
	return b
}

// resolve reads through variable chains and updatable cells to the value a
// snapshot should record.
func resolve(t Term) Term {
	t = Deref(t)
	if u, ok := t.(*Updatable); ok {
		return Deref(u.value)
	}
	return t
}

// Bindings is one recorded solution: name to value in registration order.
type Bindings struct {
	om *orderedmap.OrderedMap[string, Term]
}

// Value returns the recorded value for name.
func (b *Bindings) Value(name string) (Term, bool) {
	return b.om.Get(name)
}

// Len returns the number of recorded names.
func (b *Bindings) Len() int {
	return b.om.Len()
}

func (b *Bindings) String() string {
	var sb strings.Builder
	for pair := b.om.Oldest(); pair != nil; pair = pair.Next() {
		if sb.Len() > 0 {
			sb.WriteString(", ")
		}
		_, _ = fmt.Fprintf(&sb, "%s = %v", pair.Key, pair.Value)
	}
	return sb.String()
}

// Collect returns a deterministic predicate that snapshots names into out
// every time it is reached. Conjoin it with Fail to record every solution of
// the predicates before it.
func Collect(names *VarNames, out *[]*Bindings) Pred {
	return &collectPred{names: names, out: out}
}

type collectPred struct {
	DetPred
	names *VarNames
	out   *[]*Bindings
}

func (p *collectPred) Initialize(*Machine) bool {
	*p.out = append(*p.out, p.names.Snapshot())
	return true
}
