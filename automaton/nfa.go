// Package automaton implements the NFA/LVLFA value type of spec.md
// §4.6: delta plus initial/final sparse sets plus, for LVLFA, a
// per-state level assignment. It hosts the structural operations
// (trim, unify, make-complete, defragment) and query operations
// (membership, shortest word, reachability, SCC-based emptiness) that
// the algorithm suite builds on.
package automaton

import (
	"github.com/VeriFIT/mata-sub001/alphabet"
	"github.com/VeriFIT/mata-sub001/delta"
	"github.com/VeriFIT/mata-sub001/materr"
	"github.com/VeriFIT/mata-sub001/sparseset"
)

// State identifies an automaton state.
type State = delta.State

// Symbol identifies a transition label.
type Symbol = delta.Symbol

// Nfa is a nondeterministic finite automaton on finite words.
type Nfa struct {
	Delta    *delta.Delta
	Initial  *sparseset.SparseSet
	Final    *sparseset.SparseSet
	Alphabet alphabet.Alphabet
}

// New returns an empty NFA.
func New() *Nfa {
	return &Nfa{
		Delta:   delta.New(),
		Initial: sparseset.New(),
		Final:   sparseset.New(),
	}
}

// NewSized preallocates n states and sets the initial/final sets and
// alphabet pointer. initial/final may be nil for "none".
func NewSized(n int, initial, final []State, alph alphabet.Alphabet) *Nfa {
	a := New()
	a.Alphabet = alph
	if n > 0 {
		a.Delta.MutableStatePost(State(n - 1))
	}
	for _, s := range initial {
		a.Initial.Insert(s)
	}
	for _, s := range final {
		a.Final.Insert(s)
	}
	return a
}

// NumOfStates returns the number of materialised states.
func (n *Nfa) NumOfStates() int { return n.Delta.NumOfStates() }

// AddState allocates the next state id and returns it.
func (n *Nfa) AddState() State {
	q := State(n.Delta.NumOfStates())
	n.Delta.MutableStatePost(q)
	return q
}

// AddStateAt widens delta to at least q+1 states, allocating q if it
// did not already exist.
func (n *Nfa) AddStateAt(q State) {
	n.Delta.MutableStatePost(q)
}

// Clear resets the automaton to blank.
func (n *Nfa) Clear() {
	n.Delta = delta.New()
	n.Initial = sparseset.New()
	n.Final = sparseset.New()
}

// Clone returns a deep copy (automaton values are exclusively owned;
// copies never alias delta/initial/final, though the alphabet pointer
// — shared, read-only from the core's perspective — is not copied).
func (n *Nfa) Clone() *Nfa {
	return &Nfa{
		Delta:    n.Delta.Clone(),
		Initial:  n.Initial.Clone(),
		Final:    n.Final.Clone(),
		Alphabet: n.Alphabet,
	}
}

// checkState is a programmer-error guard for out-of-range state access.
func (n *Nfa) checkState(q State) error {
	if int(q) >= n.NumOfStates() {
		return &materr.StateError{State: uint64(q), Msg: "state out of range"}
	}
	return nil
}
