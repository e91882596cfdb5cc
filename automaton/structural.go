package automaton

import (
	"github.com/VeriFIT/mata-sub001/alphabet"
	"github.com/VeriFIT/mata-sub001/delta"
	"github.com/VeriFIT/mata-sub001/materr"
	"github.com/VeriFIT/mata-sub001/ordvec"
)

// DroppedState is the renaming entry for a state that Trim dropped.
const DroppedState State = 0xFFFFFFFF

// Trim compacts the automaton to its useful states (reachable and
// co-reachable), remapping initial, final and delta targets. It
// returns the old->new renaming (renaming[old] is the new id, or
// DroppedState if old was dropped) so callers needing it
// for a companion structure (e.g. an LVLFA's level vector) can reuse
// it. Running Trim twice is idempotent: the second call's renaming is
// the identity on the surviving states.
func (n *Nfa) Trim() []State {
	useful := n.GetUsefulStates()
	renaming := make([]State, n.NumOfStates())
	next := State(0)
	for q, ok := range useful {
		if ok {
			renaming[q] = next
			next++
		} else {
			renaming[q] = DroppedState
		}
	}
	n.Delta.Defragment(useful, renaming)
	n.Initial.Filter(func(s State) bool { return int(s) < len(useful) && useful[s] })
	n.Initial.Rename(func(s State) State { return renaming[s] })
	n.Final.Filter(func(s State) bool { return int(s) < len(useful) && useful[s] })
	n.Final.Rename(func(s State) State { return renaming[s] })
	return renaming
}

// UnifyInitial collapses more than one initial state into a single
// fresh state that inherits every outgoing transition of the former
// initial states, and becomes final iff any of them was final. If
// there are zero or one initial states, the automaton is unchanged.
func (n *Nfa) UnifyInitial() {
	if n.Initial.Size() <= 1 {
		return
	}
	oldInitial := n.Initial.SortedValues()
	fresh := n.AddState()
	wasFinal := false
	for _, q := range oldInitial {
		for _, mv := range n.Delta.StatePost(q).Moves() {
			n.Delta.Add(fresh, mv.Symbol, mv.Target)
		}
		if n.Final.Contains(q) {
			wasFinal = true
		}
	}
	n.Initial.Clear()
	n.Initial.Insert(fresh)
	if wasFinal {
		n.Final.Insert(fresh)
	}
}

// UnifyFinal collapses more than one final state into a single fresh
// state that every former final state's predecessors redirect to, and
// which is initial iff any former final state was initial. If there
// are zero or one final states, the automaton is unchanged.
func (n *Nfa) UnifyFinal() {
	if n.Final.Size() <= 1 {
		return
	}
	oldFinal := make(map[State]bool)
	n.Final.ForEach(func(s State) { oldFinal[s] = true })
	fresh := n.AddState()
	wasInitial := false
	for q := range oldFinal {
		if n.Initial.Contains(q) {
			wasInitial = true
		}
	}
	it := n.Delta.Transitions()
	var redirect []delta.Transition
	for {
		t, ok := it.Next()
		if !ok {
			break
		}
		if oldFinal[t.Target] {
			redirect = append(redirect, t)
		}
	}
	for _, t := range redirect {
		n.Delta.Add(t.Source, t.Symbol, fresh)
	}
	n.Final.Clear()
	n.Final.Insert(fresh)
	if wasInitial {
		n.Initial.Insert(fresh)
	}
}

// SwapFinalNonfinal complements the final set with respect to the
// current state domain.
func (n *Nfa) SwapFinalNonfinal() {
	n.Final.Complement(uint32(n.NumOfStates()))
}

// MakeComplete adds state --sym--> sink for every state and every
// symbol in symbols lacking an outgoing transition on that symbol.
// sink is allocated by the caller; pass DroppedState to request that
// MakeComplete allocate one itself, only if a transition is actually
// added. Idempotent.
func (n *Nfa) MakeComplete(symbols *ordvec.Vector[Symbol], sink State) State {
	needsSink := false
	numStates := n.NumOfStates()
	for q := 0; q < numStates; q++ {
		sp := n.Delta.StatePost(State(q))
		present := make(map[Symbol]bool, sp.Len())
		for _, mv := range sp.Moves() {
			present[mv.Symbol] = true
		}
		symbols.ForEach(func(sym Symbol) {
			if !present[sym] {
				needsSink = true
			}
		})
	}
	if !needsSink {
		return sink
	}
	if sink == DroppedState {
		sink = n.AddState()
	} else {
		n.AddStateAt(sink)
	}
	for q := 0; q < numStates; q++ {
		sp := n.Delta.StatePost(State(q))
		present := make(map[Symbol]bool, sp.Len())
		for _, mv := range sp.Moves() {
			present[mv.Symbol] = true
		}
		symbols.ForEach(func(sym Symbol) {
			if !present[sym] {
				n.Delta.Add(State(q), sym, sink)
			}
		})
	}
	symbols.ForEach(func(sym Symbol) {
		n.Delta.Add(sink, sym, sink)
	})
	return sink
}

// IsDeterministic reports whether the automaton has exactly one
// initial state and, for every state, every symbol-post targets
// exactly one state.
func (n *Nfa) IsDeterministic() bool {
	if n.Initial.Size() != 1 {
		return false
	}
	for q := 0; q < n.NumOfStates(); q++ {
		for _, post := range n.Delta.StatePost(State(q)).AlphabetSymbolMoves() {
			if post.Targets.Len() != 1 {
				return false
			}
		}
		if eps := n.Delta.StatePost(State(q)).EpsilonMoves(); eps != nil && eps.Targets.Len() != 1 {
			return false
		}
	}
	return true
}

// IsComplete reports whether, for every reachable state and every
// alphabet symbol, a transition exists. If alph is nil, n.Alphabet is
// used; GetAlphabetSymbols errors propagate (e.g. IntAlphabet).
func (n *Nfa) IsComplete(alph alphabet.Alphabet) (bool, error) {
	if alph == nil {
		alph = n.Alphabet
	}
	symbols, err := alph.GetAlphabetSymbols()
	if err != nil {
		return false, err
	}
	reachable := n.GetReachableStates()
	for q, ok := range reachable {
		if !ok {
			continue
		}
		sp := n.Delta.StatePost(State(q))
		present := make(map[Symbol]bool, sp.Len())
		for _, mv := range sp.Moves() {
			present[mv.Symbol] = true
		}
		missing := false
		symbols.ForEach(func(sym Symbol) {
			if !present[sym] {
				missing = true
			}
		})
		if missing {
			return false, nil
		}
	}
	return true, nil
}

// ComplementDeterministic complements a deterministic automaton in
// place: make_complete then swap_final_nonfinal. It is an error to
// call this on a non-deterministic automaton.
func (n *Nfa) ComplementDeterministic(symbols *ordvec.Vector[Symbol], sink State) error {
	if !n.IsDeterministic() {
		return &materr.UnsupportedError{Op: "ComplementDeterministic", Reason: "automaton is not deterministic"}
	}
	n.MakeComplete(symbols, sink)
	n.SwapFinalNonfinal()
	return nil
}

// GetOneLetterAut collapses every transition's symbol to x, producing
// a directed-graph view of the automaton (used by simulation
// reduction, which only cares about reachability structure).
func (n *Nfa) GetOneLetterAut(x Symbol) *Nfa {
	out := NewSized(n.NumOfStates(), n.Initial.SortedValues(), n.Final.SortedValues(), n.Alphabet)
	it := n.Delta.Transitions()
	for {
		t, ok := it.Next()
		if !ok {
			break
		}
		out.Delta.Add(t.Source, x, t.Target)
	}
	return out
}
