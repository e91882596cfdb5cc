package algorithms

import "github.com/VeriFIT/mata-sub001/automaton"

// Union builds L ∪ R (spec.md §4.7): R's state ids are shifted past
// L's, then initial/final sets and deltas are merged. Always safe,
// regardless of whether L and R originate from the same state space.
func Union(l, r *automaton.Nfa) *automaton.Nfa {
	shift := automaton.State(l.NumOfStates())
	out := automaton.NewSized(l.NumOfStates()+r.NumOfStates(), l.Initial.SortedValues(), l.Final.SortedValues(), l.Alphabet)

	itL := l.Delta.Transitions()
	for {
		t, ok := itL.Next()
		if !ok {
			break
		}
		out.Delta.Add(t.Source, t.Symbol, t.Target)
	}
	itR := r.Delta.Transitions()
	for {
		t, ok := itR.Next()
		if !ok {
			break
		}
		out.Delta.Add(t.Source+shift, t.Symbol, t.Target+shift)
	}
	r.Initial.ForEach(func(s automaton.State) { out.Initial.Insert(s + shift) })
	r.Final.ForEach(func(s automaton.State) { out.Final.Insert(s + shift) })
	return out
}

// UnionNoRename merges L and R without renumbering either side. The
// caller asserts their state spaces are disjoint; this is cheaper than
// Union but corrupts the result silently if that assertion is false.
func UnionNoRename(l, r *automaton.Nfa) *automaton.Nfa {
	maxStates := l.NumOfStates()
	if r.NumOfStates() > maxStates {
		maxStates = r.NumOfStates()
	}
	out := automaton.NewSized(maxStates, l.Initial.SortedValues(), l.Final.SortedValues(), l.Alphabet)

	itL := l.Delta.Transitions()
	for {
		t, ok := itL.Next()
		if !ok {
			break
		}
		out.Delta.Add(t.Source, t.Symbol, t.Target)
	}
	itR := r.Delta.Transitions()
	for {
		t, ok := itR.Next()
		if !ok {
			break
		}
		out.Delta.Add(t.Source, t.Symbol, t.Target)
	}
	r.Initial.ForEach(func(s automaton.State) { out.Initial.Insert(s) })
	r.Final.ForEach(func(s automaton.State) { out.Final.Insert(s) })
	return out
}
