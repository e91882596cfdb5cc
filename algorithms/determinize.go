package algorithms

import (
	"github.com/VeriFIT/mata-sub001/automaton"
	"github.com/VeriFIT/mata-sub001/ordvec"
)

// StateRenaming maps a state in the output automaton back to the set
// of source states its macro-state stands for, in ascending order.
// Determinization, product and simulation reduction all expose one so
// callers can relate output states to input states.
type StateRenaming map[automaton.State][]automaton.State

// Determinize runs macro-state subset construction (spec.md §4.7): a
// work-list of ordered state-sets, with a canonical-key map ensuring
// each distinct macro-state is allocated exactly once. The result is
// partial (not necessarily complete) unless the caller runs
// MakeComplete afterwards.
func Determinize(src *automaton.Nfa) (*automaton.Nfa, StateRenaming) {
	out := automaton.New()
	out.Alphabet = src.Alphabet

	seen := make(map[string]automaton.State)
	renaming := make(StateRenaming)

	type workItem struct {
		id  automaton.State
		set []automaton.State
	}
	initialSet := src.Initial.SortedValues()
	var work []workItem
	if len(initialSet) > 0 {
		id := out.AddState()
		seen[macroKey(initialSet)] = id
		renaming[id] = initialSet
		if intersectsFinal(src, initialSet) {
			out.Final.Insert(id)
		}
		out.Initial.Insert(id)
		work = append(work, workItem{id: id, set: initialSet})
	}

	for len(work) > 0 {
		cur := work[0]
		work = work[1:]

		symbols := map[automaton.Symbol]bool{}
		for _, q := range cur.set {
			for _, mv := range src.Delta.StatePost(q).AlphabetSymbolMoves() {
				symbols[mv.Symbol] = true
			}
		}

		for sym := range symbols {
			union := ordvec.New[automaton.State](4)
			for _, q := range cur.set {
				post := src.Delta.StatePost(q).Find(sym)
				if post == nil {
					continue
				}
				post.Targets.ForEach(func(t automaton.State) { union.Insert(t) })
			}
			if union.IsEmpty() {
				continue
			}
			targetSet := union.Items()
			key := macroKey(targetSet)
			id, ok := seen[key]
			if !ok {
				id = out.AddState()
				seen[key] = id
				setCopy := append([]automaton.State(nil), targetSet...)
				renaming[id] = setCopy
				if intersectsFinal(src, setCopy) {
					out.Final.Insert(id)
				}
				work = append(work, workItem{id: id, set: setCopy})
			}
			out.Delta.Add(cur.id, sym, id)
		}
	}

	return out, renaming
}

func intersectsFinal(n *automaton.Nfa, states []automaton.State) bool {
	for _, s := range states {
		if n.Final.Contains(s) {
			return true
		}
	}
	return false
}
