package algorithms

import (
	"sort"

	"github.com/VeriFIT/mata-sub001/automaton"
)

// RevertVariant selects one of the three revert implementations of
// spec.md §4.7. All three produce identical automata; they differ
// only in how they build the reversed delta.
type RevertVariant int

const (
	// RevertSimple adds (t,a,s) directly to the new delta for every
	// (s,a,t) in the source, via ordinary inserts. Default variant.
	RevertSimple RevertVariant = iota
	// RevertSomewhatSimple append-backs into per-state buckets and
	// sorts once, avoiding mid-vector inserts at the cost of a second
	// pass.
	RevertSomewhatSimple
	// RevertFragile buckets transitions by target through a scratch
	// slice indexed by symbol value; faster on dense, small-alphabet
	// automata but allocates O(max_symbol) scratch per state.
	RevertFragile
)

// Revert returns the automaton with every transition reversed and the
// initial/final sets swapped, using RevertSimple.
func Revert(n *automaton.Nfa) *automaton.Nfa {
	return RevertWith(n, RevertSimple)
}

// RevertWith reverts n using the requested variant.
func RevertWith(n *automaton.Nfa, variant RevertVariant) *automaton.Nfa {
	switch variant {
	case RevertSomewhatSimple:
		return revertSomewhatSimple(n)
	case RevertFragile:
		return revertFragile(n)
	default:
		return revertSimple(n)
	}
}

func revertSimple(n *automaton.Nfa) *automaton.Nfa {
	out := automaton.NewSized(n.NumOfStates(), n.Final.SortedValues(), n.Initial.SortedValues(), n.Alphabet)
	it := n.Delta.Transitions()
	for {
		t, ok := it.Next()
		if !ok {
			break
		}
		out.Delta.Add(t.Target, t.Symbol, t.Source)
	}
	return out
}

// revertSomewhatSimple collects each target state-post by append-back
// into a scratch slice and sorts it once by (symbol, target), so the
// inserts that follow land at the end of their state-post and target
// set instead of in the middle.
func revertSomewhatSimple(n *automaton.Nfa) *automaton.Nfa {
	type bucketEntry struct {
		sym automaton.Symbol
		tgt automaton.State
	}
	buckets := make(map[automaton.State][]bucketEntry)
	it := n.Delta.Transitions()
	for {
		t, ok := it.Next()
		if !ok {
			break
		}
		buckets[t.Target] = append(buckets[t.Target], bucketEntry{sym: t.Symbol, tgt: t.Source})
	}

	out := automaton.NewSized(n.NumOfStates(), n.Final.SortedValues(), n.Initial.SortedValues(), n.Alphabet)
	for src, entries := range buckets {
		sort.Slice(entries, func(i, j int) bool {
			if entries[i].sym != entries[j].sym {
				return entries[i].sym < entries[j].sym
			}
			return entries[i].tgt < entries[j].tgt
		})
		for _, e := range entries {
			out.Delta.Add(src, e.sym, e.tgt)
		}
	}
	return out
}

// revertFragile buckets by target via a scratch slice indexed
// directly by symbol value (offset from the state-post's minimum
// symbol), which only pays off when the alphabet is small and dense;
// it allocates O(max_symbol - min_symbol) scratch per source state and
// degrades badly on a sparse or huge alphabet, hence the name.
func revertFragile(n *automaton.Nfa) *automaton.Nfa {
	out := automaton.NewSized(n.NumOfStates(), n.Final.SortedValues(), n.Initial.SortedValues(), n.Alphabet)
	for q := 0; q < n.NumOfStates(); q++ {
		moves := n.Delta.StatePost(automaton.State(q)).AlphabetSymbolMoves()
		if len(moves) == 0 {
			continue
		}
		lo, hi := moves[0].Symbol, moves[len(moves)-1].Symbol
		scratch := make([][]automaton.State, hi-lo+1)
		for _, post := range moves {
			post.Targets.ForEach(func(t automaton.State) {
				scratch[post.Symbol-lo] = append(scratch[post.Symbol-lo], t)
			})
		}
		for off, targets := range scratch {
			for _, t := range targets {
				out.Delta.Add(t, lo+automaton.Symbol(off), automaton.State(q))
			}
		}
		if eps := n.Delta.StatePost(automaton.State(q)).EpsilonMoves(); eps != nil {
			eps.Targets.ForEach(func(t automaton.State) {
				out.Delta.Add(t, eps.Symbol, automaton.State(q))
			})
		}
	}
	return out
}
