package algorithms

import (
	"github.com/VeriFIT/mata-sub001/alphabet"
	"github.com/VeriFIT/mata-sub001/automaton"
	"github.com/VeriFIT/mata-sub001/materr"
	"github.com/VeriFIT/mata-sub001/ordvec"
	"github.com/VeriFIT/mata-sub001/params"
)

// antichainNode is a search node (a, S) of spec.md §4.7's inclusion
// search: a is an A-state, S an ordered set of B-states.
type antichainNode struct {
	a automaton.State
	s []automaton.State
}

type antichainParent struct {
	node antichainNode
	sym  automaton.Symbol
}

// unionAlphabetSymbols returns, in ascending order, every symbol
// labelling an outgoing transition from any state of either a or b.
func unionAlphabetSymbols(a, b *automaton.Nfa) []automaton.Symbol {
	seen := map[automaton.Symbol]bool{}
	for q := 0; q < a.NumOfStates(); q++ {
		for _, mv := range a.Delta.StatePost(automaton.State(q)).AlphabetSymbolMoves() {
			seen[mv.Symbol] = true
		}
	}
	for q := 0; q < b.NumOfStates(); q++ {
		for _, mv := range b.Delta.StatePost(automaton.State(q)).AlphabetSymbolMoves() {
			seen[mv.Symbol] = true
		}
	}
	sorted := ordvec.New[automaton.Symbol](len(seen))
	for s := range seen {
		sorted.Insert(s)
	}
	return sorted.Items()
}

func bPostOf(b *automaton.Nfa, states []automaton.State, sym automaton.Symbol) []automaton.State {
	union := ordvec.New[automaton.State](4)
	for _, s := range states {
		post := b.Delta.StatePost(s).Find(sym)
		if post == nil {
			continue
		}
		post.Targets.ForEach(func(t automaton.State) { union.Insert(t) })
	}
	return union.Items()
}

// IsIncludedAntichains decides L(a) ⊆ L(b) by antichain search
// (spec.md §4.7). On "not included" it also returns a counter-example
// word accepted by a but not by b, reconstructed from the search's
// back-pointers.
func IsIncludedAntichains(a, b *automaton.Nfa) (included bool, counterExample []automaton.Symbol) {
	alphabetSymbols := unionAlphabetSymbols(a, b)

	// processed[a-state] holds the non-subsumed antichain elements
	// discovered so far for that A-state.
	processed := make(map[automaton.State][][]automaton.State)
	parents := make(map[string]antichainParent)

	nodeKey := func(n antichainNode) string {
		return macroKey([]automaton.State{n.a}) + "|" + macroKey(n.s)
	}

	bInitial := b.Initial.SortedValues()
	var queue []antichainNode
	a.Initial.ForEach(func(a0 automaton.State) {
		n := antichainNode{a: a0, s: bInitial}
		processed[a0] = append(processed[a0], n.s)
		queue = append(queue, n)
	})

	isBad := func(n antichainNode) bool {
		if !a.Final.Contains(n.a) {
			return false
		}
		for _, s := range n.s {
			if b.Final.Contains(s) {
				return false
			}
		}
		return true
	}

	reconstruct := func(n antichainNode) []automaton.Symbol {
		var word []automaton.Symbol
		cur := n
		for {
			p, ok := parents[nodeKey(cur)]
			if !ok {
				break
			}
			word = append([]automaton.Symbol{p.sym}, word...)
			cur = p.node
		}
		return word
	}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		if isBad(cur) {
			return false, reconstruct(cur)
		}

		for _, sym := range alphabetSymbols {
			aPost := a.Delta.StatePost(cur.a).Find(sym)
			if aPost == nil {
				continue
			}
			sPrime := bPostOf(b, cur.s, sym)
			aPost.Targets.ForEach(func(aPrime automaton.State) {
				next := antichainNode{a: aPrime, s: sPrime}
				if subsumed(processed[aPrime], sPrime) {
					return
				}
				processed[aPrime] = removeSubsumedBy(processed[aPrime], sPrime)
				processed[aPrime] = append(processed[aPrime], sPrime)
				parents[nodeKey(next)] = antichainParent{node: cur, sym: sym}
				queue = append(queue, next)
			})
		}
	}

	return true, nil
}

// subsumed reports whether some T in existing has T ⊆ s, meaning s is
// redundant (a node more permissive than s was already processed).
func subsumed(existing [][]automaton.State, s []automaton.State) bool {
	sv := ordvec.FromSorted(append([]automaton.State(nil), s...))
	for _, t := range existing {
		tv := ordvec.FromSorted(append([]automaton.State(nil), t...))
		if tv.IsSubsetOf(sv) {
			return true
		}
	}
	return false
}

// removeSubsumedBy drops every T in existing with s ⊆ T, since s now
// subsumes them.
func removeSubsumedBy(existing [][]automaton.State, s []automaton.State) [][]automaton.State {
	sv := ordvec.FromSorted(append([]automaton.State(nil), s...))
	out := existing[:0]
	for _, t := range existing {
		tv := ordvec.FromSorted(append([]automaton.State(nil), t...))
		if !sv.IsSubsetOf(tv) {
			out = append(out, t)
		}
	}
	return out
}

// IsIncludedNaive decides L(a) ⊆ L(b) as emptiness of L(a) ∩ L(¬b):
// complement b (which must first be made usable by the caller's
// chosen complement algorithm via p), intersect with a, and check
// language emptiness.
func IsIncludedNaive(a, b *automaton.Nfa, symbols *ordvec.Vector[automaton.Symbol], p params.Params) (bool, error) {
	notB, err := Complement(b, symbols, p)
	if err != nil {
		return false, err
	}
	prod, _ := Intersect(a, notB, alphabet.Epsilon)
	empty, _, _ := prod.IsLangEmpty()
	return empty, nil
}

// sigmaStarAutomaton returns a single-state automaton, initial and
// final, with a self-loop on every symbol in symbols — the canonical
// witness for Σ*.
func sigmaStarAutomaton(symbols *ordvec.Vector[automaton.Symbol]) *automaton.Nfa {
	a := automaton.NewSized(1, []automaton.State{0}, []automaton.State{0}, nil)
	symbols.ForEach(func(sym automaton.Symbol) { a.Delta.Add(0, sym, 0) })
	return a
}

// IsUniversalAntichains decides whether L(b) = Σ* by checking
// inclusion of the Σ* witness automaton in b.
func IsUniversalAntichains(b *automaton.Nfa, symbols *ordvec.Vector[automaton.Symbol]) (bool, []automaton.Symbol) {
	sigma := sigmaStarAutomaton(symbols)
	return IsIncludedAntichains(sigma, b)
}

// IsUniversalNaive decides universality as emptiness of complement(b).
func IsUniversalNaive(b *automaton.Nfa, symbols *ordvec.Vector[automaton.Symbol], p params.Params) (bool, error) {
	notB, err := Complement(b, symbols, p)
	if err != nil {
		return false, err
	}
	empty, _, _ := notB.IsLangEmpty()
	return empty, nil
}

// Equivalent decides L(a) = L(b) by mutual inclusion, using either the
// naive (complement-based) or antichains algorithm per
// p["algorithm"].
func Equivalent(a, b *automaton.Nfa, symbols *ordvec.Vector[automaton.Symbol], p params.Params) (bool, error) {
	if err := p.Validate(); err != nil {
		return false, err
	}
	algo := params.AlgoNaive
	if v, ok := p["algorithm"]; ok {
		algo = params.Algorithm(v)
	}
	switch algo {
	case params.AlgoAntichains:
		aIncB, _ := IsIncludedAntichains(a, b)
		if !aIncB {
			return false, nil
		}
		bIncA, _ := IsIncludedAntichains(b, a)
		return bIncA, nil
	case params.AlgoNaive:
		// "algorithm" chose the inclusion check; it is not passed on to
		// Complement, which reads the same key.
		cp := params.Params{}
		for k, v := range p {
			if k != "algorithm" {
				cp[k] = v
			}
		}
		aIncB, err := IsIncludedNaive(a, b, symbols, cp)
		if err != nil {
			return false, err
		}
		if !aIncB {
			return false, nil
		}
		return IsIncludedNaive(b, a, symbols, cp)
	default:
		return false, &materr.ConfigError{Key: "algorithm", Value: string(algo)}
	}
}
