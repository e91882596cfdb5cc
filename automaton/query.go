package automaton

import (
	"fmt"

	"github.com/VeriFIT/mata-sub001/alphabet"
)

// IsInLang simulates word against the automaton with a two-layer
// visited set (current frontier, next frontier) and reports whether
// some run accepts it. alphabet.Epsilon transitions are followed
// without consuming a symbol.
func (n *Nfa) IsInLang(word []Symbol) bool {
	closeEps := func(set map[State]bool) {
		for changed := true; changed; {
			changed = false
			for s := range set {
				if eps := n.Delta.StatePost(s).Find(alphabet.Epsilon); eps != nil {
					eps.Targets.ForEach(func(t State) {
						if !set[t] {
							set[t], changed = true, true
						}
					})
				}
			}
		}
	}
	current := map[State]bool{}
	n.Initial.ForEach(func(s State) { current[s] = true })
	closeEps(current)
	for _, sym := range word {
		next := map[State]bool{}
		for s := range current {
			post := n.Delta.StatePost(s).Find(sym)
			if post == nil {
				continue
			}
			post.Targets.ForEach(func(t State) { next[t] = true })
		}
		closeEps(next)
		current = next
		if len(current) == 0 {
			return false
		}
	}
	for s := range current {
		if n.Final.Contains(s) {
			return true
		}
	}
	return false
}

// IsPrfxInLang simulates word, returning true as soon as a final
// state is reached, even before every symbol is consumed.
func (n *Nfa) IsPrfxInLang(word []Symbol) bool {
	current := map[State]bool{}
	n.Initial.ForEach(func(s State) { current[s] = true })
	for s := range current {
		if n.Final.Contains(s) {
			return true
		}
	}
	for _, sym := range word {
		next := map[State]bool{}
		for s := range current {
			post := n.Delta.StatePost(s).Find(sym)
			if post == nil {
				continue
			}
			post.Targets.ForEach(func(t State) { next[t] = true })
		}
		current = next
		for s := range current {
			if n.Final.Contains(s) {
				return true
			}
		}
		if len(current) == 0 {
			return false
		}
	}
	return false
}

// GetShortestWords performs a BFS forward from the initial states and
// returns every shortest accepted word (there may be several of the
// same minimal length), each word once.
func (n *Nfa) GetShortestWords() [][]Symbol {
	type frontierEntry struct {
		state State
		word  []Symbol
	}
	dist := map[State]int{}
	found := map[string]bool{}
	var shortest [][]Symbol
	minLen := -1

	queue := []frontierEntry{}
	n.Initial.ForEach(func(s State) {
		if _, seen := dist[s]; !seen {
			dist[s] = 0
			queue = append(queue, frontierEntry{state: s, word: nil})
		}
	})
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if n.Final.Contains(cur.state) {
			key := fmt.Sprint(cur.word)
			if found[key] {
				continue
			}
			found[key] = true
			if minLen == -1 || len(cur.word) < minLen {
				minLen = len(cur.word)
				shortest = [][]Symbol{cur.word}
			} else if len(cur.word) == minLen {
				shortest = append(shortest, cur.word)
			}
			continue
		}
		if minLen != -1 && len(cur.word) >= minLen {
			continue
		}
		for _, mv := range n.Delta.StatePost(cur.state).Moves() {
			if mv.Symbol == alphabet.Epsilon {
				continue
			}
			if d, seen := dist[mv.Target]; seen && d < len(cur.word)+1 {
				continue
			}
			dist[mv.Target] = len(cur.word) + 1
			next := make([]Symbol, len(cur.word)+1)
			copy(next, cur.word)
			next[len(cur.word)] = mv.Symbol
			queue = append(queue, frontierEntry{state: mv.Target, word: next})
		}
	}
	return shortest
}

// GetWords enumerates every accepted word up to maxLen via bounded DFS.
// Epsilon hops are tracked with a per-path visited set, reset whenever a
// real symbol is consumed, so an epsilon cycle (e.g. from compiling a
// nested star such as "(a*)*") terminates the walk instead of recursing
// forever.
func (n *Nfa) GetWords(maxLen int) [][]Symbol {
	var out [][]Symbol
	var walk func(state State, word []Symbol, epsVisited map[State]bool)
	walk = func(state State, word []Symbol, epsVisited map[State]bool) {
		if n.Final.Contains(state) {
			cp := make([]Symbol, len(word))
			copy(cp, word)
			out = append(out, cp)
		}
		if len(word) >= maxLen {
			return
		}
		for _, mv := range n.Delta.StatePost(state).Moves() {
			if mv.Symbol == alphabet.Epsilon {
				if epsVisited[mv.Target] {
					continue
				}
				next := make(map[State]bool, len(epsVisited)+1)
				for s := range epsVisited {
					next[s] = true
				}
				next[mv.Target] = true
				walk(mv.Target, word, next)
				continue
			}
			walk(mv.Target, append(word, mv.Symbol), map[State]bool{mv.Target: true})
		}
	}
	n.Initial.ForEach(func(s State) { walk(s, nil, map[State]bool{s: true}) })
	return out
}
