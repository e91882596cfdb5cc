package algorithms

import "github.com/VeriFIT/mata-sub001/automaton"

// RemoveEpsilon computes, for every state q, its epsilon-closure
// E(q) via DFS through epsilon-labelled symbol-posts, then sets
// new_delta(q,a) = union over q' in E(q) of delta(q',a) for every
// non-epsilon symbol a, and marks q final iff E(q) intersects final.
// epsilon is the symbol value consumed as epsilon (spec.md §4.7
// defaults this to alphabet.Epsilon at the call site).
func RemoveEpsilon(n *automaton.Nfa, epsilon automaton.Symbol) *automaton.Nfa {
	closures := make([][]automaton.State, n.NumOfStates())
	for q := 0; q < n.NumOfStates(); q++ {
		closures[q] = epsilonClosure(n, automaton.State(q), epsilon)
	}

	out := automaton.NewSized(n.NumOfStates(), n.Initial.SortedValues(), nil, n.Alphabet)
	for q := 0; q < n.NumOfStates(); q++ {
		for _, qp := range closures[q] {
			if n.Final.Contains(qp) {
				out.Final.Insert(automaton.State(q))
			}
			for _, mv := range n.Delta.StatePost(qp).Moves() {
				if mv.Symbol == epsilon {
					continue
				}
				out.Delta.Add(automaton.State(q), mv.Symbol, mv.Target)
			}
		}
	}
	return out
}

// epsilonClosure returns every state reachable from q via zero or
// more epsilon transitions, including q itself.
func epsilonClosure(n *automaton.Nfa, q automaton.State, epsilon automaton.Symbol) []automaton.State {
	visited := map[automaton.State]bool{q: true}
	stack := []automaton.State{q}
	closure := []automaton.State{q}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		eps := n.Delta.StatePost(cur).Find(epsilon)
		if eps == nil {
			continue
		}
		eps.Targets.ForEach(func(t automaton.State) {
			if !visited[t] {
				visited[t] = true
				closure = append(closure, t)
				stack = append(stack, t)
			}
		})
	}
	return closure
}
