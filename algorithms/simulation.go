package algorithms

import (
	"github.com/VeriFIT/mata-sub001/automaton"
	"github.com/VeriFIT/mata-sub001/matrix"
)

// ComputeSimulation computes the forward simulation preorder over
// a.GetOneLetterAut(x) using the standard LTS-simulation greatest-
// fixpoint algorithm: start from every pair related (subject to
// finality compatibility) and repeatedly remove a pair (p,q) when some
// successor of q has no simulating successor of p, until no pair is
// removed in a full pass. The relation lives in an extendable square
// DynRows matrix per spec.md §4.7.
func ComputeSimulation(a *automaton.Nfa) matrix.Matrix[bool] {
	one := a.GetOneLetterAut(0)
	n := one.NumOfStates()

	sim := matrix.NewDynRows[bool]()
	for i := 0; i < n; i++ {
		sim.Extend(false)
	}
	for p := 0; p < n; p++ {
		for q := 0; q < n; q++ {
			compatible := !one.Final.Contains(automaton.State(q)) || one.Final.Contains(automaton.State(p))
			sim.Set(p, q, compatible)
		}
	}

	successors := make([][]automaton.State, n)
	for q := 0; q < n; q++ {
		seen := map[automaton.State]bool{}
		for _, mv := range one.Delta.StatePost(automaton.State(q)).Moves() {
			if !seen[mv.Target] {
				seen[mv.Target] = true
				successors[q] = append(successors[q], mv.Target)
			}
		}
	}

	for {
		changed := false
		for p := 0; p < n; p++ {
			for q := 0; q < n; q++ {
				if !sim.Get(p, q) {
					continue
				}
				for _, qp := range successors[q] {
					if !hasSimulatingSuccessor(sim, successors[p], qp) {
						sim.Set(p, q, false)
						changed = true
						break
					}
				}
			}
		}
		if !changed {
			break
		}
	}
	return sim
}

func hasSimulatingSuccessor(sim matrix.Matrix[bool], pSuccessors []automaton.State, qp automaton.State) bool {
	for _, pp := range pSuccessors {
		if sim.Get(int(pp), int(qp)) {
			return true
		}
	}
	return false
}

// ReduceSimulation quotients a's states by simulation equivalence
// (p ~ q iff sim(p,q) and sim(q,p)) and returns the reduced, not
// necessarily minimal, automaton plus the old->new state renaming.
func ReduceSimulation(a *automaton.Nfa) (*automaton.Nfa, []automaton.State) {
	sim := ComputeSimulation(a)
	n := a.NumOfStates()

	renaming := make([]automaton.State, n)
	classOf := make([]int, n)
	for i := range classOf {
		classOf[i] = -1
	}
	numClasses := 0
	for p := 0; p < n; p++ {
		if classOf[p] != -1 {
			continue
		}
		classOf[p] = numClasses
		for q := p + 1; q < n; q++ {
			if classOf[q] == -1 && sim.Get(p, q) && sim.Get(q, p) {
				classOf[q] = numClasses
			}
		}
		numClasses++
	}
	for i := range renaming {
		renaming[i] = automaton.State(classOf[i])
	}

	out := automaton.NewSized(numClasses, nil, nil, a.Alphabet)
	a.Initial.ForEach(func(s automaton.State) { out.Initial.Insert(renaming[s]) })
	a.Final.ForEach(func(s automaton.State) { out.Final.Insert(renaming[s]) })
	it := a.Delta.Transitions()
	for {
		t, ok := it.Next()
		if !ok {
			break
		}
		out.Delta.Add(renaming[t.Source], t.Symbol, renaming[t.Target])
	}
	return out, renaming
}
