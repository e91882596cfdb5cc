package algorithms

import "github.com/VeriFIT/mata-sub001/automaton"

// MinimizeBrzozowski implements spec.md §4.7's
// minimize_brzozowski(A) = determinize(revert(determinize(revert(A)))).
// No equivalence-class refinement is attempted; the result can be
// larger than a canonical minimal DFA, which the spec accepts as the
// trade for implementation simplicity.
func MinimizeBrzozowski(a *automaton.Nfa) *automaton.Nfa {
	step1 := Revert(a)
	det1, _ := Determinize(step1)
	step2 := Revert(det1)
	det2, _ := Determinize(step2)
	return det2
}
