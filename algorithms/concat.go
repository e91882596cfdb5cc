package algorithms

import "github.com/VeriFIT/mata-sub001/automaton"

// Concatenate builds L·R (spec.md §4.7): R's states are renumbered to
// follow L's. If useEpsilon, an epsilon transition is added from every
// (shifted) final of L to every (shifted) initial of R, L's finals
// become non-final, and R's (shifted) finals are adopted; otherwise
// R's initial states' outgoing moves are inlined onto every final of
// L directly, and an L-final that is also an R-initial-turned-initial
// keeps its finality iff every initial of R is final in R.
func Concatenate(l, r *automaton.Nfa, useEpsilon bool, epsilon automaton.Symbol) *automaton.Nfa {
	shift := automaton.State(l.NumOfStates())
	out := automaton.NewSized(l.NumOfStates()+r.NumOfStates(), l.Initial.SortedValues(), nil, l.Alphabet)

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

	rInitialShifted := make([]automaton.State, 0, r.Initial.Size())
	r.Initial.ForEach(func(s automaton.State) { rInitialShifted = append(rInitialShifted, s+shift) })

	allRInitialFinalInR := true
	r.Initial.ForEach(func(s automaton.State) {
		if !r.Final.Contains(s) {
			allRInitialFinalInR = false
		}
	})

	if useEpsilon {
		l.Final.ForEach(func(lf automaton.State) {
			for _, ri := range rInitialShifted {
				out.Delta.Add(lf, epsilon, ri)
			}
		})
	} else {
		l.Final.ForEach(func(lf automaton.State) {
			r.Initial.ForEach(func(riOrig automaton.State) {
				for _, mv := range r.Delta.StatePost(riOrig).Moves() {
					out.Delta.Add(lf, mv.Symbol, mv.Target+shift)
				}
			})
		})
	}

	r.Final.ForEach(func(rf automaton.State) { out.Final.Insert(rf + shift) })
	if !useEpsilon && allRInitialFinalInR {
		l.Final.ForEach(func(lf automaton.State) {
			if l.Initial.Contains(lf) {
				out.Final.Insert(lf)
			}
		})
	}

	return out
}
