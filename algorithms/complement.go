package algorithms

import (
	"github.com/VeriFIT/mata-sub001/automaton"
	"github.com/VeriFIT/mata-sub001/materr"
	"github.com/VeriFIT/mata-sub001/ordvec"
	"github.com/VeriFIT/mata-sub001/params"
)

// Complement implements spec.md §4.7's two complement algorithms,
// selected by p["algorithm"]: classical (determinize, make_complete,
// swap_final_nonfinal) or brzozowski (minimize_brzozowski,
// make_complete, swap_final_nonfinal). Inside classical, p["minimize"]
// = "true" swaps the inner determinize for Brzozowski minimization.
// p is validated first; an unrecognised algorithm value is rejected.
func Complement(n *automaton.Nfa, symbols *ordvec.Vector[automaton.Symbol], p params.Params) (*automaton.Nfa, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	algo, err := p.Algorithm()
	if err != nil {
		return nil, err
	}
	useMinimize, err := p.Minimize()
	if err != nil {
		return nil, err
	}

	var det *automaton.Nfa
	switch algo {
	case params.AlgoBrzozowski:
		det = MinimizeBrzozowski(n)
	case params.AlgoClassical:
		if useMinimize {
			det = MinimizeBrzozowski(n)
		} else {
			det, _ = Determinize(n)
		}
	default:
		return nil, &materr.ConfigError{Key: "algorithm", Value: string(algo)}
	}

	out := det.Clone()
	out.ComplementDeterministic(symbols, automaton.DroppedState)
	return out, nil
}
