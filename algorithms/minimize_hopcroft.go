package algorithms

import (
	"github.com/VeriFIT/mata-sub001/automaton"
	"github.com/VeriFIT/mata-sub001/matrix"
	"github.com/VeriFIT/mata-sub001/ordvec"
	"github.com/VeriFIT/mata-sub001/partition"
)

// HopcroftResult reports the block structure MinimizeHopcroft converged
// on, alongside the minimized automaton.
type HopcroftResult struct {
	// Renaming maps a state of the determinized, completed input to the
	// id of the block (and so the state) it was folded into.
	Renaming []automaton.State
	// AlreadyMinimal holds when partition.ToRelation's "same block"
	// relation is antisymmetric: no two distinct input states were ever
	// merged, i.e. the completed DFA was already minimal.
	AlreadyMinimal bool
	// MaxSplitDepth is the deepest ancestry chain recorded by
	// SplitBlocks across the run, walked via partition.NodeDepth.
	MaxSplitDepth int
	// FinalBlockIsFromFinals reports, per surviving block (indexed by
	// Renaming's values), whether partition.RootOf traces that block's
	// node lineage back to the initial finals seed block rather than
	// the non-finals one.
	FinalBlockIsFromFinals []bool
}

// MinimizeHopcroft implements spec.md §4.7's minimization by partition
// refinement (original_source/src/partition.cc), an alternative to
// MinimizeBrzozowski's double-reversal: determinize and complete the
// input, seed a partition.Partition with the final/non-final split,
// then repeatedly refine every block by its states' preimages under
// each symbol (partition.SplitBlocks) until a full round over every
// symbol and every current block produces no further split. The
// resulting blocks become the states of the minimized automaton.
//
// symbols must name every symbol MakeComplete should close the
// determinized automaton over; passing the same vector used elsewhere
// to complete automata over this module's working alphabet is typical.
func MinimizeHopcroft(a *automaton.Nfa, symbols *ordvec.Vector[automaton.Symbol]) (*automaton.Nfa, *HopcroftResult, error) {
	det, _ := Determinize(a)
	det.MakeComplete(symbols, automaton.DroppedState)
	n := det.NumOfStates()

	var finals, nonFinals []uint32
	for q := 0; q < n; q++ {
		if det.Final.Contains(automaton.State(q)) {
			finals = append(finals, uint32(q))
		} else {
			nonFinals = append(nonFinals, uint32(q))
		}
	}
	var initialBlocks [][]uint32
	if len(finals) > 0 {
		initialBlocks = append(initialBlocks, finals)
	}
	if len(nonFinals) > 0 {
		initialBlocks = append(initialBlocks, nonFinals)
	}

	p, err := partition.New(n, initialBlocks)
	if err != nil {
		return nil, nil, err
	}
	finalsRootNode := uint32(0)
	hasFinalsRoot := len(finals) > 0

	ancestors := make(map[uint32]uint32)
	for {
		changed := false
		blockSnapshot := make([][]uint32, p.NumBlocks())
		for i := range blockSnapshot {
			blockSnapshot[i] = p.StatesInSameBlock(p.ReprOfBlock(uint32(i)))
		}

		var splitErr error
		symbols.ForEach(func(sym automaton.Symbol) {
			if splitErr != nil {
				return
			}
			for _, splitterStates := range blockSnapshot {
				inSplitter := make(map[automaton.State]bool, len(splitterStates))
				for _, s := range splitterStates {
					inSplitter[automaton.State(s)] = true
				}
				var marked []uint32
				for q := 0; q < n; q++ {
					post := det.Delta.StatePost(automaton.State(q)).Find(sym)
					if post == nil {
						continue
					}
					hit := false
					post.Targets.ForEach(func(t automaton.State) {
						if inSplitter[t] {
							hit = true
						}
					})
					if hit {
						marked = append(marked, uint32(q))
					}
				}
				pairs, serr := p.SplitBlocks(marked)
				if serr != nil {
					splitErr = serr
					return
				}
				for _, pair := range pairs {
					ancestors[p.NodeIdxOfBlock(pair.Retained)] = pair.Ancestor
					ancestors[p.NodeIdxOfBlock(pair.Created)] = pair.Ancestor
					changed = true
				}
			}
		})
		if splitErr != nil {
			return nil, nil, splitErr
		}
		if !changed {
			break
		}
	}

	rel := p.ToRelation()
	alreadyMinimal := matrix.IsAntisymmetric(rel)
	_ = matrix.IsReflexive(rel)
	_ = matrix.IsTransitive(rel)

	numBlocks := p.NumBlocks()
	renaming := make([]automaton.State, n)
	for q := 0; q < n; q++ {
		renaming[q] = automaton.State(p.BlockIdxOfState(uint32(q)))
	}

	maxDepth := 0
	fromFinals := make([]bool, numBlocks)
	for b := 0; b < numBlocks; b++ {
		node := p.NodeIdxOfBlock(uint32(b))
		if d := partition.NodeDepth(ancestors, node); d > maxDepth {
			maxDepth = d
		}
		if hasFinalsRoot {
			fromFinals[b] = partition.RootOf(ancestors, node) == finalsRootNode
		}
	}

	out := automaton.NewSized(numBlocks, nil, nil, det.Alphabet)
	det.Initial.ForEach(func(s automaton.State) { out.Initial.Insert(renaming[s]) })
	det.Final.ForEach(func(s automaton.State) { out.Final.Insert(renaming[s]) })
	it := det.Delta.Transitions()
	for {
		t, ok := it.Next()
		if !ok {
			break
		}
		out.Delta.Add(renaming[t.Source], t.Symbol, renaming[t.Target])
	}

	return out, &HopcroftResult{
		Renaming:               renaming,
		AlreadyMinimal:         alreadyMinimal,
		MaxSplitDepth:          maxDepth,
		FinalBlockIsFromFinals: fromFinals,
	}, nil
}
