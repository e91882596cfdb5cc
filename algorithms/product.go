package algorithms

import "github.com/VeriFIT/mata-sub001/automaton"

// FinalPredicate decides whether a product state (l,r) is final,
// given whether l is final in L and r is final in R. Intersection
// passes a conjunction; a caller checking one-sided reachability
// passes a disjunction.
type FinalPredicate func(lFinal, rFinal bool) bool

// And is the FinalPredicate for intersection.
func And(lFinal, rFinal bool) bool { return lFinal && rFinal }

// Or is the FinalPredicate used when only reachability to either
// automaton's final set matters.
func Or(lFinal, rFinal bool) bool { return lFinal || rFinal }

// ProductPair names the two source states a product state stands for.
type ProductPair struct{ L, R automaton.State }

// Product builds the product automaton of L and R (spec.md §4.7):
// states are pairs, allocated on demand via a (State,State)->State
// map; symbols below firstEpsilon are synchronised on both sides,
// symbols at or above firstEpsilon are treated as epsilon and lift
// from either side alone. final decides product-state finality from
// each side's finality. Work-list processed FIFO, symbols ascending,
// for deterministic output.
func Product(l, r *automaton.Nfa, firstEpsilon automaton.Symbol, final FinalPredicate) (*automaton.Nfa, map[automaton.State]ProductPair) {
	out := automaton.New()
	out.Alphabet = l.Alphabet

	ids := make(map[uint64]automaton.State)
	pairs := make(map[automaton.State]ProductPair)

	getOrCreate := func(lp, rp automaton.State) automaton.State {
		k := pairKey(lp, rp)
		if id, ok := ids[k]; ok {
			return id
		}
		id := out.AddState()
		ids[k] = id
		pairs[id] = ProductPair{L: lp, R: rp}
		if final(l.Final.Contains(lp), r.Final.Contains(rp)) {
			out.Final.Insert(id)
		}
		return id
	}

	var work []ProductPair
	l.Initial.ForEach(func(lp automaton.State) {
		r.Initial.ForEach(func(rp automaton.State) {
			id := getOrCreate(lp, rp)
			out.Initial.Insert(id)
			work = append(work, ProductPair{L: lp, R: rp})
		})
	})

	for len(work) > 0 {
		cur := work[0]
		work = work[1:]
		srcID := ids[pairKey(cur.L, cur.R)]

		lPost := l.Delta.StatePost(cur.L)
		rPost := r.Delta.StatePost(cur.R)

		var lSyms []automaton.Symbol
		for _, mv := range lPost.Moves() {
			if len(lSyms) == 0 || lSyms[len(lSyms)-1] != mv.Symbol {
				lSyms = append(lSyms, mv.Symbol)
			}
		}

		for _, sym := range lSyms {
			if sym < firstEpsilon {
				lTargets := lPost.Find(sym)
				rTargets := rPost.Find(sym)
				if lTargets == nil || rTargets == nil {
					continue
				}
				lTargets.Targets.ForEach(func(lp automaton.State) {
					rTargets.Targets.ForEach(func(rp automaton.State) {
						before := len(ids)
						tgt := getOrCreate(lp, rp)
						if len(ids) != before {
							work = append(work, ProductPair{L: lp, R: rp})
						}
						out.Delta.Add(srcID, sym, tgt)
					})
				})
			} else {
				lTargets := lPost.Find(sym)
				if lTargets == nil {
					continue
				}
				lTargets.Targets.ForEach(func(lp automaton.State) {
					before := len(ids)
					tgt := getOrCreate(lp, cur.R)
					if len(ids) != before {
						work = append(work, ProductPair{L: lp, R: cur.R})
					}
					out.Delta.Add(srcID, sym, tgt)
				})
			}
		}

		var rSyms []automaton.Symbol
		for _, mv := range rPost.Moves() {
			if mv.Symbol >= firstEpsilon && (len(rSyms) == 0 || rSyms[len(rSyms)-1] != mv.Symbol) {
				rSyms = append(rSyms, mv.Symbol)
			}
		}
		for _, sym := range rSyms {
			rTargets := rPost.Find(sym)
			if rTargets == nil {
				continue
			}
			rTargets.Targets.ForEach(func(rp automaton.State) {
				before := len(ids)
				tgt := getOrCreate(cur.L, rp)
				if len(ids) != before {
					work = append(work, ProductPair{L: cur.L, R: rp})
				}
				out.Delta.Add(srcID, sym, tgt)
			})
		}
	}

	return out, pairs
}

// Intersect is Product specialised to intersection (final = And).
func Intersect(l, r *automaton.Nfa, firstEpsilon automaton.Symbol) (*automaton.Nfa, map[automaton.State]ProductPair) {
	return Product(l, r, firstEpsilon, And)
}
