// Package algorithms implements the automaton-level algorithm suite of
// spec.md §4.7: determinization, Brzozowski minimization, revert,
// epsilon removal, product/intersection, concatenation, union,
// complement, simulation-based reduction, and antichain-based
// inclusion/universality/equivalence. Every entry point consumes and
// produces *automaton.Nfa values; none of them mutate their inputs.
package algorithms

import (
	"sort"
	"strconv"
	"strings"

	"github.com/VeriFIT/mata-sub001/automaton"
)

// macroKey builds a canonical string key for a set of NFA states, used
// to dedupe macro-states during determinization, product construction
// and antichain search. Grounded on the teacher's dfa/lazy state-cache
// design (sort the member states, then hash them); this module uses
// the sorted textual form itself as the map key rather than an FNV
// digest, trading a few bytes of key size for zero collision risk.
func macroKey(states []automaton.State) string {
	sorted := append([]automaton.State(nil), states...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	var b strings.Builder
	for i, s := range sorted {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.FormatUint(uint64(s), 10))
	}
	return b.String()
}

// pairKey builds a canonical key for a (State,State) product pair.
func pairKey(l, r automaton.State) uint64 {
	return uint64(l)<<32 | uint64(r)
}
