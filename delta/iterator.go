package delta

// TransitionIter walks every (source,symbol,target) triple in
// source-major, symbol-major, target-major order. Any mutation that
// grows delta (MutableStatePost) invalidates an outstanding iterator;
// read-only access does not.
type TransitionIter struct {
	d        *Delta
	src      int
	symIdx   int
	tgtIdx   int
	targets  []State
}

// Transitions returns an iterator positioned at the very first
// transition.
func (d *Delta) Transitions() *TransitionIter {
	return newTransitionIterFrom(d, 0)
}

// TransitionsFrom returns an iterator positioned at the first
// transition whose source is >= q0, so callers can resume a previous
// scan.
func (d *Delta) TransitionsFrom(q0 State) *TransitionIter {
	return newTransitionIterFrom(d, int(q0))
}

func newTransitionIterFrom(d *Delta, src int) *TransitionIter {
	it := &TransitionIter{d: d, src: src}
	it.advanceToValid()
	return it
}

// advanceToValid moves src/symIdx/tgtIdx forward until they point at
// an existing transition, or src reaches len(d.posts).
func (it *TransitionIter) advanceToValid() {
	for it.src < len(it.d.posts) {
		sp := &it.d.posts[it.src]
		for it.symIdx < len(sp.posts) {
			targets := sp.posts[it.symIdx].Targets.Items()
			if it.tgtIdx < len(targets) {
				it.targets = targets
				return
			}
			it.symIdx++
			it.tgtIdx = 0
		}
		it.src++
		it.symIdx = 0
		it.tgtIdx = 0
	}
	it.targets = nil
}

// Next returns the next transition and true, or the zero Transition
// and false when exhausted.
func (it *TransitionIter) Next() (Transition, bool) {
	if it.src >= len(it.d.posts) {
		return Transition{}, false
	}
	sp := &it.d.posts[it.src]
	t := Transition{
		Source: State(it.src),
		Symbol: sp.posts[it.symIdx].Symbol,
		Target: it.targets[it.tgtIdx],
	}
	it.tgtIdx++
	it.advanceToValid()
	return t, true
}

// All drains the iterator into a slice, convenience for tests and
// small automata.
func (it *TransitionIter) All() []Transition {
	var out []Transition
	for {
		t, ok := it.Next()
		if !ok {
			return out
		}
		out = append(out, t)
	}
}
