// Package delta implements the transition relation of spec.md §4.5:
// for each source state, an ordered list of (symbol, target-set)
// entries, laid out arena-style (all state-posts in one slice, each
// owning its own symbol-posts) per spec.md §9's "ownership of nested
// ordered sets" note. Reading delta[q] for q beyond the materialised
// range never grows the structure; obtaining a mutable handle does.
package delta

import (
	"sort"

	"github.com/VeriFIT/mata-sub001/alphabet"
	"github.com/VeriFIT/mata-sub001/materr"
	"github.com/VeriFIT/mata-sub001/ordvec"
)

// State identifies an automaton state.
type State = uint32

// Symbol identifies a transition label. alphabet.Epsilon is reserved.
type Symbol = alphabet.Symbol

// SymbolPost pairs one symbol with its ordered set of target states.
type SymbolPost struct {
	Symbol  Symbol
	Targets *ordvec.Vector[State]
}

// StatePost is the ordered sequence of symbol-posts for one source
// state: symbols strictly ascending, with EPSILON (if present) last.
type StatePost struct {
	posts []SymbolPost
}

// Len returns the number of distinct symbols leaving this state.
func (sp *StatePost) Len() int { return len(sp.posts) }

// find returns the index of sym's symbol-post and whether it exists,
// respecting the "epsilon sorts last" ordering: every ordinary symbol
// compares by value, but alphabet.Epsilon is treated as +infinity.
func (sp *StatePost) find(sym Symbol) (int, bool) {
	i := sort.Search(len(sp.posts), func(i int) bool { return sp.posts[i].Symbol >= sym })
	if i < len(sp.posts) && sp.posts[i].Symbol == sym {
		return i, true
	}
	return i, false
}

// Find returns the symbol-post for sym, or nil if absent.
func (sp *StatePost) Find(sym Symbol) *SymbolPost {
	i, ok := sp.find(sym)
	if !ok {
		return nil
	}
	return &sp.posts[i]
}

// insertAt inserts post at index i. Since alphabet.Epsilon is the
// maximum uint32 value, plain ascending order already places an
// epsilon symbol-post last.
func (sp *StatePost) insertAt(i int, post SymbolPost) {
	sp.posts = append(sp.posts, SymbolPost{})
	copy(sp.posts[i+1:], sp.posts[i:])
	sp.posts[i] = post
}

// EpsilonMoves returns the symbol-post for alphabet.Epsilon, if any.
func (sp *StatePost) EpsilonMoves() *SymbolPost { return sp.Find(alphabet.Epsilon) }

// AlphabetSymbolMoves returns every symbol-post except the epsilon one.
func (sp *StatePost) AlphabetSymbolMoves() []SymbolPost {
	if len(sp.posts) > 0 && sp.posts[len(sp.posts)-1].Symbol == alphabet.Epsilon {
		return sp.posts[:len(sp.posts)-1]
	}
	return sp.posts
}

// MovesSymbols returns the symbol-posts strictly below upper.
func (sp *StatePost) MovesSymbols(upper Symbol) []SymbolPost {
	i := sort.Search(len(sp.posts), func(i int) bool { return sp.posts[i].Symbol >= upper })
	return sp.posts[:i]
}

// Moves returns every (symbol,target) pair in lexicographic order.
func (sp *StatePost) Moves() []Move {
	var out []Move
	for _, post := range sp.posts {
		post.Targets.ForEach(func(t State) {
			out = append(out, Move{Symbol: post.Symbol, Target: t})
		})
	}
	return out
}

// MovesRange returns the (symbol,target) pairs for symbol-posts in
// [begin,end) of this state-post's symbol-post index range.
func (sp *StatePost) MovesRange(begin, end int) []Move {
	var out []Move
	for _, post := range sp.posts[begin:end] {
		post.Targets.ForEach(func(t State) {
			out = append(out, Move{Symbol: post.Symbol, Target: t})
		})
	}
	return out
}

// Move is one (symbol,target) pair.
type Move struct {
	Symbol Symbol
	Target State
}

// Transition is one (source,symbol,target) triple.
type Transition struct {
	Source, Target State
	Symbol         Symbol
}

// Delta is the transition relation, indexed by source state.
type Delta struct {
	posts []StatePost
}

// New returns an empty delta.
func New() *Delta { return &Delta{} }

// NumOfStates returns the number of materialised state-posts. Reading
// a state beyond this never changes it.
func (d *Delta) NumOfStates() int { return len(d.posts) }

// StatePost returns a read-only view of state q's state-post. For
// q >= NumOfStates, returns an empty state-post without growing delta.
func (d *Delta) StatePost(q State) *StatePost {
	if int(q) >= len(d.posts) {
		return &StatePost{}
	}
	return &d.posts[q]
}

// MutableStatePost returns a mutable handle to state q's state-post,
// growing delta to at least q+1 states if necessary. Per spec.md §5,
// obtaining this handle invalidates any outstanding iterator over
// delta; the read-only StatePost accessor never does.
func (d *Delta) MutableStatePost(q State) *StatePost {
	if int(q) >= len(d.posts) {
		grown := make([]StatePost, q+1)
		copy(grown, d.posts)
		d.posts = grown
	}
	return &d.posts[q]
}

// Add inserts (src,sym,tgt), growing delta to cover both src and tgt.
// Idempotent.
func (d *Delta) Add(src State, sym Symbol, tgt State) {
	if int(tgt) >= len(d.posts) {
		d.MutableStatePost(tgt)
	}
	sp := d.MutableStatePost(src)
	i, ok := sp.find(sym)
	if !ok {
		sp.insertAt(i, SymbolPost{Symbol: sym, Targets: ordvec.New[State](1)})
	}
	sp.posts[i].Targets.Insert(tgt)
}

// AddTargets unions tgts into the (src,sym) symbol-post.
func (d *Delta) AddTargets(src State, sym Symbol, tgts *ordvec.Vector[State]) {
	sp := d.MutableStatePost(src)
	i, ok := sp.find(sym)
	if !ok {
		sp.insertAt(i, SymbolPost{Symbol: sym, Targets: ordvec.New[State](tgts.Len())})
	}
	sp.posts[i].Targets = ordvec.Union(sp.posts[i].Targets, tgts)
}

// Contains reports whether (src,sym,tgt) exists.
func (d *Delta) Contains(src State, sym Symbol, tgt State) bool {
	sp := d.StatePost(src)
	post := sp.Find(sym)
	if post == nil {
		return false
	}
	return post.Targets.Contains(tgt)
}

// Remove deletes (src,sym,tgt). Fails if src is within the
// materialised range but the triple is absent.
func (d *Delta) Remove(src State, sym Symbol, tgt State) error {
	if int(src) >= len(d.posts) {
		return &materr.StateError{State: uint64(src), Msg: "remove: source state out of range"}
	}
	sp := &d.posts[src]
	i, ok := sp.find(sym)
	if !ok || !sp.posts[i].Targets.Contains(tgt) {
		return &materr.StateError{State: uint64(src), Msg: "remove: transition does not exist"}
	}
	sp.posts[i].Targets.Erase(tgt)
	if sp.posts[i].Targets.IsEmpty() {
		sp.posts = append(sp.posts[:i], sp.posts[i+1:]...)
	}
	return nil
}

// NumOfTransitions returns the total (source,symbol,target) count.
func (d *Delta) NumOfTransitions() int {
	n := 0
	for _, sp := range d.posts {
		for _, post := range sp.posts {
			n += post.Targets.Len()
		}
	}
	return n
}

// Defragment drops state-posts of states where keep[q] is false and
// rewrites every remaining target state through renaming.
func (d *Delta) Defragment(keep []bool, renaming []State) {
	newPosts := make([]StatePost, 0, len(d.posts))
	for q, sp := range d.posts {
		if q < len(keep) && !keep[q] {
			continue
		}
		newSP := StatePost{posts: make([]SymbolPost, 0, len(sp.posts))}
		for _, post := range sp.posts {
			renamed := ordvec.New[State](post.Targets.Len())
			post.Targets.ForEach(func(t State) {
				renamed.Insert(renaming[t])
			})
			newSP.posts = append(newSP.posts, SymbolPost{Symbol: post.Symbol, Targets: renamed})
		}
		newPosts = append(newPosts, newSP)
	}
	d.posts = newPosts
}

// Clone returns a deep copy.
func (d *Delta) Clone() *Delta {
	out := &Delta{posts: make([]StatePost, len(d.posts))}
	for q, sp := range d.posts {
		newSP := StatePost{posts: make([]SymbolPost, len(sp.posts))}
		for i, post := range sp.posts {
			newSP.posts[i] = SymbolPost{Symbol: post.Symbol, Targets: post.Targets.Clone()}
		}
		out.posts[q] = newSP
	}
	return out
}
