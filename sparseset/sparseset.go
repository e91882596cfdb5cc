// Package sparseset provides a dense-plus-sparse integer set with O(1)
// insert/erase/contains, per spec.md §4.2. It is grounded on the
// teacher's internal/sparse package (used there to track visited NFA
// states during search), extended here with a growable domain,
// complement, filter, rename and truncate, since the automaton core
// uses sparse sets for initial/final state sets rather than a
// fixed-capacity visited bitmap.
package sparseset

// SparseSet is a set of non-negative integers supporting O(1)
// insertion, erasure and membership testing, plus O(size) iteration.
//
// Invariant: for every x in the set, sparse[x] < size and
// dense[sparse[x]] == x. The domain (len of sparse/dense backing) is
// always at least size and grows on demand.
type SparseSet struct {
	sparse []uint32
	dense  []uint32
	size   uint32
}

// New creates an empty sparse set with no reserved domain.
func New() *SparseSet {
	return &SparseSet{}
}

// WithDomain creates an empty sparse set with a reserved domain of
// [0, domain).
func WithDomain(domain uint32) *SparseSet {
	return &SparseSet{sparse: make([]uint32, domain), dense: make([]uint32, 0, domain)}
}

func (s *SparseSet) growDomain(atLeast uint32) {
	if uint32(len(s.sparse)) >= atLeast {
		return
	}
	grown := make([]uint32, atLeast)
	copy(grown, s.sparse)
	s.sparse = grown
}

// Domain returns the current upper bound on storable values (exclusive).
func (s *SparseSet) Domain() uint32 { return uint32(len(s.sparse)) }

// Size returns the number of elements.
func (s *SparseSet) Size() int { return int(s.size) }

// IsEmpty reports whether the set has no elements.
func (s *SparseSet) IsEmpty() bool { return s.size == 0 }

// Contains reports whether x is a member.
func (s *SparseSet) Contains(x uint32) bool {
	if x >= uint32(len(s.sparse)) {
		return false
	}
	idx := s.sparse[x]
	return idx < s.size && s.dense[idx] == x
}

// Insert adds x, growing the domain to x+1 if needed. Idempotent.
func (s *SparseSet) Insert(x uint32) {
	if s.Contains(x) {
		return
	}
	s.growDomain(x + 1)
	s.dense = append(s.dense, x)
	s.sparse[x] = s.size
	s.size++
}

// Erase removes x in O(1) by swapping with the last dense element.
// Idempotent.
func (s *SparseSet) Erase(x uint32) {
	if !s.Contains(x) {
		return
	}
	idx := s.sparse[x]
	last := s.dense[s.size-1]
	s.dense[idx] = last
	s.sparse[last] = idx
	s.size--
	s.dense = s.dense[:s.size]
}

// Clear empties the set in O(1), keeping the reserved domain.
func (s *SparseSet) Clear() {
	s.size = 0
	s.dense = s.dense[:0]
}

// Values returns the elements in unspecified order. Valid until the
// next mutation.
func (s *SparseSet) Values() []uint32 {
	return s.dense[:s.size]
}

// SortedValues returns a newly allocated, ascending copy of the
// elements — the automaton layer needs this for deterministic
// iteration (e.g. producing a macro-state key).
func (s *SparseSet) SortedValues() []uint32 {
	out := make([]uint32, s.size)
	copy(out, s.dense[:s.size])
	insertionSort(out)
	return out
}

func insertionSort(a []uint32) {
	for i := 1; i < len(a); i++ {
		v := a[i]
		j := i - 1
		for j >= 0 && a[j] > v {
			a[j+1] = a[j]
			j--
		}
		a[j+1] = v
	}
}

// ForEach calls f for every element, in unspecified order.
func (s *SparseSet) ForEach(f func(uint32)) {
	for i := uint32(0); i < s.size; i++ {
		f(s.dense[i])
	}
}

// Complement toggles membership of every value in [0, newDomain) and
// drops any value >= newDomain.
func (s *SparseSet) Complement(newDomain uint32) {
	wasMember := make([]bool, newDomain)
	for i := uint32(0); i < s.size; i++ {
		v := s.dense[i]
		if v < newDomain {
			wasMember[v] = true
		}
	}
	s.Clear()
	s.growDomain(newDomain)
	for v := uint32(0); v < newDomain; v++ {
		if !wasMember[v] {
			s.Insert(v)
		}
	}
}

// Filter keeps only the elements for which pred returns true.
func (s *SparseSet) Filter(pred func(uint32) bool) {
	kept := make([]uint32, 0, s.size)
	for i := uint32(0); i < s.size; i++ {
		if pred(s.dense[i]) {
			kept = append(kept, s.dense[i])
		}
	}
	s.Clear()
	for _, v := range kept {
		s.Insert(v)
	}
}

// Rename applies f to every element and rebuilds the set, as used by
// defragment to push states through an old->new renaming.
func (s *SparseSet) Rename(f func(uint32) uint32) {
	old := s.SortedValues()
	s.Clear()
	for _, v := range old {
		s.Insert(f(v))
	}
}

// Truncate reduces the stated domain to max+1, where max is the
// largest member (or 0 if empty).
func (s *SparseSet) Truncate() {
	var max uint32
	for i := uint32(0); i < s.size; i++ {
		if s.dense[i] > max {
			max = s.dense[i]
		}
	}
	newDomain := max + 1
	if uint32(len(s.sparse)) <= newDomain {
		return
	}
	s.sparse = s.sparse[:newDomain]
}

// Clone returns a deep copy.
func (s *SparseSet) Clone() *SparseSet {
	out := &SparseSet{
		sparse: make([]uint32, len(s.sparse)),
		dense:  make([]uint32, len(s.dense)),
		size:   s.size,
	}
	copy(out.sparse, s.sparse)
	copy(out.dense, s.dense)
	return out
}
