package matrix

// hashedKey is the map key for Hashed: spec.md §4.4 describes the key
// as "i*cap+j", which only stays injective if cap is fixed at
// construction. Since Hashed grows unboundedly (unlike Cascade, which
// takes a fixed capacity), a struct key is used instead so Extend
// never needs to rehash the table.
type hashedKey struct{ i, j int }

// Hashed stores an N×N matrix as a map keyed by (i,j), trading dense
// memory for sparsity when most cells hold the default value (as is
// common for e.g. a simulation relation before it converges).
type Hashed[T any] struct {
	cells map[hashedKey]T
	n     int
}

// NewHashed allocates an empty Hashed matrix.
func NewHashed[T any]() *Hashed[T] {
	return &Hashed[T]{cells: make(map[hashedKey]T)}
}

// Size returns n.
func (h *Hashed[T]) Size() int { return h.n }

// Get returns the value at (i,j), or the zero value of T if never set.
func (h *Hashed[T]) Get(i, j int) T {
	checkBounds(i, j, h.n)
	return h.cells[hashedKey{i, j}]
}

// Set assigns the value at (i,j).
func (h *Hashed[T]) Set(i, j int, v T) {
	checkBounds(i, j, h.n)
	h.cells[hashedKey{i, j}] = v
}

// Extend grows the matrix by one row and column, inserting def for
// every new cell in the new row and column.
func (h *Hashed[T]) Extend(def T) {
	h.n++
	for i := 0; i < h.n; i++ {
		h.cells[hashedKey{i, h.n - 1}] = def
		h.cells[hashedKey{h.n - 1, i}] = def
	}
}
