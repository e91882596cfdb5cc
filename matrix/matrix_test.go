package matrix

import "testing"

func backings(capacity int) map[string]Matrix[int] {
	return map[string]Matrix[int]{
		"Cascade": NewCascade[int](capacity),
		"DynRows": NewDynRows[int](),
		"Hashed":  NewHashed[int](),
	}
}

func TestExtendGetSetAcrossBackings(t *testing.T) {
	for name, m := range backings(5) {
		t.Run(name, func(t *testing.T) {
			for i := 0; i < 4; i++ {
				m.Extend(-1)
			}
			if m.Size() != 4 {
				t.Fatalf("%s: expected size 4, got %d", name, m.Size())
			}
			for i := 0; i < 4; i++ {
				for j := 0; j < 4; j++ {
					if got := m.Get(i, j); got != -1 {
						t.Errorf("%s: Get(%d,%d) = %d, want default -1", name, i, j, got)
					}
				}
			}
			m.Set(1, 2, 42)
			if got := m.Get(1, 2); got != 42 {
				t.Errorf("%s: Get(1,2) = %d, want 42", name, got)
			}
			if got := m.Get(2, 1); got != -1 {
				t.Errorf("%s: Set should not affect the transposed cell, got %d", name, got)
			}
		})
	}
}

func TestExtendGrowsPastPriorCells(t *testing.T) {
	for name, m := range backings(5) {
		t.Run(name, func(t *testing.T) {
			m.Extend(0)
			m.Set(0, 0, 7)
			m.Extend(0)
			if m.Size() != 2 {
				t.Fatalf("%s: expected size 2, got %d", name, m.Size())
			}
			if got := m.Get(0, 0); got != 7 {
				t.Errorf("%s: extending should preserve existing cells, got %d", name, got)
			}
			if got := m.Get(0, 1); got != 0 {
				t.Errorf("%s: new cells should hold the default, got %d", name, got)
			}
		})
	}
}

func TestIsReflexiveAntisymmetricTransitive(t *testing.T) {
	m := NewDynRows[bool]()
	for i := 0; i < 3; i++ {
		m.Extend(false)
	}
	for i := 0; i < 3; i++ {
		m.Set(i, i, true)
	}
	if !IsReflexive(m) {
		t.Error("expected reflexive relation")
	}
	if !IsAntisymmetric(m) {
		t.Error("identity relation should be antisymmetric")
	}
	if !IsTransitive(m) {
		t.Error("identity relation should be transitive")
	}

	m.Set(0, 1, true)
	if IsReflexive(m) != true {
		t.Error("adding an off-diagonal pair should not affect reflexivity")
	}

	m.Set(1, 0, true)
	if IsAntisymmetric(m) {
		t.Error("expected non-antisymmetric once both (0,1) and (1,0) hold")
	}

	m.Set(1, 2, true)
	if IsTransitive(m) {
		t.Error("expected non-transitive: (0,1) and (1,2) hold but not (0,2)")
	}
	m.Set(0, 2, true)
	if !IsTransitive(m) {
		t.Error("expected transitive once (0,2) is added to close the chain")
	}
}
