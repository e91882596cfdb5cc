package sparseset

import "testing"

func TestSparseSetBasic(t *testing.T) {
	s := New()
	if !s.IsEmpty() {
		t.Error("new set should be empty")
	}
	if s.Contains(0) {
		t.Error("empty set should not contain 0")
	}

	s.Insert(5)
	if !s.Contains(5) {
		t.Error("set should contain 5 after insert")
	}
	s.Insert(5)
	if s.Size() != 1 {
		t.Errorf("duplicate insert should be a no-op, got size %d", s.Size())
	}

	s.Insert(10)
	s.Insert(3)
	if s.Size() != 3 {
		t.Errorf("size should be 3, got %d", s.Size())
	}

	s.Clear()
	if !s.IsEmpty() || s.Contains(5) {
		t.Error("cleared set should be empty and not contain old members")
	}
}

func TestSparseSetErase(t *testing.T) {
	s := New()
	s.Insert(1)
	s.Insert(2)
	s.Insert(3)

	s.Erase(2)
	if s.Contains(2) {
		t.Error("set should not contain 2 after erase")
	}
	if s.Size() != 2 {
		t.Errorf("size should be 2 after erase, got %d", s.Size())
	}
	if !s.Contains(1) || !s.Contains(3) {
		t.Error("set should still contain 1 and 3")
	}

	s.Erase(2) // idempotent
	if s.Size() != 2 {
		t.Error("erasing an absent element should be a no-op")
	}
}

func TestSparseSetSortedValues(t *testing.T) {
	s := New()
	for _, v := range []uint32{5, 2, 8, 1, 9} {
		s.Insert(v)
	}
	got := s.SortedValues()
	want := []uint32{1, 2, 5, 8, 9}
	if len(got) != len(want) {
		t.Fatalf("expected %d values, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("at index %d: expected %d, got %d", i, want[i], got[i])
		}
	}
}

func TestSparseSetComplement(t *testing.T) {
	s := New()
	s.Insert(1)
	s.Insert(3)
	s.Complement(5)

	for v := uint32(0); v < 5; v++ {
		want := v == 0 || v == 2 || v == 4
		if s.Contains(v) != want {
			t.Errorf("complement membership of %d: got %v, want %v", v, s.Contains(v), want)
		}
	}
	if s.Size() != 3 {
		t.Errorf("expected 3 members after complement, got %d", s.Size())
	}
}

func TestSparseSetFilter(t *testing.T) {
	s := New()
	for v := uint32(0); v < 10; v++ {
		s.Insert(v)
	}
	s.Filter(func(x uint32) bool { return x%2 == 0 })
	if s.Size() != 5 {
		t.Errorf("expected 5 even members, got %d", s.Size())
	}
	for v := uint32(0); v < 10; v++ {
		if s.Contains(v) != (v%2 == 0) {
			t.Errorf("membership of %d after filter: got %v", v, s.Contains(v))
		}
	}
}

func TestSparseSetRename(t *testing.T) {
	s := New()
	s.Insert(1)
	s.Insert(2)
	s.Insert(3)
	s.Rename(func(x uint32) uint32 { return x * 10 })

	for _, v := range []uint32{10, 20, 30} {
		if !s.Contains(v) {
			t.Errorf("expected renamed set to contain %d", v)
		}
	}
	if s.Contains(1) || s.Contains(2) || s.Contains(3) {
		t.Error("renamed set should not contain the pre-rename values")
	}
}

func TestSparseSetClone(t *testing.T) {
	s := New()
	s.Insert(1)
	s.Insert(2)

	clone := s.Clone()
	if clone.Size() != s.Size() {
		t.Error("clone should have same size")
	}
	clone.Insert(99)
	if s.Contains(99) {
		t.Error("modifying clone should not affect original")
	}
}

func TestSparseSetGrowsDomainOnInsert(t *testing.T) {
	s := New()
	s.Insert(1000)
	if s.Domain() < 1001 {
		t.Errorf("expected domain to grow to cover 1000, got %d", s.Domain())
	}
	if !s.Contains(1000) {
		t.Error("expected set to contain 1000 after insert")
	}
}
