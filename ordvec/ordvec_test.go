package ordvec

import "testing"

func fromItems(items ...int) *Vector[int] {
	v := New[int](len(items))
	for _, x := range items {
		v.Insert(x)
	}
	return v
}

func assertItems(t *testing.T, v *Vector[int], want []int) {
	t.Helper()
	got := v.Items()
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestInsertKeepsSortedNoDuplicates(t *testing.T) {
	v := fromItems(5, 1, 3, 1, 5)
	assertItems(t, v, []int{1, 3, 5})
}

func TestEraseIsIdempotent(t *testing.T) {
	v := fromItems(1, 2, 3)
	v.Erase(2)
	assertItems(t, v, []int{1, 3})
	v.Erase(2)
	assertItems(t, v, []int{1, 3})
}

func TestFindAndContains(t *testing.T) {
	v := fromItems(2, 4, 6)
	if i, ok := v.Find(4); !ok || i != 1 {
		t.Errorf("Find(4) = (%d,%v), want (1,true)", i, ok)
	}
	if _, ok := v.Find(5); ok {
		t.Error("Find(5) should report absent")
	}
	if !v.Contains(6) || v.Contains(7) {
		t.Error("Contains disagrees with membership")
	}
}

func TestAppendBackRequiresReconcile(t *testing.T) {
	v := New[int](4)
	v.AppendBack(3)
	v.AppendBack(1)
	v.AppendBack(3)

	defer func() {
		if recover() == nil {
			t.Error("expected a panic querying a dirty vector before Reconcile")
		}
	}()
	v.Contains(1)
}

func TestReconcileSortsAndDedupes(t *testing.T) {
	v := New[int](4)
	v.AppendBack(3)
	v.AppendBack(1)
	v.AppendBack(3)
	v.AppendBack(2)
	v.Reconcile()
	assertItems(t, v, []int{1, 2, 3})
}

func TestUnionIntersectionDifference(t *testing.T) {
	a := fromItems(1, 2, 3)
	b := fromItems(2, 3, 4)

	assertItems(t, Union(a, b), []int{1, 2, 3, 4})
	assertItems(t, Intersection(a, b), []int{2, 3})
	assertItems(t, Difference(a, b), []int{1})
	assertItems(t, Difference(b, a), []int{4})
}

func TestIsSubsetOfAndAreDisjoint(t *testing.T) {
	a := fromItems(1, 2)
	b := fromItems(1, 2, 3)
	c := fromItems(4, 5)

	if !a.IsSubsetOf(b) {
		t.Error("{1,2} should be a subset of {1,2,3}")
	}
	if b.IsSubsetOf(a) {
		t.Error("{1,2,3} should not be a subset of {1,2}")
	}
	if !AreDisjoint(a, c) {
		t.Error("{1,2} and {4,5} should be disjoint")
	}
	if AreDisjoint(a, b) {
		t.Error("{1,2} and {1,2,3} should not be disjoint")
	}
}

func TestEqual(t *testing.T) {
	a := fromItems(1, 2, 3)
	b := fromItems(3, 2, 1)
	c := fromItems(1, 2)
	if !Equal(a, b) {
		t.Error("vectors with the same elements should be equal regardless of insertion order")
	}
	if Equal(a, c) {
		t.Error("vectors with different elements should not be equal")
	}
}

func TestRename(t *testing.T) {
	v := fromItems(1, 2, 3)
	v.Rename(func(x int) int { return x * 2 })
	assertItems(t, v, []int{2, 4, 6})
}

func TestCloneIsIndependent(t *testing.T) {
	v := fromItems(1, 2)
	clone := v.Clone()
	clone.Insert(3)
	assertItems(t, v, []int{1, 2})
	assertItems(t, clone, []int{1, 2, 3})
}

func TestFromSortedWrapsWithoutCopy(t *testing.T) {
	backing := []int{1, 2, 3}
	v := FromSorted(backing)
	if !v.Contains(2) {
		t.Error("FromSorted should expose the wrapped slice's elements")
	}
}
