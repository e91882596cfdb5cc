package automaton

import "testing"

func TestNewSizedSeedsInitialFinal(t *testing.T) {
	n := NewSized(3, []State{0}, []State{2}, nil)
	if n.NumOfStates() != 3 {
		t.Fatalf("expected 3 states, got %d", n.NumOfStates())
	}
	if !n.Initial.Contains(0) || n.Initial.Size() != 1 {
		t.Error("unexpected initial set")
	}
	if !n.Final.Contains(2) || n.Final.Size() != 1 {
		t.Error("unexpected final set")
	}
}

func TestAddStateAllocatesSequentially(t *testing.T) {
	n := New()
	a := n.AddState()
	b := n.AddState()
	if a != 0 || b != 1 {
		t.Errorf("expected sequential ids 0,1, got %d,%d", a, b)
	}
	if n.NumOfStates() != 2 {
		t.Errorf("expected 2 states, got %d", n.NumOfStates())
	}
}

func TestAddStateAtWidensDelta(t *testing.T) {
	n := New()
	n.AddStateAt(4)
	if n.NumOfStates() != 5 {
		t.Errorf("expected 5 states after AddStateAt(4), got %d", n.NumOfStates())
	}
}

func TestClear(t *testing.T) {
	n := NewSized(2, []State{0}, []State{1}, nil)
	n.Delta.Add(0, 'a', 1)
	n.Clear()
	if n.NumOfStates() != 0 || n.Initial.Size() != 0 || n.Final.Size() != 0 {
		t.Error("expected a cleared automaton to be empty")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	n := NewSized(2, []State{0}, []State{1}, nil)
	n.Delta.Add(0, 'a', 1)

	clone := n.Clone()
	clone.Delta.Add(0, 'b', 1)
	clone.Final.Insert(0)

	if n.Delta.Contains(0, 'b', 1) {
		t.Error("modifying the clone's delta should not affect the original")
	}
	if n.Final.Contains(0) {
		t.Error("modifying the clone's final set should not affect the original")
	}
}
