package automaton

import "testing"

// buildEmptyLangScenario reproduces spec.md §8 scenario 1: two initial
// states, two final states, and exactly one accepting path spelling
// "ac" through states 2->4->8.
func buildEmptyLangScenario() *Nfa {
	n := NewSized(10, []State{1, 2}, []State{8, 9}, nil)
	n.Delta.Add(1, 'x', 3)
	n.Delta.Add(2, 'a', 4)
	n.Delta.Add(3, 'y', 6)
	n.Delta.Add(4, 'c', 8)
	n.Delta.Add(6, 'z', 7)
	return n
}

func TestIsLangEmptyFindsCounterExample(t *testing.T) {
	n := buildEmptyLangScenario()
	empty, word, path := n.IsLangEmpty()
	if empty {
		t.Fatal("expected a non-empty language")
	}
	if len(word) != 2 || word[0] != 'a' || word[1] != 'c' {
		t.Errorf("expected counter-example word \"ac\", got %v", word)
	}
	if len(path) != 3 || path[0] != 2 || path[1] != 4 || path[2] != 8 {
		t.Errorf("expected state path [2 4 8], got %v", path)
	}
}

func TestIsLangEmptyOnActuallyEmptyLanguage(t *testing.T) {
	n := NewSized(3, []State{0}, []State{2}, nil)
	n.Delta.Add(0, 'a', 1)
	empty, word, path := n.IsLangEmpty()
	if !empty || word != nil || path != nil {
		t.Errorf("expected an empty language with no counter-example, got empty=%v word=%v path=%v", empty, word, path)
	}
}

func TestGetReachableStates(t *testing.T) {
	n := buildEmptyLangScenario()
	reachable := n.GetReachableStates()
	want := map[State]bool{1: true, 2: true, 3: true, 4: true, 6: true, 7: true, 8: true}
	for s := State(0); int(s) < len(reachable); s++ {
		if reachable[s] != want[s] {
			t.Errorf("state %d: reachable=%v, want %v", s, reachable[s], want[s])
		}
	}
}

func TestGetUsefulStates(t *testing.T) {
	n := buildEmptyLangScenario()
	useful := n.GetUsefulStates()
	want := map[State]bool{2: true, 4: true, 8: true}
	for s := State(0); int(s) < len(useful); s++ {
		if useful[s] != want[s] {
			t.Errorf("state %d: useful=%v, want %v", s, useful[s], want[s])
		}
	}
}

func TestIsAcyclicTrueForDag(t *testing.T) {
	n := buildAbc()
	if !n.IsAcyclic() {
		t.Error("a linear chain should be acyclic")
	}
}

func TestIsAcyclicFalseForCycle(t *testing.T) {
	n := NewSized(2, []State{0}, []State{1}, nil)
	n.Delta.Add(0, 'a', 1)
	n.Delta.Add(1, 'b', 0)
	if n.IsAcyclic() {
		t.Error("expected a cycle to be detected")
	}
}

func TestIsAcyclicFalseForSelfLoop(t *testing.T) {
	n := NewSized(1, []State{0}, []State{0}, nil)
	n.Delta.Add(0, 'a', 0)
	if n.IsAcyclic() {
		t.Error("expected a self-loop to count as a non-trivial SCC")
	}
}
