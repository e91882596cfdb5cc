package automaton

import "testing"

func buildLevelChain() *Lvlfa {
	l := NewLvlfaSized(3, []State{0}, []State{2}, nil, 3)
	l.Levels[0] = 0
	l.Levels[1] = 1
	l.Levels[2] = 2
	l.Delta.Add(0, 'a', 1)
	l.Delta.Add(1, 'b', 2)
	return l
}

func TestLevelOfDefaultsToZero(t *testing.T) {
	l := NewLvlfa(2)
	q := l.AddState()
	if l.LevelOf(q) != 0 {
		t.Errorf("expected a freshly added state's level to default to 0, got %d", l.LevelOf(q))
	}
}

func TestAddStateAtLevelAssignsLevel(t *testing.T) {
	l := NewLvlfa(3)
	l.AddStateAtLevel(5, 2)
	if l.NumOfStates() != 6 {
		t.Fatalf("expected AddStateAtLevel to widen to 6 states, got %d", l.NumOfStates())
	}
	if l.LevelOf(5) != 2 {
		t.Errorf("expected state 5 at level 2, got %d", l.LevelOf(5))
	}
}

func TestLvlfaCloneIsIndependent(t *testing.T) {
	l := buildLevelChain()
	clone := l.Clone()
	clone.Levels[0] = 9
	if l.Levels[0] == 9 {
		t.Error("modifying the clone's levels should not affect the original")
	}
}

func TestLvlfaTrimKeepsLevelsAligned(t *testing.T) {
	l := NewLvlfaSized(4, []State{0}, []State{2}, nil, 3)
	l.Levels[0] = 0
	l.Levels[1] = 1
	l.Levels[2] = 2
	l.Levels[3] = 9 // unreachable, should be dropped
	l.Delta.Add(0, 'a', 1)
	l.Delta.Add(1, 'b', 2)

	l.Trim()
	if l.NumOfStates() != 3 {
		t.Fatalf("expected 3 surviving states, got %d", l.NumOfStates())
	}
	if len(l.Levels) != l.NumOfStates() {
		t.Fatalf("Levels length %d should track NumOfStates %d", len(l.Levels), l.NumOfStates())
	}
	for q := 0; q < l.NumOfStates(); q++ {
		if l.Levels[q] != Level(q) {
			t.Errorf("expected state %d to keep level %d after trim, got %d", q, q, l.Levels[q])
		}
	}
}

func TestLvlfaUnifyInitialAssignsLevelZero(t *testing.T) {
	l := NewLvlfaSized(3, []State{0, 1}, []State{2}, nil, 2)
	l.Levels[0] = 0
	l.Levels[1] = 0
	l.Delta.Add(0, 'a', 2)
	l.Delta.Add(1, 'b', 2)

	l.UnifyInitial()
	if l.Initial.Size() != 1 {
		t.Fatalf("expected a single unified initial state, got %d", l.Initial.Size())
	}
	fresh := l.Initial.SortedValues()[0]
	if l.LevelOf(fresh) != 0 {
		t.Errorf("expected the unified initial state at level 0, got %d", l.LevelOf(fresh))
	}
}

func TestLvlfaUnifyFinalInheritsLevel(t *testing.T) {
	l := NewLvlfaSized(3, []State{0}, []State{1, 2}, nil, 2)
	l.Levels[1] = 1
	l.Levels[2] = 1
	l.Delta.Add(0, 'a', 1)
	l.Delta.Add(0, 'b', 2)

	l.UnifyFinal()
	if l.Final.Size() != 1 {
		t.Fatalf("expected a single unified final state, got %d", l.Final.Size())
	}
	fresh := l.Final.SortedValues()[0]
	if l.LevelOf(fresh) != 1 {
		t.Errorf("expected the unified final state to inherit level 1, got %d", l.LevelOf(fresh))
	}
}
