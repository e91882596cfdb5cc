package automaton

import "github.com/VeriFIT/mata-sub001/alphabet"

// Level identifies a state's position in the transducer's level
// stratification (spec.md §4.7): level 0 states read input symbols,
// level i>0 states read the i-th output tape's symbols, and
// LevelsCnt is the total number of tapes plus one.
type Level = uint32

// Lvlfa is an Nfa augmented with a per-state level assignment, used to
// encode a length-preserving multi-tape transducer as a single
// automaton whose transitions alternate tapes by level.
type Lvlfa struct {
	*Nfa
	Levels    []Level
	LevelsCnt uint32
}

// NewLvlfa returns an empty LVLFA with levelsCnt tapes-plus-one.
func NewLvlfa(levelsCnt uint32) *Lvlfa {
	return &Lvlfa{Nfa: New(), LevelsCnt: levelsCnt}
}

// NewLvlfaSized mirrors NewSized, additionally seeding every
// materialised state's level to 0.
func NewLvlfaSized(n int, initial, final []State, alph alphabet.Alphabet, levelsCnt uint32) *Lvlfa {
	return &Lvlfa{
		Nfa:       NewSized(n, initial, final, alph),
		Levels:    make([]Level, n),
		LevelsCnt: levelsCnt,
	}
}

// syncLevels grows Levels to match the underlying Nfa's state count,
// zero-filling any newly exposed entries. Every Lvlfa method that can
// grow the state count calls this before touching Levels.
func (l *Lvlfa) syncLevels() {
	n := l.NumOfStates()
	if len(l.Levels) >= n {
		return
	}
	grown := make([]Level, n)
	copy(grown, l.Levels)
	l.Levels = grown
}

// AddState allocates a fresh state at level 0 and returns it.
func (l *Lvlfa) AddState() State {
	q := l.Nfa.AddState()
	l.syncLevels()
	return q
}

// AddStateAtLevel allocates a fresh state (or widens to include an
// existing id) and assigns it lvl.
func (l *Lvlfa) AddStateAtLevel(q State, lvl Level) {
	l.Nfa.AddStateAt(q)
	l.syncLevels()
	l.Levels[q] = lvl
}

// LevelOf returns the level of state q, or 0 if q has never been
// assigned one explicitly.
func (l *Lvlfa) LevelOf(q State) Level {
	if int(q) >= len(l.Levels) {
		return 0
	}
	return l.Levels[q]
}

// Clone returns a deep copy, including the level vector.
func (l *Lvlfa) Clone() *Lvlfa {
	levels := make([]Level, len(l.Levels))
	copy(levels, l.Levels)
	return &Lvlfa{Nfa: l.Nfa.Clone(), Levels: levels, LevelsCnt: l.LevelsCnt}
}

// Trim compacts the LVLFA the same way Nfa.Trim does, additionally
// compacting Levels through the same renaming so indices stay aligned
// with NumOfStates.
func (l *Lvlfa) Trim() []State {
	renaming := l.Nfa.Trim()
	newLevels := make([]Level, l.NumOfStates())
	for old, lvl := range l.Levels {
		nw := renaming[old]
		if nw != DroppedState {
			newLevels[nw] = lvl
		}
	}
	l.Levels = newLevels
	return renaming
}

// UnifyInitial delegates to Nfa.UnifyInitial, then assigns the fresh
// unified state level 0.
func (l *Lvlfa) UnifyInitial() {
	before := l.NumOfStates()
	l.Nfa.UnifyInitial()
	l.syncLevels()
	if l.NumOfStates() > before {
		l.Levels[l.NumOfStates()-1] = 0
	}
}

// UnifyFinal delegates to Nfa.UnifyFinal, then assigns the fresh
// unified state the level of any one of the states it replaced (they
// are required by construction to share a level, since only same-level
// states may be simultaneously final in a well-formed LVLFA).
func (l *Lvlfa) UnifyFinal() {
	var anyOldFinal Level
	haveLevel := false
	l.Final.ForEach(func(s State) {
		if !haveLevel {
			anyOldFinal = l.LevelOf(s)
			haveLevel = true
		}
	})
	before := l.NumOfStates()
	l.Nfa.UnifyFinal()
	l.syncLevels()
	if l.NumOfStates() > before {
		l.Levels[l.NumOfStates()-1] = anyOldFinal
	}
}
