package automaton

import (
	"testing"

	"github.com/VeriFIT/mata-sub001/alphabet"
)

func buildAbc() *Nfa {
	n := NewSized(4, []State{0}, []State{3}, nil)
	n.Delta.Add(0, 'a', 1)
	n.Delta.Add(1, 'b', 2)
	n.Delta.Add(2, 'c', 3)
	return n
}

func TestIsInLang(t *testing.T) {
	n := buildAbc()
	if !n.IsInLang([]Symbol{'a', 'b', 'c'}) {
		t.Error("expected \"abc\" to be accepted")
	}
	if n.IsInLang([]Symbol{'a', 'b'}) {
		t.Error("did not expect the proper prefix \"ab\" to be accepted")
	}
	if n.IsInLang([]Symbol{'a', 'b', 'c', 'd'}) {
		t.Error("did not expect a word with a trailing unmatched symbol to be accepted")
	}
	if n.IsInLang(nil) {
		t.Error("did not expect the empty word to be accepted")
	}
}

func TestIsPrfxInLang(t *testing.T) {
	n := buildAbc()
	if !n.IsPrfxInLang([]Symbol{'a', 'b', 'c', 'd', 'e'}) {
		t.Error("expected a word with an accepted prefix to report true")
	}
	if n.IsPrfxInLang([]Symbol{'a', 'b'}) {
		t.Error("did not expect a proper non-accepting prefix alone to report true")
	}
}

func buildTwoShortestWords() *Nfa {
	// Two disjoint chains of equal length ending in distinct final
	// states, so both shortest words survive the BFS's per-state
	// shortest-path dedup.
	n := NewSized(5, []State{0}, []State{2, 4}, nil)
	n.Delta.Add(0, 'a', 1)
	n.Delta.Add(1, 'b', 2)
	n.Delta.Add(0, 'c', 3)
	n.Delta.Add(3, 'd', 4)
	return n
}

func TestGetShortestWords(t *testing.T) {
	n := buildTwoShortestWords()
	got := n.GetShortestWords()
	if len(got) != 2 {
		t.Fatalf("expected 2 shortest words of length 2, got %d: %v", len(got), got)
	}
	seen := map[string]bool{}
	for _, w := range got {
		if len(w) != 2 {
			t.Errorf("expected every shortest word to have length 2, got %v", w)
		}
		seen[string([]byte{byte(w[0]), byte(w[1])})] = true
	}
	if !seen["ab"] || !seen["cd"] {
		t.Errorf("expected {ab,cd}, got %v", seen)
	}
}

func TestGetWordsBoundedByMaxLen(t *testing.T) {
	n := buildAbc()
	words := n.GetWords(2)
	if len(words) != 0 {
		t.Errorf("expected no accepted word within length 2, got %v", words)
	}
	words = n.GetWords(3)
	if len(words) != 1 || len(words[0]) != 3 {
		t.Fatalf("expected exactly the length-3 word \"abc\", got %v", words)
	}
}

func TestGetWordsSkipsEpsilonHops(t *testing.T) {
	n := NewSized(3, []State{0}, []State{2}, nil)
	n.Delta.Add(0, alphabet.Epsilon, 1)
	n.Delta.Add(1, 'a', 2)

	words := n.GetWords(5)
	if len(words) != 1 || len(words[0]) != 1 || words[0][0] != 'a' {
		t.Fatalf("expected the single word \"a\" with the epsilon hop consuming no symbol, got %v", words)
	}
}

// TestGetWordsTerminatesOnEpsilonCycle reproduces the shape
// regexfront.CreateNfa("(a*)*", true, ...) produces: a pure epsilon
// cycle (0->1->0) that consumes no symbol, plus a direct epsilon exit
// to the final state. Without a visited-state guard, walk would
// recurse around the cycle forever since word never grows.
func TestGetWordsTerminatesOnEpsilonCycle(t *testing.T) {
	n := NewSized(3, []State{0}, []State{2}, nil)
	n.Delta.Add(0, alphabet.Epsilon, 1)
	n.Delta.Add(1, alphabet.Epsilon, 0)
	n.Delta.Add(0, alphabet.Epsilon, 2)

	words := n.GetWords(3)
	if len(words) != 1 || len(words[0]) != 0 {
		t.Fatalf("expected only the empty word via the direct epsilon path to the final state, got %v", words)
	}
}
