// Package fixtures loads the end-to-end automaton scenarios of
// spec.md §8 from a YAML file instead of Go literals, using
// github.com/goccy/go-yaml the way projectdiscovery/alterx loads its
// pattern configuration. It is test support only: nothing outside
// _test.go files in this module should import it.
package fixtures

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/VeriFIT/mata-sub001/alphabet"
	"github.com/VeriFIT/mata-sub001/automaton"
	"github.com/VeriFIT/mata-sub001/internal/conv"
)

// TransitionSpec is one "src sym tgt" line of a fixture, with sym
// given either as a one-byte string (its byte value is used) or as
// a bare integer.
type TransitionSpec struct {
	Src int    `yaml:"src"`
	Sym string `yaml:"sym"`
	Tgt int    `yaml:"tgt"`
}

// Scenario is one named automaton fixture: its states and
// transitions, plus words it must accept and reject.
type Scenario struct {
	Name        string           `yaml:"name"`
	Initial     []int            `yaml:"initial"`
	Final       []int            `yaml:"final"`
	Transitions []TransitionSpec `yaml:"transitions"`
	Accepts     []string         `yaml:"accepts"`
	Rejects     []string         `yaml:"rejects"`
}

// File is the top-level shape of a fixture YAML document: a named set
// of scenarios.
type File struct {
	Scenarios []Scenario `yaml:"scenarios"`
}

// Load reads and parses a fixture file at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("fixtures: %w", err)
	}
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("fixtures: parsing %s: %w", path, err)
	}
	return &f, nil
}

// Build materialises s as an *automaton.Nfa.
func (s *Scenario) Build() (*automaton.Nfa, error) {
	n := automaton.New()
	maxState := -1
	track := func(q int) {
		if q > maxState {
			maxState = q
		}
	}
	for _, q := range s.Initial {
		n.Initial.Insert(automaton.State(q))
		track(q)
	}
	for _, q := range s.Final {
		n.Final.Insert(automaton.State(q))
		track(q)
	}
	for _, t := range s.Transitions {
		sym, err := symbolOf(t.Sym)
		if err != nil {
			return nil, fmt.Errorf("fixtures: scenario %s: %w", s.Name, err)
		}
		n.Delta.Add(automaton.State(t.Src), sym, automaton.State(t.Tgt))
		track(t.Src)
		track(t.Tgt)
	}
	if maxState >= 0 {
		n.AddStateAt(automaton.State(maxState))
	}
	return n, nil
}

// AcceptWords and RejectWords render s's word lists as symbol slices,
// one byte per rune, for feeding to automaton.Nfa.IsInLang.
func (s *Scenario) AcceptWords() [][]automaton.Symbol { return wordsOf(s.Accepts) }
func (s *Scenario) RejectWords() [][]automaton.Symbol { return wordsOf(s.Rejects) }

func wordsOf(words []string) [][]automaton.Symbol {
	out := make([][]automaton.Symbol, len(words))
	for i, w := range words {
		syms := make([]automaton.Symbol, len(w))
		for j := 0; j < len(w); j++ {
			syms[j] = automaton.Symbol(w[j])
		}
		out[i] = syms
	}
	return out
}

func symbolOf(s string) (automaton.Symbol, error) {
	if len(s) == 1 {
		return automaton.Symbol(s[0]), nil
	}
	var v int
	if _, err := fmt.Sscanf(s, "%d", &v); err != nil {
		return 0, fmt.Errorf("malformed symbol %q", s)
	}
	sym := automaton.Symbol(conv.IntToUint32(v))
	if sym == alphabet.Epsilon {
		return 0, fmt.Errorf("symbol %q collides with the reserved epsilon value", s)
	}
	return sym, nil
}
