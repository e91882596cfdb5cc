package mataformat_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VeriFIT/mata-sub001/automaton"
	"github.com/VeriFIT/mata-sub001/mataformat"
)

func buildSample() *automaton.Nfa {
	n := automaton.NewSized(4, []automaton.State{0}, []automaton.State{3}, nil)
	n.Delta.Add(0, 'a', 1)
	n.Delta.Add(1, 'b', 2)
	n.Delta.Add(2, 'c', 3)
	return n
}

func TestRoundTripNfa(t *testing.T) {
	original := buildSample()

	var buf bytes.Buffer
	require.NoError(t, mataformat.WriteNfa(&buf, original))

	parsed, err := mataformat.ReadExplicit(&buf)
	require.NoError(t, err)
	assert.False(t, parsed.IsLvlfa)

	assert.Equal(t, original.NumOfStates(), parsed.Nfa.NumOfStates())
	assert.True(t, parsed.Nfa.IsInLang([]automaton.Symbol{'a', 'b', 'c'}))
	assert.False(t, parsed.Nfa.IsInLang([]automaton.Symbol{'a', 'b'}))
	assert.ElementsMatch(t, original.Initial.SortedValues(), parsed.Nfa.Initial.SortedValues())
	assert.ElementsMatch(t, original.Final.SortedValues(), parsed.Nfa.Final.SortedValues())
}

func TestRoundTripLvlfa(t *testing.T) {
	l := automaton.NewLvlfaSized(3, []automaton.State{0}, []automaton.State{2}, nil, 3)
	l.Delta.Add(0, 'x', 1)
	l.Delta.Add(1, 'y', 2)
	l.Levels[0] = 0
	l.Levels[1] = 1
	l.Levels[2] = 2

	var buf bytes.Buffer
	require.NoError(t, mataformat.WriteLvlfa(&buf, l))

	parsed, err := mataformat.ReadExplicit(&buf)
	require.NoError(t, err)
	assert.True(t, parsed.IsLvlfa)
	assert.Equal(t, uint32(3), parsed.LevelsCnt)
	assert.Equal(t, []automaton.Level{0, 1, 2}, parsed.Levels)
	assert.True(t, parsed.Nfa.IsInLang([]automaton.Symbol{'x', 'y'}))
}

func TestWriteNfaFormat(t *testing.T) {
	n := automaton.NewSized(2, []automaton.State{0}, []automaton.State{1}, nil)
	n.Delta.Add(0, 'a', 1)

	var buf bytes.Buffer
	require.NoError(t, mataformat.WriteNfa(&buf, n))

	out := buf.String()
	assert.Contains(t, out, "@NFA-explicit\n")
	assert.Contains(t, out, "%Initial q0\n")
	assert.Contains(t, out, "%Final q1\n")
	assert.Contains(t, out, "q0 97 q1\n")
}
