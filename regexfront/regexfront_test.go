package regexfront_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VeriFIT/mata-sub001/automaton"
	"github.com/VeriFIT/mata-sub001/regexfront"
)

func symWord(s string) []automaton.Symbol {
	out := make([]automaton.Symbol, len(s))
	for i := 0; i < len(s); i++ {
		out[i] = automaton.Symbol(s[i])
	}
	return out
}

func TestCreateNfaAPlusBPlus(t *testing.T) {
	n, err := regexfront.CreateNfa("a+b+", false, 0xFFFFFFFF, false)
	require.NoError(t, err)

	for _, w := range []string{"ab", "aabb", "aaabbb"} {
		assert.True(t, n.IsInLang(symWord(w)), "expected %q accepted", w)
	}
	for _, w := range []string{"", "a", "aa", "aabba"} {
		assert.False(t, n.IsInLang(symWord(w)), "expected %q rejected", w)
	}
}

func TestCreateNfaAlternation(t *testing.T) {
	n, err := regexfront.CreateNfa("cat|dog", false, 0xFFFFFFFF, false)
	require.NoError(t, err)

	assert.True(t, n.IsInLang(symWord("cat")))
	assert.True(t, n.IsInLang(symWord("dog")))
	assert.False(t, n.IsInLang(symWord("cow")))
}

func TestCreateNfaKeepsEpsilonWhenRequested(t *testing.T) {
	epsilon := automaton.Symbol(0xFFFFFFFF)
	n, err := regexfront.CreateNfa("a?b", true, epsilon, false)
	require.NoError(t, err)

	foundEpsilon := false
	it := n.Delta.Transitions()
	for {
		tr, ok := it.Next()
		if !ok {
			break
		}
		if tr.Symbol == epsilon {
			foundEpsilon = true
		}
	}
	assert.True(t, foundEpsilon, "expected at least one explicit epsilon transition when useEpsilon=true")
	assert.True(t, n.IsInLang(symWord("ab")))
	assert.True(t, n.IsInLang(symWord("b")))
	assert.False(t, n.IsInLang(symWord("a")))
}

func TestCreateNfaReduceKeepsLanguage(t *testing.T) {
	plain, err := regexfront.CreateNfa("(a|a)b", false, 0xFFFFFFFF, false)
	require.NoError(t, err)
	reduced, err := regexfront.CreateNfa("(a|a)b", false, 0xFFFFFFFF, true)
	require.NoError(t, err)

	for _, w := range []string{"ab", "a", "b", ""} {
		assert.Equal(t, plain.IsInLang(symWord(w)), reduced.IsInLang(symWord(w)), "word %q", w)
	}
}

func TestCreateNfaInvalidPattern(t *testing.T) {
	_, err := regexfront.CreateNfa("a(", false, 0xFFFFFFFF, false)
	assert.Error(t, err)
}

func TestCreateNfaCharClassAndDot(t *testing.T) {
	n, err := regexfront.CreateNfa("[0-9].", false, 0xFFFFFFFF, false)
	require.NoError(t, err)

	assert.True(t, n.IsInLang(symWord("5x")))
	assert.False(t, n.IsInLang(symWord("a5")))
}

func TestDotExcludesNewlineByte(t *testing.T) {
	n, err := regexfront.CreateNfa("a.b", false, 0xFFFFFFFF, false)
	require.NoError(t, err)

	assert.True(t, n.IsInLang(symWord("axb")))
	assert.False(t, n.IsInLang([]automaton.Symbol{'a', 10, 'b'}), "'.' must not match a literal newline byte")
}

func TestSentinelSymbolsAreDistinctAndOutOfByteRange(t *testing.T) {
	sentinels := []automaton.Symbol{
		regexfront.SymBeginLine,
		regexfront.SymEndLine,
		regexfront.SymBeginText,
		regexfront.SymEndText,
		regexfront.SymWordBoundary,
		regexfront.SymNonWordBoundary,
	}
	seen := make(map[automaton.Symbol]bool, len(sentinels))
	for _, s := range sentinels {
		assert.False(t, seen[s], "sentinel %d reused", s)
		seen[s] = true
		assert.Greater(t, int(s), 255, "sentinel %d collides with the ASCII byte range", s)
	}
}
