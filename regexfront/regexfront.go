// Package regexfront implements the regex front-end of spec.md §4.8:
// it compiles a pattern into a program via the standard library's
// regexp/syntax package (the concrete stand-in this module uses for
// the "compiled regex program" the spec describes, playing the role
// RE2's re2::Prog plays in original_source/src/re2parser.cc) and walks
// its instruction listing to build an NFA, collapsing epsilon chains
// and renumbering.
//
// Go's compiled program operates on runes rather than raw bytes.
// Case-insensitive character classes arrive as explicit rune ranges;
// a case-insensitive single literal arrives as a one-rune InstRune with
// the FoldCase flag, which byteRangesOf expands to every rune of its
// case-folding orbit. Per spec.md's non-goal of Unicode-
// correct matching, symbols are clipped to the ASCII byte range
// [0,255].
package regexfront

import (
	"regexp/syntax"
	"unicode"

	"github.com/VeriFIT/mata-sub001/algorithms"
	"github.com/VeriFIT/mata-sub001/alphabet"
	"github.com/VeriFIT/mata-sub001/automaton"
	"github.com/VeriFIT/mata-sub001/materr"
)

// Synthetic symbols emitted for EmptyWidth instructions, mirroring the
// sentinel values original_source/src/re2parser.cc assigns to
// re2's kEmpty* flags.
const (
	SymBeginLine       automaton.Symbol = 300
	SymEndLine         automaton.Symbol = 305
	SymBeginText       automaton.Symbol = 301
	SymEndText         automaton.Symbol = 302
	SymWordBoundary    automaton.Symbol = 303
	SymNonWordBoundary automaton.Symbol = 304
)

// maxByteSymbol bounds transition symbols to the ASCII byte range.
const maxByteSymbol = 255

// newlineByte is the literal '\n' byte value InstRuneAnyNotNL excludes.
// It must stay a plain byte constant rather than SymEndLine: the latter
// is an empty-width sentinel outside the byte range, and reusing it here
// would make a literal '\n' transition indistinguishable from a
// $/EndLine anchor transition.
const newlineByte = 10

// CreateNfa implements spec.md §6's create_nfa(out_nfa, pattern,
// use_epsilon, epsilon_value, use_reduce): parses pattern, compiles it
// to a program, and walks its instructions to build an NFA. If
// useEpsilon, Alt/Capture/Nop fan-out is kept as explicit
// epsilonValue-labelled transitions; otherwise it is eliminated via
// epsilon-closure (algorithms.RemoveEpsilon) before the result is
// pruned of dead states and renumbered. If useReduce, a simulation-
// based reduction (algorithms.ReduceSimulation) runs afterward.
func CreateNfa(pattern string, useEpsilon bool, epsilonValue automaton.Symbol, useReduce bool) (*automaton.Nfa, error) {
	re, err := syntax.Parse(pattern, syntax.Perl)
	if err != nil {
		return nil, &materr.CompileError{Pattern: pattern, Err: err}
	}
	prog, err := syntax.Compile(re)
	if err != nil {
		return nil, &materr.CompileError{Pattern: pattern, Err: err}
	}

	explicit := buildExplicitEpsilonNfa(prog, epsilonValue)

	var out *automaton.Nfa
	if useEpsilon {
		out = explicit
	} else {
		out = algorithms.RemoveEpsilon(explicit, epsilonValue)
	}
	out = pruneDeadStates(out)

	if useReduce {
		reduced, _ := algorithms.ReduceSimulation(out)
		out = reduced
	}
	return out, nil
}

// buildExplicitEpsilonNfa materialises one NFA state per program
// instruction: InstRune/InstRune1/InstRuneAny(NotNL) become real
// transitions on every byte they accept; InstAlt/InstAltMatch become
// two epsilon transitions (Out and Arg); InstCapture/InstNop become
// one epsilon transition to Out; InstEmptyWidth becomes one
// transition per active flag to Out, labelled with its sentinel
// symbol; InstMatch is final with no outgoing edges; InstFail
// contributes nothing.
func buildExplicitEpsilonNfa(prog *syntax.Prog, epsilon automaton.Symbol) *automaton.Nfa {
	n := len(prog.Inst)
	out := automaton.NewSized(n, []automaton.State{automaton.State(prog.Start)}, nil, alphabet.NewIntAlphabet())

	for i := 0; i < n; i++ {
		inst := &prog.Inst[i]
		src := automaton.State(i)
		switch inst.Op {
		case syntax.InstMatch:
			out.Final.Insert(src)
		case syntax.InstFail:
			// dead end, no transitions
		case syntax.InstAlt, syntax.InstAltMatch:
			out.Delta.Add(src, epsilon, automaton.State(inst.Out))
			out.Delta.Add(src, epsilon, automaton.State(inst.Arg))
		case syntax.InstCapture, syntax.InstNop:
			out.Delta.Add(src, epsilon, automaton.State(inst.Out))
		case syntax.InstEmptyWidth:
			for _, sym := range emptyWidthSymbols(syntax.EmptyOp(inst.Arg)) {
				out.Delta.Add(src, sym, automaton.State(inst.Out))
			}
		case syntax.InstRune, syntax.InstRune1, syntax.InstRuneAny, syntax.InstRuneAnyNotNL:
			for _, b := range byteRangesOf(inst) {
				for sym := b.lo; sym <= b.hi; sym++ {
					out.Delta.Add(src, automaton.Symbol(sym), automaton.State(inst.Out))
				}
			}
		}
	}
	return out
}

type byteRange struct{ lo, hi int }

// byteRangesOf returns the ASCII byte ranges a rune-matching
// instruction accepts, clipped to [0, maxByteSymbol].
func byteRangesOf(inst *syntax.Inst) []byteRange {
	switch inst.Op {
	case syntax.InstRuneAny:
		return []byteRange{{0, maxByteSymbol}}
	case syntax.InstRuneAnyNotNL:
		return []byteRange{{0, newlineByte - 1}, {newlineByte + 1, maxByteSymbol}}
	case syntax.InstRune1:
		r := int(inst.Rune[0])
		if r > maxByteSymbol {
			return nil
		}
		return []byteRange{{r, r}}
	case syntax.InstRune:
		var out []byteRange
		if len(inst.Rune) == 1 {
			// A single-rune InstRune is a literal carrying the FoldCase
			// flag: accept every rune of its case-folding orbit.
			for r := inst.Rune[0]; ; r = unicode.SimpleFold(r) {
				if r <= maxByteSymbol {
					out = append(out, byteRange{int(r), int(r)})
				}
				if syntax.Flags(inst.Arg)&syntax.FoldCase == 0 || unicode.SimpleFold(r) == inst.Rune[0] {
					break
				}
			}
			return out
		}
		for i := 0; i+1 < len(inst.Rune); i += 2 {
			lo, hi := int(inst.Rune[i]), int(inst.Rune[i+1])
			if lo > maxByteSymbol {
				continue
			}
			if hi > maxByteSymbol {
				hi = maxByteSymbol
			}
			out = append(out, byteRange{lo, hi})
		}
		return out
	}
	return nil
}

// emptyWidthSymbols returns one sentinel symbol per active flag of op.
func emptyWidthSymbols(op syntax.EmptyOp) []automaton.Symbol {
	var out []automaton.Symbol
	if op&syntax.EmptyBeginLine != 0 {
		out = append(out, SymBeginLine)
	}
	if op&syntax.EmptyEndLine != 0 {
		out = append(out, SymEndLine)
	}
	if op&syntax.EmptyBeginText != 0 {
		out = append(out, SymBeginText)
	}
	if op&syntax.EmptyEndText != 0 {
		out = append(out, SymEndText)
	}
	if op&syntax.EmptyWordBoundary != 0 {
		out = append(out, SymWordBoundary)
	}
	if op&syntax.EmptyNoWordBoundary != 0 {
		out = append(out, SymNonWordBoundary)
	}
	return out
}

// pruneDeadStates drops states with no outgoing edges that are not
// final, then assigns fresh ids 0..M-1, per spec.md §4.8's
// renumbering stage.
func pruneDeadStates(n *automaton.Nfa) *automaton.Nfa {
	keep := make([]bool, n.NumOfStates())
	for q := 0; q < n.NumOfStates(); q++ {
		keep[q] = n.Final.Contains(automaton.State(q)) || n.Delta.StatePost(automaton.State(q)).Len() > 0
	}
	renaming := make([]automaton.State, n.NumOfStates())
	next := automaton.State(0)
	for q, ok := range keep {
		if ok {
			renaming[q] = next
			next++
		} else {
			renaming[q] = automaton.DroppedState
		}
	}
	n.Delta.Defragment(keep, renaming)
	n.Initial.Filter(func(s automaton.State) bool { return int(s) < len(keep) && keep[s] })
	n.Initial.Rename(func(s automaton.State) automaton.State { return renaming[s] })
	n.Final.Filter(func(s automaton.State) bool { return int(s) < len(keep) && keep[s] })
	n.Final.Rename(func(s automaton.State) automaton.State { return renaming[s] })
	return n
}
