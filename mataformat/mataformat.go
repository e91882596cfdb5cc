// Package mataformat implements spec.md §6's minimal textual
// serialisation: a header line (@NFA-explicit or @LVLFA-explicit),
// %Initial/%Final state-name declarations, an optional %Levels block
// plus %LevelsCnt, and one "qSRC SYM qTGT" line per transition. The
// full .mata parser is explicitly out of scope (spec.md §1); this
// package only produces the format and reads back exactly what it
// produces, which is all this module's own round-trip tests need. It
// also renders Graphviz DOT for diagnostics (spec.md §6: "not
// parseable").
//
// The format is bespoke to this module, so there is no third-party
// parsing/serialisation library in the example pack to ground this
// package's I/O on; it is built directly on bufio/strconv/strings the
// way the pack's own ad hoc text formats are.
package mataformat

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/VeriFIT/mata-sub001/automaton"
	"github.com/VeriFIT/mata-sub001/internal/conv"
	"github.com/VeriFIT/mata-sub001/materr"
)

// WriteNfa serialises n as "@NFA-explicit".
func WriteNfa(w io.Writer, n *automaton.Nfa) error {
	return writeExplicit(w, "@NFA-explicit", n, nil, 0)
}

// WriteLvlfa serialises l as "@LVLFA-explicit", including its
// %Levels block and %LevelsCnt declaration.
func WriteLvlfa(w io.Writer, l *automaton.Lvlfa) error {
	return writeExplicit(w, "@LVLFA-explicit", l.Nfa, l.Levels, l.LevelsCnt)
}

func writeExplicit(w io.Writer, header string, n *automaton.Nfa, levels []automaton.Level, levelsCnt uint32) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, header)

	fmt.Fprint(bw, "%Initial")
	n.Initial.ForEach(func(s automaton.State) { fmt.Fprintf(bw, " q%d", s) })
	fmt.Fprintln(bw)

	fmt.Fprint(bw, "%Final")
	n.Final.ForEach(func(s automaton.State) { fmt.Fprintf(bw, " q%d", s) })
	fmt.Fprintln(bw)

	if levels != nil {
		fmt.Fprint(bw, "%Levels")
		for q, lvl := range levels {
			fmt.Fprintf(bw, " q%d:%d", q, lvl)
		}
		fmt.Fprintln(bw)
		fmt.Fprintf(bw, "%%LevelsCnt %d\n", levelsCnt)
	}

	it := n.Delta.Transitions()
	for {
		t, ok := it.Next()
		if !ok {
			break
		}
		fmt.Fprintf(bw, "q%d %d q%d\n", t.Source, t.Symbol, t.Target)
	}
	return bw.Flush()
}

// WriteDot renders n as Graphviz DOT, for diagnostics only (spec.md
// §6: "For diagnostics only; not parseable."). Initial states get an
// incoming arrow from an invisible point node; final states are drawn
// doublecircle.
func WriteDot(w io.Writer, n *automaton.Nfa) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "digraph mata {")
	fmt.Fprintln(bw, "\trankdir=LR;")
	fmt.Fprintln(bw, "\tnode [shape=circle];")

	n.Final.ForEach(func(s automaton.State) { fmt.Fprintf(bw, "\tq%d [shape=doublecircle];\n", s) })
	n.Initial.ForEach(func(s automaton.State) {
		fmt.Fprintf(bw, "\tinit%d [shape=point,label=\"\"];\n", s)
		fmt.Fprintf(bw, "\tinit%d -> q%d;\n", s, s)
	})

	it := n.Delta.Transitions()
	for {
		t, ok := it.Next()
		if !ok {
			break
		}
		fmt.Fprintf(bw, "\tq%d -> q%d [label=\"%d\"];\n", t.Source, t.Target, t.Symbol)
	}
	fmt.Fprintln(bw, "}")
	return bw.Flush()
}

// ParsedAutomaton is the result of reading back a file this package
// produced: the NFA plus, for an @LVLFA-explicit header, the level
// vector and level count.
type ParsedAutomaton struct {
	Nfa       *automaton.Nfa
	IsLvlfa   bool
	Levels    []automaton.Level
	LevelsCnt uint32
}

// ReadExplicit parses a file in the format WriteNfa/WriteLvlfa
// produce. It is not a general .mata parser: it accepts exactly the
// header/declaration/transition-line shape this package writes.
func ReadExplicit(r io.Reader) (*ParsedAutomaton, error) {
	sc := bufio.NewScanner(r)
	result := &ParsedAutomaton{Nfa: automaton.New()}
	maxState := -1
	trackMax := func(q automaton.State) {
		if int(q) > maxState {
			maxState = int(q)
		}
	}

	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		switch {
		case line == "@NFA-explicit":
			result.IsLvlfa = false
		case line == "@LVLFA-explicit":
			result.IsLvlfa = true
		case fields[0] == "%Initial":
			for _, f := range fields[1:] {
				q, err := parseStateName(f)
				if err != nil {
					return nil, lineErr(lineNo, err)
				}
				result.Nfa.Initial.Insert(q)
				trackMax(q)
			}
		case fields[0] == "%Final":
			for _, f := range fields[1:] {
				q, err := parseStateName(f)
				if err != nil {
					return nil, lineErr(lineNo, err)
				}
				result.Nfa.Final.Insert(q)
				trackMax(q)
			}
		case fields[0] == "%Levels":
			for _, f := range fields[1:] {
				parts := strings.SplitN(f, ":", 2)
				if len(parts) != 2 {
					return nil, lineErr(lineNo, fmt.Errorf("malformed level entry %q", f))
				}
				q, err := parseStateName(parts[0])
				if err != nil {
					return nil, lineErr(lineNo, err)
				}
				lvl, err := strconv.ParseUint(parts[1], 10, 32)
				if err != nil {
					return nil, lineErr(lineNo, err)
				}
				for len(result.Levels) <= int(q) {
					result.Levels = append(result.Levels, 0)
				}
				result.Levels[q] = automaton.Level(lvl)
				trackMax(q)
			}
		case fields[0] == "%LevelsCnt":
			if len(fields) != 2 {
				return nil, lineErr(lineNo, fmt.Errorf("malformed %%LevelsCnt line"))
			}
			cnt, err := strconv.ParseUint(fields[1], 10, 32)
			if err != nil {
				return nil, lineErr(lineNo, err)
			}
			result.LevelsCnt = uint32(cnt)
		default:
			if len(fields) != 3 {
				return nil, lineErr(lineNo, fmt.Errorf("malformed transition line %q", line))
			}
			src, err := parseStateName(fields[0])
			if err != nil {
				return nil, lineErr(lineNo, err)
			}
			sym, err := strconv.ParseUint(fields[1], 10, 32)
			if err != nil {
				return nil, lineErr(lineNo, err)
			}
			tgt, err := parseStateName(fields[2])
			if err != nil {
				return nil, lineErr(lineNo, err)
			}
			result.Nfa.Delta.Add(src, automaton.Symbol(sym), tgt)
			trackMax(src)
			trackMax(tgt)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if maxState >= 0 {
		result.Nfa.AddStateAt(automaton.State(maxState))
	}
	for len(result.Levels) < result.Nfa.NumOfStates() {
		result.Levels = append(result.Levels, 0)
	}
	return result, nil
}

func parseStateName(f string) (automaton.State, error) {
	if !strings.HasPrefix(f, "q") {
		return 0, fmt.Errorf("malformed state name %q", f)
	}
	n, err := strconv.Atoi(f[1:])
	if err != nil {
		return 0, err
	}
	return automaton.State(conv.IntToUint32(n)), nil
}

func lineErr(line int, err error) error {
	return &materr.CompileError{Pattern: fmt.Sprintf("line %d", line), Err: err}
}
