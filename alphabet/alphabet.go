// Package alphabet implements the Alphabet interface of spec.md §6 and
// its three canonical implementations. An alphabet may be shared by
// multiple automata simultaneously; mutation (only OnTheFly allocates
// on use) is the caller's responsibility to externally synchronise.
package alphabet

import (
	"sort"
	"strconv"

	"github.com/VeriFIT/mata-sub001/materr"
	"github.com/VeriFIT/mata-sub001/ordvec"
)

// Symbol is a non-negative integer identifying one letter of the
// alphabet.
type Symbol = uint32

// Epsilon is the maximum representable symbol value, reserved as the
// epsilon sentinel.
const Epsilon Symbol = 0xFFFFFFFF

// DontCare is Epsilon-1, used by LVLFA transducer algorithms for a
// wildcard symbol.
const DontCare Symbol = Epsilon - 1

// Alphabet is the interface the automaton core consumes. Two alphabet
// values compare equal iff they are the same instance, unless an
// implementation overrides Equal.
type Alphabet interface {
	// TranslateSymbol maps a textual name to its Symbol, allocating a
	// fresh one if the alphabet supports on-the-fly growth.
	TranslateSymbol(name string) (Symbol, error)
	// ReverseTranslateSymbol maps a Symbol back to its textual name.
	ReverseTranslateSymbol(sym Symbol) (string, error)
	// GetAlphabetSymbols returns every symbol in the alphabet in
	// ascending order. Unsupported on IntAlphabet.
	GetAlphabetSymbols() (*ordvec.Vector[Symbol], error)
	// GetComplement returns, in ascending order, every alphabet symbol
	// not in symbols.
	GetComplement(symbols *ordvec.Vector[Symbol]) (*ordvec.Vector[Symbol], error)
	// Equal reports whether other is the same alphabet instance.
	Equal(other Alphabet) bool
}

// IntAlphabet treats every non-negative integer as a symbol: the
// infinite, unenumerable alphabet used when symbols carry no name.
type IntAlphabet struct{}

// NewIntAlphabet returns the integer-identity alphabet.
func NewIntAlphabet() *IntAlphabet { return &IntAlphabet{} }

func (a *IntAlphabet) TranslateSymbol(name string) (Symbol, error) {
	v, err := strconv.ParseUint(name, 10, 32)
	if err != nil {
		return 0, &materr.CompileError{Pattern: name, Err: materr.ErrParseFailure}
	}
	return Symbol(v), nil
}

func (a *IntAlphabet) ReverseTranslateSymbol(sym Symbol) (string, error) {
	return strconv.FormatUint(uint64(sym), 10), nil
}

func (a *IntAlphabet) GetAlphabetSymbols() (*ordvec.Vector[Symbol], error) {
	return nil, &materr.UnsupportedError{Op: "GetAlphabetSymbols", Reason: "integer-identity alphabet has no enumerable symbol set"}
}

func (a *IntAlphabet) GetComplement(symbols *ordvec.Vector[Symbol]) (*ordvec.Vector[Symbol], error) {
	return nil, &materr.UnsupportedError{Op: "GetComplement", Reason: "integer-identity alphabet has no enumerable symbol set"}
}

func (a *IntAlphabet) Equal(other Alphabet) bool {
	o, ok := other.(*IntAlphabet)
	return ok && o == a
}

// EnumAlphabet is a finite, explicit symbol set with bidirectional
// name<->symbol mapping fixed at construction.
type EnumAlphabet struct {
	nameToSym map[string]Symbol
	symToName map[Symbol]string
	symbols   *ordvec.Vector[Symbol]
}

// NewEnumAlphabet builds an alphabet from an explicit name list,
// assigning symbols 0..len(names)-1 in the given order.
func NewEnumAlphabet(names []string) *EnumAlphabet {
	a := &EnumAlphabet{
		nameToSym: make(map[string]Symbol, len(names)),
		symToName: make(map[Symbol]string, len(names)),
		symbols:   ordvec.New[Symbol](len(names)),
	}
	for i, n := range names {
		sym := Symbol(i)
		a.nameToSym[n] = sym
		a.symToName[sym] = n
		a.symbols.Insert(sym)
	}
	return a
}

func (a *EnumAlphabet) TranslateSymbol(name string) (Symbol, error) {
	sym, ok := a.nameToSym[name]
	if !ok {
		return 0, &materr.UnsupportedError{Op: "TranslateSymbol", Reason: "symbol " + name + " not in enumerated alphabet"}
	}
	return sym, nil
}

func (a *EnumAlphabet) ReverseTranslateSymbol(sym Symbol) (string, error) {
	name, ok := a.symToName[sym]
	if !ok {
		return "", &materr.UnsupportedError{Op: "ReverseTranslateSymbol", Reason: "symbol not in enumerated alphabet"}
	}
	return name, nil
}

func (a *EnumAlphabet) GetAlphabetSymbols() (*ordvec.Vector[Symbol], error) {
	return a.symbols.Clone(), nil
}

func (a *EnumAlphabet) GetComplement(symbols *ordvec.Vector[Symbol]) (*ordvec.Vector[Symbol], error) {
	return ordvec.Difference(a.symbols, symbols), nil
}

func (a *EnumAlphabet) Equal(other Alphabet) bool {
	o, ok := other.(*EnumAlphabet)
	return ok && o == a
}

// OnTheFlyAlphabet is a name->symbol map that allocates a fresh symbol
// on first use of a name.
type OnTheFlyAlphabet struct {
	nameToSym map[string]Symbol
	symToName map[Symbol]string
	next      Symbol
}

// NewOnTheFlyAlphabet returns an empty on-the-fly alphabet.
func NewOnTheFlyAlphabet() *OnTheFlyAlphabet {
	return &OnTheFlyAlphabet{nameToSym: make(map[string]Symbol), symToName: make(map[Symbol]string)}
}

func (a *OnTheFlyAlphabet) TranslateSymbol(name string) (Symbol, error) {
	if sym, ok := a.nameToSym[name]; ok {
		return sym, nil
	}
	sym := a.next
	a.next++
	a.nameToSym[name] = sym
	a.symToName[sym] = name
	return sym, nil
}

func (a *OnTheFlyAlphabet) ReverseTranslateSymbol(sym Symbol) (string, error) {
	name, ok := a.symToName[sym]
	if !ok {
		return "", &materr.UnsupportedError{Op: "ReverseTranslateSymbol", Reason: "symbol never allocated by this on-the-fly alphabet"}
	}
	return name, nil
}

func (a *OnTheFlyAlphabet) GetAlphabetSymbols() (*ordvec.Vector[Symbol], error) {
	v := ordvec.New[Symbol](len(a.symToName))
	for sym := range a.symToName {
		v.Insert(sym)
	}
	return v, nil
}

func (a *OnTheFlyAlphabet) GetComplement(symbols *ordvec.Vector[Symbol]) (*ordvec.Vector[Symbol], error) {
	all, _ := a.GetAlphabetSymbols()
	return ordvec.Difference(all, symbols), nil
}

func (a *OnTheFlyAlphabet) Equal(other Alphabet) bool {
	o, ok := other.(*OnTheFlyAlphabet)
	return ok && o == a
}

// sortedNames returns a's names sorted, used by tests.
func (a *OnTheFlyAlphabet) sortedNames() []string {
	names := make([]string, 0, len(a.nameToSym))
	for n := range a.nameToSym {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
