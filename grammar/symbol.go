package grammar

import (
	"strings"
)

// Kind tells what a Symbol stands for.
type Kind int

const (
	Terminal Kind = iota + 1
	NonTerminal
	Empty // the Epsilon marker
)

func (k Kind) String() string {
	switch k {
	case Terminal:
		return "terminal"
	case NonTerminal:
		return "non-terminal"
	case Empty:
		return "epsilon"
	default:
		return "unknown"
	}
}

// EpsilonName is the reserved name denoting the empty string in descriptions and listings.
const EpsilonName = "ε"

// Symbol is an atomic grammar symbol. Symbols are compared by value.
type Symbol struct {
	Kind Kind
	Name string
}

// Epsilon is the distinguished marker of the empty-string production body.
var Epsilon = Symbol{Empty, EpsilonName}

func Term(name string) Symbol {
	return Symbol{Terminal, name}
}

func NonTerm(name string) Symbol {
	return Symbol{NonTerminal, name}
}

func (s Symbol) IsTerminal() bool {
	return s.Kind == Terminal
}

func (s Symbol) IsNonTerminal() bool {
	return s.Kind == NonTerminal
}

func (s Symbol) String() string {
	return s.Name
}

// Body is a production body: an ordered sequence of terminals and non-terminals,
// or Epsilon alone for the empty string.
type Body []Symbol

// Seq makes a Body of symbols; no symbols make the empty-string body.
func Seq(symbols ...Symbol) Body {
	if len(symbols) == 0 {
		return Body{Epsilon}
	}
	return append(Body{}, symbols...)
}

// IsEpsilon tells whether b is the empty-string body.
func (b Body) IsEpsilon() bool {
	return len(b) == 1 && b[0].Kind == Empty
}

// IsUnit tells whether b consists of exactly one non-terminal.
func (b Body) IsUnit() bool {
	return len(b) == 1 && b[0].Kind == NonTerminal
}

func (b Body) Equal(other Body) bool {
	if len(b) != len(other) {
		return false
	}
	for i, s := range b {
		if other[i] != s {
			return false
		}
	}
	return true
}

// Contains tells whether a symbol with given name occurs in b.
func (b Body) Contains(name string) bool {
	for _, s := range b {
		if s.Name == name {
			return true
		}
	}
	return false
}

// String joins symbol names with spaces, so multi-character names stay readable.
func (b Body) String() string {
	if len(b) == 0 {
		return EpsilonName
	}
	names := make([]string, len(b))
	for i, s := range b {
		names[i] = s.Name
	}
	return strings.Join(names, " ")
}

func (b Body) clone() Body {
	return append(Body(nil), b...)
}

func appendUnique(bodies []Body, body Body) []Body {
	for _, existing := range bodies {
		if existing.Equal(body) {
			return bodies
		}
	}
	return append(bodies, body)
}
