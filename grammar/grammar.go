// Package grammar defines context-free grammar structure and its conversion to Chomsky Normal Form.
//
// A Grammar is immutable: every conversion stage works on a private copy and returns a new Grammar.
// Grammars are not synchronized, but since they are never modified after construction
// they may be shared between goroutines.
package grammar

import (
	"strings"
	"unicode"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Definition is the plain description of a grammar used to construct it.
// Each production body is a string of symbol names; names are matched greedily (longest declared name first),
// whitespace between names is ignored. Both EpsilonName and empty string denote the empty-string body.
type Definition struct {
	NonTerminals []string            `yaml:"nonterminals" json:"nonterminals"`
	Terminals    []string            `yaml:"terminals" json:"terminals"`
	Start        string              `yaml:"start" json:"start"`
	Productions  map[string][]string `yaml:"productions" json:"productions"`
}

// Grammar holds symbol sets, start symbol, and productions.
// Non-terminals and terminals keep declaration order, production bodies of every non-terminal keep
// insertion order and contain no duplicates.
type Grammar struct {
	nonTerms []string
	terms    []string
	start    string
	rules    map[string][]Body
	kinds    map[string]Kind
}

// New validates definition and creates a grammar. Definition data is copied.
// Returns nil and cnf.Error of cnf.ValidationErrors class on error.
func New(d Definition) (*Grammar, error) {
	g, e := declare(d.NonTerminals, d.Terminals, d.Start)
	if e == nil {
		e = checkHeads(g, maps.Keys(d.Productions))
	}
	if e != nil {
		return nil, e
	}

	sp := newSplitter(g)
	for _, nt := range g.nonTerms {
		for _, text := range d.Productions[nt] {
			body, e := sp.split(nt, text)
			if e != nil {
				return nil, e
			}

			g.rules[nt] = appendUnique(g.rules[nt], body)
		}
	}
	return g, nil
}

// FromRules creates a grammar using typed production bodies. Bodies are copied,
// an empty body is treated as the empty-string body.
// Returns nil and cnf.Error of cnf.ValidationErrors class on error.
func FromRules(nonTerminals, terminals []string, start string, rules map[string][]Body) (*Grammar, error) {
	g, e := declare(nonTerminals, terminals, start)
	if e == nil {
		e = checkHeads(g, maps.Keys(rules))
	}
	if e != nil {
		return nil, e
	}

	for _, nt := range g.nonTerms {
		for _, body := range rules[nt] {
			if len(body) == 0 || body.IsEpsilon() {
				body = Body{Epsilon}
			}
			e = g.checkBody(nt, body)
			if e != nil {
				return nil, e
			}

			g.rules[nt] = appendUnique(g.rules[nt], body.clone())
		}
	}
	return g, nil
}

func validName(name string) bool {
	return name != "" && name != EpsilonName && strings.IndexFunc(name, unicode.IsSpace) < 0
}

func declare(nonTerminals, terminals []string, start string) (*Grammar, error) {
	g := &Grammar{
		start: start,
		rules: make(map[string][]Body, len(nonTerminals)),
		kinds: make(map[string]Kind, len(nonTerminals)+len(terminals)),
	}

	var overlaps []string
	for _, name := range nonTerminals {
		if !validName(name) {
			return nil, invalidNameError(name)
		}
		if g.kinds[name] == 0 {
			g.kinds[name] = NonTerminal
			g.nonTerms = append(g.nonTerms, name)
		}
	}
	for _, name := range terminals {
		if !validName(name) {
			return nil, invalidNameError(name)
		}
		switch g.kinds[name] {
		case 0:
			g.kinds[name] = Terminal
			g.terms = append(g.terms, name)
		case NonTerminal:
			if !slices.Contains(overlaps, name) {
				overlaps = append(overlaps, name)
			}
		}
	}
	if len(overlaps) > 0 {
		return nil, overlapError(overlaps)
	}

	if g.kinds[start] != NonTerminal {
		return nil, undeclaredStartError(start)
	}

	return g, nil
}

func checkHeads(g *Grammar, heads []string) error {
	var unknown []string
	for _, head := range heads {
		if g.kinds[head] != NonTerminal {
			unknown = append(unknown, head)
		}
	}
	if len(unknown) > 0 {
		slices.Sort(unknown)
		return undeclaredNonTermError(unknown)
	}
	return nil
}

func (g *Grammar) checkBody(head string, body Body) error {
	for _, s := range body {
		if s.Kind == Empty {
			if len(body) > 1 {
				return misplacedEpsilonError(head)
			}
			continue
		}

		kind := g.kinds[s.Name]
		if kind == 0 {
			return unknownSymbolError(head, s.Name)
		}
		if kind != s.Kind {
			return wrongKindError(head, s)
		}
	}
	return nil
}

// Check verifies grammar invariants: disjoint symbol sets, declared start symbol,
// declared symbols in production bodies, and unique bodies.
// The start symbol of an empty-language grammar (no non-terminals at all) is not checked.
func (g *Grammar) Check() error {
	seen := make(map[string]bool, len(g.nonTerms))
	var overlaps []string
	for _, name := range g.nonTerms {
		seen[name] = true
	}
	for _, name := range g.terms {
		if seen[name] {
			overlaps = append(overlaps, name)
		}
	}
	if len(overlaps) > 0 {
		return overlapError(overlaps)
	}

	if len(g.nonTerms) > 0 && g.kinds[g.start] != NonTerminal {
		return undeclaredStartError(g.start)
	}

	e := checkHeads(g, maps.Keys(g.rules))
	if e != nil {
		return e
	}

	for _, nt := range g.nonTerms {
		bodies := g.rules[nt]
		for i, body := range bodies {
			e = g.checkBody(nt, body)
			if e != nil {
				return e
			}
			for _, other := range bodies[:i] {
				if other.Equal(body) {
					return duplicateError(nt, body)
				}
			}
		}
	}
	return nil
}

// Start returns start symbol name. It is reported even for an empty-language grammar.
func (g *Grammar) Start() string {
	return g.start
}

// NonTerminals returns non-terminal names in declaration order.
func (g *Grammar) NonTerminals() []string {
	return slices.Clone(g.nonTerms)
}

// Terminals returns terminal names in declaration order.
func (g *Grammar) Terminals() []string {
	return slices.Clone(g.terms)
}

// KindOf returns the kind of a declared symbol or 0 if name is not declared.
func (g *Grammar) KindOf(name string) Kind {
	return g.kinds[name]
}

// Productions returns a copy of production bodies of non-terminal name.
func (g *Grammar) Productions(name string) []Body {
	bodies := g.rules[name]
	if len(bodies) == 0 {
		return nil
	}

	result := make([]Body, len(bodies))
	for i, body := range bodies {
		result[i] = body.clone()
	}
	return result
}

// IsEmpty tells whether the grammar has no non-terminals left, i.e. generates the empty language.
func (g *Grammar) IsEmpty() bool {
	return len(g.nonTerms) == 0
}

// RuleCount returns the total number of productions.
func (g *Grammar) RuleCount() int {
	count := 0
	for _, bodies := range g.rules {
		count += len(bodies)
	}
	return count
}

func (g *Grammar) clone() *Grammar {
	result := &Grammar{
		nonTerms: slices.Clone(g.nonTerms),
		terms:    slices.Clone(g.terms),
		start:    g.start,
		rules:    make(map[string][]Body, len(g.rules)),
		kinds:    maps.Clone(g.kinds),
	}
	for nt, bodies := range g.rules {
		copied := make([]Body, len(bodies))
		for i, body := range bodies {
			copied[i] = body.clone()
		}
		result.rules[nt] = copied
	}
	return result
}

func (g *Grammar) isNonTerm(name string) bool {
	return g.kinds[name] == NonTerminal
}

func (g *Grammar) names() []string {
	return append(slices.Clone(g.nonTerms), g.terms...)
}

func (g *Grammar) addNonTerm(name string, first bool) {
	g.kinds[name] = NonTerminal
	if first {
		g.nonTerms = slices.Insert(g.nonTerms, 0, name)
	} else {
		g.nonTerms = append(g.nonTerms, name)
	}
}

func (g *Grammar) addBody(head string, body Body) {
	g.rules[head] = appendUnique(g.rules[head], body)
}

func (g *Grammar) setBodies(head string, bodies []Body) {
	if len(bodies) == 0 {
		delete(g.rules, head)
	} else {
		g.rules[head] = bodies
	}
}

func (g *Grammar) removeNonTerms(drop map[string]bool) {
	g.nonTerms = slices.DeleteFunc(g.nonTerms, func(name string) bool {
		return drop[name]
	})
	for name := range drop {
		delete(g.rules, name)
		delete(g.kinds, name)
	}
}

func (g *Grammar) removeTerms(drop map[string]bool) {
	g.terms = slices.DeleteFunc(g.terms, func(name string) bool {
		return drop[name]
	})
	for name := range drop {
		delete(g.kinds, name)
	}
}

type splitter struct {
	names []string
	kinds map[string]Kind
}

func newSplitter(g *Grammar) *splitter {
	names := g.names()
	slices.SortStableFunc(names, func(a, b string) int {
		return len(b) - len(a)
	})
	return &splitter{names, g.kinds}
}

func (sp *splitter) match(text string) string {
	for _, name := range sp.names {
		if strings.HasPrefix(text, name) {
			return name
		}
	}
	return ""
}

func (sp *splitter) split(head, text string) (Body, error) {
	var body Body
	hasEpsilon := false
	for text = strings.TrimLeftFunc(text, unicode.IsSpace); text != ""; text = strings.TrimLeftFunc(text, unicode.IsSpace) {
		name := sp.match(text)
		if name == "" && strings.HasPrefix(text, EpsilonName) {
			hasEpsilon = true
			text = text[len(EpsilonName):]
			continue
		}
		if name == "" {
			return nil, unknownSymbolError(head, text)
		}

		body = append(body, Symbol{sp.kinds[name], name})
		text = text[len(name):]
	}

	if hasEpsilon && len(body) > 0 {
		return nil, misplacedEpsilonError(head)
	}
	if len(body) == 0 {
		body = Body{Epsilon}
	}
	return body, nil
}
