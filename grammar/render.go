package grammar

import (
	"strings"
)

// Rule is a single production.
type Rule struct {
	Head string
	Body Body
}

func (r Rule) String() string {
	return r.Head + " → " + r.Body.String()
}

// Rules returns all productions ordered by head declaration order, then by body order.
func (g *Grammar) Rules() []Rule {
	result := make([]Rule, 0, g.RuleCount())
	for _, nt := range g.nonTerms {
		for _, body := range g.rules[nt] {
			result = append(result, Rule{nt, body.clone()})
		}
	}
	return result
}

// Alternatives returns production bodies of name rendered as text and joined with " | ".
func (g *Grammar) Alternatives(name string) string {
	bodies := g.rules[name]
	texts := make([]string, len(bodies))
	for i, body := range bodies {
		texts[i] = body.String()
	}
	return strings.Join(texts, " | ")
}

// String renders human-readable grammar listing:
//
//	Grammar {
//	  VN = {S, A}
//	  VT = {a}
//	  S = S
//	  P = {
//	    S → A A | a
//	    A → a
//	  }
//	}
func (g *Grammar) String() string {
	var b strings.Builder
	b.WriteString("Grammar {\n")
	b.WriteString("  VN = {" + strings.Join(g.nonTerms, ", ") + "}\n")
	b.WriteString("  VT = {" + strings.Join(g.terms, ", ") + "}\n")
	b.WriteString("  S = " + g.start + "\n")
	b.WriteString("  P = {\n")
	for _, nt := range g.nonTerms {
		if len(g.rules[nt]) > 0 {
			b.WriteString("    " + nt + " → " + g.Alternatives(nt) + "\n")
		}
	}
	b.WriteString("  }\n}\n")
	return b.String()
}
