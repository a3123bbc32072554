package grammar

import (
	"github.com/ava12/cnf/internal/names"
)

// needsNewStart tells whether the start symbol occurs in some production body or can derive the empty string.
func needsNewStart(g *Grammar) bool {
	for _, nt := range g.nonTerms {
		for _, body := range g.rules[nt] {
			if body.Contains(g.start) {
				return true
			}
		}
	}

	return nullableSet(g)[g.start]
}

// isolateStart introduces new start symbol S' with the only production S' → S when needed.
func isolateStart(g *Grammar, alloc *names.Allocator) *Grammar {
	if !needsNewStart(g) {
		return g
	}

	result := g.clone()
	oldStart := result.start
	result.start = alloc.Derive(oldStart+"0", "0")
	result.addNonTerm(result.start, true)
	result.addBody(result.start, Body{NonTerm(oldStart)})
	return result
}
