package grammar

import (
	"github.com/ava12/cnf/internal/names"
)

// binarize splits every body X1 X2 ... Xn with n >= 3 into a chain
// A → X1 V1, V1 → X2 V2, ..., Vn-2 → Xn-1 Xn using fresh non-terminals.
func binarize(g *Grammar, alloc *names.Allocator) *Grammar {
	result := g.clone()
	for _, nt := range g.nonTerms {
		bodies := result.rules[nt]
		for i, body := range bodies {
			if len(body) < 3 {
				continue
			}

			link := NonTerm(alloc.Next("V"))
			bodies[i] = Body{body[0], link}
			for _, s := range body[1 : len(body)-2] {
				next := NonTerm(alloc.Next("V"))
				result.addNonTerm(link.Name, false)
				result.addBody(link.Name, Body{s, next})
				link = next
			}
			result.addNonTerm(link.Name, false)
			result.addBody(link.Name, Body{body[len(body)-2], body[len(body)-1]})
		}
	}
	return result
}
