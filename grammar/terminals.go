package grammar

import (
	"github.com/ava12/cnf/internal/names"
)

// isolateTerminals replaces terminals in bodies of two or more symbols with fresh non-terminals T<n>,
// one per distinct terminal, each having the only production T<n> → terminal.
func isolateTerminals(g *Grammar, alloc *names.Allocator) *Grammar {
	result := g.clone()
	proxies := make(map[string]string)
	for _, nt := range g.nonTerms {
		for _, body := range result.rules[nt] {
			if len(body) < 2 {
				continue
			}

			for i, s := range body {
				if s.Kind != Terminal {
					continue
				}

				proxy, has := proxies[s.Name]
				if !has {
					proxy = alloc.Next("T")
					proxies[s.Name] = proxy
					result.addNonTerm(proxy, false)
					result.addBody(proxy, Body{s})
				}
				body[i] = NonTerm(proxy)
			}
		}
	}
	return result
}
