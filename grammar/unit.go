package grammar

import (
	"github.com/ava12/cnf/internal/names"
	"github.com/ava12/cnf/internal/queue"
)

// unitPairs maps every non-terminal A to the list of non-terminals B such that A derives B
// using unit productions only. A itself always comes first.
func unitPairs(g *Grammar) map[string][]string {
	result := make(map[string][]string, len(g.nonTerms))
	for _, nt := range g.nonTerms {
		var reached []string
		w := queue.NewWorklist(nt)
		for !w.IsEmpty() {
			b, _ := w.Pop()
			reached = append(reached, b)
			for _, body := range g.rules[b] {
				if body.IsUnit() {
					w.Push(body[0].Name)
				}
			}
		}
		result[nt] = reached
	}
	return result
}

// eliminateUnits replaces productions of every non-terminal A with non-unit productions
// of all non-terminals in unitPairs(A). The closure is complete before any rewriting.
func eliminateUnits(g *Grammar, _ *names.Allocator) *Grammar {
	pairs := unitPairs(g)
	result := g.clone()
	for _, nt := range g.nonTerms {
		var bodies []Body
		for _, b := range pairs[nt] {
			for _, body := range g.rules[b] {
				if !body.IsUnit() {
					bodies = appendUnique(bodies, body.clone())
				}
			}
		}
		result.setBodies(nt, bodies)
	}
	return result
}
