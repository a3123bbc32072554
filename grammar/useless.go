package grammar

import (
	"github.com/ava12/cnf/internal/names"
	"github.com/ava12/cnf/internal/queue"
)

// eliminateUseless removes inaccessible symbols, then non-productive ones, and repeats
// both passes until nothing changes. The result may be the empty-language grammar.
func eliminateUseless(g *Grammar, _ *names.Allocator) *Grammar {
	result := g.clone()
	for {
		unreachable := removeUnreachable(result)
		unproductive := removeUnproductive(result)
		if !unreachable && !unproductive {
			break
		}
	}
	return result
}

// removeUnreachable deletes non-terminals and terminals that do not occur in any sentential form
// derived from the start symbol. Returns true if something was deleted.
func removeUnreachable(g *Grammar) bool {
	w := queue.NewWorklist[string]()
	if g.isNonTerm(g.start) {
		w.Push(g.start)
	}
	usedTerms := make(map[string]bool, len(g.terms))
	for !w.IsEmpty() {
		nt, _ := w.Pop()
		for _, body := range g.rules[nt] {
			for _, s := range body {
				switch s.Kind {
				case NonTerminal:
					w.Push(s.Name)
				case Terminal:
					usedTerms[s.Name] = true
				}
			}
		}
	}

	dropNonTerms := make(map[string]bool)
	for _, nt := range g.nonTerms {
		if !w.Seen(nt) {
			dropNonTerms[nt] = true
		}
	}
	dropTerms := make(map[string]bool)
	for _, t := range g.terms {
		if !usedTerms[t] {
			dropTerms[t] = true
		}
	}

	g.removeNonTerms(dropNonTerms)
	g.removeTerms(dropTerms)
	return len(dropNonTerms) > 0 || len(dropTerms) > 0
}

func productiveSet(g *Grammar) map[string]bool {
	productive := make(map[string]bool, len(g.terms)+len(g.nonTerms))
	for _, t := range g.terms {
		productive[t] = true
	}

	changed := true
	for changed {
		changed = false
		for _, nt := range g.nonTerms {
			if productive[nt] {
				continue
			}

			for _, body := range g.rules[nt] {
				if isProductiveBody(body, productive) {
					productive[nt] = true
					changed = true
					break
				}
			}
		}
	}
	return productive
}

func isProductiveBody(body Body, productive map[string]bool) bool {
	for _, s := range body {
		if s.Kind != Empty && !productive[s.Name] {
			return false
		}
	}
	return true
}

// removeUnproductive deletes non-terminals that derive no terminal string together with
// every production referring to them. Returns true if something was deleted.
func removeUnproductive(g *Grammar) bool {
	productive := productiveSet(g)
	changed := false
	drop := make(map[string]bool)
	for _, nt := range g.nonTerms {
		if !productive[nt] {
			drop[nt] = true
			continue
		}

		bodies := g.rules[nt]
		kept := bodies[:0:0]
		for _, body := range bodies {
			if isProductiveBody(body, productive) {
				kept = append(kept, body)
			}
		}
		if len(kept) < len(bodies) {
			changed = true
			g.setBodies(nt, kept)
		}
		if len(kept) == 0 {
			drop[nt] = true
		}
	}

	g.removeNonTerms(drop)
	return changed || len(drop) > 0
}
