package grammar

import (
	"github.com/ava12/cnf/internal/names"
)

// Nullable returns names of non-terminals that derive the empty string, in declaration order.
func (g *Grammar) Nullable() []string {
	set := nullableSet(g)
	result := make([]string, 0, len(set))
	for _, nt := range g.nonTerms {
		if set[nt] {
			result = append(result, nt)
		}
	}
	return result
}

// nullableSet computes the least fixpoint: a non-terminal is nullable if some of its bodies
// is the empty-string body or consists of nullable non-terminals only.
func nullableSet(g *Grammar) map[string]bool {
	nullable := make(map[string]bool)
	changed := true
	for changed {
		changed = false
		for _, nt := range g.nonTerms {
			if nullable[nt] {
				continue
			}

			for _, body := range g.rules[nt] {
				if isNullableBody(body, nullable) {
					nullable[nt] = true
					changed = true
					break
				}
			}
		}
	}
	return nullable
}

func isNullableBody(body Body, nullable map[string]bool) bool {
	if body.IsEpsilon() {
		return true
	}
	for _, s := range body {
		if !nullable[s.Name] {
			return false
		}
	}
	return true
}

// dropNullable returns every non-empty body obtained from body by deleting a non-empty subset
// of nullable symbol occurrences. Occurrences are independent even for the same symbol.
func dropNullable(body Body, nullable map[string]bool) []Body {
	var positions []int
	for i, s := range body {
		if s.Kind == NonTerminal && nullable[s.Name] {
			positions = append(positions, i)
		}
	}
	if len(positions) == 0 {
		return nil
	}

	var result []Body
	for mask := 1; mask < 1<<len(positions); mask++ {
		dropped := make(map[int]bool, len(positions))
		for bit, pos := range positions {
			if mask&(1<<bit) != 0 {
				dropped[pos] = true
			}
		}

		variant := make(Body, 0, len(body)-len(dropped))
		for i, s := range body {
			if !dropped[i] {
				variant = append(variant, s)
			}
		}
		if len(variant) > 0 {
			result = appendUnique(result, variant)
		}
	}
	return result
}

// eliminateEpsilon removes empty-string productions, compensating with variants of bodies
// that skip nullable symbols. The empty-string production is then re-added to the start symbol
// if it was nullable, so the empty string stays in the language.
func eliminateEpsilon(g *Grammar, _ *names.Allocator) *Grammar {
	nullable := nullableSet(g)
	if len(nullable) == 0 {
		return g
	}

	result := g.clone()
	for _, nt := range g.nonTerms {
		var bodies []Body
		for _, body := range g.rules[nt] {
			if body.IsEpsilon() {
				continue
			}

			bodies = appendUnique(bodies, body.clone())
			for _, variant := range dropNullable(body, nullable) {
				bodies = appendUnique(bodies, variant)
			}
		}
		result.setBodies(nt, bodies)
	}

	if nullable[result.start] {
		result.addBody(result.start, Body{Epsilon})
	}
	return result
}
