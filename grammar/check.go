package grammar

// CheckCNF returns nil if g is in Chomsky Normal Form, or an error describing the first offending production.
// The empty-string production is allowed for the start symbol only, and only if the start symbol
// does not occur in any production body.
func (g *Grammar) CheckCNF() error {
	startUsed := false
	for _, nt := range g.nonTerms {
		for _, body := range g.rules[nt] {
			if body.Contains(g.start) {
				startUsed = true
			}
		}
	}

	for _, nt := range g.nonTerms {
		for _, body := range g.rules[nt] {
			switch {
			case body.IsEpsilon():
				if nt != g.start {
					return notNormalFormError(nt, body, "empty string production of non-start symbol")
				}
				if startUsed {
					return notNormalFormError(nt, body, "empty string production of start symbol used in production bodies")
				}

			case len(body) == 1:
				if body[0].Kind != Terminal {
					return notNormalFormError(nt, body, "unit production")
				}

			case len(body) == 2:
				if body[0].Kind != NonTerminal || body[1].Kind != NonTerminal {
					return notNormalFormError(nt, body, "terminal in production of two symbols")
				}

			default:
				return notNormalFormError(nt, body, "production of more than two symbols")
			}
		}
	}
	return nil
}

func (g *Grammar) IsCNF() bool {
	return g.CheckCNF() == nil
}
