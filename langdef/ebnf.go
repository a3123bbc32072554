package langdef

import (
	"io"
	"unicode/utf8"

	"golang.org/x/exp/ebnf"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/ava12/cnf/grammar"
	"github.com/ava12/cnf/internal/names"
	"github.com/ava12/cnf/internal/queue"
)

// maxRangeSize limits the number of terminals a single character range may produce.
const maxRangeSize = 256

// ParseEBNF reads EBNF description (see golang.org/x/exp/ebnf) and returns equivalent grammar.
// start names the start production, empty string means the production defined first.
// Every production reachable from start becomes a non-terminal, every token becomes a terminal.
// Groups, options, repetitions, and character ranges are replaced with helper non-terminals
// named after the enclosing production, e.g. expr_opt1, expr_rep1, expr_grp1, expr_rng1.
// Returns nil and cnf.Error on error.
func ParseEBNF(name string, r io.Reader, start string) (*grammar.Grammar, error) {
	eg, e := ebnf.Parse(name, r)
	if e != nil {
		return nil, ebnfError(name, e)
	}

	if start == "" {
		start = firstProduction(eg)
	}
	e = ebnf.Verify(eg, start)
	if e != nil {
		return nil, ebnfError(name, e)
	}

	f := newFlattener(name, eg, start)
	e = f.run()
	if e != nil {
		return nil, e
	}

	return grammar.FromRules(f.nonTerms, f.terms, start, f.rules)
}

func firstProduction(eg ebnf.Grammar) string {
	if len(eg) == 0 {
		return ""
	}

	list := maps.Keys(eg)
	slices.SortFunc(list, func(a, b string) int {
		return eg[a].Pos().Offset - eg[b].Pos().Offset
	})
	return list[0]
}

type flattener struct {
	source   string
	eg       ebnf.Grammar
	alloc    *names.Allocator
	pending  *queue.Worklist[string]
	nonTerms []string
	terms    []string
	isTerm   map[string]bool
	rules    map[string][]grammar.Body
}

func newFlattener(source string, eg ebnf.Grammar, start string) *flattener {
	f := &flattener{
		source:  source,
		eg:      eg,
		alloc:   names.New(),
		pending: queue.NewWorklist(start),
		isTerm:  make(map[string]bool),
		rules:   make(map[string][]grammar.Body),
	}
	for name, p := range eg {
		f.alloc.Reserve(name)
		f.reserveTokens(p.Expr)
	}
	return f
}

func (f *flattener) reserveTokens(x ebnf.Expression) {
	switch x := x.(type) {
	case ebnf.Alternative:
		for _, item := range x {
			f.reserveTokens(item)
		}
	case ebnf.Sequence:
		for _, item := range x {
			f.reserveTokens(item)
		}
	case *ebnf.Token:
		f.alloc.Reserve(x.String)
	case *ebnf.Range:
		f.alloc.Reserve(x.Begin.String, x.End.String)
	case *ebnf.Group:
		f.reserveTokens(x.Body)
	case *ebnf.Option:
		f.reserveTokens(x.Body)
	case *ebnf.Repetition:
		f.reserveTokens(x.Body)
	}
}

func (f *flattener) run() error {
	for !f.pending.IsEmpty() {
		name, _ := f.pending.Pop()
		f.nonTerms = append(f.nonTerms, name)
		bodies, e := f.alternatives(name, f.eg[name].Expr)
		if e != nil {
			return e
		}

		f.rules[name] = append(f.rules[name], bodies...)
	}
	return nil
}

func (f *flattener) alternatives(owner string, x ebnf.Expression) ([]grammar.Body, error) {
	items, isAlt := x.(ebnf.Alternative)
	if !isAlt {
		items = ebnf.Alternative{x}
	}

	result := make([]grammar.Body, 0, len(items))
	for _, item := range items {
		body, e := f.sequence(owner, item, nil)
		if e != nil {
			return nil, e
		}

		result = append(result, body)
	}
	return result, nil
}

func (f *flattener) sequence(owner string, x ebnf.Expression, body grammar.Body) (grammar.Body, error) {
	var e error
	switch x := x.(type) {
	case nil:

	case ebnf.Sequence:
		for _, item := range x {
			body, e = f.sequence(owner, item, body)
			if e != nil {
				return nil, e
			}
		}

	case *ebnf.Name:
		f.pending.Push(x.String)
		body = append(body, grammar.NonTerm(x.String))

	case *ebnf.Token:
		if x.String != "" {
			f.addTerm(x.String)
			body = append(body, grammar.Term(x.String))
		}

	default:
		var helper string
		helper, e = f.helper(owner, x)
		if e != nil {
			return nil, e
		}

		body = append(body, grammar.NonTerm(helper))
	}
	return body, nil
}

func (f *flattener) addTerm(name string) {
	if !f.isTerm[name] {
		f.isTerm[name] = true
		f.terms = append(f.terms, name)
	}
}

// helper defines a non-terminal replacing group, option, repetition, or range expression.
func (f *flattener) helper(owner string, x ebnf.Expression) (string, error) {
	var (
		suffix string
		bodies []grammar.Body
		e      error
	)

	switch x := x.(type) {
	case *ebnf.Group:
		suffix = "_grp"
		bodies, e = f.alternatives(owner, x.Body)

	case *ebnf.Option:
		suffix = "_opt"
		bodies, e = f.alternatives(owner, x.Body)
		bodies = append(bodies, grammar.Body{grammar.Epsilon})

	case *ebnf.Repetition:
		suffix = "_rep"
		bodies, e = f.alternatives(owner, x.Body)

	case *ebnf.Range:
		suffix = "_rng"
		bodies, e = f.charRange(x)

	default:
		return "", badExpressionError(f.source, x)
	}
	if e != nil {
		return "", e
	}

	name := f.alloc.Next(owner + suffix)
	if suffix == "_rep" {
		self := grammar.NonTerm(name)
		repeated := make([]grammar.Body, 0, len(bodies)+1)
		for _, body := range bodies {
			if len(body) > 0 && !body.IsEpsilon() {
				repeated = append(repeated, append(body, self))
			}
		}
		bodies = append(repeated, grammar.Body{grammar.Epsilon})
	}

	for i, body := range bodies {
		if len(body) == 0 {
			bodies[i] = grammar.Body{grammar.Epsilon}
		}
	}

	f.nonTerms = append(f.nonTerms, name)
	f.rules[name] = bodies
	return name, nil
}

func (f *flattener) charRange(x *ebnf.Range) ([]grammar.Body, error) {
	begin, bl := utf8.DecodeRuneInString(x.Begin.String)
	end, el := utf8.DecodeRuneInString(x.End.String)
	if bl != len(x.Begin.String) || el != len(x.End.String) || end < begin || end-begin >= maxRangeSize {
		return nil, rangeError(f.source, x.Begin.String, x.End.String)
	}

	result := make([]grammar.Body, 0, end-begin+1)
	for r := begin; r <= end; r++ {
		name := string(r)
		f.addTerm(name)
		result = append(result, grammar.Body{grammar.Term(name)})
	}
	return result, nil
}
