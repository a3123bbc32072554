package langdef

import (
	"regexp"
	"strconv"

	"golang.org/x/text/unicode/norm"

	"github.com/ava12/cnf/grammar"
	"github.com/ava12/cnf/lexer"
	"github.com/ava12/cnf/source"
)

// ParseString parses grammar description and returns a grammar on success.
// Returns nil and cnf.Error on error.
func ParseString(name, content string) (*grammar.Grammar, error) {
	return Parse(source.New(name, []byte(content)))
}

// ParseBytes parses grammar description and returns a grammar on success.
// Returns nil and cnf.Error on error.
func ParseBytes(name string, content []byte) (*grammar.Grammar, error) {
	return Parse(source.New(name, content))
}

// Parse parses grammar description and returns a grammar on success.
// Returns nil and cnf.Error on error.
func Parse(s *source.Source) (*grammar.Grammar, error) {
	c := newParseContext(s)
	e := c.parse()
	if e != nil {
		return nil, e
	}

	return grammar.FromRules(c.nonTerms, c.terms, c.start, c.rules)
}

const (
	stringTok = "string"
	nameTok   = "name"
	dirTok    = "dir"
	opTok     = "op"
	wrongTok  = ""
)

const (
	pipeTok      = "|"
	semicolonTok = ";"
)

var arrowToks = []string{"->", "→", "::="}

const startDir = "!start"

var bnfLexer *lexer.Lexer

func init() {
	tokenTypes := []lexer.TokenType{
		{Type: 1, TypeName: stringTok},
		{Type: 2, TypeName: nameTok},
		{Type: 3, TypeName: dirTok},
		{Type: 4, TypeName: opTok},
		{Type: lexer.ErrorTokenType, TypeName: wrongTok},
	}

	re := regexp.MustCompile(
		`^(?:\s+|#[^\n]*|` +
			`("(?:[^\\"\n]|\\.)*"|'[^'\n]*')|` +
			`([\pL_][\pL\pM\pN_]*)|` +
			`(![a-z]+)|` +
			`(->|→|::=|[|;])|` +
			`(['"!].{0,10}))`)

	bnfLexer = lexer.New(re, tokenTypes)
}

type parseContext struct {
	scanner    *lexer.Scanner
	savedToken *lexer.Token
	nonTerms   []string
	terms      []string
	start      string
	startToken *lexer.Token
	rules      map[string][]grammar.Body
	defined    map[string]bool
	isTerm     map[string]bool
	usages     []*lexer.Token
}

func newParseContext(s *source.Source) *parseContext {
	return &parseContext{
		scanner: bnfLexer.Scan(s),
		rules:   make(map[string][]grammar.Body),
		defined: make(map[string]bool),
		isTerm:  make(map[string]bool),
	}
}

func (c *parseContext) parse() error {
	for {
		t, e := c.fetch([]string{nameTok, dirTok, lexer.EofTokenName}, true)
		if e != nil {
			return e
		}

		switch t.TypeName() {
		case lexer.EofTokenName:
			return c.finish(t)
		case dirTok:
			e = c.parseDir(t)
		default:
			e = c.parseRule(t)
		}
		if e != nil {
			return e
		}
	}
}

func (c *parseContext) put(t *lexer.Token) {
	if c.savedToken != nil {
		panic("cannot put " + t.TypeName() + " token: already put " + c.savedToken.TypeName())
	}

	c.savedToken = t
}

// fetch returns next token if it matches either any type name or any operator text.
// Unmatched token is an error in strict mode, otherwise it is put back and nil token is returned.
func (c *parseContext) fetch(types []string, strict bool) (*lexer.Token, error) {
	token := c.savedToken
	if token == nil {
		var e error
		token, e = c.scanner.Next()
		if e != nil {
			return nil, e
		}
	} else {
		c.savedToken = nil
	}

	for _, typ := range types {
		if token.TypeName() == typ || (token.TypeName() == opTok && token.Text() == typ) {
			return token, nil
		}
	}

	if !strict {
		c.put(token)
		return nil, nil
	}

	if token.IsEof() {
		return nil, eofError(token)
	}
	return nil, unexpectedTokenError(token)
}

func (c *parseContext) fetchOne(typ string) (*lexer.Token, error) {
	return c.fetch([]string{typ}, true)
}

func (c *parseContext) parseDir(t *lexer.Token) error {
	if t.Text() != startDir {
		return unknownDirectiveError(t)
	}
	if c.startToken != nil {
		return defStartError(t)
	}

	nt, e := c.fetchOne(nameTok)
	if e != nil {
		return e
	}

	c.start = norm.NFC.String(nt.Text())
	c.startToken = nt
	_, e = c.fetchOne(semicolonTok)
	return e
}

func (c *parseContext) parseRule(t *lexer.Token) error {
	name := norm.NFC.String(t.Text())
	if name == grammar.EpsilonName {
		return unexpectedTokenError(t)
	}
	if c.defined[name] {
		return defNonTermError(t, name)
	}

	c.defined[name] = true
	c.nonTerms = append(c.nonTerms, name)
	_, e := c.fetch(arrowToks, true)
	if e != nil {
		return e
	}

	body := grammar.Body{}
	for {
		t, e = c.fetch([]string{nameTok, stringTok, pipeTok, semicolonTok}, true)
		if e != nil {
			return e
		}

		switch t.TypeName() {
		case opTok:
			c.addBody(name, body)
			if t.Text() == semicolonTok {
				return nil
			}
			body = grammar.Body{}

		case nameTok:
			ntName := norm.NFC.String(t.Text())
			if ntName == grammar.EpsilonName {
				body = append(body, grammar.Epsilon)
			} else {
				body = append(body, grammar.NonTerm(ntName))
				c.usages = append(c.usages, t)
			}

		case stringTok:
			text, e := unquote(t)
			if e != nil {
				return e
			}

			if text == "" {
				body = append(body, grammar.Epsilon)
			} else {
				body = append(body, grammar.Term(text))
				if !c.isTerm[text] {
					c.isTerm[text] = true
					c.terms = append(c.terms, text)
				}
			}
		}
	}
}

func (c *parseContext) addBody(head string, body grammar.Body) {
	if len(body) > 1 {
		nonEmpty := body[:0]
		for _, s := range body {
			if s.Kind != grammar.Empty {
				nonEmpty = append(nonEmpty, s)
			}
		}
		if len(nonEmpty) > 0 {
			body = nonEmpty
		} else {
			body = grammar.Body{grammar.Epsilon}
		}
	}
	c.rules[head] = append(c.rules[head], body)
}

func unquote(t *lexer.Token) (string, error) {
	text := t.Text()
	if text[0] == '\'' {
		return norm.NFC.String(text[1 : len(text)-1]), nil
	}

	result, e := strconv.Unquote(text)
	if e != nil {
		return "", invalidStringError(t)
	}
	return norm.NFC.String(result), nil
}

func (c *parseContext) finish(eof *lexer.Token) error {
	if len(c.nonTerms) == 0 {
		return eofError(eof)
	}

	for _, t := range c.usages {
		name := norm.NFC.String(t.Text())
		if !c.defined[name] {
			return undefinedNonTermError(t, name)
		}
	}

	if c.startToken == nil {
		c.start = c.nonTerms[0]
	} else if !c.defined[c.start] {
		return undefinedStartError(c.startToken, c.start)
	}

	return nil
}
