// Package lexer defines regexp-driven lexical analyzer.
package lexer

import (
	"fmt"
	"regexp"
	"unicode/utf8"

	"github.com/ava12/cnf"
	"github.com/ava12/cnf/source"
)

const (
	// ErrorTokenType is the type for fake tokens capturing broken lexemes (e.g. unterminated string literals).
	// The purpose of these tokens is to generate more informative error messages.
	// Lexer will never return a token of this type, an error with message containing token text will be returned instead.
	ErrorTokenType = -1

	// EofTokenType is the type of the token returned at the end of source.
	EofTokenType = -2

	ErrorTokenName = "-error-"
	EofTokenName   = "-end-of-file-"
)

// Error codes used by lexer:
const (
	// WrongCharError indicates that lexer cannot fetch any token at current position.
	// Error message contains the rune at current source position.
	WrongCharError = cnf.LexicalErrors + iota

	// BadTokenError indicates that lexer has fetched a token of ErrorTokenType.
	BadTokenError
)

// TokenType describes token type for specific capturing group of regular expression.
type TokenType struct {
	// Type contains token type, any non-negative value. ErrorTokenType is treated specially.
	Type int

	// TypeName contains token type name, may be any value.
	TypeName string
}

// Token is a lexeme fetched from source.
type Token struct {
	tokenType int
	typeName  string
	text      string
	pos       source.Pos
}

func NewToken(tokenType int, typeName, text string, pos source.Pos) *Token {
	return &Token{tokenType, typeName, text, pos}
}

func (t *Token) Type() int {
	return t.tokenType
}

func (t *Token) TypeName() string {
	return t.typeName
}

func (t *Token) Text() string {
	return t.text
}

func (t *Token) Pos() source.Pos {
	return t.pos
}

func (t *Token) SourceName() string {
	return t.pos.SourceName()
}

func (t *Token) Line() int {
	return t.pos.Line()
}

func (t *Token) Col() int {
	return t.pos.Col()
}

// IsEof tells whether t marks the end of source.
func (t *Token) IsEof() bool {
	return t.tokenType == EofTokenType
}

// Lexer performs lexical analysis using regexp.Regexp.
// Lexer itself is immutable and safe for concurrent use; scanning state is kept in Scanner.
// Each token type maps to its own regexp capturing group index.
// A match containing no captured groups is treated as insignificant lexeme (e.g. whitespace or comment),
// in this case lexer tries to fetch a token again at new position.
// Every byte of source must belong to some lexeme.
type Lexer struct {
	types []TokenType
	re    *regexp.Regexp
}

// New creates new Lexer.
// Each n-th element of types describes token type for (n+1)-th regexp capturing group.
// A group that has no description or has negative token type is treated as ErrorTokenType.
func New(re *regexp.Regexp, types []TokenType) *Lexer {
	ts := make([]TokenType, len(types))
	for i, t := range types {
		ts[i].TypeName = t.TypeName
		if t.Type >= 0 {
			ts[i].Type = t.Type
		} else {
			ts[i].Type = ErrorTokenType
		}
	}
	return &Lexer{types: ts, re: re}
}

// Scanner fetches tokens from a single source.
type Scanner struct {
	lexer *Lexer
	src   *source.Source
	pos   int
}

// Scan creates a scanner positioned at the start of src.
func (l *Lexer) Scan(src *source.Source) *Scanner {
	return &Scanner{lexer: l, src: src}
}

func wrongCharError(pos source.Pos, content []byte) *cnf.Error {
	r, _ := utf8.DecodeRune(content)
	return cnf.FormatErrorPos(pos, WrongCharError, "wrong char \"%c\" (u+%x)", r, r)
}

func badTokenError(t *Token) *cnf.Error {
	return cnf.FormatErrorPos(t, BadTokenError, "bad token %q", t.Text())
}

func (l *Lexer) match(src *source.Source, pos int) (*Token, int, error) {
	content := src.Content()[pos:]
	match := l.re.FindSubmatchIndex(content)
	if len(match) == 0 || match[0] != 0 || match[1] <= match[0] {
		return nil, 0, wrongCharError(source.NewPos(src, pos), content)
	}

	for i := 2; i < len(match); i += 2 {
		if match[i] < 0 || match[i+1] < 0 {
			continue
		}

		tokenType := ErrorTokenType
		typeName := ErrorTokenName
		if len(l.types) >= (i >> 1) {
			tokenType = l.types[(i>>1)-1].Type
			typeName = l.types[(i>>1)-1].TypeName
		}
		token := NewToken(tokenType, typeName, string(content[match[i]:match[i+1]]), source.NewPos(src, pos+match[i]))
		if tokenType == ErrorTokenType {
			return nil, 0, badTokenError(token)
		}

		return token, match[1], nil
	}

	return nil, match[1], nil
}

// Next fetches token starting at current position and advances position.
// Returns nil token and cnf.Error and does not advance if there is a lexical error.
// Returns EoF token if current position is at the end of source.
func (s *Scanner) Next() (*Token, error) {
	for s.pos < s.src.Len() {
		tok, advance, e := s.lexer.match(s.src, s.pos)
		if e != nil {
			return nil, e
		}

		s.pos += advance
		if tok != nil {
			return tok, nil
		}
	}

	return NewToken(EofTokenType, EofTokenName, "", source.NewPos(s.src, s.src.Len())), nil
}

// All fetches all remaining tokens. The last token is always EoF unless an error is returned.
func (s *Scanner) All() ([]*Token, error) {
	var result []*Token
	for {
		tok, e := s.Next()
		if e != nil {
			return nil, e
		}

		result = append(result, tok)
		if tok.IsEof() {
			return result, nil
		}
	}
}

func (t *Token) String() string {
	if t.text == "" {
		return t.typeName
	}
	return fmt.Sprintf("%s %q", t.typeName, t.text)
}
