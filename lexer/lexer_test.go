package lexer

import (
	"regexp"
	"testing"

	"github.com/ava12/cnf/source"
	. "github.com/ava12/cnf/internal/test"
)

var (
	tokenRe      = regexp.MustCompile("(?s:[\\s]+|(\\d+)|([a-z_][a-z0-9_]*)|('.*?')|('.{0,10}))")
	tokenTypes   = []TokenType{{1, "number"}, {2, "name"}, {3, "string"}}
	tokenSamples = "123 foo 'bar'"
)

func scan(src string) *Scanner {
	return New(tokenRe, tokenTypes).Scan(source.New("test", []byte(src)))
}

func TestEmpty(t *testing.T) {
	sources := []string{"", " ", "  ", " \t\r\n "}
	for _, src := range sources {
		tok, e := scan(src).Next()
		ExpectNoError(t, e)
		Assert(t, tok.IsEof(), "source %q: unexpected token %s", src, tok.TypeName())
		ExpectString(t, EofTokenName, tok.TypeName())
	}
}

func TestTokenSamples(t *testing.T) {
	s := scan(tokenSamples)
	for _, tokType := range tokenTypes {
		tok, e := s.Next()
		ExpectNoError(t, e)
		ExpectString(t, tokType.TypeName, tok.TypeName())
		ExpectInt(t, tokType.Type, tok.Type())
	}

	tok, e := s.Next()
	ExpectNoError(t, e)
	Assert(t, tok.IsEof(), "expecting EoF, got %s", tok)
}

func TestAll(t *testing.T) {
	tokens, e := scan("a 1\n  'x y'").All()
	ExpectNoError(t, e)
	ExpectInt(t, 4, len(tokens))

	expected := []struct {
		text      string
		line, col int
	}{
		{"a", 1, 1},
		{"1", 1, 3},
		{"'x y'", 2, 3},
		{"", 2, 8},
	}
	for i, exp := range expected {
		ExpectString(t, exp.text, tokens[i].Text())
		ExpectInt(t, exp.line, tokens[i].Line())
		ExpectInt(t, exp.col, tokens[i].Col())
		ExpectString(t, "test", tokens[i].SourceName())
	}
	Assert(t, tokens[3].IsEof(), "last token must be EoF")
}

func TestWrongChar(t *testing.T) {
	s := scan("foo @")
	tok, e := s.Next()
	ExpectNoError(t, e)
	ExpectString(t, "foo", tok.Text())

	_, e = s.Next()
	ExpectErrorCode(t, WrongCharError, e)

	_, e = s.Next()
	ExpectErrorCode(t, WrongCharError, e)
}

func TestBadToken(t *testing.T) {
	_, e := scan("'unterminated").All()
	ExpectErrorCode(t, BadTokenError, e)
}

func TestNegativeTypeIsError(t *testing.T) {
	l := New(tokenRe, []TokenType{{1, "number"}, {-5, "bad"}})
	_, e := l.Scan(source.New("", []byte("12 ab"))).All()
	ExpectErrorCode(t, BadTokenError, e)
}
