package langdef

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ava12/cnf"
	"github.com/ava12/cnf/grammar"
	. "github.com/ava12/cnf/internal/test"
	"github.com/ava12/cnf/lexer"
	"github.com/ava12/cnf/source"
)

func checkErrorCode(t *testing.T, samples []string, code int) {
	t.Helper()
	for index, src := range samples {
		_, e := Parse(source.New("string", []byte(src)))
		require.Error(t, e, "input #%d: %q", index, src)

		ce, is := e.(*cnf.Error)
		require.True(t, is, "input #%d: cnf.Error expected, got %q", index, e.Error())
		assert.Equal(t, code, ce.Code, "input #%d: %q: %s", index, src, e.Error())
	}
}

func bodyTexts(g *grammar.Grammar, name string) []string {
	var result []string
	for _, body := range g.Productions(name) {
		result = append(result, body.String())
	}
	return result
}

func TestUnexpectedEof(t *testing.T) {
	samples := []string{
		"",
		" ",
		"# comment only",
		"S",
		"S ->",
		"S -> 'a'",
		"!start",
		"!start S",
	}
	checkErrorCode(t, samples, UnexpectedEofError)
}

func TestUnexpectedToken(t *testing.T) {
	samples := []string{
		"S 'a';",
		"S -> 'a';;",
		"-> 'a';",
		"ε -> 'a';",
		"!start 'S';",
	}
	checkErrorCode(t, samples, UnexpectedTokenError)
}

func TestLexicalErrors(t *testing.T) {
	checkErrorCode(t, []string{"S -> @;", "S = 'a';"}, lexer.WrongCharError)
	checkErrorCode(t, []string{"S -> \"abc", "S -> 'a\n';", "!Start S;"}, lexer.BadTokenError)
}

func TestSemanticErrors(t *testing.T) {
	checkErrorCode(t, []string{"!foo S; S -> 'a';"}, UnknownDirectiveError)
	checkErrorCode(t, []string{"S -> 'a'; S -> 'b';", "S -> A; A -> 'a'; A -> ;"}, NonTerminalDefinedError)
	checkErrorCode(t, []string{"!start S; !start S; S -> 'a';"}, StartDefinedError)
	checkErrorCode(t, []string{"S -> A;", "S -> 'a' | B 'b';"}, UndefinedNonTerminalError)
	checkErrorCode(t, []string{"!start X; S -> 'a';"}, UndefinedStartError)
	checkErrorCode(t, []string{`S -> "\q";`}, InvalidStringError)
	checkErrorCode(t, []string{`S -> "S";`}, grammar.OverlapError)
	checkErrorCode(t, []string{`S -> "a b";`}, grammar.InvalidNameError)
}

func TestErrorPosition(t *testing.T) {
	_, e := ParseString("sample.bnf", "S -> A\n  | 'a' B;\nA -> 'a';")
	require.Error(t, e)

	ce := e.(*cnf.Error)
	assert.Equal(t, UndefinedNonTerminalError, ce.Code)
	assert.Equal(t, "sample.bnf", ce.SourceName)
	assert.Equal(t, 2, ce.Line)
	assert.Equal(t, 9, ce.Col)
	assert.Contains(t, ce.Message, "in sample.bnf at line 2 col 9")
}

func TestParseSimple(t *testing.T) {
	g, e := ParseString("", `S -> "a" S "b" | ε;`)
	ExpectNoError(t, e)
	ExpectString(t, "S", g.Start())
	ExpectStrings(t, []string{"S"}, g.NonTerminals())
	ExpectStrings(t, []string{"a", "b"}, g.Terminals())
	ExpectStrings(t, []string{"a S b", "ε"}, bodyTexts(g, "S"))
}

func TestParseDirectivesAndArrows(t *testing.T) {
	src := `
		# expressions
		!start Expr;
		Term → "x" | "(" Expr ")";
		Expr ::= Expr "+" Term | Term;
	`
	g, e := ParseString("expr", src)
	ExpectNoError(t, e)
	ExpectString(t, "Expr", g.Start())
	ExpectStrings(t, []string{"Term", "Expr"}, g.NonTerminals())
	ExpectStrings(t, []string{"x", "(", ")", "+"}, g.Terminals())
	ExpectStrings(t, []string{"x", "( Expr )"}, bodyTexts(g, "Term"))
	ExpectStrings(t, []string{"Expr + Term", "Term"}, bodyTexts(g, "Expr"))
}

func TestParseEmptyAlternatives(t *testing.T) {
	samples := []string{
		"S -> 'a' | ;",
		"S -> 'a' | '';",
		"S -> 'a' | ε;",
		"S -> 'a' | ε ε;",
		"S -> 'a' | ε | ;",
	}
	for i, src := range samples {
		g, e := ParseString(strconv.Itoa(i), src)
		ExpectNoError(t, e)
		ExpectStrings(t, []string{"a", "ε"}, bodyTexts(g, "S"))
	}
}

func TestParseEpsilonInSequence(t *testing.T) {
	g, e := ParseString("", "S -> 'a' ε 'b';")
	ExpectNoError(t, e)
	ExpectStrings(t, []string{"a b"}, bodyTexts(g, "S"))
}

func TestParseNormalizesNames(t *testing.T) {
	g, e := ParseString("", "S -> \"x\" e\u0301 \"A\u030a\"; \u00e9 -> 'y';")
	ExpectNoError(t, e)
	ExpectStrings(t, []string{"S", "\u00e9"}, g.NonTerminals())
	ExpectStrings(t, []string{"x", "\u00c5", "y"}, g.Terminals())
}

func TestParseEscapes(t *testing.T) {
	g, e := ParseString("", `S -> "\u0041\x42" '\x42';`)
	ExpectNoError(t, e)
	ExpectStrings(t, []string{"AB", `\x42`}, g.Terminals())
}

func TestParseAndConvert(t *testing.T) {
	g, e := ParseString("", "S -> A S A | 'a' B; A -> B | S; B -> 'b' | ;")
	ExpectNoError(t, e)

	result := g.ToChomskyNormalForm()
	ExpectNoError(t, result.Check())
	ExpectNoError(t, result.CheckCNF())
}
