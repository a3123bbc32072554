package langdef

import (
	"strings"

	"golang.org/x/exp/ebnf"

	"github.com/ava12/cnf"
	"github.com/ava12/cnf/lexer"
)

// Error codes used for text notation:
const (
	UnexpectedEofError = cnf.SyntaxErrors + iota
	UnexpectedTokenError
	UnknownDirectiveError
	NonTerminalDefinedError
	StartDefinedError
	UndefinedNonTerminalError
	UndefinedStartError
	InvalidStringError
)

// Error codes used for EBNF, YAML, and JSON descriptions:
const (
	EbnfError = cnf.FormatErrors + iota
	RangeError
	DecodeError
	UnknownFormatError
)

func eofError(token *lexer.Token) *cnf.Error {
	return cnf.FormatErrorPos(token, UnexpectedEofError, "unexpected EoF")
}

func unexpectedTokenError(token *lexer.Token) *cnf.Error {
	return cnf.FormatErrorPos(token, UnexpectedTokenError, "unexpected %s token %q", token.TypeName(), token.Text())
}

func unknownDirectiveError(token *lexer.Token) *cnf.Error {
	return cnf.FormatErrorPos(token, UnknownDirectiveError, "unknown directive %s", token.Text())
}

func defNonTermError(token *lexer.Token, name string) *cnf.Error {
	return cnf.FormatErrorPos(token, NonTerminalDefinedError, "non-terminal %q already defined", name)
}

func defStartError(token *lexer.Token) *cnf.Error {
	return cnf.FormatErrorPos(token, StartDefinedError, "start symbol already defined")
}

func undefinedNonTermError(token *lexer.Token, name string) *cnf.Error {
	return cnf.FormatErrorPos(token, UndefinedNonTerminalError, "non-terminal %q used but not defined", name)
}

func undefinedStartError(token *lexer.Token, name string) *cnf.Error {
	return cnf.FormatErrorPos(token, UndefinedStartError, "start symbol %q is not defined", name)
}

func invalidStringError(token *lexer.Token) *cnf.Error {
	return cnf.FormatErrorPos(token, InvalidStringError, "invalid string literal %s", token.Text())
}

func ebnfError(name string, e error) *cnf.Error {
	return cnf.FormatError(EbnfError, "%s: %s", name, strings.TrimSpace(e.Error()))
}

func rangeError(name, begin, end string) *cnf.Error {
	return cnf.FormatError(RangeError, "%s: invalid character range %q … %q", name, begin, end)
}

func decodeError(name string, e error) *cnf.Error {
	return cnf.FormatError(DecodeError, "%s: %s", name, e.Error())
}

func unknownFormatError(name string) *cnf.Error {
	return cnf.FormatError(UnknownFormatError, "%s: unknown description format", name)
}

func badExpressionError(name string, x ebnf.Expression) *cnf.Error {
	if bad, is := x.(*ebnf.Bad); is {
		return cnf.FormatError(EbnfError, "%s: %s", name, bad.Error)
	}
	return cnf.FormatError(EbnfError, "%s: unsupported expression at %s", name, x.Pos())
}
