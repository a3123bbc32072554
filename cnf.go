/*
Package cnf converts context-free grammars to Chomsky Normal Form.

Consists of subpackages:
  - cmd/cnfgen: console utility converting grammar description files and printing the result;
  - examples/cyk: interactive recognizer built on a converted grammar;
  - grammar: grammar data model and the normalization pipeline;
  - langdef: reads grammar descriptions (BNF notation, EBNF, YAML, JSON) and writes grammars back;
  - lexer: lexical analyzer used by langdef;
  - source: named source text with line and column lookup.

Typical usage is:

1. Describe grammar either with grammar.Definition or in a description file.

2. Build grammar.Grammar using grammar.New or one of langdef functions.

3. Call ToChomskyNormalForm (or Normalize with an observer) and inspect the result.

Normalization runs these stages in order: start symbol isolation, epsilon production elimination,
unit production elimination, useless symbol elimination, terminal isolation, and binarization.
Every stage returns a new grammar, the input grammar is never modified.
*/
package cnf

import (
	"fmt"
)

// Error classes used by subpackages, each class contains up to 99 error codes:
const (
	ValidationErrors = 1   // used by grammar
	LexicalErrors    = 101 // used by lexer
	SyntaxErrors     = 201 // used by langdef
	FormatErrors     = 301 // used by langdef for EBNF, YAML, and JSON descriptions
)

// Error is the error type used by cnf subpackages.
type Error struct {
	// Code contains non-zero error code.
	Code int

	// Message contains non-empty error message including source name and position information if provided.
	Message string

	// SourceName contains source name that caused this error or empty string.
	SourceName string

	// Line contains line number in source file or 0.
	Line int

	// Col contains column number in source file or 0.
	Col int
}

// SourcePos is used to retrieve source name and position information when constructing an error;
// source.Pos and lexer.Token implement this interface.
type SourcePos interface {
	// SourceName returns source file name or empty string.
	SourceName() string
	// Line returns line number or 0.
	Line() int
	// Col returns column number or 0.
	Col() int
}

// NewError creates new Error structure.
// name, line, and col will be added to error message if provided (non-zero).
func NewError(code int, msg, name string, line, col int) *Error {
	if name != "" && line != 0 && col != 0 {
		msg += fmt.Sprintf(" in %s at line %d col %d", name, line, col)
	}
	return &Error{code, msg, name, line, col}
}

// Error simply returns Error.Message.
func (e *Error) Error() string {
	return e.Message
}

// Class returns the error class (one of ValidationErrors, LexicalErrors, SyntaxErrors, FormatErrors)
// the code belongs to or 0 for unknown codes.
func (e *Error) Class() int {
	if e.Code <= 0 {
		return 0
	}
	return (e.Code-1)/100*100 + 1
}

// FormatError creates Error structure with no source and position information.
// params will be added to error message using fmt.Sprintf function.
func FormatError(code int, msg string, params ...any) *Error {
	if len(params) > 0 {
		msg = fmt.Sprintf(msg, params...)
	}
	return NewError(code, msg, "", 0, 0)
}

// FormatErrorPos creates Error structure with source and position information.
// pos must not be nil.
// params will be added to error message using fmt.Sprintf function.
func FormatErrorPos(pos SourcePos, code int, msg string, params ...any) *Error {
	if len(params) > 0 {
		msg = fmt.Sprintf(msg, params...)
	}
	return NewError(code, msg, pos.SourceName(), pos.Line(), pos.Col())
}
