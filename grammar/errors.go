package grammar

import (
	"errors"
	"strings"

	"github.com/ava12/cnf"
)

// Error codes used by grammar:
const (
	// UndeclaredStartError indicates that the start symbol is not one of declared non-terminals.
	UndeclaredStartError = cnf.ValidationErrors + iota

	// UnknownSymbolError indicates that a production body refers to an undeclared symbol.
	UnknownSymbolError

	// OverlapError indicates that a name is declared both as terminal and non-terminal.
	OverlapError

	// MisplacedEpsilonError indicates that the empty-string marker is mixed with other symbols.
	MisplacedEpsilonError

	// UndeclaredNonTerminalError indicates productions for a name that is not a declared non-terminal.
	UndeclaredNonTerminalError

	// InvalidNameError indicates an empty name, a name containing whitespace, or the reserved epsilon name.
	InvalidNameError

	// DuplicateProductionError indicates that a non-terminal has the same production body twice.
	DuplicateProductionError

	// NotNormalFormError indicates that a grammar is not in Chomsky Normal Form.
	NotNormalFormError
)

func undeclaredStartError(name string) *cnf.Error {
	return cnf.FormatError(UndeclaredStartError, "start symbol %q is not a declared non-terminal", name)
}

func unknownSymbolError(head, text string) *cnf.Error {
	return cnf.FormatError(UnknownSymbolError, "%s: undeclared symbol at %q", head, text)
}

func wrongKindError(head string, s Symbol) *cnf.Error {
	return cnf.FormatError(UnknownSymbolError, "%s: %q is not a declared %s", head, s.Name, s.Kind)
}

func overlapError(names []string) *cnf.Error {
	return cnf.FormatError(OverlapError, "declared both as terminal and non-terminal: "+strings.Join(names, ", "))
}

func misplacedEpsilonError(head string) *cnf.Error {
	return cnf.FormatError(MisplacedEpsilonError, "%s: %s must be the only symbol of a production", head, EpsilonName)
}

func undeclaredNonTermError(names []string) *cnf.Error {
	return cnf.FormatError(UndeclaredNonTerminalError, "productions for undeclared non-terminals: "+strings.Join(names, ", "))
}

func invalidNameError(name string) *cnf.Error {
	return cnf.FormatError(InvalidNameError, "invalid symbol name %q", name)
}

func duplicateError(head string, body Body) *cnf.Error {
	return cnf.FormatError(DuplicateProductionError, "%s: duplicate production %s", head, body)
}

func notNormalFormError(head string, body Body, reason string) *cnf.Error {
	return cnf.FormatError(NotNormalFormError, "%s → %s: %s", head, body, reason)
}

// IsValidationError tells whether e is (or wraps) a malformed grammar error.
// A failed normal form check is not a validation error.
func IsValidationError(e error) bool {
	var ce *cnf.Error
	return errors.As(e, &ce) && ce.Class() == cnf.ValidationErrors && ce.Code != NotNormalFormError
}
