package envfilter

import (
	"fmt"

	"github.com/CAD97/tracing-utils/envfilter/scanner"
)

// ErrorKind classifies a structural parse failure.
//
// The taxonomy is purely structural; the parser never judges whether a
// target, level or field is semantically meaningful.
type ErrorKind int

const (
	// UnexpectedChar indicates a character that no transition of the
	// directive grammar accepts at its position.
	UnexpectedChar ErrorKind = iota
	// UnclosedBracket indicates input ended inside an open "[".
	UnclosedBracket
	// UnclosedBrace indicates input ended inside an open "{".
	UnclosedBrace
	// UnmatchedClose indicates a "]" or "}" with no matching opener.
	UnmatchedClose
	// ExpectedClosingBracket indicates a "}" was not followed by "]".
	ExpectedClosingBracket
)

func (k ErrorKind) String() string {
	switch k {
	case UnexpectedChar:
		return "unexpected character"
	case UnclosedBracket:
		return "unclosed '['"
	case UnclosedBrace:
		return "unclosed '{'"
	case UnmatchedClose:
		return "unmatched closing delimiter"
	case ExpectedClosingBracket:
		return "expected ']'"
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// Error is the interface satisfied by errors returned from this package.
type Error interface {
	error
	// Unadorned message.
	Message() string
	// Position the error occurred at.
	Position() scanner.Position
}

// A ParseError describes a structural violation of the directive grammar.
//
// Errors are fatal to the parse: there is no recovery or resynchronization
// past a ParseError.
type ParseError struct {
	Kind ErrorKind
	// Char is the offending rune, or scanner.EOF when the failure is
	// running out of input while a structure was open.
	Char rune
	Pos  scanner.Position
}

var _ Error = &ParseError{}

func (e *ParseError) Message() string {
	switch {
	case e.Char == scanner.EOF:
		return fmt.Sprintf("%s at end of input", e.Kind)
	case e.Kind == UnmatchedClose || e.Kind == UnexpectedChar:
		return fmt.Sprintf("%s %q", e.Kind, e.Char)
	default:
		return fmt.Sprintf("%s at %q", e.Kind, e.Char)
	}
}

func (e *ParseError) Position() scanner.Position { return e.Pos }

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %s", e.Pos, e.Message())
}

func errorf(kind ErrorKind, char rune, pos scanner.Position) *ParseError {
	return &ParseError{Kind: kind, Char: char, Pos: pos}
}
