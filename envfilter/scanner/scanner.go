// Package scanner provides the character-level cursor underlying the
// envfilter directive parser.
//
// The scanner has no knowledge of the directive grammar. It produces one
// rune at a time with position tracking, and classifies runes as reserved
// (structural) or plain text. The parser never needs more than a single
// rune of lookahead.
package scanner

import (
	"fmt"
	"unicode/utf8"
)

// EOF is returned by Peek and Next at end of input.
const EOF rune = -1

// Reserved reports whether r is one of the structural characters
// "[]{}=,\"/". Reserved runes are never valid as literal text; the first
// occurrence of one always terminates the current token.
func Reserved(r rune) bool {
	switch r {
	case '[', ']', '{', '}', '=', ',', '"', '/':
		return true
	}
	return false
}

// Position of a rune within the input.
type Position struct {
	Filename string
	Offset   int // byte offset, starting at 0
	Line     int // line number, starting at 1
	Column   int // column number in runes, starting at 1
}

func (p Position) String() string {
	if p.Filename == "" {
		return fmt.Sprintf("%d:%d", p.Line, p.Column)
	}
	return fmt.Sprintf("%s:%d:%d", p.Filename, p.Line, p.Column)
}

func (p Position) GoString() string {
	return fmt.Sprintf("Position{Filename: %q, Offset: %d, Line: %d, Column: %d}",
		p.Filename, p.Offset, p.Line, p.Column)
}

// A Scanner is a forward-only cursor over an input string.
//
// The zero value is not useful; use New.
type Scanner struct {
	input string
	pos   Position
}

// New returns a Scanner positioned at the start of input.
func New(input string) *Scanner {
	return &Scanner{
		input: input,
		pos:   Position{Line: 1, Column: 1},
	}
}

// Pos returns the position of the next unconsumed rune. At end of input
// this is the position one past the final rune.
func (s *Scanner) Pos() Position { return s.pos }

// SetFilename sets the filename reported in positions.
func (s *Scanner) SetFilename(name string) { s.pos.Filename = name }

// Peek returns the next rune without consuming it, or EOF.
func (s *Scanner) Peek() rune {
	if s.pos.Offset >= len(s.input) {
		return EOF
	}
	r, _ := utf8.DecodeRuneInString(s.input[s.pos.Offset:])
	return r
}

// Next consumes and returns the next rune, or EOF.
func (s *Scanner) Next() rune {
	if s.pos.Offset >= len(s.input) {
		return EOF
	}
	r, n := utf8.DecodeRuneInString(s.input[s.pos.Offset:])
	s.pos.Offset += n
	if r == '\n' {
		s.pos.Line++
		s.pos.Column = 1
	} else {
		s.pos.Column++
	}
	return r
}

// Text consumes the maximal run of non-reserved runes and returns it as a
// slice of the input. It allocates nothing and leaves the cursor on the
// terminating reserved rune (or at end of input). The returned text may be
// empty.
func (s *Scanner) Text() string {
	start := s.pos.Offset
	for {
		r := s.Peek()
		if r == EOF || Reserved(r) {
			return s.input[start:s.pos.Offset]
		}
		s.Next()
	}
}
