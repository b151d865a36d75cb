package envfilter

import (
	"fmt"
	"io"

	"github.com/CAD97/tracing-utils/envfilter/scanner"
)

const eof = scanner.EOF

// parser consumes exactly one directive per call to directive(), leaving
// the scanner past the terminating top-level comma (or at end of input).
//
// It is a single-pass state machine over the scanner: every reserved
// character ends the token being accumulated, so extracted text can never
// contain one. It never looks ahead more than one rune and never
// backtracks.
type parser struct {
	s     *scanner.Scanner
	trace io.Writer
}

func newParser(input string) *parser {
	return &parser{s: scanner.New(input)}
}

func (p *parser) tracef(format string, args ...interface{}) {
	if p.trace != nil {
		fmt.Fprintf(p.trace, format+"\n", args...)
	}
}

// directive parses one directive starting at the current cursor. The
// grammar is target, then optionally `[span{fields}]`, then optionally
// `=level`, any of which may be empty or absent; a segment consisting of
// zero characters parses as a directive with all components absent.
func (p *parser) directive() (*Directive, error) {
	d := &Directive{}
	if err := p.target(d); err != nil {
		return nil, err
	}
	if err := p.span(d); err != nil {
		return nil, err
	}
	if err := p.level(d); err != nil {
		return nil, err
	}
	// Terminator is now a top-level comma or end of input.
	if p.s.Peek() == ',' {
		p.s.Next()
	}
	return d, nil
}

// target accumulates text up to the first structural character.
func (p *parser) target(d *Directive) error {
	text := p.s.Text()
	switch r := p.s.Peek(); r {
	case '[', '=', ',', eof:
		d.Target = text
		return nil
	case ']', '}':
		return errorf(UnmatchedClose, r, p.s.Pos())
	default: // '{', '"', '/'
		return errorf(UnexpectedChar, r, p.s.Pos())
	}
}

// span parses the optional bracketed `[name{fields}]` portion. On entry
// the cursor is on one of `[`, `=`, `,` or end of input.
func (p *parser) span(d *Directive) error {
	if p.s.Peek() != '[' {
		return nil
	}
	p.s.Next()
	sp := &Span{}
	sp.Name = p.s.Text()
	switch r := p.s.Peek(); r {
	case ']':
		p.s.Next()
		d.Span = sp
		return nil
	case '{':
		p.s.Next()
		sp.Fields = []Field{}
		if err := p.fields(sp); err != nil {
			return err
		}
		// fields() stops on the closing `}`; only `]` may follow.
		if r := p.s.Peek(); r != ']' {
			return errorf(ExpectedClosingBracket, r, p.s.Pos())
		}
		p.s.Next()
		d.Span = sp
		return nil
	case eof:
		return errorf(UnclosedBracket, eof, p.s.Pos())
	default: // '[', '}', '=', ',', '"', '/'
		return errorf(UnexpectedChar, r, p.s.Pos())
	}
}

// fields parses the `name` and `name=value` entries of a field list. On
// entry the cursor is just past the opening `{`; on success it is just
// past the closing `}`. A comma in here separates fields and never
// terminates the directive.
func (p *parser) fields(sp *Span) error {
	for {
		name := p.s.Text()
		switch r := p.s.Peek(); r {
		case '=':
			p.s.Next()
			value := p.s.Text()
			switch r := p.s.Peek(); r {
			case ',':
				p.s.Next()
				sp.Fields = append(sp.Fields, Field{Name: name, Value: &value})
			case '}':
				p.s.Next()
				sp.Fields = append(sp.Fields, Field{Name: name, Value: &value})
				return nil
			case eof:
				return errorf(UnclosedBrace, eof, p.s.Pos())
			default: // '[', ']', '{', '=', '"', '/'
				return errorf(UnexpectedChar, r, p.s.Pos())
			}
		case ',':
			p.s.Next()
			sp.Fields = append(sp.Fields, Field{Name: name})
		case '}':
			p.s.Next()
			// A comma always commits the bare field before it, even an
			// empty one, but the closing brace commits only accumulated
			// text: `{,}` is one empty field, `{a,}` is just `a`.
			if name != "" {
				sp.Fields = append(sp.Fields, Field{Name: name})
			}
			return nil
		case eof:
			return errorf(UnclosedBrace, eof, p.s.Pos())
		default: // '[', ']', '{', '"', '/'
			return errorf(UnexpectedChar, r, p.s.Pos())
		}
	}
}

// level parses the optional `=level` suffix and rejects anything else
// left before the directive terminator. On entry the cursor is on `=`,
// `,`, end of input, or (after a span) arbitrary trailing input.
func (p *parser) level(d *Directive) error {
	switch r := p.s.Peek(); r {
	case ',', eof:
		return nil
	case '=':
		p.s.Next()
		text := p.s.Text()
		switch r := p.s.Peek(); r {
		case ',', eof:
			d.Level = &text
			return nil
		default:
			// Level text has no internal grammar, so a second `=` (or any
			// other reserved character) is a violation, not content.
			return errorf(UnexpectedChar, r, p.s.Pos())
		}
	default:
		// Trailing junk after `]`, e.g. `a[b]c`.
		return errorf(UnexpectedChar, r, p.s.Pos())
	}
}
