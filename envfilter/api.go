package envfilter

import "strings"

// A Directive is a single filter rule, `target[span{field=value}]=level`.
//
// Every component is optional. The parser extracts components verbatim:
// no trimming, no unescaping, no case normalisation, and no judgement of
// whether a level or target name is recognised by any consumer.
type Directive struct {
	// Target module/path filter. Empty when the directive has no target,
	// as in `[span]=info` or `=warn`.
	Target string
	// Span is the bracketed `[name{fields}]` portion, nil when absent.
	Span *Span
	// Level is the text after the top-level `=`, nil when absent. A
	// trailing `=` produces a pointer to the empty string, which is
	// distinct from no level at all.
	Level *string
}

// A Span names a trace span and its field filters, `[name{field=value}]`.
type Span struct {
	// Name of the span, possibly empty.
	Name string
	// Fields in input order. Duplicate names are passed through unmodified;
	// order may be meaningful to the consumer.
	Fields []Field
}

// A Field is one `name` or `name=value` entry within a span's field list.
type Field struct {
	Name string
	// Value is nil for a bare `name` entry. `name=` produces a pointer to
	// the empty string.
	Value *string
}

func (d *Directive) String() string {
	out := &strings.Builder{}
	out.WriteString(d.Target)
	if d.Span != nil {
		out.WriteString(d.Span.String())
	}
	if d.Level != nil {
		out.WriteString("=")
		out.WriteString(*d.Level)
	}
	return out.String()
}

func (s *Span) String() string {
	out := &strings.Builder{}
	out.WriteString("[")
	out.WriteString(s.Name)
	if s.Fields != nil {
		out.WriteString("{")
		for i, f := range s.Fields {
			if i > 0 {
				out.WriteString(",")
			}
			out.WriteString(f.String())
		}
		// A terminal bare field with an empty name is only committed by a
		// separating comma, so the comma must be kept for the field to
		// survive a re-parse: `{,}` is one empty field, `{}` is none.
		if n := len(s.Fields); n > 0 && s.Fields[n-1].String() == "" {
			out.WriteString(",")
		}
		out.WriteString("}")
	}
	out.WriteString("]")
	return out.String()
}

func (f Field) String() string {
	if f.Value == nil {
		return f.Name
	}
	return f.Name + "=" + *f.Value
}

// Directives is a lazy parser over a comma-separated directive expression.
//
// Directives are produced one at a time by Next; the input beyond the
// current directive is not examined until pulled. A Directives value is
// forward-only and cannot be restarted; construct a new one to re-parse.
type Directives struct {
	p   *parser
	err error
}

// ParseLazy returns a lazy iterator over the directives in input.
//
// Splitting happens at top-level commas only: a comma inside a `{...}`
// field list separates fields, never directives.
func ParseLazy(input string, options ...Option) *Directives {
	d := &Directives{p: newParser(input)}
	for _, option := range options {
		option(d.p)
	}
	return d
}

// Next returns the next directive in the input.
//
// At normal end of input Next returns (nil, nil). Once a parse error has
// occurred the iterator is exhausted: every subsequent call returns the
// same error and no further directives, since parsing cannot resume past
// a structural violation.
func (d *Directives) Next() (*Directive, error) {
	if d.err != nil {
		return nil, d.err
	}
	if d.p.s.Peek() == eof {
		return nil, nil
	}
	directive, err := d.p.directive()
	if err != nil {
		d.err = err
		d.p.tracef("error: %s", err)
		return nil, err
	}
	d.p.tracef("directive: %s", directive)
	return directive, nil
}

// Err returns the error that exhausted the iterator, if any.
func (d *Directives) Err() error { return d.err }

// Parse eagerly parses every directive in input.
//
// The first structural violation aborts the whole parse; there is no
// partial-success mode. An empty input yields no directives and no error.
func Parse(input string, options ...Option) ([]Directive, error) {
	var directives []Directive
	lazy := ParseLazy(input, options...)
	for {
		directive, err := lazy.Next()
		if err != nil {
			return nil, err
		}
		if directive == nil {
			return directives, nil
		}
		directives = append(directives, *directive)
	}
}
