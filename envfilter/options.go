package envfilter

import "io"

// An Option modifies the behaviour of the parser.
type Option func(p *parser)

// Filename is an Option that sets the filename reported in error
// positions, for expressions loaded from a file rather than an
// environment variable.
func Filename(name string) Option {
	return func(p *parser) {
		p.s.SetFilename(name)
	}
}

// Trace the parse to "w", one line per directive or structural error.
func Trace(w io.Writer) Option {
	return func(p *parser) {
		p.trace = w
	}
}
