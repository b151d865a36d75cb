// Package envfilter parses the compact expression language used to
// configure log and trace filtering, a comma-separated list of directives
// of the form:
//
//	target[span{field=value,field2}]=level
//
// Every component is optional. The grammar, in EBNF:
//
//	Expression = Directive { "," Directive } .
//	Directive  = [ Target ] [ "[" [ Name ] [ "{" Fields "}" ] "]" ] [ "=" [ Level ] ] .
//	Fields     = [ Field { "," Field } ] .
//	Field      = [ Name ] [ "=" [ Value ] ] .
//
// where Target, Name, Value and Level are runs of arbitrary characters
// excluding the reserved set "[]{}=,\"/". Reserved characters are always
// structural; the first occurrence of one ends the token being read, so
// extracted text can never contain one and there is no escaping mechanism.
//
// The parser performs lexical extraction only. It does not judge whether a
// level is a recognised severity, interpret field values as regular
// expressions, or check target paths for well-formedness; that is left to
// the consumer evaluating the directives against events. Parsing is
// strict: input that does not exactly match the grammar fails with a
// positional ParseError, and nothing after the error position is parsed.
//
// Use Parse for the directive list in one shot, or ParseLazy to pull
// directives one at a time:
//
//	directives, err := envfilter.Parse("tokio::net=debug,app[request{id=42}]=trace")
package envfilter
