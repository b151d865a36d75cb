// Command envfilter parses a log/trace filter expression and dumps the
// resulting directives, for checking what a RUST_LOG-style value means
// before handing it to a subscriber.
package main

import (
	"os"

	"github.com/alecthomas/repr"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/CAD97/tracing-utils/envfilter"
)

var (
	lazyFlag  = kingpin.Flag("lazy", "Pull directives one at a time instead of parsing eagerly.").Bool()
	traceFlag = kingpin.Flag("trace", "Trace the parse to stderr.").Bool()
	exprArg   = kingpin.Arg("expression", "Filter expression, eg. 'app[request{id=42}]=trace'. Defaults to $ENV_FILTER.").
			Envar("ENV_FILTER").String()
)

func main() {
	kingpin.CommandLine.Help = `Parse a filter expression into its directives.

An expression is a comma-separated list of directives of the form
target[span{field=value}]=level, every part optional. Parsing is purely
structural; unknown levels and targets are passed through verbatim.`
	kingpin.Parse()
	if *exprArg == "" {
		kingpin.Usage()
		os.Exit(1)
	}

	var options []envfilter.Option
	if *traceFlag {
		options = append(options, envfilter.Trace(os.Stderr))
	}

	if *lazyFlag {
		directives := envfilter.ParseLazy(*exprArg, options...)
		for {
			directive, err := directives.Next()
			kingpin.FatalIfError(err, "")
			if directive == nil {
				return
			}
			repr.Println(directive)
		}
	}

	directives, err := envfilter.Parse(*exprArg, options...)
	kingpin.FatalIfError(err, "")
	repr.Println(directives)
}
