// internal/cli/options.go
package cli

import (
	"flag"
	"fmt"
	"io"

	"figmop/internal/clibase"
	"figmop/internal/cliutil"
)

// Options holds all figmop-model flags and arguments.
type Options struct {
	clibase.Common
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	clibase.UsageCommon(fs, name, func(out io.Writer, _ func(string) string) {
		fmt.Fprintf(out, "Usage:\n  %s [options] pattern-file...\n", name)
		fmt.Fprintln(out, "\nLoads each pattern file, validates its match emissions and transition")
		fmt.Fprintln(out, "probabilities, and reports the resulting parameter set. Exit status is 1")
		fmt.Fprintln(out, "when any model is invalid, 2 on usage or input errors.")
	})
	return fs
}

// ParseArgs registers and parses all flags; positionals are pattern files
// and may be interleaved with flags. --examples yields
// clibase.ErrPrintedAndExitOK and the caller prints PrintExamples.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help, examples bool

	noHeader := clibase.Register(fs, &opt.Common)
	fs.BoolVar(&help, "h", false, "show this help message (shorthand) [false]")
	fs.BoolVar(&examples, "examples", false, "show quickstart examples and exit [false]")

	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return opt, err
	}
	if help {
		return opt, flag.ErrHelp
	}
	if examples {
		return opt, clibase.ErrPrintedAndExitOK
	}
	if opt.Version {
		return opt, nil
	}
	return opt, clibase.AfterParse(&opt.Common, noHeader, posArgs)
}

// PrintExamples writes the quickstart block for figmop-model.
func PrintExamples(out io.Writer, name string) {
	clibase.PrintExamples(out, name, func(w io.Writer) {
		fmt.Fprintln(w, "  # validate a pattern file and print a one-line summary")
		fmt.Fprintf(w, "  %s gst_refined.pat\n\n", name)
		fmt.Fprintln(w, "  # full parameter sets as JSON")
		fmt.Fprintf(w, "  %s -o json gsto.pat gst_refined.pat\n\n", name)
		fmt.Fprintln(w, "  # one JSON line per state, for jq")
		fmt.Fprintf(w, "  %s -o jsonl 'patterns/*.pat' | jq -c 'select(.kind==\"match\")'\n\n", name)
		fmt.Fprintln(w, "  # persist the canonical row form and reload it")
		fmt.Fprintf(w, "  %s -o tsv gsto.pat > gsto.tsv && %s gsto.tsv\n\n", name, name)
		fmt.Fprintln(w, "  # accept match states without emissions")
		fmt.Fprintf(w, "  %s --allow-missing-emissions draft.pat\n", name)
	})
}
