// internal/clibase/usage.go
package clibase

import (
	"flag"
	"fmt"
	"io"

	"figmop/internal/version"
)

// UsageCommon installs a shared Usage() handler on fs.
// extra prints tool-specific sections (usage line, examples).
func UsageCommon(fs *flag.FlagSet, name string, extra func(out io.Writer, def func(string) string)) {
	fs.Usage = func() {
		out := fs.Output()
		def := func(flagName string) string {
			if f := fs.Lookup(flagName); f != nil {
				return f.DefValue
			}
			return ""
		}

		fmt.Fprintf(out, "%s: profile-HMM parameter builder\n\n", name)
		fmt.Fprintln(out, "License: MIT")
		fmt.Fprintf(out, "Version: %s\n\n", version.Version)

		if extra != nil {
			extra(out, def)
		}

		fmt.Fprintln(out, "\nInput:")
		fmt.Fprintln(out, "  pattern-file...               Pattern files (.pat/.py assignment, .tsv rows, .json); globs allowed")

		fmt.Fprintln(out, "\nValidation:")
		fmt.Fprintf(out, "      --allow-missing-emissions Accept match states without emissions [%s]\n", def("allow-missing-emissions"))

		fmt.Fprintln(out, "\nPerformance:")
		fmt.Fprintf(out, "  -t, --threads int             Worker threads (0=all CPUs) [%s]\n", def("threads"))

		fmt.Fprintln(out, "\nOutput:")
		fmt.Fprintf(out, "  -o, --output string           Output: text | json | jsonl | tsv | pattern [%s]\n", def("output"))
		fmt.Fprintf(out, "      --no-header               Suppress header line [%s]\n", def("no-header"))

		fmt.Fprintln(out, "\nMiscellaneous:")
		fmt.Fprintf(out, "  -q, --quiet                   Suppress non-essential warnings [%s]\n", def("quiet"))
		fmt.Fprintln(out, "      --examples                Show quickstart examples and exit")
		fmt.Fprintln(out, "  -v, --version                 Print version and exit")
		fmt.Fprintln(out, "  -h, --help                    Show this help and exit")
	}
}
