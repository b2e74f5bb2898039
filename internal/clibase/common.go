// internal/clibase/common.go
package clibase

import (
	"errors"
	"flag"
	"fmt"

	"figmop/internal/cliutil"
	"figmop/internal/output"
)

// Common holds CLI fields shared by every figmop tool that reads pattern
// files.
type Common struct {
	// Input
	Files []string

	// Validation
	AllowMissingEmissions bool

	// Performance
	Threads int

	// Output
	Output string // text|json|jsonl|tsv|pattern
	Header bool

	// Misc
	Quiet   bool
	Version bool
}

// Register wires shared flags onto fs and returns a pointer to the "no-header" bool
// that the caller can use to set Common.Header = !noHeader after parsing.
func Register(fs *flag.FlagSet, c *Common) *bool {
	// Validation
	fs.BoolVar(&c.AllowMissingEmissions, "allow-missing-emissions", false, "accept match states without an emission row [false]")

	// Performance
	fs.IntVar(&c.Threads, "threads", 0, "worker threads (0=all CPUs) [0]")
	fs.IntVar(&c.Threads, "t", 0, "alias of --threads")

	// Output
	fs.StringVar(&c.Output, "output", output.FormatText, "output: text | json | jsonl | tsv | pattern [text]")
	fs.StringVar(&c.Output, "o", output.FormatText, "alias of --output")
	noHeader := false
	fs.BoolVar(&noHeader, "no-header", false, "suppress header line [false]")

	// Misc
	fs.BoolVar(&c.Quiet, "quiet", false, "suppress non-essential warnings [false]")
	fs.BoolVar(&c.Quiet, "q", false, "alias of --quiet")
	fs.BoolVar(&c.Version, "v", false, "print version and exit [false]")
	fs.BoolVar(&c.Version, "version", false, "print version and exit [false]")

	return &noHeader
}

// AfterParse finalizes header and expands positionals, then runs shared validation.
func AfterParse(c *Common, noHeader *bool, posArgs []string) error {
	c.Header = !*noHeader

	if len(posArgs) > 0 {
		exp, err := cliutil.ExpandPositionals(posArgs)
		if err != nil {
			return err
		}
		c.Files = append(c.Files, exp...)
	}
	return Validate(c)
}

// Validate applies shared CLI invariants used by all tools.
func Validate(c *Common) error {
	if len(c.Files) == 0 {
		return errors.New("at least one pattern file is required")
	}
	if c.Threads < 0 {
		return errors.New("--threads must be ≥ 0")
	}
	for _, f := range output.Formats {
		if c.Output == f {
			return nil
		}
	}
	return fmt.Errorf("invalid --output %q", c.Output)
}
