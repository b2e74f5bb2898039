// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"
	"sort"

	"figmop/internal/report"
)

// ModelArgs is the payload handed to a registered model writer.
type ModelArgs struct {
	Header bool
	In     <-chan report.Model
}

// ModelWriters maps an output format to its handler. Handlers register in
// init() blocks and must drain In completely.
var ModelWriters = map[string]func(w io.Writer, args ModelArgs) error{}

// RegisterModel adds or replaces (last wins) the writer for format.
func RegisterModel(format string, fn func(io.Writer, ModelArgs) error) { ModelWriters[format] = fn }

// WriteModel dispatches to the writer registered for format.
func WriteModel(format string, w io.Writer, args ModelArgs) error {
	fn, ok := ModelWriters[format]
	if !ok {
		for range args.In {
		}
		return fmt.Errorf("unknown model format %q (no writer registered)", format)
	}
	return fn(w, args)
}

// Formats returns the registered formats, sorted.
func Formats() []string {
	out := make([]string, 0, len(ModelWriters))
	for f := range ModelWriters {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}
