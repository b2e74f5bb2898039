// internal/writers/persist.go
package writers

import (
	"fmt"
	"io"

	"figmop-core/pattern"

	"figmop/internal/report"
)

// streamPersisted writes each valid model under a "# source:" comment.
// Both persisted formats treat '#' lines as comments, so a single-model
// output reloads as is.
func streamPersisted(w io.Writer, in <-chan report.Model, write func(io.Writer, *pattern.File) error) error {
	var err error
	first := true
	for m := range in {
		if err != nil || !m.Valid() {
			continue
		}
		if !first {
			if _, err = fmt.Fprintln(w); err != nil {
				continue
			}
		}
		first = false
		if _, err = fmt.Fprintf(w, "# source: %s\n", m.SourceFile); err != nil {
			continue
		}
		err = write(w, pattern.FromParams(m.SourceFile, m.Settings, m.Params))
	}
	return err
}
