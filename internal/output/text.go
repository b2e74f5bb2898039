// internal/output/text.go
package output

import (
	"fmt"
	"io"
	"strings"

	"figmop/internal/report"
)

// FormatRowTSV returns one summary row (no trailing newline).
func FormatRowTSV(m report.Model) string {
	if !m.Valid() {
		return fmt.Sprintf("%s\t%s\t\t\t%d\t%d\t%s\t\t%s",
			m.SourceFile, StatusInvalid,
			m.Settings.MinMatches, m.Settings.MaxGenomeRegion, m.Settings.MemeFile,
			oneLine(errString(m.Err)),
		)
	}
	return fmt.Sprintf("%s\t%s\t%d\t%d\t%d\t%d\t%s\t%s\t",
		m.SourceFile, StatusOK,
		m.Params.Columns(), m.Params.NumStates(),
		m.Settings.MinMatches, m.Settings.MaxGenomeRegion, m.Settings.MemeFile,
		m.Params.Fingerprint(),
	)
}

func errString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}

// oneLine keeps error text inside its TSV cell.
func oneLine(s string) string {
	return strings.NewReplacer("\t", " ", "\n", " ").Replace(s)
}

// StreamText writes one summary row per model as it arrives. After a write
// error it keeps draining in so senders never block, and returns the first
// error once in is closed.
func StreamText(w io.Writer, in <-chan report.Model, header bool) error {
	var err error
	if header {
		_, err = fmt.Fprintln(w, TSVHeader)
	}
	for m := range in {
		if err != nil {
			continue
		}
		_, err = fmt.Fprintln(w, FormatRowTSV(m))
	}
	return err
}

// WriteText is StreamText over a slice.
func WriteText(w io.Writer, list []report.Model, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, TSVHeader); err != nil {
			return err
		}
	}
	for _, m := range list {
		if _, err := fmt.Fprintln(w, FormatRowTSV(m)); err != nil {
			return err
		}
	}
	return nil
}
