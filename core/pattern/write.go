// core/pattern/write.go
package pattern

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"figmop-core/profile"
)

// FormatWeight renders w so that it reads back as a float ("1.0", not "1").
func FormatWeight(w float64) string {
	s := strconv.FormatFloat(w, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eIN") {
		s += ".0"
	}
	return s
}

func quote(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `'`, `\'`, "\n", `\n`, "\t", `\t`)
	return "'" + r.Replace(s) + "'"
}

var tsvEscaper = strings.NewReplacer(`\`, `\\`, "\t", `\t`, "\n", `\n`, "\r", `\r`)

// escapeField keeps a value inside one TSV cell.
func escapeField(s string) string { return tsvEscaper.Replace(s) }

func rowLabels(t profile.Table) []string {
	labels := make([]string, 0, len(t))
	for k := range t {
		labels = append(labels, k)
	}
	sort.Slice(labels, func(i, j int) bool { return profile.LessLabel(labels[i], labels[j]) })
	return labels
}

func rowKeys(row map[string]float64, less func(a, b string) bool) []string {
	keys := make([]string, 0, len(row))
	for k := range row {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return less(keys[i], keys[j]) })
	return keys
}

func lexical(a, b string) bool { return a < b }

// WriteAssign writes f in the assignment format, rows in canonical state
// order. Parse(WriteAssign(f)) yields the same settings and tables.
func WriteAssign(w io.Writer, f *File) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%s = %d\n", KeyMinMatches, f.Settings.MinMatches)
	fmt.Fprintf(bw, "%s = %d\n", KeyMaxGenomeRegion, f.Settings.MaxGenomeRegion)
	if f.Settings.MemeFile != "" {
		fmt.Fprintf(bw, "%s = %s\n", KeyMemeFile, quote(f.Settings.MemeFile))
	}
	writeTable := func(name string, t profile.Table, less func(a, b string) bool) {
		fmt.Fprintf(bw, "\n%s = {\n", name)
		for _, label := range rowLabels(t) {
			row := t[label]
			parts := make([]string, 0, len(row))
			for _, k := range rowKeys(row, less) {
				parts = append(parts, quote(k)+": "+FormatWeight(row[k]))
			}
			fmt.Fprintf(bw, "\t%s: {%s},\n", quote(label), strings.Join(parts, ", "))
		}
		fmt.Fprintln(bw, "}")
	}
	writeTable(KeyEmissions, f.Emissions, lexical)
	writeTable(KeyTransitions, f.Transitions, profile.LessLabel)
	return bw.Flush()
}

// WriteTSV writes f in the row format accepted by ParseTSV. Backslash,
// tab, newline and carriage return inside a field are escaped.
func WriteTSV(w io.Writer, f *File) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%s\t%s\t%d\n", rowSetting, KeyMinMatches, f.Settings.MinMatches)
	fmt.Fprintf(bw, "%s\t%s\t%d\n", rowSetting, KeyMaxGenomeRegion, f.Settings.MaxGenomeRegion)
	if f.Settings.MemeFile != "" {
		fmt.Fprintf(bw, "%s\t%s\t%s\n", rowSetting, KeyMemeFile, escapeField(f.Settings.MemeFile))
	}
	writeRows := func(kind string, t profile.Table, less func(a, b string) bool) {
		for _, label := range rowLabels(t) {
			row := t[label]
			if len(row) == 0 {
				fmt.Fprintf(bw, "%s\t%s\n", kind, escapeField(label))
				continue
			}
			for _, k := range rowKeys(row, less) {
				fmt.Fprintf(bw, "%s\t%s\t%s\t%s\n", kind, escapeField(label), escapeField(k), FormatWeight(row[k]))
			}
		}
	}
	writeRows(rowEmission, f.Emissions, lexical)
	writeRows(rowTransition, f.Transitions, profile.LessLabel)
	return bw.Flush()
}
