package output

// Output formats accepted by --output.
const (
	FormatText    = "text"
	FormatJSON    = "json"
	FormatJSONL   = "jsonl"
	FormatTSV     = "tsv"
	FormatPattern = "pattern"
)

// Formats lists the output formats in help order.
var Formats = []string{FormatText, FormatJSON, FormatJSONL, FormatTSV, FormatPattern}

// TSVHeader is the header row of the text summary.
// Keep this as the single source of truth; all writers should use it.
const TSVHeader = "source_file\tstatus\tcolumns\tstates\tmin_matches\tmax_genome_region\tmeme_file\tfingerprint\terror"

// Status values in the text summary.
const (
	StatusOK      = "ok"
	StatusInvalid = "invalid"
)
