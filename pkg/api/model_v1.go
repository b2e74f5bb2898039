// pkg/api/model_v1.go
package api

// ModelV1 is the stable JSON schema for one pattern-file report.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type ModelV1 struct {
	SourceFile      string    `json:"source_file"`
	Valid           bool      `json:"valid"`
	Error           string    `json:"error,omitempty"`
	ErrorKind       string    `json:"error_kind,omitempty"` // input | unknown_state | structural | missing_emission | invalid_weight
	Columns         int       `json:"columns,omitempty"`
	NumStates       int       `json:"num_states,omitempty"`
	Fingerprint     string    `json:"fingerprint,omitempty"`
	MinMatches      int       `json:"min_matches"`
	MaxGenomeRegion int       `json:"max_genome_region"`
	MemeFile        string    `json:"meme_file,omitempty"`
	States          []StateV1 `json:"states,omitempty"`
}

// StateV1 is one state of a valid model. Weights are the raw input weights.
type StateV1 struct {
	SourceFile  string             `json:"source_file,omitempty"`
	State       string             `json:"state"`
	Kind        string             `json:"kind"` // random | match | insert | delete
	Column      int                `json:"column"`
	Emissions   map[string]float64 `json:"emissions,omitempty"`
	Transitions map[string]float64 `json:"transitions"`
}
