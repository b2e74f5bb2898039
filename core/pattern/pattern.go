// core/pattern/pattern.go
package pattern

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"figmop-core/profile"
)

// Settings are scan parameters stored alongside a model. They are carried
// through to the scanning program and never affect the parameter set.
type Settings struct {
	MinMatches      int    `json:"min_matches"`
	MaxGenomeRegion int    `json:"max_genome_region"`
	MemeFile        string `json:"meme_file,omitempty"`
}

// File is one pattern file: settings plus the two model tables.
type File struct {
	Name        string        `json:"-"`
	Settings    Settings      `json:"settings"`
	Emissions   profile.Table `json:"match_emissions"`
	Transitions profile.Table `json:"transition_probabilities"`
}

// Names recognised in the assignment format.
const (
	KeyMinMatches      = "min_matches"
	KeyMaxGenomeRegion = "max_genome_region"
	KeyMemeFile        = "meme_file"
	KeyEmissions       = "matchEmissions"
	KeyTransitions     = "transitionProbabilities"
)

// Build validates the tables of f with cfg.
func (f *File) Build(cfg profile.Config) (*profile.ParameterSet, error) {
	return profile.NewBuilder(cfg).Build(f.Emissions, f.Transitions)
}

// FromParams rebuilds a File from a validated parameter set.
func FromParams(name string, s Settings, p *profile.ParameterSet) *File {
	em, tr := p.Tables()
	return &File{Name: name, Settings: s, Emissions: em, Transitions: tr}
}

// Format names.
const (
	FormatAssign = "assign"
	FormatTSV    = "tsv"
	FormatJSON   = "json"
)

// FormatOf picks the format from the file extension.
func FormatOf(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".tsv":
		return FormatTSV
	case ".json":
		return FormatJSON
	}
	return FormatAssign
}

// Load reads a pattern file in the format implied by its extension.
func Load(path string) (*File, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = fh.Close() }()

	var f *File
	switch FormatOf(path) {
	case FormatTSV:
		f, err = ParseTSV(fh, path)
	case FormatJSON:
		f, err = ParseJSON(fh, path)
	default:
		f, err = Parse(fh, path)
	}
	if err != nil {
		return nil, err
	}
	return f, nil
}

func (f *File) finish() error {
	if len(f.Transitions) == 0 {
		return fmt.Errorf("%s: no %s table", f.Name, KeyTransitions)
	}
	if f.Emissions == nil {
		f.Emissions = profile.Table{}
	}
	if f.Settings.MinMatches < 0 {
		return fmt.Errorf("%s: %s must be >= 0", f.Name, KeyMinMatches)
	}
	if f.Settings.MaxGenomeRegion < 0 {
		return fmt.Errorf("%s: %s must be >= 0", f.Name, KeyMaxGenomeRegion)
	}
	return nil
}
