// internal/output/json.go
package output

import (
	"io"

	"figmop-core/profile"

	"figmop/internal/jsonutil"
	"figmop/internal/report"
	"figmop/pkg/api"
)

// ToAPIModel converts a build outcome to the stable wire schema (v1).
// States are attached only for valid models.
func ToAPIModel(m report.Model) api.ModelV1 {
	v := api.ModelV1{
		SourceFile:      m.SourceFile,
		Valid:           m.Valid(),
		MinMatches:      m.Settings.MinMatches,
		MaxGenomeRegion: m.Settings.MaxGenomeRegion,
		MemeFile:        m.Settings.MemeFile,
	}
	if !v.Valid {
		v.Error = errString(m.Err)
		v.ErrorKind = report.ErrorKind(m.Err)
		return v
	}
	v.Columns = m.Params.Columns()
	v.NumStates = m.Params.NumStates()
	v.Fingerprint = m.Params.Fingerprint()
	v.States = ToAPIStates("", m.Params)
	return v
}

// ToAPIStates lists the states of p in canonical order. source is copied
// into every row (JSONL output); pass "" to omit it.
func ToAPIStates(source string, p *profile.ParameterSet) []api.StateV1 {
	out := make([]api.StateV1, 0, p.NumStates())
	for _, s := range p.States() {
		st := api.StateV1{
			SourceFile: source,
			State:      s.String(),
			Kind:       s.Kind.String(),
			Column:     s.Column,
		}
		if d, ok := p.Emission(s); ok {
			st.Emissions = d.Map()
		}
		d, _ := p.Transitions(s)
		st.Transitions = d.Map()
		out = append(out, st)
	}
	return out
}

func toAPIModels(list []report.Model) []api.ModelV1 {
	out := make([]api.ModelV1, 0, len(list))
	for _, m := range list {
		out = append(out, ToAPIModel(m))
	}
	return out
}

// WriteJSON writes a single JSON array of v1 models (pretty-indented).
func WriteJSON(w io.Writer, list []report.Model) error {
	return jsonutil.EncodePretty(w, toAPIModels(list))
}
