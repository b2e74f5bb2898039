// Package report holds the per-file outcome handed from the pipeline to the
// writers.
package report

import (
	"errors"

	"figmop-core/pattern"
	"figmop-core/profile"
)

// Stage names where a file failed.
const (
	StageLoad  = "load"
	StageBuild = "build"
)

// Model is the outcome of loading and building one pattern file.
type Model struct {
	Index      int // position in the input list
	SourceFile string
	Settings   pattern.Settings
	Params     *profile.ParameterSet // nil when Err != nil
	Stage      string                // where Err happened
	Err        error
}

func (m Model) Valid() bool { return m.Err == nil && m.Params != nil }

// Error kinds, as reported in api.ModelV1.ErrorKind.
const (
	KindInput           = "input"
	KindUnknownState    = "unknown_state"
	KindStructural      = "structural"
	KindMissingEmission = "missing_emission"
	KindInvalidWeight   = "invalid_weight"
)

// ErrorKind classifies err by the builder's error taxonomy. Anything that
// is not a model error is an input error.
func ErrorKind(err error) string {
	var (
		us *profile.UnknownStateError
		se *profile.StructuralError
		me *profile.MissingEmissionError
		we *profile.InvalidWeightError
	)
	switch {
	case err == nil:
		return ""
	case errors.As(err, &us):
		return KindUnknownState
	case errors.As(err, &se):
		return KindStructural
	case errors.As(err, &me):
		return KindMissingEmission
	case errors.As(err, &we):
		return KindInvalidWeight
	}
	return KindInput
}
