// core/profile/errors.go
package profile

import "fmt"

// Table names used in errors.
const (
	EmissionTable   = "emission"
	TransitionTable = "transition"
)

// UnknownStateError reports a label that does not name a state declared by
// the transition table.
type UnknownStateError struct {
	Table string // EmissionTable or TransitionTable
	State string // the unresolved label
	From  string // source row for transitions
}

func (e *UnknownStateError) Error() string {
	if e.Table == EmissionTable {
		return fmt.Sprintf("emission table references unknown state %q", e.State)
	}
	return fmt.Sprintf("transition from %s references unknown state %q", e.From, e.State)
}

// StructuralError reports a model that is not a dense left-to-right profile.
type StructuralError struct {
	State  string // offending state, if any
	Reason string
}

func (e *StructuralError) Error() string {
	if e.State == "" {
		return "structural error: " + e.Reason
	}
	return fmt.Sprintf("structural error at %s: %s", e.State, e.Reason)
}

// MissingEmissionError reports a match state without an emission row.
type MissingEmissionError struct {
	State string
}

func (e *MissingEmissionError) Error() string {
	return fmt.Sprintf("match state %s has no emission distribution", e.State)
}

// InvalidWeightError reports a negative, non-finite or non-numeric weight.
// Raw holds the source text when the weight could not be parsed at all.
type InvalidWeightError struct {
	Table  string
	State  string
	Key    string
	Weight float64
	Raw    string
}

func (e *InvalidWeightError) Error() string {
	if e.Raw != "" {
		return fmt.Sprintf("invalid %s weight %q at %s[%s]: not a number", e.Table, e.Raw, e.State, e.Key)
	}
	return fmt.Sprintf("invalid %s weight %v at %s[%s]: must be finite and >= 0", e.Table, e.Weight, e.State, e.Key)
}
