// core/profile/builder.go
package profile

import (
	"fmt"
	"math"
	"sort"
)

// Table is the tabular input form: row label -> (key -> weight). For
// emissions the keys are symbols, for transitions destination labels.
type Table map[string]map[string]float64

// Config controls validation.
type Config struct {
	// AllowMissingEmissions accepts match states without an emission row.
	AllowMissingEmissions bool
}

// Builder validates tables and constructs ParameterSets. It holds no state
// besides its Config and may be shared.
type Builder struct {
	cfg Config
}

func NewBuilder(cfg Config) *Builder { return &Builder{cfg: cfg} }

// Build validates with the default Config (emissions required).
func Build(emissions, transitions Table) (*ParameterSet, error) {
	return NewBuilder(Config{}).Build(emissions, transitions)
}

// Build validates both tables and returns the parameter set. Checks run in a
// fixed order and rows are visited in canonical state order, so the same
// input always reports the same error:
//
//  1. transition keys parse, R exists, at least one match state
//  2. column indices of each kind are dense from 1
//  3. every destination is a declared state
//  4. every transition stays on the left-to-right chain
//  5. emission rows name declared match states
//  6. every match state has emissions (unless allowed otherwise)
//  7. every weight is finite and >= 0
func (b *Builder) Build(emissions, transitions Table) (*ParameterSet, error) {
	states, err := parseStates(transitions)
	if err != nil {
		return nil, err
	}
	// Gaps before closure: a removed row shows up as a column gap, not as
	// the dangling references to it.
	n, err := checkColumns(states)
	if err != nil {
		return nil, err
	}
	if err := checkClosure(states, transitions); err != nil {
		return nil, err
	}
	if err := checkTopology(n, states, transitions); err != nil {
		return nil, err
	}
	if err := b.checkEmissions(states, emissions); err != nil {
		return nil, err
	}
	if err := checkWeights(states, emissions, transitions); err != nil {
		return nil, err
	}
	return newParameterSet(n, states, emissions, transitions), nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func parseStates(transitions Table) ([]State, error) {
	if len(transitions) == 0 {
		return nil, &StructuralError{Reason: "transition table is empty"}
	}
	states := make([]State, 0, len(transitions))
	for _, label := range sortedKeys(transitions) {
		s, err := ParseState(label)
		if err != nil {
			return nil, &StructuralError{State: label, Reason: err.Error()}
		}
		states = append(states, s)
	}
	sort.Slice(states, func(i, j int) bool { return Less(states[i], states[j]) })
	if states[0] != R {
		return nil, &StructuralError{Reason: "random state R is not declared"}
	}
	return states, nil
}

// checkColumns returns N, the highest match column.
func checkColumns(states []State) (int, error) {
	var top [Delete + 1]int
	seen := make(map[State]bool, len(states))
	for _, s := range states {
		seen[s] = true
		if s.Column > top[s.Kind] {
			top[s.Kind] = s.Column
		}
	}
	n := top[Match]
	if n == 0 {
		return 0, &StructuralError{Reason: "no match states declared"}
	}
	for _, kind := range Kinds {
		last := State{Kind: kind, Column: top[kind]}
		if last.Column > n {
			return 0, &StructuralError{
				State:  last.String(),
				Reason: fmt.Sprintf("column %d is past the last match column %d", last.Column, n),
			}
		}
		for k := 1; k < last.Column; k++ {
			s := State{Kind: kind, Column: k}
			if !seen[s] {
				return 0, &StructuralError{
					State:  s.String(),
					Reason: fmt.Sprintf("column gap: %s is missing but %s is declared", s, last),
				}
			}
		}
	}
	return n, nil
}

func checkClosure(states []State, transitions Table) error {
	for _, s := range states {
		src := s.String()
		for _, dest := range sortedKeys(transitions[src]) {
			if _, ok := transitions[dest]; !ok {
				return &UnknownStateError{Table: TransitionTable, State: dest, From: src}
			}
		}
	}
	return nil
}

// AllowedSuccessors returns the destinations a state may reach in an N-column
// profile: Ik, Mk+1 and Dk+1 from any column-k state, with the boundary
// set {R, M1, D1} taking the place of the next column after column N and
// after R.
func AllowedSuccessors(s State, n int) []State {
	if s.Kind == Random {
		return []State{R, M(1), D(1)}
	}
	k := s.Column
	if k >= n {
		return []State{I(k), R, M(1), D(1)}
	}
	return []State{I(k), M(k + 1), D(k + 1)}
}

func checkTopology(n int, states []State, transitions Table) error {
	for _, s := range states {
		src := s.String()
		allowed := AllowedSuccessors(s, n)
		for _, label := range sortedKeys(transitions[src]) {
			dest, _ := ParseState(label) // closure already checked
			ok := false
			for _, a := range allowed {
				if a == dest {
					ok = true
					break
				}
			}
			if !ok {
				return &StructuralError{
					State:  src,
					Reason: fmt.Sprintf("transition to %s leaves the left-to-right chain", label),
				}
			}
		}
	}
	return nil
}

func (b *Builder) checkEmissions(states []State, emissions Table) error {
	declared := make(map[State]bool, len(states))
	for _, s := range states {
		declared[s] = true
	}
	for _, label := range sortedKeys(emissions) {
		s, err := ParseState(label)
		if err != nil || !declared[s] {
			return &UnknownStateError{Table: EmissionTable, State: label}
		}
		if s.Kind != Match {
			return &StructuralError{State: label, Reason: "only match states carry emissions"}
		}
	}
	if b.cfg.AllowMissingEmissions {
		return nil
	}
	for _, s := range states {
		if s.Kind == Match && len(emissions[s.String()]) == 0 {
			return &MissingEmissionError{State: s.String()}
		}
	}
	return nil
}

func validWeight(w float64) bool {
	return !math.IsNaN(w) && !math.IsInf(w, 0) && w >= 0
}

func checkWeights(states []State, emissions, transitions Table) error {
	for _, s := range states {
		src := s.String()
		row := transitions[src]
		for _, key := range sortedKeys(row) {
			if w := row[key]; !validWeight(w) {
				return &InvalidWeightError{Table: TransitionTable, State: src, Key: key, Weight: w}
			}
		}
	}
	for _, s := range states {
		src := s.String()
		row := emissions[src]
		for _, key := range sortedKeys(row) {
			if w := row[key]; !validWeight(w) {
				return &InvalidWeightError{Table: EmissionTable, State: src, Key: key, Weight: w}
			}
		}
	}
	return nil
}
