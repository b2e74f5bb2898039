// core/profile/params.go
package profile

import (
	"encoding/binary"
	"encoding/hex"
	"math"

	"golang.org/x/crypto/blake2b"
)

// ParameterSet is a validated, immutable profile-HMM parameter set. States
// are stored in canonical order and addressed by a dense index, so hot loops
// can use slices instead of label lookups.
type ParameterSet struct {
	n      int
	states []State
	index  map[State]int
	emit   []Distribution
	hasEm  []bool
	trans  []Distribution
	succ   [][]State
	digest [blake2b.Size256]byte
}

func newParameterSet(n int, states []State, emissions, transitions Table) *ParameterSet {
	p := &ParameterSet{
		n:      n,
		states: states,
		index:  make(map[State]int, len(states)),
		emit:   make([]Distribution, len(states)),
		hasEm:  make([]bool, len(states)),
		trans:  make([]Distribution, len(states)),
		succ:   make([][]State, len(states)),
	}
	for i, s := range states {
		label := s.String()
		p.index[s] = i
		if row, ok := emissions[label]; ok {
			p.emit[i] = newDistribution(row, lexical)
			p.hasEm[i] = true
		}
		p.trans[i] = newDistribution(transitions[label], LessLabel)
		p.succ[i] = make([]State, p.trans[i].Len())
		for j := range p.succ[i] {
			dest, _ := p.trans[i].At(j)
			p.succ[i][j], _ = ParseState(dest)
		}
	}
	p.digest = p.computeDigest()
	return p
}

// Columns returns N, the number of motif columns.
func (p *ParameterSet) Columns() int { return p.n }

// NumStates returns the size of the state set.
func (p *ParameterSet) NumStates() int { return len(p.states) }

// States returns the state set in canonical order.
func (p *ParameterSet) States() []State { return append([]State(nil), p.states...) }

// Has reports whether s belongs to the model.
func (p *ParameterSet) Has(s State) bool {
	_, ok := p.index[s]
	return ok
}

// Index returns the dense index of s.
func (p *ParameterSet) Index(s State) (int, bool) {
	i, ok := p.index[s]
	return i, ok
}

// StateAt is the inverse of Index.
func (p *ParameterSet) StateAt(i int) State { return p.states[i] }

// Emission returns the emission distribution of a match state. The second
// result is false for non-match states and for match states built without
// emissions under Config.AllowMissingEmissions.
func (p *ParameterSet) Emission(s State) (Distribution, bool) {
	i, ok := p.index[s]
	if !ok || !p.hasEm[i] {
		return Distribution{}, false
	}
	return p.emit[i], true
}

// EmissionOf is Emission keyed by label.
func (p *ParameterSet) EmissionOf(label string) (Distribution, bool) {
	s, err := ParseState(label)
	if err != nil {
		return Distribution{}, false
	}
	return p.Emission(s)
}

// Transitions returns the outgoing transition distribution of s, keyed by
// destination label. Zero weights given in the input are kept.
func (p *ParameterSet) Transitions(s State) (Distribution, bool) {
	i, ok := p.index[s]
	if !ok {
		return Distribution{}, false
	}
	return p.trans[i], true
}

// TransitionsOf is Transitions keyed by label.
func (p *ParameterSet) TransitionsOf(label string) (Distribution, bool) {
	s, err := ParseState(label)
	if err != nil {
		return Distribution{}, false
	}
	return p.Transitions(s)
}

// Successors returns the parsed destinations of s in canonical order.
func (p *ParameterSet) Successors(s State) []State {
	i, ok := p.index[s]
	if !ok {
		return nil
	}
	return append([]State(nil), p.succ[i]...)
}

// Tables re-derives the two input tables. The result equals the tables
// given to Build and is a fresh copy the caller may modify.
func (p *ParameterSet) Tables() (emissions, transitions Table) {
	emissions = make(Table)
	transitions = make(Table, len(p.states))
	for i, s := range p.states {
		label := s.String()
		if p.hasEm[i] {
			emissions[label] = p.emit[i].Map()
		}
		transitions[label] = p.trans[i].Map()
	}
	return emissions, transitions
}

// RowSum holds the weight totals of one state's rows.
type RowSum struct {
	State       State
	Emission    float64
	HasEmission bool
	Transition  float64
}

// RowSums reports per-state row totals in canonical order. Nothing in the
// model depends on them; callers use them for diagnostics.
func (p *ParameterSet) RowSums() []RowSum {
	out := make([]RowSum, len(p.states))
	for i, s := range p.states {
		out[i] = RowSum{
			State:       s,
			Emission:    p.emit[i].Sum(),
			HasEmission: p.hasEm[i],
			Transition:  p.trans[i].Sum(),
		}
	}
	return out
}

// Fingerprint returns the hex BLAKE2b-256 digest of the model content.
// Parameter sets built from equal tables have equal fingerprints.
func (p *ParameterSet) Fingerprint() string { return hex.EncodeToString(p.digest[:]) }

func (p *ParameterSet) computeDigest() [blake2b.Size256]byte {
	h, _ := blake2b.New256(nil) // only fails for oversized keys
	var num [8]byte
	writeStr := func(s string) {
		binary.LittleEndian.PutUint64(num[:], uint64(len(s)))
		_, _ = h.Write(num[:])
		_, _ = h.Write([]byte(s))
	}
	writeRow := func(tag string, d Distribution) {
		writeStr(tag)
		binary.LittleEndian.PutUint64(num[:], uint64(d.Len()))
		_, _ = h.Write(num[:])
		for j := 0; j < d.Len(); j++ {
			k, w := d.At(j)
			writeStr(k)
			binary.LittleEndian.PutUint64(num[:], math.Float64bits(w))
			_, _ = h.Write(num[:])
		}
	}
	for i, s := range p.states {
		writeStr(s.String())
		if p.hasEm[i] {
			writeRow("E", p.emit[i])
		}
		writeRow("T", p.trans[i])
	}
	var out [blake2b.Size256]byte
	copy(out[:], h.Sum(nil))
	return out
}
