// core/profile/dist.go
package profile

import "sort"

// Distribution is an immutable row of weights keyed by emitted symbol or by
// destination state label. Weights are kept exactly as given.
type Distribution struct {
	keys    []string
	weights []float64
	idx     map[string]int
}

// newDistribution copies row into a Distribution ordered by less.
func newDistribution(row map[string]float64, less func(a, b string) bool) Distribution {
	d := Distribution{
		keys:    make([]string, 0, len(row)),
		weights: make([]float64, len(row)),
		idx:     make(map[string]int, len(row)),
	}
	for k := range row {
		d.keys = append(d.keys, k)
	}
	sort.Slice(d.keys, func(i, j int) bool { return less(d.keys[i], d.keys[j]) })
	for i, k := range d.keys {
		d.weights[i] = row[k]
		d.idx[k] = i
	}
	return d
}

func lexical(a, b string) bool { return a < b }

// Len returns the number of entries.
func (d Distribution) Len() int { return len(d.keys) }

// At returns the i-th entry in key order.
func (d Distribution) At(i int) (string, float64) { return d.keys[i], d.weights[i] }

// Weight looks up the weight stored for key.
func (d Distribution) Weight(key string) (float64, bool) {
	i, ok := d.idx[key]
	if !ok {
		return 0, false
	}
	return d.weights[i], true
}

// Keys returns a copy of the keys in order.
func (d Distribution) Keys() []string { return append([]string(nil), d.keys...) }

// Sum adds up all weights. It is reported, never enforced.
func (d Distribution) Sum() float64 {
	var s float64
	for _, w := range d.weights {
		s += w
	}
	return s
}

// Map returns a fresh copy of the row as a map.
func (d Distribution) Map() map[string]float64 {
	m := make(map[string]float64, len(d.keys))
	for i, k := range d.keys {
		m[k] = d.weights[i]
	}
	return m
}
