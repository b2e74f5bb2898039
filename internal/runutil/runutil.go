// internal/runutil/runutil.go
package runutil

import (
	"fmt"
	"math"
	"runtime"

	"figmop-core/profile"
)

// SumTolerance is how far a row total may drift from 1.0 before
// RowSumWarnings reports it.
const SumTolerance = 1e-6

// ResolveThreads maps the --threads value to a worker count: 0 means all
// CPUs.
func ResolveThreads(n int) int {
	if n <= 0 {
		return runtime.NumCPU()
	}
	return n
}

// RowSumWarnings lists rows of p whose weights do not add up to 1.0 within
// tol. Rows are reported in canonical state order, transitions before
// emissions for each state. Empty transition rows are not reported.
func RowSumWarnings(p *profile.ParameterSet, tol float64) []string {
	var out []string
	for _, rs := range p.RowSums() {
		if d, _ := p.Transitions(rs.State); d.Len() > 0 && math.Abs(rs.Transition-1) > tol {
			out = append(out, fmt.Sprintf("%s transition weights sum to %g, not 1.0", rs.State, rs.Transition))
		}
		if rs.HasEmission && math.Abs(rs.Emission-1) > tol {
			out = append(out, fmt.Sprintf("%s emission weights sum to %g, not 1.0", rs.State, rs.Emission))
		}
	}
	return out
}
