// internal/cmdutil/run.go
package cmdutil

import (
	"context"

	"figmop/internal/pipeline"
	"figmop/internal/report"
)

// Tally counts build outcomes.
type Tally struct {
	Total       int
	Invalid     int // failed in the builder
	InputErrors int // failed before the builder (I/O, syntax)
}

// RunStream runs the shared pipeline, lets visit inspect every outcome, and
// forwards each one through send. It returns the tally and the first
// pipeline or send error.
func RunStream(
	ctx context.Context,
	cfg pipeline.Config,
	files []string,
	visit func(report.Model),
	send func(report.Model) error,
) (Tally, error) {
	var t Tally
	err := pipeline.ForEachModel(ctx, cfg, files, func(m report.Model) error {
		t.Total++
		switch {
		case m.Valid():
		case m.Stage == report.StageLoad:
			t.InputErrors++
		default:
			t.Invalid++
		}
		if visit != nil {
			visit(m)
		}
		return send(m)
	})
	return t, err
}
