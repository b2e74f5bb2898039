// internal/writers/jsonl.go
package writers

import (
	"encoding/json"
	"io"

	"figmop/internal/jsonlutil"
	"figmop/internal/output"
	"figmop/internal/report"
)

// StartStateJSONLWriter streams every state of each valid model as one
// api.StateV1 line tagged with its source file. Invalid models produce no
// lines.
func StartStateJSONLWriter(out io.Writer, bufSize int) (chan<- report.Model, <-chan error) {
	return jsonlutil.Start[report.Model](out, bufSize,
		func(enc *json.Encoder, m report.Model) error {
			if !m.Valid() {
				return nil
			}
			for _, st := range output.ToAPIStates(m.SourceFile, m.Params) {
				if err := enc.Encode(st); err != nil {
					return err
				}
			}
			return nil
		},
		IsBrokenPipe,
	)
}
