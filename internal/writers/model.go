// internal/writers/model.go
package writers

import (
	"io"

	"figmop-core/pattern"

	"figmop/internal/output"
	"figmop/internal/report"
)

func drainModels(ch <-chan report.Model) []report.Model {
	list := make([]report.Model, 0, 16)
	for m := range ch {
		list = append(list, m)
	}
	return list
}

func init() {
	// TEXT/TSV summary, streamed
	RegisterModel(output.FormatText, func(w io.Writer, args ModelArgs) error {
		return output.StreamText(w, args.In, args.Header)
	})

	// JSON array
	RegisterModel(output.FormatJSON, func(w io.Writer, args ModelArgs) error {
		return output.WriteJSON(w, drainModels(args.In))
	})

	// JSONL streaming, one state per line
	RegisterModel(output.FormatJSONL, func(w io.Writer, args ModelArgs) error {
		pipe, done := StartStateJSONLWriter(w, 64)
		for m := range args.In {
			pipe <- m
		}
		close(pipe)
		return <-done
	})

	// Persisted forms of valid models
	RegisterModel(output.FormatTSV, func(w io.Writer, args ModelArgs) error {
		return streamPersisted(w, args.In, pattern.WriteTSV)
	})
	RegisterModel(output.FormatPattern, func(w io.Writer, args ModelArgs) error {
		return streamPersisted(w, args.In, pattern.WriteAssign)
	})
}

// StartModelWriter spins up a writer goroutine for report.Model items. The
// caller closes the returned channel and then reads the single result.
func StartModelWriter(out io.Writer, format string, header bool, bufSize int) (chan<- report.Model, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan report.Model, bufSize)
	errCh := make(chan error, 1)
	go func() {
		errCh <- WriteModel(format, out, ModelArgs{Header: header, In: in})
	}()
	return in, errCh
}
