// internal/appcore/writer_factories.go
package appcore

import (
	"io"

	"figmop/internal/report"
	"figmop/internal/writers"
)

// ModelWriterFactory starts the registered writer for Format.
type ModelWriterFactory struct {
	Format string
	Header bool
}

func NewModelWriterFactory(format string, header bool) ModelWriterFactory {
	return ModelWriterFactory{Format: format, Header: header}
}

func (w ModelWriterFactory) Start(out io.Writer, bufSize int) (chan<- report.Model, <-chan error) {
	return writers.StartModelWriter(out, w.Format, w.Header, bufSize)
}
