// internal/appcore/core.go
package appcore

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"figmop-core/profile"

	"figmop/internal/cmdutil"
	"figmop/internal/pipeline"
	"figmop/internal/report"
	"figmop/internal/runutil"
	"figmop/internal/writers"
)

// Exit codes shared by every figmop tool.
const (
	ExitOK          = 0
	ExitInvalid     = 1 // at least one model failed validation
	ExitUsage       = 2 // bad flags or unreadable/unparsable input
	ExitOutput      = 3
	ExitInterrupted = 130
)

type Options struct {
	Files []string

	AllowMissingEmissions bool
	Threads               int

	Quiet bool
}

type WriterFactory interface {
	Start(out io.Writer, bufSize int) (chan<- report.Model, <-chan error)
}

// Run builds every file, streams the outcomes to the writer, reports
// failures on stderr and maps the result to an exit code.
func Run(
	parent context.Context,
	stdout, stderr io.Writer,
	o Options,
	wf WriterFactory,
) int {
	outw := bufio.NewWriter(stdout)
	thr := runutil.ResolveThreads(o.Threads)

	inCh, writeErr := wf.Start(outw, thr*4)

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	tally, perr := cmdutil.RunStream(
		ctx,
		pipeline.Config{
			Threads: thr,
			Profile: profile.Config{AllowMissingEmissions: o.AllowMissingEmissions},
		},
		o.Files,
		func(m report.Model) {
			if !m.Valid() {
				fmt.Fprintln(stderr, m.Err)
				return
			}
			for _, w := range runutil.RowSumWarnings(m.Params, runutil.SumTolerance) {
				cmdutil.Warnf(stderr, o.Quiet, "%s: %s", m.SourceFile, w)
			}
		},
		func(m report.Model) error {
			select {
			case inCh <- m:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		},
	)

	close(inCh)

	if werr := <-writeErr; writers.IsBrokenPipe(werr) {
		return ExitOK
	} else if werr != nil {
		fmt.Fprintln(stderr, werr)
		return ExitOutput
	}
	if e := outw.Flush(); writers.IsBrokenPipe(e) {
		return ExitOK
	} else if e != nil {
		fmt.Fprintln(stderr, e)
		return ExitOutput
	}

	if perr != nil {
		if errors.Is(perr, context.Canceled) {
			return ExitInterrupted
		}
		fmt.Fprintln(stderr, perr)
		return ExitOutput
	}
	switch {
	case tally.InputErrors > 0:
		return ExitUsage
	case tally.Invalid > 0:
		return ExitInvalid
	}
	return ExitOK
}
