// internal/appshell/shell.go
package appshell

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"figmop/internal/appcore"
)

// Main runs a RunContext-style entry point with SIGINT/SIGTERM cancellation
// and exits with its code. No arguments means -h.
func Main(run func(context.Context, []string, io.Writer, io.Writer) int) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	argv := os.Args[1:]
	if len(argv) == 0 {
		argv = []string{"-h"}
	}

	code := run(ctx, argv, os.Stdout, os.Stderr)
	// Normalize cancellation exit code.
	if ctx.Err() != nil && code == appcore.ExitOK {
		code = appcore.ExitInterrupted
	}

	stop()
	os.Exit(code)
}
