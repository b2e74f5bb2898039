package appcore

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"syscall"
	"testing"
	"time"
)

const good = "matchEmissions = {'M1': {'A': 1.0}}\ntransitionProbabilities = {'R': {'M1': 1.0}, 'M1': {'R': 1.0}}\n"

func write(t *testing.T, dir, name, src string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestRun_ExitCodes(t *testing.T) {
	dir := t.TempDir()
	ok := write(t, dir, "ok.pat", good)
	invalid := write(t, dir, "inv.pat", strings.Replace(good, "'M1': 1.0}, 'M1'", "'M1': 1.0, 'M2': 0.1}, 'M1'", 1))
	syntax := write(t, dir, "syn.pat", "transitionProbabilities = {'R': ")

	cases := []struct {
		name  string
		files []string
		want  int
	}{
		{"all valid", []string{ok}, ExitOK},
		{"one invalid", []string{ok, invalid}, ExitInvalid},
		{"syntax error wins", []string{invalid, syntax}, ExitUsage},
		{"missing file", []string{filepath.Join(dir, "nope.pat")}, ExitUsage},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var out, errb bytes.Buffer
			code := Run(context.Background(), &out, &errb, Options{Files: tc.files, Threads: 2}, NewModelWriterFactory("text", true))
			if code != tc.want {
				t.Fatalf("exit=%d want %d; stderr=%s", code, tc.want, errb.String())
			}
			if got := strings.Count(out.String(), "\n"); got != len(tc.files)+1 {
				t.Fatalf("want %d lines, got %d:\n%s", len(tc.files)+1, got, out.String())
			}
		})
	}
}

func TestRun_RowSumWarnings(t *testing.T) {
	dir := t.TempDir()
	f := write(t, dir, "w.pat", strings.Replace(good, "{'A': 1.0}", "{'A': 0.5}", 1))
	for _, quiet := range []bool{false, true} {
		var out, errb bytes.Buffer
		code := Run(context.Background(), &out, &errb, Options{Files: []string{f}, Quiet: quiet}, NewModelWriterFactory("text", false))
		if code != ExitOK {
			t.Fatalf("exit=%d", code)
		}
		has := strings.Contains(errb.String(), "WARN: "+f+": M1 emission weights sum to 0.5")
		if has == quiet {
			t.Fatalf("quiet=%v stderr=%q", quiet, errb.String())
		}
	}
}

func TestRun_Cancelled(t *testing.T) {
	dir := t.TempDir()
	f := write(t, dir, "ok.pat", good)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var out, errb bytes.Buffer
	if code := Run(ctx, &out, &errb, Options{Files: []string{f}}, NewModelWriterFactory("json", false)); code != ExitInterrupted {
		t.Fatalf("exit=%d want %d", code, ExitInterrupted)
	}
}

type pipeWriter struct{}

func (pipeWriter) Write([]byte) (int, error) { return 0, syscall.EPIPE }

type shortWriter struct{}

func (shortWriter) Write([]byte) (int, error) { return 0, io.ErrShortWrite }

func TestRun_TextWriteErrorDoesNotHang(t *testing.T) {
	dir := t.TempDir()
	f := write(t, dir, "ok.pat", good)
	files := make([]string, 300) // rows overflow the 4 KiB output buffer
	for i := range files {
		files[i] = f
	}
	codes := make(chan int, 1)
	go func() {
		var errb bytes.Buffer
		codes <- Run(context.Background(), shortWriter{}, &errb, Options{Files: files, Threads: 1}, NewModelWriterFactory("text", true))
	}()
	select {
	case code := <-codes:
		if code != ExitOutput {
			t.Fatalf("exit=%d want %d", code, ExitOutput)
		}
	case <-time.After(10 * time.Second):
		t.Fatal("Run did not return after the writer failed")
	}
}

func TestRun_OutputErrors(t *testing.T) {
	dir := t.TempDir()
	f := write(t, dir, "ok.pat", good)
	var errb bytes.Buffer
	if code := Run(context.Background(), pipeWriter{}, &errb, Options{Files: []string{f}}, NewModelWriterFactory("text", true)); code != ExitOK {
		t.Fatalf("broken pipe: exit=%d", code)
	}
	if code := Run(context.Background(), shortWriter{}, &errb, Options{Files: []string{f}}, NewModelWriterFactory("text", true)); code != ExitOutput {
		t.Fatalf("short write: exit=%d", code)
	}
}

var _ WriterFactory = ModelWriterFactory{}
