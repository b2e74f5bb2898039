package jsonlutil

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

type failWriter struct{ err error }

func (f failWriter) Write([]byte) (int, error) { return 0, f.err }

func TestStart_OneLinePerValue(t *testing.T) {
	var sb strings.Builder
	in, done := Start[int](&sb, 1, func(enc *json.Encoder, v int) error {
		return enc.Encode(map[string]int{"n": v})
	}, nil)
	for i := 0; i < 3; i++ {
		in <- i
	}
	close(in)
	if err := <-done; err != nil {
		t.Fatal(err)
	}
	if got := sb.String(); got != "{\"n\":0}\n{\"n\":1}\n{\"n\":2}\n" {
		t.Fatalf("unexpected jsonl: %q", got)
	}
}

func TestStart_EncodeErrorDrains(t *testing.T) {
	boom := errors.New("boom")
	in, done := Start[int](&strings.Builder{}, 1, func(*json.Encoder, int) error { return boom }, nil)
	for i := 0; i < 10; i++ {
		in <- i // must not block after the first failure
	}
	close(in)
	if err := <-done; !errors.Is(err, boom) {
		t.Fatalf("want boom, got %v", err)
	}
}

func TestStart_BrokenPipeSuppressed(t *testing.T) {
	pipe := errors.New("pipe closed")
	in, done := Start[int](failWriter{err: pipe}, 1, func(enc *json.Encoder, v int) error {
		return enc.Encode(v)
	}, func(err error) bool { return errors.Is(err, pipe) })
	in <- 1
	close(in)
	if err := <-done; err != nil {
		t.Fatalf("broken pipe should be suppressed, got %v", err)
	}
}
