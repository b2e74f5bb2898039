package runutil

import (
	"runtime"
	"strings"
	"testing"

	"figmop-core/pattern"
	"figmop-core/profile"
)

func TestResolveThreads(t *testing.T) {
	if got := ResolveThreads(3); got != 3 {
		t.Fatalf("want 3, got %d", got)
	}
	if got := ResolveThreads(0); got != runtime.NumCPU() {
		t.Fatalf("0 → all CPUs, got %d", got)
	}
}

func TestRowSumWarnings(t *testing.T) {
	const src = "matchEmissions = {'M1': {'A': 1.0, 'C': 0.5}, 'M2': {'G': 1.0}}\n" +
		"transitionProbabilities = {'R': {'R': 0.3, 'M1': 0.3}, 'M1': {'M2': 1.0}, 'M2': {'R': 0.9999999}}\n"
	f, err := pattern.Parse(strings.NewReader(src), "x.pat")
	if err != nil {
		t.Fatal(err)
	}
	p, err := f.Build(profile.Config{})
	if err != nil {
		t.Fatal(err)
	}
	got := RowSumWarnings(p, SumTolerance)
	if len(got) != 2 {
		t.Fatalf("want 2 warnings, got %v", got)
	}
	if !strings.HasPrefix(got[0], "R transition weights sum to 0.6") || !strings.HasPrefix(got[1], "M1 emission weights sum to 1.5") {
		t.Fatalf("unexpected warnings: %v", got)
	}
}
