// internal/integration/integration_test.go
package integration

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"figmop/internal/app"
	"figmop/internal/output"
	"figmop/pkg/api"
)

var (
	gsto = filepath.Join("..", "..", "core", "pattern", "testdata", "gsto.pat")
	gst  = filepath.Join("..", "..", "core", "pattern", "testdata", "gst_refined.pat")
)

func write(t *testing.T, dir, name, data string) string {
	t.Helper()
	fn := filepath.Join(dir, name)
	if err := os.WriteFile(fn, []byte(data), 0644); err != nil {
		t.Fatalf("write %s: %v", fn, err)
	}
	return fn
}

func run(t *testing.T, args ...string) (string, string, int) {
	t.Helper()
	var out, errBuf bytes.Buffer
	code := app.Run(args, &out, &errBuf)
	return out.String(), errBuf.String(), code
}

func TestEndToEnd_Text(t *testing.T) {
	out, errs, code := run(t, gsto, gst)
	if code != 0 {
		t.Fatalf("run exit %d, err=%s", code, errs)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 3 || lines[0] != output.TSVHeader {
		t.Fatalf("unexpected text output:\n%s", out)
	}
	if !strings.HasPrefix(lines[1], gsto+"\tok\t5\t15\t") || !strings.HasPrefix(lines[2], gst+"\tok\t9\t") {
		t.Fatalf("unexpected rows:\n%s", out)
	}
	// gst_refined has M4 emissions summing to 2.0.
	if !strings.Contains(errs, "WARN: "+gst+": M4 emission weights sum to 2") {
		t.Fatalf("missing row-sum warning, stderr=%q", errs)
	}
	if _, errs, _ = run(t, "-q", gst); errs != "" {
		t.Fatalf("--quiet should silence warnings, got %q", errs)
	}
}

func TestEndToEnd_JSON(t *testing.T) {
	out, errs, code := run(t, "-o", "json", gsto)
	if code != 0 {
		t.Fatalf("exit %d err %s", code, errs)
	}
	var got []api.ModelV1
	if err := json.Unmarshal([]byte(out), &got); err != nil || len(got) != 1 {
		t.Fatalf("bad json: %v\n%s", err, out)
	}
	m := got[0]
	if !m.Valid || m.Columns != 5 || m.NumStates != 15 || len(m.States) != 15 || len(m.Fingerprint) != 64 {
		t.Fatalf("unexpected model: %+v", m)
	}
	if m.States[0].State != "R" || m.States[1].State != "M1" || m.States[2].State != "I1" || m.States[3].State != "D1" {
		t.Fatalf("states not in canonical order: %v %v %v %v", m.States[0].State, m.States[1].State, m.States[2].State, m.States[3].State)
	}
}

func TestEndToEnd_JSONL(t *testing.T) {
	out, errs, code := run(t, "-o", "jsonl", gsto, gst)
	if code != 0 {
		t.Fatalf("exit %d err %s", code, errs)
	}
	sc := bufio.NewScanner(strings.NewReader(out))
	perFile := map[string]int{}
	for sc.Scan() {
		var st api.StateV1
		if err := json.Unmarshal(sc.Bytes(), &st); err != nil {
			t.Fatalf("bad line %q: %v", sc.Text(), err)
		}
		perFile[st.SourceFile]++
	}
	if perFile[gsto] != 15 || perFile[gst] == 0 {
		t.Fatalf("unexpected state counts: %v", perFile)
	}
}

func TestTSVOutputReloads(t *testing.T) {
	dir := t.TempDir()
	out, errs, code := run(t, "-o", "tsv", gst)
	if code != 0 {
		t.Fatalf("exit %d err %s", code, errs)
	}
	tsv := write(t, dir, "gst.tsv", out)

	fp := func(path string) string {
		o, e, c := run(t, "-o", "json", "-q", path)
		if c != 0 {
			t.Fatalf("%s: exit %d err %s", path, c, e)
		}
		var got []api.ModelV1
		if err := json.Unmarshal([]byte(o), &got); err != nil || len(got) != 1 {
			t.Fatalf("bad json: %v", err)
		}
		return got[0].Fingerprint
	}
	if fp(gst) != fp(tsv) {
		t.Fatalf("fingerprint changed across tsv round trip")
	}

	out, _, code = run(t, "-o", "pattern", gst)
	pat := write(t, dir, "gst_canonical.pat", out)
	if code != 0 || fp(pat) != fp(gst) {
		t.Fatalf("fingerprint changed across pattern round trip")
	}
}

func TestExitCodes(t *testing.T) {
	dir := t.TempDir()
	gap := write(t, dir, "gap.pat", strings.Join([]string{
		"matchEmissions = {'M1': {'A': 1.0}, 'M3': {'A': 1.0}}",
		"transitionProbabilities = {'R': {'M1': 1.0}, 'M1': {'R': 1.0}, 'M3': {'R': 1.0}}",
	}, "\n"))
	broken := write(t, dir, "broken.pat", "transitionProbabilities = {'R': {'M1': oops}}")

	cases := []struct {
		name string
		args []string
		want int
		errs string
	}{
		{"valid", []string{gsto}, 0, ""},
		{"invalid model", []string{gsto, gap}, 1, "M2"},
		{"input error", []string{gap, broken}, 2, "broken.pat:1"},
		{"missing file", []string{filepath.Join(dir, "nope.pat")}, 2, "nope.pat"},
		{"bad flag", []string{"--output", "fasta", gsto}, 2, "invalid --output"},
		{"allow missing emissions", []string{"--allow-missing-emissions", gsto}, 0, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, errs, code := run(t, tc.args...)
			if code != tc.want {
				t.Fatalf("exit %d want %d; stderr=%s", code, tc.want, errs)
			}
			if !strings.Contains(errs, tc.errs) {
				t.Fatalf("stderr %q does not mention %q", errs, tc.errs)
			}
		})
	}
}

func TestMissingEmissionsFlag(t *testing.T) {
	dir := t.TempDir()
	f := write(t, dir, "draft.pat", strings.Join([]string{
		"matchEmissions = {'M1': {'A': 1.0}}",
		"transitionProbabilities = {'R': {'M1': 1.0}, 'M1': {'M2': 1.0}, 'M2': {'R': 1.0}}",
	}, "\n"))
	if _, errs, code := run(t, f); code != 1 || !strings.Contains(errs, "M2") {
		t.Fatalf("exit %d stderr %q", code, errs)
	}
	out, errs, code := run(t, "--allow-missing-emissions", "--no-header", f)
	if code != 0 || !strings.HasPrefix(out, f+"\tok\t2\t3\t") {
		t.Fatalf("exit %d out %q err %q", code, out, errs)
	}
}

func TestParallelMatchesSerial(t *testing.T) {
	var files []string
	for i := 0; i < 6; i++ {
		files = append(files, gsto, gst)
	}
	runJSON := func(threads int) string {
		out, errs, code := run(t, append([]string{"-q", "-o", "json", "--threads", fmt.Sprint(threads)}, files...)...)
		if code != 0 {
			t.Fatalf("exit %d err %s", code, errs)
		}
		return out
	}
	if serial, parallel := runJSON(1), runJSON(4); serial != parallel {
		t.Fatalf("parallel output differs from serial")
	}
}

func TestHelpVersionExamples(t *testing.T) {
	for _, args := range [][]string{{"-h"}, {"--help"}, {}} {
		out, _, code := run(t, args...)
		if code != 0 || !strings.Contains(out, "--allow-missing-emissions") {
			t.Fatalf("%v: exit %d out %q", args, code, out)
		}
	}
	if out, _, code := run(t, "--version"); code != 0 || !strings.HasPrefix(out, "figmop-model version ") {
		t.Fatalf("version: %d %q", code, out)
	}
	if out, _, code := run(t, "--examples"); code != 0 || !strings.Contains(out, "quickstart") {
		t.Fatalf("examples: %d %q", code, out)
	}
}
