// Copyright 2025 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package benchrunner_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"bitbucket.org/creachadair/stringset"
	"github.com/google/go-cmp/cmp"
	"github.com/google/sbombench/binary/benchrunner"
	"github.com/google/sbombench/binary/cli"
)

// The report in testdata declares commons-lang3 and httpclient at compile
// scope, commons-codec at runtime scope and junit-jupiter at test scope, so
// the default expected set has three elements.
var expected = stringset.New(
	"pkg:maven/org.apache.commons/commons-lang3@3.12.0",
	"pkg:maven/org.apache.httpcomponents/httpclient@4.5.13",
	"pkg:maven/commons-codec/commons-codec@1.15",
)

func TestEvaluate(t *testing.T) {
	evals := benchrunner.Evaluate(expected, []string{
		"testdata/generator-a.cdx.json",
		"testdata/generator-b.spdx.json",
		"testdata/broken.cdx.json",
	})
	if len(evals) != 3 {
		t.Fatalf("Evaluate() returned %d evaluations, want 3", len(evals))
	}

	a := evals[0]
	if a.Err != nil {
		t.Fatalf("%s: %v", a.Path, a.Err)
	}
	// Generator A found commons-lang3 and commons-codec but missed
	// httpclient; spring-core is outside the expected set and doesn't
	// count either way.
	if a.Result.Observed != 3 || a.Result.TruePositives != 2 || a.Result.FalseNegatives != 1 {
		t.Errorf("%s: observed/TP/FN = %d/%d/%d, want 3/2/1",
			a.Path, a.Result.Observed, a.Result.TruePositives, a.Result.FalseNegatives)
	}
	if want := 2.0 / 3.0; a.Result.Recall < want-1e-9 || a.Result.Recall > want+1e-9 {
		t.Errorf("%s: recall = %v, want %v", a.Path, a.Result.Recall, want)
	}

	b := evals[1]
	if b.Err != nil {
		t.Fatalf("%s: %v", b.Path, b.Err)
	}
	if b.Result.TruePositives != 3 || b.Result.FalseNegatives != 0 || b.Result.Recall != 1 {
		t.Errorf("%s: TP/FN/recall = %d/%d/%v, want 3/0/1",
			b.Path, b.Result.TruePositives, b.Result.FalseNegatives, b.Result.Recall)
	}

	if evals[2].Err == nil {
		t.Errorf("%s: expected an extraction error", evals[2].Path)
	}
}

func TestEvaluateUnknownFormat(t *testing.T) {
	evals := benchrunner.Evaluate(expected, []string{"testdata/deps.txt"})
	if evals[0].Err == nil {
		t.Error("Evaluate() accepted a non-SBOM path")
	}
}

func TestRunBench(t *testing.T) {
	outDir := t.TempDir()
	flags := &cli.Flags{
		Report: "testdata/deps.txt",
		OutDir: outDir,
		SBOMs: []string{
			"testdata/generator-a.cdx.json",
			"testdata/generator-b.spdx.json",
		},
	}
	if exit := benchrunner.RunBench(flags); exit != 0 {
		t.Fatalf("RunBench() = %d, want 0", exit)
	}

	gotExpected := readLines(t, filepath.Join(outDir, "expected.txt"))
	if diff := cmp.Diff(expected.Elements(), gotExpected); diff != "" {
		t.Errorf("expected.txt diff (-want +got):\n%s", diff)
	}

	gotObserved := readLines(t, filepath.Join(outDir, "observed-generator-a.cdx.txt"))
	wantObserved := []string{
		"pkg:maven/commons-codec/commons-codec@1.15",
		"pkg:maven/org.apache.commons/commons-lang3@3.12.0",
		"pkg:maven/org.springframework/spring-core@5.3.20",
	}
	if diff := cmp.Diff(wantObserved, gotObserved); diff != "" {
		t.Errorf("observed-generator-a.cdx.txt diff (-want +got):\n%s", diff)
	}

	metrics, err := os.ReadFile(filepath.Join(outDir, "metrics.txt"))
	if err != nil {
		t.Fatalf("reading metrics.txt: %v", err)
	}
	want := "testdata/generator-a.cdx.json\t3\t2\t1\t0.6667"
	if !strings.Contains(string(metrics), want) {
		t.Errorf("metrics.txt missing row %q:\n%s", want, metrics)
	}
}

func TestRunBenchFailedDocument(t *testing.T) {
	flags := &cli.Flags{
		Report: "testdata/deps.txt",
		OutDir: t.TempDir(),
		SBOMs:  []string{"testdata/broken.cdx.json"},
	}
	if exit := benchrunner.RunBench(flags); exit == 0 {
		t.Error("RunBench() = 0 for a malformed document, want nonzero")
	}
}

func readLines(t *testing.T, path string) []string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("os.ReadFile(%q): %v", path, err)
	}
	return strings.Split(strings.TrimRight(string(data), "\n"), "\n")
}
