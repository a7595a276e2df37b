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

// Package benchrunner provides the main function for running the SBOM
// accuracy benchmark with the sbombench binary. It reads the dependency
// report and the SBOM documents, hands them to the core packages and writes
// the derived artifacts: the expected and observed identifier lists as
// sorted, newline-delimited files usable with external set-difference
// tooling, and a per-document metrics table.
package benchrunner

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"bitbucket.org/creachadair/stringset"
	"golang.org/x/sync/errgroup"

	"github.com/google/sbombench/binary/cli"
	"github.com/google/sbombench/deptree"
	"github.com/google/sbombench/extractor"
	"github.com/google/sbombench/extractor/cdx"
	"github.com/google/sbombench/extractor/spdx"
	"github.com/google/sbombench/groundtruth"
	"github.com/google/sbombench/log"
	"github.com/google/sbombench/score"
)

const maxConcurrentDocuments = 4

// Evaluation is the outcome for one SBOM document.
type Evaluation struct {
	Path     string
	Observed stringset.Set
	Result   score.Result
	Err      error
}

// RunBench executes the benchmark with the given CLI flags
// and returns the exit code passed to os.Exit() in the main binary.
func RunBench(flags *cli.Flags) int {
	if flags.Verbose {
		log.SetLogger(&log.DefaultLogger{Verbose: true})
	}

	scopes, err := flags.AcceptedScopes()
	if err != nil {
		log.Errorf("Invalid scope configuration: %v", err)
		return 1
	}

	report, err := os.ReadFile(flags.Report)
	if err != nil {
		log.Errorf("Failed to read dependency report: %v", err)
		return 1
	}

	expected := groundtruth.Build(deptree.Parse(string(report)), scopes)
	log.Infof("Expected set built from %s: %d identifiers", flags.Report, expected.Len())
	if expected.Len() == 0 {
		log.Warnf("Expected set is empty, recall will be undefined")
	}

	if err := os.MkdirAll(flags.OutDir, 0755); err != nil {
		log.Errorf("Failed to create output directory: %v", err)
		return 1
	}
	if err := writeIdentifierList(filepath.Join(flags.OutDir, "expected.txt"), expected); err != nil {
		log.Errorf("Failed to write expected set: %v", err)
		return 1
	}

	evals := Evaluate(expected, flags.SBOMs)

	exit := 0
	for _, eval := range evals {
		if eval.Err != nil {
			log.Errorf("%s: %v", eval.Path, eval.Err)
			exit = 1
			continue
		}
		name := "observed-" + strings.TrimSuffix(filepath.Base(eval.Path), ".json") + ".txt"
		if err := writeIdentifierList(filepath.Join(flags.OutDir, name), eval.Observed); err != nil {
			log.Errorf("Failed to write observed set for %s: %v", eval.Path, err)
			exit = 1
		}
		log.Infof("%s: observed %d, TP %d, FN %d, recall %s",
			eval.Path, eval.Result.Observed, eval.Result.TruePositives, eval.Result.FalseNegatives, formatRecall(eval.Result))
	}

	if err := writeMetrics(filepath.Join(flags.OutDir, "metrics.txt"), evals); err != nil {
		log.Errorf("Failed to write metrics: %v", err)
		return 1
	}
	return exit
}

// Evaluate extracts and scores every SBOM document against the expected set.
// Documents are processed concurrently; the expected set is shared read-only.
// Results are returned in input order, with per-document failures recorded in
// the Err field rather than aborting the other documents.
func Evaluate(expected stringset.Set, paths []string) []Evaluation {
	available := []extractor.Extractor{cdx.New(), spdx.New()}

	evals := make([]Evaluation, len(paths))
	var g errgroup.Group
	g.SetLimit(maxConcurrentDocuments)
	for i, path := range paths {
		g.Go(func() error {
			evals[i] = evaluateOne(expected, path, available)
			return nil
		})
	}
	// Never returns an error, failures live in the Evaluation records.
	_ = g.Wait()
	return evals
}

func evaluateOne(expected stringset.Set, path string, available []extractor.Extractor) Evaluation {
	eval := Evaluation{Path: path}

	e, err := extractor.ForPath(path, available)
	if err != nil {
		eval.Err = err
		return eval
	}
	f, err := os.Open(path)
	if err != nil {
		eval.Err = fmt.Errorf("opening SBOM document: %w", err)
		return eval
	}
	defer f.Close()

	observed, err := e.Extract(f)
	if err != nil {
		eval.Err = err
		return eval
	}
	eval.Observed = observed

	result, err := score.Compare(expected, observed)
	if err != nil {
		eval.Err = err
		return eval
	}
	eval.Result = result
	return eval
}

// writeIdentifierList writes a set as a sorted, newline-delimited file.
func writeIdentifierList(path string, ids stringset.Set) error {
	var sb strings.Builder
	for _, id := range ids.Elements() {
		sb.WriteString(id)
		sb.WriteByte('\n')
	}
	return os.WriteFile(path, []byte(sb.String()), 0644)
}

// writeMetrics writes one tab-separated row per evaluated document.
func writeMetrics(path string, evals []Evaluation) error {
	var sb strings.Builder
	sb.WriteString("document\tobserved\ttp\tfn\trecall\n")
	for _, eval := range evals {
		if eval.Err != nil {
			sb.WriteString(fmt.Sprintf("%s\terror: %v\n", eval.Path, eval.Err))
			continue
		}
		sb.WriteString(fmt.Sprintf("%s\t%d\t%d\t%d\t%s\n",
			eval.Path, eval.Result.Observed, eval.Result.TruePositives, eval.Result.FalseNegatives, formatRecall(eval.Result)))
	}
	return os.WriteFile(path, []byte(sb.String()), 0644)
}

func formatRecall(r score.Result) string {
	if !r.RecallDefined() {
		return "undefined"
	}
	return strconv.FormatFloat(r.Recall, 'f', 4, 64)
}
