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

// Package score computes set-based accuracy metrics between the expected
// identifier set of a project and the identifier set observed in a generated
// SBOM. False positives and precision are deliberately not computed: an SBOM
// entry outside the expected set has many legitimate explanations (plugins,
// the build tool itself, the project's own artifact) and counting it against
// the generator would be misleading.
package score

import (
	"fmt"
	"math"

	"bitbucket.org/creachadair/stringset"
)

// Result holds the accuracy metrics of one SBOM document evaluated against
// the expected set.
type Result struct {
	Observed       int     // size of the observed identifier set
	TruePositives  int     // expected identifiers present in the observed set
	FalseNegatives int     // expected identifiers absent from the observed set
	Recall         float64 // TruePositives over the expected count; NaN when nothing is expected
}

// RecallDefined reports whether Recall holds a computed value. Recall is
// undefined when the expected set was empty.
func (r Result) RecallDefined() bool {
	return !math.IsNaN(r.Recall)
}

// ConsistencyError reports that TP + FN didn't add up to the expected count.
// Set algebra guarantees the identity, so a violation means the expected set
// was mutated or the two sides were canonicalized differently; the result
// carrying it must not be reported.
type ConsistencyError struct {
	TruePositives  int
	FalseNegatives int
	Expected       int
}

func (e *ConsistencyError) Error() string {
	return fmt.Sprintf("inconsistent comparison: TP %d + FN %d != expected %d", e.TruePositives, e.FalseNegatives, e.Expected)
}

// Compare evaluates an observed identifier set against the expected set.
// The expected set is only read, never modified.
func Compare(expected, observed stringset.Set) (Result, error) {
	tp := expected.Intersect(observed).Len()
	fn := expected.Diff(observed).Len()
	if tp+fn != expected.Len() {
		return Result{}, &ConsistencyError{TruePositives: tp, FalseNegatives: fn, Expected: expected.Len()}
	}

	recall := math.NaN()
	if expected.Len() > 0 {
		recall = float64(tp) / float64(expected.Len())
	}
	return Result{
		Observed:       observed.Len(),
		TruePositives:  tp,
		FalseNegatives: fn,
		Recall:         recall,
	}, nil
}
