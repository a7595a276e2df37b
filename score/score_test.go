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

package score_test

import (
	"math"
	"testing"

	"bitbucket.org/creachadair/stringset"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/sbombench/score"
)

func TestCompare(t *testing.T) {
	tests := []struct {
		name     string
		expected stringset.Set
		observed stringset.Set
		want     score.Result
	}{
		{
			name:     "partial overlap",
			expected: stringset.New("A", "B", "C"),
			observed: stringset.New("B", "C", "D"),
			want: score.Result{
				Observed:       3,
				TruePositives:  2,
				FalseNegatives: 1,
				Recall:         2.0 / 3.0,
			},
		},
		{
			name:     "full recall",
			expected: stringset.New("A", "B"),
			observed: stringset.New("A", "B", "C", "D"),
			want: score.Result{
				Observed:       4,
				TruePositives:  2,
				FalseNegatives: 0,
				Recall:         1,
			},
		},
		{
			name:     "no overlap",
			expected: stringset.New("A", "B"),
			observed: stringset.New("C"),
			want: score.Result{
				Observed:       1,
				TruePositives:  0,
				FalseNegatives: 2,
				Recall:         0,
			},
		},
		{
			name:     "empty observed set",
			expected: stringset.New("A"),
			observed: stringset.New(),
			want: score.Result{
				Observed:       0,
				TruePositives:  0,
				FalseNegatives: 1,
				Recall:         0,
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := score.Compare(tt.expected, tt.observed)
			if err != nil {
				t.Fatalf("Compare(): %v", err)
			}
			if diff := cmp.Diff(tt.want, got, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
				t.Errorf("Compare() returned unexpected diff (-want +got):\n%s", diff)
			}
			if !got.RecallDefined() {
				t.Errorf("Compare() recall undefined, want defined")
			}
			if got.TruePositives+got.FalseNegatives != tt.expected.Len() {
				t.Errorf("TP %d + FN %d != expected count %d", got.TruePositives, got.FalseNegatives, tt.expected.Len())
			}
		})
	}
}

func TestCompareEmptyExpected(t *testing.T) {
	got, err := score.Compare(stringset.New(), stringset.New("A", "B"))
	if err != nil {
		t.Fatalf("Compare(): %v", err)
	}
	if got.RecallDefined() {
		t.Errorf("recall = %v, want undefined", got.Recall)
	}
	if !math.IsNaN(got.Recall) {
		t.Errorf("Recall = %v, want NaN", got.Recall)
	}
	if got.TruePositives != 0 || got.FalseNegatives != 0 {
		t.Errorf("TP/FN = %d/%d, want 0/0", got.TruePositives, got.FalseNegatives)
	}
}

func TestCompareDoesNotMutateExpected(t *testing.T) {
	expected := stringset.New("A", "B", "C")
	for _, observed := range []stringset.Set{
		stringset.New("A"),
		stringset.New("B", "Z"),
		stringset.New(),
	} {
		if _, err := score.Compare(expected, observed); err != nil {
			t.Fatalf("Compare(): %v", err)
		}
	}
	if !expected.Equals(stringset.New("A", "B", "C")) {
		t.Errorf("expected set changed across comparisons: %v", expected.Elements())
	}
}

func TestConsistencyErrorMessage(t *testing.T) {
	err := &score.ConsistencyError{TruePositives: 2, FalseNegatives: 2, Expected: 3}
	want := "inconsistent comparison: TP 2 + FN 2 != expected 3"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}
