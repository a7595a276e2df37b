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

// Package groundtruth derives the expected identifier set of a project from
// its parsed dependency records. The expected set is computed once per
// evaluation run and shared read-only across every SBOM comparison.
package groundtruth

import (
	"iter"
	"slices"

	"bitbucket.org/creachadair/stringset"
	"github.com/google/sbombench/deptree"
	"github.com/google/sbombench/purl"
)

// DefaultScopes returns the dependency scopes counted as ground truth when
// the caller doesn't configure any: packages needed to compile and run the
// project. Test, provided and system scoped dependencies aren't expected to
// ship in a release artifact's SBOM.
func DefaultScopes() []deptree.Scope {
	return []deptree.Scope{deptree.ScopeCompile, deptree.ScopeRuntime}
}

// Build filters records down to the accepted scopes and collapses their
// canonical identifiers into a set. Duplicate coordinates (the same package
// reachable through several tree branches) collapse to one element. Records
// with an empty scope are always excluded. An empty scopes slice means
// DefaultScopes.
func Build(records iter.Seq[deptree.Record], scopes []deptree.Scope) stringset.Set {
	if len(scopes) == 0 {
		scopes = DefaultScopes()
	}
	expected := stringset.New()
	for rec := range records {
		if rec.Scope == "" || !slices.Contains(scopes, rec.Scope) {
			continue
		}
		expected.Add(purl.Maven(rec.GroupID, rec.ArtifactID, rec.Version))
	}
	return expected
}
