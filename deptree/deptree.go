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

// Package deptree parses the text report produced by `mvn dependency:tree`
// into structured dependency records. Lines that don't describe a dependency
// (log prefixes, headers, the root artifact, tree drawing noise) are skipped,
// not treated as errors.
package deptree

import (
	"iter"
	"regexp"
	"strings"
)

// Scope is the declared role of a dependency in the build.
type Scope string

// Dependency scopes as declared by Maven.
const (
	ScopeCompile  Scope = "compile"
	ScopeRuntime  Scope = "runtime"
	ScopeProvided Scope = "provided"
	ScopeSystem   Scope = "system"
	ScopeTest     Scope = "test"
)

// AllScopes returns every scope the parser recognizes as well-known.
func AllScopes() []Scope {
	return []Scope{ScopeCompile, ScopeRuntime, ScopeProvided, ScopeSystem, ScopeTest}
}

// Record is one dependency line of the report.
type Record struct {
	GroupID    string
	ArtifactID string
	Packaging  string
	Classifier string // empty unless the line carries a classifier field
	Version    string
	Scope      Scope
	Depth      int // nesting depth from the tree drawing indentation, 1 for direct dependencies
}

var (
	logPrefix = regexp.MustCompile(`^\[[A-Z]+\]\s?`)

	// Coordinate forms, most specific first. The classifier-bearing form has
	// to be attempted before the plain one since every field is drawn from
	// the same character class.
	coordClassifier = regexp.MustCompile(`^([A-Za-z0-9_.-]+):([A-Za-z0-9_.-]+):([A-Za-z0-9_.-]+):([A-Za-z0-9_.-]+):([A-Za-z0-9_.-]+):([a-z]+)(?:\s+\(.*\))?$`)
	coordPlain      = regexp.MustCompile(`^([A-Za-z0-9_.-]+):([A-Za-z0-9_.-]+):([A-Za-z0-9_.-]+):([A-Za-z0-9_.-]+):([a-z]+)(?:\s+\(.*\))?$`)
)

// treeArt holds the characters Maven uses to draw the dependency tree.
const treeArt = "|+\\- "

// ParseLine parses a single report line. The second return value is false for
// lines that don't describe a dependency.
func ParseLine(line string) (Record, bool) {
	line = strings.TrimRight(line, " \t\r\n")
	line = logPrefix.ReplaceAllString(line, "")

	coord := strings.TrimLeft(line, treeArt)
	depth := (len(line) - len(coord)) / 3

	if m := coordClassifier.FindStringSubmatch(coord); m != nil {
		return Record{
			GroupID:    m[1],
			ArtifactID: m[2],
			Packaging:  m[3],
			Classifier: m[4],
			Version:    m[5],
			Scope:      Scope(m[6]),
			Depth:      depth,
		}, true
	}
	if m := coordPlain.FindStringSubmatch(coord); m != nil {
		return Record{
			GroupID:    m[1],
			ArtifactID: m[2],
			Packaging:  m[3],
			Version:    m[4],
			Scope:      Scope(m[5]),
			Depth:      depth,
		}, true
	}
	return Record{}, false
}

// Parse returns a lazy sequence over the dependency records of a report.
// Records are yielded in line order. The sequence can be iterated multiple
// times since the underlying text is immutable.
func Parse(text string) iter.Seq[Record] {
	return func(yield func(Record) bool) {
		for line := range strings.Lines(text) {
			rec, ok := ParseLine(line)
			if !ok {
				continue
			}
			if !yield(rec) {
				return
			}
		}
	}
}
