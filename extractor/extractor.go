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

// Package extractor defines the interface for pulling the observed identifier
// set out of a generated SBOM document. Implementations parse one document
// format each and never perform I/O beyond the supplied reader.
package extractor

import (
	"fmt"
	"io"

	"bitbucket.org/creachadair/stringset"
)

// Extractor extracts the canonical package identifiers observed in one SBOM
// document.
type Extractor interface {
	// Name is the unique name of this extractor.
	Name() string
	// FileRequired reports whether the extractor handles documents with the
	// given file path, based on the format's recognized file patterns.
	FileRequired(path string) bool
	// Extract parses a complete SBOM document and returns the set of
	// canonical identifiers it observes. A document with no components
	// yields an empty set; a document that can't be parsed yields an error.
	Extract(r io.Reader) (stringset.Set, error)
}

// ForPath returns the extractor from available that handles the given file
// path, or an error when no format matches.
func ForPath(path string, available []Extractor) (Extractor, error) {
	for _, e := range available {
		if e.FileRequired(path) {
			return e, nil
		}
	}
	return nil, fmt.Errorf("no SBOM extractor recognizes %q", path)
}
