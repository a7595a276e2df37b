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

// Package cdx extracts the observed identifier set from a CycloneDX SBOM.
package cdx

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"bitbucket.org/creachadair/stringset"
	"github.com/CycloneDX/cyclonedx-go"
	"github.com/google/sbombench/extractor"
	"github.com/google/sbombench/log"
	"github.com/google/sbombench/purl"
)

// Name is the unique name of this extractor.
const Name = "sbom/cdx"

// https://cyclonedx.org/specification/overview/#recognized-file-patterns
var cdxExtensions = []string{".cdx.json"}

var cdxNames = []string{"bom.json"}

// Extractor extracts the observed identifier set from a CycloneDX SBOM.
type Extractor struct{}

// New returns a new instance of the extractor.
func New() extractor.Extractor { return Extractor{} }

// Name of the extractor.
func (e Extractor) Name() string { return Name }

// FileRequired returns true if the specified file is a supported cdx file.
func (e Extractor) FileRequired(path string) bool {
	// For Windows
	path = filepath.ToSlash(path)

	lower := strings.ToLower(path)
	for _, ext := range cdxExtensions {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	base := filepath.Base(lower)
	for _, name := range cdxNames {
		if base == name {
			return true
		}
	}
	return false
}

// Extract parses the CycloneDX SBOM and returns the set of canonical purls it
// observes. A document without a component list yields an empty set.
func (e Extractor) Extract(r io.Reader) (stringset.Set, error) {
	var bom cyclonedx.BOM
	if err := cyclonedx.NewBOMDecoder(r, cyclonedx.BOMFileFormatJSON).Decode(&bom); err != nil {
		return nil, fmt.Errorf("sbom/cdx extractor: decoding document: %w", err)
	}

	observed := stringset.New()
	if bom.Components == nil {
		return observed, nil
	}
	enumerateComponents(*bom.Components, observed)
	return observed, nil
}

// includeScope reports whether a component's inclusion scope keeps it in the
// observed set. Components the generator marked excluded (or anything else
// outside the CycloneDX scope enumeration) don't describe the delivered
// artifact.
func includeScope(s cyclonedx.Scope) bool {
	switch s {
	case "", cyclonedx.ScopeRequired, cyclonedx.ScopeOptional:
		return true
	default:
		return false
	}
}

func enumerateComponents(components []cyclonedx.Component, observed stringset.Set) {
	for _, c := range components {
		if c.PackageURL != "" && includeScope(c.Scope) {
			id, err := purl.CanonicalizeRaw(c.PackageURL)
			if err != nil {
				log.Warnf("Invalid PURL %q for component ref: %q", c.PackageURL, c.BOMRef)
			} else {
				observed.Add(id)
			}
		}
		if c.Components != nil {
			enumerateComponents(*c.Components, observed)
		}
	}
}

var _ extractor.Extractor = Extractor{}
