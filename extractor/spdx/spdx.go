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

// Package spdx extracts the observed identifier set from an SPDX SBOM.
package spdx

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"bitbucket.org/creachadair/stringset"
	"github.com/google/sbombench/extractor"
	"github.com/google/sbombench/log"
	"github.com/google/sbombench/purl"
	spdxjson "github.com/spdx/tools-golang/json"
)

// Name is the unique name of this extractor.
const Name = "sbom/spdx"

// Format support based on https://spdx.dev/resources/use/#documents
var spdxExtensions = []string{".spdx.json"}

// Extractor extracts the observed identifier set from an SPDX SBOM.
type Extractor struct{}

// New returns a new instance of the extractor.
func New() extractor.Extractor { return Extractor{} }

// Name of the extractor.
func (e Extractor) Name() string { return Name }

// FileRequired returns true if the specified file is a supported spdx file.
func (e Extractor) FileRequired(path string) bool {
	// For Windows
	path = filepath.ToSlash(path)

	lower := strings.ToLower(path)
	for _, ext := range spdxExtensions {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}

// Extract parses the SPDX SBOM and returns the set of canonical purls found
// among the package external references. Packages without a purl reference
// contribute nothing; a document without packages yields an empty set.
func (e Extractor) Extract(r io.Reader) (stringset.Set, error) {
	doc, err := spdxjson.Read(r)
	if err != nil {
		return nil, fmt.Errorf("sbom/spdx extractor: decoding document: %w", err)
	}

	observed := stringset.New()
	for _, pkg := range doc.Packages {
		for _, extRef := range pkg.PackageExternalReferences {
			if extRef.RefType != "purl" && extRef.RefType != "http://spdx.org/rdf/references/purl" {
				continue
			}
			id, err := purl.CanonicalizeRaw(extRef.Locator)
			if err != nil {
				log.Warnf("Invalid PURL %q for package: %q", extRef.Locator, pkg.PackageName)
				continue
			}
			observed.Add(id)
		}
	}
	return observed, nil
}

var _ extractor.Extractor = Extractor{}
