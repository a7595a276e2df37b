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

// Package purl canonicalizes package identifiers into package URL strings
// according to the spec: https://github.com/package-url/purl-spec
// This package is a convenience wrapper and abstraction layer around an
// existing open source implementation.
//
// Identifiers produced here are meant to be compared byte for byte: the same
// logical package always renders to the same canonical string regardless of
// whether it came from a build tool's dependency report or from a generated
// SBOM document. Qualifiers and subpaths carry no package identity for that
// comparison and are dropped during canonicalization.
package purl

import (
	"fmt"
	"strings"

	"github.com/package-url/packageurl-go"
)

// Purl types encountered by the benchmark.
const (
	// TypeMaven is a pkg:maven purl.
	TypeMaven = "maven"
	// TypeNPM is a pkg:npm purl.
	TypeNPM = "npm"
	// TypePyPi is a pkg:pypi purl.
	TypePyPi = "pypi"
	// TypeGolang is a pkg:golang purl.
	TypeGolang = "golang"
)

// PackageURL is the struct representation of the parts that make a package url.
type PackageURL struct {
	Type      string
	Namespace string
	Name      string
	Version   string
}

// Maven returns the canonical identifier string for a Maven coordinate triple.
// Leading and trailing whitespace on each part is trimmed; no case folding is
// applied since Maven coordinates are case sensitive.
func Maven(groupID, artifactID, version string) string {
	p := PackageURL{
		Type:      TypeMaven,
		Namespace: strings.TrimSpace(groupID),
		Name:      strings.TrimSpace(artifactID),
		Version:   strings.TrimSpace(version),
	}
	return p.String()
}

// String renders the canonical package url string.
func (p PackageURL) String() string {
	purl := packageurl.PackageURL{
		Type:      p.Type,
		Namespace: p.Namespace,
		Name:      p.Name,
		Version:   p.Version,
	}
	return (&purl).String()
}

// FromString parses a package url string into a PackageURL structure.
// Qualifiers (everything after '?') and the subpath (everything after '#')
// are discarded.
func FromString(raw string) (PackageURL, error) {
	p, err := packageurl.FromString(strings.TrimSpace(raw))
	if err != nil {
		return PackageURL{}, fmt.Errorf("failed to decode PURL string %q: %w", raw, err)
	}
	return PackageURL{
		Type:      p.Type,
		Namespace: p.Namespace,
		Name:      p.Name,
		Version:   p.Version,
	}, nil
}

// CanonicalizeRaw parses a raw identifier string and re-renders it in
// canonical form with qualifiers and subpath stripped.
func CanonicalizeRaw(raw string) (string, error) {
	p, err := FromString(raw)
	if err != nil {
		return "", err
	}
	return p.String(), nil
}
