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

// Package cli defines the structures to store the CLI flags used by the
// benchmark binary.
package cli

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/google/sbombench/deptree"
	"gopkg.in/yaml.v3"
)

// StringListFlag is a type to be passed to flag.Var that supports list flags
// passed as repeated or comma separated values, e.g. -scopes compile,runtime.
type StringListFlag struct {
	set          bool
	value        []string
	defaultValue []string
}

// NewStringListFlag creates a new StringListFlag with the given default value.
func NewStringListFlag(defaultValue []string) StringListFlag {
	return StringListFlag{defaultValue: defaultValue}
}

// Set gets called whenever a new instance of a flag is read during CLI arg parsing.
func (s *StringListFlag) Set(x string) error {
	s.value = append(s.value, strings.Split(x, ",")...)
	s.set = true
	return nil
}

// Get returns the underlying []string value stored by this flag struct.
func (s *StringListFlag) Get() any {
	return s.GetSlice()
}

// GetSlice returns the underlying []string value stored by this flag struct.
func (s *StringListFlag) GetSlice() []string {
	if s.set {
		return s.value
	}
	return s.defaultValue
}

func (s *StringListFlag) String() string {
	if len(s.value) == 0 {
		return ""
	}
	return strings.Join(s.value, ",")
}

// Flags contains a field for every benchmark CLI flag.
type Flags struct {
	Report  string   // path of the dependency report, the ground truth
	OutDir  string   // directory the derived artifacts are written into
	Scopes  []string // dependency scopes counted as ground truth
	SBOMs   []string // SBOM documents to evaluate
	Verbose bool     // whether to show debug logs
}

// RunConfig is the YAML shape of a benchmark run configuration file.
// Values from the file fill in flags the user didn't set on the command line.
type RunConfig struct {
	Report string   `yaml:"report"`
	OutDir string   `yaml:"output_dir"`
	Scopes []string `yaml:"scopes"`
	SBOMs  []string `yaml:"sboms"`
}

// ApplyConfig reads a run configuration file and merges it into the flags.
// Explicitly set flag values win over file values.
func (f *Flags) ApplyConfig(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading run config %s: %w", path, err)
	}
	var cfg RunConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return fmt.Errorf("parsing run config %s: %w", path, err)
	}
	if f.Report == "" {
		f.Report = cfg.Report
	}
	if f.OutDir == "" {
		f.OutDir = cfg.OutDir
	}
	if len(f.Scopes) == 0 {
		f.Scopes = cfg.Scopes
	}
	f.SBOMs = append(f.SBOMs, cfg.SBOMs...)
	return nil
}

// ValidateFlags validates the passed command line flags.
func ValidateFlags(flags *Flags) error {
	if flags.Report == "" {
		return errors.New("--report not set")
	}
	if flags.OutDir == "" {
		return errors.New("--o not set")
	}
	if len(flags.SBOMs) == 0 {
		return errors.New("no SBOM documents to evaluate")
	}
	if _, err := flags.AcceptedScopes(); err != nil {
		return err
	}
	return nil
}

// AcceptedScopes converts the configured scope names into dependency scopes,
// rejecting names outside the known enumeration. An empty configuration
// returns nil, leaving the choice of defaults to the expected set builder.
func (f *Flags) AcceptedScopes() ([]deptree.Scope, error) {
	if len(f.Scopes) == 0 {
		return nil, nil
	}
	known := deptree.AllScopes()
	scopes := make([]deptree.Scope, 0, len(f.Scopes))
	for _, name := range f.Scopes {
		s := deptree.Scope(strings.TrimSpace(name))
		if !slices.Contains(known, s) {
			return nil, fmt.Errorf("unknown dependency scope %q", name)
		}
		scopes = append(scopes, s)
	}
	return scopes, nil
}
