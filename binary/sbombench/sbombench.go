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

// Package main runs the SBOM accuracy benchmark:
// derive the expected identifier set from a build tool's dependency report
// and score each generated SBOM document against it.
package main

import (
	"flag"
	"os"

	"github.com/google/sbombench/binary/benchrunner"
	"github.com/google/sbombench/binary/cli"
	"github.com/google/sbombench/log"
)

func main() {
	os.Exit(run(os.Args))
}

func run(args []string) int {
	flags, err := parseFlags(args[1:])
	if err != nil {
		log.Errorf("Error parsing CLI args: %v", err)
		return 1
	}
	return benchrunner.RunBench(flags)
}

func parseFlags(args []string) (*cli.Flags, error) {
	fs := flag.NewFlagSet("sbombench", flag.ExitOnError)
	report := fs.String("report", "", "The path of the dependency tree report holding the ground truth")
	outDir := fs.String("o", "", "The directory the derived artifacts are written into")
	config := fs.String("config", "", "Optional YAML run configuration file")
	scopes := cli.NewStringListFlag(nil)
	fs.Var(&scopes, "scopes", "Comma separated dependency scopes counted as ground truth (default compile,runtime)")
	verbose := fs.Bool("verbose", false, "Enable debug logs")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	flags := &cli.Flags{
		Report:  *report,
		OutDir:  *outDir,
		Scopes:  scopes.GetSlice(),
		SBOMs:   fs.Args(),
		Verbose: *verbose,
	}
	if *config != "" {
		if err := flags.ApplyConfig(*config); err != nil {
			return nil, err
		}
	}
	if err := cli.ValidateFlags(flags); err != nil {
		return nil, err
	}
	return flags, nil
}
