// Copyright 2025 The seqtils Authors
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"

	"github.com/seqtils/seqtils/config"
	"github.com/seqtils/seqtils/json"
	"github.com/seqtils/seqtils/version"
)

type versionCheckFlags struct {
	Min version.Version `help:"Lowest compatible version"`
	Max version.Version `help:"Highest compatible version"`
}

type versionCheckReport struct {
	Version    string `json:"version"`
	Range      string `json:"range"`
	Compatible bool   `json:"compatible"`
}

var versionCheckArgs versionCheckFlags

func addVersionCheckCommand() {
	config.AddCmdWithArgs("version-check <version>", "Check whether a version is within the compatible range",
		&versionCheckArgs, instrumented("version-check", runVersionCheck))
}

func runVersionCheck(args []string) (int, error) {
	if len(args) != 1 {
		return len(args), fmt.Errorf("expecting exactly one version, got %d", len(args))
	}
	v, err := version.Parse(args[0])
	if err != nil {
		return 1, err
	}

	lower, upper := versionCheckArgs.Min, versionCheckArgs.Max
	if !config.IsFlagChanged("version-check", "min") && loadedConfig.Compat.Min != nil {
		lower = *loadedConfig.Compat.Min
	}
	if !config.IsFlagChanged("version-check", "max") {
		if loadedConfig.Compat.Max == nil {
			return 1, fmt.Errorf("no compatible range: set --max or compat.max in the config file")
		}
		upper = *loadedConfig.Compat.Max
	}
	compatRange, err := version.CompatibilityRange(lower, upper)
	if err != nil {
		return 1, err
	}

	compatible := version.IsCompatible(compatRange, v)
	report, err := json.MarshalJSONWithSorting(versionCheckReport{
		Version:    v.String(),
		Range:      compatRange.String(),
		Compatible: compatible,
	})
	if err != nil {
		return 1, err
	}
	fmt.Fprintln(config.Output(), string(report))

	if !compatible {
		return 1, fmt.Errorf("version %s is not within %s", v, compatRange)
	}
	return 1, nil
}
