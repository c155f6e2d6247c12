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

// seqtool runs running accumulations and other sequence helpers from the command-line
package main

import (
	"cmp"
	"fmt"

	"github.com/seqtils/seqtils/config"
	"github.com/seqtils/seqtils/logger"
	"github.com/seqtils/seqtils/promexporter/promext"
	"github.com/seqtils/seqtils/version"
)

// buildVersion is set by -ldflags "-X main.buildVersion=..."
var buildVersion = "dev"

type rootFlags struct {
	Config      string `help:"Config file providing defaults (yaml, json or toml)"`
	Input       string `help:"Read input values from a JSON array file, '-' for stdin"`
	Output      string `help:"Write the result to a JSON file instead of printing it"`
	Format      string `help:"Printed format of key-value results from freq and merge: json or csv (default json)"`
	LogLevel    string `name:"log-level" help:"Log level, overriding LOG_LEVEL and the config file"`
	LogJSON     bool   `name:"log-json" help:"Log in JSON format"`
	DumpMetrics bool   `name:"dump-metrics" help:"Print metrics of this run before exit"`
}

// fileConfig is the layout of the file given by --config
type fileConfig struct {
	Scan struct {
		Op   string `mapstructure:"op"`
		Seed string `mapstructure:"seed"`
	} `mapstructure:"scan"`
	Merge struct {
		Policy string `mapstructure:"policy"`
	} `mapstructure:"merge"`
	Compat struct {
		Min *version.Version `mapstructure:"min"`
		Max *version.Version `mapstructure:"max"`
	} `mapstructure:"compat"`
	Log struct {
		Level string `mapstructure:"level"`
		JSON  bool   `mapstructure:"json"`
	} `mapstructure:"log"`
}

var (
	rootArgs     rootFlags
	loadedConfig fileConfig
)

func init() {
	config.AddParentCmdWithArgs("", "Running accumulations and sequence utilities", &rootArgs, setupRun, finishRun)
	config.AddVersionCommand(buildVersion)

	addScanCommand()
	addFreqCommand()
	addGroupCommand()
	addMergeCommand()
	addVersionCheckCommand()
}

func main() {
	config.Execute()
}

// setupRun loads the config file and applies logging options before any command runs
func setupRun() error {
	loadedConfig = fileConfig{}
	if rootArgs.Config != "" {
		if err := config.TryParseConfigFile(rootArgs.Config, &loadedConfig); err != nil {
			return err
		}
		logger.WithField("file", rootArgs.Config).Debug("loaded config")
	}

	if rootArgs.LogJSON || loadedConfig.Log.JSON {
		logger.SetJSONFormat()
	}
	level := flagOrConfig("", "log-level", rootArgs.LogLevel, loadedConfig.Log.Level)
	if level != "" {
		if err := logger.TrySetLogLevel(logger.LogLevel(level)); err != nil {
			return err
		}
	}
	return nil
}

// flagOrConfig returns the flag value when it's given on the command-line, even if empty, or else the first non-empty
// of the fallbacks from the config file and defaults
func flagOrConfig(cmdPath string, flag string, value string, fallbacks ...string) string {
	if config.IsFlagChanged(cmdPath, flag) {
		return value
	}
	return cmp.Or(fallbacks...)
}

func finishRun() {
	if !rootArgs.DumpMetrics {
		return
	}
	text, err := promext.DumpMetrics("seqtils_", false, true)
	if err != nil {
		logger.Error("failed to dump metrics: ", err)
		return
	}
	fmt.Fprint(config.Output(), text)
}
