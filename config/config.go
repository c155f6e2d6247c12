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

// Package config provides standardized configuration parsing and the setup of commands and flags
package config

import (
	"fmt"
	"io"
	"os"
	"path"
	"regexp"
	"strings"
	"time"

	"github.com/seqtils/seqtils/logger"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// commandPathPattern extracts command path in use, e.g. "merge" from "merge <key=value...>"
//
// DO NOT use '\b', as we need to avoid like "cmd<args>"
var commandPathPattern = regexp.MustCompile(
	`^(?P<parent>([A-Za-z0-9_][A-Za-z0-9_.-]* )*)` + `(?P<name>[A-Za-z0-9_][A-Za-z0-9_.-]*)` + `(?P<args> .*)?`)

// commandRegistry keeps commands added by cmd.CommandPath() without root command name as the key
//
// The path does NOT include the exec name / root command name. The root command is stored by empty string as the key.
//
// For example:
//
//	""              => root command (seqtool)
//	"scan"          => scan (seqtool scan)
//	"version-check" => version-check (seqtool version-check)
var commandRegistry = make(map[string]*cobra.Command, 20)

var rootCommandName string

func init() {
	executable, _ := os.Executable()
	rootCommandName = path.Base(executable)
}

// TryParseConfigFile attempts to load the file and unmarshal it to struct of given address
//
// The config arg must be a pointer to struct with mapstructure-tagged fields. The file type is decided by extension,
// e.g. ".yml", ".json" or ".toml".
//
// The function does not touch the global viper instance
func TryParseConfigFile(file string, config interface{}) error {
	v := viper.New()
	v.SetConfigFile(file)

	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	if err := v.Unmarshal(config); err != nil {
		return fmt.Errorf("failed to unmarshal config file: %w", err)
	}

	return nil
}

// TryParseConfigFileKey is TryParseConfigFile for a single top-level key in the file
func TryParseConfigFileKey(file string, key string, config interface{}) error {
	v := viper.New()
	v.SetConfigFile(file)

	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	if !v.IsSet(key) {
		return fmt.Errorf("key '%s' not found in config file '%s'", key, file)
	}

	if err := v.UnmarshalKey(key, config); err != nil {
		return fmt.Errorf("failed to unmarshal key '%s' in config file: %w", key, err)
	}

	return nil
}

// AddCmd creates and adds a new command to its parent if it's not the root command
//
// The "use" should contain full command path and usage, for example:
//
//   - "" or "[args]": root command
//   - "scan [values...]": first-level command, added to the root command
//   - "show ranges": second-level command, added to the "show" command
//
// All parameters are optional. "runError" takes precedence over "run" if both are set.
func AddCmd(use string, short string, long string, run func(args []string), runError func(args []string) error) {
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Long:  long,
	}
	if run != nil {
		cmd.Run = func(cmd *cobra.Command, args []string) { run(args) }
	}
	if runError != nil {
		cmd.RunE = func(cmd *cobra.Command, args []string) error { return runError(args) }
	}

	addCommand(cmd)
}

// AddCmdWithArgs adds a new command with auto flags from given struct (must be pointer)
//
// "flagStruct" must be a pointer to struct - each of the public fields is made a command flag with snake naming style.
// See AddStructFlagsToCmd for examples.
//
// See AddCmd for the "use" parameter
//
// All parameters are optional.
func AddCmdWithArgs(use string, short string, flagStruct interface{}, runError func(args []string) error) {
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
	}
	if flagStruct != nil {
		AddStructFlagsToFlags(logger.WithField("cmd", use), cmd.PersistentFlags(), flagStruct)
	}
	if runError != nil {
		cmd.RunE = func(cmd *cobra.Command, args []string) error { return runError(args) }
	}

	addCommand(cmd)
}

// AddParentCmdWithArgs adds a new non-executable parent command with auto flags from given struct (must be pointer)
//
// The "flagStruct" must be a pointer to struct - each of the public fields is made a command flag with snake naming style.
// See AddStructFlagsToCmd for examples.
//
// See AddCmd for the "use" parameter
//
// All parameters are optional. "preRun" and "postRun" are executed before and after child command's run() respectively
func AddParentCmdWithArgs(use string, short string, flagStruct interface{}, preRun func() error, postRun func()) {
	cmd := &cobra.Command{
		Use:           use,
		Short:         short,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	if flagStruct != nil {
		AddStructFlagsToFlags(logger.WithField("cmd", use), cmd.PersistentFlags(), flagStruct)
	}
	if preRun != nil {
		cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error { return preRun() }
	}
	if postRun != nil {
		cmd.PersistentPostRun = func(cmd *cobra.Command, args []string) { postRun() }
	}

	addCommand(cmd)
}

// addCommand adds the specified command to its parent and to the registry
//
// parent commands are stripped from cmd.Use in the process
func addCommand(cmd *cobra.Command) {
	var parentPath string
	var path string

	pathMatch := commandPathPattern.FindStringSubmatch(cmd.Use)
	if pathMatch != nil {
		p := pathMatch[commandPathPattern.SubexpIndex("parent")]
		n := pathMatch[commandPathPattern.SubexpIndex("name")]
		path = p + n
		parentPath = strings.TrimRight(p, " ")
	}

	// handle root command
	if pathMatch == nil {
		if prevCmd, exists := commandRegistry[""]; exists {
			logger.Panicf("failed to add root command: already exists: %v", prevCmd)
		}

		if len(cmd.Use) > 0 {
			cmd.Use = GetCmdName() + " " + cmd.Use
		} else {
			cmd.Use = GetCmdName()
		}
		commandRegistry[""] = cmd
		return
	}

	if prevCmd, exists := commandRegistry[path]; exists {
		logger.Panicf("failed to add command '%s': already exists: %v", path, prevCmd)
	}

	parentCmd, parentExists := commandRegistry[parentPath]
	if !parentExists {
		logger.Panicf("failed to add command '%s': parent command '%s' not found", path, parentPath)
	}
	cmd.Use = strings.TrimLeft(cmd.Use[len(parentPath):], " ")
	parentCmd.AddCommand(cmd)
	commandRegistry[path] = cmd

	// check full path
	expectedFullPath := GetCmdName() + " " + path
	actualFullPath := cmd.CommandPath()
	if expectedFullPath != actualFullPath {
		logger.Panicf("invalid resulting command path: expecting '%s', actual '%s'", expectedFullPath, actualFullPath)
	}
}

// getCommand returns the pointer to the command by the name (or path)
func getCommand(cmdPath string) *cobra.Command {
	cmd, exists := commandRegistry[cmdPath]
	if !exists {
		logger.Panicf("command path '%s' not found", cmdPath)
	}
	return cmd
}

// AddBoolFlagToCmd adds new bool flag to use with the command-line
func AddBoolFlagToCmd(cmdPath string, v *bool, flag string, defaultValue bool, help string) {
	getCommand(cmdPath).PersistentFlags().BoolVar(v, flag, defaultValue, help)
}

// AddStringFlagToCmd adds new string flag to use with the command-line
func AddStringFlagToCmd(cmdPath string, v *string, flag string, defaultValue string, help string) {
	getCommand(cmdPath).PersistentFlags().StringVar(v, flag, defaultValue, help)
}

// AddStringPFlagToCmd adds new string flag and shortflag to use with the command-line
func AddStringPFlagToCmd(cmdPath string, v *string, flag string, shortflag string, defaultValue string, help string) {
	getCommand(cmdPath).PersistentFlags().StringVarP(v, flag, shortflag, defaultValue, help)
}

// AddValueFlagToCmd adds a flag of custom type, see package flagext
func AddValueFlagToCmd(cmdPath string, value pflag.Value, flag string, help string) {
	getCommand(cmdPath).PersistentFlags().Var(value, flag, help)
}

// SetOutput sets the writer for normal output of all commands, e.g. results and help
func SetOutput(output io.Writer) {
	getCommand("").SetOut(output)
}

// Output returns the writer for normal output of all commands, stdout by default
func Output() io.Writer {
	return getCommand("").OutOrStdout()
}

// Execute executes the root command with arguments from the command-line
//
// The function finishes the program and DOES NOT return
func Execute() {
	rootCmd := getCommand("")
	if err := rootCmd.Execute(); err != nil {
		logger.Error(err)
		logger.Exit(1)
	}
	logger.Exit(0)
}

// ExecuteArgs executes the root command with the given arguments and returns the error if any
//
// The "changed" marks of all flags are cleared first, so IsFlagChanged only reports the flags of this execution.
// Flag values are NOT reset, callers running several executions need to restore their flag structs.
func ExecuteArgs(args []string) error {
	resetChangedFlags()
	rootCmd := getCommand("")
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

// IsFlagChanged checks whether the flag has been set on the command-line for the command, including flags inherited
// from parent commands
//
// An explicit empty or zero value counts as set, unlike comparing the flag value with its default.
func IsFlagChanged(cmdPath string, flag string) bool {
	cmd := getCommand(cmdPath)
	for _, flags := range []*pflag.FlagSet{cmd.Flags(), cmd.PersistentFlags(), cmd.InheritedFlags()} {
		if f := flags.Lookup(flag); f != nil {
			return f.Changed
		}
	}
	return false
}

func resetChangedFlags() {
	unmark := func(f *pflag.Flag) { f.Changed = false }
	for _, cmd := range commandRegistry {
		cmd.Flags().VisitAll(unmark)
		cmd.PersistentFlags().VisitAll(unmark)
	}
}

// GetCmdHelp prints the help of the command to its output
func GetCmdHelp(cmdPath string) {
	getCommand(cmdPath).Help()
}

// GetCmdName returns the name of the current executable
func GetCmdName() string {
	return rootCommandName
}

// AddVersionCommand adds -v and --version flags that print version info
// If version is an empty string or "dev", it will be set to dev-<timestamp>, e.g. dev-2025-07-04T07:48:48Z
// Returns the version that was set
func AddVersionCommand(version string) string {
	cmd := getCommand("")
	if version == "" || version == "dev" {
		version = fmt.Sprintf("dev-%s", time.Now().UTC().Format(time.RFC3339))
	}
	cmd.Version = version
	cmd.InitDefaultVersionFlag()
	return version
}

// GetVersion returns the configured version number
func GetVersion() string {
	cmd := getCommand("")
	return cmd.Version
}
