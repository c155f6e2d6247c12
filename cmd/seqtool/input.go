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
	"github.com/seqtils/seqtils/csvutil"
	"github.com/seqtils/seqtils/generics"
	"github.com/seqtils/seqtils/json"
	"golang.org/x/exp/constraints"
)

// readValues returns the input values from either the positional args or the --input file
func readValues(args []string) ([]string, error) {
	if rootArgs.Input == "" {
		return args, nil
	}
	if len(args) > 0 {
		return nil, fmt.Errorf("values given both as arguments and by --input '%s'", rootArgs.Input)
	}
	values, err := json.ReadArrayFile[string](rootArgs.Input)
	if err != nil {
		return nil, fmt.Errorf("failed to read input '%s': %w", rootArgs.Input, err)
	}
	return values, nil
}

// writeResult prints the result to the command output as indented JSON, or writes it to the --output file
func writeResult(result interface{}) error {
	if rootArgs.Output != "" {
		return json.MarshalToJSONFile(rootArgs.Output, result)
	}
	return json.WriteIndented(config.Output(), result)
}

// writeEntries is writeResult for maps, which can also be printed as CSV of sorted key-value rows
func writeEntries[K constraints.Ordered, V any](result map[K]V) error {
	switch rootArgs.Format {
	case "", "json":
		return writeResult(result)
	case "csv":
		if rootArgs.Output != "" {
			return fmt.Errorf("--output is only supported with JSON format")
		}
		return csvutil.WriteCSV(config.Output(), generics.MapEntries(result))
	default:
		return fmt.Errorf("unknown format '%s', expecting json or csv", rootArgs.Format)
	}
}
