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
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/seqtils/seqtils/config"
	"github.com/seqtils/seqtils/generics"
	"github.com/seqtils/seqtils/json"
)

type mergeFlags struct {
	Policy string `help:"How to resolve duplicate keys: first, last or sum (default last)"`
	Base   string `help:"JSON object file of key-number entries to merge into"`
}

var mergeArgs mergeFlags

func addMergeCommand() {
	config.AddCmdWithArgs("merge <key=value...>", "Merge key=value pairs into a map", &mergeArgs, instrumented("merge", runMerge))
}

func runMerge(args []string) (int, error) {
	resolve, err := resolverFor(flagOrConfig("merge", "policy", mergeArgs.Policy, loadedConfig.Merge.Policy, "last"))
	if err != nil {
		return 0, err
	}

	pairs, err := parsePairs(args)
	if err != nil {
		return len(args), err
	}
	merged := generics.PairsToMap(pairs, resolve)

	if mergeArgs.Base != "" {
		base := map[string]int64{}
		if err := json.UnmarshalFromJSONFile(mergeArgs.Base, &base); err != nil {
			return len(args), fmt.Errorf("failed to read base '%s': %w", mergeArgs.Base, err)
		}
		merged = generics.MergeMaps(base, merged, resolve)
	}

	return len(args), writeEntries(merged)
}

func resolverFor(policy string) (generics.Resolver[int64], error) {
	switch policy {
	case "first":
		return generics.KeepFirst[int64](), nil
	case "last":
		return generics.KeepLast[int64](), nil
	case "sum":
		return generics.Add[int64](), nil
	default:
		return nil, fmt.Errorf("unknown policy '%s', expecting first, last or sum", policy)
	}
}

// parsePairs parses "key=value" arguments where value is an integer
func parsePairs(args []string) ([]generics.Pair[string, int64], error) {
	pairs := make([]generics.Pair[string, int64], 0, len(args))
	for i, arg := range args {
		key, value, found := strings.Cut(arg, "=")
		if !found || key == "" {
			return nil, fmt.Errorf("invalid pair '%s' at index %d: expecting key=value", arg, i)
		}
		n, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid pair '%s' at index %d: %w", arg, i, errors.Unwrap(err))
		}
		pairs = append(pairs, generics.MakePair(key, n))
	}
	return pairs, nil
}
