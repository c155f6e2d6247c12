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
	"math"
	"strconv"

	"github.com/seqtils/seqtils/config"
	"github.com/seqtils/seqtils/generics"
)

type scanFlags struct {
	Op   string `help:"Combining operation: sum, product, concat or max (default sum)"`
	Seed string `help:"Initial accumulator, never printed (default: identity of the operation)"`
}

type intOperation struct {
	identity int64
	combine  func(acc, n int64) (int64, error)
}

var errOverflow = errors.New("integer overflow")

var scanArgs scanFlags

var intOperations = map[string]intOperation{
	"sum":     {0, checkedAdd},
	"product": {1, checkedMul},
	"max":     {math.MinInt64, func(acc, n int64) (int64, error) { return max(acc, n), nil }},
}

func checkedAdd(acc, n int64) (int64, error) {
	if (n > 0 && acc > math.MaxInt64-n) || (n < 0 && acc < math.MinInt64-n) {
		return acc, fmt.Errorf("%d + %d: %w", acc, n, errOverflow)
	}
	return acc + n, nil
}

func checkedMul(acc, n int64) (int64, error) {
	if acc == 0 || n == 0 {
		return 0, nil
	}
	r := acc * n
	// MinInt64 * -1 wraps to MinInt64 and passes the division check
	if r/n != acc || (acc == math.MinInt64 && n == -1) || (n == math.MinInt64 && acc == -1) {
		return acc, fmt.Errorf("%d * %d: %w", acc, n, errOverflow)
	}
	return r, nil
}

func addScanCommand() {
	config.AddCmdWithArgs("scan [values...]", "Print the running accumulation of values", &scanArgs, instrumented("scan", runScan))
}

func runScan(args []string) (int, error) {
	values, err := readValues(args)
	if err != nil {
		return 0, err
	}
	op := flagOrConfig("scan", "op", scanArgs.Op, loadedConfig.Scan.Op, "sum")
	seed := flagOrConfig("scan", "seed", scanArgs.Seed, loadedConfig.Scan.Seed)

	if op == "concat" {
		return len(values), writeResult(generics.ScanSlice(values, seed, func(acc string, s string) string {
			return acc + s
		}))
	}

	results, err := scanIntegers(op, seed, values)
	if err != nil {
		return len(values), err
	}
	return len(values), writeResult(results)
}

// scanIntegers parses values as int64 during the scan and stops at the first unparsable one or on overflow
func scanIntegers(op string, seed string, values []string) ([]int64, error) {
	intOp, found := intOperations[op]
	if !found {
		names := generics.MapToSlice(intOperations, func(name string, _ intOperation) string { return name })
		return nil, fmt.Errorf("unknown operation '%s', expecting one of %v", op, append(names, "concat"))
	}

	initial := intOp.identity
	if seed != "" {
		n, err := strconv.ParseInt(seed, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid seed '%s': %w", seed, errors.Unwrap(err))
		}
		initial = n
	}

	return generics.ScanSliceE(values, initial, func(acc int64, s string) (int64, error) {
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return acc, fmt.Errorf("invalid value '%s': %w", s, errors.Unwrap(err))
		}
		return intOp.combine(acc, n)
	})
}
