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
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/seqtils/seqtils/config"
	"github.com/seqtils/seqtils/generics"
	"github.com/seqtils/seqtils/json"
	"github.com/seqtils/seqtils/promexporter/promext"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runTool executes seqtool with the given args and fresh flag values, returning the printed output
func runTool(args ...string) (string, error) {
	rootArgs = rootFlags{}
	scanArgs = scanFlags{}
	mergeArgs = mergeFlags{}
	versionCheckArgs = versionCheckFlags{}

	out := &bytes.Buffer{}
	config.SetOutput(out)
	defer config.SetOutput(nil)

	err := config.ExecuteArgs(args)
	return out.String(), err
}

func scanOutput[T any](t *testing.T, args ...string) []T {
	out, err := runTool(append([]string{"scan"}, args...)...)
	require.NoError(t, err)
	results, err := json.DecodeArray[T](strings.NewReader(out))
	require.NoError(t, err)
	return results
}

func TestScan(t *testing.T) {
	assert.Equal(t, []int64{1, 3, 6, 10}, scanOutput[int64](t, "1", "2", "3", "4"))
	assert.Equal(t, []int64{2, 4, 12}, scanOutput[int64](t, "--op", "product", "--seed", "2", "1", "2", "3"))
	assert.Equal(t, []int64{3, 3, 4, 4, 5}, scanOutput[int64](t, "--op", "max", "3", "1", "4", "1", "5"))
	assert.Equal(t, []int64{-5, -5}, scanOutput[int64](t, "--op", "max", "--", "-5", "-7"))
	assert.Equal(t, []string{"a", "ab", "abc"}, scanOutput[string](t, "--op", "concat", "a", "b", "c"))
	assert.Equal(t, []string{">a", ">ab"}, scanOutput[string](t, "--op", "concat", "--seed", ">", "a", "b"))

	out, err := runTool("scan")
	require.NoError(t, err)
	assert.Equal(t, "[]\n", out)
}

func TestScanFailure(t *testing.T) {
	out, err := runTool("scan", "1", "2", "x", "4")
	assert.ErrorContains(t, err, "scan failed at index 2: invalid value 'x': invalid syntax")
	assert.Equal(t, "", out)

	var scanErr *generics.ScanError
	require.True(t, errors.As(err, &scanErr))
	assert.Equal(t, 2, scanErr.Index)

	_, err = runTool("scan", "--op", "median", "1")
	assert.ErrorContains(t, err, "unknown operation 'median', expecting one of [max product sum concat]")

	_, err = runTool("scan", "--seed", "ten", "1")
	assert.ErrorContains(t, err, "invalid seed 'ten': invalid syntax")
}

func TestScanOverflow(t *testing.T) {
	cases := []struct {
		args  []string
		index int
		msg   string
	}{
		{[]string{"9223372036854775807", "1"}, 1, "9223372036854775807 + 1: integer overflow"},
		{[]string{"--", "-9223372036854775808", "-1"}, 1, "-9223372036854775808 + -1: integer overflow"},
		{[]string{"--op", "product", "4611686018427387904", "4"}, 1, "4611686018427387904 * 4: integer overflow"},
		{[]string{"--op", "product", "--", "-9223372036854775808", "-1"}, 1, "-9223372036854775808 * -1: integer overflow"},
		{[]string{"--op", "product", "--seed", "-1", "--", "1", "-9223372036854775808"}, 1, "-1 * -9223372036854775808: integer overflow"},
	}
	for _, c := range cases {
		out, err := runTool(append([]string{"scan"}, c.args...)...)
		assert.ErrorContains(t, err, c.msg, c.args)
		assert.ErrorIs(t, err, errOverflow, c.args)
		assert.Equal(t, "", out)

		var scanErr *generics.ScanError
		require.True(t, errors.As(err, &scanErr), c.args)
		assert.Equal(t, c.index, scanErr.Index, c.args)
	}

	// right at the bounds
	assert.Equal(t, []int64{9223372036854775806, 9223372036854775807},
		scanOutput[int64](t, "9223372036854775806", "1"))
	assert.Equal(t, []int64{-9223372036854775807, -9223372036854775807, 0},
		scanOutput[int64](t, "--op", "product", "--seed", "-1", "--", "9223372036854775807", "1", "0"))
}

func TestScanInputAndConfig(t *testing.T) {
	assert.Equal(t, []int64{3, 4, 8, 9, 14, 23, 25, 31}, scanOutput[int64](t, "--input", "../../testdata/values.json"))

	// seed 10 from config
	assert.Equal(t, []int64{11, 13}, scanOutput[int64](t, "--config", "../../testdata/seqtool.yml", "1", "2"))
	assert.Equal(t, []int64{2, 6}, scanOutput[int64](t, "--config", "../../testdata/seqtool.yml", "--op", "product", "--seed", "1", "2", "3"))

	// explicit empty flags win over the config
	assert.Equal(t, []int64{1, 3}, scanOutput[int64](t, "--config", "../../testdata/seqtool.yml", "--seed", "", "1", "2"))
	assert.Equal(t, []string{"a", "ab"}, scanOutput[string](t, "--config", "../../testdata/seqtool.yml", "--op", "concat", "--seed", "", "a", "b"))
	assert.Equal(t, []string{"10a", "10ab"}, scanOutput[string](t, "--config", "../../testdata/seqtool.yml", "--op", "concat", "a", "b"))
	_, err := runTool("scan", "--config", "../../testdata/seqtool.yml", "--op", "", "1")
	assert.ErrorContains(t, err, "unknown operation ''")

	_, err = runTool("scan", "--input", "../../testdata/values.json", "1")
	assert.ErrorContains(t, err, "values given both as arguments and by --input")

	_, err = runTool("scan", "--input", "../../testdata/missing.json")
	assert.ErrorContains(t, err, "failed to read input")

	_, err = runTool("scan", "--config", "../../testdata/missing.yml", "1")
	assert.ErrorContains(t, err, "failed to read config file")
}

func TestFreqAndGroup(t *testing.T) {
	out, err := runTool("freq", "a", "b", "a", "c", "a")
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"a\": 3,\n  \"b\": 1,\n  \"c\": 1\n}\n", out)

	out, err = runTool("freq")
	require.NoError(t, err)
	assert.Equal(t, "{}\n", out)

	out, err = runTool("group", "a", "a", "b", "a")
	require.NoError(t, err)
	groups, err := json.DecodeArray[[]string](strings.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"a", "a"}, {"b"}, {"a"}}, groups)

	out, err = runTool("group", "--input", "../../testdata/values.json")
	require.NoError(t, err)
	groups, err = json.DecodeArray[[]string](strings.NewReader(out))
	require.NoError(t, err)
	assert.Len(t, groups, 8)
}

func TestMerge(t *testing.T) {
	out, err := runTool("merge", "a=1", "b=2", "a=3")
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"a\": 3,\n  \"b\": 2\n}\n", out)

	out, err = runTool("merge", "--policy", "first", "a=1", "b=2", "a=3")
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"a\": 1,\n  \"b\": 2\n}\n", out)

	// policy sum from config
	out, err = runTool("merge", "--config", "../../testdata/seqtool.yml", "a=1", "b=2", "a=3")
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"a\": 4,\n  \"b\": 2\n}\n", out)

	base := filepath.Join(t.TempDir(), "base.json")
	require.NoError(t, json.MarshalToJSONFile(base, map[string]int64{"a": 10, "z": 1}))
	out, err = runTool("merge", "--base", base, "--policy", "sum", "a=1", "b=2")
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"a\": 11,\n  \"b\": 2,\n  \"z\": 1\n}\n", out)

	_, err = runTool("merge", "a=1", "b")
	assert.ErrorContains(t, err, "invalid pair 'b' at index 1: expecting key=value")
	_, err = runTool("merge", "a=one")
	assert.ErrorContains(t, err, "invalid pair 'a=one' at index 0: invalid syntax")
	_, err = runTool("merge", "--policy", "max", "a=1")
	assert.ErrorContains(t, err, "unknown policy 'max'")
	_, err = runTool("merge", "--config", "../../testdata/seqtool.yml", "--policy", "", "a=1")
	assert.ErrorContains(t, err, "unknown policy ''")
}

func TestVersionCheck(t *testing.T) {
	out, err := runTool("version-check", "1.8", "--min", "1.0", "--max", "2.5")
	require.NoError(t, err)
	assert.Equal(t, "{\"compatible\":true,\"range\":\"1.0...2.5\",\"version\":\"1.8\"}\n", out)

	out, err = runTool("version-check", "2.6", "--config", "../../testdata/seqtool.yml")
	assert.EqualError(t, errors.Unwrap(err), "version 2.6 is not within 1.0...2.5")
	assert.Equal(t, "{\"compatible\":false,\"range\":\"1.0...2.5\",\"version\":\"2.6\"}\n", out)

	_, err = runTool("version-check", "1.8")
	assert.ErrorContains(t, err, "no compatible range")

	_, err = runTool("version-check", "1.8", "--min", "3.0", "--max", "2.5")
	assert.ErrorContains(t, err, "invalid range: lower bound 3.0 is greater than upper bound 2.5")

	_, err = runTool("version-check", "1.8", "--max", "two")
	assert.ErrorContains(t, err, "invalid version 'two'")

	_, err = runTool("version-check")
	assert.ErrorContains(t, err, "expecting exactly one version, got 0")
}

func TestVersionCheckZeroBounds(t *testing.T) {
	// explicit --min 0.0 replaces compat.min 1.0 of the config
	out, err := runTool("version-check", "0.5", "--config", "../../testdata/seqtool.yml", "--min", "0.0")
	require.NoError(t, err)
	assert.Equal(t, "{\"compatible\":true,\"range\":\"0.0...2.5\",\"version\":\"0.5\"}\n", out)

	out, err = runTool("version-check", "0.0", "--min", "0.0", "--max", "0.0")
	require.NoError(t, err)
	assert.Equal(t, "{\"compatible\":true,\"range\":\"0.0...0.0\",\"version\":\"0.0\"}\n", out)

	// explicit --max 0.0 replaces compat.max 2.5 of the config
	_, err = runTool("version-check", "0.1", "--config", "../../testdata/seqtool.yml", "--min", "0.0", "--max", "0.0")
	assert.ErrorContains(t, err, "version 0.1 is not within 0.0...0.0")

	// flags of the previous run do not leak
	_, err = runTool("version-check", "0.0")
	assert.ErrorContains(t, err, "no compatible range")
}

func TestMetrics(t *testing.T) {
	before, err := promext.SumMetricValues(elementCounter, prometheus.Labels{"cmd": "group"})
	require.NoError(t, err)

	out, err := runTool("--dump-metrics", "group", "x", "x", "y")
	require.NoError(t, err)
	assert.Contains(t, out, "# TYPE seqtils_seqtool_runs_total counter")
	assert.Contains(t, out, "seqtils_seqtool_runs_total{cmd=\"group\",status=\"ok\"} ")
	assert.Contains(t, out, "seqtils_seqtool_elements_total{cmd=\"group\"} ")

	after, err := promext.SumMetricValues(elementCounter, prometheus.Labels{"cmd": "group"})
	require.NoError(t, err)
	assert.EqualValues(t, 3, after-before)

	failures, err := promext.SumMetricValues(runCounter, prometheus.Labels{"status": "error"})
	require.NoError(t, err)
	_, err = runTool("scan", "oops")
	assert.Error(t, err)
	failuresAfter, err := promext.SumMetricValues(runCounter, prometheus.Labels{"status": "error"})
	require.NoError(t, err)
	assert.EqualValues(t, 1, failuresAfter-failures)
}

func TestOutputFormats(t *testing.T) {
	out, err := runTool("--format", "csv", "freq", "b", "a", "b")
	require.NoError(t, err)
	assert.Equal(t, "key,value\na,1\nb,2\n", out)

	out, err = runTool("merge", "--format", "csv", "--policy", "sum", "k=1", "k=2")
	require.NoError(t, err)
	assert.Equal(t, "key,value\nk,3\n", out)

	_, err = runTool("--format", "xml", "freq", "a")
	assert.ErrorContains(t, err, "unknown format 'xml'")

	path := filepath.Join(t.TempDir(), "result.json")
	out, err = runTool("--output", path, "scan", "1", "2", "3")
	require.NoError(t, err)
	assert.Equal(t, "", out)

	results := []int64{}
	require.NoError(t, json.UnmarshalFromJSONFile(path, &results))
	assert.Equal(t, []int64{1, 3, 6}, results)
}
