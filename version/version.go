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

// Package version provides two-part (major.minor) versions and compatibility ranges
package version

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/seqtils/seqtils/generics"
	"github.com/seqtils/seqtils/logger"
)

// Version is a major.minor version, ordered by major first and then minor
type Version struct {
	Major int `json:"major" mapstructure:"major"`
	Minor int `json:"minor" mapstructure:"minor"`
}

// Parse parses a version string like "1.8"
func Parse(s string) (Version, error) {
	parts := strings.Split(strings.TrimSpace(s), ".")
	if len(parts) != 2 {
		return Version{}, fmt.Errorf("invalid version '%s': expecting <major>.<minor>", s)
	}
	numbers := make([]int, 0, 2)
	for _, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return Version{}, fmt.Errorf("invalid version '%s': %w", s, err)
		}
		if n < 0 {
			return Version{}, fmt.Errorf("invalid version '%s': negative number", s)
		}
		numbers = append(numbers, n)
	}
	return Version{Major: numbers[0], Minor: numbers[1]}, nil
}

// MustParse is Parse that panics on error, for constants
func MustParse(s string) Version {
	v, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return v
}

// Compare returns negative, zero or positive if this version is older, the same or newer than the other
func (v Version) Compare(other Version) int {
	if v.Major != other.Major {
		return sign(v.Major - other.Major)
	}
	return sign(v.Minor - other.Minor)
}

// Less checks whether this version is older than the other
func (v Version) Less(other Version) bool {
	return v.Compare(other) < 0
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

// CompatibilityRange creates the inclusive range of versions from lower to upper
func CompatibilityRange(lower, upper Version) (generics.ClosedRange[Version], error) {
	return generics.ComparableRange(lower, upper)
}

// IsCompatible checks whether the version falls in the range and logs the result
func IsCompatible(compatRange generics.ClosedRange[Version], v Version) bool {
	vlogger := logger.WithFields(logger.Fields{
		"component": "Version",
		"version":   v.String(),
		"range":     compatRange.String(),
	})
	if compatRange.Contains(v) {
		vlogger.Info("version compatible")
		return true
	}
	vlogger.Warn("version incompatible")
	return false
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}
