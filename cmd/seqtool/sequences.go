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
	"github.com/seqtils/seqtils/config"
	"github.com/seqtils/seqtils/generics"
)

func addFreqCommand() {
	config.AddCmd("freq [values...]", "Print how many times each value occurs", "", nil, instrumented("freq", runFreq))
}

func addGroupCommand() {
	config.AddCmd("group [values...]", "Print runs of consecutive equal values", "", nil, instrumented("group", runGroup))
}

func runFreq(args []string) (int, error) {
	values, err := readValues(args)
	if err != nil {
		return 0, err
	}
	return len(values), writeEntries(generics.Frequencies(values))
}

func runGroup(args []string) (int, error) {
	values, err := readValues(args)
	if err != nil {
		return 0, err
	}
	return len(values), writeResult(generics.GroupConsecutive(values))
}
