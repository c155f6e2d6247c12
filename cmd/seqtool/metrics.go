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
	"github.com/prometheus/client_golang/prometheus"
	"github.com/seqtils/seqtils/logger"
	"github.com/seqtils/seqtils/promexporter"
)

type runLabels struct {
	Command string `label:"cmd"`
	Status  string
}

var (
	runCounter = promexporter.NewLabeledCounterVec[runLabels](prometheus.CounterOpts{
		Name: "seqtils_seqtool_runs_total",
		Help: "Number of command runs by result status",
	})
	elementCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "seqtils_seqtool_elements_total",
		Help: "Number of input elements processed",
	}, []string{"cmd"})
)

func init() {
	prometheus.MustRegister(runCounter, elementCounter)
}

// instrumented wraps a command run function to count its runs and processed elements
//
// The run function returns the number of input elements it has consumed
func instrumented(cmd string, run func(args []string) (int, error)) func(args []string) error {
	cmdLogger := logger.WithField("component", cmd)
	return func(args []string) error {
		count, err := run(args)
		elementCounter.WithLabelValues(cmd).Add(float64(count))
		if err != nil {
			runCounter.With(runLabels{Command: cmd, Status: "error"}).Inc()
			return cmdLogger.Ewrap(err)
		}
		runCounter.With(runLabels{Command: cmd, Status: "ok"}).Inc()
		cmdLogger.Debugf("processed %d elements", count)
		return nil
	}
}
