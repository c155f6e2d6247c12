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

package promext

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/samber/lo"
)

// SumExportedMetrics returns the sum of values from metrics of the family matching the labels
func SumExportedMetrics(metricFamily *dto.MetricFamily, labels prometheus.Labels) float64 {
	return lo.SumBy(MatchExportedMetrics(metricFamily.GetMetric(), labels), GetExportedMetricValue)
}

// MatchExportedMetrics lists metrics having all of the given label values
//
// A label missing from a metric matches the empty value
func MatchExportedMetrics(metrics []*dto.Metric, labels prometheus.Labels) []*dto.Metric {
	if len(labels) == 0 {
		return metrics
	}
	return lo.Filter(metrics, func(m *dto.Metric, _ int) bool {
		for name, value := range labels {
			if GetLabelValue(m, name) != value {
				return false
			}
		}
		return true
	})
}

// GetLabelValue reads the value of a specific label from the given metric, or empty string if the label is missing
func GetLabelValue(metric *dto.Metric, targetLabel string) string {
	pair, found := lo.Find(metric.GetLabel(), func(l *dto.LabelPair) bool {
		return l.GetName() == targetLabel
	})
	if !found {
		return ""
	}
	return pair.GetValue()
}

// GetExportedMetricValue returns the value of the exported (protobuf) metric.
//
// For Summary and Histogram, the sum of samples is returned
func GetExportedMetricValue(metric *dto.Metric) float64 {
	switch {
	case metric.Gauge != nil:
		return metric.Gauge.GetValue()
	case metric.Counter != nil:
		return metric.Counter.GetValue()
	case metric.Summary != nil:
		return metric.Summary.GetSampleSum()
	case metric.Histogram != nil:
		return metric.Histogram.GetSampleSum()
	case metric.Untyped != nil:
		return metric.Untyped.GetValue()
	default:
		panic(fmt.Sprint("unsupported type: ", metric))
	}
}
