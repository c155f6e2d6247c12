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

// Package promexporter builds Prometheus metric vectors whose labels are described by structs
package promexporter

import (
	"fmt"
	"reflect"

	"github.com/iancoleman/strcase"
	"github.com/prometheus/client_golang/prometheus"
)

// GetLabelNames creates a list of label names out of struct fields to use in Prometheus metric
//
// The label can be specified by a "label" tag, e.g.:
//
//	type ScanLabels struct {
//		Command string `label:"cmd"`
//		Status  string
//	}
//
// If no "label" tag is specified, a field name converted to snake_case will be used instead
func GetLabelNames(labelStruct interface{}) []string {
	t := reflect.TypeOf(labelStruct)
	labels := make([]string, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		tag := f.Tag.Get("label")
		if tag == "" {
			tag = strcase.ToSnake(f.Name)
		}
		labels[i] = tag
	}
	return labels
}

// GetLabelValues creates a list of label values out of struct field values to use in Prometheus metric
//
// See GetLabelNames for the context. Non-string fields are formatted like fmt.Sprint, e.g. 3, true or a String() result
func GetLabelValues(labelStruct interface{}) []string {
	v := reflect.ValueOf(labelStruct)
	labels := make([]string, v.NumField())
	for i := 0; i < v.NumField(); i++ {
		labels[i] = fmt.Sprint(v.Field(i))
	}
	return labels
}

// LabeledCounterVec is a CounterVec with labels defined by the struct type L
type LabeledCounterVec[L any] struct {
	*prometheus.CounterVec
}

// NewLabeledCounterVec creates a CounterVec with labels from the fields of L
func NewLabeledCounterVec[L any](opts prometheus.CounterOpts) LabeledCounterVec[L] {
	var zero L
	return LabeledCounterVec[L]{prometheus.NewCounterVec(opts, GetLabelNames(zero))}
}

// With returns the counter for the label values in the given struct
func (v LabeledCounterVec[L]) With(labels L) prometheus.Counter {
	return v.CounterVec.WithLabelValues(GetLabelValues(labels)...)
}
