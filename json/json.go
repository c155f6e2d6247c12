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

// Package json reads input sequences and writes results as JSON
package json

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	seqio "github.com/seqtils/seqtils/io"
)

// MarshalJSONWithSorting marshals JSON with keys sorted by alphabet, same rule as marshalling map
//
// When called from a Marshaller, the input should be a new/derived type without Marshaller defined to prevent infinite recursion
func MarshalJSONWithSorting(input interface{}) ([]byte, error) {
	mJSON, mErr := json.Marshal(input)
	if mErr != nil {
		return nil, fmt.Errorf("error marshalling intermediate input: %v: %w", input, mErr)
	}
	// remarshal from map to sort labels
	fieldMap := make(map[string]interface{})
	if err := json.Unmarshal(mJSON, &fieldMap); err != nil {
		return nil, fmt.Errorf("error unmarshalling intermediate field map: %v: %w", fieldMap, err)
	}
	sortedJSON, sErr := json.Marshal(fieldMap)
	if sErr != nil {
		return nil, fmt.Errorf("error marshalling intermediate field map: %v: %w", fieldMap, sErr)
	}
	return sortedJSON, nil
}

// MarshalToJSONFile marshals structure to a JSON file at the specified path
//
// The file is replaced atomically
func MarshalToJSONFile(filepath string, input interface{}) error {
	data, err := json.MarshalIndent(input, "", "  ")
	if err != nil {
		return err
	}

	return seqio.WriteFileAtomically(filepath, append(data, '\n'))
}

// UnmarshalFromJSONFile unmarshals JSON file at the specified path
func UnmarshalFromJSONFile(filepath string, outputPtr interface{}) error {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, outputPtr)
}

// DecodeArray reads a single JSON array of T from the reader
//
// A JSON null decodes to an empty slice, never nil
func DecodeArray[T any](reader io.Reader) ([]T, error) {
	var list []T
	if err := json.NewDecoder(reader).Decode(&list); err != nil {
		return nil, fmt.Errorf("error decoding JSON array: %w", err)
	}
	if list == nil {
		list = []T{}
	}
	return list, nil
}

// ReadArrayFile reads a JSON array of T from the file at the specified path, or from stdin if the path is "-"
func ReadArrayFile[T any](filepath string) ([]T, error) {
	if filepath == "-" {
		return DecodeArray[T](os.Stdin)
	}
	file, err := os.Open(filepath)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return DecodeArray[T](file)
}

// WriteIndented writes the value as indented JSON followed by a newline
func WriteIndented(writer io.Writer, input interface{}) error {
	encoder := json.NewEncoder(writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(input)
}
