// Package csvutil renders slices of structs as CSV records
package csvutil

import (
	"encoding/csv"
	"fmt"
	"io"
	"reflect"

	"github.com/iancoleman/strcase"
)

// Header returns the column names of the row struct type of the given slice
//
// A column is named by the "csv" tag of its field, or the snake-cased field name
func Header(rows interface{}) ([]string, error) {
	rowType, err := rowTypeOf(rows)
	if err != nil {
		return nil, err
	}

	header := make([]string, 0, rowType.NumField())
	for fieldIndex := 0; fieldIndex < rowType.NumField(); fieldIndex++ {
		field := rowType.Field(fieldIndex)
		if !field.IsExported() {
			continue
		}
		name := field.Tag.Get("csv")
		if name == "" {
			name = strcase.ToSnake(field.Name)
		}
		header = append(header, name)
	}
	return header, nil
}

// ToCSV converts a slice of structs to CSV records, one per row, formatting each exported field by fmt.Sprint
func ToCSV(rows interface{}) ([][]string, error) {
	rowType, err := rowTypeOf(rows)
	if err != nil {
		return nil, err
	}
	listValue := reflect.ValueOf(rows)

	records := make([][]string, 0, listValue.Len())

	for rowIndex := 0; rowIndex < listValue.Len(); rowIndex++ {

		rowValue := listValue.Index(rowIndex)
		fields := make([]string, 0, rowType.NumField())

		for fieldIndex := 0; fieldIndex < rowType.NumField(); fieldIndex++ {
			// ignore private fields
			if !rowType.Field(fieldIndex).IsExported() {
				continue
			}
			fields = append(fields, fmt.Sprint(rowValue.Field(fieldIndex).Interface()))
		}
		records = append(records, fields)
	}

	return records, nil
}

// WriteCSV writes the header and all rows of a slice of structs
func WriteCSV(writer io.Writer, rows interface{}) error {
	header, err := Header(rows)
	if err != nil {
		return err
	}
	records, err := ToCSV(rows)
	if err != nil {
		return err
	}

	csvWriter := csv.NewWriter(writer)
	if err := csvWriter.Write(header); err != nil {
		return err
	}
	if err := csvWriter.WriteAll(records); err != nil {
		return fmt.Errorf("failed to write CSV: %w", err)
	}
	return nil
}

func rowTypeOf(rows interface{}) (reflect.Type, error) {
	listType := reflect.TypeOf(rows)
	if listType == nil || listType.Kind() != reflect.Slice {
		return nil, fmt.Errorf("rows is not a slice: type=%v value=%v", listType, rows)
	}
	rowType := listType.Elem()
	if rowType.Kind() != reflect.Struct {
		return nil, fmt.Errorf("rows are not structs: type=%s", rowType)
	}
	return rowType, nil
}
