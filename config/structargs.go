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

package config

import (
	"reflect"
	"strings"
	"time"

	"github.com/iancoleman/strcase"
	"github.com/seqtils/seqtils/config/flagext"
	"github.com/seqtils/seqtils/logger"
	"github.com/seqtils/seqtils/version"
	"github.com/spf13/pflag"
)

// AddStructFlagsToCmd adds new struct flags to use with the command-line
//
// flagStruct must be a pointer to struct, for example:
//
//	cmdFlags := struct {
//		SeedValue  string          `help:"Initial accumulator"`
//		unexposed  int
//		MinVersion version.Version `name:"min" help:"Lowest compatible version"`
//		Delimiter  string
//	}{
//		SeedValue:  "0",
//		MinVersion: version.MustParse("1.0"),
//	}
//	AddStructFlagsToCmd("scan", &cmdFlags)
//	// Flags:
//	//   --delimiter string
//	//   --min version         Lowest compatible version (default 1.0)
//	//   --seed_value string   Initial accumulator (default "0")
//
// Nested structs and embedded structs are also supported, see tests for more examples
func AddStructFlagsToCmd(cmdName string, flagStruct interface{}) {
	cmd := getCommand(cmdName)
	flagSet := cmd.PersistentFlags() // allow subcommands to inherit same flags

	AddStructFlagsToFlags(logger.WithField("cmd", cmdName), flagSet, flagStruct)
}

// AddStructFlagsToFlags adds new struct flags to use with the command-line
//
// See AddStructFlagsToCmd for examples
func AddStructFlagsToFlags(parentLogger logger.Logger, flagSet *pflag.FlagSet, flagStruct interface{}) {
	ptrValue := reflect.ValueOf(flagStruct)
	if ptrValue.Kind() != reflect.Ptr {
		logger.Panic("flagStruct must be a pointer to struct: ", flagStruct)
	}

	flagStructValue := ptrValue.Elem()
	addReflectedFlagsFromStruct(parentLogger, flagSet, flagStructValue, "", "")
}

func addReflectedFlagsFromStruct(parentLogger logger.Logger, flags *pflag.FlagSet, structValue reflect.Value, namePrefix string, helpPrefix string) {
	structType := structValue.Type()
	for n := 0; n < structType.NumField(); n++ {
		fieldType := structType.Field(n)
		fieldValue := structValue.Field(n)
		// skip unexported fields
		if !fieldType.Anonymous && !fieldValue.CanSet() {
			continue
		}
		help, _ := fieldType.Tag.Lookup("help")
		name, _ := fieldType.Tag.Lookup("name")
		switch name {
		case "-":
			continue
		case "":
			name = strcase.ToSnake(fieldType.Name)
			if name == "" {
				continue
			}
		}
		var flogger logger.Logger
		if fieldType.Anonymous {
			flogger = parentLogger.WithFields(logger.Fields{
				"name": "(" + name + ")",
				"type": fieldType.Type.String(),
			})
		} else {
			flogger = parentLogger.WithFields(logger.Fields{
				"name": name,
				"type": fieldType.Type.String(),
			})
		}
		flogger.Debugf("discovered field for flag")
		if !tryAddReflectedFlag(flags, fieldValue, namePrefix+name, helpPrefix+help) {
			if fieldValue.Kind() == reflect.Struct {
				if fieldType.Anonymous {
					addReflectedFlagsFromStruct(flogger, flags, fieldValue, namePrefix, helpPrefix)
				} else {
					nextNamePrefix := namePrefix + name + "_"
					nextHelpPrefix := helpPrefix + help
					if len(nextHelpPrefix) > 0 && !strings.HasSuffix(nextHelpPrefix, " ") {
						nextHelpPrefix += " "
					}
					addReflectedFlagsFromStruct(flogger, flags, fieldValue, nextNamePrefix, nextHelpPrefix)
				}
			} else {
				flogger.Panicf("unsupported type")
			}
		}
	}
}

// flagBinder adds a flag bound to the field, using the current field value as default
type flagBinder func(flags *pflag.FlagSet, fieldValue reflect.Value, name string, help string)

func bindFlag[T any](addVar func(flags *pflag.FlagSet, p *T, name string, value T, usage string)) flagBinder {
	return func(flags *pflag.FlagSet, fieldValue reflect.Value, name string, help string) {
		addVar(flags, fieldValue.Addr().Interface().(*T), name, fieldValue.Interface().(T), help)
	}
}

// flagBinders maps exact field types to flag types
//
// Named types like time.Duration have their own entries and are never treated as their underlying kinds
var flagBinders = map[reflect.Type]flagBinder{
	reflect.TypeOf(version.Version{}): bindFlag(flagext.VersionVar),
	reflect.TypeOf(time.Duration(0)):  bindFlag((*pflag.FlagSet).DurationVar),
	reflect.TypeOf([]time.Duration{}): bindFlag((*pflag.FlagSet).DurationSliceVar),
	reflect.TypeOf(false):             bindFlag((*pflag.FlagSet).BoolVar),
	reflect.TypeOf(int(0)):            bindFlag((*pflag.FlagSet).IntVar),
	reflect.TypeOf(int8(0)):           bindFlag((*pflag.FlagSet).Int8Var),
	reflect.TypeOf(int16(0)):          bindFlag((*pflag.FlagSet).Int16Var),
	reflect.TypeOf(int32(0)):          bindFlag((*pflag.FlagSet).Int32Var),
	reflect.TypeOf(int64(0)):          bindFlag((*pflag.FlagSet).Int64Var),
	reflect.TypeOf(uint(0)):           bindFlag((*pflag.FlagSet).UintVar),
	reflect.TypeOf(uint8(0)):          bindFlag((*pflag.FlagSet).Uint8Var),
	reflect.TypeOf(uint16(0)):         bindFlag((*pflag.FlagSet).Uint16Var),
	reflect.TypeOf(uint32(0)):         bindFlag((*pflag.FlagSet).Uint32Var),
	reflect.TypeOf(uint64(0)):         bindFlag((*pflag.FlagSet).Uint64Var),
	reflect.TypeOf(float32(0)):        bindFlag((*pflag.FlagSet).Float32Var),
	reflect.TypeOf(float64(0)):        bindFlag((*pflag.FlagSet).Float64Var),
	reflect.TypeOf(""):                bindFlag((*pflag.FlagSet).StringVar),
	reflect.TypeOf([]bool{}):          bindFlag((*pflag.FlagSet).BoolSliceVar),
	reflect.TypeOf([]int{}):           bindFlag((*pflag.FlagSet).IntSliceVar),
	reflect.TypeOf([]int32{}):         bindFlag((*pflag.FlagSet).Int32SliceVar),
	reflect.TypeOf([]int64{}):         bindFlag((*pflag.FlagSet).Int64SliceVar),
	reflect.TypeOf([]uint{}):          bindFlag((*pflag.FlagSet).UintSliceVar),
	reflect.TypeOf([]byte{}):          bindFlag((*pflag.FlagSet).BytesHexVar),
	reflect.TypeOf([]float32{}):       bindFlag((*pflag.FlagSet).Float32SliceVar),
	reflect.TypeOf([]float64{}):       bindFlag((*pflag.FlagSet).Float64SliceVar),
	reflect.TypeOf([]string{}):        bindFlag((*pflag.FlagSet).StringSliceVar),
}

func tryAddReflectedFlag(flags *pflag.FlagSet, fieldValue reflect.Value, name, help string) bool {
	bind, found := flagBinders[fieldValue.Type()]
	if !found {
		return false
	}
	bind(flags, fieldValue, name, help)
	return true
}
