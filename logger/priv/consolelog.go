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

package priv

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
	"golang.org/x/term"
)

// LabelComponent defines the special "component" field
const LabelComponent = "component"

// ConsoleLogFormatter prints colored and compact log lines to terminals
//
// Colors are enabled only if the output writer is a terminal, unless ForceColor is set
type ConsoleLogFormatter struct {
	ForceColor        bool             // Enable colors even for non-terminal writers
	FallbackFormatter logrus.Formatter // Formatter for non-terminal writers. If nil, a human-readable plain format is used
	lastWriter        io.Writer
	lastColored       bool
}

const shortTimestamp = "15:04:05.000"

const (
	ansiReset        = "\x1b[0m"
	ansiBold         = "\x1b[1m"
	ansiDimmed       = "\x1b[2m"
	ansiItalic       = "\x1b[3m"
	ansiUnderline    = "\x1b[4m"
	ansiColorRed     = "\x1b[31m"
	ansiColorYellow  = "\x1b[33m"
	ansiColorMagenta = "\x1b[35m"
	ansiColorWhite   = "\x1b[37m"
)

var (
	logColorByLevel = map[logrus.Level]string{
		logrus.TraceLevel: ansiColorWhite,
		logrus.DebugLevel: ansiColorWhite,
		logrus.InfoLevel:  ansiColorYellow,
		logrus.WarnLevel:  ansiColorMagenta,
		logrus.ErrorLevel: ansiColorRed,
		logrus.FatalLevel: ansiColorRed,
		logrus.PanicLevel: ansiColorRed,
	}
	fieldsFormatReplacer = strings.NewReplacer("\\", "\\\\", "\"", "\\\"")
)

// NewConsoleLogFormatter creates a new ConsoleLogFormatter
func NewConsoleLogFormatter(forceColor bool, fallbackFormatter logrus.Formatter) *ConsoleLogFormatter {
	return &ConsoleLogFormatter{
		ForceColor:        forceColor,
		FallbackFormatter: fallbackFormatter,
	}
}

// Format formats log record for console
func (f *ConsoleLogFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	if f.isColored(entry.Logger.Out) {
		return []byte(formatColored(entry)), nil
	}
	if f.FallbackFormatter != nil {
		return f.FallbackFormatter.Format(entry)
	}
	return []byte(formatPlain(entry)), nil
}

// formatPlain formats a line like "2025-07-04T17:44:36.286+08:00 INFO  [Scan] scanned op=sum values=4"
func formatPlain(entry *logrus.Entry) string {
	line := fmt.Sprintf("%-29s %-5s", entry.Time.Format(RFC3339Milli), levelLabel(entry.Level))
	if comp, ok := entry.Data[LabelComponent]; ok {
		line += fmt.Sprintf(" [%v]", comp)
	}
	line += " " + entry.Message
	if fields := FormatFields(entry.Data); fields != "" {
		line += " " + fields
	}
	return line + "\n"
}

// formatColored formats a line like formatPlain but with short time, component underlined and fields in italic
func formatColored(entry *logrus.Entry) string {
	color := logColorByLevel[entry.Level]
	line := formatAnsi(fmt.Sprintf("%-12s %-5s", entry.Time.Format(shortTimestamp), levelLabel(entry.Level)), color, ansiBold)
	if comp, ok := entry.Data[LabelComponent]; ok {
		line += " " + formatAnsi(fmt.Sprint(comp), color, ansiUnderline)
	}
	line += " " + formatAnsi(entry.Message, color)
	fields := joinFields(entry.Data, func(key string, value interface{}) string {
		return formatAnsi(key+"=", color, ansiItalic, ansiDimmed) + formatAnsi(fmt.Sprint(value), color, ansiItalic)
	})
	if fields != "" {
		line += " " + fields
	}
	return line + "\n"
}

func levelLabel(level logrus.Level) string {
	if level == logrus.WarnLevel {
		return "WARN"
	}
	return strings.ToUpper(level.String())
}

// isColored checks the writer and caches the result for the last writer seen
func (f *ConsoleLogFormatter) isColored(writer io.Writer) bool {
	if f.ForceColor {
		return true
	}
	if f.lastWriter != writer {
		f.lastWriter = writer
		f.lastColored = IsTerminalWriter(writer)
	}
	return f.lastColored
}

// IsTerminalWriter checks whether the given writer is a terminal (suitable for color formatting)
func IsTerminalWriter(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(file.Fd()))
}

// FormatFields formats all but "component" fields into string, e.g. "name=Foo type=Bar status=..."
//
// Values containing spaces are quoted
func FormatFields(fields logrus.Fields) string {
	return joinFields(fields, func(key string, value interface{}) string {
		v := fmt.Sprint(value)
		if strings.Contains(v, " ") {
			return fmt.Sprintf("%s=\"%s\"", key, fieldsFormatReplacer.Replace(v))
		}
		return key + "=" + v
	})
}

// joinFields formats all but "component" fields sorted by key and joins them by space
func joinFields(fields logrus.Fields, formatField func(key string, value interface{}) string) string {
	keys := maps.Keys(fields)
	slices.Sort(keys)
	fieldStrings := make([]string, 0, len(fields))
	for _, key := range keys {
		if key == LabelComponent {
			continue
		}
		fieldStrings = append(fieldStrings, formatField(key, fields[key]))
	}
	return strings.Join(fieldStrings, " ")
}

func formatAnsi(s string, formats ...string) string {
	return strings.Join(formats, "") + s + ansiReset
}
