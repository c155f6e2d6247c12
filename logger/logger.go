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

// Package logger wraps logrus with environment-driven setup, console formatting and per-level log counters
package logger

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/seqtils/seqtils/logger/priv"
	"github.com/sirupsen/logrus"
)

// LogLevel represents the logging level.
// The level here is abstract and meant to be translated to real logging levels used by the underlying library.
type LogLevel string

// Logger wraps a logger (Entry) of the underlying logging library
// Logger should always be passed by value
type Logger struct {
	entry    *logrus.Entry
	counters *levelCounters
}

// Fields type, used to pass to `WithFields`
type Fields map[string]interface{}

// Logging levels
const (
	PanicLevel LogLevel = "panic"
	FatalLevel LogLevel = "fatal"
	ErrorLevel LogLevel = "error"
	WarnLevel  LogLevel = "warn"
	InfoLevel  LogLevel = "info"
	DebugLevel LogLevel = "debug"
	TraceLevel LogLevel = "trace"

	critLevel     LogLevel = "crit"
	criticalLevel LogLevel = "critical"
	warningLevel  LogLevel = "warning"
)

const rootComponent = "(root)"

var (
	levelMap = map[LogLevel]logrus.Level{
		PanicLevel:    logrus.PanicLevel,
		FatalLevel:    logrus.FatalLevel,
		critLevel:     logrus.FatalLevel,
		criticalLevel: logrus.FatalLevel,
		ErrorLevel:    logrus.ErrorLevel,
		WarnLevel:     logrus.WarnLevel,
		warningLevel:  logrus.WarnLevel,
		InfoLevel:     logrus.InfoLevel,
		DebugLevel:    logrus.DebugLevel,
		TraceLevel:    logrus.TraceLevel,
	}

	// CounterVec counts logs by component and level. It's registered to the default prometheus registry.
	CounterVec = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "seqtils_logs_total",
		Help: "Numbers of logs including warnings",
	}, []string{priv.LabelComponent, "level"})

	root = Logger{
		entry:    logrus.NewEntry(priv.RootLogger),
		counters: newLevelCounters(rootComponent),
	}
)

func init() {
	prometheus.MustRegister(CounterVec)
	SetAutoFormat()
	SetDefaultLevel()
}

// SetAutoFormat uses the environment variable `LOG_COLOR` and terminal detection to select console or text output format
//
// SetAutoFormat is the default choice and always invoked during initialization
func SetAutoFormat() {
	setAutoFormatWithFallback(priv.TextFormatter, "text")
}

// SetAutoJSONFormat uses the environment variable `LOG_COLOR` and terminal detection to select console or JSON output format
func SetAutoJSONFormat() {
	setAutoFormatWithFallback(priv.JSONFormatter, "JSON")
}

func setAutoFormatWithFallback(fallback logrus.Formatter, fallbackName string) {
	colorYN := strings.ToLower(os.Getenv("LOG_COLOR"))
	switch colorYN {
	case "1", "true", "y", "yes", "on":
		root.entry.Logger.SetFormatter(priv.NewConsoleLogFormatter(true, fallback))
	case "0", "false", "n", "no", "off":
		root.entry.Logger.SetFormatter(fallback)
	case "", "auto":
		root.entry.Logger.SetFormatter(priv.NewConsoleLogFormatter(false, fallback))
	default:
		root.entry.Logger.SetFormatter(priv.NewConsoleLogFormatter(false, fallback))
		Errorf("Invalid LOG_COLOR value: '%s', select 'auto' with %s as fallback", colorYN, fallbackName)
	}
}

// SetJSONFormat sets the logging format in JSON. For example:
//
//	{"level":"info","message":"version compatible","timestamp":"2025-07-04T15:04:05.123+08:00"}
func SetJSONFormat() {
	root.entry.Logger.SetFormatter(priv.JSONFormatter)
}

// SetTextFormat sets the default text format. For example:
//
//	time="2025-07-04T15:04:05.123+08:00" level=debug msg="scan finished"
func SetTextFormat() {
	root.entry.Logger.SetFormatter(priv.TextFormatter)
}

// SetDefaultLevel sets the default logging level depending on environment variable "LOG_LEVEL", or "info" if empty
func SetDefaultLevel() {
	level := os.Getenv("LOG_LEVEL")
	if len(level) == 0 {
		SetLogLevel(InfoLevel)
		return
	}
	if err := TrySetLogLevel(LogLevel(strings.ToLower(level))); err != nil {
		SetLogLevel(InfoLevel)
		Errorf("Invalid LOG_LEVEL value: '%s', select 'info'", level)
	}
}

// SetLogLevel sets the level of the root logger or panic if the level is invalid
func SetLogLevel(level LogLevel) {
	if err := TrySetLogLevel(level); err != nil {
		Panic(err)
	}
}

// TrySetLogLevel sets the level of the root logger
func TrySetLogLevel(level LogLevel) error {
	logrusLevel, exists := levelMap[level]
	if !exists {
		return fmt.Errorf("invalid log level: \"%s\"", level)
	}
	root.entry.Logger.SetLevel(logrusLevel)
	return nil
}

// SetOutput configures the root logger to output into specified Writer
func SetOutput(output io.Writer) {
	root.entry.Logger.SetOutput(output)
}

// SetOutputFile configure the root logger to write into specified file
func SetOutputFile(path string) (io.Closer, error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0644)
	if err != nil {
		return nil, err
	}
	SetOutput(f)
	return f, nil
}

// AtExit registers a function to be called when the program is shut down.
//
// AtExit can be called multiple times and functions registered are called in reverse order (like "defer").
//
// The mechanism only works when application quits by calling Exit() here.
func AtExit(handler func()) {
	logrus.DeferExitHandler(handler)
}

// Exit quits the program by calling exit on the underlying logger
func Exit(code int) {
	logrus.Exit(code)
}

/*****************************************************************************
 * Logging via the root logger
 *****************************************************************************/

// Root gets the root logger that can be used to create sub-loggers.
//
// Calling global logging functions in the package is the same as calling methods in the root logger.
func Root() Logger {
	return root
}

// Panic logs critical errors and panics
func Panic(args ...interface{}) {
	root.Panic(args...)
}

// Panicf logs critical errors with formatting and panics
func Panicf(format string, args ...interface{}) {
	root.Panicf(format, args...)
}

// Fatal logs critical errors and exits the program
func Fatal(args ...interface{}) {
	root.Fatal(args...)
}

// Fatalf logs critical errors with formatting and exits the program
func Fatalf(format string, args ...interface{}) {
	root.Fatalf(format, args...)
}

// Error logs errors via the root logger
func Error(args ...interface{}) {
	root.Error(args...)
}

// Errorf logs errors with formatting
func Errorf(format string, args ...interface{}) {
	root.Errorf(format, args...)
}

// Warn logs warnings
func Warn(args ...interface{}) {
	root.Warn(args...)
}

// Warnf logs warnings with formatting
func Warnf(format string, args ...interface{}) {
	root.Warnf(format, args...)
}

// Info logs information
func Info(args ...interface{}) {
	root.Info(args...)
}

// Infof logs information with formatting
func Infof(format string, args ...interface{}) {
	root.Infof(format, args...)
}

// Debug logs debugging information
func Debug(args ...interface{}) {
	root.Debug(args...)
}

// Debugf logs debugging information with formatting
func Debugf(format string, args ...interface{}) {
	root.Debugf(format, args...)
}

// Trace logs tracing information
func Trace(args ...interface{}) {
	root.Trace(args...)
}

// Tracef logs tracing information with formatting
func Tracef(format string, args ...interface{}) {
	root.Tracef(format, args...)
}

// WithFields creates a sub-logger from the root logger with specifid fields
func WithFields(fields map[string]interface{}) Logger {
	return root.WithFields(fields)
}

// WithField creates a sub-logger from the root logger with specifid field
func WithField(key string, value interface{}) Logger {
	return root.WithField(key, value)
}

/*****************************************************************************
 * Logging or Structured logging via sublogger (Logrus entry)
 *****************************************************************************/

// Panic logs critical errors and panics
func (logger Logger) Panic(args ...interface{}) {
	logger.counters.counterForPanic.Inc()
	getMergedEntryFromArgs(logger.entry, args).Panic(args...)
}

// Panicf logs critical errors with formatting and panics
func (logger Logger) Panicf(format string, args ...interface{}) {
	logger.counters.counterForPanic.Inc()
	getMergedEntryFromArgs(logger.entry, args).Panicf(format, args...)
}

// Fatal logs critical errors and exits the program
func (logger Logger) Fatal(args ...interface{}) {
	logger.counters.counterForFatal.Inc()
	getMergedEntryFromArgs(logger.entry, args).Fatal(args...)
}

// Fatalf logs critical errors with formatting and exits the program
func (logger Logger) Fatalf(format string, args ...interface{}) {
	logger.counters.counterForFatal.Inc()
	getMergedEntryFromArgs(logger.entry, args).Fatalf(format, args...)
}

// Error logs errors
func (logger Logger) Error(args ...interface{}) {
	logger.counters.counterForError.Inc()
	getMergedEntryFromArgs(logger.entry, args).Error(args...)
}

// Errorf logs errors with formatting
func (logger Logger) Errorf(format string, args ...interface{}) {
	logger.counters.counterForError.Inc()
	getMergedEntryFromArgs(logger.entry, args).Errorf(format, args...)
}

// Warn logs warnings
func (logger Logger) Warn(args ...interface{}) {
	logger.counters.counterForWarn.Inc()
	getMergedEntryFromArgs(logger.entry, args).Warn(args...)
}

// Warnf logs warnings with formatting
func (logger Logger) Warnf(format string, args ...interface{}) {
	logger.counters.counterForWarn.Inc()
	getMergedEntryFromArgs(logger.entry, args).Warnf(format, args...)
}

// Info logs information
func (logger Logger) Info(args ...interface{}) {
	logger.counters.counterForInfo.Inc()
	getMergedEntryFromArgs(logger.entry, args).Info(args...)
}

// Infof logs information with formatting
func (logger Logger) Infof(format string, args ...interface{}) {
	logger.counters.counterForInfo.Inc()
	getMergedEntryFromArgs(logger.entry, args).Infof(format, args...)
}

// Debug logs debugging information
func (logger Logger) Debug(args ...interface{}) {
	logger.counters.counterForDebug.Inc()
	getMergedEntryFromArgs(logger.entry, args).Debug(args...)
}

// Debugf logs debugging information with formatting
func (logger Logger) Debugf(format string, args ...interface{}) {
	logger.counters.counterForDebug.Inc()
	getMergedEntryFromArgs(logger.entry, args).Debugf(format, args...)
}

// Trace logs tracing information
func (logger Logger) Trace(args ...interface{}) {
	logger.counters.counterForTrace.Inc()
	getMergedEntryFromArgs(logger.entry, args).Trace(args...)
}

// Tracef logs tracing information with formatting
func (logger Logger) Tracef(format string, args ...interface{}) {
	logger.counters.counterForTrace.Inc()
	getMergedEntryFromArgs(logger.entry, args).Tracef(format, args...)
}

// Sprint prints the given arguments with fields in this logger to a string
//
// e.g. "[Scan] op=sum 4 values"
func (logger Logger) Sprint(args ...interface{}) string {
	strList := buildSprintPrefixes(getMergedEntryFromArgs(logger.entry, args).Data)

	if s := fmt.Sprint(args...); len(s) > 0 {
		strList = append(strList, s)
	}

	return strings.Join(strList, " ")
}

// Sprintf formats the given arguments with fields in this logger to a string
//
// e.g. "[Scan] op=sum failed at 'x'"
func (logger Logger) Sprintf(format string, args ...interface{}) string {
	strList := buildSprintPrefixes(getMergedEntryFromArgs(logger.entry, args).Data)

	if s := fmt.Sprintf(format, args...); len(s) > 0 {
		strList = append(strList, s)
	}

	return strings.Join(strList, " ")
}

// Eprint prints the given arguments with fields in this logger to a StructuredError
func (logger Logger) Eprint(args ...interface{}) error {
	return NewStructuredError(logger.entry.Data, errors.New(fmt.Sprint(args...)))
}

// Eprintf formats the given arguments with fields in this logger to a StructuredError
//
// "%w" is supported to wrap an inner error
func (logger Logger) Eprintf(format string, args ...interface{}) error {
	return NewStructuredError(logger.entry.Data, fmt.Errorf(format, args...))
}

// Ewrap wraps the given error inside a newly-created StructuredError with the fields of this logger
func (logger Logger) Ewrap(innerError error) error {
	return NewStructuredError(logger.entry.Data, innerError)
}

// WithField creates a sub-logger with specifid field
func (logger Logger) WithField(key string, value interface{}) Logger {
	entry := logger.entry.WithField(key, value)
	if key == priv.LabelComponent {
		return Logger{entry, newLevelCounters(fmt.Sprint(value))}
	}
	return Logger{entry, logger.counters}
}

// WithFields creates a sub-logger with specifid fields
func (logger Logger) WithFields(fields map[string]interface{}) Logger {
	entry := logger.entry.WithFields(fields)
	if component, hasComponent := fields[priv.LabelComponent]; hasComponent {
		return Logger{entry, newLevelCounters(fmt.Sprint(component))}
	}
	return Logger{entry, logger.counters}
}

func buildSprintPrefixes(fields map[string]interface{}) []string {
	prefixList := make([]string, 0, 3)

	comp, hasComp := fields[priv.LabelComponent]
	if hasComp {
		prefixList = append(prefixList, fmt.Sprintf("[%v]", comp))
	}

	if dataStr := priv.FormatFields(fields); len(dataStr) > 0 {
		prefixList = append(prefixList, dataStr)
	}

	return prefixList
}

// levelCounters keeps the counters of one component, looked up once per sub-logger instead of on each log
type levelCounters struct {
	counterForPanic prometheus.Counter
	counterForFatal prometheus.Counter
	counterForError prometheus.Counter
	counterForWarn  prometheus.Counter
	counterForInfo  prometheus.Counter
	counterForDebug prometheus.Counter
	counterForTrace prometheus.Counter
}

func newLevelCounters(component string) *levelCounters {
	vec := CounterVec.MustCurryWith(prometheus.Labels{priv.LabelComponent: component})
	return &levelCounters{
		counterForPanic: vec.WithLabelValues(string(PanicLevel)),
		counterForFatal: vec.WithLabelValues(string(FatalLevel)),
		counterForError: vec.WithLabelValues(string(ErrorLevel)),
		counterForWarn:  vec.WithLabelValues(string(WarnLevel)),
		counterForInfo:  vec.WithLabelValues(string(InfoLevel)),
		counterForDebug: vec.WithLabelValues(string(DebugLevel)),
		counterForTrace: vec.WithLabelValues(string(TraceLevel)),
	}
}
