// File: logger.go
// Title: Structured Logger
// Description: Logger with immutable With* derivation, level filtering, caller
//              capture and severity-aware logging of structured errors. A
//              package-level default logger backs the global helpers.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package log

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	mdwerror "github.com/msto63/calword/foundation/core/error"
)

// Logger writes structured entries. Derived loggers share the output writer
// and its lock.
type Logger struct {
	level        Level
	formatter    Formatter
	output       io.Writer
	name         string
	requestID    string
	fields       Fields
	enableCaller bool

	writeMu *sync.Mutex
}

// Config configures NewWithConfig
type Config struct {
	Level        Level
	Format       Format
	Output       io.Writer
	Name         string
	EnableCaller bool
}

// New returns an info-level JSON logger writing to stdout
func New() *Logger {
	return NewWithConfig(Config{Level: DefaultLevel(), Format: FormatJSON})
}

// NewWithConfig builds a logger from config
func NewWithConfig(config Config) *Logger {
	output := config.Output
	if output == nil {
		output = os.Stdout
	}
	return &Logger{
		level:        config.Level,
		formatter:    GetFormatter(config.Format),
		output:       output,
		name:         config.Name,
		fields:       make(Fields),
		enableCaller: config.EnableCaller,
		writeMu:      &sync.Mutex{},
	}
}

func (l *Logger) clone() *Logger {
	c := *l
	c.fields = make(Fields, len(l.fields))
	for k, v := range l.fields {
		c.fields[k] = v
	}
	return &c
}

// WithLevel returns a copy with the given minimum level
func (l *Logger) WithLevel(level Level) *Logger {
	c := l.clone()
	c.level = level
	return c
}

// WithFormat returns a copy using the formatter for format
func (l *Logger) WithFormat(format Format) *Logger {
	c := l.clone()
	c.formatter = GetFormatter(format)
	return c
}

// WithFormatter returns a copy using formatter
func (l *Logger) WithFormatter(formatter Formatter) *Logger {
	c := l.clone()
	c.formatter = formatter
	return c
}

// WithOutput returns a copy writing to output
func (l *Logger) WithOutput(output io.Writer) *Logger {
	c := l.clone()
	c.output = output
	c.writeMu = &sync.Mutex{}
	return c
}

// WithName returns a copy with the given logger name
func (l *Logger) WithName(name string) *Logger {
	c := l.clone()
	c.name = name
	return c
}

// WithField returns a copy that adds key=value to every entry
func (l *Logger) WithField(key string, value interface{}) *Logger {
	c := l.clone()
	c.fields[key] = value
	return c
}

// WithFields returns a copy that adds fields to every entry
func (l *Logger) WithFields(fields Fields) *Logger {
	c := l.clone()
	for k, v := range fields {
		c.fields[k] = v
	}
	return c
}

// WithRequestID returns a copy tagging entries with requestID
func (l *Logger) WithRequestID(requestID string) *Logger {
	c := l.clone()
	c.requestID = requestID
	return c
}

// WithCaller returns a copy that records the call site
func (l *Logger) WithCaller() *Logger {
	c := l.clone()
	c.enableCaller = true
	return c
}

// Level returns the minimum level
func (l *Logger) Level() Level {
	return l.level
}

// Name returns the logger name
func (l *Logger) Name() string {
	return l.name
}

// IsLevelEnabled reports whether entries of level are written
func (l *Logger) IsLevelEnabled(level Level) bool {
	return level.ShouldLog(l.level)
}

func (l *Logger) Trace(message string, fields ...Fields) { l.log(LevelTrace, message, nil, fields) }
func (l *Logger) Debug(message string, fields ...Fields) { l.log(LevelDebug, message, nil, fields) }
func (l *Logger) Info(message string, fields ...Fields)  { l.log(LevelInfo, message, nil, fields) }
func (l *Logger) Warn(message string, fields ...Fields)  { l.log(LevelWarn, message, nil, fields) }
func (l *Logger) Error(message string, fields ...Fields) { l.log(LevelError, message, nil, fields) }
func (l *Logger) Audit(message string, fields ...Fields) { l.log(LevelAudit, message, nil, fields) }

// Fatal logs and exits the process with status 1
func (l *Logger) Fatal(message string, fields ...Fields) {
	l.log(LevelFatal, message, nil, fields)
	os.Exit(1)
}

// ErrorWithErr logs message at error level with err attached
func (l *Logger) ErrorWithErr(message string, err error, fields ...Fields) {
	l.log(LevelError, message, err, fields)
}

// WarnWithErr logs message at warn level with err attached
func (l *Logger) WarnWithErr(message string, err error, fields ...Fields) {
	l.log(LevelWarn, message, err, fields)
}

// LogError logs err at a level derived from its severity: low is info,
// medium is warn, high and critical are error. Plain errors log at error.
func (l *Logger) LogError(err error, fields ...Fields) {
	if err == nil {
		return
	}

	var e *mdwerror.Error
	if !errors.As(err, &e) {
		l.log(LevelError, err.Error(), err, fields)
		return
	}

	extra := Fields{
		"error_code":     e.Code().String(),
		"error_severity": e.Severity().String(),
	}
	if e.Operation() != "" {
		extra["error_operation"] = e.Operation()
	}
	for k, v := range e.Details() {
		extra["error_"+k] = v
	}

	level := LevelError
	switch e.Severity() {
	case mdwerror.SeverityLow:
		level = LevelInfo
	case mdwerror.SeverityMedium:
		level = LevelWarn
	}
	l.log(level, err.Error(), err, append(fields, extra))
}

// StartTimer starts a Timer reporting through l
func (l *Logger) StartTimer(operation string) *Timer {
	return NewTimer(l, operation)
}

func (l *Logger) log(level Level, message string, err error, fields []Fields) {
	if !level.ShouldLog(l.level) {
		return
	}

	entry := NewEntry(level, message)
	entry.Logger = l.name
	entry.RequestID = l.requestID
	entry.Error = err
	for k, v := range l.fields {
		entry.Fields[k] = v
	}
	for _, set := range fields {
		for k, v := range set {
			entry.Fields[k] = v
		}
	}
	if l.enableCaller {
		entry.Caller = caller(3)
	}

	data, fErr := l.formatter.Format(entry)
	if fErr != nil {
		return
	}

	l.writeMu.Lock()
	defer l.writeMu.Unlock()
	_, _ = l.output.Write(data)
}

func caller(skip int) *CallerInfo {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return nil
	}
	function := "unknown"
	if fn := runtime.FuncForPC(pc); fn != nil {
		function = fn.Name()
		if idx := strings.LastIndex(function, "."); idx != -1 {
			function = function[idx+1:]
		}
	}
	return &CallerInfo{Function: function, File: filepath.Base(file), Line: line}
}

var (
	defaultMu     sync.RWMutex
	defaultLogger = New()
)

// GetDefault returns the package-level logger
func GetDefault() *Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// SetDefault replaces the package-level logger
func SetDefault(logger *Logger) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultLogger = logger
}

func Debug(message string, fields ...Fields) { GetDefault().Debug(message, fields...) }
func Info(message string, fields ...Fields)  { GetDefault().Info(message, fields...) }
func Warn(message string, fields ...Fields)  { GetDefault().Warn(message, fields...) }
func Error(message string, fields ...Fields) { GetDefault().Error(message, fields...) }
