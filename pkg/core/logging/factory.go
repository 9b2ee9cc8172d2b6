// ============================================================================
// calword - Calendar & Ordinal Toolkit
// ============================================================================
//
// Package:     logging
// Description: Factory functions for service and CLI loggers
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package logging

import (
	"io"
	"os"
	"strings"

	mdwlog "github.com/msto63/calword/foundation/core/log"
)

// LoggerConfig holds configuration for creating loggers
type LoggerConfig struct {
	// Service name
	ServiceName string

	// Log level (trace, debug, info, warn, error, fatal)
	Level string

	// Output format: json, text, console or logfmt (default: json)
	Format string

	// Primary output, stderr when nil
	Output io.Writer

	// Additional outputs besides the primary one
	AdditionalOutputs []io.Writer

	// Record file and line of the call site
	EnableCaller bool
}

// DefaultLoggerConfig returns a default configuration
func DefaultLoggerConfig(serviceName string) LoggerConfig {
	return LoggerConfig{
		ServiceName: serviceName,
		Level:       "info",
		Format:      "json",
	}
}

// NewLogger creates a foundation logger from cfg. Unknown levels fall back to
// info, unknown formats to json.
func NewLogger(cfg LoggerConfig) *mdwlog.Logger {
	var output io.Writer = os.Stderr
	if cfg.Output != nil {
		output = cfg.Output
	}
	if len(cfg.AdditionalOutputs) > 0 {
		writers := append([]io.Writer{output}, cfg.AdditionalOutputs...)
		output = io.MultiWriter(writers...)
	}

	return mdwlog.NewWithConfig(mdwlog.Config{
		Level:        parseLevel(cfg.Level),
		Format:       parseFormat(cfg.Format),
		Output:       output,
		Name:         cfg.ServiceName,
		EnableCaller: cfg.EnableCaller,
	})
}

// NewSimpleLogger creates a logger with the default configuration
func NewSimpleLogger(serviceName string) *mdwlog.Logger {
	return NewLogger(DefaultLoggerConfig(serviceName))
}

func parseLevel(level string) mdwlog.Level {
	parsed, err := mdwlog.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		return mdwlog.LevelInfo
	}
	return parsed
}

func parseFormat(format string) mdwlog.Format {
	parsed, err := mdwlog.ParseFormat(strings.TrimSpace(format))
	if err != nil {
		return mdwlog.FormatJSON
	}
	return parsed
}

// Logger wraps the foundation logger with key/value logging methods
type Logger struct {
	*mdwlog.Logger
	name string
}

// New creates a key/value logger with the default configuration
func New(name string) *Logger {
	return Wrap(NewSimpleLogger(name))
}

// Wrap adapts an existing foundation logger
func Wrap(logger *mdwlog.Logger) *Logger {
	return &Logger{Logger: logger, name: logger.Name()}
}

// WithLevel returns a new logger with the specified level
func (l *Logger) WithLevel(level Level) *Logger {
	return &Logger{Logger: l.Logger.WithLevel(level.foundation()), name: l.name}
}

// With returns a new logger carrying the key/value pairs on every entry
func (l *Logger) With(keysAndValues ...interface{}) *Logger {
	return &Logger{Logger: l.Logger.WithFields(toFields(keysAndValues...)), name: l.name}
}

// Debug logs a debug message with key/value pairs
func (l *Logger) Debug(msg string, keysAndValues ...interface{}) {
	l.Logger.Debug(msg, toFields(keysAndValues...))
}

// Info logs an info message with key/value pairs
func (l *Logger) Info(msg string, keysAndValues ...interface{}) {
	l.Logger.Info(msg, toFields(keysAndValues...))
}

// Warn logs a warning message with key/value pairs
func (l *Logger) Warn(msg string, keysAndValues ...interface{}) {
	l.Logger.Warn(msg, toFields(keysAndValues...))
}

// Error logs an error message with key/value pairs
func (l *Logger) Error(msg string, keysAndValues ...interface{}) {
	l.Logger.Error(msg, toFields(keysAndValues...))
}

// Foundation returns the wrapped foundation logger
func (l *Logger) Foundation() *mdwlog.Logger {
	return l.Logger
}

// toFields converts key/value pairs to mdwlog.Fields. Non-string keys and a
// trailing key without value are dropped.
func toFields(keysAndValues ...interface{}) mdwlog.Fields {
	if len(keysAndValues) == 0 {
		return nil
	}

	fields := make(mdwlog.Fields)
	for i := 0; i < len(keysAndValues)-1; i += 2 {
		key, ok := keysAndValues[i].(string)
		if !ok {
			continue
		}
		fields[key] = keysAndValues[i+1]
	}
	return fields
}
