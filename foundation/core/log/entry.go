// File: entry.go
// Title: Log Entry and Fields
// Description: The Entry written by formatters and the Fields helpers used to
//              attach structured context to log calls.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package log

import (
	"sort"
	"time"
)

// Entry is a single log record
type Entry struct {
	Timestamp time.Time
	Level     Level
	Message   string
	Logger    string
	RequestID string
	Fields    Fields
	Error     error
	Duration  time.Duration
	Caller    *CallerInfo
}

// CallerInfo identifies the call site of a log statement
type CallerInfo struct {
	Function string
	File     string
	Line     int
}

// Fields are structured key/value pairs
type Fields map[string]interface{}

// Field returns a single-pair Fields
func Field(key string, value interface{}) Fields {
	return Fields{key: value}
}

// Err returns the error as a field
func Err(err error) Fields {
	return Fields{"error": err}
}

// Duration returns a duration field
func Duration(key string, d time.Duration) Fields {
	return Fields{key: d}
}

// Merge returns a new Fields holding f overridden by other
func (f Fields) Merge(other Fields) Fields {
	out := make(Fields, len(f)+len(other))
	for k, v := range f {
		out[k] = v
	}
	for k, v := range other {
		out[k] = v
	}
	return out
}

// Keys returns the keys in sorted order
func (f Fields) Keys() []string {
	keys := make([]string, 0, len(f))
	for k := range f {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// NewEntry creates an entry stamped with the current time
func NewEntry(level Level, message string) *Entry {
	return &Entry{
		Timestamp: time.Now(),
		Level:     level,
		Message:   message,
		Fields:    make(Fields),
	}
}
