// File: level.go
// Title: Log Levels
// Description: Log level definitions, parsing and filtering.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package log

import "strings"

// Level is the importance of a log entry
type Level int

const (
	LevelTrace Level = iota
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
	LevelFatal

	// LevelAudit entries are written regardless of the configured level
	LevelAudit
)

var levelNames = [...]struct{ long, short, color string }{
	LevelTrace: {"trace", "TRC", "\033[37m"},
	LevelDebug: {"debug", "DBG", "\033[36m"},
	LevelInfo:  {"info", "INF", "\033[32m"},
	LevelWarn:  {"warn", "WRN", "\033[33m"},
	LevelError: {"error", "ERR", "\033[31m"},
	LevelFatal: {"fatal", "FTL", "\033[35m"},
	LevelAudit: {"audit", "AUD", "\033[34m"},
}

func (l Level) valid() bool {
	return l >= LevelTrace && l <= LevelAudit
}

// String returns the lower-case level name
func (l Level) String() string {
	if !l.valid() {
		return "unknown"
	}
	return levelNames[l].long
}

// ShortString returns the three-letter level tag
func (l Level) ShortString() string {
	if !l.valid() {
		return "???"
	}
	return levelNames[l].short
}

// Color returns the ANSI color sequence used by the console formatter
func (l Level) Color() string {
	if !l.valid() {
		return "\033[0m"
	}
	return levelNames[l].color
}

// ShouldLog reports whether an entry of level l passes minLevel
func (l Level) ShouldLog(minLevel Level) bool {
	return l == LevelAudit || l >= minLevel
}

// ParseLevel parses long or short level names, case-insensitively
func ParseLevel(level string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace", "trc":
		return LevelTrace, nil
	case "debug", "dbg":
		return LevelDebug, nil
	case "info", "inf", "information":
		return LevelInfo, nil
	case "warn", "wrn", "warning":
		return LevelWarn, nil
	case "error", "err":
		return LevelError, nil
	case "fatal", "ftl":
		return LevelFatal, nil
	case "audit", "aud":
		return LevelAudit, nil
	default:
		return LevelInfo, &ParseError{Input: level, Type: "level"}
	}
}

// ParseError is returned for unknown level or format names
type ParseError struct {
	Input string
	Type  string
}

func (e *ParseError) Error() string {
	return "invalid " + e.Type + ": " + e.Input
}

// DefaultLevel is the level of a logger created with New
func DefaultLevel() Level {
	return LevelInfo
}
