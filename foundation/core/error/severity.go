// File: severity.go
// Title: Error Severity Levels
// Description: Severity levels used to pick the log level of an error.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package error

// Severity is the impact level of an error
type Severity int

const (
	// SeverityLow covers caller mistakes such as invalid arguments
	SeverityLow Severity = iota

	// SeverityMedium is the default for unclassified errors
	SeverityMedium

	// SeverityHigh covers failing infrastructure (database, configuration)
	SeverityHigh

	// SeverityCritical makes the process unusable
	SeverityCritical
)

// String returns the lower-case name of the severity
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// ShouldAlert reports whether the severity warrants operator attention
func (s Severity) ShouldAlert() bool {
	return s >= SeverityHigh
}

// GetSeverityFromCode derives the default severity of a code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeServiceUnavailable:
		return SeverityCritical
	case CodeDatabaseError, CodeConfigError, CodeMissingConfig, CodeInternal:
		return SeverityHigh
	case CodeInvalidArgument, CodeInvalidInput, CodeInvalidFormat, CodeValueOutOfRange, CodeNotFound:
		return SeverityLow
	default:
		return SeverityMedium
	}
}
