// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes used across calword for classifying failures.
//              Precondition violations of the calendar and numeral operations all
//              use CodeInvalidArgument.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package error

// Code categorizes an error
type Code string

const (
	// Generic
	CodeUnknown  Code = "UNKNOWN"
	CodeInternal Code = "INTERNAL"
	CodeNotFound Code = "NOT_FOUND"

	// Input validation
	CodeInvalidArgument Code = "INVALID_ARGUMENT"
	CodeInvalidInput    Code = "INVALID_INPUT"
	CodeInvalidFormat   Code = "INVALID_FORMAT"
	CodeValueOutOfRange Code = "VALUE_OUT_OF_RANGE"

	// Configuration
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeMissingConfig Code = "MISSING_CONFIG"

	// Infrastructure
	CodeDatabaseError      Code = "DATABASE_ERROR"
	CodeServiceUnavailable Code = "SERVICE_UNAVAILABLE"
)

// String returns the code text
func (c Code) String() string {
	return string(c)
}

// IsValid reports whether c is one of the declared codes
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound,
		CodeInvalidArgument, CodeInvalidInput, CodeInvalidFormat, CodeValueOutOfRange,
		CodeConfigError, CodeMissingConfig,
		CodeDatabaseError, CodeServiceUnavailable:
		return true
	default:
		return false
	}
}

// Category returns the high-level group of the code
func (c Code) Category() string {
	switch c {
	case CodeInvalidArgument, CodeInvalidInput, CodeInvalidFormat, CodeValueOutOfRange:
		return "validation"
	case CodeConfigError, CodeMissingConfig:
		return "configuration"
	case CodeDatabaseError:
		return "database"
	case CodeServiceUnavailable:
		return "service"
	default:
		return "generic"
	}
}

// IsClientError reports whether the code blames the caller's input
func (c Code) IsClientError() bool {
	return c.Category() == "validation" || c == CodeNotFound
}
