// File: errors.go
// Title: Module Error Constructors
// Description: Standard constructors for module-scoped errors and helpers to read
//              the module and operation back from an error chain.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package errors

import (
	"errors"
	"fmt"
	"strings"

	mdwerror "github.com/msto63/calword/foundation/core/error"
)

// Module identifiers
const (
	ModuleTimex   = "timex"
	ModuleStringx = "stringx"
	ModuleConfig  = "config"
	ModuleJournal = "journal"
	ModuleService = "calendar"
)

// Module error codes, stored in the "module_code" detail
const (
	CodeTimexInvalidArgument   = "TIMEX_INVALID_ARGUMENT"
	CodeStringxInvalidArgument = "STRINGX_INVALID_ARGUMENT"
	CodeConfigInvalidArgument  = "CONFIG_INVALID_ARGUMENT"
)

const (
	detailModule     = "module"
	detailOperation  = "operation"
	detailModuleCode = "module_code"
)

// ModuleCode returns the module-prefixed code for a generic code,
// e.g. ModuleCode("timex", CodeInvalidArgument) = "TIMEX_INVALID_ARGUMENT".
func ModuleCode(module string, code mdwerror.Code) string {
	return strings.ToUpper(module) + "_" + code.String()
}

// ErrorBuilder assembles a module error step by step
type ErrorBuilder struct {
	module    string
	operation string
	message   string
	cause     error
	code      mdwerror.Code
	details   map[string]interface{}
}

// NewErrorBuilder starts an error for module
func NewErrorBuilder(module string) *ErrorBuilder {
	return &ErrorBuilder{
		module:  module,
		code:    mdwerror.CodeInternal,
		details: make(map[string]interface{}),
	}
}

// Operation sets the failing operation
func (eb *ErrorBuilder) Operation(operation string) *ErrorBuilder {
	eb.operation = operation
	return eb
}

// Message sets the message
func (eb *ErrorBuilder) Message(message string) *ErrorBuilder {
	eb.message = message
	return eb
}

// Messagef sets a formatted message
func (eb *ErrorBuilder) Messagef(format string, args ...interface{}) *ErrorBuilder {
	eb.message = fmt.Sprintf(format, args...)
	return eb
}

// Cause sets the wrapped error
func (eb *ErrorBuilder) Cause(cause error) *ErrorBuilder {
	eb.cause = cause
	return eb
}

// Code sets the generic error code
func (eb *ErrorBuilder) Code(code mdwerror.Code) *ErrorBuilder {
	eb.code = code
	return eb
}

// Detail adds a detail
func (eb *ErrorBuilder) Detail(key string, value interface{}) *ErrorBuilder {
	eb.details[key] = value
	return eb
}

// Build creates the error
func (eb *ErrorBuilder) Build() *mdwerror.Error {
	message := eb.message
	if message == "" {
		if eb.operation != "" {
			message = fmt.Sprintf("%s.%s failed", eb.module, eb.operation)
		} else {
			message = eb.module + " operation failed"
		}
	}

	var err *mdwerror.Error
	if eb.cause != nil {
		err = mdwerror.Wrap(eb.cause, message)
	} else {
		err = mdwerror.New(message)
	}

	eb.details[detailModule] = eb.module
	eb.details[detailModuleCode] = ModuleCode(eb.module, eb.code)
	if eb.operation != "" {
		eb.details[detailOperation] = eb.operation
		err = err.WithOperation(eb.operation)
	}

	return err.WithCode(eb.code).WithDetails(eb.details)
}

// InvalidArgument reports a violated precondition of a public operation
func InvalidArgument(module, operation, message string) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Message(message).
		Code(mdwerror.CodeInvalidArgument).
		Build()
}

// InputError reports input that does not have the expected shape
func InputError(module, operation string, input interface{}, expected string) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("invalid input for %s.%s: expected %s", module, operation, expected).
		Code(mdwerror.CodeInvalidInput).
		Detail("input", input).
		Detail("expected", expected).
		Build()
}

// FormatError reports a value that could not be parsed in the expected format
func FormatError(module, operation string, input interface{}, expectedFormat string) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("invalid format: %v (expected %s)", input, expectedFormat).
		Code(mdwerror.CodeInvalidFormat).
		Detail("input", input).
		Detail("expected_format", expectedFormat).
		Build()
}

// OperationError wraps an infrastructure failure
func OperationError(module, operation string, code mdwerror.Code, cause error) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Code(code).
		Cause(cause).
		Build()
}

// NotFound reports a missing entity
func NotFound(module, operation string, identifier interface{}) *mdwerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Messagef("%v not found", identifier).
		Code(mdwerror.CodeNotFound).
		Detail("identifier", identifier).
		Build()
}

// IsInvalidArgument reports whether err is a precondition violation
func IsInvalidArgument(err error) bool {
	return mdwerror.HasCode(err, mdwerror.CodeInvalidArgument)
}

// IsModuleError reports whether err was raised by module
func IsModuleError(err error, module string) bool {
	return ExtractModule(err) == module
}

// ExtractModule returns the module recorded on err, or ""
func ExtractModule(err error) string {
	return detailString(err, detailModule)
}

// ExtractOperation returns the operation recorded on err, or ""
func ExtractOperation(err error) string {
	return detailString(err, detailOperation)
}

// ExtractModuleCode returns the module-prefixed code recorded on err, or ""
func ExtractModuleCode(err error) string {
	return detailString(err, detailModuleCode)
}

func detailString(err error, key string) string {
	var e *mdwerror.Error
	if !errors.As(err, &e) {
		return ""
	}
	if s, ok := e.Details()[key].(string); ok {
		return s
	}
	return ""
}
