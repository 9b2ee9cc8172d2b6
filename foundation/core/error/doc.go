// Package error provides the structured error type used throughout calword.
//
// Package: error
// Title: calword Error Handling
// Description: Errors carry a Code, a Severity, key/value details, the failing
//              operation and a stack trace. They wrap and unwrap like standard
//              errors, so errors.Is and errors.As keep working across layers.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation
//
// Usage:
//
//	import mdwerror "github.com/msto63/calword/foundation/core/error"
//
//	err := mdwerror.New("day count must not be negative").
//		WithCode(mdwerror.CodeInvalidArgument).
//		WithOperation("AdvanceWorkingDays").
//		WithDetail("days", -3)
//
//	if mdwerror.HasCode(err, mdwerror.CodeInvalidArgument) {
//		// reject the request
//	}
package error
