// Package errors is the error construction API used by the foundation utilities
// and the calword services.
//
// Package: errors
// Title: Module Error Constructors
// Description: Builds structured core/error values tagged with the module and the
//              operation that failed. Precondition violations of every public
//              operation are reported through InvalidArgument so callers can test
//              for a single kind with IsInvalidArgument.
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
//	import mdwerrors "github.com/msto63/calword/foundation/core/errors"
//
//	if days < 0 {
//		return time.Time{}, mdwerrors.InvalidArgument(mdwerrors.ModuleTimex,
//			"AdvanceWorkingDays", "day count must not be negative").
//			WithDetail("days", days)
//	}
//
//	if mdwerrors.IsInvalidArgument(err) {
//		// caller error, do not retry
//	}
package errors
