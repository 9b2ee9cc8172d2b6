// Package log provides structured logging for calword.
//
// Package: log
// Title: calword Structured Logging
// Description: Leveled structured logger with JSON, text, console and logfmt
//              output, immutable derivation of child loggers carrying context
//              fields, severity-aware logging of core/error values and timers
//              for operation durations.
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
//	import mdwlog "github.com/msto63/calword/foundation/core/log"
//
//	logger := mdwlog.New().
//		WithLevel(mdwlog.LevelDebug).
//		WithFormat(mdwlog.FormatText).
//		WithName("journal")
//
//	logger.Info("journal opened", mdwlog.Field("path", path))
//
//	timer := logger.StartTimer("prune")
//	removed, err := store.Prune(ctx, cutoff)
//	if err != nil {
//		timer.StopWithError(err)
//	}
//	timer.Stop()
package log
