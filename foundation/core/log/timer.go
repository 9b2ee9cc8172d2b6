// File: timer.go
// Title: Operation Timer
// Description: Measures an operation and logs its duration when stopped.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package log

import "time"

// Timer measures one operation. Only the first Stop* call logs.
type Timer struct {
	logger    *Logger
	operation string
	start     time.Time
	level     Level
	fields    Fields
	stopped   bool
}

// NewTimer starts a debug-level timer for operation
func NewTimer(logger *Logger, operation string) *Timer {
	return &Timer{
		logger:    logger,
		operation: operation,
		start:     time.Now(),
		level:     LevelDebug,
		fields:    make(Fields),
	}
}

// WithLevel sets the level of the completion entry
func (t *Timer) WithLevel(level Level) *Timer {
	t.level = level
	return t
}

// WithField adds a field to the completion entry
func (t *Timer) WithField(key string, value interface{}) *Timer {
	t.fields[key] = value
	return t
}

// Elapsed returns the time since the timer started
func (t *Timer) Elapsed() time.Duration {
	return time.Since(t.start)
}

// IsRunning reports whether the timer has not been stopped
func (t *Timer) IsRunning() bool {
	return !t.stopped
}

func (t *Timer) finish() (time.Duration, Fields, bool) {
	if t.stopped {
		return 0, nil, false
	}
	t.stopped = true
	elapsed := t.Elapsed()
	fields := t.fields.Merge(Fields{
		"operation":   t.operation,
		"duration_ms": durationMillis(elapsed),
	})
	return elapsed, fields, true
}

// Stop logs "<operation> completed" with the elapsed time
func (t *Timer) Stop() time.Duration {
	elapsed, fields, ok := t.finish()
	if ok && t.logger != nil {
		t.logger.log(t.level, t.operation+" completed", nil, []Fields{fields})
	}
	return elapsed
}

// StopWithError logs "<operation> failed" at error level
func (t *Timer) StopWithError(err error) time.Duration {
	elapsed, fields, ok := t.finish()
	if ok && t.logger != nil {
		fields["success"] = false
		t.logger.log(LevelError, t.operation+" failed", err, []Fields{fields})
	}
	return elapsed
}

// Cancel stops the timer without logging
func (t *Timer) Cancel() {
	t.stopped = true
}
