// File: timex.go
// Title: Core Time Utilities
// Description: Layout constants, weekday helpers and lenient date parsing shared
//              by the working-day engine and the formatters.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package timex

import (
	"strings"
	"time"

	mdwerrors "github.com/msto63/calword/foundation/core/errors"
)

// Layouts used by the formatters and the parser
const (
	ISO8601Date           = "2006-01-02"
	ISO8601DateTime       = "2006-01-02T15:04:05"
	ISO8601               = "2006-01-02T15:04:05Z07:00"
	BusinessDateTime      = "2006-01-02 15:04:05"
	YearMonth             = "2006-01"
	CompactDate           = "20060102"
	CompactDateTime       = "20060102150405"
	CompactDateTimeMillis = "20060102150405.000"
	SpokenClock           = "3:04 PM"
)

// Day is the length of one calendar day in the working-day arithmetic
const Day = 24 * time.Hour

// Weekday numbers days 0=Sunday .. 6=Saturday, like time.Weekday
type Weekday time.Weekday

const (
	Sunday Weekday = iota
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

// String returns the English day name
func (w Weekday) String() string {
	return time.Weekday(w).String()
}

// IsWeekend reports whether w is Saturday or Sunday
func (w Weekday) IsWeekend() bool {
	return w == Saturday || w == Sunday
}

// WeekdayOf returns the weekday of t in t's location
func WeekdayOf(t time.Time) Weekday {
	return Weekday(t.Weekday())
}

var parseLayouts = []string{
	time.RFC3339Nano,
	ISO8601DateTime,
	BusinessDateTime,
	ISO8601Date,
	CompactDateTime,
	CompactDate,
}

// Parse reads value in one of the ISO-style layouts. Values without a zone
// are interpreted in UTC.
func Parse(value string) (time.Time, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return time.Time{}, mdwerrors.InvalidArgument(mdwerrors.ModuleTimex, "Parse", "time value must not be empty")
	}
	for _, layout := range parseLayouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return t, nil
		}
	}
	return time.Time{}, mdwerrors.FormatError(mdwerrors.ModuleTimex, "Parse", value,
		"YYYY-MM-DD, YYYY-MM-DD HH:MM:SS, RFC3339 or YYYYMMDD[HHMMSS]")
}

// StartOfDay returns midnight of t's day in t's location
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// SameDay reports whether a and b fall on the same calendar day in their
// own locations
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
