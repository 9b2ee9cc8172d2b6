// File: format.go
// Title: Date Formatting
// Description: Compact, ISO and spoken renderings of instants plus half-hour
//              rounding. All functions return new values.
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

	mdwstringx "github.com/msto63/calword/foundation/utils/stringx"
)

// DefaultSpokenOffsetHours shifts spoken times to US Eastern Standard Time
const DefaultSpokenOffsetHours = -5

// FormatYearMonth returns YYYY-MM of t in UTC
func FormatYearMonth(t time.Time) string {
	return t.UTC().Format(YearMonth)
}

// FormatDate returns YYYY-MM-DD of t in UTC
func FormatDate(t time.Time) string {
	return t.UTC().Format(ISO8601Date)
}

// FormatTimestamp returns YYYYMMDDHHMMSS of t in UTC, followed by three
// millisecond digits when withMillis is set
func FormatTimestamp(t time.Time, withMillis bool) string {
	if !withMillis {
		return t.UTC().Format(CompactDateTime)
	}
	return strings.Replace(t.UTC().Format(CompactDateTimeMillis), ".", "", 1)
}

// FormatISO returns t in UTC as RFC 3339 without fractional seconds
func FormatISO(t time.Time) string {
	return t.UTC().Format(ISO8601)
}

// FormatISOMillis returns t in UTC as RFC 3339 with milliseconds,
// e.g. 2024-03-21T07:00:00.000Z
func FormatISOMillis(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05.000Z07:00")
}

// FormatSpoken renders t for speech after shifting t and now by offsetHours
// from UTC: "today at 3:05 PM" when both fall on the same day, otherwise
// "Friday, November 17th at 3:05 PM".
func FormatSpoken(t, now time.Time, offsetHours int) string {
	shift := time.Duration(offsetHours) * time.Hour
	local := t.UTC().Add(shift)
	today := now.UTC().Add(shift)

	clock := local.Format(SpokenClock)
	if SameDay(local, today) {
		return "today at " + clock
	}
	return local.Weekday().String() + ", " + local.Month().String() + " " +
		mdwstringx.OrdinalNumeral(local.Day()) + " at " + clock
}

// RoundDownHalfHour truncates t to the previous full or half hour
func RoundDownHalfHour(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute()-t.Minute()%30, 0, 0, t.Location())
}

// RoundUpHalfHour moves t to the half hour when its minute is below 30 and
// to the next full hour otherwise. A time already on the full hour moves to
// its half hour.
func RoundUpHalfHour(t time.Time) time.Time {
	if t.Minute() < 30 {
		return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), 30, 0, 0, t.Location())
	}
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour()+1, 0, 0, 0, t.Location())
}
