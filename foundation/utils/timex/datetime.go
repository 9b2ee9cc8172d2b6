// File: datetime.go
// Title: Structured Date/Time Resolution
// Description: Merges partial date and time components into complete instants
//              and event ranges. Components arrive as optional fields, e.g.
//              from a JSON request.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package timex

import (
	"fmt"
	"time"

	mdwerrors "github.com/msto63/calword/foundation/core/errors"
)

// DefaultEventLength is the length of an event resolved from a single point
const DefaultEventLength = 2 * time.Hour

// DefaultEventHour is the start hour of an event given only by its date
const DefaultEventHour = 7

// DateTimeParts holds optional date and time components. The date is present
// when Day is set, the time when Hours is set; missing minutes and seconds are
// zero.
type DateTimeParts struct {
	Year    *int `json:"year,omitempty"`
	Month   *int `json:"month,omitempty"`
	Day     *int `json:"day,omitempty"`
	Hours   *int `json:"hours,omitempty"`
	Minutes *int `json:"minutes,omitempty"`
	Seconds *int `json:"seconds,omitempty"`
}

// DateTimeInput is either a single point given by the embedded parts or a
// range given by StartDateTime and EndDateTime
type DateTimeInput struct {
	DateTimeParts
	StartDateTime *DateTimeParts `json:"startDateTime,omitempty"`
	EndDateTime   *DateTimeParts `json:"endDateTime,omitempty"`
}

// DateTimeRange is a resolved half-open interval [Start, End)
type DateTimeRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

func intPtr(v int) *int { return &v }

// DateParts returns parts holding only a date
func DateParts(year, month, day int) DateTimeParts {
	return DateTimeParts{Year: intPtr(year), Month: intPtr(month), Day: intPtr(day)}
}

// ClockParts returns parts holding only a time of day
func ClockParts(hours, minutes, seconds int) DateTimeParts {
	return DateTimeParts{Hours: intPtr(hours), Minutes: intPtr(minutes), Seconds: intPtr(seconds)}
}

// HasDate reports whether a date is present
func (p DateTimeParts) HasDate() bool { return p.Day != nil }

// HasTime reports whether a time of day is present
func (p DateTimeParts) HasTime() bool { return p.Hours != nil }

func valueOr(v *int, fallback int) int {
	if v == nil {
		return fallback
	}
	return *v
}

// resolve builds the instant in UTC. Without a date the date of now is used,
// without a time defaultHour:00:00.
func (p DateTimeParts) resolve(operation string, now time.Time, defaultHour int) (time.Time, error) {
	if !p.HasDate() && !p.HasTime() {
		return time.Time{}, mdwerrors.InvalidArgument(mdwerrors.ModuleTimex, operation,
			"date/time needs a day or an hour")
	}

	var year, month, day int
	if p.HasDate() {
		if p.Year == nil || p.Month == nil {
			return time.Time{}, mdwerrors.InvalidArgument(mdwerrors.ModuleTimex, operation,
				"a date needs year, month and day")
		}
		year, month, day = *p.Year, *p.Month, *p.Day
	} else {
		y, m, d := now.Date()
		year, month, day = y, int(m), d
	}

	hours, minutes, seconds := defaultHour, 0, 0
	if p.HasTime() {
		hours, minutes, seconds = *p.Hours, valueOr(p.Minutes, 0), valueOr(p.Seconds, 0)
	}

	t := time.Date(year, time.Month(month), day, hours, minutes, seconds, 0, time.UTC)
	if t.Year() != year || int(t.Month()) != month || t.Day() != day ||
		t.Hour() != hours || t.Minute() != minutes || t.Second() != seconds {
		return time.Time{}, mdwerrors.InvalidArgument(mdwerrors.ModuleTimex, operation,
			"date/time components are out of range").
			WithDetail("value", fmt.Sprintf("%04d-%02d-%02d %02d:%02d:%02d", year, month, day, hours, minutes, seconds))
	}
	return t, nil
}

// DateTimeString renders parts as "YYYY-MM-DD HH:MM:SS". A date without a
// time gets 00:00:00; a time without a date takes the date of now.
func DateTimeString(parts DateTimeParts, now time.Time) (string, error) {
	t, err := parts.resolve("DateTimeString", now, 0)
	if err != nil {
		return "", err
	}
	return t.Format(BusinessDateTime), nil
}

// ResolveDateTime turns input into an event range shifted by offsetHours.
//
// A range input resolves both ends, a missing time meaning midnight. A point
// input starts at the given instant, at DefaultEventHour when only a date is
// given, and lasts eventLength (DefaultEventLength when not positive).
func ResolveDateTime(input DateTimeInput, now time.Time, offsetHours int, eventLength time.Duration) (DateTimeRange, error) {
	const op = "ResolveDateTime"
	shift := time.Duration(offsetHours) * time.Hour

	if input.StartDateTime != nil {
		if input.EndDateTime == nil {
			return DateTimeRange{}, mdwerrors.InvalidArgument(mdwerrors.ModuleTimex, op,
				"a range needs both startDateTime and endDateTime")
		}
		start, err := input.StartDateTime.resolve(op, now, 0)
		if err != nil {
			return DateTimeRange{}, err
		}
		end, err := input.EndDateTime.resolve(op, now, 0)
		if err != nil {
			return DateTimeRange{}, err
		}
		if end.Before(start) {
			return DateTimeRange{}, mdwerrors.InvalidArgument(mdwerrors.ModuleTimex, op,
				"endDateTime is before startDateTime")
		}
		return DateTimeRange{Start: start.Add(shift), End: end.Add(shift)}, nil
	}

	start, err := input.DateTimeParts.resolve(op, now, DefaultEventHour)
	if err != nil {
		return DateTimeRange{}, err
	}
	if eventLength <= 0 {
		eventLength = DefaultEventLength
	}
	start = start.Add(shift)
	return DateTimeRange{Start: start, End: start.Add(eventLength)}, nil
}
