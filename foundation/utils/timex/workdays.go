// File: workdays.go
// Title: Working-Day Offsets
// Description: Moves a date forward or backward by a number of working days
//              under a schedule that may count Saturday and/or Sunday as working
//              days. Closed-form arithmetic, no day-by-day iteration.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package timex

import (
	"time"

	mdwerrors "github.com/msto63/calword/foundation/core/errors"
)

// WorkingDaySchedule selects which weekend days count as working days.
// The zero value is the Monday to Friday week.
type WorkingDaySchedule struct {
	IncludeSaturday bool `json:"include_saturday" toml:"include_saturday"`
	IncludeSunday   bool `json:"include_sunday" toml:"include_sunday"`
}

// DefaultWorkingDaySchedule returns the Monday to Friday schedule
func DefaultWorkingDaySchedule() WorkingDaySchedule {
	return WorkingDaySchedule{}
}

// WorkingDaysPerWeek returns 5, 6 or 7
func (s WorkingDaySchedule) WorkingDaysPerWeek() int {
	return 7 - s.NonWorkingDaysPerWeek()
}

// NonWorkingDaysPerWeek returns 2, 1 or 0
func (s WorkingDaySchedule) NonWorkingDaysPerWeek() int {
	n := 2
	if s.IncludeSaturday {
		n--
	}
	if s.IncludeSunday {
		n--
	}
	return n
}

// IsWorkingDay reports whether t falls on a working day in t's location
func (s WorkingDaySchedule) IsWorkingDay(t time.Time) bool {
	switch WeekdayOf(t) {
	case Saturday:
		return s.IncludeSaturday
	case Sunday:
		return s.IncludeSunday
	default:
		return true
	}
}

func (s WorkingDaySchedule) isFiveDayWeek() bool {
	return !s.IncludeSaturday && !s.IncludeSunday
}

// String returns "mon-fri", "mon-sat", "sun-fri" or "all-week"
func (s WorkingDaySchedule) String() string {
	switch {
	case s.IncludeSaturday && s.IncludeSunday:
		return "all-week"
	case s.IncludeSaturday:
		return "mon-sat"
	case s.IncludeSunday:
		return "sun-fri"
	default:
		return "mon-fri"
	}
}

// AdvanceWorkingDays returns date moved forward by days working days.
//
// The result keeps the time of day; whole days are added as 24-hour steps.
// days == 0 returns date unchanged. For a date that is itself a working day
// the result is a working day and RetreatWorkingDays undoes the move. From a
// non-working start the arithmetic is applied as is and is not guaranteed to
// be reversible.
//
// A zero date or a negative day count fails with an InvalidArgument error.
func AdvanceWorkingDays(date time.Time, days int, schedule WorkingDaySchedule) (time.Time, error) {
	if err := validateOffset("AdvanceWorkingDays", date, days); err != nil {
		return time.Time{}, err
	}
	if days == 0 {
		return date, nil
	}

	start := int(WeekdayOf(date))
	modifier := 0

	var offset int
	if !schedule.IncludeSaturday && schedule.IncludeSunday {
		offset = start
	} else {
		offset = start - 1
	}
	// a Saturday start has no working days left in its own week
	if start == int(Saturday) && schedule.isFiveDayWeek() {
		offset -= 6
		modifier = 1
	}

	return shift(date, days, offset, modifier, schedule), nil
}

// RetreatWorkingDays returns date moved backward by days working days.
// It mirrors AdvanceWorkingDays, including validation and the zero-day rule.
func RetreatWorkingDays(date time.Time, days int, schedule WorkingDaySchedule) (time.Time, error) {
	if err := validateOffset("RetreatWorkingDays", date, days); err != nil {
		return time.Time{}, err
	}
	if days == 0 {
		return date, nil
	}

	start := int(WeekdayOf(date))
	modifier := 0

	var offset int
	if schedule.IncludeSaturday && !schedule.IncludeSunday {
		offset = start - 6
	} else {
		offset = start - 5
	}
	// a Sunday start has no working days left before it in its own week
	if start == int(Sunday) && schedule.isFiveDayWeek() {
		offset++
		modifier = 1
	}

	return shift(date, -days, offset, modifier, schedule), nil
}

// shift applies the offset formula. signedDays + offset may be negative; Go's
// integer division truncates toward zero, which the formula requires.
func shift(date time.Time, signedDays, offset, modifier int, schedule WorkingDaySchedule) time.Time {
	skipped := (signedDays + offset) / schedule.WorkingDaysPerWeek() * schedule.NonWorkingDaysPerWeek()
	calendarDays := skipped + signedDays + modifier
	return date.Add(time.Duration(calendarDays) * Day)
}

func validateOffset(operation string, date time.Time, days int) error {
	if date.IsZero() {
		return mdwerrors.InvalidArgument(mdwerrors.ModuleTimex, operation, "date is not a valid calendar date")
	}
	if days < 0 {
		return mdwerrors.InvalidArgument(mdwerrors.ModuleTimex, operation, "day count must be a non-negative integer").
			WithDetail("days", days)
	}
	return nil
}

// AddWorkDays is AdvanceWorkingDays with the schedule given as flags
func AddWorkDays(date time.Time, days int, includeSaturday, includeSunday bool) (time.Time, error) {
	return AdvanceWorkingDays(date, days, WorkingDaySchedule{IncludeSaturday: includeSaturday, IncludeSunday: includeSunday})
}

// SubtractWorkDays is RetreatWorkingDays with the schedule given as flags
func SubtractWorkDays(date time.Time, days int, includeSaturday, includeSunday bool) (time.Time, error) {
	return RetreatWorkingDays(date, days, WorkingDaySchedule{IncludeSaturday: includeSaturday, IncludeSunday: includeSunday})
}
