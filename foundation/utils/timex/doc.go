// Package timex provides the calendar arithmetic of calword: working-day
// offsets under configurable weekend schedules, compact and spoken date
// formatting, half-hour rounding and the resolution of partial date/time
// components into instants and event ranges.
//
// All functions are pure. They take time.Time values and return new ones;
// no input is modified and no package state is shared, so every function
// is safe for concurrent use.
//
// Working days:
//
//	next, err := timex.AdvanceWorkingDays(friday, 1, timex.WorkingDaySchedule{})
//	// next is the following Monday
//
//	prev, err := timex.SubtractWorkDays(date, 30, false, false)
//
// Whole days are added as 24-hour steps so the time of day is kept.
// A day count of zero returns the date unchanged.
//
// Formatting:
//
//	timex.FormatYearMonth(t)          // 2023-11
//	timex.FormatTimestamp(t, true)    // 20230627033000000
//	timex.FormatSpoken(t, now, -5)    // Friday, November 17th at 3:05 PM
//
// Errors are *error.Error values of the foundation error package with code
// CodeInvalidArgument.
package timex
