// File: workdays_test.go
// Title: Working-Day Offset Tests
// Description: Reference dates, round-trip and landing properties, pinned
//              behavior for non-working starts and argument validation.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19

package timex

import (
	"testing"
	"time"

	mdwerrors "github.com/msto63/calword/foundation/core/errors"
)

var allSchedules = []WorkingDaySchedule{
	{},
	{IncludeSaturday: true},
	{IncludeSunday: true},
	{IncludeSaturday: true, IncludeSunday: true},
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestRetreatWorkingDays(t *testing.T) {
	testCases := []struct {
		name     string
		start    time.Time
		days     int
		schedule WorkingDaySchedule
		want     time.Time
	}{
		{"two days within week", date(2023, 11, 17), 2, WorkingDaySchedule{}, date(2023, 11, 15)},
		{"across weekend", date(2023, 11, 22), 3, WorkingDaySchedule{}, date(2023, 11, 17)},
		{"saturday working", date(2023, 11, 21), 3, WorkingDaySchedule{IncludeSaturday: true}, date(2023, 11, 17)},
		{"whole week working", date(2023, 11, 20), 3, WorkingDaySchedule{IncludeSaturday: true, IncludeSunday: true}, date(2023, 11, 17)},
		{"sunday working", date(2023, 11, 21), 3, WorkingDaySchedule{IncludeSunday: true}, date(2023, 11, 17)},
		{"thirty days", date(2023, 12, 29), 30, WorkingDaySchedule{}, date(2023, 11, 17)},
		{"thirty days saturday working", date(2023, 12, 22), 30, WorkingDaySchedule{IncludeSaturday: true}, date(2023, 11, 17)},
		{"thirty days whole week", date(2023, 12, 17), 30, WorkingDaySchedule{IncludeSaturday: true, IncludeSunday: true}, date(2023, 11, 17)},
		{"monday to friday", date(2023, 11, 20), 1, WorkingDaySchedule{}, date(2023, 11, 17)},
		{"tuesday to monday", date(2023, 11, 21), 1, WorkingDaySchedule{}, date(2023, 11, 20)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := RetreatWorkingDays(tc.start, tc.days, tc.schedule)
			if err != nil {
				t.Fatalf("RetreatWorkingDays() error = %v", err)
			}
			if !got.Equal(tc.want) {
				t.Errorf("RetreatWorkingDays(%s, %d, %s) = %s, want %s",
					FormatDate(tc.start), tc.days, tc.schedule, FormatDate(got), FormatDate(tc.want))
			}
		})
	}
}

func TestAdvanceWorkingDays(t *testing.T) {
	testCases := []struct {
		name     string
		start    time.Time
		days     int
		schedule WorkingDaySchedule
		want     time.Time
	}{
		{"two days within week", date(2023, 11, 15), 2, WorkingDaySchedule{}, date(2023, 11, 17)},
		{"across weekend", date(2023, 11, 17), 3, WorkingDaySchedule{}, date(2023, 11, 22)},
		{"friday to monday", date(2023, 11, 17), 1, WorkingDaySchedule{}, date(2023, 11, 20)},
		{"friday to saturday", date(2023, 11, 17), 1, WorkingDaySchedule{IncludeSaturday: true}, date(2023, 11, 18)},
		{"friday to sunday", date(2023, 11, 17), 2, WorkingDaySchedule{IncludeSaturday: true, IncludeSunday: true}, date(2023, 11, 19)},
		{"thirty days", date(2023, 11, 17), 30, WorkingDaySchedule{}, date(2023, 12, 29)},
		{"thirty days saturday working", date(2023, 11, 17), 30, WorkingDaySchedule{IncludeSaturday: true}, date(2023, 12, 22)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := AdvanceWorkingDays(tc.start, tc.days, tc.schedule)
			if err != nil {
				t.Fatalf("AdvanceWorkingDays() error = %v", err)
			}
			if !got.Equal(tc.want) {
				t.Errorf("AdvanceWorkingDays(%s, %d, %s) = %s, want %s",
					FormatDate(tc.start), tc.days, tc.schedule, FormatDate(got), FormatDate(tc.want))
			}
		})
	}
}

func TestWorkingDaysRoundTrip(t *testing.T) {
	for _, schedule := range allSchedules {
		for offset := 0; offset < 7; offset++ {
			start := date(2023, 11, 12).AddDate(0, 0, offset)
			if !schedule.IsWorkingDay(start) {
				continue
			}
			for days := 1; days <= 60; days++ {
				forward, err := AdvanceWorkingDays(start, days, schedule)
				if err != nil {
					t.Fatalf("AdvanceWorkingDays() error = %v", err)
				}
				if !schedule.IsWorkingDay(forward) {
					t.Errorf("%s: advance %s by %d landed on %s", schedule, FormatDate(start), days, forward.Weekday())
				}
				back, err := RetreatWorkingDays(forward, days, schedule)
				if err != nil {
					t.Fatalf("RetreatWorkingDays() error = %v", err)
				}
				if !back.Equal(start) {
					t.Errorf("%s: %s +%d -%d = %s", schedule, FormatDate(start), days, days, FormatDate(back))
				}

				backward, err := RetreatWorkingDays(start, days, schedule)
				if err != nil {
					t.Fatalf("RetreatWorkingDays() error = %v", err)
				}
				if !schedule.IsWorkingDay(backward) {
					t.Errorf("%s: retreat %s by %d landed on %s", schedule, FormatDate(start), days, backward.Weekday())
				}
			}
		}
	}
}

func TestWorkingDaysZeroIsIdentity(t *testing.T) {
	for _, schedule := range allSchedules {
		for offset := 0; offset < 7; offset++ {
			start := time.Date(2023, 11, 12+offset, 9, 45, 0, 0, time.UTC)
			if got, _ := AdvanceWorkingDays(start, 0, schedule); !got.Equal(start) {
				t.Errorf("%s: AdvanceWorkingDays(%s, 0) = %s", schedule, start, got)
			}
			if got, _ := RetreatWorkingDays(start, 0, schedule); !got.Equal(start) {
				t.Errorf("%s: RetreatWorkingDays(%s, 0) = %s", schedule, start, got)
			}
		}
	}
}

// Starts on a non-working day follow the offset arithmetic as is.
func TestWorkingDaysNonWorkingStart(t *testing.T) {
	sunday := date(2023, 11, 12)
	saturday := date(2023, 11, 18)

	testCases := []struct {
		name        string
		start       time.Time
		schedule    WorkingDaySchedule
		days        int
		wantAdvance time.Time
		wantRetreat time.Time
	}{
		{"five day sunday 1", sunday, WorkingDaySchedule{}, 1, date(2023, 11, 13), date(2023, 11, 10)},
		{"five day sunday 2", sunday, WorkingDaySchedule{}, 2, date(2023, 11, 14), date(2023, 11, 9)},
		{"five day sunday 5", sunday, WorkingDaySchedule{}, 5, date(2023, 11, 17), date(2023, 11, 6)},
		{"five day saturday 1", saturday, WorkingDaySchedule{}, 1, date(2023, 11, 20), date(2023, 11, 17)},
		{"five day saturday 2", saturday, WorkingDaySchedule{}, 2, date(2023, 11, 21), date(2023, 11, 16)},
		{"five day saturday 5", saturday, WorkingDaySchedule{}, 5, date(2023, 11, 24), date(2023, 11, 13)},
		{"six day sunday 1", sunday, WorkingDaySchedule{IncludeSaturday: true}, 1, date(2023, 11, 13), date(2023, 11, 10)},
		{"six day sunday 2", sunday, WorkingDaySchedule{IncludeSaturday: true}, 2, date(2023, 11, 14), date(2023, 11, 9)},
		{"six day sunday 5", sunday, WorkingDaySchedule{IncludeSaturday: true}, 5, date(2023, 11, 17), date(2023, 11, 6)},
		{"sunday working saturday 1", saturday, WorkingDaySchedule{IncludeSunday: true}, 1, date(2023, 11, 20), date(2023, 11, 17)},
		{"sunday working saturday 2", saturday, WorkingDaySchedule{IncludeSunday: true}, 2, date(2023, 11, 21), date(2023, 11, 16)},
		{"sunday working saturday 5", saturday, WorkingDaySchedule{IncludeSunday: true}, 5, date(2023, 11, 24), date(2023, 11, 13)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			forward, err := AdvanceWorkingDays(tc.start, tc.days, tc.schedule)
			if err != nil {
				t.Fatalf("AdvanceWorkingDays() error = %v", err)
			}
			if !forward.Equal(tc.wantAdvance) {
				t.Errorf("AdvanceWorkingDays() = %s, want %s", FormatDate(forward), FormatDate(tc.wantAdvance))
			}
			backward, err := RetreatWorkingDays(tc.start, tc.days, tc.schedule)
			if err != nil {
				t.Fatalf("RetreatWorkingDays() error = %v", err)
			}
			if !backward.Equal(tc.wantRetreat) {
				t.Errorf("RetreatWorkingDays() = %s, want %s", FormatDate(backward), FormatDate(tc.wantRetreat))
			}
		})
	}
}

// Retreating from Tuesday puts a negative dividend into the formula;
// floor division would land on the Saturday before.
func TestWorkingDaysTruncatingDivision(t *testing.T) {
	got, err := RetreatWorkingDays(date(2023, 11, 21), 1, WorkingDaySchedule{})
	if err != nil {
		t.Fatalf("RetreatWorkingDays() error = %v", err)
	}
	if want := date(2023, 11, 20); !got.Equal(want) {
		t.Errorf("RetreatWorkingDays() = %s, want %s", FormatDate(got), FormatDate(want))
	}

	got, err = RetreatWorkingDays(date(2023, 11, 22), 2, WorkingDaySchedule{})
	if err != nil {
		t.Fatalf("RetreatWorkingDays() error = %v", err)
	}
	if want := date(2023, 11, 20); !got.Equal(want) {
		t.Errorf("RetreatWorkingDays() = %s, want %s", FormatDate(got), FormatDate(want))
	}
}

func TestWorkingDaysKeepTimeOfDay(t *testing.T) {
	start := time.Date(2023, 11, 17, 15, 30, 12, 500, time.UTC)
	got, err := SubtractWorkDays(start, 2, false, false)
	if err != nil {
		t.Fatalf("SubtractWorkDays() error = %v", err)
	}
	want := time.Date(2023, 11, 15, 15, 30, 12, 500, time.UTC)
	if !got.Equal(want) {
		t.Errorf("SubtractWorkDays() = %s, want %s", got, want)
	}
	if start.Day() != 17 {
		t.Error("input date was modified")
	}

	got, err = AddWorkDays(start, 1, false, false)
	if err != nil {
		t.Fatalf("AddWorkDays() error = %v", err)
	}
	want = time.Date(2023, 11, 20, 15, 30, 12, 500, time.UTC)
	if !got.Equal(want) {
		t.Errorf("AddWorkDays() = %s, want %s", got, want)
	}
}

func TestWorkingDaysValidation(t *testing.T) {
	testCases := []struct {
		name string
		date time.Time
		days int
	}{
		{"zero date", time.Time{}, 1},
		{"negative days", date(2023, 11, 17), -1},
		{"zero date without days", time.Time{}, 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := AdvanceWorkingDays(tc.date, tc.days, WorkingDaySchedule{}); !mdwerrors.IsInvalidArgument(err) {
				t.Errorf("AdvanceWorkingDays() error = %v, want invalid argument", err)
			}
			if _, err := RetreatWorkingDays(tc.date, tc.days, WorkingDaySchedule{}); !mdwerrors.IsInvalidArgument(err) {
				t.Errorf("RetreatWorkingDays() error = %v, want invalid argument", err)
			}
		})
	}

	_, err := AdvanceWorkingDays(time.Time{}, 1, WorkingDaySchedule{})
	if got := mdwerrors.ExtractOperation(err); got != "AdvanceWorkingDays" {
		t.Errorf("operation = %q, want AdvanceWorkingDays", got)
	}
}

func TestWorkingDaySchedule(t *testing.T) {
	testCases := []struct {
		schedule   WorkingDaySchedule
		working    int
		nonWorking int
		name       string
	}{
		{WorkingDaySchedule{}, 5, 2, "mon-fri"},
		{WorkingDaySchedule{IncludeSaturday: true}, 6, 1, "mon-sat"},
		{WorkingDaySchedule{IncludeSunday: true}, 6, 1, "sun-fri"},
		{WorkingDaySchedule{IncludeSaturday: true, IncludeSunday: true}, 7, 0, "all-week"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.schedule.WorkingDaysPerWeek(); got != tc.working {
				t.Errorf("WorkingDaysPerWeek() = %d, want %d", got, tc.working)
			}
			if got := tc.schedule.NonWorkingDaysPerWeek(); got != tc.nonWorking {
				t.Errorf("NonWorkingDaysPerWeek() = %d, want %d", got, tc.nonWorking)
			}
			if got := tc.schedule.String(); got != tc.name {
				t.Errorf("String() = %q, want %q", got, tc.name)
			}
		})
	}

	if DefaultWorkingDaySchedule() != (WorkingDaySchedule{}) {
		t.Error("default schedule is not monday to friday")
	}
	if (WorkingDaySchedule{}).IsWorkingDay(date(2023, 11, 18)) {
		t.Error("saturday counted as working day")
	}
	if !(WorkingDaySchedule{IncludeSunday: true}).IsWorkingDay(date(2023, 11, 19)) {
		t.Error("sunday not counted as working day")
	}
}

func BenchmarkAdvanceWorkingDays(b *testing.B) {
	start := date(2023, 11, 17)
	for i := 0; i < b.N; i++ {
		_, _ = AdvanceWorkingDays(start, i%250, WorkingDaySchedule{})
	}
}
