// File: format_test.go
// Title: Date Formatting Tests
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19

package timex

import (
	"testing"
	"time"
)

func TestCompactFormats(t *testing.T) {
	berlin := time.FixedZone("CET", 3600)

	testCases := []struct {
		name string
		got  string
		want string
	}{
		{"year month", FormatYearMonth(date(2023, 11, 15)), "2023-11"},
		{"year month october", FormatYearMonth(date(2023, 10, 2)), "2023-10"},
		{"date", FormatDate(date(2023, 11, 5)), "2023-11-05"},
		{"date converts to utc", FormatDate(time.Date(2023, 11, 5, 0, 30, 0, 0, berlin)), "2023-11-04"},
		{"timestamp", FormatTimestamp(date(2023, 11, 15), false), "20231115000000"},
		{"timestamp millis", FormatTimestamp(time.Date(2023, 6, 27, 3, 30, 0, 0, time.UTC), true), "20230627033000000"},
		{"timestamp millis value", FormatTimestamp(time.Date(2023, 6, 27, 3, 30, 0, 123456789, time.UTC), true), "20230627033000123"},
		{"iso", FormatISO(time.Date(2024, 3, 21, 7, 0, 0, 0, berlin)), "2024-03-21T06:00:00Z"},
		{"iso millis", FormatISOMillis(time.Date(2024, 3, 21, 7, 0, 0, 0, time.UTC)), "2024-03-21T07:00:00.000Z"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.got != tc.want {
				t.Errorf("got %q, want %q", tc.got, tc.want)
			}
		})
	}
}

func TestFormatSpoken(t *testing.T) {
	now := time.Date(2023, 11, 17, 12, 0, 0, 0, time.UTC)

	testCases := []struct {
		name   string
		t      time.Time
		offset int
		want   string
	}{
		{"today", time.Date(2023, 11, 17, 20, 5, 0, 0, time.UTC), DefaultSpokenOffsetHours, "today at 3:05 PM"},
		{"offset moves to previous day", time.Date(2023, 11, 17, 3, 0, 0, 0, time.UTC), DefaultSpokenOffsetHours, "Thursday, November 16th at 10:00 PM"},
		{"midnight hour", time.Date(2023, 11, 22, 5, 7, 0, 0, time.UTC), DefaultSpokenOffsetHours, "Wednesday, November 22nd at 12:07 AM"},
		{"first", time.Date(2023, 11, 1, 12, 0, 0, 0, time.UTC), 0, "Wednesday, November 1st at 12:00 PM"},
		{"eleventh", time.Date(2023, 11, 11, 9, 30, 0, 0, time.UTC), 0, "Saturday, November 11th at 9:30 AM"},
		{"twenty third", time.Date(2023, 11, 23, 18, 45, 0, 0, time.UTC), 0, "Thursday, November 23rd at 6:45 PM"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := FormatSpoken(tc.t, now, tc.offset); got != tc.want {
				t.Errorf("FormatSpoken() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestRoundHalfHour(t *testing.T) {
	at := func(h, m int) time.Time { return time.Date(2023, 11, 17, h, m, 21, 999, time.UTC) }

	down := []struct {
		in, want time.Time
	}{
		{at(0, 43), time.Date(2023, 11, 17, 0, 30, 0, 0, time.UTC)},
		{at(0, 57), time.Date(2023, 11, 17, 0, 30, 0, 0, time.UTC)},
		{at(0, 13), time.Date(2023, 11, 17, 0, 0, 0, 0, time.UTC)},
		{at(0, 17), time.Date(2023, 11, 17, 0, 0, 0, 0, time.UTC)},
		{at(0, 30), time.Date(2023, 11, 17, 0, 30, 0, 0, time.UTC)},
	}
	for _, tc := range down {
		if got := RoundDownHalfHour(tc.in); !got.Equal(tc.want) {
			t.Errorf("RoundDownHalfHour(%s) = %s, want %s", tc.in.Format(time.Kitchen), got, tc.want)
		}
	}

	up := []struct {
		in, want time.Time
	}{
		{at(0, 13), time.Date(2023, 11, 17, 0, 30, 0, 0, time.UTC)},
		{at(0, 0), time.Date(2023, 11, 17, 0, 30, 0, 0, time.UTC)},
		{at(0, 43), time.Date(2023, 11, 17, 1, 0, 0, 0, time.UTC)},
		{at(23, 45), time.Date(2023, 11, 18, 0, 0, 0, 0, time.UTC)},
	}
	for _, tc := range up {
		if got := RoundUpHalfHour(tc.in); !got.Equal(tc.want) {
			t.Errorf("RoundUpHalfHour(%s) = %s, want %s", tc.in.Format(time.Kitchen), got, tc.want)
		}
	}

	in := at(0, 43)
	_ = RoundDownHalfHour(in)
	if in.Minute() != 43 {
		t.Error("input was modified")
	}
}

func TestParse(t *testing.T) {
	want := time.Date(2023, 11, 17, 0, 0, 0, 0, time.UTC)
	for _, value := range []string{"2023-11-17", " 2023-11-17 ", "20231117", "2023-11-17T00:00:00", "2023-11-17 00:00:00", "2023-11-17T00:00:00Z"} {
		got, err := Parse(value)
		if err != nil {
			t.Errorf("Parse(%q) error = %v", value, err)
			continue
		}
		if !got.Equal(want) {
			t.Errorf("Parse(%q) = %s, want %s", value, got, want)
		}
	}

	if _, err := Parse("17.11.2023"); err == nil {
		t.Error("Parse() accepted unsupported layout")
	}
	if _, err := Parse("  "); err == nil {
		t.Error("Parse() accepted blank value")
	}
}
