// File: logger_test.go
// Title: Logger Tests
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19

package log

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	mdwerror "github.com/msto63/calword/foundation/core/error"
)

func newBufferLogger(format Format) (*Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	return NewWithConfig(Config{Level: LevelDebug, Format: format, Output: buf}), buf
}

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]interface{} {
	t.Helper()
	var out []map[string]interface{}
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var m map[string]interface{}
		if err := json.Unmarshal([]byte(line), &m); err != nil {
			t.Fatalf("invalid JSON line %q: %v", line, err)
		}
		out = append(out, m)
	}
	return out
}

func TestLevelFiltering(t *testing.T) {
	logger, buf := newBufferLogger(FormatJSON)
	logger = logger.WithLevel(LevelWarn)

	logger.Debug("hidden")
	logger.Info("hidden")
	logger.Warn("shown")
	logger.Audit("always")

	lines := decodeLines(t, buf)
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2: %s", len(lines), buf.String())
	}
	if lines[0]["message"] != "shown" || lines[1]["level"] != "audit" {
		t.Errorf("unexpected entries: %v", lines)
	}
}

func TestDerivedLoggersAreIndependent(t *testing.T) {
	base, buf := newBufferLogger(FormatJSON)
	child := base.WithName("journal").WithField("path", "/tmp/j.db").WithRequestID("req-7")

	base.Info("base")
	child.Info("child", Field("rows", 3))

	lines := decodeLines(t, buf)
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if _, ok := lines[0]["path"]; ok {
		t.Error("base logger must not inherit child fields")
	}
	child0 := lines[1]
	if child0["logger"] != "journal" || child0["path"] != "/tmp/j.db" || child0["request_id"] != "req-7" {
		t.Errorf("child entry = %v", child0)
	}
	if child0["rows"] != float64(3) {
		t.Errorf("rows = %v, want 3", child0["rows"])
	}
}

func TestLogErrorSeverityLevels(t *testing.T) {
	testCases := []struct {
		name  string
		err   error
		level string
	}{
		{"low", mdwerror.New("bad").WithCode(mdwerror.CodeInvalidArgument), "info"},
		{"medium", mdwerror.New("odd"), "warn"},
		{"high", mdwerror.New("db").WithCode(mdwerror.CodeDatabaseError), "error"},
		{"plain", errors.New("plain"), "error"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			logger, buf := newBufferLogger(FormatJSON)
			logger.LogError(tc.err)

			lines := decodeLines(t, buf)
			if len(lines) != 1 {
				t.Fatalf("got %d lines, want 1", len(lines))
			}
			if lines[0]["level"] != tc.level {
				t.Errorf("level = %v, want %v", lines[0]["level"], tc.level)
			}
		})
	}
}

func TestLogErrorNil(t *testing.T) {
	logger, buf := newBufferLogger(FormatJSON)
	logger.LogError(nil)
	if buf.Len() != 0 {
		t.Errorf("LogError(nil) wrote %q", buf.String())
	}
}

func TestTextFormat(t *testing.T) {
	logger, buf := newBufferLogger(FormatText)
	logger.WithName("cli").Info("computed", Fields{"b": 2, "a": 1})

	line := buf.String()
	for _, part := range []string{"[INF]", "{cli}", "computed", "[a=1 b=2]"} {
		if !strings.Contains(line, part) {
			t.Errorf("line %q missing %q", line, part)
		}
	}
}

func TestLogfmtFormat(t *testing.T) {
	logger, buf := newBufferLogger(FormatLogfmt)
	logger.Warn("slow query", Field("table", "journal"))

	line := buf.String()
	if !strings.Contains(line, `level=warn`) || !strings.Contains(line, `table="journal"`) {
		t.Errorf("line = %q", line)
	}
}

func TestConsoleFormatColors(t *testing.T) {
	logger, buf := newBufferLogger(FormatConsole)
	logger.Error("boom")
	if !strings.HasPrefix(buf.String(), LevelError.Color()) {
		t.Errorf("console line not colored: %q", buf.String())
	}
}

func TestCaller(t *testing.T) {
	logger, buf := newBufferLogger(FormatJSON)
	logger.WithCaller().Info("here")

	lines := decodeLines(t, buf)
	caller, _ := lines[0]["caller"].(string)
	if !strings.HasPrefix(caller, "logger_test.go:") {
		t.Errorf("caller = %q, want logger_test.go:<line>", caller)
	}
}

func TestTimer(t *testing.T) {
	logger, buf := newBufferLogger(FormatJSON)

	timer := logger.StartTimer("prune").WithField("rows", 4)
	timer.Stop()
	timer.Stop()

	failing := logger.StartTimer("migrate")
	failing.StopWithError(errors.New("locked"))

	cancelled := logger.StartTimer("noop")
	cancelled.Cancel()
	if cancelled.IsRunning() {
		t.Error("IsRunning() after Cancel() = true")
	}
	cancelled.Stop()

	lines := decodeLines(t, buf)
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2: %s", len(lines), buf.String())
	}
	if lines[0]["message"] != "prune completed" || lines[0]["rows"] != float64(4) {
		t.Errorf("completion entry = %v", lines[0])
	}
	if lines[1]["message"] != "migrate failed" || lines[1]["error"] != "locked" || lines[1]["level"] != "error" {
		t.Errorf("failure entry = %v", lines[1])
	}
}

func TestParseLevelAndFormat(t *testing.T) {
	levels := map[string]Level{
		"trace": LevelTrace, "DBG": LevelDebug, " info ": LevelInfo,
		"warning": LevelWarn, "err": LevelError, "fatal": LevelFatal, "audit": LevelAudit,
	}
	for in, want := range levels {
		got, err := ParseLevel(in)
		if err != nil || got != want {
			t.Errorf("ParseLevel(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Error("ParseLevel(loud) should fail")
	}

	formats := map[string]Format{"json": FormatJSON, "TEXT": FormatText, "console": FormatConsole, "logfmt": FormatLogfmt}
	for in, want := range formats {
		got, err := ParseFormat(in)
		if err != nil || got != want {
			t.Errorf("ParseFormat(%q) = %v, %v; want %v", in, got, err, want)
		}
		if strings.ToLower(in) != got.String() {
			t.Errorf("Format.String() = %q", got.String())
		}
	}
	if _, err := ParseFormat("xml"); err == nil {
		t.Error("ParseFormat(xml) should fail")
	}
}

func TestLevelStrings(t *testing.T) {
	if LevelWarn.String() != "warn" || LevelWarn.ShortString() != "WRN" {
		t.Errorf("LevelWarn = %q/%q", LevelWarn.String(), LevelWarn.ShortString())
	}
	if Level(99).String() != "unknown" || Level(99).ShortString() != "???" {
		t.Error("out-of-range level should render as unknown")
	}
}

func TestDefaultLogger(t *testing.T) {
	prev := GetDefault()
	defer SetDefault(prev)

	logger, buf := newBufferLogger(FormatJSON)
	SetDefault(logger)
	Info("global")

	if !strings.Contains(buf.String(), `"message":"global"`) {
		t.Errorf("default logger output = %q", buf.String())
	}
}
