package logger

import (
	"bytes"
	"os"
	"testing"
	"time"
)

// fixedClock pins timestamps and restores global state after the test.
func fixedClock(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetOutput(&buf)
	now = func() time.Time { return time.Date(2024, 3, 9, 18, 30, 5, 0, time.UTC) }
	t.Cleanup(func() {
		SetVerbose(false)
		SetOutput(os.Stderr)
		now = time.Now
	})
	return &buf
}

func TestSetVerbose(t *testing.T) {
	defer SetVerbose(false)

	SetVerbose(false)
	if IsVerbose() {
		t.Error("expected verbose to be false initially")
	}

	SetVerbose(true)
	if !IsVerbose() {
		t.Error("expected verbose to be true after SetVerbose(true)")
	}

	SetVerbose(false)
	if IsVerbose() {
		t.Error("expected verbose to be false after SetVerbose(false)")
	}
}

func TestDebug_WhenVerbose(t *testing.T) {
	buf := fixedClock(t)
	SetVerbose(true)

	Debug("test message %s", "arg")

	if got := buf.String(); got != "2024-03-09 18:30:05 - DEBUG - test message arg\n" {
		t.Errorf("unexpected output: %q", got)
	}
}

func TestDebug_WhenNotVerbose(t *testing.T) {
	buf := fixedClock(t)
	SetVerbose(false)

	Debug("test message")
	Info("info message")
	Section("section")

	if buf.Len() > 0 {
		t.Errorf("expected no output when verbose is disabled, got %q", buf.String())
	}
}

func TestSection(t *testing.T) {
	buf := fixedClock(t)
	SetVerbose(true)

	Section("Test Section")

	if got := buf.String(); got != "\n=== Test Section ===\n" {
		t.Errorf("unexpected section output: %q", got)
	}
}

func TestInfo(t *testing.T) {
	buf := fixedClock(t)
	SetVerbose(true)

	Info("Found %d households", 42)

	if got := buf.String(); got != "2024-03-09 18:30:05 - INFO - Found 42 households\n" {
		t.Errorf("unexpected info output: %q", got)
	}
}

func TestWarn_AlwaysPrinted(t *testing.T) {
	buf := fixedClock(t)
	SetVerbose(false)

	Warn("warning message")

	if got := buf.String(); got != "2024-03-09 18:30:05 - WARNING - warning message\n" {
		t.Errorf("unexpected warn output: %q", got)
	}
}

func TestError_AlwaysPrinted(t *testing.T) {
	buf := fixedClock(t)
	SetVerbose(false)

	Error("row %d failed", 3)

	if got := buf.String(); got != "2024-03-09 18:30:05 - ERROR - row 3 failed\n" {
		t.Errorf("unexpected error output: %q", got)
	}
}

func TestConcurrentAccess(t *testing.T) {
	_ = fixedClock(t)

	done := make(chan bool)
	for i := 0; i < 10; i++ {
		go func() {
			SetVerbose(true)
			Debug("concurrent %d", i)
			Warn("concurrent %d", i)
			IsVerbose()
			SetVerbose(false)
			done <- true
		}()
	}

	for i := 0; i < 10; i++ {
		<-done
	}
}
