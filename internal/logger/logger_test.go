package logger

import (
	"bytes"
	"strings"
	"testing"
)

func TestLogger_Levels(t *testing.T) {
	var buf bytes.Buffer
	l := New(3) // debug level
	l.SetOutput(&buf)

	l.Error("e")
	l.Warn("w")
	l.Info("i")
	l.Verbose("v")
	l.Debug("d")

	output := buf.String()
	lines := strings.Split(strings.TrimSpace(output), "\n")
	if len(lines) != 5 {
		t.Fatalf("expected 5 lines, got %d:\n%s", len(lines), output)
	}

	wantPrefixes := []string{"[ERR]", "[WRN]", "[INF]", "[VRB]", "[DBG]"}
	for i, prefix := range wantPrefixes {
		if !strings.Contains(lines[i], " "+prefix+" ") {
			t.Errorf("line %d %q missing prefix %q", i, lines[i], prefix)
		}
	}
}

func TestLogger_QuietMode(t *testing.T) {
	var buf bytes.Buffer
	l := New(0)
	l.SetOutput(&buf)

	l.Info("should not appear")
	l.Verbose("should not appear")
	l.Debug("should not appear")
	l.Error("always appears")

	output := buf.String()
	lines := strings.Split(strings.TrimSpace(output), "\n")
	if len(lines) != 1 {
		t.Errorf("expected 1 line in quiet mode, got %d:\n%s", len(lines), output)
	}
	if lines[0] != "[ERR] always appears" {
		t.Errorf("line = %q, want %q", lines[0], "[ERR] always appears")
	}
}

func TestLogger_VerboseMode(t *testing.T) {
	var buf bytes.Buffer
	l := New(2)
	l.SetOutput(&buf)

	l.Verbose("key %s", "0a1b")
	l.Debug("hidden")

	if got := buf.String(); got != "[VRB] key 0a1b\n" {
		t.Errorf("output = %q, want %q", got, "[VRB] key 0a1b\n")
	}
}

func TestLogger_NormalMode(t *testing.T) {
	var buf bytes.Buffer
	l := New(1)
	l.SetOutput(&buf)

	l.Info("loaded")
	l.Warn("careful")
	l.Verbose("hidden")

	want := "[INF] loaded\n[WRN] careful\n"
	if got := buf.String(); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestNew_DebugEnablesTimestamps(t *testing.T) {
	var buf bytes.Buffer
	l := New(3)
	l.SetOutput(&buf)
	l.Info("stamped")

	out := buf.String()
	if strings.HasPrefix(out, "[INF]") || !strings.Contains(out, " [INF] stamped") {
		t.Errorf("output = %q, want timestamp before level", out)
	}

	if l := New(2); l.timestamps {
		t.Error("verbose level should not enable timestamps")
	}
}
