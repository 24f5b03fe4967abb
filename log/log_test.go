package log

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  Level
	}{
		{input: "debug", want: LevelDebug},
		{input: "INFO", want: LevelInfo},
		{input: "Warn", want: LevelWarn},
		{input: "error", want: LevelError},
		{input: "bogus", want: DefaultLevel},
		{input: "", want: DefaultLevel},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseLevel(tt.input); got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input string
		want  Format
	}{
		{input: "json", want: FormatJSON},
		{input: " TEXT ", want: FormatText},
		{input: "yaml", want: DefaultFormat},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseFormat(tt.input); got != tt.want {
				t.Errorf("ParseFormat(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestLevelString(t *testing.T) {
	for level, want := range map[Level]string{
		LevelDebug: "debug",
		LevelInfo:  "info",
		LevelWarn:  "warn",
		LevelError: "error",
	} {
		if got := level.String(); got != want {
			t.Errorf("Level(%d).String() = %q, want %q", level, got, want)
		}
	}
}

func TestJSONOutput(t *testing.T) {
	var buf bytes.Buffer

	logger := Make(&buf, WithFormat(FormatJSON))
	logger.Info("converted exports", slog.Int("count", 3))

	var record map[string]any

	err := json.Unmarshal(buf.Bytes(), &record)
	if err != nil {
		t.Fatalf("output is not JSON: %v: %q", err, buf.String())
	}

	if got := record["msg"]; got != "converted exports" {
		t.Errorf("msg = %v, want %q", got, "converted exports")
	}

	if got := record["count"]; got != float64(3) {
		t.Errorf("count = %v, want 3", got)
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer

	logger := Make(&buf, WithFormat(FormatJSON), WithLevel(LevelWarn))

	logger.Debug("dropped")
	logger.Info("dropped")
	logger.Warn("kept")

	out := buf.String()
	if strings.Contains(out, "dropped") {
		t.Errorf("message below level was emitted: %q", out)
	}

	if !strings.Contains(out, "kept") {
		t.Errorf("message at level was not emitted: %q", out)
	}
}

func TestWrapOverrides(t *testing.T) {
	var buf bytes.Buffer

	logger := Make(&buf, WithLevel(LevelError))

	wrapped := logger.Wrap(WithLevel(LevelDebug))
	if got := wrapped.Level(); got != LevelDebug {
		t.Errorf("wrapped level = %v, want %v", got, LevelDebug)
	}

	// The original logger is unchanged.
	if got := logger.Level(); got != LevelError {
		t.Errorf("original level = %v, want %v", got, LevelError)
	}
}

func TestPrettyTextOutput(t *testing.T) {
	var buf bytes.Buffer

	logger := Make(&buf,
		WithFormat(FormatText),
		WithPretty(true),
		WithTimeLayout("none"),
	)
	logger.Warn("quoting value", slog.String("name", "PATH"))

	out := buf.String()

	for _, want := range []string{"WARN", "quoting value", "name", "PATH"} {
		if !strings.Contains(out, want) {
			t.Errorf("pretty output missing %q: %q", want, out)
		}
	}
}

func TestZeroValueLoggerIsSilent(t *testing.T) {
	var logger Logger

	// Must not panic.
	logger.Info("nothing to see")
	logger.Error("still nothing")
}

func TestWithAttrs(t *testing.T) {
	var buf bytes.Buffer

	logger := Make(&buf, WithFormat(FormatJSON)).
		With(slog.String("component", "plugin"))

	logger.Info("hello")

	if !strings.Contains(buf.String(), `"component":"plugin"`) {
		t.Errorf("attribute missing from output: %q", buf.String())
	}
}
