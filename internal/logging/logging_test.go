package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/thoreinstein/defcheck/internal/errors"
)

func TestNew_Formats(t *testing.T) {
	tests := []struct {
		name     string
		format   Format
		wantJSON bool
	}{
		{"json", FormatJSON, true},
		{"text", FormatText, false},
		{"unknown falls back to text", Format("xml"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := New(Config{Level: slog.LevelInfo, Format: tt.format, Output: &buf})
			logger.Info("validated file", "path", "user.yaml")

			output := buf.String()
			var parsed map[string]any
			isJSON := json.Unmarshal([]byte(output), &parsed) == nil
			if isJSON != tt.wantJSON {
				t.Fatalf("JSON output = %v, want %v: %s", isJSON, tt.wantJSON, output)
			}
			if tt.wantJSON {
				if parsed["msg"] != "validated file" || parsed["path"] != "user.yaml" {
					t.Errorf("unexpected JSON record: %v", parsed)
				}
				return
			}
			for _, want := range []string{"INFO", "validated file", "path=user.yaml"} {
				if !strings.Contains(output, want) {
					t.Errorf("output missing %q: %s", want, output)
				}
			}
		})
	}
}

func TestNew_File(t *testing.T) {
	var console, file bytes.Buffer
	logger := New(Config{
		Level:  slog.LevelDebug,
		Format: FormatText,
		Output: &console,
		File:   &file,
	})

	logger.Debug("discovered definition files", "count", 3)

	if !strings.Contains(console.String(), "count=3") {
		t.Errorf("console missing record: %q", console.String())
	}

	var parsed map[string]any
	if err := json.Unmarshal(file.Bytes(), &parsed); err != nil {
		t.Fatalf("file output is not JSON: %v\n%s", err, file.String())
	}
	if parsed["count"] != float64(3) {
		t.Errorf("file record count = %v, want 3", parsed["count"])
	}
}

func TestNew_LevelFiltering(t *testing.T) {
	tests := []struct {
		name        string
		configLevel slog.Level
		logLevel    slog.Level
		want        bool
	}{
		{"info at info", slog.LevelInfo, slog.LevelInfo, true},
		{"debug at info", slog.LevelInfo, slog.LevelDebug, false},
		{"error at warn", slog.LevelWarn, slog.LevelError, true},
		{"info at warn", slog.LevelWarn, slog.LevelInfo, false},
		{"trace at debug", slog.LevelDebug, LevelTrace, false},
		{"trace at trace", LevelTrace, LevelTrace, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := New(Config{Level: tt.configLevel, Format: FormatText, Output: &buf})
			logger.Log(t.Context(), tt.logLevel, "message")

			if got := buf.Len() > 0; got != tt.want {
				t.Errorf("output = %v, want %v: %q", got, tt.want, buf.String())
			}
		})
	}
}

func TestNew_DefaultsToStderr(t *testing.T) {
	if New(Config{}) == nil {
		t.Fatal("expected non-nil logger")
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"text", FormatText, false},
		{"JSON", FormatJSON, false},
		{"logfmt", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFormat(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, errors.ErrUnsupportedFormat) {
				t.Errorf("error %v should wrap ErrUnsupportedFormat", err)
			}
			if got != tt.want {
				t.Errorf("ParseFormat(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestForTest(t *testing.T) {
	logger := ForTest(t)
	if !logger.Enabled(t.Context(), LevelTrace) {
		t.Error("ForTest logger should be enabled at LevelTrace")
	}
	logger.Log(t.Context(), LevelTrace, "trace from test logger", "test", t.Name())
}

func TestTestWriter_ReturnsFullLength(t *testing.T) {
	tw := &testWriter{t: t}
	for _, in := range []string{"with newline\n", "without", ""} {
		n, err := tw.Write([]byte(in))
		if err != nil {
			t.Fatalf("Write(%q) error: %v", in, err)
		}
		if n != len(in) {
			t.Errorf("Write(%q) = %d, want %d", in, n, len(in))
		}
	}
}

func TestLevelFromVerbosity(t *testing.T) {
	tests := []struct {
		verbosity int
		want      slog.Level
	}{
		{-1, slog.LevelWarn},
		{0, slog.LevelWarn},
		{1, slog.LevelInfo},
		{2, slog.LevelDebug},
		{3, LevelTrace},
		{4, LevelTrace},
	}

	for _, tt := range tests {
		if got := LevelFromVerbosity(tt.verbosity); got != tt.want {
			t.Errorf("LevelFromVerbosity(%d) = %v, want %v", tt.verbosity, got, tt.want)
		}
	}
}
