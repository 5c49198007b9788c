package commands

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/thoreinstein/defcheck/internal/errors"
)

func TestRoot_QuietAndVerbose(t *testing.T) {
	_, err := executeCommand(t, "rules", "-q", "-v")
	if err == nil {
		t.Fatal("expected error for --quiet with --verbose")
	}
	if got := errors.ExitCode(err); got != errors.ExitUser {
		t.Errorf("ExitCode() = %d, want %d", got, errors.ExitUser)
	}
}

func TestRoot_InvalidConfig(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "config.yaml", "version: 1\nformat: xml\n")

	_, err := executeCommand(t, "rules", "--config", path)
	if err == nil {
		t.Fatal("expected config error")
	}

	var exitErr *errors.ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("expected *ExitError, got %T", err)
	}
	if exitErr.Suggestion != "Run: defcheck config" {
		t.Errorf("Suggestion = %q", exitErr.Suggestion)
	}
	if !strings.Contains(err.Error(), "format") {
		t.Errorf("error %q should name the field", err)
	}
}

func TestRoot_VersionIgnoresConfigErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.yaml")
	if _, err := executeCommand(t, "version", "--config", path); err != nil {
		t.Fatalf("version should not require a valid config: %v", err)
	}
}

func TestRoot_LogFile(t *testing.T) {
	dir := t.TempDir()
	def := writeFile(t, dir, "user.yaml", validDefinition)
	logPath := filepath.Join(dir, "defcheck.log")

	if _, err := executeCommand(t, "validate", def, "-vv", "--log-file", logPath); err != nil {
		t.Fatalf("validate failed: %v", err)
	}

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}
	if !strings.Contains(string(data), `"msg":"validated file"`) {
		t.Errorf("log file missing debug entry: %s", data)
	}
}

func TestRoot_BadLogFormat(t *testing.T) {
	_, err := executeCommand(t, "rules", "--log-format", "logfmt")
	if !errors.Is(err, errors.ErrUnsupportedFormat) {
		t.Errorf("expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestCloseLogFile(t *testing.T) {
	dir := t.TempDir()
	def := writeFile(t, dir, "user.yaml", validDefinition)
	logPath := filepath.Join(dir, "defcheck.log")

	if _, err := executeCommand(t, "validate", def, "--log-file", logPath); err != nil {
		t.Fatalf("validate failed: %v", err)
	}
	if logFileHandle == nil {
		t.Fatal("log file should be open after setup")
	}
	f := logFileHandle

	if err := closeLogFile(); err != nil {
		t.Fatalf("closeLogFile() error: %v", err)
	}
	if logFileHandle != nil {
		t.Error("closeLogFile() should clear the handle")
	}
	if _, err := f.WriteString("x"); err == nil {
		t.Error("log file should be closed")
	}
	if err := closeLogFile(); err != nil {
		t.Errorf("second closeLogFile() error: %v", err)
	}
}
