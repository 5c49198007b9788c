package commands

import (
	"strings"
	"testing"
)

func TestVersionCommand_OutputFormat(t *testing.T) {
	output, err := executeCommand(t, "version")
	if err != nil {
		t.Fatalf("version command failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(output), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d: %q", len(lines), output)
	}
	if !strings.HasPrefix(lines[0], "defcheck version ") {
		t.Errorf("first line = %q, want prefix %q", lines[0], "defcheck version ")
	}
	if !strings.Contains(lines[1], "commit:") {
		t.Errorf("second line = %q, want commit", lines[1])
	}
	if !strings.Contains(lines[2], "built:") {
		t.Errorf("third line = %q, want build date", lines[2])
	}
}
