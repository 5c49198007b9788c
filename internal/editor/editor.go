// Package editor launches the user's text editor on a file.
package editor

import (
	"context"
	"os"
	"os/exec"
	"strings"

	"github.com/thoreinstein/defcheck/internal/errors"
)

// Command returns the command that opens path in the user's editor.
// The editor value may carry arguments, as in EDITOR="code --wait".
func Command(ctx context.Context, path string) *exec.Cmd {
	fields := strings.Fields(detectEditor())
	args := append(fields[1:], path)

	cmd := exec.CommandContext(ctx, fields[0], args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd
}

// Open runs the user's editor on path and waits for it to exit.
func Open(ctx context.Context, path string) error {
	return errors.Wrap(Command(ctx, path).Run(), "running editor")
}

// detectEditor picks the editor: $EDITOR, then $VISUAL, then nano, then vi.
// Blank values count as unset.
func detectEditor() string {
	if editor := strings.TrimSpace(os.Getenv("EDITOR")); editor != "" {
		return editor
	}
	if visual := strings.TrimSpace(os.Getenv("VISUAL")); visual != "" {
		return visual
	}
	if _, err := exec.LookPath("nano"); err == nil {
		return "nano"
	}
	return "vi"
}
