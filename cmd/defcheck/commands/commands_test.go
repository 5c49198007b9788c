package commands

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/spf13/viper"
)

const validDefinition = `name: user
documentation: A registered user.
properties:
  - name: id
    type: int
    documentation: Unique identifier.
`

const untypedDefinition = `name: user
documentation: A registered user.
properties:
  - name: id
    documentation: Unique identifier.
`

// resetState clears package-level flag and config state left by a previous
// execution of rootCmd.
func resetState(t *testing.T) {
	t.Helper()

	viper.Reset()

	noColor := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = noColor })

	verbosity = 0
	quiet = false
	logFormat = "text"
	logFile = ""
	configPath = ""
	cfg = nil
	configLoadErr = nil

	validateFormat = ""
	validateSkip = nil
	validateOutput = ""
	validatePick = false
	configInitForce = false
}

// executeCommand runs rootCmd with args and returns what it wrote to stdout.
// The user config directory is an empty temporary directory.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	return executeInConfigDir(t, filepath.Join(t.TempDir(), "config"), args...)
}

// executeInConfigDir is executeCommand with the user config directory set
// to dir.
func executeInConfigDir(t *testing.T, dir string, args ...string) (string, error) {
	t.Helper()
	resetState(t)
	t.Setenv("DEFCHECK_CONFIG_DIR", dir)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		_ = closeLogFile()
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return out.String(), err
}

// writeFile creates name under dir with content and returns its path.
func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create dir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}
