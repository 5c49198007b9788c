package paths

import (
	"os"
	"path/filepath"
	"testing"
)

func TestConfigHome(t *testing.T) {
	got := ConfigHome()
	if got == "" {
		t.Error("ConfigHome() returned empty string")
	}
	if !filepath.IsAbs(got) {
		t.Errorf("ConfigHome() = %q, want absolute path", got)
	}
}

func TestConfigDir(t *testing.T) {
	t.Run("xdg default", func(t *testing.T) {
		t.Setenv("DEFCHECK_CONFIG_DIR", "")
		want := filepath.Join(ConfigHome(), AppName)
		if got := ConfigDir(); got != want {
			t.Errorf("ConfigDir() = %q, want %q", got, want)
		}
	})

	t.Run("env override", func(t *testing.T) {
		dir := t.TempDir()
		t.Setenv("DEFCHECK_CONFIG_DIR", dir)
		if got := ConfigDir(); got != dir {
			t.Errorf("ConfigDir() = %q, want %q", got, dir)
		}
		if got, want := ConfigFile(), filepath.Join(dir, ConfigFileName); got != want {
			t.Errorf("ConfigFile() = %q, want %q", got, want)
		}
	})
}

func TestEnsureDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")

	if err := EnsureDir(dir, 0); err != nil {
		t.Fatalf("EnsureDir() error = %v", err)
	}
	info, err := os.Stat(dir)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if !info.IsDir() {
		t.Error("expected a directory")
	}

	// idempotent
	if err := EnsureDir(dir, 0o755); err != nil {
		t.Errorf("EnsureDir() second call error = %v", err)
	}
}
