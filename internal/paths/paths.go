package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"

	"github.com/thoreinstein/defcheck/internal/errors"
)

// AppName is the directory name used under the XDG config home.
const AppName = "defcheck"

// ConfigFileName is the base name of the configuration file.
const ConfigFileName = "config.yaml"

// DefaultDirPerm is the default permission for newly created directories (private).
const DefaultDirPerm = 0o700

// ConfigHome returns the XDG config home directory.
// On Linux: ~/.config
// On macOS: ~/Library/Application Support
// On Windows: %LOCALAPPDATA%
func ConfigHome() string {
	return xdg.ConfigHome
}

// ConfigDir returns the defcheck configuration directory.
// DEFCHECK_CONFIG_DIR overrides the XDG location.
func ConfigDir() string {
	if dir := os.Getenv("DEFCHECK_CONFIG_DIR"); dir != "" {
		return dir
	}
	return filepath.Join(ConfigHome(), AppName)
}

// ConfigFile returns the path of the user configuration file.
func ConfigFile() string {
	return filepath.Join(ConfigDir(), ConfigFileName)
}

// EnsureDir creates the directory and any necessary parents.
// If perm is 0, DefaultDirPerm is used. It is a no-op for existing directories.
func EnsureDir(path string, perm os.FileMode) error {
	if perm == 0 {
		perm = DefaultDirPerm
	}
	return errors.Wrapf(os.MkdirAll(path, perm), "creating %s", path)
}
