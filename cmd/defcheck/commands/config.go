package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/defcheck/internal/config"
	"github.com/thoreinstein/defcheck/internal/editor"
	"github.com/thoreinstein/defcheck/internal/errors"
	"github.com/thoreinstein/defcheck/internal/paths"
	"github.com/thoreinstein/defcheck/pkg/fileutil"
)

var configInitForce bool

func init() {
	configInitCmd.Flags().BoolVarP(&configInitForce, "force", "f", false,
		"overwrite an existing config file")
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configEditCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show defcheck configuration",
	Long: `Show the effective defcheck configuration in YAML format.

Values come from config.yaml in the current directory or in
$XDG_CONFIG_HOME/defcheck, overridden by DEFCHECK_* environment variables.`,
	Example: `  # Show effective configuration
  defcheck config

  # Get a single value
  defcheck config get name_pattern

  # Write a default config file
  defcheck config init

See Also: defcheck rules`,
	Args: cobra.NoArgs,
	RunE: runConfigList,
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a configuration value",
	Long: `Get a single configuration value by key.

Array values are printed one per line.`,
	Example: `  # Get the documentation length limit
  defcheck config get max_doc_length

See Also: defcheck config`,
	Args: cobra.ExactArgs(1),
	RunE: runConfigGet,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config file",
	Long: `Write the default configuration to $XDG_CONFIG_HOME/defcheck/config.yaml.

An existing file is left alone unless --force is given.`,
	Args: cobra.NoArgs,
	RunE: runConfigInit,
}

var configEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Open configuration in $EDITOR",
	Long: `Open the configuration file in your default editor.

The file in use is opened; without one, the user config file is opened.
Uses $EDITOR, then $VISUAL, then nano or vi.`,
	Example: `  # Open config in default editor
  defcheck config edit

  # Open with specific editor
  EDITOR=nano defcheck config edit

See Also: defcheck config init`,
	Args: cobra.NoArgs,
	RunE: runConfigEdit,
}

func runConfigList(cmd *cobra.Command, _ []string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.Wrap(err, "marshaling config")
	}

	out := cmd.OutOrStdout()
	if used := config.Used(); used != "" {
		fmt.Fprintf(out, "# %s\n", used)
	}
	fmt.Fprint(out, string(data))
	return nil
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	key := args[0]
	out := cmd.OutOrStdout()

	if !viper.IsSet(key) {
		return errors.NewUserError(errors.Newf("unknown config key %q", key), "Run: defcheck config")
	}

	switch v := viper.Get(key).(type) {
	case []any:
		for _, item := range v {
			fmt.Fprintln(out, item)
		}
	case []string:
		for _, item := range v {
			fmt.Fprintln(out, item)
		}
	default:
		fmt.Fprintln(out, viper.GetString(key))
	}
	return nil
}

func runConfigInit(cmd *cobra.Command, _ []string) error {
	path := paths.ConfigFile()

	if _, err := os.Stat(path); err == nil && !configInitForce {
		return errors.NewUserError(
			errors.Newf("config file already exists at %s", path),
			"Use --force to overwrite it",
		)
	}

	if err := paths.EnsureDir(paths.ConfigDir(), paths.DefaultDirPerm); err != nil {
		return errors.NewSystemError(err, "")
	}
	if err := fileutil.AtomicWriteYAML(path, config.Default()); err != nil {
		return errors.NewSystemError(err, "")
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	return nil
}

func runConfigEdit(cmd *cobra.Command, _ []string) error {
	path := config.Used()
	if path == "" {
		path = paths.ConfigFile()
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return errors.NewUserError(
			errors.Wrapf(errors.ErrNotFound, "config file %s", path),
			"Run: defcheck config init",
		)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Location: %s\n", path)
	if err := editor.Open(cmd.Context(), path); err != nil {
		return errors.NewSystemError(err, "Set $EDITOR to a working editor")
	}
	return nil
}
