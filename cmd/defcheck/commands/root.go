// Package commands implements the CLI commands for defcheck.
package commands

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/defcheck/cmd"
	"github.com/thoreinstein/defcheck/internal/config"
	"github.com/thoreinstein/defcheck/internal/errors"
	"github.com/thoreinstein/defcheck/internal/logging"
)

// verbosity holds the count of -v flags.
var verbosity int

// quiet holds the value of the -q/--quiet flag.
var quiet bool

// logFormat holds the value of the --log-format flag.
var logFormat string

// logFile holds the path to the log file.
var logFile string

// configPath holds the value of the --config flag.
var configPath string

// cfg is the effective configuration, set by initConfig.
var cfg *config.Config

// configLoadErr holds any error that occurred during config loading.
var configLoadErr error

// logFileHandle is the open --log-file, closed by closeLogFile.
var logFileHandle *os.File

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"increase verbosity level (e.g., -v, -vv, -vvv)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false,
		"suppress non-error output")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text",
		"log format: text, json")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "",
		"write logs to file in JSON format")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"config file (default: ./config.yaml, then $XDG_CONFIG_HOME/defcheck/config.yaml)")

	rootCmd.Version = cmd.ResolvedVersion()
	rootCmd.SetVersionTemplate("defcheck version {{.Version}}\n")

	// Silence errors and usage so we can control error output
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}

func initConfig() {
	config.Init()
	cfg, configLoadErr = config.Load(configPath)
}

var rootCmd = &cobra.Command{
	Use:   "defcheck",
	Short: "Validate code definitions against documentation and naming rules",
	Long: `defcheck loads structure definitions (properties, methods, parameters
and their documentation) from YAML, TOML or markdown files and runs them
through a composite of validation rules.

Every definition in a file is visited. Each rule decides whether it applies
to the definition at hand, and the errors of all rules are reported per file.`,
	Example: `  # Validate every definition file below the current directory
  defcheck validate

  # Validate specific files, skipping a rule
  defcheck validate api/user.yaml --skip documented

  # List available rules
  defcheck rules

  See Also: defcheck config`,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if err := setupLogging(cmd); err != nil {
			return err
		}
		return checkConfig(cmd)
	},
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
}

// setupLogging configures the default logger based on verbosity flags.
func setupLogging(cmd *cobra.Command) error {
	if quiet && verbosity > 0 {
		return errors.NewUserError(errors.New("cannot use --quiet and --verbose together"), "")
	}

	var level slog.Level
	if quiet {
		level = slog.LevelError
	} else {
		v := verbosity

		// CLI flags take precedence, but if not set, check env var
		if v == 0 {
			if val, ok := os.LookupEnv("DEFCHECK_DEBUG"); ok {
				switch val {
				case "1", "true":
					v = 2
				case "2":
					v = 3
				}
			}
		}
		level = logging.LevelFromVerbosity(v)
	}

	format, err := logging.ParseFormat(logFormat)
	if err != nil {
		return errors.NewUserError(err, "Use --log-format text or --log-format json")
	}

	logCfg := logging.Config{
		Level:  level,
		Format: format,
		Output: cmd.ErrOrStderr(),
	}

	if err := closeLogFile(); err != nil {
		return err
	}
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return errors.NewUserError(errors.Wrap(err, "opening log file"), "Check the --log-file path")
		}
		logFileHandle = f
		logCfg.File = f
	}

	logger := logging.New(logCfg)
	slog.SetDefault(logger)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(logging.NewContext(ctx, logger))

	return nil
}

// closeLogFile closes the --log-file opened by setupLogging, if any.
func closeLogFile() error {
	if logFileHandle == nil {
		return nil
	}
	err := logFileHandle.Close()
	logFileHandle = nil
	return errors.Wrap(err, "closing log file")
}

// configExempt lists commands that run without a valid config, either
// because they do not read it or because they exist to repair it.
var configExempt = map[string]bool{
	"defcheck help":        true,
	"defcheck version":     true,
	"defcheck config init": true,
	"defcheck config edit": true,
}

// checkConfig reports config load errors for commands that depend on it.
func checkConfig(cmd *cobra.Command) error {
	if configExempt[cmd.CommandPath()] {
		if configLoadErr != nil {
			logging.FromContext(cmd.Context()).Warn("ignoring invalid config", "error", configLoadErr)
		}
		return nil
	}
	if configLoadErr != nil {
		return errors.NewConfigError(configLoadErr)
	}
	if used := config.Used(); used != "" {
		logging.FromContext(cmd.Context()).Debug("loaded config", "path", used)
	}
	return nil
}

// Execute runs the root command.
func Execute() error {
	err := rootCmd.Execute()
	if cerr := closeLogFile(); err == nil {
		err = cerr
	}
	return errors.Wrap(err, "executing root command")
}
