package commands

import (
	"bytes"
	"context"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/defcheck/internal/errors"
	"github.com/thoreinstein/defcheck/internal/loader"
	"github.com/thoreinstein/defcheck/internal/logging"
	"github.com/thoreinstein/defcheck/internal/report"
	"github.com/thoreinstein/defcheck/internal/rules"
	"github.com/thoreinstein/defcheck/pkg/definition"
	"github.com/thoreinstein/defcheck/pkg/fileutil"
	"github.com/thoreinstein/defcheck/pkg/validator"
)

var (
	validateFormat string
	validateSkip   []string
	validateOutput string
	validatePick   bool
)

func init() {
	validateCmd.Flags().StringVar(&validateFormat, "format", "",
		"report format: text, json (default from config)")
	validateCmd.Flags().StringSliceVar(&validateSkip, "skip", nil,
		"rule to skip for this run (repeatable)")
	validateCmd.Flags().StringVarP(&validateOutput, "output", "o", "",
		"write the report to a file instead of stdout")
	validateCmd.Flags().BoolVar(&validatePick, "pick", false,
		"interactively choose which discovered files to validate")
	rootCmd.AddCommand(validateCmd)
}

var validateCmd = &cobra.Command{
	Use:   "validate [paths...]",
	Short: "Validate definition files",
	Long: `Validate definition files against the active rules.

Each path may be a file or a directory. Directories are searched
recursively for files with one of the configured extensions; hidden
directories are skipped. With no paths, the current directory is used.

Every definition in a file (the structure, its documentation, properties,
methods and parameters) is passed to the rules that apply to it. The
command exits with status 1 when any rule reports an error.`,
	Example: `  # Validate the current directory
  defcheck validate

  # Validate one file as JSON
  defcheck validate api/user.yaml --format json

  # Skip rules for this run
  defcheck validate --skip documented --skip doc-length

  # Choose files interactively and save the report
  defcheck validate defs/ --pick -o report.txt

See Also: defcheck rules, defcheck config`,
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	logger := logging.FromContext(cmd.Context())

	if len(args) == 0 {
		args = []string{"."}
	}

	format := validateFormat
	if format == "" {
		format = cfg.Format
	}
	f, err := report.ParseFormat(format)
	if err != nil {
		return errors.NewUserError(err, "Use --format text or --format json")
	}

	composite, err := rules.Build(rules.Options{
		Disabled:     cfg.DisabledRules,
		NamePattern:  cfg.NamePattern,
		MaxDocLength: cfg.MaxDocLength,
	})
	if err != nil {
		return errors.NewConfigError(err)
	}
	if err := rules.Skip(composite, validateSkip...); err != nil {
		return errors.NewUserError(err, "Run: defcheck rules")
	}

	files, err := loader.Discover(args, cfg.Extensions)
	if err != nil {
		return errors.NewUserError(err, "Check that the paths exist")
	}
	logger.Debug("discovered definition files", "count", len(files))

	if validatePick {
		files, err = pickFiles(files)
		if err != nil {
			return err
		}
		if len(files) == 0 {
			logger.Info("no files selected")
			return nil
		}
	}

	results, err := validateFiles(cmd.Context(), logger, composite, files)
	if err != nil {
		return err
	}

	if err := writeReport(cmd.OutOrStdout(), f, results); err != nil {
		return err
	}

	if results.HasErrors() {
		return errors.NewExitError(
			errors.Wrapf(errors.ErrValidationFailed, "%d error(s)", results.ErrorCount()),
			errors.ExitUser,
		)
	}
	return nil
}

// validateFiles loads each file and runs every definition in it through v.
// Errors are reset between files so each result holds only its own file's
// findings.
func validateFiles(ctx context.Context, logger *slog.Logger, v validator.Validator, files []string) (report.Results, error) {
	results := make(report.Results, 0, len(files))

	for _, path := range files {
		def, err := loader.Load(path)
		if err != nil {
			return nil, errors.NewUserError(err, "Fix the definition file or exclude it from the run")
		}

		v.ResetErrors()
		trace := logger.Enabled(ctx, logging.LevelTrace)
		definition.Walk(def, func(d definition.Definition) bool {
			if trace {
				logger.Log(ctx, logging.LevelTrace, "validating definition",
					"path", path, "definition", definition.Label(d), "applies", v.Applies(d))
			}
			v.Validate(d)
			return true
		})

		errs := v.Errors()
		logger.Debug("validated file", "path", path, "errors", len(errs))
		results = append(results, report.FileResult{Path: path, Errors: errs})
	}

	return results, nil
}

// writeReport renders results to out, or to the --output file when set.
func writeReport(out io.Writer, format report.Format, results report.Results) error {
	if validateOutput == "" {
		return report.NewReporter(out, format).Report(results)
	}

	var buf bytes.Buffer
	if err := report.NewReporter(&buf, format).Report(results); err != nil {
		return err
	}
	if err := fileutil.AtomicWriteFile(validateOutput, buf.Bytes(), 0o644); err != nil {
		return errors.NewSystemError(err, "Check that the output directory exists and is writable")
	}
	return nil
}
