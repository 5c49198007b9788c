// Package logging sets up log/slog for the defcheck CLI.
//
// Console output goes through [Handler], a compact text handler that colors
// levels and keys when the destination is a terminal (see [SupportsColor]),
// or through slog's JSON handler with --log-format json. A --log-file adds a
// JSON copy of every record via [MultiHandler].
//
//	logger := logging.New(logging.Config{
//		Level:  logging.LevelFromVerbosity(verbosity),
//		Format: logging.FormatText,
//		Output: os.Stderr,
//	})
//
// Verbosity maps -v counts to levels: none is WARN, -v INFO, -vv DEBUG and
// -vvv [LevelTrace], which logs every definition visited during validation.
//
// Commands retrieve the logger with [FromContext]; tests use [ForTest].
package logging
