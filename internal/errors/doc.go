// Package errors provides error handling conventions for the defcheck CLI.
//
// This package defines sentinel errors for common failure conditions,
// an ExitError type for CLI exit code handling, and exit code constants
// following standard Unix conventions. Construction and wrapping helpers
// delegate to github.com/cockroachdb/errors so every error carries a stack.
//
// # Sentinel Errors
//
// Sentinel errors allow callers to check for specific error conditions
// using [Is]:
//
//	if errors.Is(err, deferrors.ErrUnknownRule) {
//	    // handle unknown rule
//	}
//
// Validation findings are never Go errors. They are validator.Error values;
// a run that produced findings ends with [ErrValidationFailed].
//
// # Exit Codes
//
//   - ExitSuccess (0): Command completed successfully
//   - ExitUser (1): User-related error or failed validation
//   - ExitSystem (2): System-related error (I/O, permissions, etc.)
//
// # ExitError
//
// [ExitError] wraps an underlying error with an exit code and optional
// suggestion:
//
//	err := deferrors.NewUserError(deferrors.ErrInvalidConfig, "Check your config file")
//	os.Exit(deferrors.ExitCode(err))
package errors
