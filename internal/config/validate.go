package config

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/thoreinstein/defcheck/internal/errors"
)

// Validation errors for configuration fields.
var (
	// ErrUnsupportedVersion indicates the version field is not supported.
	ErrUnsupportedVersion = errors.New("unsupported config version")

	// ErrInvalidFormat indicates an unrecognized output format.
	ErrInvalidFormat = errors.New("invalid format")

	// ErrInvalidPattern indicates name_pattern is not a valid regular expression.
	ErrInvalidPattern = errors.New("invalid name pattern")

	// ErrInvalidLength indicates a negative max_doc_length.
	ErrInvalidLength = errors.New("max_doc_length must be >= 0")

	// ErrInvalidExtension indicates an extension without a leading dot.
	ErrInvalidExtension = errors.New("extension must start with '.'")
)

// Validate checks a Config for validity.
// Returns nil if valid, or a slice of validation errors.
func Validate(cfg *Config) []error {
	if cfg == nil {
		return []error{errors.New("config is nil")}
	}

	var errs []error

	if cfg.Version != DefaultVersion {
		errs = append(errs, &FieldError{Field: "version", Value: strconv.Itoa(cfg.Version), Err: ErrUnsupportedVersion})
	}

	switch cfg.Format {
	case "text", "json":
	default:
		errs = append(errs, &FieldError{Field: "format", Value: cfg.Format, Err: ErrInvalidFormat})
	}

	for _, ext := range cfg.Extensions {
		if !strings.HasPrefix(ext, ".") || len(ext) < 2 {
			errs = append(errs, &FieldError{Field: "extensions", Value: ext, Err: ErrInvalidExtension})
		}
	}

	if _, err := regexp.Compile(cfg.NamePattern); err != nil {
		errs = append(errs, &FieldError{Field: "name_pattern", Value: cfg.NamePattern, Err: ErrInvalidPattern})
	}

	if cfg.MaxDocLength < 0 {
		errs = append(errs, ErrInvalidLength)
	}

	return errs
}

// FieldError represents an invalid value for a specific field.
type FieldError struct {
	Field string
	Value string
	Err   error
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Err.Error() + ": " + e.Value
}

func (e *FieldError) Unwrap() error {
	return e.Err
}
