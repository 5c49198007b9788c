package validator

import (
	"fmt"

	"github.com/thoreinstein/defcheck/pkg/definition"
)

// Error is a single validation failure attached to a definition.
// The zero value has no definition and an empty message.
type Error struct {
	definition definition.Definition
	message    string
}

// NewError creates an Error for def with the given message.
func NewError(def definition.Definition, message string) Error {
	return Error{definition: def, message: message}
}

// Definition returns the definition that caused the error.
func (e Error) Definition() definition.Definition {
	return e.definition
}

// Message returns the error message.
func (e Error) Message() string {
	return e.message
}

// Error implements the error interface.
func (e Error) Error() string {
	return e.message
}

// String returns the message prefixed with the definition label.
func (e Error) String() string {
	return fmt.Sprintf("%s: %s", definition.Label(e.definition), e.message)
}

// ErrorList accumulates validation errors in insertion order.
// Embed it by value in a validator to provide the error-state half of the
// Validator interface. It is not safe for concurrent use.
type ErrorList struct {
	errs []Error
}

// HasErrors returns true if any error has been recorded.
func (e *ErrorList) HasErrors() bool {
	return len(e.errs) > 0
}

// Errors returns a copy of the recorded errors in insertion order.
func (e *ErrorList) Errors() []Error {
	if len(e.errs) == 0 {
		return nil
	}
	out := make([]Error, len(e.errs))
	copy(out, e.errs)
	return out
}

// AddError records an error against def.
func (e *ErrorList) AddError(def definition.Definition, message string) {
	e.errs = append(e.errs, NewError(def, message))
}

// AddErrorf records a formatted error against def.
func (e *ErrorList) AddErrorf(def definition.Definition, format string, args ...any) {
	e.AddError(def, fmt.Sprintf(format, args...))
}

// ResetErrors discards every recorded error.
func (e *ErrorList) ResetErrors() {
	e.errs = nil
}
