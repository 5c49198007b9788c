package validator

import "github.com/thoreinstein/defcheck/pkg/definition"

// Validator checks definitions and accumulates the errors it finds.
type Validator interface {
	// Applies reports whether the validator is relevant to def.
	// It must not modify any state.
	Applies(def definition.Definition) bool

	// Validate checks def, recording errors for every failure found,
	// and returns the receiver. Errors from earlier calls are kept.
	Validate(def definition.Definition) Validator

	// HasErrors returns true if any error has been recorded.
	HasErrors() bool

	// Errors returns the recorded errors in the order they were found.
	Errors() []Error

	// ResetErrors discards every recorded error.
	ResetErrors()
}

// Matcher selects validators by capability or type.
type Matcher func(v Validator) bool

// InstanceOf returns a Matcher reporting whether a validator is of type T.
// T may be a concrete type, such as *Composite, or an interface.
func InstanceOf[T any]() Matcher {
	return func(v Validator) bool {
		_, ok := v.(T)
		return ok
	}
}
