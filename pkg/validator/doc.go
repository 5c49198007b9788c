// Package validator provides composable validation of code definitions.
//
// # Core Concepts
//
//   - [Validator]: decides whether it applies to a definition and, when it
//     does, records zero or more errors against it.
//   - [Error]: one validation failure, tied to the offending definition.
//   - [ErrorList]: the error accumulator every leaf validator embeds.
//   - [Composite]: a validator that fans out to an ordered, duplicate-free
//     list of child validators.
//
// Validation failures are data. No operation in this package returns a Go
// error or panics because a definition is invalid.
//
// # Writing a Validator
//
//	type NoEmpty struct {
//		validator.ErrorList
//	}
//
//	func (v *NoEmpty) Applies(definition.Definition) bool { return true }
//
//	func (v *NoEmpty) Validate(d definition.Definition) validator.Validator {
//		if d.IsEmpty() {
//			v.AddError(d, "Definition is empty")
//		}
//		return v
//	}
//
// # Accumulation
//
// Errors accumulate across calls to Validate. Validating the same definition
// twice records its errors twice; call ResetErrors first when a fresh result
// is wanted.
package validator
