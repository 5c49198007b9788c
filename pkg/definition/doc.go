// Package definition provides the code definition model checked by defcheck.
//
// A [Definition] is any value that can report whether it is empty. The
// concrete types in this package ([Structure], [Method], [Property],
// [Parameter] and [Documentation]) are always handled by pointer, so two
// definitions are the same definition only when they are the same pointer.
//
// Optional capabilities are expressed as small interfaces that validators
// test for with type assertions:
//
//   - [Named]: the definition carries a name.
//   - [Documented]: the definition can carry documentation.
//   - [Container]: the definition has child definitions.
//   - [Kinded]: the definition reports a kind used in labels.
//
// # Traversal
//
// Use [Walk] to visit every definition in a tree:
//
//	definition.Walk(root, func(d definition.Definition) bool {
//		v.Validate(d)
//		return true
//	})
package definition
