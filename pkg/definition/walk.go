package definition

import "fmt"

// WalkFunc is called for each definition visited by Walk.
// Returning false skips the children of that definition.
type WalkFunc func(def Definition) bool

// Walk visits def and its descendants depth-first in pre-order.
// A nil def is ignored.
func Walk(def Definition, fn WalkFunc) {
	if def == nil {
		return
	}
	if !fn(def) {
		return
	}
	c, ok := def.(Container)
	if !ok {
		return
	}
	for _, child := range c.Children() {
		Walk(child, fn)
	}
}

// Label returns a short human-readable description of def, such as
// "property id" or "documentation".
func Label(def Definition) string {
	if def == nil {
		return "<nil>"
	}

	kind := "definition"
	if k, ok := def.(Kinded); ok {
		kind = k.Kind()
	}

	if n, ok := def.(Named); ok {
		if n.Name() == "" {
			return kind + " (unnamed)"
		}
		return fmt.Sprintf("%s %s", kind, n.Name())
	}
	return kind
}
