// Package rules provides the built-in definition validators.
package rules

import (
	"regexp"
	"unicode/utf8"

	"github.com/thoreinstein/defcheck/pkg/definition"
	"github.com/thoreinstein/defcheck/pkg/validator"
)

// NotEmpty reports every definition that carries no content.
type NotEmpty struct {
	validator.ErrorList
}

// NewNotEmpty creates a NotEmpty rule.
func NewNotEmpty() *NotEmpty { return &NotEmpty{} }

// Applies returns true for every definition.
func (r *NotEmpty) Applies(definition.Definition) bool { return true }

// Validate records an error when def is empty.
func (r *NotEmpty) Validate(def definition.Definition) validator.Validator {
	if def.IsEmpty() {
		r.AddError(def, "Definition is empty")
	}
	return r
}

// Documented requires named definitions that accept documentation to have it.
type Documented struct {
	validator.ErrorList
}

// NewDocumented creates a Documented rule.
func NewDocumented() *Documented { return &Documented{} }

// Applies returns true for definitions that are both named and documentable.
func (r *Documented) Applies(def definition.Definition) bool {
	_, named := def.(definition.Named)
	_, documented := def.(definition.Documented)
	return named && documented
}

// Validate records an error when the documentation is missing or blank.
func (r *Documented) Validate(def definition.Definition) validator.Validator {
	d, ok := def.(definition.Documented)
	if !ok {
		return r
	}
	if d.Documentation().IsEmpty() {
		r.AddError(def, "Definition has no documentation")
	}
	return r
}

// NamePattern requires names to match a regular expression.
type NamePattern struct {
	validator.ErrorList
	pattern *regexp.Regexp
}

// NewNamePattern creates a NamePattern rule for the compiled pattern.
func NewNamePattern(pattern *regexp.Regexp) *NamePattern {
	return &NamePattern{pattern: pattern}
}

// Applies returns true for named definitions.
func (r *NamePattern) Applies(def definition.Definition) bool {
	_, ok := def.(definition.Named)
	return ok && r.pattern != nil
}

// Validate records an error when the name is missing or does not match.
func (r *NamePattern) Validate(def definition.Definition) validator.Validator {
	n, ok := def.(definition.Named)
	if !ok || r.pattern == nil {
		return r
	}
	switch name := n.Name(); {
	case name == "":
		r.AddError(def, "name is required")
	case !r.pattern.MatchString(name):
		r.AddErrorf(def, "name %q does not match %s", name, r.pattern)
	}
	return r
}

// DocLength limits the length of documentation text, counted in runes.
type DocLength struct {
	validator.ErrorList
	max int
}

// NewDocLength creates a DocLength rule. A max of zero or less disables it.
func NewDocLength(limit int) *DocLength {
	return &DocLength{max: limit}
}

// Applies returns true for documentation when a limit is set.
func (r *DocLength) Applies(def definition.Definition) bool {
	_, ok := def.(*definition.Documentation)
	return ok && r.max > 0
}

// Validate records an error when the documentation exceeds the limit.
func (r *DocLength) Validate(def definition.Definition) validator.Validator {
	doc, ok := def.(*definition.Documentation)
	if !ok {
		return r
	}
	if n := utf8.RuneCountInString(doc.Text()); n > r.max {
		r.AddErrorf(def, "documentation is %d characters, exceeds maximum of %d", n, r.max)
	}
	return r
}

// UniqueMembers rejects duplicate member names within a structure and
// duplicate parameter names within a method.
type UniqueMembers struct {
	validator.ErrorList
}

// NewUniqueMembers creates a UniqueMembers rule.
func NewUniqueMembers() *UniqueMembers { return &UniqueMembers{} }

// Applies returns true for structures and methods.
func (r *UniqueMembers) Applies(def definition.Definition) bool {
	switch def.(type) {
	case *definition.Structure, *definition.Method:
		return true
	}
	return false
}

// Validate records one error per duplicated name, against the duplicate.
func (r *UniqueMembers) Validate(def definition.Definition) validator.Validator {
	switch d := def.(type) {
	case *definition.Structure:
		seen := make(map[string]bool)
		for _, p := range d.Properties() {
			r.checkName(seen, p, "member")
		}
		for _, m := range d.Methods() {
			r.checkName(seen, m, "member")
		}
	case *definition.Method:
		seen := make(map[string]bool)
		for _, p := range d.Parameters() {
			r.checkName(seen, p, "parameter")
		}
	}
	return r
}

func (r *UniqueMembers) checkName(seen map[string]bool, n definition.Named, what string) {
	name := n.Name()
	if name == "" {
		return
	}
	if seen[name] {
		r.AddErrorf(n, "duplicate %s name %q", what, name)
		return
	}
	seen[name] = true
}

// Typed requires properties and parameters to declare a type.
type Typed struct {
	validator.ErrorList
}

// NewTyped creates a Typed rule.
func NewTyped() *Typed { return &Typed{} }

// Applies returns true for properties and parameters.
func (r *Typed) Applies(def definition.Definition) bool {
	switch def.(type) {
	case *definition.Property, *definition.Parameter:
		return true
	}
	return false
}

// Validate records an error when the type is empty.
func (r *Typed) Validate(def definition.Definition) validator.Validator {
	var typ string
	switch d := def.(type) {
	case *definition.Property:
		typ = d.Type()
	case *definition.Parameter:
		typ = d.Type()
	default:
		return r
	}
	if typ == "" {
		r.AddError(def, "type is required")
	}
	return r
}
