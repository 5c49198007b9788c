package validator

import (
	"reflect"

	"github.com/thoreinstein/defcheck/pkg/definition"
)

// Composite is a Validator that delegates to an ordered set of child
// validators. A child is held at most once, compared by identity.
// It is not safe for concurrent use.
type Composite struct {
	validators []Validator
}

var _ Validator = (*Composite)(nil)

// New creates a Composite holding the given validators in order.
// Duplicates and nil validators, including typed nils such as
// (*T)(nil), are dropped.
func New(validators ...Validator) *Composite {
	c := &Composite{}
	c.AddValidators(validators...)
	return c
}

// Applies returns true if any child applies to def.
func (c *Composite) Applies(def definition.Definition) bool {
	for _, v := range c.validators {
		if v.Applies(def) {
			return true
		}
	}
	return false
}

// Validate runs every child that applies to def, in insertion order.
// Children that do not apply are left untouched.
func (c *Composite) Validate(def definition.Definition) Validator {
	for _, v := range c.validators {
		if v.Applies(def) {
			v.Validate(def)
		}
	}
	return c
}

// HasErrors returns true if any child has recorded errors.
func (c *Composite) HasErrors() bool {
	for _, v := range c.validators {
		if v.HasErrors() {
			return true
		}
	}
	return false
}

// Errors returns the errors of every child, concatenated in child order.
func (c *Composite) Errors() []Error {
	var errs []Error
	for _, v := range c.validators {
		if v.HasErrors() {
			errs = append(errs, v.Errors()...)
		}
	}
	return errs
}

// ResetErrors resets every child, whether or not it has errors.
func (c *Composite) ResetErrors() {
	for _, v := range c.validators {
		v.ResetErrors()
	}
}

// HasValidator reports whether v itself is one of the children.
func (c *Composite) HasValidator(v Validator) bool {
	for _, item := range c.validators {
		if same(item, v) {
			return true
		}
	}
	return false
}

// HasInstance reports whether any immediate child satisfies m.
// Nested composites are not searched.
func (c *Composite) HasInstance(m Matcher) bool {
	if m == nil {
		return false
	}
	for _, item := range c.validators {
		if m(item) {
			return true
		}
	}
	return false
}

// Validators returns a copy of the children in insertion order.
func (c *Composite) Validators() []Validator {
	out := make([]Validator, len(c.validators))
	copy(out, c.validators)
	return out
}

// AddValidator appends v unless it is nil, a typed nil, or already a child.
func (c *Composite) AddValidator(v Validator) *Composite {
	if isNil(v) || c.HasValidator(v) {
		return c
	}
	c.validators = append(c.validators, v)
	return c
}

// AddValidators calls AddValidator for each validator in order.
func (c *Composite) AddValidators(validators ...Validator) *Composite {
	for _, v := range validators {
		c.AddValidator(v)
	}
	return c
}

// RemoveValidator removes v from the children. Unknown validators are ignored.
func (c *Composite) RemoveValidator(v Validator) *Composite {
	return c.filter(func(item Validator) bool {
		return !same(item, v)
	})
}

// RemoveInstance removes every immediate child satisfying m.
// A nil matcher removes nothing.
func (c *Composite) RemoveInstance(m Matcher) *Composite {
	if m == nil {
		return c
	}
	return c.filter(func(item Validator) bool {
		return !m(item)
	})
}

// filter keeps the children for which keep returns true, preserving order.
func (c *Composite) filter(keep func(Validator) bool) *Composite {
	kept := c.validators[:0]
	for _, item := range c.validators {
		if keep(item) {
			kept = append(kept, item)
		}
	}
	clear(c.validators[len(kept):])
	c.validators = kept
	return c
}

// same reports whether a and b are the same validator.
// Validators with uncomparable dynamic types are never the same.
func same(a, b Validator) (eq bool) {
	defer func() {
		if recover() != nil {
			eq = false
		}
	}()
	return a == b
}

// isNil reports whether v is nil or holds a nil pointer, map, slice, func,
// chan or interface.
func isNil(v Validator) bool {
	if v == nil {
		return true
	}
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}
