package rules

import (
	"regexp"
	"slices"

	"github.com/thoreinstein/defcheck/internal/errors"
	"github.com/thoreinstein/defcheck/pkg/validator"
)

// Rule names.
const (
	NameNotEmpty      = "not-empty"
	NameDocumented    = "documented"
	NameNamePattern   = "name-pattern"
	NameDocLength     = "doc-length"
	NameUniqueMembers = "unique-members"
	NameTyped         = "typed"
)

// Options configures the rules built by Build.
type Options struct {
	// Disabled lists rule names to leave out.
	Disabled []string
	// NamePattern is the regular expression names must match.
	NamePattern string
	// MaxDocLength is the documentation limit in characters; 0 disables it.
	MaxDocLength int
}

// Entry describes one rule in the catalog.
type Entry struct {
	Name        string
	Description string
	// Match selects validators created by this entry.
	Match validator.Matcher
	build func(Options) (validator.Validator, error)
}

// Catalog returns the built-in rules in evaluation order.
func Catalog() []Entry {
	return []Entry{
		{
			Name:        NameNotEmpty,
			Description: "definitions must carry content",
			Match:       validator.InstanceOf[*NotEmpty](),
			build: func(Options) (validator.Validator, error) {
				return NewNotEmpty(), nil
			},
		},
		{
			Name:        NameDocumented,
			Description: "named definitions must be documented",
			Match:       validator.InstanceOf[*Documented](),
			build: func(Options) (validator.Validator, error) {
				return NewDocumented(), nil
			},
		},
		{
			Name:        NameNamePattern,
			Description: "names must match the configured pattern",
			Match:       validator.InstanceOf[*NamePattern](),
			build: func(o Options) (validator.Validator, error) {
				re, err := regexp.Compile(o.NamePattern)
				if err != nil {
					return nil, errors.Wrapf(err, "compiling name pattern %q", o.NamePattern)
				}
				return NewNamePattern(re), nil
			},
		},
		{
			Name:        NameDocLength,
			Description: "documentation must not exceed the configured length",
			Match:       validator.InstanceOf[*DocLength](),
			build: func(o Options) (validator.Validator, error) {
				return NewDocLength(o.MaxDocLength), nil
			},
		},
		{
			Name:        NameUniqueMembers,
			Description: "member and parameter names must be unique",
			Match:       validator.InstanceOf[*UniqueMembers](),
			build: func(Options) (validator.Validator, error) {
				return NewUniqueMembers(), nil
			},
		},
		{
			Name:        NameTyped,
			Description: "properties and parameters must declare a type",
			Match:       validator.InstanceOf[*Typed](),
			build: func(Options) (validator.Validator, error) {
				return NewTyped(), nil
			},
		},
	}
}

// Lookup returns the catalog entry with the given name.
func Lookup(name string) (Entry, error) {
	for _, e := range Catalog() {
		if e.Name == name {
			return e, nil
		}
	}
	return Entry{}, errors.Wrapf(errors.ErrUnknownRule, "%q", name)
}

// Names returns the names of all built-in rules.
func Names() []string {
	catalog := Catalog()
	names := make([]string, len(catalog))
	for i, e := range catalog {
		names[i] = e.Name
	}
	return names
}

// Build creates a composite of every rule not listed in opts.Disabled.
func Build(opts Options) (*validator.Composite, error) {
	for _, name := range opts.Disabled {
		if _, err := Lookup(name); err != nil {
			return nil, err
		}
	}

	c := validator.New()
	for _, e := range Catalog() {
		if slices.Contains(opts.Disabled, e.Name) {
			continue
		}
		v, err := e.build(opts)
		if err != nil {
			return nil, errors.Wrapf(err, "building rule %s", e.Name)
		}
		c.AddValidator(v)
	}
	return c, nil
}

// Skip removes the named rules from c.
func Skip(c *validator.Composite, names ...string) error {
	for _, name := range names {
		e, err := Lookup(name)
		if err != nil {
			return err
		}
		c.RemoveInstance(e.Match)
	}
	return nil
}
