package definition

import "strings"

// Definition is a code definition that can be validated.
type Definition interface {
	// IsEmpty reports whether the definition carries no content.
	IsEmpty() bool
}

// Named is implemented by definitions that have a name.
type Named interface {
	Definition
	Name() string
}

// Documented is implemented by definitions that can carry documentation.
// Documentation returns nil when none was given.
type Documented interface {
	Definition
	Documentation() *Documentation
}

// Container is implemented by definitions that hold other definitions.
type Container interface {
	Definition
	Children() []Definition
}

// Kinded is implemented by definitions that report their kind.
type Kinded interface {
	Definition
	Kind() string
}

// Kinds of definitions.
const (
	KindDocumentation = "documentation"
	KindParameter     = "parameter"
	KindProperty      = "property"
	KindMethod        = "method"
	KindStructure     = "structure"
)

// Documentation is free-form text attached to another definition.
type Documentation struct {
	text string
}

// NewDocumentation creates documentation with the given text.
func NewDocumentation(text string) *Documentation {
	return &Documentation{text: text}
}

// Text returns the documentation text.
func (d *Documentation) Text() string {
	if d == nil {
		return ""
	}
	return d.text
}

// IsEmpty reports whether the documentation has no non-whitespace text.
func (d *Documentation) IsEmpty() bool {
	return strings.TrimSpace(d.Text()) == ""
}

// Kind returns KindDocumentation.
func (d *Documentation) Kind() string { return KindDocumentation }

// Parameter is a method parameter.
type Parameter struct {
	name string
	typ  string
}

// NewParameter creates a parameter.
func NewParameter(name, typ string) *Parameter {
	return &Parameter{name: name, typ: typ}
}

// Name returns the parameter name.
func (p *Parameter) Name() string { return p.name }

// Type returns the parameter type.
func (p *Parameter) Type() string { return p.typ }

// Kind returns KindParameter.
func (p *Parameter) Kind() string { return KindParameter }

// IsEmpty reports whether the parameter has neither name nor type.
func (p *Parameter) IsEmpty() bool {
	return p.name == "" && p.typ == ""
}

// Property is a typed field of a structure.
type Property struct {
	name string
	typ  string
	doc  *Documentation
}

// NewProperty creates a property. doc may be nil.
func NewProperty(name, typ string, doc *Documentation) *Property {
	return &Property{name: name, typ: typ, doc: doc}
}

// Name returns the property name.
func (p *Property) Name() string { return p.name }

// Type returns the property type.
func (p *Property) Type() string { return p.typ }

// Documentation returns the property documentation, or nil.
func (p *Property) Documentation() *Documentation { return p.doc }

// Kind returns KindProperty.
func (p *Property) Kind() string { return KindProperty }

// IsEmpty reports whether the property has no name, type or documentation.
func (p *Property) IsEmpty() bool {
	return p.name == "" && p.typ == "" && p.doc.IsEmpty()
}

// Children returns the property documentation when present.
func (p *Property) Children() []Definition {
	if p.doc == nil {
		return nil
	}
	return []Definition{p.doc}
}

// Method is a function attached to a structure.
type Method struct {
	name       string
	returns    string
	parameters []*Parameter
	doc        *Documentation
}

// NewMethod creates a method. doc may be nil.
func NewMethod(name, returns string, params []*Parameter, doc *Documentation) *Method {
	return &Method{
		name:       name,
		returns:    returns,
		parameters: append([]*Parameter(nil), params...),
		doc:        doc,
	}
}

// Name returns the method name.
func (m *Method) Name() string { return m.name }

// Returns returns the method return type; empty means none.
func (m *Method) Returns() string { return m.returns }

// Parameters returns a copy of the method parameters.
func (m *Method) Parameters() []*Parameter {
	return append([]*Parameter(nil), m.parameters...)
}

// Documentation returns the method documentation, or nil.
func (m *Method) Documentation() *Documentation { return m.doc }

// Kind returns KindMethod.
func (m *Method) Kind() string { return KindMethod }

// IsEmpty reports whether the method has no name, parameters or documentation.
func (m *Method) IsEmpty() bool {
	return m.name == "" && len(m.parameters) == 0 && m.doc.IsEmpty()
}

// Children returns the documentation followed by the parameters.
func (m *Method) Children() []Definition {
	children := make([]Definition, 0, len(m.parameters)+1)
	if m.doc != nil {
		children = append(children, m.doc)
	}
	for _, p := range m.parameters {
		children = append(children, p)
	}
	return children
}

// Structure is a named aggregate of properties and methods.
type Structure struct {
	name       string
	doc        *Documentation
	properties []*Property
	methods    []*Method
}

// NewStructure creates a structure. doc may be nil.
func NewStructure(name string, doc *Documentation, props []*Property, methods []*Method) *Structure {
	return &Structure{
		name:       name,
		doc:        doc,
		properties: append([]*Property(nil), props...),
		methods:    append([]*Method(nil), methods...),
	}
}

// Name returns the structure name.
func (s *Structure) Name() string { return s.name }

// Documentation returns the structure documentation, or nil.
func (s *Structure) Documentation() *Documentation { return s.doc }

// Properties returns a copy of the structure properties.
func (s *Structure) Properties() []*Property {
	return append([]*Property(nil), s.properties...)
}

// Methods returns a copy of the structure methods.
func (s *Structure) Methods() []*Method {
	return append([]*Method(nil), s.methods...)
}

// Kind returns KindStructure.
func (s *Structure) Kind() string { return KindStructure }

// IsEmpty reports whether the structure has no members and no documentation.
func (s *Structure) IsEmpty() bool {
	return len(s.properties) == 0 && len(s.methods) == 0 && s.doc.IsEmpty()
}

// Children returns the documentation, then properties, then methods.
func (s *Structure) Children() []Definition {
	children := make([]Definition, 0, len(s.properties)+len(s.methods)+1)
	if s.doc != nil {
		children = append(children, s.doc)
	}
	for _, p := range s.properties {
		children = append(children, p)
	}
	for _, m := range s.methods {
		children = append(children, m)
	}
	return children
}
