// Package loader reads definition files into the definition model.
//
// Three formats are understood, chosen by file extension:
//
//   - .yaml, .yml: a structure document in YAML.
//   - .toml: the same document in TOML.
//   - .md: YAML frontmatter holding the structure document, with the
//     markdown body used as the structure documentation.
//
// A structure document looks like:
//
//	name: user
//	documentation: A registered user.
//	properties:
//	  - name: id
//	    type: int
//	methods:
//	  - name: rename
//	    parameters:
//	      - name: to
//	        type: string
//
// Unknown keys are rejected.
package loader

import (
	"bytes"
	"io"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/defcheck/internal/errors"
	"github.com/thoreinstein/defcheck/pkg/definition"
	"github.com/thoreinstein/defcheck/pkg/fileutil"
)

// document is the on-disk form of a structure.
type document struct {
	Name          string        `yaml:"name" toml:"name"`
	Documentation *string       `yaml:"documentation" toml:"documentation"`
	Properties    []propertyDoc `yaml:"properties" toml:"properties"`
	Methods       []methodDoc   `yaml:"methods" toml:"methods"`
}

type propertyDoc struct {
	Name          string  `yaml:"name" toml:"name"`
	Type          string  `yaml:"type" toml:"type"`
	Documentation *string `yaml:"documentation" toml:"documentation"`
}

type parameterDoc struct {
	Name string `yaml:"name" toml:"name"`
	Type string `yaml:"type" toml:"type"`
}

type methodDoc struct {
	Name          string         `yaml:"name" toml:"name"`
	Returns       string         `yaml:"returns" toml:"returns"`
	Documentation *string        `yaml:"documentation" toml:"documentation"`
	Parameters    []parameterDoc `yaml:"parameters" toml:"parameters"`
}

// Load reads the definition file at path.
func Load(path string) (*definition.Structure, error) {
	data, err := fileutil.ReadFileWithLimit(path)
	if err != nil {
		return nil, errors.Wrapf(err, "loading %s", path)
	}
	s, err := Decode(filepath.Ext(path), data)
	if err != nil {
		return nil, errors.Wrapf(err, "loading %s", path)
	}
	return s, nil
}

// Decode parses data in the format selected by ext, such as ".toml".
func Decode(ext string, data []byte) (*definition.Structure, error) {
	var (
		doc document
		err error
	)

	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		err = decodeYAML(data, &doc)
	case ".toml":
		err = decodeTOML(data, &doc)
	case ".md", ".markdown":
		err = decodeMarkdown(data, &doc)
	default:
		return nil, errors.Wrapf(errors.ErrUnsupportedFormat, "%q", ext)
	}
	if err != nil {
		return nil, err
	}

	return doc.structure(), nil
}

func decodeYAML(data []byte, doc *document) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(doc); err != nil && !errors.Is(err, io.EOF) {
		return errors.Wrap(err, "parsing YAML")
	}
	return nil
}

func decodeTOML(data []byte, doc *document) error {
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	return errors.Wrap(dec.Decode(doc), "parsing TOML")
}

func decodeMarkdown(data []byte, doc *document) error {
	matter, body, err := splitFrontmatter(data)
	if err != nil {
		return err
	}
	if err := decodeYAML(matter, doc); err != nil {
		return errors.Wrap(err, "frontmatter")
	}
	if doc.Documentation != nil {
		return errors.New("frontmatter: documentation must be given as the markdown body")
	}
	text := string(bytes.TrimSpace(body))
	doc.Documentation = &text
	return nil
}

func (d *document) structure() *definition.Structure {
	props := make([]*definition.Property, 0, len(d.Properties))
	for _, p := range d.Properties {
		props = append(props, definition.NewProperty(p.Name, p.Type, documentation(p.Documentation)))
	}

	methods := make([]*definition.Method, 0, len(d.Methods))
	for _, m := range d.Methods {
		params := make([]*definition.Parameter, 0, len(m.Parameters))
		for _, p := range m.Parameters {
			params = append(params, definition.NewParameter(p.Name, p.Type))
		}
		methods = append(methods, definition.NewMethod(m.Name, m.Returns, params, documentation(m.Documentation)))
	}

	return definition.NewStructure(d.Name, documentation(d.Documentation), props, methods)
}

// documentation maps an absent field to nil and a present one, even if
// blank, to a Documentation definition.
func documentation(text *string) *definition.Documentation {
	if text == nil {
		return nil
	}
	return definition.NewDocumentation(*text)
}
