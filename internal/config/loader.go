package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"dataid/internal/dataid"
	"dataid/internal/diagnostic"
)

// LoadFile loads and parses a YAML schema file from the given path.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read schema file %s", path)
	}

	f, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "schema file %s", path)
	}

	return f, nil
}

// Parse parses YAML data into a File.
func Parse(data []byte) (*File, error) {
	var f File

	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, errors.Wrap(err, "failed to parse schema YAML")
	}

	return &f, nil
}

// Load reads, validates and builds the schema in path.
func Load(path string) (*dataid.Schema, *diagnostic.Diagnostics, error) {
	f, err := LoadFile(path)
	if err != nil {
		return nil, nil, err
	}

	s, diags, err := f.Schema()
	if diags != nil {
		diags.WithSource(path)
	}

	if err != nil {
		return nil, diags, errors.Wrapf(err, "schema file %s", path)
	}

	return s, diags, nil
}

// Schema validates f and builds the schema it describes. The diagnostics
// are returned in both cases; warnings do not prevent building.
func (f *File) Schema() (*dataid.Schema, *diagnostic.Diagnostics, error) {
	diags := Validate(f)
	if diags.HasErrors() {
		return nil, diags, diags.Err()
	}

	fields := make([]dataid.Field, 0, len(f.Fields))

	for _, def := range f.Fields {
		field := dataid.Field{
			Name:       def.Name,
			Required:   def.Required,
			Default:    def.Default,
			Transitive: def.Transitive,
			Enum:       def.Enum,
		}

		if def.Type != "" {
			typ, _ := dataid.LookupType(def.Type)
			field.Type = typ
		}

		fields = append(fields, field)
	}

	s, err := dataid.NewSchema(fields...)
	if err != nil {
		return nil, diags, err
	}

	return s, diags, nil
}

// FromSchema describes s as a File.
func FromSchema(s *dataid.Schema) *File {
	f := &File{Fields: make([]FieldDef, 0, s.Len())}

	for _, field := range s.Fields() {
		def := FieldDef{
			Name:       field.Name,
			Required:   field.Required,
			Default:    field.Default,
			Transitive: field.Transitive,
		}

		if et, ok := field.EnumType(); ok {
			def.Enum = et.Names()
		} else if nt, ok := field.Type.(*dataid.NamedType); ok {
			def.Type = nt.Name
		}

		f.Fields = append(f.Fields, def)
	}

	return f
}

// Marshal serializes a File to YAML.
func Marshal(f *File) ([]byte, error) {
	return yaml.Marshal(f)
}

// WriteFile writes a File to the given path.
func WriteFile(f *File, path string) error {
	data, err := Marshal(f)
	if err != nil {
		return errors.Wrap(err, "failed to marshal schema")
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrapf(err, "failed to write schema file %s", path)
	}

	return nil
}
