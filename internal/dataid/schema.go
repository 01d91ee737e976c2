package dataid

import (
	"fmt"
	"slices"

	"dataid/value"
)

// Field declares one identifying field.
type Field struct {
	Name string
	// Required fields must resolve to a value when an identifier is built.
	Required bool
	// Default is used when raw attributes lack the field. A non-nil default
	// always puts the field in the identifier.
	Default any
	// Transitive fields carry over to the queries for a product's dependencies.
	Transitive bool
	// Type coerces raw values. Mutually exclusive with Enum.
	Type Converter
	// Enum closes the field over these names, in priority order.
	Enum []string
}

// EnumType returns the field's enumeration once the field belongs to a Schema.
func (f Field) EnumType() (*value.EnumType, bool) {
	et, ok := f.Type.(*value.EnumType)
	return et, ok
}

// Schema is an ordered, read-only set of field declarations. Build schemas
// once at startup and share them; nothing mutates a Schema after NewSchema.
type Schema struct {
	fields []Field
	index  map[string]int
}

// NewSchema validates the declarations and turns every Enum into an
// enumeration Type, so fields read back from a Schema never carry Enum.
func NewSchema(fields ...Field) (*Schema, error) {
	s := &Schema{
		fields: make([]Field, 0, len(fields)),
		index:  make(map[string]int, len(fields)),
	}

	for _, f := range fields {
		if f.Name == "" {
			return nil, fmt.Errorf("%w: field with empty name", ErrInvalidSchema)
		}

		if _, dup := s.index[f.Name]; dup {
			return nil, fmt.Errorf("%w: field %s declared twice", ErrInvalidSchema, f.Name)
		}

		if len(f.Enum) > 0 {
			if f.Type != nil {
				return nil, fmt.Errorf("%w: cannot have both type and enum for the same id key %s",
					ErrInvalidSchema, f.Name)
			}

			et, err := value.NewEnumType(f.Name, f.Enum...)
			if err != nil {
				return nil, fmt.Errorf("%w: %w", ErrInvalidSchema, err)
			}

			f.Type = et
			f.Enum = nil
		}

		s.index[f.Name] = len(s.fields)
		s.fields = append(s.fields, f)
	}

	return s, nil
}

// MustSchema is like NewSchema but panics on error. For package-level schemas.
func MustSchema(fields ...Field) *Schema {
	s, err := NewSchema(fields...)
	if err != nil {
		panic(err)
	}

	return s
}

// Fields returns the declarations in order.
func (s *Schema) Fields() []Field {
	return slices.Clone(s.fields)
}

// Names returns the field names in order.
func (s *Schema) Names() []string {
	names := make([]string, len(s.fields))
	for i, f := range s.fields {
		names[i] = f.Name
	}

	return names
}

// Field returns the declaration for name.
func (s *Schema) Field(name string) (Field, bool) {
	i, ok := s.index[name]
	if !ok {
		return Field{}, false
	}

	return s.fields[i], true
}

// Has reports whether the schema declares name.
func (s *Schema) Has(name string) bool {
	_, ok := s.index[name]
	return ok
}

// Len returns the number of declared fields.
func (s *Schema) Len() int { return len(s.fields) }

// Curate turns raw attributes into identifier values. A field is kept when
// raw supplies it, it has a default, or it is required; required fields must
// resolve to a non-nil value. Values go through the field's Type when it has
// one. Empty input curates to an empty mapping without checking required
// fields.
func (s *Schema) Curate(raw map[string]any) (map[string]any, error) {
	curated := make(map[string]any, len(s.fields))
	if len(raw) == 0 {
		return curated, nil
	}

	for _, f := range s.fields {
		v, present := raw[f.Name]
		if !present && f.Default == nil && !f.Required {
			continue
		}

		if !present {
			v = f.Default
		}

		if f.Required && v == nil {
			return nil, fmt.Errorf("%w: %s", ErrMissingRequiredField, f.Name)
		}

		if f.Type != nil {
			converted, err := f.Type.Convert(v)
			if err != nil {
				return nil, fmt.Errorf("field %s: %w", f.Name, err)
			}

			v = converted
		}

		if v != nil {
			curated[f.Name] = value.Clone(v)
		}
	}

	return curated, nil
}

// New builds an identifier from raw attributes.
func (s *Schema) New(raw map[string]any) (*DataID, error) {
	curated, err := s.Curate(raw)
	if err != nil {
		return nil, err
	}

	return &DataID{schema: s, values: curated}, nil
}

// MustNew is like New but panics on error.
func (s *Schema) MustNew(raw map[string]any) *DataID {
	id, err := s.New(raw)
	if err != nil {
		panic(err)
	}

	return id
}

// Subset keeps the fields attrs supplies plus those that are required or
// defaulted: the schema for identifiers built from attrs.
func (s *Schema) Subset(attrs map[string]any) (*Schema, error) {
	var fields []Field

	for _, f := range s.fields {
		if _, ok := attrs[f.Name]; ok || f.Required || f.Default != nil {
			fields = append(fields, f)
		}
	}

	if len(fields) == 0 {
		return nil, ErrInsufficientMetadata
	}

	return &Schema{fields: fields, index: indexOf(fields)}, nil
}

// TransitiveNames returns the names of transitive fields, in order.
func (s *Schema) TransitiveNames() []string {
	var names []string

	for _, f := range s.fields {
		if f.Transitive {
			names = append(names, f.Name)
		}
	}

	return names
}

func (s *Schema) sharesRequired(keys []string) bool {
	for _, k := range keys {
		if f, ok := s.Field(k); ok && f.Required {
			return true
		}
	}

	return false
}

func indexOf(fields []Field) map[string]int {
	index := make(map[string]int, len(fields))
	for i, f := range fields {
		index[f.Name] = i
	}

	return index
}
