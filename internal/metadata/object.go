package metadata

import (
	"fmt"

	"dataid/internal/dataid"
)

// Attribute keys with a meaning to this package.
const (
	// IDAttr holds an object's *dataid.DataID once it has been assigned one.
	IDAttr = "_dataid"
	// IDKeysAttr holds the *dataid.Schema to build an object's identifier with.
	IDKeysAttr = "_dataid_keys"
	// AncillaryAttr holds the ancillary objects of an object.
	AncillaryAttr = "ancillary_variables"
)

// Object is anything carrying an attribute map. Attrs returns the live map.
type Object interface {
	Attrs() map[string]any
}

// Attributes is the simplest Object.
type Attributes map[string]any

// Attrs returns a itself.
func (a Attributes) Attrs() map[string]any { return a }

// Array is implemented by array-like attribute values.
type Array interface {
	Shape() []int
}

// IDOf returns the identifier stored on obj, or builds one from its
// attributes with the schema in IDKeysAttr (dataid.MinimalKeys when unset).
func IDOf(obj Object) (*dataid.DataID, error) {
	attrs := obj.Attrs()

	if id, ok := attrs[IDAttr].(*dataid.DataID); ok {
		return id, nil
	}

	return newID(schemaOf(attrs, nil), attrs)
}

func schemaOf(attrs map[string]any, fallback *dataid.Schema) *dataid.Schema {
	if s, ok := attrs[IDKeysAttr].(*dataid.Schema); ok {
		return s
	}

	if fallback != nil {
		return fallback
	}

	return dataid.MinimalKeys
}

func newID(s *dataid.Schema, attrs map[string]any) (*dataid.DataID, error) {
	id, err := s.New(attrs)
	if err != nil {
		return nil, fmt.Errorf("identifier from attributes: %w", err)
	}

	return id, nil
}
