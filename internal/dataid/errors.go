package dataid

import (
	"errors"

	"dataid/value"
)

var (
	// ErrInvalidSchema is returned for malformed field declarations, such as a
	// field declaring both an enumeration and a type.
	ErrInvalidSchema = errors.New("invalid schema")
	// ErrMissingRequiredField is returned when no value resolves for a required field.
	ErrMissingRequiredField = errors.New("required field missing")
	// ErrImmutable is returned by every attempt to change an identifier once built.
	ErrImmutable = errors.New("cannot change a DataID")
	// ErrUnorderableType is returned when ordering meets a value with no zero substitute.
	ErrUnorderableType = errors.New("don't know how to order value")
	// ErrUnknownKeyType is returned when a lookup key is not a name, a wavelength, a DataID or a Query.
	ErrUnknownKeyType = errors.New("don't know how to interpret key")
	// ErrNoSuchField is returned by legacy attribute access to a field outside the schema.
	ErrNoSuchField = errors.New("no such field")
	// ErrInsufficientMetadata is returned when attributes share no field with a schema.
	ErrInsufficientMetadata = errors.New("metadata does not contain enough information to create a DataID")

	// ErrInvalidEnumValue is returned when a value is outside a field's enumeration.
	ErrInvalidEnumValue = value.ErrInvalidEnumValue
	// ErrInvalidModifierValue is returned when modifiers are not a sequence or nil.
	ErrInvalidModifierValue = value.ErrInvalidModifierValue
)
