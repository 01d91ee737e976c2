package value

import "errors"

var (
	// ErrInvalidEnumValue is returned when a name is not part of a closed enumeration.
	ErrInvalidEnumValue = errors.New("invalid enum value")
	// ErrInvalidEnumType is returned when an enumeration is declared without names or with duplicates.
	ErrInvalidEnumType = errors.New("invalid enum type")
	// ErrInvalidModifierValue is returned when modifiers are neither a sequence of names nor nil.
	ErrInvalidModifierValue = errors.New("modifiers must be a sequence of names or nil")
	// ErrIncomparable is returned when two values have no defined order.
	ErrIncomparable = errors.New("values are not comparable")
)
