package value

import (
	"time"
)

//go:generate go tool stringer -type=Kind -output=kind_string.go

// Kind classifies a field value.
type Kind int

const (
	_ Kind = iota // skip zero value, use it as a default (invalid) value for Kind

	KindNull
	KindNumber
	KindString
	KindEnum
	KindWavelength
	KindModifiers
	KindTime
	KindOther

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

// KindOf reports the kind of v.
func KindOf(v any) Kind {
	switch v.(type) {
	case nil:
		return KindNull
	case string:
		return KindString
	case EnumValue:
		return KindEnum
	case WavelengthRange:
		return KindWavelength
	case ModifierTuple, []string:
		return KindModifiers
	case time.Time:
		return KindTime
	}

	if IsNumber(v) {
		return KindNumber
	}

	return KindOther
}

// IsNumeric reports whether values of this kind order numerically.
// Enumeration values order by their ordinal.
func (k Kind) IsNumeric() bool {
	return k == KindNumber || k == KindEnum
}

// IsTuple reports whether values of this kind order as tuples.
func (k Kind) IsTuple() bool {
	return k == KindWavelength || k == KindModifiers
}

// HasZero reports whether the kind has a zero substitute for ordering
// identifiers that lack the field.
func (k Kind) HasZero() bool {
	return k.IsNumeric() || k.IsTuple() || k == KindString
}
