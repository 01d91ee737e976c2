package value

import (
	"cmp"
	"fmt"
	"reflect"
	"strings"
	"time"
)

// Equaler is implemented by values with their own matching rule.
type Equaler interface {
	Equal(other any) bool
}

// Distancer is implemented by values that measure how far a query value is
// from them. +Inf means "not acceptable".
type Distancer interface {
	Distance(query any) float64
}

// Ordinal is implemented by values with a numeric rank (enumeration members).
type Ordinal interface {
	Ordinal() float64
}

// Sized is implemented by tuple values, ranges included.
type Sized interface {
	Len() int
}

var (
	_ Equaler   = EnumValue{}
	_ Ordinal   = EnumValue{}
	_ Equaler   = WavelengthRange{}
	_ Distancer = WavelengthRange{}
	_ Sized     = WavelengthRange{}
	_ Equaler   = ModifierTuple{}
	_ Sized     = ModifierTuple{}
)

// IsNumber reports whether v is a Go integer or floating point number.
func IsNumber(v any) bool {
	_, ok := ToFloat(v)
	return ok
}

// ToFloat converts any integer or floating point number to float64.
func ToFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case int:
		return float64(x), true
	case int8:
		return float64(x), true
	case int16:
		return float64(x), true
	case int32:
		return float64(x), true
	case int64:
		return float64(x), true
	case uint:
		return float64(x), true
	case uint8:
		return float64(x), true
	case uint16:
		return float64(x), true
	case uint32:
		return float64(x), true
	case uint64:
		return float64(x), true
	case float32:
		return float64(x), true
	case float64:
		return x, true
	}

	return 0, false
}

// Numeric returns the numeric magnitude of a number or an enumeration member.
func Numeric(v any) (float64, bool) {
	if o, ok := v.(Ordinal); ok {
		return o.Ordinal(), true
	}

	return ToFloat(v)
}

// Equal is the loose equality used when matching a field value a against a
// query value b: enumeration members equal their names, ranges equal the
// numbers they contain, tuples equal plain sequences and numbers compare
// across Go types.
func Equal(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	if e, ok := a.(Equaler); ok {
		return e.Equal(b)
	}

	if e, ok := b.(Equaler); ok {
		return e.Equal(a)
	}

	if fa, ok := ToFloat(a); ok {
		fb, ok := ToFloat(b)
		return ok && fa == fb
	}

	if ta, ok := a.(time.Time); ok {
		tb, ok := b.(time.Time)
		return ok && ta.Equal(tb)
	}

	return reflect.DeepEqual(a, b)
}

// Same is the strict equality behind identifier equality and hashing.
func Same(a, b any) bool {
	return CanonicalKey(a) == CanonicalKey(b)
}

// Zero returns the substitute used when ordering identifiers that lack a
// field the other side has: 0 for numbers and enumeration members, "" for
// strings and the empty tuple for tuples.
func Zero(v any) (any, bool) {
	k := KindOf(v)

	switch {
	case k.IsNumeric():
		return 0, true
	case k == KindString:
		return "", true
	case k.IsTuple():
		return ModifierTuple{}, true
	}

	return nil, false
}

// Compare orders two values of compatible kinds.
func Compare(a, b any) (int, error) {
	ka, kb := KindOf(a), KindOf(b)

	switch {
	case ka.IsNumeric() && kb.IsNumeric():
		fa, _ := Numeric(a)
		fb, _ := Numeric(b)

		return cmp.Compare(fa, fb), nil
	case ka == KindString && kb == KindString:
		return strings.Compare(a.(string), b.(string)), nil
	case ka == KindWavelength && kb == KindWavelength:
		return a.(WavelengthRange).Compare(b.(WavelengthRange)), nil
	case ka == KindModifiers && kb == KindModifiers:
		ta, _ := asTuple(a)
		tb, _ := asTuple(b)

		return ModifierTuple(ta).Compare(tb), nil
	case ka == KindWavelength && kb == KindModifiers:
		if tb, _ := asTuple(b); len(tb) == 0 {
			return 1, nil
		}
	case ka == KindModifiers && kb == KindWavelength:
		if ta, _ := asTuple(a); len(ta) == 0 {
			return -1, nil
		}
	case ka == KindTime && kb == KindTime:
		return a.(time.Time).Compare(b.(time.Time)), nil
	}

	if Same(a, b) {
		return 0, nil
	}

	return 0, fmt.Errorf("%w: %s and %s", ErrIncomparable, ka, kb)
}
