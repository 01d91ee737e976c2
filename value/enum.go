package value

import (
	"fmt"
	"slices"

	"dataid/internal/common"
	"dataid/internal/match"
)

// EnumType is a closed set of names. Ordinals start at 1 in declaration
// order, so the first name has the highest priority when ranking.
type EnumType struct {
	name  string
	names []string
	index map[string]int
}

// NewEnumType declares a closed enumeration called name.
func NewEnumType(name string, names ...string) (*EnumType, error) {
	if len(names) == 0 {
		return nil, fmt.Errorf("%w: %s has no values", ErrInvalidEnumType, name)
	}

	if dups := common.Duplicates(names); len(dups) > 0 {
		return nil, fmt.Errorf("%w: %s declares %q more than once", ErrInvalidEnumType, name, dups[0])
	}

	t := &EnumType{
		name:  name,
		names: slices.Clone(names),
		index: make(map[string]int, len(names)),
	}
	for i, n := range names {
		t.index[n] = i + 1
	}

	return t, nil
}

// Name returns the enumeration's name (usually the field it belongs to).
func (t *EnumType) Name() string { return t.name }

// Names returns the declared names in ordinal order.
func (t *EnumType) Names() []string { return slices.Clone(t.names) }

// Lookup returns the member called name.
func (t *EnumType) Lookup(name string) (EnumValue, bool) {
	ord, ok := t.index[name]
	if !ok {
		return EnumValue{}, false
	}

	return EnumValue{typ: t, name: name, ordinal: ord}, true
}

// Convert turns a name (or a member of any enumeration with the same name)
// into a member of t. nil passes through.
func (t *EnumType) Convert(v any) (any, error) {
	var name string

	switch x := v.(type) {
	case nil:
		return nil, nil
	case string:
		name = x
	case EnumValue:
		name = x.name
	default:
		return nil, fmt.Errorf("%w: %v (%T) for %s", ErrInvalidEnumValue, v, v, t.name)
	}

	ev, ok := t.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q is not one of %v for %s%s",
			ErrInvalidEnumValue, name, t.names, t.name, match.DidYouMean(name, t.names))
	}

	return ev, nil
}

// EnumValue is a member of an EnumType. It is equal to, and hashes like, its
// bare name, so members of two enumerations sharing a name are interchangeable.
type EnumValue struct {
	typ     *EnumType
	name    string
	ordinal int
}

// Name returns the member name.
func (e EnumValue) Name() string { return e.name }

// Type returns the enumeration e belongs to.
func (e EnumValue) Type() *EnumType { return e.typ }

// Ordinal returns the 1-based declaration position.
func (e EnumValue) Ordinal() float64 { return float64(e.ordinal) }

// Equal compares by name against strings and other members.
func (e EnumValue) Equal(other any) bool {
	switch o := other.(type) {
	case string:
		return e.name == o
	case EnumValue:
		return e.name == o.name
	default:
		return false
	}
}

// String returns the member name.
func (e EnumValue) String() string { return e.name }

// MarshalText renders the member as its name.
func (e EnumValue) MarshalText() ([]byte, error) {
	return []byte(e.name), nil
}

func (e EnumValue) repr() string {
	if e.typ == nil {
		return "<" + e.name + ">"
	}

	return "<" + e.typ.name + "." + e.name + ">"
}
