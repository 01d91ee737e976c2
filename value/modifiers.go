package value

import (
	"fmt"
	"slices"
)

// ModifierTuple is the ordered list of modifiers applied to a product.
// It compares equal to a plain []string with the same elements.
type ModifierTuple []string

// ConvertModifiers accepts nil, a ModifierTuple, a []string, or a []any of strings.
func ConvertModifiers(v any) (any, error) {
	switch x := v.(type) {
	case nil:
		return nil, nil
	case ModifierTuple:
		return slices.Clone(x), nil
	case []string:
		return ModifierTuple(slices.Clone(x)), nil
	case []any:
		out := make(ModifierTuple, 0, len(x))

		for _, item := range x {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("%w: element %v is %T", ErrInvalidModifierValue, item, item)
			}

			out = append(out, s)
		}

		return out, nil
	default:
		return nil, fmt.Errorf("%w, not %T", ErrInvalidModifierValue, v)
	}
}

// Len returns the number of modifiers.
func (m ModifierTuple) Len() int { return len(m) }

// Equal compares element-wise against another tuple or a plain sequence.
func (m ModifierTuple) Equal(other any) bool {
	o, ok := asTuple(other)

	return ok && slices.Equal(m, o)
}

// Compare orders lexicographically, shorter prefixes first.
func (m ModifierTuple) Compare(o ModifierTuple) int {
	return slices.Compare(m, o)
}

// asTuple reads a sequence of strings.
func asTuple(v any) ([]string, bool) {
	switch x := v.(type) {
	case ModifierTuple:
		return x, true
	case []string:
		return x, true
	case []any:
		out := make([]string, 0, len(x))

		for _, item := range x {
			s, ok := item.(string)
			if !ok {
				return nil, false
			}

			out = append(out, s)
		}

		return out, true
	}

	return nil, false
}
