package value

// WildcardMarker is the textual form of Wildcard accepted in raw queries.
const WildcardMarker = "*"

// WildcardValue is the type of Wildcard.
type WildcardValue struct{}

// Wildcard marks a query field as "anything": it matches every value and is
// left out of the query's hash.
var Wildcard = WildcardValue{}

// String returns "*".
func (WildcardValue) String() string { return WildcardMarker }

// IsWildcard reports whether v is Wildcard or the "*" marker string.
func IsWildcard(v any) bool {
	switch x := v.(type) {
	case WildcardValue:
		return true
	case string:
		return x == WildcardMarker
	}

	return false
}

// OneOf lists acceptable values for a query field. A plain slice in a query
// is a single tuple value, never a list of alternatives.
type OneOf []any

// Alternatives returns the acceptable values of a query field: the elements
// of a OneOf, or v itself.
func Alternatives(v any) []any {
	if o, ok := v.(OneOf); ok {
		return o
	}

	return []any{v}
}
