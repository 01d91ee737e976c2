// Package value defines the kinds of values an identifier field can hold and
// the comparison rules between them.
//
// Besides plain numbers and strings, identifiers carry three structured kinds:
//   - EnumValue: a name from a closed EnumType, equal to its bare name string
//   - WavelengthRange: (min, central, max, unit), equal to any number it contains
//   - ModifierTuple: an ordered list of modifier names
//
// Queries add two markers that never appear in identifiers: Wildcard, which
// matches anything, and OneOf, a list of acceptable values.
//
// Equal implements the loose, type-aware equality used for matching; Same and
// CanonicalKey implement the strict identity used for hashing; Compare orders
// values of the same kind.
package value
