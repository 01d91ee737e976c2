// Package diagnostic provides structured errors and warnings for schema
// definitions loaded from configuration.
//
// Key capabilities:
//   - Collecting every problem of a schema instead of stopping at the first
//   - Stable codes for each kind of problem
//   - "Did you mean" suggestions for misspelled type names
//   - Conversion to a single error wrapping dataid.ErrInvalidSchema
package diagnostic
