// Package resolve stores items keyed by identifier and finds them back from
// partial keys: a name, a wavelength, a query or an identifier.
//
// A lookup builds a query from the key, keeps the stored identifiers the
// query matches and picks the closest one by rank. It fails with ErrNotFound
// when nothing acceptable is left and with ErrTooManyResults when the two
// closest candidates are equally close.
package resolve
