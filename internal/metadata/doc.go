// Package metadata combines the attributes of data objects and walks the
// ancillary objects attached to them.
//
// Attributes are plain maps. Array-like values (anything implementing Array)
// are compared by identity, never by content: two inputs share an array
// attribute only when they hold the very same array.
package metadata
