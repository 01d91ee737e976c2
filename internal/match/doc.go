// Package match provides name normalization, Levenshtein distance calculation,
// and candidate ranking used to suggest the closest known name when a field
// or enumeration value is not recognized.
//
// Key functions:
//   - NormalizeName: normalizes names for fuzzy matching
//   - Levenshtein: computes edit distance between strings
//   - RankCandidates: ranks known names by similarity to an unknown one
//   - DidYouMean: formats a suggestion suffix for error messages
package match
