package match

import (
	"strings"
	"unicode"
)

// NormalizeName folds a field or enumeration name for fuzzy comparison:
// lower case, with separators (_, -, space, .) removed.
// "Brightness_Temperature", "brightness-temperature" and "BrightnessTemperature"
// all normalize to "brightnesstemperature".
func NormalizeName(s string) string {
	var b strings.Builder

	b.Grow(len(s))

	for _, r := range s {
		if isSeparator(r) {
			continue
		}

		b.WriteRune(unicode.ToLower(r))
	}

	return b.String()
}

// isSeparator returns true if the rune is a common separator.
func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == ' ' || r == '.'
}
