package common

type number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// InRange checks if a value is within the specified range, both inclusive.
func InRange[T number](lo, value, hi T) bool {
	return lo <= value && value <= hi
}

// Covers checks that [outerLo, outerHi] encloses [innerLo, innerHi].
func Covers[T number](outerLo, outerHi, innerLo, innerHi T) bool {
	return outerLo <= innerLo && outerHi >= innerHi
}
