package value

import (
	"fmt"
	"math"
	"strconv"

	"dataid/internal/common"
)

// DefaultUnit is the unit assumed when a WavelengthRange does not name one.
const DefaultUnit = "µm"

// WavelengthRange is a (min, central, max) band with a unit. No unit
// conversion is done; the unit only decides whether two ranges are comparable.
// Callers keep Min <= Central <= Max.
type WavelengthRange struct {
	Min     float64
	Central float64
	Max     float64
	Unit    string
}

// NewWavelengthRange returns a range in DefaultUnit.
func NewWavelengthRange(lo, central, hi float64) WavelengthRange {
	return WavelengthRange{Min: lo, Central: central, Max: hi, Unit: DefaultUnit}
}

func (w WavelengthRange) unit() string {
	if w.Unit == "" {
		return DefaultUnit
	}

	return w.Unit
}

// Len is 4: the range is a (min, central, max, unit) tuple.
func (w WavelengthRange) Len() int { return 4 }

// Contains reports whether a number falls inside the range, or whether
// another range in the same unit lies within it.
func (w WavelengthRange) Contains(other any) bool {
	if o, ok := other.(WavelengthRange); ok {
		if w.unit() != o.unit() {
			return false
		}

		return common.Covers(w.Min, w.Max, o.Min, o.Max)
	}

	f, ok := ToFloat(other)

	return ok && common.InRange(w.Min, f, w.Max)
}

// Equal is true for a number inside the range, for a 3-element sequence equal
// to (Min, Central, Max), and for a same-unit range contained in w.
func (w WavelengthRange) Equal(other any) bool {
	if other == nil {
		return false
	}

	if triple, ok := asTriple(other); ok {
		return triple == [3]float64{w.Min, w.Central, w.Max}
	}

	return w.Contains(other)
}

// Less orders lexicographically on (Min, Central, Max, Unit); nothing is less than nil.
func (w WavelengthRange) Less(other any) bool {
	o, ok := other.(WavelengthRange)

	return ok && w.Compare(o) < 0
}

// Greater orders lexicographically on (Min, Central, Max, Unit); every range is greater than nil.
func (w WavelengthRange) Greater(other any) bool {
	if other == nil {
		return true
	}

	o, ok := other.(WavelengthRange)

	return ok && w.Compare(o) > 0
}

// Compare orders lexicographically on (Min, Central, Max, Unit).
func (w WavelengthRange) Compare(o WavelengthRange) int {
	for _, pair := range [][2]float64{{w.Min, o.Min}, {w.Central, o.Central}, {w.Max, o.Max}} {
		switch {
		case pair[0] < pair[1]:
			return -1
		case pair[0] > pair[1]:
			return 1
		}
	}

	switch {
	case w.unit() < o.unit():
		return -1
	case w.unit() > o.unit():
		return 1
	}

	return 0
}

// Distance is the gap between central wavelengths, or +Inf when v is not
// equal to the range. v may be a number, a 3-element sequence or a range.
func (w WavelengthRange) Distance(v any) float64 {
	if !w.Equal(v) {
		return math.Inf(1)
	}

	if o, ok := v.(WavelengthRange); ok {
		return math.Abs(o.Central - w.Central)
	}

	if triple, ok := asTriple(v); ok {
		return math.Abs(triple[1] - w.Central)
	}

	f, _ := ToFloat(v)

	return math.Abs(f - w.Central)
}

// String formats as "0.6 µm (0.5-0.7 µm)".
func (w WavelengthRange) String() string {
	u := w.unit()

	return fmt.Sprintf("%s %s (%s-%s %s)", formatFloat(w.Central), u, formatFloat(w.Min), formatFloat(w.Max), u)
}

// MarshalYAML renders the range as a [min, central, max, unit] sequence.
func (w WavelengthRange) MarshalYAML() (any, error) {
	return []any{w.Min, w.Central, w.Max, w.unit()}, nil
}

// ConvertWavelength builds a WavelengthRange from a 3- or 4-element sequence
// (the optional fourth element is the unit). Numbers and ranges pass through.
func ConvertWavelength(v any) (any, error) {
	switch x := v.(type) {
	case nil, WavelengthRange:
		return v, nil
	case *WavelengthRange:
		return *x, nil
	}

	if IsNumber(v) {
		return v, nil
	}

	if triple, ok := asTriple(v); ok {
		return WavelengthRange{Min: triple[0], Central: triple[1], Max: triple[2], Unit: DefaultUnit}, nil
	}

	if items, ok := v.([]any); ok && len(items) == 4 {
		triple, ok := asTriple(items[:3])
		unit, isStr := items[3].(string)

		if ok && isStr {
			return WavelengthRange{Min: triple[0], Central: triple[1], Max: triple[2], Unit: unit}, nil
		}
	}

	return nil, fmt.Errorf("cannot convert %v (%T) to a wavelength range", v, v)
}

// asTriple reads a 3-element numeric sequence.
func asTriple(v any) ([3]float64, bool) {
	var out [3]float64

	switch x := v.(type) {
	case [3]float64:
		return x, true
	case []float64:
		if len(x) != 3 {
			return out, false
		}

		copy(out[:], x)

		return out, true
	case []any:
		if len(x) != 3 {
			return out, false
		}

		for i, item := range x {
			f, ok := ToFloat(item)
			if !ok {
				return out, false
			}

			out[i] = f
		}

		return out, true
	}

	return out, false
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
