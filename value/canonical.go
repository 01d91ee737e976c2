package value

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
)

// CanonicalKey encodes v so that two values share a key exactly when they
// are the same identifier value. Enumeration members encode like their names,
// tuples like plain string slices and numbers independently of their Go type.
func CanonicalKey(v any) string {
	var b strings.Builder

	writeKey(&b, v)

	return b.String()
}

// Hash hashes the canonical key of v.
func Hash(v any) uint64 {
	return xxhash.Sum64String(CanonicalKey(v))
}

func writeKey(b *strings.Builder, v any) {
	switch x := v.(type) {
	case nil:
		b.WriteString("z;")
	case string:
		writeString(b, x)
	case EnumValue:
		writeString(b, x.name)
	case WavelengthRange:
		fmt.Fprintf(b, "w(%s,%s,%s,", formatFloat(x.Min), formatFloat(x.Central), formatFloat(x.Max))
		writeString(b, x.unit())
		b.WriteString(")")
	case ModifierTuple:
		writeTuple(b, x)
	case []string:
		writeTuple(b, x)
	case OneOf:
		keys := make([]string, 0, len(x))
		for _, item := range x {
			keys = append(keys, CanonicalKey(item))
		}

		slices.Sort(keys)
		fmt.Fprintf(b, "o%d(%s)", len(keys), strings.Join(keys, ""))
	case WildcardValue:
		b.WriteString("*;")
	case time.Time:
		b.WriteString("d" + x.UTC().Format(time.RFC3339Nano) + ";")
	case bool:
		b.WriteString("b" + strconv.FormatBool(x) + ";")
	default:
		if f, ok := ToFloat(x); ok {
			b.WriteString("n" + formatFloat(f) + ";")
			return
		}

		fmt.Fprintf(b, "x%T:%v;", x, x)
	}
}

func writeString(b *strings.Builder, s string) {
	b.WriteString("s" + strconv.Itoa(len(s)) + ":" + s)
}

func writeTuple(b *strings.Builder, items []string) {
	b.WriteString("t" + strconv.Itoa(len(items)) + "(")

	for _, s := range items {
		writeString(b, s)
	}

	b.WriteString(")")
}

// Repr renders v the way identifiers and queries print their fields:
// quoted strings, <enum.member>, parenthesized tuples.
func Repr(v any) string {
	switch x := v.(type) {
	case nil:
		return "None"
	case string:
		return "'" + x + "'"
	case EnumValue:
		return x.repr()
	case WildcardValue:
		return "'*'"
	case WavelengthRange:
		return fmt.Sprintf("WavelengthRange(min=%s, central=%s, max=%s, unit='%s')",
			formatFloat(x.Min), formatFloat(x.Central), formatFloat(x.Max), x.unit())
	case ModifierTuple:
		return reprTuple(x)
	case []string:
		return reprTuple(x)
	case OneOf:
		parts := make([]string, 0, len(x))
		for _, item := range x {
			parts = append(parts, Repr(item))
		}

		return "[" + strings.Join(parts, ", ") + "]"
	}

	if f, ok := ToFloat(v); ok {
		return formatFloat(f)
	}

	return fmt.Sprint(v)
}

func reprTuple(items []string) string {
	switch len(items) {
	case 0:
		return "()"
	case 1:
		return "('" + items[0] + "',)"
	}

	return "('" + strings.Join(items, "', '") + "')"
}
