package value

import (
	"reflect"
	"slices"
)

// Clone returns a deep copy of the slices and maps in v. Scalars and value
// kinds without reference fields are returned as is.
func Clone(v any) any {
	switch x := v.(type) {
	case nil, string, EnumValue, WavelengthRange, WildcardValue:
		return v
	case ModifierTuple:
		return slices.Clone(x)
	case []string:
		return slices.Clone(x)
	case OneOf:
		return OneOf(cloneList(x))
	case []any:
		return cloneList(x)
	case map[string]any:
		if x == nil {
			return x
		}

		out := make(map[string]any, len(x))
		for k, item := range x {
			out[k] = Clone(item)
		}

		return out
	}

	rv := reflect.ValueOf(v)

	switch rv.Kind() {
	case reflect.Slice:
		if rv.IsNil() {
			return v
		}

		out := reflect.MakeSlice(rv.Type(), rv.Len(), rv.Len())
		for i := range rv.Len() {
			setClone(out.Index(i), rv.Index(i))
		}

		return out.Interface()
	case reflect.Map:
		if rv.IsNil() {
			return v
		}

		out := reflect.MakeMapWithSize(rv.Type(), rv.Len())

		iter := rv.MapRange()
		for iter.Next() {
			elem := reflect.New(rv.Type().Elem()).Elem()
			setClone(elem, iter.Value())
			out.SetMapIndex(iter.Key(), elem)
		}

		return out.Interface()
	}

	return v
}

func cloneList(items []any) []any {
	if items == nil {
		return nil
	}

	out := make([]any, len(items))
	for i, item := range items {
		out[i] = Clone(item)
	}

	return out
}

// setClone stores a copy of src in dst, leaving dst zero for nil elements.
func setClone(dst, src reflect.Value) {
	c := Clone(src.Interface())
	if c == nil {
		return
	}

	dst.Set(reflect.ValueOf(c))
}
