package metadata

import (
	"reflect"
	"strings"
	"time"

	"dataid/value"
)

type options struct {
	averageTimes bool
}

// Option configures Combine.
type Option func(*options)

// WithAverageTimes sets whether "time" keys holding instants are averaged.
// It is on by default.
func WithAverageTimes(on bool) Option {
	return func(o *options) { o.averageTimes = on }
}

// Combine returns the attributes shared by all inputs. A key is kept when
// every input has it and:
//   - for arrays, all inputs hold the same array;
//   - for non-empty lists of arrays, the lists hold the same arrays
//     position by position;
//   - for keys containing "time" whose values are all instants, always
//     (the value is their mean) unless averaging is off;
//   - otherwise, all values equal the first.
//
// The value kept is the first input's. Keys failing their test are left out.
func Combine(inputs []map[string]any, opts ...Option) map[string]any {
	o := options{averageTimes: true}
	for _, opt := range opts {
		opt(&o)
	}

	shared := map[string]any{}
	if len(inputs) == 0 {
		return shared
	}

	for k := range inputs[0] {
		values, ok := collect(inputs, k)
		if !ok {
			continue
		}

		if v, ok := combineKey(k, values, o); ok {
			shared[k] = v
		}
	}

	return shared
}

// CombineObjects is Combine over the attributes of objs.
func CombineObjects(objs []Object, opts ...Option) map[string]any {
	inputs := make([]map[string]any, 0, len(objs))
	for _, obj := range objs {
		inputs = append(inputs, obj.Attrs())
	}

	return Combine(inputs, opts...)
}

func collect(inputs []map[string]any, key string) ([]any, bool) {
	values := make([]any, 0, len(inputs))

	for _, in := range inputs {
		v, ok := in[key]
		if !ok {
			return nil, false
		}

		values = append(values, v)
	}

	return values, true
}

func combineKey(key string, values []any, o options) (any, bool) {
	switch {
	case anyArray(values):
		return values[0], allSame(values)
	case anyArrayList(values):
		return values[0], sameArrayLists(values)
	case o.averageTimes && strings.Contains(key, "time"):
		if times, ok := asTimes(values); ok {
			return AverageTimes(times), true
		}
	}

	for _, v := range values[1:] {
		if !value.Equal(values[0], v) {
			return nil, false
		}
	}

	return values[0], true
}

// AverageTimes returns the mean instant, in the location of the first one.
func AverageTimes(times []time.Time) time.Time {
	if len(times) == 0 {
		return time.Time{}
	}

	var total time.Duration

	for _, t := range times[1:] {
		total += t.Sub(times[0])
	}

	return times[0].Add(total / time.Duration(len(times)))
}

func asTimes(values []any) ([]time.Time, bool) {
	times := make([]time.Time, 0, len(values))

	for _, v := range values {
		t, ok := v.(time.Time)
		if !ok {
			return nil, false
		}

		times = append(times, t)
	}

	return times, true
}

func isArray(v any) bool {
	_, ok := v.(Array)
	return ok
}

func anyArray(values []any) bool {
	for _, v := range values {
		if isArray(v) {
			return true
		}
	}

	return false
}

func anyArrayList(values []any) bool {
	for _, v := range values {
		items, ok := elements(v)
		if !ok || len(items) == 0 {
			continue
		}

		all := true

		for _, item := range items {
			if !isArray(item) {
				all = false
				break
			}
		}

		if all {
			return true
		}
	}

	return false
}

func allSame(values []any) bool {
	for _, v := range values[1:] {
		if !sameObject(v, values[0]) {
			return false
		}
	}

	return true
}

func sameArrayLists(values []any) bool {
	ref, ok := elements(values[0])
	if !ok {
		return false
	}

	for _, v := range values[1:] {
		items, ok := elements(v)
		if !ok {
			return false
		}

		for i := range min(len(items), len(ref)) {
			if !sameObject(items[i], ref[i]) {
				return false
			}
		}
	}

	return true
}

// elements reads any slice or array as a list of values.
func elements(v any) ([]any, bool) {
	if items, ok := v.([]any); ok {
		return items, true
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}

	items := make([]any, rv.Len())
	for i := range items {
		items[i] = rv.Index(i).Interface()
	}

	return items, true
}

// sameObject reports identity: reference values sharing the same pointer.
// Plain values have no identity and are never the same object.
func sameObject(a, b any) bool {
	ra, rb := reflect.ValueOf(a), reflect.ValueOf(b)
	if !ra.IsValid() || !rb.IsValid() || ra.Type() != rb.Type() {
		return false
	}

	switch ra.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return ra.Pointer() == rb.Pointer()
	case reflect.Slice:
		return ra.Pointer() == rb.Pointer() && ra.Len() == rb.Len()
	default:
		return false
	}
}
