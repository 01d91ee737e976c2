package dataid

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"sync"

	"dataid/value"
)

// Converter coerces a raw attribute value into a field's value type.
type Converter interface {
	Convert(v any) (any, error)
}

// NamedType is a Converter that can be referred to by name from configuration.
type NamedType struct {
	Name    string
	convert func(v any) (any, error)
}

// NewNamedType wraps a conversion function.
func NewNamedType(name string, convert func(v any) (any, error)) *NamedType {
	return &NamedType{Name: name, convert: convert}
}

// Convert implements Converter.
func (t *NamedType) Convert(v any) (any, error) {
	return t.convert(v)
}

// Built-in field types.
var (
	WavelengthType = NewNamedType("wavelength", value.ConvertWavelength)
	ModifiersType  = NewNamedType("modifiers", value.ConvertModifiers)
	FloatType      = NewNamedType("float", convertFloat)
	IntType        = NewNamedType("int", convertInt)
	StringType     = NewNamedType("string", convertString)
)

var (
	typesMu sync.RWMutex
	types   = map[string]*NamedType{}
)

func init() {
	for _, t := range []*NamedType{WavelengthType, ModifiersType, FloatType, IntType, StringType} {
		RegisterType(t)
	}
}

// RegisterType makes t available to configuration under t.Name.
// Register types at startup, before schemas are loaded.
func RegisterType(t *NamedType) {
	typesMu.Lock()
	defer typesMu.Unlock()

	types[t.Name] = t
}

// LookupType returns the registered type called name.
func LookupType(name string) (*NamedType, bool) {
	typesMu.RLock()
	defer typesMu.RUnlock()

	t, ok := types[name]

	return t, ok
}

// TypeNames returns the registered type names in ascending order.
func TypeNames() []string {
	typesMu.RLock()
	defer typesMu.RUnlock()

	names := make([]string, 0, len(types))
	for n := range types {
		names = append(names, n)
	}

	slices.Sort(names)

	return names
}

func convertFloat(v any) (any, error) {
	switch x := v.(type) {
	case nil:
		return nil, nil
	case string:
		f, err := strconv.ParseFloat(x, 64)
		if err != nil {
			return nil, fmt.Errorf("cannot convert %q to float: %w", x, err)
		}

		return f, nil
	}

	if f, ok := value.ToFloat(v); ok {
		return f, nil
	}

	return nil, fmt.Errorf("cannot convert %v (%T) to float", v, v)
}

func convertInt(v any) (any, error) {
	switch x := v.(type) {
	case nil:
		return nil, nil
	case string:
		n, err := strconv.Atoi(x)
		if err != nil {
			return nil, fmt.Errorf("cannot convert %q to int: %w", x, err)
		}

		return n, nil
	}

	if f, ok := value.ToFloat(v); ok && f == math.Trunc(f) {
		return int(f), nil
	}

	return nil, fmt.Errorf("cannot convert %v (%T) to int", v, v)
}

func convertString(v any) (any, error) {
	switch x := v.(type) {
	case nil:
		return nil, nil
	case string:
		return x, nil
	case fmt.Stringer:
		return x.String(), nil
	}

	if f, ok := value.ToFloat(v); ok {
		return strconv.FormatFloat(f, 'g', -1, 64), nil
	}

	return nil, fmt.Errorf("cannot convert %v (%T) to string", v, v)
}
