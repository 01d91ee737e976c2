package dataid

import (
	"fmt"

	"dataid/value"
)

// FilteredQuery builds the query for a lookup key. key may be a *DataID, a
// *Query (its wildcards are dropped), a name or a wavelength. Fields of filter that key does not set are
// added, except wildcards.
func FilteredQuery(key any, filter *Query) (*Query, error) {
	var pairs []Pair

	switch k := key.(type) {
	case *DataID:
		pairs = k.Pairs()
	case *Query:
		for _, p := range k.Pairs() {
			if !value.IsWildcard(p.Value) {
				pairs = append(pairs, p)
			}
		}
	case string:
		pairs = []Pair{{Key: "name", Value: k}}
	default:
		if !value.IsNumber(key) {
			return nil, fmt.Errorf("%w: %T", ErrUnknownKeyType, key)
		}

		pairs = []Pair{{Key: "wavelength", Value: key}}
	}

	q := NewQuery(pairs...)
	if filter == nil {
		return q, nil
	}

	for _, p := range filter.Pairs() {
		if value.IsWildcard(p.Value) || q.Has(p.Key) {
			continue
		}

		pairs = append(pairs, p)
	}

	return NewQuery(pairs...), nil
}

// DepFilter drops from q every field d's schema declares as non-transitive.
// The result is the filter for the dependencies of the product d identifies.
func (d *DataID) DepFilter(q Record) *Query {
	var pairs []Pair

	for _, k := range q.Keys() {
		if f, ok := d.schema.Field(k); ok && !f.Transitive {
			continue
		}

		v, _ := q.Get(k)
		pairs = append(pairs, Pair{Key: k, Value: v})
	}

	return NewQuery(pairs...)
}

// TransitiveQuery keeps the transitive fields of d as a query.
func (d *DataID) TransitiveQuery() *Query {
	plain := d.ToMap()

	var pairs []Pair

	for _, k := range d.schema.TransitiveNames() {
		if v, ok := plain[k]; ok {
			pairs = append(pairs, Pair{Key: k, Value: v})
		}
	}

	return NewQuery(pairs...)
}

// KeysFromConfig returns the part of shared that applies to a product
// configured with attrs.
func KeysFromConfig(shared *Schema, attrs map[string]any) (*Schema, error) {
	return shared.Subset(attrs)
}
