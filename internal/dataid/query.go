package dataid

import (
	"slices"
	"strings"
	"sync"

	"github.com/cespare/xxhash/v2"

	"dataid/internal/common"
	"dataid/value"
)

// Pair is one query field.
type Pair struct {
	Key   string
	Value any
}

// Query partially specifies an identifier. Field values are concrete values,
// value.OneOf lists of acceptable values, or value.Wildcard. A nil value
// means "absent" when matching and "unknown" when comparing queries.
// A Query is immutable.
type Query struct {
	fields []string
	values map[string]any

	hashOnce sync.Once
	hash     uint64
}

// NewQuery builds a query keeping the order of pairs. The "*" string is read
// as value.Wildcard. A repeated key keeps its first position and last value.
func NewQuery(pairs ...Pair) *Query {
	q := &Query{values: make(map[string]any, len(pairs))}

	for _, p := range pairs {
		if _, seen := q.values[p.Key]; !seen {
			q.fields = append(q.fields, p.Key)
		}

		q.values[p.Key] = normalizeQueryValue(p.Value)
	}

	return q
}

// QueryFromMap builds a query with fields in ascending key order.
func QueryFromMap(m map[string]any) *Query {
	pairs := make([]Pair, 0, len(m))
	for _, k := range common.SortedKeys(m) {
		pairs = append(pairs, Pair{Key: k, Value: m[k]})
	}

	return NewQuery(pairs...)
}

// QueryFromID builds a query asking for exactly the fields of id.
func QueryFromID(id *DataID) *Query {
	return NewQuery(id.Pairs()...)
}

// Pairs returns the identifier's fields in schema order, enumeration members as names.
func (d *DataID) Pairs() []Pair {
	plain := d.ToMap()
	pairs := make([]Pair, 0, len(plain))

	for _, k := range d.Keys() {
		pairs = append(pairs, Pair{Key: k, Value: plain[k]})
	}

	return pairs
}

func normalizeQueryValue(v any) any {
	if value.IsWildcard(v) {
		return value.Wildcard
	}

	return value.Clone(v)
}

// With returns a copy of q with key set to v.
func (q *Query) With(key string, v any) *Query {
	return NewQuery(append(q.Pairs(), Pair{Key: key, Value: v})...)
}

// Get returns the value of key.
func (q *Query) Get(key string) (any, bool) {
	v, ok := q.values[key]
	if !ok {
		return nil, false
	}

	return value.Clone(v), true
}

// Value returns the value of key, or nil.
func (q *Query) Value(key string) any {
	v, _ := q.Get(key)
	return v
}

// Has reports whether the query names key.
func (q *Query) Has(key string) bool {
	_, ok := q.values[key]
	return ok
}

// Keys returns the fields in query order.
func (q *Query) Keys() []string {
	return slices.Clone(q.fields)
}

// Len returns the number of fields.
func (q *Query) Len() int { return len(q.fields) }

// Pairs returns the fields in query order.
func (q *Query) Pairs() []Pair {
	pairs := make([]Pair, 0, len(q.fields))
	for _, k := range q.fields {
		pairs = append(pairs, Pair{Key: k, Value: value.Clone(q.values[k])})
	}

	return pairs
}

// ToMap returns the fields as a map. With trim, wildcard fields are left out.
func (q *Query) ToMap(trim bool) map[string]any {
	out := make(map[string]any, len(q.fields))

	for _, k := range q.fields {
		v := q.values[k]
		if trim && value.IsWildcard(v) {
			continue
		}

		out[k] = value.Clone(v)
	}

	return out
}

// Equal reports whether q and other share at least one field and agree on
// every shared field. Nil query values are not checked and wildcards on
// either side agree with anything.
func (q *Query) Equal(other Record) bool {
	if other == nil {
		return false
	}

	shared := false

	for _, k := range q.fields {
		ov, ok := other.Get(k)
		if !ok {
			continue
		}

		shared = true

		qv := q.values[k]
		if qv == nil {
			continue
		}

		if !compatible(ov, qv) {
			return false
		}
	}

	return shared
}

func compatible(a, b any) bool {
	if value.IsWildcard(a) || value.IsWildcard(b) {
		return true
	}

	for _, x := range value.Alternatives(a) {
		for _, y := range value.Alternatives(b) {
			if value.Equal(x, y) {
				return true
			}
		}
	}

	return false
}

// Hash hashes the non-wildcard fields in key order; OneOf values hash
// independently of their element order.
func (q *Query) Hash() uint64 {
	q.hashOnce.Do(func() {
		h := xxhash.New()

		for _, k := range common.SortedKeys(q.values) {
			v := q.values[k]
			if value.IsWildcard(v) {
				continue
			}

			_, _ = h.WriteString(k)
			_, _ = h.WriteString("\x00")
			_, _ = h.WriteString(value.CanonicalKey(v))
			_, _ = h.WriteString("\x00")
		}

		q.hash = h.Sum64()
	})

	return q.hash
}

// String renders the query as DataQuery(name='ch1', calibration='*').
func (q *Query) String() string {
	items := make([]string, 0, len(q.fields))
	for _, k := range q.fields {
		items = append(items, k+"="+value.Repr(q.values[k]))
	}

	return "DataQuery(" + strings.Join(items, ", ") + ")"
}

// Matches reports whether id satisfies q. When q names a field id's schema
// marks required, only fields present in id are checked; otherwise every
// field id's schema declares is. No checked field means no match.
func (q *Query) Matches(id *DataID) bool {
	var keys []string

	if id.schema.sharesRequired(q.fields) {
		for _, k := range q.fields {
			if id.Has(k) {
				keys = append(keys, k)
			}
		}
	} else {
		for _, k := range q.fields {
			if id.schema.Has(k) {
				keys = append(keys, k)
			}
		}
	}

	if len(keys) == 0 {
		return false
	}

	for _, k := range keys {
		if !q.matchValue(k, id.values[k]) {
			return false
		}
	}

	return true
}

func (q *Query) matchValue(key string, idVal any) bool {
	qv := q.values[key]
	if value.IsWildcard(qv) {
		return true
	}

	if tuple, ok := idVal.(value.ModifierTuple); ok {
		if alts, isList := qv.(value.OneOf); isList && tuple.Equal([]any(alts)) {
			return true
		}
	}

	for _, alt := range value.Alternatives(qv) {
		if value.Equal(idVal, alt) {
			return true
		}
	}

	return false
}

// Filter returns the identifiers q matches, in input order.
func (q *Query) Filter(ids []*DataID) []*DataID {
	var out []*DataID

	for _, id := range ids {
		if q.Matches(id) {
			out = append(out, id)
		}
	}

	return out
}
