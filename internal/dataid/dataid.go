package dataid

import (
	"fmt"
	"iter"
	"maps"
	"slices"
	"strings"
	"sync"

	"github.com/cespare/xxhash/v2"

	"dataid/internal/common"
	"dataid/value"
)

// Record is the read surface shared by DataID and Query.
type Record interface {
	Get(key string) (any, bool)
	Keys() []string
}

// DataID identifies a data product. It is immutable: it exposes read
// operations only, and derived identifiers (Replace, FromMap) are new values.
// A DataID is safe for concurrent use.
type DataID struct {
	schema *Schema
	values map[string]any

	hashOnce sync.Once
	hash     uint64
}

var (
	_ Record = (*DataID)(nil)
	_ Record = (*Query)(nil)
)

// Schema returns the schema the identifier was built with.
func (d *DataID) Schema() *Schema { return d.schema }

// Get returns the value of key.
func (d *DataID) Get(key string) (any, bool) {
	v, ok := d.values[key]
	if !ok {
		return nil, false
	}

	return value.Clone(v), true
}

// Value returns the value of key, or nil.
func (d *DataID) Value(key string) any {
	v, _ := d.Get(key)
	return v
}

// Has reports whether the identifier carries key.
func (d *DataID) Has(key string) bool {
	_, ok := d.values[key]
	return ok
}

// Len returns the number of fields present.
func (d *DataID) Len() int { return len(d.values) }

// Keys returns the present fields in schema order.
func (d *DataID) Keys() []string {
	keys := make([]string, 0, len(d.values))

	for _, name := range d.schema.Names() {
		if _, ok := d.values[name]; ok {
			keys = append(keys, name)
		}
	}

	return keys
}

// All iterates over the present fields in schema order.
func (d *DataID) All() iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		for _, k := range d.Keys() {
			if !yield(k, value.Clone(d.values[k])) {
				return
			}
		}
	}
}

// ToMap returns a plain mapping of the fields. Enumeration members render as
// their names, so Schema().New(ToMap()) rebuilds an equal identifier.
func (d *DataID) ToMap() map[string]any {
	out := make(map[string]any, len(d.values))

	for k, v := range d.values {
		if ev, ok := v.(value.EnumValue); ok {
			out[k] = ev.Name()
			continue
		}

		out[k] = value.Clone(v)
	}

	return out
}

// FromMap builds a new identifier with the same schema.
func (d *DataID) FromMap(raw map[string]any) (*DataID, error) {
	return d.schema.New(raw)
}

// Replace returns a new identifier with overrides applied on top of the
// current fields. A nil override removes an optional field.
func (d *DataID) Replace(overrides map[string]any) (*DataID, error) {
	info := maps.Clone(d.values)
	maps.Copy(info, overrides)

	return d.schema.New(info)
}

// Hash hashes the sorted (key, value) pairs. It is computed once.
func (d *DataID) Hash() uint64 {
	d.hashOnce.Do(func() {
		h := xxhash.New()

		for _, k := range common.SortedKeys(d.values) {
			_, _ = h.WriteString(k)
			_, _ = h.WriteString("\x00")
			_, _ = h.WriteString(value.CanonicalKey(d.values[k]))
			_, _ = h.WriteString("\x00")
		}

		d.hash = h.Sum64()
	})

	return d.hash
}

// Equal reports whether both identifiers carry the same fields with the same values.
func (d *DataID) Equal(other *DataID) bool {
	if d == nil || other == nil {
		return d == other
	}

	if len(d.values) != len(other.values) {
		return false
	}

	for k, v := range d.values {
		ov, ok := other.values[k]
		if !ok || !value.Same(v, ov) {
			return false
		}
	}

	return true
}

// Less orders identifiers field by field over d's schema. A field present on
// one side only is compared against the zero value of its kind; fields absent
// from both sides are skipped.
func (d *DataID) Less(other *DataID) (bool, error) {
	var left, right []any

	for _, name := range d.schema.Names() {
		a, inSelf := d.values[name]
		b, inOther := other.values[name]

		switch {
		case !inSelf && !inOther:
			continue
		case inSelf && inOther:
		case inSelf:
			z, ok := value.Zero(a)
			if !ok {
				return false, fmt.Errorf("%w: %s of kind %s", ErrUnorderableType, name, value.KindOf(a))
			}

			b = z
		default:
			z, ok := value.Zero(b)
			if !ok {
				return false, fmt.Errorf("%w: %s of kind %s", ErrUnorderableType, name, value.KindOf(b))
			}

			a = z
		}

		left = append(left, a)
		right = append(right, b)
	}

	for i := range left {
		c, err := value.Compare(left[i], right[i])
		if err != nil {
			return false, fmt.Errorf("%w: %w", ErrUnorderableType, err)
		}

		if c != 0 {
			return c < 0, nil
		}
	}

	return false, nil
}

// String renders the identifier as DataID(name='ch1', resolution=1000).
func (d *DataID) String() string {
	items := make([]string, 0, len(d.values))
	for _, k := range d.Keys() {
		items = append(items, k+"="+value.Repr(d.values[k]))
	}

	return "DataID(" + strings.Join(items, ", ") + ")"
}

// SortIDs sorts ids in place by Less, keeping the input order of ties.
func SortIDs(ids []*DataID) error {
	var firstErr error

	slices.SortStableFunc(ids, func(a, b *DataID) int {
		less, err := a.Less(b)
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}

			return 0
		}

		if less {
			return -1
		}

		greater, err := b.Less(a)
		if err != nil && firstErr == nil {
			firstErr = err
		}

		if greater {
			return 1
		}

		return 0
	})

	return firstErr
}

// Mutator is the write surface for identifier contents. Only Builder
// implements it; a DataID never does.
type Mutator interface {
	Set(key string, v any) error
	Delete(key string) error
	Update(raw map[string]any) error
}

// Builder collects raw attributes and curates them into a DataID once.
// After a successful Build every mutation fails with ErrImmutable.
type Builder struct {
	schema *Schema
	raw    map[string]any
	built  bool
}

var _ Mutator = (*Builder)(nil)

// Builder returns an empty builder for s.
func (s *Schema) Builder() *Builder {
	return &Builder{schema: s, raw: map[string]any{}}
}

// Set records a raw value.
func (b *Builder) Set(key string, v any) error {
	if b.built {
		return fmt.Errorf("%w: set %s", ErrImmutable, key)
	}

	b.raw[key] = v

	return nil
}

// Delete drops a raw value.
func (b *Builder) Delete(key string) error {
	if b.built {
		return fmt.Errorf("%w: delete %s", ErrImmutable, key)
	}

	delete(b.raw, key)

	return nil
}

// Update records several raw values.
func (b *Builder) Update(raw map[string]any) error {
	if b.built {
		return fmt.Errorf("%w: update", ErrImmutable)
	}

	maps.Copy(b.raw, raw)

	return nil
}

// Build curates the collected values. The builder is sealed on success.
func (b *Builder) Build() (*DataID, error) {
	if b.built {
		return nil, fmt.Errorf("%w: already built", ErrImmutable)
	}

	id, err := b.schema.New(b.raw)
	if err != nil {
		return nil, err
	}

	b.built = true
	b.raw = nil

	return id, nil
}
