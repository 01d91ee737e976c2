package metadata

import (
	"iter"

	"dataid/internal/dataid"
)

// Walk yields every object of objs with a nil parent, each followed by its
// ancillary objects with the object as parent. Ancillary entries that are not
// Objects are skipped.
func Walk(objs []Object) iter.Seq2[Object, Object] {
	return func(yield func(Object, Object) bool) {
		for _, obj := range objs {
			if !yield(obj, nil) {
				return
			}

			for _, anc := range ancillaries(obj) {
				if !yield(anc, obj) {
					return
				}
			}
		}
	}
}

func ancillaries(obj Object) []Object {
	switch list := obj.Attrs()[AncillaryAttr].(type) {
	case []Object:
		return list
	case []any:
		out := make([]Object, 0, len(list))

		for _, item := range list {
			if o, ok := item.(Object); ok {
				out = append(out, o)
			}
		}

		return out
	}

	return nil
}

// ReplaceAncillary puts obj in place of the ancillary entry of parent that
// has the same identifier, and reports whether one was found. Identifiers
// are built with the schema in the parent's IDKeysAttr, else obj's, else
// dataid.MinimalKeys. A nil parent is a no-op.
func ReplaceAncillary(obj, parent Object) (bool, error) {
	if parent == nil {
		return false, nil
	}

	s := schemaOf(parent.Attrs(), schemaOf(obj.Attrs(), nil))

	current, err := newID(s, obj.Attrs())
	if err != nil {
		return false, err
	}

	switch list := parent.Attrs()[AncillaryAttr].(type) {
	case []Object:
		for i, entry := range list {
			if sameID(s, current, entry) {
				list[i] = obj
				return true, nil
			}
		}
	case []any:
		for i, item := range list {
			if entry, ok := item.(Object); ok && sameID(s, current, entry) {
				list[i] = obj
				return true, nil
			}
		}
	}

	return false, nil
}

func sameID(s *dataid.Schema, current *dataid.DataID, entry Object) bool {
	id, err := newID(s, entry.Attrs())
	return err == nil && current.Equal(id)
}
