package dataid

import (
	"fmt"

	"dataid/internal/logger"
)

// Attr is attribute-style field access.
//
// Deprecated: use Get. Attr logs a warning on every call.
func (d *DataID) Attr(name string) (any, error) {
	if !d.schema.Has(name) {
		return nil, fmt.Errorf("%w: %s", ErrNoSuchField, name)
	}

	l := logger.Component("dataid")
	l.Warn().
		Bool("deprecated", true).
		Str("field", name).
		Msg("attribute access to DataIDs is deprecated, use key access instead")

	v, _ := d.Get(name)

	return v, nil
}
