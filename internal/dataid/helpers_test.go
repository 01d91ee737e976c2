package dataid

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func channelSchema(t *testing.T) *Schema {
	t.Helper()

	s, err := NewSchema(
		Field{Name: "name", Required: true},
		Field{Name: "calibration", Enum: []string{"reflectance", "counts"}},
		Field{Name: "resolution", Transitive: true},
	)
	require.NoError(t, err)

	return s
}

func mustID(t *testing.T, s *Schema, raw map[string]any) *DataID {
	t.Helper()

	id, err := s.New(raw)
	require.NoError(t, err)

	return id
}

// channelIDs returns A={ch1, reflectance, 1000} and B={ch1, counts, 500}.
func channelIDs(t *testing.T) (*DataID, *DataID) {
	t.Helper()

	s := channelSchema(t)
	a := mustID(t, s, map[string]any{"name": "ch1", "calibration": "reflectance", "resolution": 1000})
	b := mustID(t, s, map[string]any{"name": "ch1", "calibration": "counts", "resolution": 500})

	return a, b
}
