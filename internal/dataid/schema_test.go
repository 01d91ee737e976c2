package dataid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dataid/value"
)

func TestNewSchema_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		fields []Field
	}{
		{"enum and type", []Field{{Name: "calibration", Enum: []string{"counts"}, Type: FloatType}}},
		{"empty name", []Field{{Name: ""}}},
		{"duplicate", []Field{{Name: "name"}, {Name: "name"}}},
		{"duplicate enum member", []Field{{Name: "calibration", Enum: []string{"counts", "counts"}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewSchema(tt.fields...)
			require.ErrorIs(t, err, ErrInvalidSchema)
		})
	}
}

func TestNewSchema_EnumBecomesType(t *testing.T) {
	s := channelSchema(t)

	f, ok := s.Field("calibration")
	require.True(t, ok)
	assert.Nil(t, f.Enum)

	et, ok := f.EnumType()
	require.True(t, ok)
	assert.Equal(t, []string{"reflectance", "counts"}, et.Names())
	assert.Equal(t, []string{"name", "calibration", "resolution"}, s.Names())
}

func TestSchema_Curate(t *testing.T) {
	s := DefaultIDKeys

	t.Run("defaults and unknown keys", func(t *testing.T) {
		got, err := s.Curate(map[string]any{"name": "ch1", "platform": "x"})
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"name": "ch1", "modifiers": value.ModifierTuple{}}, got)
	})

	t.Run("missing required", func(t *testing.T) {
		_, err := s.Curate(map[string]any{"resolution": 1000})
		require.ErrorIs(t, err, ErrMissingRequiredField)
	})

	t.Run("required nil", func(t *testing.T) {
		_, err := s.Curate(map[string]any{"name": nil, "resolution": 1000})
		require.ErrorIs(t, err, ErrMissingRequiredField)
	})

	t.Run("empty input", func(t *testing.T) {
		got, err := s.Curate(nil)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("converted values", func(t *testing.T) {
		got, err := s.Curate(map[string]any{
			"name":        "ch1",
			"wavelength":  []any{0.5, 0.6, 0.7},
			"calibration": "counts",
			"modifiers":   []string{"sunz"},
		})
		require.NoError(t, err)
		assert.Equal(t, value.NewWavelengthRange(0.5, 0.6, 0.7), got["wavelength"])
		assert.Equal(t, value.ModifierTuple{"sunz"}, got["modifiers"])
		assert.True(t, value.Equal(got["calibration"], "counts"))
	})

	t.Run("nil optional dropped", func(t *testing.T) {
		got, err := s.Curate(map[string]any{"name": "ch1", "calibration": nil})
		require.NoError(t, err)
		assert.NotContains(t, got, "calibration")
	})

	t.Run("invalid enum", func(t *testing.T) {
		_, err := s.Curate(map[string]any{"name": "ch1", "calibration": "count"})
		require.ErrorIs(t, err, ErrInvalidEnumValue)
		assert.Contains(t, err.Error(), "calibration")
	})

	t.Run("invalid modifiers", func(t *testing.T) {
		_, err := s.Curate(map[string]any{"name": "ch1", "modifiers": 3})
		require.ErrorIs(t, err, ErrInvalidModifierValue)
	})
}

func TestKeysFromConfig(t *testing.T) {
	sub, err := KeysFromConfig(DefaultIDKeys, map[string]any{"wavelength": []any{1.0, 2.0, 3.0}})
	require.NoError(t, err)
	assert.Equal(t, []string{"name", "wavelength", "modifiers"}, sub.Names())

	optional := MustSchema(Field{Name: "resolution"}, Field{Name: "polarization"})

	_, err = KeysFromConfig(optional, map[string]any{"name": "x"})
	require.ErrorIs(t, err, ErrInsufficientMetadata)
}

func TestTypeRegistry(t *testing.T) {
	for _, name := range []string{"wavelength", "modifiers", "float", "int", "string"} {
		typ, ok := LookupType(name)
		require.True(t, ok, name)
		assert.Equal(t, name, typ.Name)
	}

	_, ok := LookupType("polarization")
	assert.False(t, ok)

	v, err := IntType.Convert("1000")
	require.NoError(t, err)
	assert.Equal(t, 1000, v)

	_, err = IntType.Convert(2.5)
	require.Error(t, err)

	v, err = FloatType.Convert(3)
	require.NoError(t, err)
	assert.Equal(t, 3.0, v)
}
