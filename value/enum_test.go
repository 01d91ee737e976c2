package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func calibrationEnum(t *testing.T) *EnumType {
	t.Helper()

	et, err := NewEnumType("calibration", "reflectance", "brightness_temperature", "radiance", "counts")
	require.NoError(t, err)

	return et
}

func TestNewEnumType_Invalid(t *testing.T) {
	_, err := NewEnumType("calibration")
	require.ErrorIs(t, err, ErrInvalidEnumType)

	_, err = NewEnumType("calibration", "counts", "radiance", "counts")
	require.ErrorIs(t, err, ErrInvalidEnumType)
	assert.Contains(t, err.Error(), `"counts"`)
}

func TestEnumType_Ordinals(t *testing.T) {
	et := calibrationEnum(t)

	for i, name := range et.Names() {
		ev, ok := et.Lookup(name)
		require.True(t, ok)
		assert.Equal(t, float64(i+1), ev.Ordinal())
	}
}

func TestEnumType_Convert(t *testing.T) {
	et := calibrationEnum(t)

	v, err := et.Convert("radiance")
	require.NoError(t, err)

	ev, ok := v.(EnumValue)
	require.True(t, ok)
	assert.Equal(t, "radiance", ev.Name())
	assert.Equal(t, 3.0, ev.Ordinal())
	assert.Same(t, et, ev.Type())

	v, err = et.Convert(nil)
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestEnumType_ConvertInvalid(t *testing.T) {
	et := calibrationEnum(t)

	_, err := et.Convert("reflectence")
	require.ErrorIs(t, err, ErrInvalidEnumValue)
	assert.Contains(t, err.Error(), `did you mean "reflectance"?`)

	_, err = et.Convert("kelvin")
	require.ErrorIs(t, err, ErrInvalidEnumValue)
	assert.NotContains(t, err.Error(), "did you mean")

	_, err = et.Convert(42)
	require.ErrorIs(t, err, ErrInvalidEnumValue)
}

func TestEnumType_ConvertForeignMember(t *testing.T) {
	et := calibrationEnum(t)
	other, err := NewEnumType("other", "counts")
	require.NoError(t, err)

	foreign, _ := other.Lookup("counts")

	v, err := et.Convert(foreign)
	require.NoError(t, err)
	assert.Equal(t, 4.0, v.(EnumValue).Ordinal())
}

func TestEnumValue_EqualityByName(t *testing.T) {
	et := calibrationEnum(t)
	other, err := NewEnumType("other", "counts", "radiance")
	require.NoError(t, err)

	a, _ := et.Lookup("counts")
	b, _ := other.Lookup("counts")

	assert.True(t, a.Equal("counts"))
	assert.False(t, a.Equal("radiance"))
	assert.True(t, a.Equal(b))
	assert.True(t, Equal("counts", a))
	assert.Equal(t, Hash(a), Hash(b))
	assert.Equal(t, Hash(a), Hash("counts"))
	assert.Equal(t, "counts", a.String())
	assert.Equal(t, "<calibration.counts>", Repr(a))

	text, err := a.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "counts", string(text))
}
