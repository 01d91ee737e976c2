package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertModifiers(t *testing.T) {
	tests := []struct {
		name    string
		in      any
		want    any
		wantErr bool
	}{
		{name: "nil", in: nil, want: nil},
		{name: "tuple", in: ModifierTuple{"sunz_corrected"}, want: ModifierTuple{"sunz_corrected"}},
		{name: "strings", in: []string{"a", "b"}, want: ModifierTuple{"a", "b"}},
		{name: "yaml list", in: []any{"a", "b"}, want: ModifierTuple{"a", "b"}},
		{name: "empty yaml list", in: []any{}, want: ModifierTuple{}},
		{name: "non-string element", in: []any{"a", 1}, wantErr: true},
		{name: "string", in: "sunz_corrected", wantErr: true},
		{name: "number", in: 3, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ConvertModifiers(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidModifierValue)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConvertModifiers_Copies(t *testing.T) {
	src := []string{"a", "b"}

	got, err := ConvertModifiers(src)
	require.NoError(t, err)

	src[0] = "changed"
	assert.Equal(t, ModifierTuple{"a", "b"}, got)
}

func TestModifierTuple_Equal(t *testing.T) {
	m := ModifierTuple{"a", "b"}

	assert.True(t, m.Equal([]string{"a", "b"}))
	assert.True(t, m.Equal([]any{"a", "b"}))
	assert.True(t, m.Equal(ModifierTuple{"a", "b"}))
	assert.False(t, m.Equal([]string{"b", "a"}))
	assert.False(t, m.Equal("a"))
	assert.True(t, Equal([]string{"a", "b"}, m))
	assert.Equal(t, CanonicalKey(m), CanonicalKey([]string{"a", "b"}))
	assert.Equal(t, 2, m.Len())
}

func TestModifierTuple_Repr(t *testing.T) {
	assert.Equal(t, "()", Repr(ModifierTuple{}))
	assert.Equal(t, "('a',)", Repr(ModifierTuple{"a"}))
	assert.Equal(t, "('a', 'b')", Repr(ModifierTuple{"a", "b"}))
}
