package value

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWavelengthRange_Equal(t *testing.T) {
	wl := NewWavelengthRange(1, 2, 3)

	tests := []struct {
		name  string
		other any
		want  bool
	}{
		{name: "number inside", other: 2.5, want: true},
		{name: "int inside", other: 3, want: true},
		{name: "lower bound", other: 1.0, want: true},
		{name: "number below", other: 0.5, want: false},
		{name: "number above", other: 3.1, want: false},
		{name: "nil", other: nil, want: false},
		{name: "same triple", other: []float64{1, 2, 3}, want: true},
		{name: "same triple as any", other: []any{1, 2.0, 3}, want: true},
		{name: "other triple", other: [3]float64{1, 2, 4}, want: false},
		{name: "contained range", other: NewWavelengthRange(1.5, 2, 2.5), want: true},
		{name: "identical range", other: NewWavelengthRange(1, 2, 3), want: true},
		{name: "overlapping range", other: NewWavelengthRange(0.5, 2, 2.5), want: false},
		{name: "other unit", other: WavelengthRange{Min: 1.5, Central: 2, Max: 2.5, Unit: "nm"}, want: false},
		{name: "string", other: "2", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, wl.Equal(tt.other))
		})
	}
}

func TestWavelengthRange_EmptyUnitIsDefault(t *testing.T) {
	a := WavelengthRange{Min: 1, Central: 2, Max: 3}
	b := NewWavelengthRange(1, 2, 3)

	assert.True(t, a.Equal(b))
	assert.Equal(t, 0, a.Compare(b))
	assert.Equal(t, CanonicalKey(a), CanonicalKey(b))
}

func TestWavelengthRange_Distance(t *testing.T) {
	wl := NewWavelengthRange(0.5, 0.6, 0.7)

	assert.InDelta(t, 0.05, wl.Distance(0.65), 1e-9)
	assert.InDelta(t, 0.0, wl.Distance(0.6), 1e-9)
	assert.InDelta(t, 0.0, wl.Distance([]float64{0.5, 0.6, 0.7}), 1e-9)
	assert.InDelta(t, 0.02, wl.Distance(NewWavelengthRange(0.55, 0.62, 0.65)), 1e-9)
	assert.True(t, math.IsInf(wl.Distance(10.8), 1))
	assert.True(t, math.IsInf(wl.Distance(nil), 1))
}

func TestWavelengthRange_Ordering(t *testing.T) {
	a := NewWavelengthRange(0.5, 0.6, 0.7)
	b := NewWavelengthRange(0.5, 0.65, 0.7)

	assert.True(t, a.Less(b))
	assert.False(t, b.Less(a))
	assert.True(t, b.Greater(a))
	assert.False(t, a.Less(nil))
	assert.True(t, a.Greater(nil))
	assert.Equal(t, 1, a.Compare(WavelengthRange{Min: 0.5, Central: 0.6, Max: 0.7, Unit: "nm"}))
}

func TestWavelengthRange_String(t *testing.T) {
	assert.Equal(t, "0.6 µm (0.5-0.7 µm)", NewWavelengthRange(0.5, 0.6, 0.7).String())
	assert.Equal(t, "WavelengthRange(min=0.5, central=0.6, max=0.7, unit='µm')", Repr(NewWavelengthRange(0.5, 0.6, 0.7)))
}

func TestConvertWavelength(t *testing.T) {
	tests := []struct {
		name    string
		in      any
		want    any
		wantErr bool
	}{
		{name: "nil", in: nil, want: nil},
		{name: "range", in: NewWavelengthRange(1, 2, 3), want: NewWavelengthRange(1, 2, 3)},
		{name: "pointer", in: &WavelengthRange{Min: 1, Central: 2, Max: 3, Unit: "nm"}, want: WavelengthRange{Min: 1, Central: 2, Max: 3, Unit: "nm"}},
		{name: "float triple", in: []float64{1, 2, 3}, want: NewWavelengthRange(1, 2, 3)},
		{name: "yaml triple", in: []any{1, 2, 3}, want: NewWavelengthRange(1, 2, 3)},
		{name: "with unit", in: []any{1, 2, 3, "nm"}, want: WavelengthRange{Min: 1, Central: 2, Max: 3, Unit: "nm"}},
		{name: "number passes through", in: 0.6, want: 0.6},
		{name: "short sequence", in: []any{1, 2}, wantErr: true},
		{name: "string", in: "0.6", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ConvertWavelength(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
