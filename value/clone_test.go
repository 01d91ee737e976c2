package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClone_Slices(t *testing.T) {
	mods := ModifierTuple{"sunz"}
	c := Clone(mods).(ModifierTuple)
	c[0] = "rayleigh"
	assert.Equal(t, ModifierTuple{"sunz"}, mods)

	nested := []any{[]string{"a"}, map[string]any{"k": []int{1}}}
	cn := Clone(nested).([]any)
	cn[0].([]string)[0] = "b"
	cn[1].(map[string]any)["k"].([]int)[0] = 2

	assert.Equal(t, []any{[]string{"a"}, map[string]any{"k": []int{1}}}, nested)

	ints := []int{1, 2}
	ci := Clone(ints).([]int)
	ci[0] = 9
	assert.Equal(t, []int{1, 2}, ints)

	alts := OneOf{[]string{"x"}, 1}
	ca := Clone(alts).(OneOf)
	ca[0].([]string)[0] = "y"
	assert.Equal(t, OneOf{[]string{"x"}, 1}, alts)
}

func TestClone_Maps(t *testing.T) {
	m := map[string][]string{"a": {"x"}, "b": nil}
	cm := Clone(m).(map[string][]string)
	cm["a"][0] = "y"

	assert.Equal(t, []string{"x"}, m["a"])
	assert.Nil(t, cm["b"])

	withNil := []any{nil, "s"}
	assert.Equal(t, withNil, Clone(withNil))
}

func TestClone_Scalars(t *testing.T) {
	w := NewWavelengthRange(0.5, 0.6, 0.7)

	assert.Equal(t, w, Clone(w))
	assert.Equal(t, 3, Clone(3))
	assert.Nil(t, Clone(nil))
	assert.Nil(t, Clone([]string(nil)))
}
