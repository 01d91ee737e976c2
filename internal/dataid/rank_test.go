package dataid

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dataid/value"
)

func TestRank_PrefersUnspecifiedLowWeights(t *testing.T) {
	a, b := channelIDs(t)
	q := NewQuery(Pair{"name", "ch1"}, Pair{"calibration", "*"})

	for range 5 {
		ids, distances, err := q.Sort([]*DataID{a, b})
		require.NoError(t, err)
		require.Len(t, ids, 2)
		assert.Same(t, b, ids[0])
		assert.Same(t, a, ids[1])

		if diff := cmp.Diff([]float64{2 + 500, 1 + 1000}, distances); diff != "" {
			t.Errorf("distances (-want +got):\n%s", diff)
		}
	}
}

func TestRank_EqualResolutionPrefersCalibrationOrder(t *testing.T) {
	s := channelSchema(t)
	refl := mustID(t, s, map[string]any{"name": "ch1", "calibration": "reflectance", "resolution": 1000})
	counts := mustID(t, s, map[string]any{"name": "ch1", "calibration": "counts", "resolution": 1000})

	ranked, err := NewQuery(Pair{"name", "ch1"}).Rank([]*DataID{counts, refl})
	require.NoError(t, err)

	best, ok := ranked.Best()
	require.True(t, ok)
	assert.Same(t, refl, best.ID)
	assert.False(t, ranked.IsAmbiguous())
}

func TestRank_TiesKeepIdentifierOrder(t *testing.T) {
	x := mustID(t, MinimalKeys, map[string]any{"name": "a", "resolution": 1})
	y := mustID(t, MinimalKeys, map[string]any{"name": "b", "resolution": 1})

	ranked, err := QueryFromMap(map[string]any{"resolution": 1}).Rank([]*DataID{y, x})
	require.NoError(t, err)

	require.Len(t, ranked, 2)
	assert.Same(t, x, ranked[0].ID)
	assert.Same(t, y, ranked[1].ID)
	assert.Equal(t, []float64{1, 1}, ranked.Distances())
	assert.True(t, ranked.IsAmbiguous())
}

func TestRank_Infeasible(t *testing.T) {
	a, b := channelIDs(t)
	noCal := mustID(t, a.Schema(), map[string]any{"name": "ch1", "resolution": 250})

	q := QueryFromMap(map[string]any{"name": "ch1", "calibration": "reflectance"})

	ranked, err := q.Rank([]*DataID{a, b, noCal})
	require.NoError(t, err)

	require.Len(t, ranked, 3)
	assert.Same(t, a, ranked[0].ID)
	assert.Same(t, noCal, ranked[1].ID)
	assert.Same(t, b, ranked[2].ID)

	assert.Equal(t, 1001.0, ranked[0].Distance)
	assert.Equal(t, float64(BigDistance), ranked[1].Distance)
	assert.True(t, math.IsInf(ranked[2].Distance, 1))

	assert.True(t, ranked[0].Feasible())
	assert.False(t, ranked[1].Feasible())
	assert.False(t, ranked[2].Feasible())

	feasible := ranked.Feasible()
	require.Len(t, feasible, 1)
	assert.Same(t, a, feasible[0].ID)

	for _, c := range ranked[1:] {
		assert.Greater(t, c.Distance, ranked[0].Distance)
	}
}

func TestRank_Wavelength(t *testing.T) {
	s := DefaultIDKeys
	near := mustID(t, s, map[string]any{"name": "a", "wavelength": []any{0.5, 0.6, 0.7}, "resolution": 1000})
	far := mustID(t, s, map[string]any{"name": "b", "wavelength": []any{0.55, 0.65, 0.7}, "resolution": 1000})
	ir := mustID(t, s, map[string]any{"name": "c", "wavelength": []any{10.0, 11.0, 12.0}, "resolution": 1000})

	q, err := FilteredQuery(0.62, nil)
	require.NoError(t, err)

	ranked, err := q.Rank([]*DataID{ir, far, near})
	require.NoError(t, err)

	require.Len(t, ranked, 3)
	assert.Same(t, near, ranked[0].ID)
	assert.InDelta(t, 1000.02, ranked[0].Distance, 1e-9)
	assert.Same(t, far, ranked[1].ID)
	assert.InDelta(t, 1000.03, ranked[1].Distance, 1e-9)
	assert.True(t, math.IsInf(ranked[2].Distance, 1))
}

func TestRank_ModifiersAndOneOf(t *testing.T) {
	s := DefaultIDKeys
	plain := mustID(t, s, map[string]any{"name": "true_color"})
	corrected := mustID(t, s, map[string]any{"name": "true_color", "modifiers": []string{"sunz", "rayleigh"}})

	ranked, err := QueryFromMap(map[string]any{"name": "true_color"}).Rank([]*DataID{corrected, plain})
	require.NoError(t, err)
	assert.Same(t, plain, ranked[0].ID)
	assert.Equal(t, []float64{0, 2}, ranked.Distances())

	wl := mustID(t, s, map[string]any{"name": "x", "wavelength": []any{0.5, 0.6, 0.7}})
	q := QueryFromMap(map[string]any{"name": "x", "wavelength": value.OneOf{0.9, 0.65}})

	ranked, err = q.Rank([]*DataID{wl})
	require.NoError(t, err)
	assert.InDelta(t, 0.05, ranked[0].Distance, 1e-9)
}

func TestRank_OpenWavelengthCountsAsTuple(t *testing.T) {
	s := DefaultIDKeys
	withWL := mustID(t, s, map[string]any{"name": "x", "wavelength": []any{0.5, 0.6, 0.7}})
	bare := mustID(t, s, map[string]any{"name": "x"})

	ranked, err := QueryFromMap(map[string]any{"name": "x"}).Rank([]*DataID{withWL, bare})
	require.NoError(t, err)

	assert.Same(t, bare, ranked[0].ID)
	assert.Equal(t, []float64{0, 4}, ranked.Distances())
	assert.False(t, ranked.IsAmbiguous())

	ranked, err = QueryFromMap(map[string]any{"name": "x", "wavelength": "*"}).Rank([]*DataID{withWL, bare})
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 4}, ranked.Distances())
}

func TestRank_FeasibleWithLargeWeights(t *testing.T) {
	s := channelSchema(t)
	coarse := mustID(t, s, map[string]any{"name": "ch1", "calibration": "counts", "resolution": 250000})
	noCal := mustID(t, s, map[string]any{"name": "ch1", "resolution": 250})

	ranked, err := QueryFromMap(map[string]any{"name": "ch1"}).Rank([]*DataID{coarse})
	require.NoError(t, err)
	require.Len(t, ranked, 1)
	assert.Greater(t, ranked[0].Distance, float64(BigDistance))
	assert.True(t, ranked[0].Feasible())

	ranked, err = QueryFromMap(map[string]any{"name": "ch1", "calibration": "counts"}).Rank([]*DataID{coarse, noCal})
	require.NoError(t, err)

	feasible := ranked.Feasible()
	require.Len(t, feasible, 1)
	assert.Same(t, coarse, feasible[0].ID)
}

func TestCandidateList_Helpers(t *testing.T) {
	a, b := channelIDs(t)
	cl := CandidateList{{ID: a, Distance: 1}, {ID: b, Distance: math.Inf(1)}}

	assert.Len(t, cl.Top(1), 1)
	assert.Len(t, cl.Top(5), 2)
	assert.Equal(t, []*DataID{a, b}, cl.IDs())
	assert.False(t, cl.IsAmbiguous())

	_, ok := CandidateList{}.Best()
	assert.False(t, ok)
}
