// Package tsp_test validates the initial tour generator and the random sources.
package tsp_test

import (
	"testing"

	"github.com/katalvlaran/tourkit/tsp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSwapShuffle_ScriptedDraws replays the exact swap procedure:
// identity [0,1,2]; (i=0,j=2) → [2,1,0]; (i=1,j=0) → [1,2,0]; (i=2,j=1) → [1,0,2].
func TestSwapShuffle_ScriptedDraws(t *testing.T) {
	src := &scriptedSource{t: t, n: 3, draws: []int{2, 0, 1}}

	tour, err := tsp.SwapShuffle(3, src)
	require.NoError(t, err)

	assert.Equal(t, []int{1, 0, 2}, tour)
	assert.Equal(t, 3, src.calls, "one draw per position")
}

// TestSwapShuffle_FullRangeEveryStep checks that every draw uses the full
// range [0,n), unlike Fisher–Yates which shrinks it.
func TestSwapShuffle_FullRangeEveryStep(t *testing.T) {
	const n = 6
	src := &scriptedSource{t: t, n: n, draws: []int{5, 5, 5, 5, 5, 5}}

	tour, err := tsp.SwapShuffle(n, src)
	require.NoError(t, err)

	// Every step swaps position i with the last slot:
	// [5,1,2,3,4,0] → [5,0,2,3,4,1] → [5,0,1,3,4,2] → [5,0,1,2,4,3] → [5,0,1,2,3,4] → unchanged.
	assert.Equal(t, []int{5, 0, 1, 2, 3, 4}, tour)
	assert.Equal(t, n, src.calls)
}

func TestSwapShuffle_DegenerateSizesSkipDraws(t *testing.T) {
	empty, err := tsp.SwapShuffle(0, forbiddenSource{t})
	require.NoError(t, err)
	assert.Empty(t, empty)

	single, err := tsp.SwapShuffle(1, forbiddenSource{t})
	require.NoError(t, err)
	assert.Equal(t, []int{0}, single)

	_, err = tsp.SwapShuffle(-1, nil)
	assert.ErrorIs(t, err, tsp.ErrBadOptions)
}

func TestSwapShuffle_RejectsOutOfRangeSource(t *testing.T) {
	_, err := tsp.SwapShuffle(4, constSource(4))
	assert.ErrorIs(t, err, tsp.ErrSourceOutOfRange)

	_, err = tsp.SwapShuffle(4, constSource(-1))
	assert.ErrorIs(t, err, tsp.ErrSourceOutOfRange)
}

func TestSwapShuffle_AlwaysPermutation(t *testing.T) {
	src := tsp.SeededSource(42)
	for n := 0; n <= 64; n++ {
		tour, err := tsp.SwapShuffle(n, src)
		require.NoError(t, err)
		requirePermutation(t, tour, n)
	}
}

func TestSeededSource_Determinism(t *testing.T) {
	var base []int
	Repeat(t, 3, func(t *testing.T) {
		tour, err := tsp.SwapShuffle(50, tsp.SeededSource(seedDet))
		require.NoError(t, err)
		if base == nil {
			base = tour
			return
		}
		assert.Equal(t, base, tour)
	})

	// seed 0 maps to the fixed default seed 1.
	a, err := tsp.SwapShuffle(50, tsp.SeededSource(0))
	require.NoError(t, err)
	b, err := tsp.SwapShuffle(50, tsp.SeededSource(1))
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestGlobalSource_InRange(t *testing.T) {
	src := tsp.GlobalSource()
	for i := 0; i < 1000; i++ {
		v := src.Intn(7)
		require.GreaterOrEqual(t, v, 0)
		require.Less(t, v, 7)
	}
}
