package cost_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/einsuite/einsuite/core"
	"github.com/einsuite/einsuite/cost"
)

// TestSimulate_TwoTensors pins the figures for the canonical 2x2 pair.
func TestSimulate_TwoTensors(t *testing.T) {
	shapes := []core.Shape{{2, 2}, {2, 2}}
	est, err := cost.Simulate(shapes, core.Path{{I: 0, J: 1}})
	require.NoError(t, err)
	require.Equal(t, 4.0, est.Log2Size)      // peak = 4*4 = 16
	require.Equal(t, 1.2041, est.Log10Flops) // log10(16)
	require.False(t, est.Cited)
}

// TestSimulate_ChainAccumulates: the placeholder intermediate keeps rank
// ra+rb-2 with size-2 axes, so a second step replays against [2,2].
func TestSimulate_ChainAccumulates(t *testing.T) {
	shapes := []core.Shape{{2, 2}, {2, 2}, {2, 2}}
	est, err := cost.Simulate(shapes, core.Path{{I: 0, J: 1}, {I: 0, J: 1}})
	require.NoError(t, err)
	require.Equal(t, 4.0, est.Log2Size)      // both steps peak at 16
	require.Equal(t, 1.5051, est.Log10Flops) // log10(16+16)
}

// TestSimulate_RankFloor: two rank-1 operands still produce a rank-1
// placeholder (max(1, 1+1-2)).
func TestSimulate_RankFloor(t *testing.T) {
	shapes := []core.Shape{{2}, {2}, {2}}
	est, err := cost.Simulate(shapes, core.Path{{I: 0, J: 1}, {I: 0, J: 1}})
	require.NoError(t, err)
	// step 1: 2*2=4; step 2: placeholder [2] against [2] → 4; total 8
	require.Equal(t, 2.0, est.Log2Size)
	require.Equal(t, 0.9031, est.Log10Flops)
}

// TestSimulate_EmptyPath yields zeroed figures.
func TestSimulate_EmptyPath(t *testing.T) {
	est, err := cost.Simulate([]core.Shape{{2, 2}}, nil)
	require.NoError(t, err)
	require.Equal(t, cost.Estimate{}, est)
}

// TestSimulate_NonNegative: any valid path over positive-extent shapes
// produces non-negative figures.
func TestSimulate_NonNegative(t *testing.T) {
	shapes := []core.Shape{{1}, {1, 1}, {1}}
	est, err := cost.Simulate(shapes, core.Path{{I: 0, J: 1}, {I: 0, J: 1}})
	require.NoError(t, err)
	require.GreaterOrEqual(t, est.Log2Size, 0.0)
	require.GreaterOrEqual(t, est.Log10Flops, 0.0)
}

// TestSimulate_PathMismatch covers out-of-range and degenerate steps.
func TestSimulate_PathMismatch(t *testing.T) {
	shapes := []core.Shape{{2, 2}, {2, 2}}
	for _, path := range []core.Path{
		{{I: 0, J: 2}},
		{{I: 1, J: 1}},
		{{I: -2, J: -1}},
		{{I: 0, J: 1}, {I: 0, J: 1}}, // second step has a single live shape
	} {
		_, err := cost.Simulate(shapes, path)
		require.ErrorIs(t, err, cost.ErrPathMismatch, "path %v", path)
	}
}

// TestCited pins the override formula: log10_flops = round4(log2_size·log10 2),
// no simulation involved.
func TestCited(t *testing.T) {
	est := cost.Cited(33.2)
	require.True(t, est.Cited)
	require.Equal(t, 33.2, est.Log2Size)
	require.Equal(t, core.Round4(33.2*math.Log10(2)), est.Log10Flops)
	require.Equal(t, 9.9942, est.Log10Flops)
}

// TestFallbackChain: linear chain with zeroed, distinguishable figures.
func TestFallbackChain(t *testing.T) {
	path, est := cost.FallbackChain(4)
	require.Equal(t, core.Path{{I: 0, J: 1}, {I: 0, J: 1}, {I: 0, J: 1}}, path)
	require.Equal(t, cost.Estimate{}, est)

	path, est = cost.FallbackChain(1)
	require.Empty(t, path)
	require.Equal(t, cost.Estimate{}, est)
}
