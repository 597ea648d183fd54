package cost_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/einsuite/einsuite/core"
	"github.com/einsuite/einsuite/cost"
)

// TestGreedy_Chain: on "ab,bc,cd" with growing extents the cheapest first
// contraction is the (1,2) pair — it reduces both c and d immediately.
func TestGreedy_Chain(t *testing.T) {
	operands := []string{"ab", "bc", "cd"}
	shapes := []core.Shape{{2, 3}, {3, 4}, {4, 5}}
	path, err := cost.Greedy(operands, shapes)
	require.NoError(t, err)
	require.Equal(t, core.Path{{I: 1, J: 2}, {I: 0, J: 1}}, path)
}

// TestGreedy_PathIsValid: n-1 steps, every step inside the shrinking list,
// and Simulate accepts the result.
func TestGreedy_PathIsValid(t *testing.T) {
	cases := []struct {
		operands []string
		shapes   []core.Shape
	}{
		{[]string{"ab", "bc"}, []core.Shape{{2, 2}, {2, 2}}},
		{[]string{"ab", "bc", "cd", "de"}, []core.Shape{{2, 2}, {2, 2}, {2, 2}, {2, 2}}},
		{[]string{"abc", "bd", "ce", "de"}, []core.Shape{{2, 3, 4}, {3, 5}, {4, 6}, {5, 6}}},
	}
	for _, tc := range cases {
		path, err := cost.Greedy(tc.operands, tc.shapes)
		require.NoError(t, err)
		require.Len(t, path, len(tc.operands)-1)
		for k, pair := range path {
			require.GreaterOrEqual(t, pair.I, 0)
			require.Less(t, pair.I, pair.J)
			require.Less(t, pair.J, len(tc.operands)-k)
		}
		_, err = cost.Simulate(tc.shapes, path)
		require.NoError(t, err)
	}
}

// TestGreedy_Deterministic repeats one optimization.
func TestGreedy_Deterministic(t *testing.T) {
	operands := []string{"abc", "bd", "ce", "de"}
	shapes := []core.Shape{{2, 3, 4}, {3, 5}, {4, 6}, {5, 6}}
	first, err := cost.Greedy(operands, shapes)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := cost.Greedy(operands, shapes)
		require.NoError(t, err)
		require.Equal(t, first, again)
	}
}

// TestGreedy_DisconnectedFallsBack: without any shared label the remainder
// is contracted outer-product style from the front.
func TestGreedy_DisconnectedFallsBack(t *testing.T) {
	path, err := cost.Greedy([]string{"ab", "cd"}, []core.Shape{{2, 2}, {2, 2}})
	require.NoError(t, err)
	require.Equal(t, core.Path{{I: 0, J: 1}}, path)
}

// TestGreedy_OperandMismatch covers disagreeing inputs.
func TestGreedy_OperandMismatch(t *testing.T) {
	_, err := cost.Greedy([]string{"ab"}, []core.Shape{{2, 2}, {2, 2}})
	require.ErrorIs(t, err, cost.ErrOperandMismatch)

	_, err = cost.Greedy([]string{"abc"}, []core.Shape{{2, 2}})
	require.ErrorIs(t, err, cost.ErrOperandMismatch)
}
