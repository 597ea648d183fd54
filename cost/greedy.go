// greedy.go — internal pairwise path optimizer for scalar-output networks.
package cost

import (
	"fmt"

	"github.com/einsuite/einsuite/core"
)

// operandState is one live tensor during the greedy search, reduced to its
// label set; per-label extents are shared across the whole network.
type operandState struct {
	labels map[rune]bool
}

// Greedy finds a contraction path for a scalar-output network by repeatedly
// contracting the label-sharing pair whose intermediate has the smallest
// element count. Labels surviving a contraction are those still present in
// some other live operand; a fully reduced label disappears. When no live
// pair shares a label (disconnected remainder), the first two operands are
// contracted outer-product style.
//
// The result is a valid n-1 step path in live-list positions, suitable for
// Simulate. Greedy is an internal convenience — externally optimized paths
// are always preferred when available.
func Greedy(operands []string, shapes []core.Shape) (core.Path, error) {
	if len(operands) != len(shapes) {
		return nil, fmt.Errorf("%w: %d operands, %d shapes",
			ErrOperandMismatch, len(operands), len(shapes))
	}

	// Shared extent per label; the instance invariant guarantees every
	// occurrence of a label has the same extent.
	extents := make(map[rune]int)
	live := make([]*operandState, len(operands))
	for i, op := range operands {
		runes := []rune(op)
		if len(runes) != len(shapes[i]) {
			return nil, fmt.Errorf("%w: operand %d has %d labels but rank-%d shape",
				ErrOperandMismatch, i, len(runes), len(shapes[i]))
		}
		labels := make(map[rune]bool, len(runes))
		for k, c := range runes {
			labels[c] = true
			extents[c] = shapes[i][k]
		}
		live[i] = &operandState{labels: labels}
	}

	path := make(core.Path, 0, len(live)-1)
	for len(live) > 1 {
		i, j := pickPair(live, extents)
		path = append(path, core.Pair{I: i, J: j})

		merged := contractLabels(live, i, j)
		live = append(live[:j], live[j+1:]...)
		live = append(live[:i], live[i+1:]...)
		live = append(live, merged)
	}
	return path, nil
}

// pickPair chooses the label-sharing pair minimizing the intermediate
// element count; ties keep the lexicographically first pair. Without any
// sharing pair it falls back to (0, 1).
func pickPair(live []*operandState, extents map[rune]int) (int, int) {
	bestI, bestJ := -1, -1
	bestSize := 0.0
	for i := 0; i < len(live); i++ {
		for j := i + 1; j < len(live); j++ {
			if !shares(live[i], live[j]) {
				continue
			}
			size := resultSize(live, i, j, extents)
			if bestI < 0 || size < bestSize {
				bestI, bestJ, bestSize = i, j, size
			}
		}
	}
	if bestI < 0 {
		return 0, 1
	}
	return bestI, bestJ
}

// shares reports whether two operands have a label in common.
func shares(a, b *operandState) bool {
	for c := range a.labels {
		if b.labels[c] {
			return true
		}
	}
	return false
}

// resultSize is the element count of the intermediate produced by
// contracting live[i] and live[j]: the product of extents of their labels
// still needed by some other live operand.
func resultSize(live []*operandState, i, j int, extents map[rune]int) float64 {
	size := 1.0
	for c := range unionLabels(live[i], live[j]) {
		if labelNeededElsewhere(live, i, j, c) {
			size *= float64(extents[c])
		}
	}
	return size
}

// contractLabels builds the merged operand: the union of both label sets,
// restricted to labels still present elsewhere.
func contractLabels(live []*operandState, i, j int) *operandState {
	merged := &operandState{labels: make(map[rune]bool)}
	for c := range unionLabels(live[i], live[j]) {
		if labelNeededElsewhere(live, i, j, c) {
			merged.labels[c] = true
		}
	}
	return merged
}

// unionLabels collects the labels of both operands.
func unionLabels(a, b *operandState) map[rune]bool {
	out := make(map[rune]bool, len(a.labels)+len(b.labels))
	for c := range a.labels {
		out[c] = true
	}
	for c := range b.labels {
		out[c] = true
	}
	return out
}

// labelNeededElsewhere reports whether label c appears in any live operand
// other than positions i and j. The network output is scalar, so a label
// unseen elsewhere is summed away by the contraction.
func labelNeededElsewhere(live []*operandState, i, j int, c rune) bool {
	for k, op := range live {
		if k == i || k == j {
			continue
		}
		if op.labels[c] {
			return true
		}
	}
	return false
}
