// Package subgraph implements the index-sharing adjacency graph and the
// exhaustive-seed BFS extraction of a connected, free-index-minimizing
// subset.
package subgraph

import (
	"fmt"
	"sort"
	"strings"
)

// Adjacency builds the index-sharing graph over the given operand label
// strings: neighbors[i] lists every j ≠ i sharing at least one label with i,
// in ascending order. The graph is rebuilt on demand and never persisted.
func Adjacency(operands []string) [][]int {
	byLabel := make(map[rune][]int)
	for i, op := range operands {
		for _, c := range op {
			tensors := byLabel[c]
			// one entry per tensor per label, even when the label repeats
			if len(tensors) == 0 || tensors[len(tensors)-1] != i {
				byLabel[c] = append(tensors, i)
			}
		}
	}

	sets := make([]map[int]bool, len(operands))
	for i := range sets {
		sets[i] = make(map[int]bool)
	}
	for _, tensors := range byLabel {
		for _, a := range tensors {
			for _, b := range tensors {
				if a != b {
					sets[a][b] = true
				}
			}
		}
	}

	neighbors := make([][]int, len(operands))
	for i, set := range sets {
		neighbors[i] = make([]int, 0, len(set))
		for j := range set {
			neighbors[i] = append(neighbors[i], j)
		}
		sort.Ints(neighbors[i])
	}
	return neighbors
}

// walker encapsulates the mutable scan state of one Extract call.
type walker struct {
	operands  []string
	neighbors [][]int
	target    int
	opts      Options
}

// Extract chooses a connected subset of exactly target tensors minimizing
// the free-index count at the subset boundary.
//
// Every tensor is tried as a BFS seed in ascending order; a seed whose
// reachable component is smaller than target is discarded. Among qualifying
// seeds the strictly smallest free-index count wins, ties keeping the first
// (lowest-seed) subset. Returns ErrNotConnected when no seed qualifies.
func Extract(operands []string, target int, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	n := len(operands)
	if target <= 1 || target >= n {
		return nil, fmt.Errorf("%w: target %d for %d tensors (need 1 < target < %d)",
			ErrTargetSize, target, n, n)
	}

	w := &walker{
		operands:  operands,
		neighbors: Adjacency(operands),
		target:    target,
		opts:      o,
	}

	seeds := n
	if o.MaxSeeds > 0 && o.MaxSeeds < seeds {
		seeds = o.MaxSeeds
	}

	var best *Result
	largest := 0
	for seed := 0; seed < seeds; seed++ {
		subset := w.grow(seed)
		if len(subset) > largest {
			largest = len(subset)
		}
		if len(subset) < target {
			continue
		}
		free := w.countFree(subset)
		o.OnCandidate(seed, free)
		if best == nil || free < best.FreeIndices {
			best = w.result(seed, subset, free)
		}
	}
	if best == nil {
		return nil, fmt.Errorf("%w: want %d connected tensors, largest component has %d",
			ErrNotConnected, target, largest)
	}
	return best, nil
}

// grow runs a bounded BFS from seed, visiting neighbors in ascending order
// and stopping enqueueing once the visited set reaches the target size.
// Returns the visited tensors sorted ascending.
func (w *walker) grow(seed int) []int {
	visited := make(map[int]bool, w.target)
	visited[seed] = true
	queue := []int{seed}
	for len(queue) > 0 && len(visited) < w.target {
		current := queue[0]
		queue = queue[1:]
		for _, nbr := range w.neighbors[current] {
			if visited[nbr] {
				continue
			}
			visited[nbr] = true
			queue = append(queue, nbr)
			if len(visited) >= w.target {
				break
			}
		}
	}
	subset := make([]int, 0, len(visited))
	for t := range visited {
		subset = append(subset, t)
	}
	sort.Ints(subset)
	return subset
}

// countFree scores a subset: the number of labels occurring exactly once
// across the subset's operands, counting every occurrence (a label repeated
// within one operand is not free).
func (w *walker) countFree(subset []int) int {
	counts := make(map[rune]int)
	for _, t := range subset {
		for _, c := range w.operands[t] {
			counts[c]++
		}
	}
	free := 0
	for _, cnt := range counts {
		if cnt == 1 {
			free++
		}
	}
	return free
}

// result assembles the Result for a winning subset, including the
// scalar-output format string over the subset's operands.
func (w *walker) result(seed int, subset []int, free int) *Result {
	picked := make([]string, len(subset))
	for i, t := range subset {
		picked[i] = w.operands[t]
	}
	return &Result{
		Tensors:     subset,
		Seed:        seed,
		FreeIndices: free,
		Format:      strings.Join(picked, ",") + "->",
	}
}
