// path.go — tree → flat path reconstruction and the inverse fold.
package ctree

import (
	"fmt"

	"github.com/einsuite/einsuite/core"
)

// extractor owns the mutable scratch of one ExtractPath call: the live list
// of tensor identifiers and the accumulated path. It never escapes the call.
type extractor struct {
	numInputs int
	live      []int
	path      core.Path
}

// ExtractPath reconstructs the flat contraction path encoded by the tree and
// returns it together with the input-tensor (leaf) count.
//
// The live list starts as [0 .. n-1]. Each internal node resolves its two
// children to result identifiers, looks up their *current* positions by
// value, appends the normalized (low, high) pair, removes the higher
// position first and the lower second, then appends the intermediate's
// identifier n + steps - 1 at the end. A single-leaf tree yields an empty
// path; a full binary tree yields exactly n-1 steps.
func ExtractPath(root *Node) (core.Path, int, error) {
	numInputs, err := root.Leaves()
	if err != nil {
		return nil, 0, err
	}
	if err = root.validateLeaves(numInputs, make(map[int]bool, numInputs)); err != nil {
		return nil, 0, err
	}

	ex := &extractor{
		numInputs: numInputs,
		live:      make([]int, numInputs),
		path:      make(core.Path, 0, numInputs-1),
	}
	for i := range ex.live {
		ex.live[i] = i
	}
	ex.resolve(root)
	return ex.path, numInputs, nil
}

// resolve walks the subtree and returns the identifier of its result tensor.
// Leaves resolve to tensorindex-1; internal nodes contract their children.
// Arity and leaf ranges were validated up front, so the walk cannot fail.
func (ex *extractor) resolve(node *Node) int {
	if node.IsLeaf {
		return node.TensorIndex - 1
	}
	left := ex.resolve(node.Args[0])
	right := ex.resolve(node.Args[1])

	pair := core.Pair{I: ex.position(left), J: ex.position(right)}.Normalized()
	ex.path = append(ex.path, pair)

	// Remove the higher position first so the lower one stays valid.
	ex.live = append(ex.live[:pair.J], ex.live[pair.J+1:]...)
	ex.live = append(ex.live[:pair.I], ex.live[pair.I+1:]...)

	id := ex.numInputs + len(ex.path) - 1
	ex.live = append(ex.live, id)
	return id
}

// position finds the current position of a result identifier in the live
// list. Lookup is by value: positions drift as earlier contractions remove
// elements. Benchmark-scale inputs keep the linear scan cheap.
func (ex *extractor) position(id int) int {
	for i, v := range ex.live {
		if v == id {
			return i
		}
	}
	// Unreachable after validation: every identifier is appended before any
	// lookup of it.
	panic(fmt.Sprintf("ctree: identifier %d not in live list", id))
}

// FromPath folds a flat contraction path over operandCount leaf nodes back
// into a nested binary tree, the exact inverse of ExtractPath: each step
// removes the higher position first, then the lower, and appends the
// contraction of the two at the end of the node list.
//
// Returns ErrPathShape when a step references a position outside the current
// node list or when the path does not reduce the list to a single root.
func FromPath(operandCount int, path core.Path) (*Node, error) {
	if operandCount < 1 {
		return nil, fmt.Errorf("%w: %d operands", ErrPathShape, operandCount)
	}
	nodes := make([]*Node, operandCount)
	for i := range nodes {
		nodes[i] = Leaf(i + 1)
	}
	for k, step := range path {
		pair := step.Normalized()
		if pair.I < 0 || pair.I == pair.J || pair.J >= len(nodes) {
			return nil, fmt.Errorf("%w: step %d is (%d,%d) over %d tensors",
				ErrPathShape, k, pair.I, pair.J, len(nodes))
		}
		right := nodes[pair.J]
		left := nodes[pair.I]
		nodes = append(nodes[:pair.J], nodes[pair.J+1:]...)
		nodes = append(nodes[:pair.I], nodes[pair.I+1:]...)
		nodes = append(nodes, Contract(left, right))
	}
	if len(nodes) != 1 {
		return nil, fmt.Errorf("%w: %d nodes remain after %d steps",
			ErrPathShape, len(nodes), len(path))
	}
	return nodes[0], nil
}
