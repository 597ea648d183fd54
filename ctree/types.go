// Package ctree declares the Node type and sentinel errors.
package ctree

import (
	"errors"
	"fmt"
)

// Sentinel errors for tree validation and path conversion.
var (
	// ErrNilNode is returned when a nil tree or nil child pointer is encountered.
	ErrNilNode = errors.New("ctree: nil node")

	// ErrArity is returned when an internal node does not have exactly two children.
	ErrArity = errors.New("ctree: internal node must have exactly two children")

	// ErrLeafIndex is returned for a duplicate or out-of-range leaf tensor index.
	ErrLeafIndex = errors.New("ctree: bad leaf tensor index")

	// ErrPathShape is returned when a flat path cannot be folded into a tree.
	ErrPathShape = errors.New("ctree: path does not form a binary tree")

	// ErrInputsMismatch is returned when the tree has more leaves than the
	// supplied index-config list has entries.
	ErrInputsMismatch = errors.New("ctree: leaf count exceeds index-config count")
)

// Node is one node of a binary contraction tree.
//
// A leaf (IsLeaf == true) carries TensorIndex, the 1-based position of an
// input tensor; an internal node carries exactly two children in Args and
// represents the pairwise contraction of their results. Trees are built once
// by an external source and consumed read-only.
type Node struct {
	IsLeaf      bool    `json:"isleaf"`
	TensorIndex int     `json:"tensorindex,omitempty"`
	Args        []*Node `json:"args,omitempty"`
}

// Leaf constructs a leaf node for the 1-based input tensor index.
func Leaf(tensorIndex int) *Node {
	return &Node{IsLeaf: true, TensorIndex: tensorIndex}
}

// Contract constructs an internal node contracting left and right.
func Contract(left, right *Node) *Node {
	return &Node{Args: []*Node{left, right}}
}

// Leaves counts the leaf nodes of the tree, verifying binary arity along the
// way. A single leaf counts as one.
func (n *Node) Leaves() (int, error) {
	if n == nil {
		return 0, ErrNilNode
	}
	if n.IsLeaf {
		return 1, nil
	}
	if len(n.Args) != 2 {
		return 0, fmt.Errorf("%w: got %d", ErrArity, len(n.Args))
	}
	left, err := n.Args[0].Leaves()
	if err != nil {
		return 0, err
	}
	right, err := n.Args[1].Leaves()
	if err != nil {
		return 0, err
	}
	return left + right, nil
}

// validateLeaves checks that every leaf tensor index is unique and within
// [1, numInputs].
func (n *Node) validateLeaves(numInputs int, seen map[int]bool) error {
	if n == nil {
		return ErrNilNode
	}
	if n.IsLeaf {
		ti := n.TensorIndex
		if ti < 1 || ti > numInputs {
			return fmt.Errorf("%w: %d outside [1, %d]", ErrLeafIndex, ti, numInputs)
		}
		if seen[ti] {
			return fmt.Errorf("%w: duplicate index %d", ErrLeafIndex, ti)
		}
		seen[ti] = true
		return nil
	}
	for _, child := range n.Args {
		if err := child.validateLeaves(numInputs, seen); err != nil {
			return err
		}
	}
	return nil
}

// ValidateInputs checks the tree against its parallel index-config list:
// inputs[i] must exist for every leaf tensor i+1. External sources may ship
// surplus configs; too few is a consistency error.
func ValidateInputs(leaves int, inputs [][]int) error {
	if leaves > len(inputs) {
		return fmt.Errorf("%w: tree has %d leaves but inputs has %d entries",
			ErrInputsMismatch, leaves, len(inputs))
	}
	return nil
}
