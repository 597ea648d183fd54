// Package ctree models binary contraction trees and converts them to and
// from flat contraction paths.
//
// What
//
//   - Node: one tree node — a leaf carrying a 1-based input-tensor index, or
//     an internal node contracting the results of exactly two children. The
//     JSON form matches the external tree source ("isleaf", "tensorindex",
//     "args").
//   - ExtractPath: reconstruct the flat pairwise contraction path from a
//     tree, tracking tensor positions in a shrinking live list exactly as an
//     execution engine would (remove the higher position first, then the
//     lower, append the result at the end).
//   - FromPath: the inverse — fold a flat path over a list of leaf nodes
//     back into a nested binary tree.
//
// Position tracking
//
//	Path entries name positions in the *current* tensor list, so earlier
//	contractions shift the positions of later operands. ExtractPath keeps an
//	explicit live list of tensor identifiers (inputs 0..n-1, then n, n+1, ...
//	for intermediates) and resolves each subtree to an identifier; positions
//	are looked up by value at contraction time. The list is strictly local
//	scratch — nothing escapes the call.
//
// Determinism
//
//	The traversal is a plain post-order walk with no map iteration anywhere,
//	so repeated calls on the same tree produce byte-identical paths.
//
// Complexity (L = leaf count)
//
//   - Time:   O(L²) — one linear position lookup per contraction step.
//   - Memory: O(L) for the live list and result path.
//
// Errors
//
//   - ErrNilNode        — nil tree or nil child pointer (structural).
//   - ErrArity          — internal node without exactly two children (structural).
//   - ErrLeafIndex      — duplicate or out-of-range leaf tensor index (structural).
//   - ErrPathShape      — path that does not reduce the node list to a single
//     root, or references positions outside the live list (structural).
//   - ErrInputsMismatch — tree leaf count exceeding the supplied index-config
//     list (consistency).
package ctree
