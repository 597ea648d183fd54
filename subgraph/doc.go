// Package subgraph extracts a connected sub-network of a target size from a
// tensor network, minimizing the indices left free at the boundary.
//
// What
//
//   - Adjacency: build the index-sharing graph over tensors — tensor i is
//     adjacent to tensor j iff their label strings share at least one
//     symbol. The graph is derived, ephemeral, and rebuilt on demand; it is
//     never persisted.
//   - Extract: scan *every* tensor as a breadth-first seed, grow a visited
//     set to the target size, and keep the subset whose free-index count is
//     strictly smallest. An index is free for a subset when, counting only
//     operands inside the subset, it occurs exactly once.
//
// Seed scan
//
//	The exhaustive outer loop over seeds is deliberate: benchmark quality
//	over speed. Seeds are tried in ascending order and ties keep the first
//	(lowest-seed) subset, so results are fully deterministic. Within one
//	BFS, neighbors are visited in ascending numeric order and enqueueing
//	stops as soon as the visited set reaches the target size.
//
// Result
//
//	The chosen subset is re-emitted as a new scalar-output format string
//	(every surviving index summed over), regardless of the original
//	network's output.
//
// Complexity (n = tensors, L = total labels)
//
//   - Adjacency: O(L + edges).
//   - Extract:   O(n · (n + edges)) — one bounded BFS per seed.
//
// Errors
//
//   - ErrTargetSize      — target outside (1, n) (consistency).
//   - ErrNotConnected    — no seed reaches a component of the target size
//     (consistency; the error reports the largest component found).
//   - ErrOptionViolation — invalid functional option.
package subgraph
