// Package core defines the central data model shared by every einsuite
// package: contraction pairs and paths, tensor shapes, element dtypes,
// per-strategy path records, and the benchmark Instance itself.
//
// What
//
//   - Pair / Path: one pairwise contraction step and an ordered sequence of
//     such steps, in the opt_einsum position convention (each pair names two
//     positions in the *current* tensor list; both are removed, the result
//     is appended at the end).
//   - Shape: ordered positive dimension extents of one tensor, row-major.
//   - Dtype: the fixed element-type set supported by benchmark instances.
//   - PathMeta: a named contraction order plus its cost figures
//     (log2 of peak intermediate size, log10 of total work).
//   - Instance: the complete benchmark record — name, format string, shapes,
//     dtype, tensor count, path records, and the derived column-major views.
//
// Why
//
//	Everything downstream (tree conversion, subgraph extraction, cost
//	estimation, catalog I/O) speaks in these types. Keeping them in one
//	dependency-free leaf package mirrors how the rest of einsuite composes:
//	algorithm packages import core and nothing else of einsuite.
//
// Immutability
//
//	An Instance is never mutated after construction. Derived views (clones,
//	column-major counterparts) return fresh values; Clone performs a deep
//	copy of every slice and map.
//
// Errors
//
//	Validate reports exactly one sentinel per defect class (ErrNoName,
//	ErrBadFormat, ErrShapeCount, ErrBadShape, ErrBadDtype, ErrTensorCount,
//	ErrNoPaths, ErrBadPath), each wrapped with the offending value so
//	callers can branch with errors.Is and still diagnose from the message.
package core
