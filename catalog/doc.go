// Package catalog builds benchmark instances and moves them on and off disk.
//
// What
//
//   - FromTree: the conversion pipeline — an externally supplied binary
//     contraction tree plus its parallel index-config list becomes a
//     complete Instance: reconstructed path, assigned labels, uniform
//     shapes, estimated (or cited) cost figures, and both major-order views.
//   - Lighten: the extraction pipeline — carve a connected sub-network of a
//     target size out of an existing instance, optimize a path for it
//     internally, and emit a new scalar-output instance superseding nothing.
//   - Load / Save / Scan: individual JSON instance files, in the exact
//     schema external benchmark runners consume. Scan reads a directory in
//     sorted order; one unreadable file never aborts the remaining files.
//   - Filter: dataset selection thresholds (work, size, dtype, tensor
//     count), loadable from a YAML config.
//
// File format
//
//	One instance per *.json file, UTF-8, two-space indented, HTML escaping
//	off (format strings contain "->" and non-ASCII symbols). Every field is
//	mandatory; Load validates before returning.
//
// Fallback
//
//	When Lighten cannot complete a cost simulation for the extracted
//	sub-network, it falls back to a trivial linear-chain path with zeroed
//	figures rather than aborting. The fallback is distinguishable by its
//	zeroed Estimate; it is a last-resort approximation, not a correctness
//	claim.
package catalog
