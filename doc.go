// Package einsuite builds, curates and reports on tensor-network
// contraction benchmark instances.
//
// 🚀 What is einsuite?
//
//	A toolkit for turning contraction trees into portable einsum benchmark
//	instances and keeping a catalog of them honest:
//		• Label assignment: stable index-id → symbol mapping over a large
//		  multi-script alphabet
//		• Path reconstruction: binary contraction trees → pairwise paths in
//		  the live-list convention
//		• Sub-network extraction: connected, free-index-minimizing subsets
//		  for lighter benchmark variants
//		• Cost figures: log2 of the peak intermediate size and log10 of the
//		  floating-point work along a path
//		• Row-major / column-major format views for engines of either
//		  memory convention
//
// Everything is organized under per-concern subpackages:
//
//	core/     — shared data model: pairs, paths, shapes, dtypes, instances
//	einsum/   — label alphabet, format-string codec, major-order transform
//	ctree/    — contraction tree type and tree ⇄ path conversion
//	subgraph/ — adjacency over shared labels and connected extraction
//	cost/     — path replay, cost estimates, greedy path search
//	catalog/  — JSON instance files, dataset filters, tree conversion
//	report/   — benchmark log ingestion and markdown comparison tables
//
// The cmd/einsuite binary wires it all into convert, lighten, select,
// show and report subcommands.
//
//	go get github.com/einsuite/einsuite
package einsuite
