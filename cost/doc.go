// Package cost estimates the cost of a contraction path — peak intermediate
// size and total multiply-add work — and supplies a greedy internal path
// optimizer for networks without an externally supplied order.
//
// What
//
//   - Simulate: replay a path against a mutable shape list (remove the
//     higher position first, then the lower, append the result at the end)
//     and report log2 of the peak intermediate element count and log10 of
//     the accumulated work, both rounded to four decimals.
//   - Cited: accept a known-good published size figure instead of
//     simulating; the work figure is derived as log2_size × log10(2). The
//     result is tagged so callers and tests can tell the two sources apart.
//   - FallbackChain: the degenerate-input fallback — a trivial linear chain
//     path with zeroed figures, used only when no correct simulation is
//     possible. It is a last-resort approximation, not a correctness claim.
//   - Greedy: a pairwise optimizer that repeatedly contracts the
//     label-sharing pair yielding the smallest intermediate, producing a
//     valid path for Simulate.
//
// Approximation
//
//	Simulate deliberately keeps the source model: each step's work is the
//	product of both operands' element counts (an upper-bound proxy that does
//	not cancel shared axes), and the appended intermediate is a placeholder
//	of size-2 axes with rank max(1, ra+rb-2), assuming exactly one shared
//	axis per binary contraction. Downstream consumers calibrate against
//	exactly this approximation; do not "fix" it.
//
// Errors
//
//   - ErrPathMismatch    — a step references positions outside the live
//     shape list (consistency).
//   - ErrOperandMismatch — Greedy given disagreeing operand and shape lists.
package cost
