// Package cost implements the contraction-path cost estimator.
// This file declares the Estimate figures, Simulate, Cited, and the
// degenerate linear-chain fallback.
package cost

import (
	"errors"
	"fmt"
	"math"

	"github.com/einsuite/einsuite/core"
)

// Sentinel errors for cost estimation.
var (
	// ErrPathMismatch is returned when a path step references positions
	// outside the live shape list.
	ErrPathMismatch = errors.New("cost: path does not match shape list")

	// ErrOperandMismatch is returned when operand labels and shapes disagree.
	ErrOperandMismatch = errors.New("cost: operands and shapes disagree")
)

// placeholderExtent is the uniform axis size of simulated intermediates.
const placeholderExtent = 2

// Estimate holds the two cost figures of a contraction order, rounded to
// four decimals. Cited marks figures taken from an external citation rather
// than the replay.
type Estimate struct {
	// Log2Size is log2 of the peak intermediate element count.
	Log2Size float64

	// Log10Flops is log10 of the total multiply-add work.
	Log10Flops float64

	// Cited is true when the figures come from the override formula, not a
	// simulation.
	Cited bool
}

// Simulate replays path against shapes and returns the estimated figures.
//
// The replay mirrors path execution exactly: each step consumes the shapes
// at the normalized positions (higher removed first, then lower) and appends
// a placeholder intermediate of size-2 axes with rank max(1, ra+rb-2). The
// consumed shapes' combined element count feeds both the peak (max over
// steps) and the work total (sum over steps). An empty path yields zeros.
func Simulate(shapes []core.Shape, path core.Path) (Estimate, error) {
	live := make([]core.Shape, len(shapes))
	for i, s := range shapes {
		live[i] = s.Clone()
	}

	var peak, total float64
	for k, step := range path {
		pair := step.Normalized()
		if pair.I < 0 || pair.I == pair.J || pair.J >= len(live) {
			return Estimate{}, fmt.Errorf("%w: step %d is (%d,%d) over %d shapes",
				ErrPathMismatch, k, pair.I, pair.J, len(live))
		}
		a := live[pair.J]
		b := live[pair.I]
		live = append(live[:pair.J], live[pair.J+1:]...)
		live = append(live[:pair.I], live[pair.I+1:]...)

		size := a.Elements() * b.Elements()
		if size > peak {
			peak = size
		}
		total += size

		rank := len(a) + len(b) - 2
		if rank < 1 {
			rank = 1
		}
		next := make(core.Shape, rank)
		for i := range next {
			next[i] = placeholderExtent
		}
		live = append(live, next)
	}

	var est Estimate
	if peak > 0 {
		est.Log2Size = core.Round4(math.Log2(peak))
	}
	if total > 0 {
		est.Log10Flops = core.Round4(math.Log10(total))
	}
	return est, nil
}

// Cited builds an Estimate from a known-good external log2 size figure,
// bypassing the replay: log10_flops = round4(log2_size × log10 2).
func Cited(log2Size float64) Estimate {
	return Estimate{
		Log2Size:   core.Round4(log2Size),
		Log10Flops: core.Round4(log2Size * math.Log10(2)),
		Cited:      true,
	}
}

// FallbackChain returns the degenerate-input fallback for n tensors: a
// trivial linear chain path ([0,1] repeated n-1 times) and zeroed figures.
// Callers use it only when a correct simulation is impossible; the zeroed
// Estimate keeps the fallback distinguishable from any real result.
func FallbackChain(n int) (core.Path, Estimate) {
	if n < 2 {
		return core.Path{}, Estimate{}
	}
	path := make(core.Path, n-1)
	for i := range path {
		path[i] = core.Pair{I: 0, J: 1}
	}
	return path, Estimate{}
}
