// Package subgraph provides tunable options and error definitions for the
// connected-subset extraction.
package subgraph

import (
	"errors"
	"fmt"

	"github.com/einsuite/einsuite/core"
)

// Sentinel errors for subgraph extraction.
var (
	// ErrTargetSize is returned when the requested subset size is not
	// strictly between 1 and the tensor count.
	ErrTargetSize = errors.New("subgraph: target size out of range")

	// ErrNotConnected is returned when no seed yields a connected component
	// of the requested size.
	ErrNotConnected = errors.New("subgraph: no connected component of requested size")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("subgraph: invalid option supplied")
)

// Option configures extraction behavior via functional arguments.
// An invalid Option is recorded internally and surfaced as
// ErrOptionViolation when Extract is invoked.
type Option func(*Options)

// Options holds parameters and callbacks customizing the seed scan.
type Options struct {
	// OnCandidate is called once per qualifying seed with the seed index
	// and the subset's free-index count, in scan order.
	OnCandidate func(seed, freeIndices int)

	// MaxSeeds, if > 0, limits the scan to the first MaxSeeds seeds.
	// A value of 0 scans every tensor (the default, exhaustive search).
	MaxSeeds int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with the exhaustive scan and no-op hook.
func DefaultOptions() Options {
	return Options{
		OnCandidate: func(int, int) {},
		MaxSeeds:    0,
		err:         nil,
	}
}

// WithOnCandidate registers a hook invoked for every qualifying seed.
func WithOnCandidate(fn func(seed, freeIndices int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnCandidate = fn
		}
	}
}

// WithMaxSeeds limits the seed scan.
//
//	k > 0:  try only seeds 0..k-1
//	k == 0: explicit exhaustive scan (default)
//	k < 0:  invalid option → ErrOptionViolation
func WithMaxSeeds(k int) Option {
	return func(o *Options) {
		if k < 0 {
			o.err = fmt.Errorf("%w: MaxSeeds cannot be negative (%d)", ErrOptionViolation, k)
			return
		}
		o.MaxSeeds = k
	}
}

// Result describes the chosen subset.
type Result struct {
	// Tensors are the 0-based positions of the chosen operands in the
	// original network, ascending.
	Tensors []int

	// Seed is the BFS seed that produced the winning subset.
	Seed int

	// FreeIndices is the subset's boundary score: the number of indices
	// occurring in exactly one operand inside the subset.
	FreeIndices int

	// Format is the subset re-emitted as a scalar-output format string
	// ("op,op,...->"): every surviving index is summed over.
	Format string
}

// Select picks the subset's entries out of a parallel per-tensor list
// (shapes, dtypes, ...), preserving ascending tensor order.
func (r *Result) Select(shapes []core.Shape) []core.Shape {
	out := make([]core.Shape, len(r.Tensors))
	for i, t := range r.Tensors {
		out[i] = shapes[t].Clone()
	}
	return out
}
