// Package core declares Pair, Path, Shape, Dtype, PathMeta, Instance,
// and the sentinel errors used by Instance validation.
package core

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for instance validation and JSON decoding.
var (
	// ErrNoName indicates an instance with an empty name.
	ErrNoName = errors.New("core: instance name is empty")

	// ErrBadFormat indicates a format string without the "->" separator.
	ErrBadFormat = errors.New("core: malformed format string")

	// ErrShapeCount indicates a mismatch between operand count and shape count.
	ErrShapeCount = errors.New("core: shape count mismatch")

	// ErrBadShape indicates a shape with a non-positive dimension extent.
	ErrBadShape = errors.New("core: non-positive shape extent")

	// ErrBadDtype indicates an element type outside the supported set.
	ErrBadDtype = errors.New("core: unsupported dtype")

	// ErrTensorCount indicates num_tensors disagreeing with the operand list.
	ErrTensorCount = errors.New("core: tensor count mismatch")

	// ErrNoPaths indicates an instance without any path record.
	ErrNoPaths = errors.New("core: no path records")

	// ErrBadPath indicates a malformed contraction pair (wrong arity or i >= j).
	ErrBadPath = errors.New("core: malformed contraction pair")
)

// Canonical strategy names for path records. The Paths map is an open
// string-keyed set; these two are the names external catalogs ship with.
const (
	StrategyOptSize  = "opt_size"
	StrategyOptFlops = "opt_flops"
)

// roundDigits is the fixed reporting precision for cost figures.
const roundDigits = 1e4

// Round4 rounds x to four decimal places, the reporting precision used by
// every cost figure in an instance.
func Round4(x float64) float64 {
	return math.Round(x*roundDigits) / roundDigits
}

// Pair names the two positions consumed by a single pairwise contraction.
// Positions refer to the live tensor list at the time of the step; the
// normalized form has I < J.
type Pair struct {
	I int
	J int
}

// Normalized returns the pair with the lower position first.
func (p Pair) Normalized() Pair {
	if p.I > p.J {
		return Pair{I: p.J, J: p.I}
	}
	return p
}

// MarshalJSON renders the pair in the on-disk form [i, j].
func (p Pair) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]int{p.I, p.J})
}

// UnmarshalJSON parses the on-disk form [i, j]; any other arity is ErrBadPath.
func (p *Pair) UnmarshalJSON(data []byte) error {
	var raw []int
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("%w: %v", ErrBadPath, err)
	}
	if len(raw) != 2 {
		return fmt.Errorf("%w: got %d positions, want 2", ErrBadPath, len(raw))
	}
	p.I, p.J = raw[0], raw[1]
	return nil
}

// Path is an ordered sequence of pairwise contraction steps. After step k the
// two named positions are removed from the live tensor list and the result is
// appended at the end; a full contraction of n tensors has exactly n-1 steps.
type Path []Pair

// Clone returns a deep copy of the path.
func (p Path) Clone() Path {
	if p == nil {
		return nil
	}
	out := make(Path, len(p))
	copy(out, p)
	return out
}

// Shape is the ordered sequence of dimension extents of one tensor,
// in row-major label order.
type Shape []int

// Elements returns the total element count of the shape as a float64.
// Float accumulation keeps very high-rank intermediates representable;
// callers only ever consume the logarithm.
func (s Shape) Elements() float64 {
	n := 1.0
	for _, d := range s {
		n *= float64(d)
	}
	return n
}

// Reversed returns a copy of the shape with its extents in reverse order
// (the column-major counterpart of a row-major shape).
func (s Shape) Reversed() Shape {
	out := make(Shape, len(s))
	for i, d := range s {
		out[len(s)-1-i] = d
	}
	return out
}

// Clone returns a deep copy of the shape.
func (s Shape) Clone() Shape {
	if s == nil {
		return nil
	}
	out := make(Shape, len(s))
	copy(out, s)
	return out
}

// Dtype tags the element type of every tensor in an instance.
type Dtype string

// The supported element types. Benchmark catalogs use exactly these two.
const (
	Float64    Dtype = "float64"
	Complex128 Dtype = "complex128"
)

// ParseDtype validates s against the supported set.
func ParseDtype(s string) (Dtype, error) {
	switch Dtype(s) {
	case Float64, Complex128:
		return Dtype(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrBadDtype, s)
	}
}

// PathMeta is one named contraction order and its cost figures.
// Log2Size is log2 of the peak intermediate element count; Log10Flops is
// log10 of the total multiply-add work. Both are rounded to four decimals.
type PathMeta struct {
	Path       Path    `json:"path"`
	Log2Size   float64 `json:"log2_size"`
	Log10Flops float64 `json:"log10_flops"`
}

// Clone returns a deep copy of the record.
func (m PathMeta) Clone() PathMeta {
	m.Path = m.Path.Clone()
	return m
}
