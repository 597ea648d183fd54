// instance.go — the benchmark Instance record, deep cloning, and validation.
package core

import (
	"fmt"
	"strings"
)

// Instance is a complete benchmark record: the einsum problem (format string
// + shapes + dtype), its size, one or more named contraction orders with
// cost figures, and the derived column-major views.
//
// Instances are immutable once written; a new instance supersedes rather
// than mutates. All field names and types match the on-disk JSON schema
// consumed by external benchmark runners, so omission of any field is a
// format error for them (see Validate).
type Instance struct {
	// Name uniquely identifies the instance; it is the join key used by
	// downstream result reporting.
	Name string `json:"name"`

	// FormatString is the row-major einsum specification,
	// e.g. "ab,bc->ac" or "ab,bc->0" for a scalar reduction.
	FormatString string `json:"format_string"`

	// Shapes holds one row-major shape per input tensor, in operand order.
	Shapes []Shape `json:"shapes"`

	// Dtype is the element type shared by every tensor.
	Dtype Dtype `json:"dtype"`

	// NumTensors is the input tensor count; it must equal len(Shapes) and
	// the operand count of FormatString.
	NumTensors int `json:"num_tensors"`

	// Paths maps strategy names (opt_size, opt_flops, ...) to contraction
	// orders and their cost figures.
	Paths map[string]PathMeta `json:"paths"`

	// FormatRowMajor repeats FormatString under its explicit name, and
	// FormatColMajor / ShapesColMajor are the derived column-major views
	// (every operand label string and every shape reversed).
	FormatRowMajor string  `json:"format_string_rowmajor"`
	FormatColMajor string  `json:"format_string_colmajor"`
	ShapesColMajor []Shape `json:"shapes_colmajor"`
}

// Clone returns a deep copy of the instance. Mutating the copy never
// affects the original.
func (in *Instance) Clone() *Instance {
	out := *in
	out.Shapes = cloneShapes(in.Shapes)
	out.ShapesColMajor = cloneShapes(in.ShapesColMajor)
	if in.Paths != nil {
		out.Paths = make(map[string]PathMeta, len(in.Paths))
		for name, meta := range in.Paths {
			out.Paths[name] = meta.Clone()
		}
	}
	return &out
}

// cloneShapes deep-copies a shape list, preserving nil.
func cloneShapes(shapes []Shape) []Shape {
	if shapes == nil {
		return nil
	}
	out := make([]Shape, len(shapes))
	for i, s := range shapes {
		out[i] = s.Clone()
	}
	return out
}

// Validate checks the record against the fixed schema: every field present,
// counts agreeing, extents positive, dtype supported, at least one path
// record with well-formed pairs. It reports the first defect found, wrapped
// around the matching sentinel.
func (in *Instance) Validate() error {
	if in.Name == "" {
		return ErrNoName
	}
	operands, err := splitOperands(in.FormatString)
	if err != nil {
		return err
	}
	if in.NumTensors != len(operands) {
		return fmt.Errorf("%w: num_tensors=%d but format string has %d operands",
			ErrTensorCount, in.NumTensors, len(operands))
	}
	if len(in.Shapes) != len(operands) {
		return fmt.Errorf("%w: %d shapes for %d operands",
			ErrShapeCount, len(in.Shapes), len(operands))
	}
	for i, s := range in.Shapes {
		if len(s) != len([]rune(operands[i])) {
			return fmt.Errorf("%w: operand %d has %d labels but rank-%d shape",
				ErrShapeCount, i, len([]rune(operands[i])), len(s))
		}
		for _, d := range s {
			if d <= 0 {
				return fmt.Errorf("%w: extent %d in tensor %d", ErrBadShape, d, i)
			}
		}
	}
	if _, err = ParseDtype(string(in.Dtype)); err != nil {
		return err
	}
	if len(in.Paths) == 0 {
		return fmt.Errorf("%w: instance %q", ErrNoPaths, in.Name)
	}
	for name, meta := range in.Paths {
		for k, pair := range meta.Path {
			if pair.I < 0 || pair.I >= pair.J {
				return fmt.Errorf("%w: %s step %d is (%d,%d)",
					ErrBadPath, name, k, pair.I, pair.J)
			}
		}
	}
	if in.FormatRowMajor == "" || in.FormatColMajor == "" {
		return fmt.Errorf("%w: missing row/col-major views", ErrBadFormat)
	}
	if len(in.ShapesColMajor) != len(in.Shapes) {
		return fmt.Errorf("%w: %d colmajor shapes for %d shapes",
			ErrShapeCount, len(in.ShapesColMajor), len(in.Shapes))
	}
	return nil
}

// splitOperands splits a format string into its operand label strings,
// without interpreting the labels. The full codec lives in package einsum;
// validation only needs the operand count.
func splitOperands(format string) ([]string, error) {
	head, _, ok := strings.Cut(format, "->")
	if !ok {
		return nil, fmt.Errorf("%w: %q has no \"->\"", ErrBadFormat, format)
	}
	return strings.Split(head, ","), nil
}
