// convert.go — the tree-to-instance conversion pipeline.
package catalog

import (
	"fmt"

	"github.com/einsuite/einsuite/core"
	"github.com/einsuite/einsuite/cost"
	"github.com/einsuite/einsuite/ctree"
	"github.com/einsuite/einsuite/einsum"
)

// ConvertOption configures FromTree via functional arguments.
type ConvertOption func(*convertConfig)

// convertConfig aggregates the conversion knobs; defaults are deterministic.
type convertConfig struct {
	extent    int        // uniform dimension size for every axis
	dtype     core.Dtype // element type tag
	citedLog2 *float64   // external size citation; nil means simulate
	err       error      // recorded option violation
}

// defaultExtent matches the external tree-source convention of uniform
// size-2 dimensions.
const defaultExtent = 2

func newConvertConfig(opts ...ConvertOption) convertConfig {
	cfg := convertConfig{
		extent: defaultExtent,
		dtype:  core.Float64,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithExtent overrides the uniform dimension size (must be positive).
func WithExtent(n int) ConvertOption {
	return func(c *convertConfig) {
		if n < 1 {
			c.err = fmt.Errorf("%w: extent must be positive (%d)", core.ErrBadShape, n)
			return
		}
		c.extent = n
	}
}

// WithDtype overrides the element type tag.
func WithDtype(dt core.Dtype) ConvertOption {
	return func(c *convertConfig) {
		if _, err := core.ParseDtype(string(dt)); err != nil {
			c.err = err
			return
		}
		c.dtype = dt
	}
}

// WithCitedSize supplies a known-good external log2 size figure; the cost
// figures are then derived from it instead of simulated.
func WithCitedSize(log2Size float64) ConvertOption {
	return func(c *convertConfig) {
		v := log2Size
		c.citedLog2 = &v
	}
}

// FromTree converts an external contraction tree plus its parallel
// index-config list into a complete benchmark instance.
//
// Pipeline: reconstruct the flat path from the tree, check the index-config
// list covers every leaf, assign symbols from the sorted identifier set,
// emit the scalar-output format string ("->0"), build uniform shapes, then
// estimate cost by replay — or from the citation when WithCitedSize is
// given. Both canonical strategies receive the same record, and both
// major-order views are attached.
func FromTree(name string, root *ctree.Node, inputs [][]int, opts ...ConvertOption) (*core.Instance, error) {
	cfg := newConvertConfig(opts...)
	if cfg.err != nil {
		return nil, cfg.err
	}

	path, numInputs, err := ctree.ExtractPath(root)
	if err != nil {
		return nil, err
	}
	if err = ctree.ValidateInputs(numInputs, inputs); err != nil {
		return nil, err
	}

	operands, err := einsum.Assign(inputs[:numInputs])
	if err != nil {
		return nil, err
	}
	format := einsum.Format(operands, einsum.ScalarOutput)

	shapes := make([]core.Shape, numInputs)
	for i := range shapes {
		shapes[i] = make(core.Shape, len(inputs[i]))
		for k := range shapes[i] {
			shapes[i][k] = cfg.extent
		}
	}

	var est cost.Estimate
	if cfg.citedLog2 != nil {
		est = cost.Cited(*cfg.citedLog2)
	} else if est, err = cost.Simulate(shapes, path); err != nil {
		return nil, err
	}

	meta := core.PathMeta{
		Path:       path,
		Log2Size:   est.Log2Size,
		Log10Flops: est.Log10Flops,
	}
	in := &core.Instance{
		Name:         name,
		FormatString: format,
		Shapes:       shapes,
		Dtype:        cfg.dtype,
		NumTensors:   numInputs,
		Paths: map[string]core.PathMeta{
			core.StrategyOptSize:  meta.Clone(),
			core.StrategyOptFlops: meta.Clone(),
		},
	}
	return finish(in)
}

// finish attaches the major-order views and validates the assembled record.
func finish(in *core.Instance) (*core.Instance, error) {
	colmajor, err := einsum.ToColMajor(in.FormatString)
	if err != nil {
		return nil, err
	}
	in.FormatRowMajor = in.FormatString
	in.FormatColMajor = colmajor
	in.ShapesColMajor = einsum.ReverseShapes(in.Shapes)
	if err = in.Validate(); err != nil {
		return nil, err
	}
	return in, nil
}
