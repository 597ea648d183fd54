// lighten.go — the subgraph extraction pipeline.
package catalog

import (
	"fmt"

	"github.com/einsuite/einsuite/core"
	"github.com/einsuite/einsuite/cost"
	"github.com/einsuite/einsuite/einsum"
	"github.com/einsuite/einsuite/subgraph"
)

// Lighten carves a connected sub-network of exactly target tensors out of
// src and emits it as a new scalar-output instance named
// "<src>_light_<target>".
//
// The subset is chosen by the exhaustive seed scan in package subgraph
// (fewest free indices wins); a contraction path for it comes from the
// internal greedy optimizer and is costed by replay. When either step
// cannot complete, the instance falls back to a linear-chain path with
// zeroed figures instead of aborting — distinguishable, never silent.
//
// A target of src.NumTensors or more returns an unchanged deep copy of src.
// Extraction options (seed limits, hooks) pass through to subgraph.Extract.
func Lighten(src *core.Instance, target int, opts ...subgraph.Option) (*core.Instance, error) {
	if target >= src.NumTensors {
		return src.Clone(), nil
	}

	operands, _, err := einsum.Parse(src.FormatString)
	if err != nil {
		return nil, err
	}
	res, err := subgraph.Extract(operands, target, opts...)
	if err != nil {
		return nil, err
	}

	shapes := res.Select(src.Shapes)
	subOperands, _, err := einsum.Parse(res.Format)
	if err != nil {
		return nil, err
	}

	path, est := optimize(subOperands, shapes)
	meta := core.PathMeta{
		Path:       path,
		Log2Size:   est.Log2Size,
		Log10Flops: est.Log10Flops,
	}

	in := &core.Instance{
		Name:         fmt.Sprintf("%s_light_%d", src.Name, target),
		FormatString: res.Format,
		Shapes:       shapes,
		Dtype:        src.Dtype,
		NumTensors:   target,
		Paths: map[string]core.PathMeta{
			core.StrategyOptSize:  meta.Clone(),
			core.StrategyOptFlops: meta.Clone(),
		},
	}
	return finish(in)
}

// optimize produces a path and figures for the extracted sub-network,
// degrading to the linear-chain fallback when simulation is impossible.
// The fallback stays recognizable downstream by its zeroed figures.
func optimize(operands []string, shapes []core.Shape) (core.Path, cost.Estimate) {
	path, err := cost.Greedy(operands, shapes)
	if err != nil {
		return cost.FallbackChain(len(shapes))
	}
	est, err := cost.Simulate(shapes, path)
	if err != nil {
		return cost.FallbackChain(len(shapes))
	}
	return path, est
}
