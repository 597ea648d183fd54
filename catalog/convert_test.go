package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/einsuite/einsuite/catalog"
	"github.com/einsuite/einsuite/core"
	"github.com/einsuite/einsuite/ctree"
	"github.com/einsuite/einsuite/subgraph"
)

// twoTensorTree is the canonical fixture: contract(leaf 1, leaf 2) with
// index configs [[0,1],[1,2]].
func twoTensorTree() (*ctree.Node, [][]int) {
	return ctree.Contract(ctree.Leaf(1), ctree.Leaf(2)), [][]int{{0, 1}, {1, 2}}
}

func TestFromTree_Scenario(t *testing.T) {
	root, inputs := twoTensorTree()
	in, err := catalog.FromTree("tiny", root, inputs)
	require.NoError(t, err)

	require.Equal(t, "tiny", in.Name)
	require.Equal(t, "ab,bc->0", in.FormatString)
	require.Equal(t, []core.Shape{{2, 2}, {2, 2}}, in.Shapes)
	require.Equal(t, core.Float64, in.Dtype)
	require.Equal(t, 2, in.NumTensors)

	for _, strategy := range []string{core.StrategyOptSize, core.StrategyOptFlops} {
		meta, ok := in.Paths[strategy]
		require.True(t, ok, "missing %s record", strategy)
		require.Equal(t, core.Path{{I: 0, J: 1}}, meta.Path)
		require.Equal(t, 4.0, meta.Log2Size)
		require.Equal(t, 1.2041, meta.Log10Flops)
	}

	require.Equal(t, in.FormatString, in.FormatRowMajor)
	require.Equal(t, "ba,cb->0", in.FormatColMajor)
	require.Equal(t, []core.Shape{{2, 2}, {2, 2}}, in.ShapesColMajor)
	require.NoError(t, in.Validate())
}

// TestFromTree_CitedOverride: the citation formula must be used, not the
// replay (the replay would report 4.0 / 1.2041 here).
func TestFromTree_CitedOverride(t *testing.T) {
	root, inputs := twoTensorTree()
	in, err := catalog.FromTree("cited", root, inputs, catalog.WithCitedSize(33.2))
	require.NoError(t, err)
	meta := in.Paths[core.StrategyOptFlops]
	require.Equal(t, 33.2, meta.Log2Size)
	require.Equal(t, 9.9942, meta.Log10Flops)
}

// TestFromTree_Options covers extent/dtype overrides and their violations.
func TestFromTree_Options(t *testing.T) {
	root, inputs := twoTensorTree()

	in, err := catalog.FromTree("wide", root, inputs,
		catalog.WithExtent(3), catalog.WithDtype(core.Complex128))
	require.NoError(t, err)
	require.Equal(t, []core.Shape{{3, 3}, {3, 3}}, in.Shapes)
	require.Equal(t, core.Complex128, in.Dtype)

	_, err = catalog.FromTree("bad", root, inputs, catalog.WithExtent(0))
	require.ErrorIs(t, err, core.ErrBadShape)

	_, err = catalog.FromTree("bad", root, inputs, catalog.WithDtype("float32"))
	require.ErrorIs(t, err, core.ErrBadDtype)
}

// TestFromTree_Errors propagates structural and consistency failures.
func TestFromTree_Errors(t *testing.T) {
	root, _ := twoTensorTree()

	// too few index configs for the tree's leaves
	_, err := catalog.FromTree("short", root, [][]int{{0, 1}})
	require.ErrorIs(t, err, ctree.ErrInputsMismatch)

	// malformed tree
	oneChild := &ctree.Node{Args: []*ctree.Node{ctree.Leaf(1)}}
	_, err = catalog.FromTree("bad", oneChild, [][]int{{0}})
	require.ErrorIs(t, err, ctree.ErrArity)

	// empty name fails final validation
	_, err = catalog.FromTree("", root, [][]int{{0, 1}, {1, 2}})
	require.ErrorIs(t, err, core.ErrNoName)
}

// chainInstance builds a valid 3-tensor chain instance for Lighten tests.
func chainInstance(t *testing.T) *core.Instance {
	t.Helper()
	in := &core.Instance{
		Name:         "chain3",
		FormatString: "ab,bc,cd->ad",
		Shapes:       []core.Shape{{2, 2}, {2, 2}, {2, 2}},
		Dtype:        core.Float64,
		NumTensors:   3,
		Paths: map[string]core.PathMeta{
			core.StrategyOptSize:  {Path: core.Path{{I: 0, J: 1}, {I: 0, J: 1}}, Log2Size: 4, Log10Flops: 1.5051},
			core.StrategyOptFlops: {Path: core.Path{{I: 0, J: 1}, {I: 0, J: 1}}, Log2Size: 4, Log10Flops: 1.5051},
		},
		FormatRowMajor: "ab,bc,cd->ad",
		FormatColMajor: "ba,cb,dc->da",
		ShapesColMajor: []core.Shape{{2, 2}, {2, 2}, {2, 2}},
	}
	require.NoError(t, in.Validate())
	return in
}

func TestLighten_Chain(t *testing.T) {
	src := chainInstance(t)
	light, err := catalog.Lighten(src, 2)
	require.NoError(t, err)

	require.Equal(t, "chain3_light_2", light.Name)
	require.Equal(t, "ab,bc->", light.FormatString)
	require.Equal(t, 2, light.NumTensors)
	require.Equal(t, []core.Shape{{2, 2}, {2, 2}}, light.Shapes)
	require.Equal(t, src.Dtype, light.Dtype)

	meta := light.Paths[core.StrategyOptFlops]
	require.Equal(t, core.Path{{I: 0, J: 1}}, meta.Path)
	require.Equal(t, 4.0, meta.Log2Size)
	require.Equal(t, 1.2041, meta.Log10Flops)

	require.Equal(t, "ba,cb->", light.FormatColMajor)
	require.NoError(t, light.Validate())

	// source untouched
	require.Equal(t, "chain3", src.Name)
	require.Equal(t, 3, src.NumTensors)
}

// TestLighten_TargetTooLarge returns a deep copy of the source as-is.
func TestLighten_TargetTooLarge(t *testing.T) {
	src := chainInstance(t)
	cp, err := catalog.Lighten(src, 3)
	require.NoError(t, err)
	require.Equal(t, src, cp)
	cp.Shapes[0][0] = 99
	require.Equal(t, 2, src.Shapes[0][0], "copy shares storage with source")
}

// TestLighten_NotConnected propagates the consistency error.
func TestLighten_NotConnected(t *testing.T) {
	src := chainInstance(t).Clone()
	disconnected := &core.Instance{
		Name:           "islands",
		FormatString:   "ab,cd,ef->",
		Shapes:         []core.Shape{{2, 2}, {2, 2}, {2, 2}},
		Dtype:          core.Float64,
		NumTensors:     3,
		Paths:          src.Paths,
		FormatRowMajor: "ab,cd,ef->",
		FormatColMajor: "ba,dc,fe->",
		ShapesColMajor: []core.Shape{{2, 2}, {2, 2}, {2, 2}},
	}
	_, err := catalog.Lighten(disconnected, 2)
	require.ErrorIs(t, err, subgraph.ErrNotConnected)
}

// TestLighten_PassesOptions: a hostile seed limit still reaches Extract.
func TestLighten_PassesOptions(t *testing.T) {
	src := chainInstance(t)
	_, err := catalog.Lighten(src, 2, subgraph.WithMaxSeeds(-1))
	require.ErrorIs(t, err, subgraph.ErrOptionViolation)
}
