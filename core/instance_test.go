package core_test

import (
	"errors"
	"testing"

	"github.com/einsuite/einsuite/core"
)

// validInstance builds a minimal record that passes Validate.
func validInstance() *core.Instance {
	return &core.Instance{
		Name:         "toy_chain",
		FormatString: "ab,bc->ac",
		Shapes:       []core.Shape{{2, 3}, {3, 4}},
		Dtype:        core.Float64,
		NumTensors:   2,
		Paths: map[string]core.PathMeta{
			core.StrategyOptFlops: {
				Path:       core.Path{{I: 0, J: 1}},
				Log2Size:   3.0,
				Log10Flops: 1.3802,
			},
		},
		FormatRowMajor: "ab,bc->ac",
		FormatColMajor: "ba,cb->ca",
		ShapesColMajor: []core.Shape{{3, 2}, {4, 3}},
	}
}

func TestInstance_ValidateOK(t *testing.T) {
	if err := validInstance().Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// TestInstance_ValidateDefects checks one sentinel per defect class.
func TestInstance_ValidateDefects(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*core.Instance)
		want   error
	}{
		{"empty name", func(in *core.Instance) { in.Name = "" }, core.ErrNoName},
		{"no arrow", func(in *core.Instance) { in.FormatString = "ab,bc" }, core.ErrBadFormat},
		{"tensor count", func(in *core.Instance) { in.NumTensors = 3 }, core.ErrTensorCount},
		{"shape count", func(in *core.Instance) { in.Shapes = in.Shapes[:1] }, core.ErrShapeCount},
		{"rank mismatch", func(in *core.Instance) { in.Shapes[0] = core.Shape{2} }, core.ErrShapeCount},
		{"bad extent", func(in *core.Instance) { in.Shapes[1] = core.Shape{3, 0} }, core.ErrBadShape},
		{"bad dtype", func(in *core.Instance) { in.Dtype = "float32" }, core.ErrBadDtype},
		{"no paths", func(in *core.Instance) { in.Paths = nil }, core.ErrNoPaths},
		{"inverted pair", func(in *core.Instance) {
			meta := in.Paths[core.StrategyOptFlops]
			meta.Path = core.Path{{I: 1, J: 1}}
			in.Paths[core.StrategyOptFlops] = meta
		}, core.ErrBadPath},
		{"missing colmajor view", func(in *core.Instance) { in.FormatColMajor = "" }, core.ErrBadFormat},
		{"colmajor shape count", func(in *core.Instance) { in.ShapesColMajor = nil }, core.ErrShapeCount},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validInstance()
			tc.mutate(in)
			if err := in.Validate(); !errors.Is(err, tc.want) {
				t.Errorf("want %v, got %v", tc.want, err)
			}
		})
	}
}

// TestInstance_CloneIsDeep verifies mutations of a clone never reach the original.
func TestInstance_CloneIsDeep(t *testing.T) {
	orig := validInstance()
	cp := orig.Clone()
	cp.Shapes[0][0] = 99
	cp.ShapesColMajor[1][0] = 99
	meta := cp.Paths[core.StrategyOptFlops]
	meta.Path[0] = core.Pair{I: 7, J: 8}
	if orig.Shapes[0][0] != 2 || orig.ShapesColMajor[1][0] != 4 {
		t.Error("clone shares shape storage with original")
	}
	if orig.Paths[core.StrategyOptFlops].Path[0] != (core.Pair{I: 0, J: 1}) {
		t.Error("clone shares path storage with original")
	}
}
