// filter.go — dataset selection thresholds, YAML-loadable.
package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/einsuite/einsuite/core"
)

// Filter selects instances suitable for a benchmark dataset. An instance
// matches when its opt_flops record stays strictly below the work and size
// ceilings, its dtype is allowed, and its tensor count does not exceed the
// limit.
type Filter struct {
	MaxLog10Flops float64      `yaml:"max_log10_flops"`
	MaxLog2Size   float64      `yaml:"max_log2_size"`
	Dtypes        []core.Dtype `yaml:"dtypes"`
	MaxTensors    int          `yaml:"max_tensors"`
}

// DefaultFilter returns the canonical small-dataset thresholds:
// log10[FLOPS] < 10, log2[SIZE] < 25, float64 or complex128, ≤ 100 tensors.
func DefaultFilter() Filter {
	return Filter{
		MaxLog10Flops: 10,
		MaxLog2Size:   25,
		Dtypes:        []core.Dtype{core.Float64, core.Complex128},
		MaxTensors:    100,
	}
}

// LoadFilter reads a YAML filter config, starting from DefaultFilter so a
// config may override only some thresholds.
func LoadFilter(path string) (Filter, error) {
	f := DefaultFilter()
	data, err := os.ReadFile(path)
	if err != nil {
		return f, fmt.Errorf("catalog: read filter %s: %w", path, err)
	}
	if err = yaml.Unmarshal(data, &f); err != nil {
		return f, fmt.Errorf("catalog: parse filter %s: %w", path, err)
	}
	return f, nil
}

// Match reports whether the instance passes every threshold. An instance
// without an opt_flops record never matches.
func (f Filter) Match(in *core.Instance) bool {
	meta, ok := in.Paths[core.StrategyOptFlops]
	if !ok {
		return false
	}
	if meta.Log10Flops >= f.MaxLog10Flops || meta.Log2Size >= f.MaxLog2Size {
		return false
	}
	if in.NumTensors > f.MaxTensors {
		return false
	}
	for _, dt := range f.Dtypes {
		if in.Dtype == dt {
			return true
		}
	}
	return false
}

// Select applies the filter to a list of instances, preserving order.
func (f Filter) Select(instances []*core.Instance) []*core.Instance {
	var out []*core.Instance
	for _, in := range instances {
		if f.Match(in) {
			out = append(out, in)
		}
	}
	return out
}
