package report_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/einsuite/einsuite/report"
)

const rustLog = `strided-opteinsum(faer) benchmark suite
==================================
Loaded 2 instances from data/instances
Timing: median of 5 runs (2 warmup)

Strategy: opt_flops
Instance                 Tensors log10FLOPS log2SIZE Median (ms)
----------------------------------------------------------------
alpha  10 5.12 12.00 1.234
beta   12 6.00 13.50 2.500

Strategy: opt_size
Instance                 Tensors log10FLOPS log2SIZE Median (ms)
----------------------------------------------------------------
alpha  10 5.12 12.00 1.300
`

const juliaLog = `julia einsum benchmark runner
Mode: omeinsum_path / Strategy: opt_flops
Instance                 Tensors log10FLOPS log2SIZE Median (ms)
----------------------------------------------------------------
alpha  10 5.12 12.00 3.000
not-a-row with only text here trailing
`

func TestParseLog_Native(t *testing.T) {
	res, err := report.ParseLog(strings.NewReader(rustLog))
	require.NoError(t, err)
	require.Len(t, res, 3)
	require.Equal(t, 1.234, res[report.Key{Instance: "alpha", Strategy: "opt_flops", Mode: "strided-opteinsum"}])
	require.Equal(t, 2.5, res[report.Key{Instance: "beta", Strategy: "opt_flops", Mode: "strided-opteinsum"}])
	require.Equal(t, 1.3, res[report.Key{Instance: "alpha", Strategy: "opt_size", Mode: "strided-opteinsum"}])
}

func TestParseLog_ModeMarker(t *testing.T) {
	res, err := report.ParseLog(strings.NewReader(juliaLog))
	require.NoError(t, err)
	require.Len(t, res, 1, "malformed data rows are skipped")
	require.Equal(t, 3.0, res[report.Key{Instance: "alpha", Strategy: "opt_flops", Mode: "omeinsum_path"}])
}

func TestResults_Merge(t *testing.T) {
	a, err := report.ParseLog(strings.NewReader(rustLog))
	require.NoError(t, err)
	b, err := report.ParseLog(strings.NewReader(juliaLog))
	require.NoError(t, err)
	a.Merge(b)
	require.Len(t, a, 4)
}

func TestMarkdown_Table(t *testing.T) {
	res, err := report.ParseLog(strings.NewReader(rustLog))
	require.NoError(t, err)
	more, err := report.ParseLog(strings.NewReader(juliaLog))
	require.NoError(t, err)
	res.Merge(more)

	got := report.Markdown(res)

	// one section per strategy, sorted
	flopsAt := strings.Index(got, "### Strategy: opt_flops")
	sizeAt := strings.Index(got, "### Strategy: opt_size")
	require.GreaterOrEqual(t, flopsAt, 0)
	require.Greater(t, sizeAt, flopsAt)

	// canonical column order: native engine before julia modes
	require.Contains(t, got,
		"| Instance | Rust strided-opteinsum (ms) | Julia OMEinsum path (ms) |")
	require.Contains(t, got, "|---|---:|---:|")

	// data rows with "-" for gaps
	require.Contains(t, got, "| alpha | 1.234 | 3.000 |")
	require.Contains(t, got, "| beta | 2.500 | - |")
	require.Contains(t, got, "| alpha | 1.300 | - |")
}

// TestMarkdown_UnknownModeColumn: modes outside the canonical list keep
// their raw name and follow the canonical columns.
func TestMarkdown_UnknownModeColumn(t *testing.T) {
	res := report.Results{
		{Instance: "alpha", Strategy: "opt_flops", Mode: "zz_custom"}:         1.0,
		{Instance: "alpha", Strategy: "opt_flops", Mode: "strided-opteinsum"}: 2.0,
	}
	got := report.Markdown(res)
	require.Contains(t, got, "| Instance | Rust strided-opteinsum (ms) | zz_custom |")
}
