// Package report parses benchmark logs and formats comparison tables.
package report

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// Key identifies one measured timing: which instance, under which path
// strategy, on which engine mode.
type Key struct {
	Instance string
	Strategy string
	Mode     string
}

// Results maps timing keys to median milliseconds.
type Results map[Key]float64

// Merge copies every entry of other into r, overwriting duplicates.
func (r Results) Merge(other Results) {
	for k, v := range other {
		r[k] = v
	}
}

// nativeMode is the mode assigned to logs using the bare "Strategy:" marker.
const nativeMode = "strided-opteinsum"

// Marker lines separating log sections.
var (
	strategyRe     = regexp.MustCompile(`^Strategy:\s+(\w+)`)
	modeStrategyRe = regexp.MustCompile(`^Mode:\s+(\w+)\s*/\s*Strategy:\s+(\w+)`)
)

// ParseLog scans one benchmark log and returns its timings.
//
// A bare "Strategy: X" marker starts a native-engine section; a
// "Mode: M / Strategy: X" marker starts a section for engine mode M. Data
// rows have at least five whitespace-separated fields, the instance name
// first and the median timing last; rows before any marker, header rows
// ("Instance ..."), separators ("----"), and rows whose last field is not a
// number are skipped.
func ParseLog(r io.Reader) (Results, error) {
	results := make(Results)
	var mode, strategy string

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), " \t")

		if m := modeStrategyRe.FindStringSubmatch(line); m != nil {
			mode, strategy = m[1], m[2]
			continue
		}
		if m := strategyRe.FindStringSubmatch(line); m != nil {
			strategy = m[1]
			mode = nativeMode
			continue
		}
		if strings.HasPrefix(line, "Instance") || strings.HasPrefix(line, "-") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 5 || mode == "" || strategy == "" {
			continue
		}
		median, err := strconv.ParseFloat(fields[len(fields)-1], 64)
		if err != nil {
			continue
		}
		results[Key{Instance: fields[0], Strategy: strategy, Mode: mode}] = median
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("report: scan log: %w", err)
	}
	return results, nil
}

// canonicalModes is the preferred column order; modes outside the list
// follow in sorted order.
var canonicalModes = []string{
	"strided-opteinsum",
	"omeinsum_path",
	"omeinsum_opt",
	"tensorops",
}

// modeLabels maps modes to table column headings.
var modeLabels = map[string]string{
	"strided-opteinsum": "Rust strided-opteinsum (ms)",
	"omeinsum_path":     "Julia OMEinsum path (ms)",
	"omeinsum_opt":      "Julia OMEinsum opt (ms)",
	"tensorops":         "Julia TensorOps (ms)",
}

// Markdown renders the collected results as one markdown table per
// strategy: instances as rows, engine modes as columns, "-" for gaps.
func Markdown(results Results) string {
	instances := collect(results, func(k Key) string { return k.Instance })
	strategies := collect(results, func(k Key) string { return k.Strategy })
	modes := orderModes(collect(results, func(k Key) string { return k.Mode }))

	var lines []string
	for _, strategy := range strategies {
		lines = append(lines,
			fmt.Sprintf("### Strategy: %s", strategy),
			"",
			"Median time (ms), single-threaded (OMP_NUM_THREADS=1, RAYON_NUM_THREADS=1, JULIA_NUM_THREADS=1).",
			"")

		cols := make([]string, len(modes))
		for i, m := range modes {
			if label, ok := modeLabels[m]; ok {
				cols[i] = label
			} else {
				cols[i] = m
			}
		}
		lines = append(lines,
			"| Instance | "+strings.Join(cols, " | ")+" |",
			"|---|"+strings.Repeat("---:|", len(cols)))

		for _, name := range instances {
			row := []string{name}
			for _, m := range modes {
				if v, ok := results[Key{Instance: name, Strategy: strategy, Mode: m}]; ok {
					row = append(row, fmt.Sprintf("%.3f", v))
				} else {
					row = append(row, "-")
				}
			}
			lines = append(lines, "| "+strings.Join(row, " | ")+" |")
		}
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

// collect gathers the distinct values of one key component, sorted.
func collect(results Results, pick func(Key) string) []string {
	seen := make(map[string]bool)
	for k := range results {
		seen[pick(k)] = true
	}
	out := make([]string, 0, len(seen))
	for v := range seen {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// orderModes puts canonical modes first, keeping the sorted order for the rest.
func orderModes(sorted []string) []string {
	present := make(map[string]bool, len(sorted))
	for _, m := range sorted {
		present[m] = true
	}
	out := make([]string, 0, len(sorted))
	for _, m := range canonicalModes {
		if present[m] {
			out = append(out, m)
			present[m] = false
		}
	}
	for _, m := range sorted {
		if present[m] {
			out = append(out, m)
		}
	}
	return out
}
