package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/einsuite/einsuite/catalog"
	"github.com/einsuite/einsuite/core"
)

func runSelect(cmd *cobra.Command, args []string) error {
	dir := args[0]

	filter := catalog.DefaultFilter()
	if filterConfig != "" {
		var err error
		if filter, err = catalog.LoadFilter(filterConfig); err != nil {
			return err
		}
	}

	instances, err := catalog.Scan(dir)
	if err != nil {
		if instances == nil {
			return err
		}
		// Per-file failures leave the rest of the batch intact.
		slog.Warn("some instances failed to load", "dir", dir, "err", err)
	}
	matched := filter.Select(instances)
	slog.Info("filtered instances", "scanned", len(instances), "matched", len(matched))

	if outDir != "" {
		if err := os.MkdirAll(outDir, 0o755); err != nil {
			return fmt.Errorf("create out dir: %w", err)
		}
	}
	for _, in := range matched {
		fmt.Fprintln(cmd.OutOrStdout(), in.Name)
		if outDir != "" {
			dst := filepath.Join(outDir, in.Name+".json")
			if err := catalog.Save(dst, in); err != nil {
				return err
			}
		}
	}
	return nil
}

func runShow(cmd *cobra.Command, args []string) error {
	var errs []error
	for _, path := range args {
		in, err := catalog.Load(path)
		if err != nil {
			slog.Warn("skipping unreadable instance", "path", path, "err", err)
			errs = append(errs, err)
			continue
		}
		fmt.Fprintln(cmd.OutOrStdout(), summarize(in))
	}
	return errors.Join(errs...)
}

// summarize renders one instance as a fixed-order line, path strategies
// sorted by name.
func summarize(in *core.Instance) string {
	line := fmt.Sprintf("%s  tensors=%d dtype=%s", in.Name, in.NumTensors, in.Dtype)
	for _, strategy := range []string{core.StrategyOptFlops, core.StrategyOptSize} {
		meta, ok := in.Paths[strategy]
		if !ok {
			continue
		}
		line += fmt.Sprintf("  %s: log10_flops=%.4f log2_size=%.4f",
			strategy, meta.Log10Flops, meta.Log2Size)
	}
	return line
}
