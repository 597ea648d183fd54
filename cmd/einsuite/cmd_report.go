package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/einsuite/einsuite/report"
)

func runReport(cmd *cobra.Command, args []string) error {
	merged := make(report.Results)
	for _, path := range args {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("open log: %w", err)
		}
		res, err := report.ParseLog(f)
		f.Close()
		if err != nil {
			return err
		}
		slog.Debug("parsed benchmark log", "path", path, "timings", len(res))
		merged.Merge(res)
	}
	fmt.Fprint(cmd.OutOrStdout(), report.Markdown(merged))
	return nil
}
