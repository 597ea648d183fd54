package main

import (
	"github.com/spf13/cobra"
)

var (
	verbose bool

	// convert flags
	instanceName string
	sizeOverride float64
	bondExtent   int
	dtypeName    string

	// select flags
	filterConfig string
	outDir       string

	rootCmd = &cobra.Command{
		Use:           "einsuite",
		Short:         "Build and curate tensor-network contraction benchmark instances",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	convertCmd = &cobra.Command{
		Use:   "convert <tree.json> <out.json>",
		Short: "Convert a contraction tree source into a benchmark instance",
		Args:  cobra.ExactArgs(2),
		RunE:  runConvert, // cmd_convert.go
	}

	lightenCmd = &cobra.Command{
		Use:   "lighten <in.json> <out.json> <num-tensors>",
		Short: "Extract a connected sub-network of the given size from an instance",
		Args:  cobra.ExactArgs(3),
		RunE:  runLighten, // cmd_convert.go
	}

	selectCmd = &cobra.Command{
		Use:   "select <dir>",
		Short: "List instances in a directory that pass the dataset filter",
		Args:  cobra.ExactArgs(1),
		RunE:  runSelect, // cmd_catalog.go
	}

	showCmd = &cobra.Command{
		Use:   "show <in.json>...",
		Short: "Print a one-line summary per instance file",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runShow, // cmd_catalog.go
	}

	reportCmd = &cobra.Command{
		Use:   "report <log>...",
		Short: "Merge benchmark logs into a markdown comparison table",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runReport, // cmd_report.go
	}
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	convertCmd.Flags().StringVar(&instanceName, "name", "", "instance name (default: source file base name)")
	convertCmd.Flags().Float64Var(&sizeOverride, "size-override", 0, "use this cited log2 size instead of replaying the path")
	convertCmd.Flags().IntVar(&bondExtent, "extent", 2, "uniform bond extent for every axis")
	convertCmd.Flags().StringVar(&dtypeName, "dtype", "complex128", "element dtype (float64 or complex128)")

	selectCmd.Flags().StringVar(&filterConfig, "config", "", "YAML filter config (default: built-in ceilings)")
	selectCmd.Flags().StringVar(&outDir, "out-dir", "", "copy matching instances into this directory")

	rootCmd.AddCommand(convertCmd, lightenCmd, selectCmd, showCmd, reportCmd)
}
