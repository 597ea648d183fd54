package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/einsuite/einsuite/catalog"
	"github.com/einsuite/einsuite/core"
	"github.com/einsuite/einsuite/ctree"
)

// treeSource is the on-disk form of a contraction tree export: the binary
// tree plus the per-tensor index identifier lists, leaves first.
type treeSource struct {
	Tree   *ctree.Node `json:"tree"`
	Inputs [][]int     `json:"inputs"`
}

func runConvert(cmd *cobra.Command, args []string) error {
	srcPath, outPath := args[0], args[1]

	raw, err := os.ReadFile(srcPath)
	if err != nil {
		return fmt.Errorf("read tree source: %w", err)
	}
	var src treeSource
	if err := json.Unmarshal(raw, &src); err != nil {
		return fmt.Errorf("decode tree source %s: %w", srcPath, err)
	}

	name := instanceName
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(srcPath), filepath.Ext(srcPath))
	}

	dt, err := core.ParseDtype(dtypeName)
	if err != nil {
		return err
	}
	opts := []catalog.ConvertOption{
		catalog.WithExtent(bondExtent),
		catalog.WithDtype(dt),
	}
	if cmd.Flags().Changed("size-override") {
		opts = append(opts, catalog.WithCitedSize(sizeOverride))
	}

	in, err := catalog.FromTree(name, src.Tree, src.Inputs, opts...)
	if err != nil {
		return err
	}
	if err := catalog.Save(outPath, in); err != nil {
		return err
	}
	slog.Info("converted instance", "name", in.Name, "tensors", in.NumTensors, "out", outPath)
	return nil
}

func runLighten(cmd *cobra.Command, args []string) error {
	inPath, outPath := args[0], args[1]
	target, err := strconv.Atoi(args[2])
	if err != nil {
		return fmt.Errorf("num-tensors must be an integer: %w", err)
	}

	src, err := catalog.Load(inPath)
	if err != nil {
		return err
	}
	light, err := catalog.Lighten(src, target)
	if err != nil {
		return err
	}
	if err := catalog.Save(outPath, light); err != nil {
		return err
	}
	slog.Info("lightened instance",
		"name", light.Name, "tensors", light.NumTensors, "from", src.NumTensors, "out", outPath)
	return nil
}
