// Package catalog provides instance construction and JSON file I/O.
// This file declares the on-disk operations: Load, Save, Scan.
package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/einsuite/einsuite/core"
)

// ErrDecode is returned when an instance file cannot be parsed or fails
// validation.
var ErrDecode = errors.New("catalog: instance decode failed")

// Load reads and validates one instance file.
func Load(path string) (*core.Instance, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: read %s: %w", path, err)
	}
	var in core.Instance
	if err = json.Unmarshal(data, &in); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDecode, path, err)
	}
	if err = in.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDecode, path, err)
	}
	return &in, nil
}

// Save writes one instance file: two-space indent, HTML escaping disabled
// so "->" and extended-alphabet symbols stay readable on disk.
func Save(path string, in *core.Instance) error {
	if err := in.Validate(); err != nil {
		return err
	}
	var sb strings.Builder
	enc := json.NewEncoder(&sb)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(in); err != nil {
		return fmt.Errorf("catalog: encode %s: %w", path, err)
	}
	if err := os.WriteFile(path, []byte(sb.String()), 0o644); err != nil {
		return fmt.Errorf("catalog: write %s: %w", path, err)
	}
	return nil
}

// Scan loads every *.json file under dir, in sorted filename order.
//
// Instance failures are independent: a file that cannot be loaded is
// reported in the joined error but never aborts the remaining files. The
// returned slice holds every instance that did load.
func Scan(dir string) ([]*core.Instance, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("catalog: read dir %s: %w", dir, err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".json") {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	// Non-nil even when every file fails, so callers can tell per-file
	// failures apart from the unreadable-directory case above.
	instances := make([]*core.Instance, 0, len(names))
	var errs []error
	for _, name := range names {
		in, loadErr := Load(filepath.Join(dir, name))
		if loadErr != nil {
			errs = append(errs, loadErr)
			continue
		}
		instances = append(instances, in)
	}
	return instances, errors.Join(errs...)
}
