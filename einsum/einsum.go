// Package einsum provides symbol assignment and the format-string codec.
// This file declares the sentinel errors, Assign, Format, and Parse.
package einsum

import (
	"errors"
	"fmt"
	"strings"

	"github.com/emirpasic/gods/trees/redblacktree"
)

// Sentinel errors for symbol assignment and format-string parsing.
var (
	// ErrAlphabetExhausted is returned when a problem has more distinct
	// indices than the symbol alphabet holds.
	ErrAlphabetExhausted = errors.New("einsum: distinct indices exceed alphabet size")

	// ErrMissingArrow is returned when a format string lacks the "->" separator.
	ErrMissingArrow = errors.New("einsum: format string missing \"->\" separator")

	// ErrNoOperands is returned when the operand section of a format string is empty.
	ErrNoOperands = errors.New("einsum: format string has no operands")
)

// Arrow separates operand labels from output labels in a format string.
const Arrow = "->"

// ScalarOutput is the conventional output marker for a full reduction in
// tree-converted instances ("ab,bc->0").
const ScalarOutput = "0"

// Assign maps every distinct identifier appearing in inputs onto the symbol
// alphabet and returns the per-operand label strings, in operand order.
//
// Assignment is by ascending identifier value: the lowest identifier gets
// the first symbol. The mapping is built per call on a red-black tree keyed
// by identifier, so repeated calls are deterministic and independent.
//
// Returns ErrAlphabetExhausted when the distinct identifier count exceeds
// AlphabetSize.
func Assign(inputs [][]int) ([]string, error) {
	// Collect distinct identifiers in ascending order.
	ids := redblacktree.NewWithIntComparator()
	for _, operand := range inputs {
		for _, id := range operand {
			ids.Put(id, nil)
		}
	}
	if ids.Size() > len(alphabet) {
		return nil, fmt.Errorf("%w: %d indices, %d symbols",
			ErrAlphabetExhausted, ids.Size(), len(alphabet))
	}

	// Zip sorted identifiers with the alphabet.
	symbols := make(map[int]rune, ids.Size())
	next := 0
	for it := ids.Iterator(); it.Next(); next++ {
		symbols[it.Key().(int)] = alphabet[next]
	}

	// Render one label string per operand.
	operands := make([]string, len(inputs))
	var sb strings.Builder
	for i, operand := range inputs {
		sb.Reset()
		for _, id := range operand {
			sb.WriteRune(symbols[id])
		}
		operands[i] = sb.String()
	}
	return operands, nil
}

// Format joins per-operand label strings and an output label string into the
// textual "op1,op2,...->out" form. An empty output denotes a scalar result.
func Format(operands []string, output string) string {
	return strings.Join(operands, ",") + Arrow + output
}

// Parse splits a format string back into its per-operand label strings and
// output label string. It is a pure parse: labels are not interpreted.
//
// Returns ErrMissingArrow when the separator is absent and ErrNoOperands
// when nothing precedes it.
func Parse(format string) (operands []string, output string, err error) {
	head, output, ok := strings.Cut(format, Arrow)
	if !ok {
		return nil, "", fmt.Errorf("%w: %q", ErrMissingArrow, format)
	}
	if head == "" {
		return nil, "", fmt.Errorf("%w: %q", ErrNoOperands, format)
	}
	return strings.Split(head, ","), output, nil
}

// DistinctLabels counts the distinct symbols across the given label strings.
func DistinctLabels(operands []string) int {
	seen := make(map[rune]bool)
	for _, op := range operands {
		for _, c := range op {
			seen[c] = true
		}
	}
	return len(seen)
}
