// colmajor.go — the reversible row-major ↔ column-major transform.
package einsum

import (
	"strings"

	"github.com/einsuite/einsuite/core"
)

// ToColMajor flips a format string between row-major and column-major index
// ordering by reversing the label sequence of every operand and of the
// output. Applying it twice returns the original string.
//
// The transform never touches contraction paths: path entries reference
// tensor positions, not axis order.
func ToColMajor(format string) (string, error) {
	operands, output, err := Parse(format)
	if err != nil {
		return "", err
	}
	flipped := make([]string, len(operands))
	for i, op := range operands {
		flipped[i] = reverseRunes(op)
	}
	return strings.Join(flipped, ",") + Arrow + reverseRunes(output), nil
}

// ReverseShapes returns the column-major counterpart of a row-major shape
// list: each shape's extent sequence reversed, in a fresh slice.
func ReverseShapes(shapes []core.Shape) []core.Shape {
	out := make([]core.Shape, len(shapes))
	for i, s := range shapes {
		out[i] = s.Reversed()
	}
	return out
}

// reverseRunes reverses s rune-wise; the alphabet extends beyond ASCII, so a
// byte-wise reversal would corrupt multi-byte symbols.
func reverseRunes(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}
