// alphabet.go — the fixed, ordered, de-duplicated symbol alphabet.
package einsum

// Code point ranges composing the alphabet, in assignment order.
// The Greek ranges intentionally include every code point of the block slice
// (matching the catalog convention external instances were generated with).
const (
	greekLowerFirst = 0x03B1 // α
	greekLowerLast  = 0x03C9 // ω
	greekUpperFirst = 0x0391 // Α
	greekUpperLast  = 0x03A9 // Ω
	cyrillicFirst   = 0x0400
	cyrillicLast    = 0x04FF
)

// alphabet is built once at init; it is read-only afterwards.
var alphabet = buildAlphabet()

// AlphabetSize is the number of distinct symbols available to Assign.
var AlphabetSize = len(alphabet)

// Alphabet returns a copy of the symbol sequence, in assignment order.
// The copy keeps the package-level slice immutable to callers.
func Alphabet() []rune {
	out := make([]rune, len(alphabet))
	copy(out, alphabet)
	return out
}

// buildAlphabet concatenates the ranges and drops any duplicate code point,
// preserving first-occurrence order.
func buildAlphabet() []rune {
	ranges := [][2]rune{
		{'a', 'z'},
		{'A', 'Z'},
		{greekLowerFirst, greekLowerLast},
		{greekUpperFirst, greekUpperLast},
		{'0', '9'},
		{cyrillicFirst, cyrillicLast},
	}
	seen := make(map[rune]bool, 512)
	out := make([]rune, 0, 512)
	for _, r := range ranges {
		for c := r[0]; c <= r[1]; c++ {
			if seen[c] {
				continue
			}
			seen[c] = true
			out = append(out, c)
		}
	}
	return out
}
