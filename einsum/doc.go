// Package einsum assigns printable index symbols and encodes, decodes, and
// transforms einsum format strings.
//
// What
//
//   - Assign: map an arbitrary collection of integer index identifiers
//     (one list per operand) onto a fixed, ordered symbol alphabet, giving
//     per-operand label strings. Identical identifiers always receive the
//     same symbol; assignment order is ascending identifier value, so the
//     result is fully deterministic for a given identifier set.
//   - Format / Parse: join label strings into the textual
//     "op1,op2,...->out" form and split it back apart.
//   - ToColMajor: flip a format string between row-major and column-major
//     conventions by reversing each operand's (and the output's) label
//     sequence. Applying it twice is the identity.
//
// Alphabet
//
//	The symbol alphabet is a fixed, de-duplicated sequence of several hundred
//	printable code points: ASCII lowercase, ASCII uppercase, Greek lowercase,
//	Greek uppercase, decimal digits, then the Cyrillic block. Problems with
//	more distinct indices than the alphabet holds fail with
//	ErrAlphabetExhausted — never a silent truncation.
//
// Determinism
//
//	Assign builds its ordered identifier→symbol mapping afresh on every call
//	(a red-black tree keyed by identifier). There is no global cache: two
//	calls on different identifier sets can never contaminate each other's
//	assignments.
//
// Errors
//
//   - ErrAlphabetExhausted — more distinct indices than symbols (capacity).
//   - ErrMissingArrow      — format string without "->" (structural).
//   - ErrNoOperands        — format string with an empty operand section.
package einsum
