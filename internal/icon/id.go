// Package icon builds the breakpoint indicator: an SVG whose visible label
// follows the viewport width through CSS media queries only.
package icon

// The first character comes from letters only so every id is a valid CSS
// identifier start. Both alphabets share a prefix so the shortest ids stay
// readable.
const (
	headAlphabet = "useandompxbfghjklqvwyzrict"
	tailAlphabet = "useandom-2619834075px_bfghjklqvwyzrict"
)

// GenerateID returns the element id for the breakpoint at index.
//
// The index is written as a mixed radix number, least significant digit
// first: one base-26 digit, then base-38 digits until the quotient is zero.
// Distinct non-negative indices always map to distinct ids.
func GenerateID(index int) string {
	if index < 0 {
		panic("icon: negative id index")
	}

	id := []byte{headAlphabet[index%len(headAlphabet)]}
	for i := index / len(headAlphabet); i > 0; i /= len(tailAlphabet) {
		id = append(id, tailAlphabet[i%len(tailAlphabet)])
	}
	return string(id)
}
