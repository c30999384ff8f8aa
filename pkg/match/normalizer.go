package match

import "strings"

// Normalizer maps an arbitrary entity name to its canonical matching key.
// It is pure and deterministic: ASCII case folding, ordered corporate-suffix
// stripping, whitespace collapse. No locale handling beyond simple ASCII
// upper-casing; registry names are expected to be ASCII-uppercase already.
type Normalizer struct {
	suffixes []string
}

// NewNormalizer creates a normalizer with the given ordered suffix list.
// Longer, more specific tokens must come first (", INC." before " INC") so
// a shorter token never corrupts a longer match. The list is captured as
// given; callers own its ordering.
func NewNormalizer(suffixes []string) *Normalizer {
	return &Normalizer{suffixes: suffixes}
}

// Normalize returns the canonical matching key for a name. It upper-cases
// the name, strips designated corporate suffixes until none remain, then
// collapses runs of whitespace and trims the ends.
//
// Normalize is idempotent: Normalize(Normalize(x)) == Normalize(x).
func (n *Normalizer) Normalize(name string) string {
	s := strings.ToUpper(name)

	// Stripping one suffix can expose another ("X, INC. INC"), so repeat
	// until a full pass removes nothing.
	for {
		s = strings.TrimSpace(s)
		stripped := false
		for _, sfx := range n.suffixes {
			if strings.HasSuffix(s, sfx) {
				s = strings.TrimSpace(strings.TrimSuffix(s, sfx))
				stripped = true
			}
		}
		if !stripped {
			break
		}
	}

	return strings.Join(strings.Fields(s), " ")
}
