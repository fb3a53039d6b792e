package scytale

import "strings"

// Alphabet is the canonical uppercase alphabet every codec indexes into.
const Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// AlphabetSize is the modulus for all additive and matrix arithmetic.
const AlphabetSize = len(Alphabet)

// Normalize returns the uppercase, letters-only projection of text.
// Only ASCII letters survive; everything else is dropped.
func Normalize(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if pos, _, ok := classify(r); ok {
			b.WriteByte(Alphabet[pos])
		}
	}
	return b.String()
}

// classify reports the zero-based alphabet position of r and whether it is
// uppercase. ok is false for anything that is not an ASCII letter.
func classify(r rune) (pos int, upper, ok bool) {
	switch {
	case r >= 'A' && r <= 'Z':
		return int(r - 'A'), true, true
	case r >= 'a' && r <= 'z':
		return int(r - 'a'), false, true
	default:
		return 0, false, false
	}
}

// letter rebuilds a character from an alphabet position in the given case.
func letter(pos int, upper bool) rune {
	if upper {
		return rune('A' + pos)
	}
	return rune('a' + pos)
}

// mapLetters applies fn to every ASCII letter of text, preserving case and
// passing all other runes through untouched. fn receives the letter's
// position and the running count of letters consumed before it; a negative
// result leaves the original rune in place.
func mapLetters(text string, fn func(pos, n int) int) string {
	var b strings.Builder
	b.Grow(len(text))
	n := 0
	for _, r := range text {
		pos, upper, ok := classify(r)
		if !ok {
			b.WriteRune(r)
			continue
		}
		if out := fn(pos, n); out >= 0 {
			b.WriteRune(letter(out, upper))
		} else {
			b.WriteRune(r)
		}
		n++
	}
	return b.String()
}

// mod returns a modulo n in the range [0, n).
func mod(a, n int) int {
	return ((a % n) + n) % n
}
