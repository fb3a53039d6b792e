package scytale

import (
	"fmt"
	"strings"
	"unicode"
)

// railCipher writes text along a bouncing zigzag over a fixed number of rails.
type railCipher struct {
	rails int
}

// RailFence returns a zigzag transposition cipher over rails tracks.
// Fewer than 2 rails fails with ErrInvalidRailCount.
//
// Whitespace is removed before either direction; case and punctuation are kept.
func RailFence(rails int) (Cipher, error) {
	if rails < 2 {
		return nil, newKeyError(ErrInvalidRailCount, AlgoRail,
			fmt.Sprintf("need at least 2 rails, got %d", rails))
	}
	return &railCipher{rails: rails}, nil
}

func (c *railCipher) Algorithm() Algo { return AlgoRail }

func (c *railCipher) Encode(text string) (string, error) {
	runes := stripSpace(text)
	tracks := make([][]rune, c.rails)
	for i, r := range runes {
		rail := railOf(i, c.rails)
		tracks[rail] = append(tracks[rail], r)
	}

	var b strings.Builder
	b.Grow(len(text))
	for _, t := range tracks {
		b.WriteString(string(t))
	}
	return b.String(), nil
}

func (c *railCipher) Decode(text string) (string, error) {
	runes := stripSpace(text)

	// Mark: the rail each position lands on depends only on length and rails.
	marks := make([]int, len(runes))
	counts := make([]int, c.rails)
	for i := range runes {
		marks[i] = railOf(i, c.rails)
		counts[marks[i]]++
	}

	// Fill: ciphertext is the rails laid end to end, top first.
	tracks := make([][]rune, c.rails)
	off := 0
	for rail, n := range counts {
		tracks[rail] = runes[off : off+n]
		off += n
	}

	// Read: walk the zigzag again, taking the next rune off each rail visited.
	out := make([]rune, len(runes))
	next := make([]int, c.rails)
	for i, rail := range marks {
		out[i] = tracks[rail][next[rail]]
		next[rail]++
	}
	return string(out), nil
}

// railOf returns the rail that position i falls on. The walk starts on rail 0
// going down and turns at the top and bottom rails.
func railOf(i, rails int) int {
	cycle := 2 * (rails - 1)
	r := i % cycle
	if r < rails {
		return r
	}
	return cycle - r
}

func stripSpace(text string) []rune {
	runes := make([]rune, 0, len(text))
	for _, r := range text {
		if !unicode.IsSpace(r) {
			runes = append(runes, r)
		}
	}
	return runes
}
