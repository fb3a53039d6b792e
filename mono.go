package scytale

import (
	"fmt"
	"unicode/utf8"
)

// monoCipher substitutes each letter through a fixed permutation.
type monoCipher struct {
	forward [26]int
	inverse [26]int // -1 where a letter is absent from the key
}

// Mono returns a monoalphabetic substitution cipher.
// The key must be exactly 26 characters forming a permutation of A-Z,
// compared case-insensitively. Letter i of the alphabet encodes to key[i].
func Mono(key string) (Cipher, error) {
	if n := utf8.RuneCountInString(key); n != AlphabetSize {
		return nil, newKeyError(ErrInvalidKeyLength, AlgoMono,
			fmt.Sprintf("must be exactly %d characters, got %d", AlphabetSize, n))
	}

	c := &monoCipher{}
	for i := range c.inverse {
		c.inverse[i] = -1
	}

	i := 0
	for _, r := range key {
		pos, _, ok := classify(r)
		if !ok {
			return nil, newKeyError(ErrInvalidKeyAlphabet, AlgoMono,
				fmt.Sprintf("character %d is not a letter", i+1))
		}
		if c.inverse[pos] != -1 {
			return nil, newKeyError(ErrInvalidKeyAlphabet, AlgoMono,
				fmt.Sprintf("letter %c appears more than once", Alphabet[pos]))
		}
		c.forward[i] = pos
		c.inverse[pos] = i
		i++
	}

	return c, nil
}

func (c *monoCipher) Algorithm() Algo { return AlgoMono }

func (c *monoCipher) Encode(text string) (string, error) {
	return mapLetters(text, func(pos, _ int) int {
		return c.forward[pos]
	}), nil
}

// Decode maps ciphertext letters back through the key. A letter the key does
// not contain is passed through unchanged rather than reported.
func (c *monoCipher) Decode(text string) (string, error) {
	return mapLetters(text, func(pos, _ int) int {
		return c.inverse[pos]
	}), nil
}
