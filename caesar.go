package scytale

// caesarCipher shifts every ASCII letter by a fixed amount.
type caesarCipher struct {
	shift int
}

// Caesar returns a shift cipher. Any integer is accepted and reduced into
// [0, 26); case and non-letters are preserved.
func Caesar(shift int) Cipher {
	return &caesarCipher{shift: mod(shift, AlphabetSize)}
}

func (c *caesarCipher) Algorithm() Algo { return AlgoCaesar }

func (c *caesarCipher) Encode(text string) (string, error) {
	return shiftText(text, c.shift), nil
}

func (c *caesarCipher) Decode(text string) (string, error) {
	return shiftText(text, -c.shift), nil
}

func shiftText(text string, shift int) string {
	shift = mod(shift, AlphabetSize)
	return mapLetters(text, func(pos, _ int) int {
		return (pos + shift) % AlphabetSize
	})
}
