package scytale

// vigenereCipher shifts each letter by the next letter of a repeating keyword.
type vigenereCipher struct {
	shifts []int
}

// Vigenere returns a repeating-keyword cipher. Non-letters in the key are
// ignored; a key with no letters fails with ErrEmptyKey. Only letters of the
// text advance the keyword, so spacing and punctuation do not shift it.
func Vigenere(key string) (Cipher, error) {
	shifts := keyShifts(key)
	if len(shifts) == 0 {
		return nil, newKeyError(ErrEmptyKey, AlgoVigenere, "must contain at least one letter")
	}
	return &vigenereCipher{shifts: shifts}, nil
}

func (c *vigenereCipher) Algorithm() Algo { return AlgoVigenere }

func (c *vigenereCipher) Encode(text string) (string, error) {
	return mapLetters(text, func(pos, n int) int {
		return (pos + c.shifts[n%len(c.shifts)]) % AlphabetSize
	}), nil
}

func (c *vigenereCipher) Decode(text string) (string, error) {
	return mapLetters(text, func(pos, n int) int {
		return mod(pos-c.shifts[n%len(c.shifts)], AlphabetSize)
	}), nil
}

// keyShifts converts the letters of key into zero-based shift amounts.
func keyShifts(key string) []int {
	norm := Normalize(key)
	shifts := make([]int, len(norm))
	for i := 0; i < len(norm); i++ {
		shifts[i] = int(norm[i] - 'A')
	}
	return shifts
}
