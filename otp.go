package scytale

import (
	"fmt"
	"strings"
)

// otpCipher adds a pad letter to each text letter, position by position.
type otpCipher struct {
	pad []int
}

// OTP returns a one-time pad cipher over the 26-letter alphabet.
//
// Both text and key are normalized to uppercase letters; punctuation, spacing
// and case are not preserved. Encode and Decode fail with ErrKeyTooShort when
// the pad has fewer letters than the text. The pad is only secret-safe when
// never reused, which is the caller's responsibility.
func OTP(key string) (Cipher, error) {
	pad := keyShifts(key)
	if len(pad) == 0 {
		return nil, newKeyError(ErrEmptyKey, AlgoOTP, "must contain at least one letter")
	}
	return &otpCipher{pad: pad}, nil
}

func (c *otpCipher) Algorithm() Algo { return AlgoOTP }

func (c *otpCipher) Encode(text string) (string, error) {
	return c.apply(text, 1)
}

func (c *otpCipher) Decode(text string) (string, error) {
	return c.apply(text, -1)
}

// apply adds (sign 1) or subtracts (sign -1) the pad from the normalized text.
func (c *otpCipher) apply(text string, sign int) (string, error) {
	norm := Normalize(text)
	if len(c.pad) < len(norm) {
		return "", newKeyError(ErrKeyTooShort, AlgoOTP,
			fmt.Sprintf("pad has %d letters, text has %d", len(c.pad), len(norm)))
	}

	var b strings.Builder
	b.Grow(len(norm))
	for i := 0; i < len(norm); i++ {
		v := int(norm[i] - 'A')
		b.WriteByte(Alphabet[mod(v+sign*c.pad[i], AlphabetSize)])
	}
	return b.String(), nil
}
