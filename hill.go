package scytale

import (
	"fmt"
	"strconv"
	"strings"
)

// hillPad is the letter value (X) used to complete an odd final block.
const hillPad = 23

// Matrix is a 2x2 key matrix in row-major order.
type Matrix [2][2]int

// ParseHillKey parses "a,b,c,d" into the matrix [[a b] [c d]].
// Whitespace around each entry is ignored.
func ParseHillKey(key string) (Matrix, error) {
	parts := strings.Split(key, ",")
	if len(parts) != 4 {
		return Matrix{}, newKeyError(ErrMalformedKey, AlgoHill,
			fmt.Sprintf("must be 4 comma-separated integers, got %d values", len(parts)))
	}

	var vals [4]int
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return Matrix{}, newKeyError(ErrNonNumericKey, AlgoHill,
				fmt.Sprintf("entry %d is not an integer", i+1))
		}
		vals[i] = n
	}

	return Matrix{{vals[0], vals[1]}, {vals[2], vals[3]}}, nil
}

// Reduced returns m with every entry taken modulo 26.
func (m Matrix) Reduced() Matrix {
	return Matrix{
		{mod(m[0][0], AlphabetSize), mod(m[0][1], AlphabetSize)},
		{mod(m[1][0], AlphabetSize), mod(m[1][1], AlphabetSize)},
	}
}

// Determinant returns ad - bc without reduction. Entries large enough to
// overflow the products should be reduced first.
func (m Matrix) Determinant() int {
	return m[0][0]*m[1][1] - m[0][1]*m[1][0]
}

// Invertible reports whether the determinant is coprime with 26,
// i.e. odd and not a multiple of 13 once reduced.
func (m Matrix) Invertible() bool {
	d := mod(m.Reduced().Determinant(), AlphabetSize)
	return d%2 != 0 && d%13 != 0
}

// Inverse returns the inverse of m modulo 26, with every entry in [0, 26).
func (m Matrix) Inverse() (Matrix, error) {
	m = m.Reduced()
	detInv, ok := modInverse(m.Determinant(), AlphabetSize)
	if !ok {
		return Matrix{}, newKeyError(ErrNonInvertibleKey, AlgoHill,
			fmt.Sprintf("determinant %d is not coprime with %d", m.Determinant(), AlphabetSize))
	}
	return Matrix{
		{mod(m[1][1]*detInv, AlphabetSize), mod(-m[0][1]*detInv, AlphabetSize)},
		{mod(-m[1][0]*detInv, AlphabetSize), mod(m[0][0]*detInv, AlphabetSize)},
	}, nil
}

// apply multiplies m by the column vector (x, y) modulo 26. m must be reduced.
func (m Matrix) apply(x, y int) (int, int) {
	return mod(m[0][0]*x+m[0][1]*y, AlphabetSize),
		mod(m[1][0]*x+m[1][1]*y, AlphabetSize)
}

// modInverse finds y in [1, n) with a*y ≡ 1 (mod n) by direct search.
func modInverse(a, n int) (int, bool) {
	a = mod(a, n)
	for y := 1; y < n; y++ {
		if (a*y)%n == 1 {
			return y, true
		}
	}
	return 0, false
}

// hillCipher multiplies letter pairs by a key matrix.
type hillCipher struct {
	key     Matrix
	inverse Matrix
}

// Hill returns a 2x2 Hill cipher. The matrix must be invertible modulo 26,
// otherwise ErrNonInvertibleKey is returned.
//
// Output is uppercase letters only. Encode pads an odd final letter with X;
// Decode ignores a trailing unpaired letter.
func Hill(m Matrix) (Cipher, error) {
	m = m.Reduced()
	if !m.Invertible() {
		return nil, newKeyError(ErrNonInvertibleKey, AlgoHill,
			fmt.Sprintf("determinant %d is not coprime with %d", m.Determinant(), AlphabetSize))
	}
	inv, err := m.Inverse()
	if err != nil {
		return nil, err
	}
	return &hillCipher{key: m, inverse: inv}, nil
}

func (c *hillCipher) Algorithm() Algo { return AlgoHill }

func (c *hillCipher) Encode(text string) (string, error) {
	norm := Normalize(text)
	var b strings.Builder
	b.Grow(len(norm) + 1)
	for i := 0; i < len(norm); i += 2 {
		x := int(norm[i] - 'A')
		y := hillPad
		if i+1 < len(norm) {
			y = int(norm[i+1] - 'A')
		}
		p, q := c.key.apply(x, y)
		b.WriteByte(Alphabet[p])
		b.WriteByte(Alphabet[q])
	}
	return b.String(), nil
}

func (c *hillCipher) Decode(text string) (string, error) {
	norm := Normalize(text)
	var b strings.Builder
	b.Grow(len(norm))
	for i := 0; i+1 < len(norm); i += 2 {
		p, q := c.inverse.apply(int(norm[i]-'A'), int(norm[i+1]-'A'))
		b.WriteByte(Alphabet[p])
		b.WriteByte(Alphabet[q])
	}
	return b.String(), nil
}
