package scytale

import "strings"

// filler pads odd digraphs and splits doubled letters.
const filler = 'X'

// gridSize is the side length of the Playfair square.
const gridSize = 5

// grid is a row-major 5x5 Playfair square with J folded into I.
type grid struct {
	cells [gridSize * gridSize]byte
	pos   [26]int8 // cell index per letter, -1 for J
}

// newGrid places the distinct letters of keyword first, then the rest of the
// alphabet without J.
func newGrid(keyword string) grid {
	var g grid
	for i := range g.pos {
		g.pos[i] = -1
	}

	n := 0
	place := func(c byte) {
		if c == 'J' {
			c = 'I'
		}
		if g.pos[c-'A'] != -1 {
			return
		}
		g.cells[n] = c
		g.pos[c-'A'] = int8(n)
		n++
	}

	norm := Normalize(keyword)
	for i := 0; i < len(norm); i++ {
		place(norm[i])
	}
	for i := 0; i < len(Alphabet); i++ {
		if Alphabet[i] != 'J' {
			place(Alphabet[i])
		}
	}

	g.pos['J'-'A'] = g.pos['I'-'A']
	return g
}

// locate returns the row and column of letter c.
func (g *grid) locate(c byte) (row, col int) {
	idx := int(g.pos[c-'A'])
	return idx / gridSize, idx % gridSize
}

func (g *grid) at(row, col int) byte {
	return g.cells[row*gridSize+col]
}

// playfairCipher substitutes letter pairs through a keyed grid.
type playfairCipher struct {
	grid grid
}

// Playfair returns a digraph cipher over a 5x5 grid seeded by keyword.
// A keyword with no letters fails with ErrEmptyKey.
//
// Output is uppercase letters only, with J read as I. Encode splits doubled
// letters and pads an odd tail with X; Decode drops a trailing unpaired letter.
func Playfair(keyword string) (Cipher, error) {
	if Normalize(keyword) == "" {
		return nil, newKeyError(ErrEmptyKey, AlgoPlayfair, "must contain at least one letter")
	}
	return &playfairCipher{grid: newGrid(keyword)}, nil
}

func (c *playfairCipher) Algorithm() Algo { return AlgoPlayfair }

func (c *playfairCipher) Encode(text string) (string, error) {
	return c.transform(digraphs(text), 1), nil
}

func (c *playfairCipher) Decode(text string) (string, error) {
	norm := foldJ(Normalize(text))
	pairs := make([][2]byte, 0, len(norm)/2)
	for i := 0; i+1 < len(norm); i += 2 {
		pairs = append(pairs, [2]byte{norm[i], norm[i+1]})
	}
	return c.transform(pairs, gridSize-1), nil
}

// transform applies the row, column and rectangle rules to each pair.
// step is 1 to move right/down and 4 to move left/up.
func (c *playfairCipher) transform(pairs [][2]byte, step int) string {
	var b strings.Builder
	b.Grow(len(pairs) * 2)
	g := &c.grid
	for _, p := range pairs {
		r1, c1 := g.locate(p[0])
		r2, c2 := g.locate(p[1])
		switch {
		case r1 == r2:
			b.WriteByte(g.at(r1, (c1+step)%gridSize))
			b.WriteByte(g.at(r2, (c2+step)%gridSize))
		case c1 == c2:
			b.WriteByte(g.at((r1+step)%gridSize, c1))
			b.WriteByte(g.at((r2+step)%gridSize, c2))
		default:
			b.WriteByte(g.at(r1, c2))
			b.WriteByte(g.at(r2, c1))
		}
	}
	return b.String()
}

// digraphs splits text into encode pairs, scanning left to right. A pair of
// equal letters becomes the letter plus X and the scan advances by one; an
// unpaired final letter is padded with X.
func digraphs(text string) [][2]byte {
	norm := foldJ(Normalize(text))
	pairs := make([][2]byte, 0, len(norm)/2+1)
	for i := 0; i < len(norm); {
		a := norm[i]
		b := byte(filler)
		if i+1 < len(norm) {
			b = norm[i+1]
		}
		if a == b {
			pairs = append(pairs, [2]byte{a, filler})
			i++
			continue
		}
		pairs = append(pairs, [2]byte{a, b})
		i += 2
	}
	return pairs
}

// foldJ replaces J with I in normalized text.
func foldJ(norm string) string {
	return strings.ReplaceAll(norm, "J", "I")
}
