package scytale

import "sort"

// Algo names a supported cipher.
// Use these constants in struct tags: `store.encode:"vigenere"`
type Algo string

const (
	// AlgoCaesar shifts every letter by a fixed amount.
	AlgoCaesar Algo = "caesar"

	// AlgoMono substitutes letters through a 26-letter permutation.
	AlgoMono Algo = "mono"

	// AlgoVigenere shifts letters by a repeating keyword.
	AlgoVigenere Algo = "vigenere"

	// AlgoOTP adds a pad at least as long as the text.
	AlgoOTP Algo = "otp"

	// AlgoPlayfair substitutes digraphs through a keyed 5x5 grid.
	AlgoPlayfair Algo = "playfair"

	// AlgoHill multiplies digraphs by a 2x2 key matrix mod 26.
	AlgoHill Algo = "hill"

	// AlgoRail writes text along a zigzag of rails and reads it row by row.
	AlgoRail Algo = "rail"
)

// validAlgos contains all valid algorithms for tag validation.
var validAlgos = map[Algo]bool{
	AlgoCaesar:   true,
	AlgoMono:     true,
	AlgoVigenere: true,
	AlgoOTP:      true,
	AlgoPlayfair: true,
	AlgoHill:     true,
	AlgoRail:     true,
}

// numericKeys lists algorithms whose raw key is an integer.
var numericKeys = map[Algo]bool{
	AlgoCaesar: true,
	AlgoRail:   true,
}

// IsValidAlgo returns true if the algorithm is a known cipher.
func IsValidAlgo(algo Algo) bool {
	return validAlgos[algo]
}

// NumericKey returns true if the algorithm takes an integer key.
func NumericKey(algo Algo) bool {
	return numericKeys[algo]
}

// Algorithms returns every known algorithm in name order.
func Algorithms() []Algo {
	algos := make([]Algo, 0, len(validAlgos))
	for a := range validAlgos {
		algos = append(algos, a)
	}
	sort.Slice(algos, func(i, j int) bool { return algos[i] < algos[j] })
	return algos
}
