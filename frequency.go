package scytale

import "sort"

// EnglishFrequencies holds the relative frequency of each letter in English
// prose, in percent, indexed A to Z.
var EnglishFrequencies = [26]float64{
	8.2, 1.5, 2.8, 4.3, 12.7, 2.2, 2.0, 6.1, 7.0, 0.2, 0.8, 4.0, 2.4,
	6.7, 7.5, 1.9, 0.1, 6.0, 6.3, 9.1, 2.8, 1.0, 2.4, 0.2, 2.0, 0.1,
}

// Histogram counts letter occurrences in normalized text.
type Histogram struct {
	Counts [26]int
	Total  int
}

// LetterCount pairs a letter with its count and share of the total.
type LetterCount struct {
	Letter  byte
	Count   int
	Percent float64
}

// Frequency counts the letters of text, ignoring case and non-letters.
func Frequency(text string) Histogram {
	var h Histogram
	for _, r := range text {
		if pos, _, ok := classify(r); ok {
			h.Counts[pos]++
			h.Total++
		}
	}
	return h
}

// Percent returns the share of letter pos in percent, or 0 for empty text.
func (h Histogram) Percent(pos int) float64 {
	if h.Total == 0 {
		return 0
	}
	return float64(h.Counts[pos]) * 100 / float64(h.Total)
}

// Ranked returns the letters that occur, most frequent first. Ties keep
// alphabetical order.
func (h Histogram) Ranked() []LetterCount {
	out := make([]LetterCount, 0, len(h.Counts))
	for pos, n := range h.Counts {
		if n == 0 {
			continue
		}
		out = append(out, LetterCount{Letter: Alphabet[pos], Count: n, Percent: h.Percent(pos)})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	return out
}

// ChiSquared scores how far the histogram is from English letter frequencies.
// Lower is closer. Empty text scores 0.
func (h Histogram) ChiSquared() float64 {
	if h.Total == 0 {
		return 0
	}
	var score float64
	for pos, n := range h.Counts {
		expected := EnglishFrequencies[pos] * float64(h.Total) / 100
		d := float64(n) - expected
		score += d * d / expected
	}
	return score
}

// ShiftScore is one candidate Caesar shift and its chi-squared score.
type ShiftScore struct {
	Shift int
	Score float64
}

// RankShifts scores every Caesar shift against English and returns them best
// first. The shift is the encoding key: Caesar(Shift).Decode recovers the
// candidate plaintext.
func RankShifts(ciphertext string) []ShiftScore {
	h := Frequency(ciphertext)
	scores := make([]ShiftScore, AlphabetSize)
	for shift := 0; shift < AlphabetSize; shift++ {
		var shifted Histogram
		shifted.Total = h.Total
		for pos, n := range h.Counts {
			shifted.Counts[mod(pos-shift, AlphabetSize)] = n
		}
		scores[shift] = ShiftScore{Shift: shift, Score: shifted.ChiSquared()}
	}
	sort.SliceStable(scores, func(i, j int) bool { return scores[i].Score < scores[j].Score })
	return scores
}
