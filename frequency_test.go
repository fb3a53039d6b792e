package scytale

import (
	"math"
	"testing"
)

const dickens = "It was the best of times, it was the worst of times, it was the age of wisdom, " +
	"it was the age of foolishness, it was the epoch of belief, it was the epoch of incredulity"

func TestFrequency(t *testing.T) {
	h := Frequency("Hello, World!")

	if h.Total != 10 {
		t.Errorf("Total = %d, want 10", h.Total)
	}
	if h.Counts['L'-'A'] != 3 {
		t.Errorf("Counts[L] = %d, want 3", h.Counts['L'-'A'])
	}
	if got := h.Percent(int('L' - 'A')); got != 30 {
		t.Errorf("Percent(L) = %v, want 30", got)
	}
}

func TestFrequency_Empty(t *testing.T) {
	h := Frequency("123 !")

	if h.Total != 0 {
		t.Errorf("Total = %d, want 0", h.Total)
	}
	if h.Percent(0) != 0 {
		t.Errorf("Percent() = %v, want 0", h.Percent(0))
	}
	if h.ChiSquared() != 0 {
		t.Errorf("ChiSquared() = %v, want 0", h.ChiSquared())
	}
	if len(h.Ranked()) != 0 {
		t.Errorf("Ranked() = %v, want empty", h.Ranked())
	}
}

func TestHistogram_Ranked(t *testing.T) {
	ranked := Frequency("banana").Ranked()

	want := []LetterCount{
		{Letter: 'A', Count: 3, Percent: 50},
		{Letter: 'N', Count: 2, Percent: 100.0 * 2 / 6},
		{Letter: 'B', Count: 1, Percent: 100.0 / 6},
	}
	if len(ranked) != len(want) {
		t.Fatalf("Ranked() = %v, want %v", ranked, want)
	}
	for i := range want {
		if ranked[i].Letter != want[i].Letter || ranked[i].Count != want[i].Count {
			t.Errorf("Ranked()[%d] = %c:%d, want %c:%d", i, ranked[i].Letter, ranked[i].Count, want[i].Letter, want[i].Count)
		}
		if math.Abs(ranked[i].Percent-want[i].Percent) > 1e-9 {
			t.Errorf("Ranked()[%d].Percent = %v, want %v", i, ranked[i].Percent, want[i].Percent)
		}
	}
}

func TestHistogram_Ranked_TiesAlphabetical(t *testing.T) {
	ranked := Frequency("cab").Ranked()
	if string([]byte{ranked[0].Letter, ranked[1].Letter, ranked[2].Letter}) != "ABC" {
		t.Errorf("Ranked() order = %c%c%c, want ABC", ranked[0].Letter, ranked[1].Letter, ranked[2].Letter)
	}
}

func TestHistogram_ChiSquared(t *testing.T) {
	english := Frequency(dickens).ChiSquared()
	shifted, _ := Caesar(11).Encode(dickens)
	scrambled := Frequency(shifted).ChiSquared()

	if english >= scrambled {
		t.Errorf("ChiSquared() english = %v, shifted = %v, want english lower", english, scrambled)
	}
}

func TestRankShifts(t *testing.T) {
	for _, shift := range []int{0, 3, 11, 25} {
		encoded, _ := Caesar(shift).Encode(dickens)
		scores := RankShifts(encoded)

		if len(scores) != AlphabetSize {
			t.Fatalf("RankShifts() returned %d scores, want %d", len(scores), AlphabetSize)
		}
		if scores[0].Shift != shift {
			t.Errorf("RankShifts() best shift = %d, want %d", scores[0].Shift, shift)
		}
		for i := 1; i < len(scores); i++ {
			if scores[i].Score < scores[i-1].Score {
				t.Fatalf("RankShifts() not sorted at %d", i)
			}
		}
	}
}
