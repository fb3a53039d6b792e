package benchmarks

import (
	"context"
	"strings"
	"testing"

	"github.com/zoobzio/scytale"
	"github.com/zoobzio/scytale/json"
	scytaletest "github.com/zoobzio/scytale/testing"
)

var paragraph = strings.Repeat("The quick brown fox jumps over the lazy dog. ", 20)

func BenchmarkCipher_Encode(b *testing.B) {
	for _, algo := range scytale.Algorithms() {
		if algo == scytale.AlgoOTP {
			continue
		}
		c := scytaletest.TestCipher(b, algo)
		b.Run(string(algo), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_, _ = c.Encode(paragraph)
			}
		})
	}
}

func BenchmarkCipher_Decode(b *testing.B) {
	for _, algo := range scytale.Algorithms() {
		if algo == scytale.AlgoOTP {
			continue
		}
		c := scytaletest.TestCipher(b, algo)
		encoded, _ := c.Encode(paragraph)
		b.Run(string(algo), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_, _ = c.Decode(encoded)
			}
		})
	}
}

func BenchmarkRankShifts(b *testing.B) {
	encoded, _ := scytale.Caesar(11).Encode(paragraph)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = scytale.RankShifts(encoded)
	}
}

func BenchmarkProcessor_Store_NoTransformation(b *testing.B) {
	proc := scytaletest.TestProcessor[scytaletest.PlainNote](b, json.New())
	note := &scytaletest.PlainNote{ID: "1", Body: paragraph}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = proc.Store(context.Background(), note)
	}
}

func BenchmarkProcessor_Store_WithCiphers(b *testing.B) {
	proc := scytaletest.TestProcessor[scytaletest.Dispatch](b, json.New())
	dispatch := &scytaletest.Dispatch{
		ID:       "1",
		From:     "HQ",
		Body:     paragraph,
		Lines:    []string{"one", "two", "three"},
		Codeword: "eagle",
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = proc.Store(context.Background(), dispatch)
	}
}

func BenchmarkProcessor_Load_WithCiphers(b *testing.B) {
	proc := scytaletest.TestProcessor[scytaletest.Dispatch](b, json.New())
	data, _ := proc.Store(context.Background(), &scytaletest.Dispatch{
		ID:       "1",
		Body:     paragraph,
		Codeword: "eagle",
	})

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = proc.Load(context.Background(), data)
	}
}
