// Package testing provides test utilities for scytale.
package testing

import (
	"testing"

	"github.com/zoobzio/scytale"
)

// Keys known to be valid for each algorithm.
const (
	CaesarKey   = "3"
	MonoKey     = "QWERTYUIOPASDFGHJKLZXCVBNM"
	VigenereKey = "LEMON"
	PlayfairKey = "MONARCHY"
	HillKey     = "3,3,2,5"
	RailKey     = "3"
)

// TestKey returns a valid raw key for algo.
func TestKey(algo scytale.Algo) string {
	switch algo {
	case scytale.AlgoCaesar:
		return CaesarKey
	case scytale.AlgoMono:
		return MonoKey
	case scytale.AlgoVigenere:
		return VigenereKey
	case scytale.AlgoOTP:
		return "XMCKLXMCKLXMCKLXMCKLXMCKLXMCKLXMCKLXMCKLXMCKLXMCKLXMCKLXMCKL"
	case scytale.AlgoPlayfair:
		return PlayfairKey
	case scytale.AlgoHill:
		return HillKey
	case scytale.AlgoRail:
		return RailKey
	}
	return ""
}

// TestCipher builds the cipher for algo from its test key.
func TestCipher(tb testing.TB, algo scytale.Algo) scytale.Cipher {
	tb.Helper()
	c, err := scytale.New(algo, TestKey(algo))
	if err != nil {
		tb.Fatalf("New(%s) error: %v", algo, err)
	}
	return c
}

// TestProcessor returns a processor for T with every algorithm registered.
func TestProcessor[T scytale.Cloner[T]](tb testing.TB, codec scytale.Codec) *scytale.Processor[T] {
	tb.Helper()
	proc, err := scytale.NewProcessor[T](codec)
	if err != nil {
		tb.Fatalf("NewProcessor error: %v", err)
	}
	for _, algo := range scytale.Algorithms() {
		proc.SetCipher(algo, TestCipher(tb, algo))
	}
	return proc
}

// PlainNote is a test type with no cipher tags.
type PlainNote struct {
	ID   string `json:"id" xml:"id" yaml:"id" msgpack:"id" bson:"id"`
	Body string `json:"body" xml:"body" yaml:"body" msgpack:"body" bson:"body"`
}

// Clone implements Cloner[PlainNote].
func (n PlainNote) Clone() PlainNote { return n }

// Dispatch is a test type whose fields are enciphered in storage.
type Dispatch struct {
	ID       string   `json:"id" xml:"id" yaml:"id" msgpack:"id" bson:"id"`
	From     string   `json:"from" xml:"from" yaml:"from" msgpack:"from" bson:"from"`
	Body     string   `json:"body" xml:"body" yaml:"body" msgpack:"body" bson:"body" store.encode:"vigenere" load.decode:"vigenere"`
	Lines    []string `json:"lines" xml:"lines" yaml:"lines" msgpack:"lines" bson:"lines" store.encode:"caesar" load.decode:"caesar"`
	Codeword string   `json:"codeword" xml:"codeword" yaml:"codeword" msgpack:"codeword" bson:"codeword" store.encode:"mono" load.decode:"mono"`
}

// Clone implements Cloner[Dispatch].
func (d Dispatch) Clone() Dispatch {
	c := d
	if d.Lines != nil {
		c.Lines = make([]string, len(d.Lines))
		copy(c.Lines, d.Lines)
	}
	return c
}

// Ledger carries a map and a nested pointer for field-path tests.
type Ledger struct {
	Owner   string            `json:"owner"`
	Entries map[string]string `json:"entries" store.encode:"caesar" load.decode:"caesar"`
	Seal    *Seal             `json:"seal,omitempty"`
}

// Seal is nested inside Ledger.
type Seal struct {
	Mark string `json:"mark" store.encode:"rail" load.decode:"rail"`
}

// Clone implements Cloner[Ledger].
func (l Ledger) Clone() Ledger {
	c := Ledger{Owner: l.Owner}
	if l.Entries != nil {
		c.Entries = make(map[string]string, len(l.Entries))
		for k, v := range l.Entries {
			c.Entries[k] = v
		}
	}
	if l.Seal != nil {
		s := *l.Seal
		c.Seal = &s
	}
	return c
}
