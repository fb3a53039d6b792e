// Package scytale provides classical text ciphers behind one symmetric interface.
//
// Every cipher is built from a key by a constructor that validates the key up
// front, then exposes Encode and Decode over plain strings. Ciphers hold no
// mutable state and are safe for concurrent use.
//
// # Ciphers
//
//   - Caesar(shift) - additive shift, case and punctuation preserved
//   - Mono(key) - 26-letter permutation, case and punctuation preserved
//   - Vigenere(key) - repeating keyword shift, case and punctuation preserved
//   - OTP(key) - additive pad at least as long as the letters of the text
//   - Playfair(key) - digraph substitution through a keyed 5x5 grid
//   - Hill(matrix) - 2x2 matrix multiplication mod 26 over letter pairs
//   - RailFence(rails) - zigzag transposition, whitespace removed
//
// OTP, Playfair and Hill operate on the normalized text (uppercase A-Z only).
//
// # Selecting by Name
//
// Callers holding raw key text pick a cipher by name:
//
//	c, err := scytale.New(scytale.AlgoVigenere, "LEMON")
//	out, err := c.Encode("ATTACK AT DAWN")
//
// Or in one step, with capitan signals emitted around the call:
//
//	out, err := scytale.Encode(ctx, scytale.AlgoRail, "WE ARE DISCOVERED", "3")
//
// # Pipelines
//
// Ciphers compose with Chain; Decode unwinds the chain in reverse:
//
//	p := scytale.Chain(scytale.Caesar(3), rail)
//
// # Field Processing
//
// Processor encodes tagged string fields before marshaling and decodes them
// after unmarshaling:
//
//	type Note struct {
//	    ID   string `json:"id"`
//	    Body string `json:"body" store.encode:"vigenere" load.decode:"vigenere"`
//	}
//
//	func (n Note) Clone() Note { return n }
//
//	proc, _ := scytale.NewProcessor[Note](json.New())
//	proc.SetCipher(scytale.AlgoVigenere, vigenere)
//	data, _ := proc.Store(ctx, &note)
//	note2, _ := proc.Load(ctx, data)
//
// # Codec Providers
//
//   - json - JSON encoding (application/json)
//   - xml - XML encoding (application/xml)
//   - yaml - YAML encoding (application/yaml)
//   - msgpack - MessagePack encoding (application/msgpack)
//   - bson - BSON encoding (application/bson)
//
// None of these ciphers offer real confidentiality.
package scytale

// Cipher encodes and decodes text under a fixed, pre-validated key.
type Cipher interface {
	// Algorithm returns the name the cipher is registered under.
	Algorithm() Algo

	// Encode transforms plaintext into ciphertext.
	Encode(text string) (string, error)

	// Decode transforms ciphertext back into plaintext.
	Decode(text string) (string, error)
}
