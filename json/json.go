// Package json stores scytale-enciphered records as JSON.
//
// A processor built on this codec enciphers tagged fields on a clone of the
// value, then marshals the clone; Load unmarshals first and deciphers after.
// Enciphered fields stay JSON strings, so stored records remain valid JSON
// that other tools can read without a key.
package json

import (
	"encoding/json"

	"github.com/zoobzio/scytale"
)

// ContentType is the MIME type reported by the JSON codec.
const ContentType = "application/json"

// jsonCodec implements scytale.Codec for JSON.
type jsonCodec struct{}

// New returns a JSON codec.
func New() scytale.Codec {
	return &jsonCodec{}
}

// Processor returns the shared JSON processor for T. Register a cipher for
// each algorithm T's tags name before the first Store or Load.
func Processor[T scytale.Cloner[T]]() (*scytale.Processor[T], error) {
	return scytale.Use[T](New())
}

func (c *jsonCodec) ContentType() string {
	return ContentType
}

func (c *jsonCodec) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

func (c *jsonCodec) Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}
