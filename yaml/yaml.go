// Package yaml stores scytale-enciphered records as YAML.
//
// A processor built on this codec enciphers tagged fields on a clone of the
// value, then marshals the clone; Load unmarshals first and deciphers after.
// Ciphertext made of bare capitals such as "YES" or "NO" is quoted by the
// encoder, so enciphered fields always load back as strings.
package yaml

import (
	"github.com/zoobzio/scytale"
	"gopkg.in/yaml.v3"
)

// ContentType is the MIME type reported by the YAML codec.
const ContentType = "application/yaml"

// yamlCodec implements scytale.Codec for YAML.
type yamlCodec struct{}

// New returns a YAML codec.
func New() scytale.Codec {
	return &yamlCodec{}
}

// Processor returns the shared YAML processor for T. Register a cipher for
// each algorithm T's tags name before the first Store or Load.
func Processor[T scytale.Cloner[T]]() (*scytale.Processor[T], error) {
	return scytale.Use[T](New())
}

func (c *yamlCodec) ContentType() string {
	return ContentType
}

func (c *yamlCodec) Marshal(v any) ([]byte, error) {
	return yaml.Marshal(v)
}

func (c *yamlCodec) Unmarshal(data []byte, v any) error {
	return yaml.Unmarshal(data, v)
}
