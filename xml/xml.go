// Package xml stores scytale-enciphered records as XML.
//
// A processor built on this codec enciphers tagged fields on a clone of the
// value, then marshals the clone; Load unmarshals first and deciphers after.
// Enciphered fields are written as element or attribute text. Ciphers that
// keep punctuation may emit characters XML escapes, such as & and <.
package xml

import (
	"encoding/xml"

	"github.com/zoobzio/scytale"
)

// ContentType is the MIME type reported by the XML codec.
const ContentType = "application/xml"

// xmlCodec implements scytale.Codec for XML.
type xmlCodec struct{}

// New returns an XML codec.
func New() scytale.Codec {
	return &xmlCodec{}
}

// Processor returns the shared XML processor for T. Register a cipher for
// each algorithm T's tags name before the first Store or Load.
func Processor[T scytale.Cloner[T]]() (*scytale.Processor[T], error) {
	return scytale.Use[T](New())
}

func (c *xmlCodec) ContentType() string {
	return ContentType
}

func (c *xmlCodec) Marshal(v any) ([]byte, error) {
	return xml.Marshal(v)
}

func (c *xmlCodec) Unmarshal(data []byte, v any) error {
	return xml.Unmarshal(data, v)
}
