// Package msgpack stores scytale-enciphered records as MessagePack.
//
// A processor built on this codec enciphers tagged fields on a clone of the
// value, then marshals the clone; Load unmarshals first and deciphers after.
// Enciphered []byte fields are written as MessagePack binary and string
// fields as MessagePack str.
package msgpack

import (
	"github.com/vmihailenco/msgpack/v5"
	"github.com/zoobzio/scytale"
)

// ContentType is the MIME type reported by the MessagePack codec.
const ContentType = "application/msgpack"

// msgpackCodec implements scytale.Codec for MessagePack.
type msgpackCodec struct{}

// New returns a MessagePack codec.
func New() scytale.Codec {
	return &msgpackCodec{}
}

// Processor returns the shared MessagePack processor for T. Register a cipher for
// each algorithm T's tags name before the first Store or Load.
func Processor[T scytale.Cloner[T]]() (*scytale.Processor[T], error) {
	return scytale.Use[T](New())
}

func (c *msgpackCodec) ContentType() string {
	return ContentType
}

func (c *msgpackCodec) Marshal(v any) ([]byte, error) {
	return msgpack.Marshal(v)
}

func (c *msgpackCodec) Unmarshal(data []byte, v any) error {
	return msgpack.Unmarshal(data, v)
}
