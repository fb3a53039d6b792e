// Package bson stores scytale-enciphered records as BSON.
//
// A processor built on this codec enciphers tagged fields on a clone of the
// value, then marshals the clone; Load unmarshals first and deciphers after.
// The value handed to Store must marshal to a BSON document, so T is a
// struct. Field names follow bson tags.
package bson

import (
	"github.com/zoobzio/scytale"
	"go.mongodb.org/mongo-driver/bson"
)

// ContentType is the MIME type reported by the BSON codec.
const ContentType = "application/bson"

// bsonCodec implements scytale.Codec for BSON.
type bsonCodec struct{}

// New returns a BSON codec.
func New() scytale.Codec {
	return &bsonCodec{}
}

// Processor returns the shared BSON processor for T. Register a cipher for
// each algorithm T's tags name before the first Store or Load.
func Processor[T scytale.Cloner[T]]() (*scytale.Processor[T], error) {
	return scytale.Use[T](New())
}

func (c *bsonCodec) ContentType() string {
	return ContentType
}

func (c *bsonCodec) Marshal(v any) ([]byte, error) {
	return bson.Marshal(v)
}

func (c *bsonCodec) Unmarshal(data []byte, v any) error {
	return bson.Unmarshal(data, v)
}
