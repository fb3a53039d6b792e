package scytale

// Override interfaces allow types to bypass reflection-based processing.
// When a type implements one of these interfaces, the Processor calls the
// interface method instead of walking tagged fields.

// Encodable bypasses reflection for store.encode actions.
// Implement this to handle all encoding for a type.
type Encodable interface {
	// Encode transforms the receiver's fields that require encoding.
	// The ciphers map contains all registered ciphers keyed by algorithm.
	// The receiver is a clone, so mutations are safe.
	Encode(ciphers map[Algo]Cipher) error
}

// Decodable bypasses reflection for load.decode actions.
// Implement this to handle all decoding for a type.
type Decodable interface {
	// Decode transforms the receiver's fields that require decoding.
	// Called on freshly unmarshaled data.
	Decode(ciphers map[Algo]Cipher) error
}
