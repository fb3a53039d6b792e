package scytale

// Codec marshals records for a Processor. Store enciphers tagged fields on a
// clone before Marshal sees it; Load deciphers after Unmarshal returns. A
// codec never handles plaintext of tagged fields on the store side.
type Codec interface {
	// ContentType returns the MIME type for this codec (e.g., "application/json").
	// Processors are cached per type and content type.
	ContentType() string

	// Marshal encodes v into bytes.
	Marshal(v any) ([]byte, error)

	// Unmarshal decodes data into v.
	Unmarshal(data []byte, v any) error
}
