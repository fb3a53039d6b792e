package scytale

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error handling.
// Use errors.Is() to check for these error types.
var (
	// ErrInvalidNumericKey indicates a shift or rail-count key is not an integer.
	ErrInvalidNumericKey = errors.New("invalid numeric key")

	// ErrInvalidRailCount indicates a rail count below 2.
	ErrInvalidRailCount = errors.New("invalid rail count")

	// ErrInvalidKeyLength indicates a substitution key that is not 26 characters.
	ErrInvalidKeyLength = errors.New("invalid key length")

	// ErrInvalidKeyAlphabet indicates a substitution key that is not a permutation of A-Z.
	ErrInvalidKeyAlphabet = errors.New("invalid key alphabet")

	// ErrEmptyKey indicates a key with no usable letters.
	ErrEmptyKey = errors.New("empty key")

	// ErrKeyTooShort indicates a pad shorter than the text it must cover.
	ErrKeyTooShort = errors.New("key too short")

	// ErrMalformedKey indicates a matrix key that is not exactly 4 comma-separated values.
	ErrMalformedKey = errors.New("malformed key")

	// ErrNonNumericKey indicates a matrix key entry that is not an integer.
	ErrNonNumericKey = errors.New("non-numeric key")

	// ErrNonInvertibleKey indicates a matrix whose determinant shares a factor with 26.
	ErrNonInvertibleKey = errors.New("non-invertible key")

	// ErrUnknownCipherCharacter indicates a ciphertext letter missing from a substitution key.
	// Decoding passes such letters through instead of returning this error.
	ErrUnknownCipherCharacter = errors.New("unknown cipher character")

	// ErrUnknownAlgorithm indicates a cipher name that is not registered.
	ErrUnknownAlgorithm = errors.New("unknown algorithm")

	// ErrMissingCipher indicates a processor field needs a cipher that was not registered.
	ErrMissingCipher = errors.New("missing cipher")

	// ErrInvalidTag indicates a struct tag has an invalid format or value.
	ErrInvalidTag = errors.New("invalid tag")

	// ErrEncode indicates encoding of a field failed.
	ErrEncode = errors.New("encode failed")

	// ErrDecode indicates decoding of a field failed.
	ErrDecode = errors.New("decode failed")

	// ErrUnmarshal indicates the codec failed to unmarshal input data.
	ErrUnmarshal = errors.New("unmarshal failed")

	// ErrMarshal indicates the codec failed to marshal output data.
	ErrMarshal = errors.New("marshal failed")
)

// KeyError represents a rejected cipher key.
// It wraps a sentinel error with the algorithm and a human-readable detail.
type KeyError struct {
	Err       error  // Underlying sentinel error (ErrEmptyKey, ErrKeyTooShort, etc.)
	Algorithm Algo   // Cipher that rejected the key
	Detail    string // What was wrong, never the key itself
}

func (e *KeyError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s key: %s: %s", e.Algorithm, e.Err.Error(), e.Detail)
	}
	return fmt.Sprintf("%s key: %s", e.Algorithm, e.Err.Error())
}

func (e *KeyError) Unwrap() error {
	return e.Err
}

// ConfigError represents a processor configuration error.
// It wraps a sentinel error with additional context about the field and algorithm.
type ConfigError struct {
	Err       error  // Underlying sentinel error (ErrMissingCipher, ErrInvalidTag)
	Field     string // Field name that triggered the error
	Algorithm string // Algorithm that was missing/invalid
}

func (e *ConfigError) Error() string {
	if e.Field != "" && e.Algorithm != "" {
		return fmt.Sprintf("%s for algorithm %q (field %s)", e.Err.Error(), e.Algorithm, e.Field)
	}
	if e.Algorithm != "" {
		return fmt.Sprintf("%s for algorithm %q", e.Err.Error(), e.Algorithm)
	}
	if e.Field != "" {
		return fmt.Sprintf("%s (field %s)", e.Err.Error(), e.Field)
	}
	return e.Err.Error()
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// TransformError represents an error during field transformation.
type TransformError struct {
	Err       error  // Underlying sentinel error (ErrEncode, ErrDecode)
	Field     string // Field name that failed
	Operation string // Operation that failed (encode, decode)
	Cause     error  // Original error from the cipher
}

func (e *TransformError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s field %s: %v", e.Operation, e.Field, e.Cause)
	}
	return fmt.Sprintf("%s field %s", e.Operation, e.Field)
}

func (e *TransformError) Unwrap() error {
	return e.Err
}

// CodecError represents a marshal/unmarshal error.
type CodecError struct {
	Err   error // Underlying sentinel error (ErrMarshal, ErrUnmarshal)
	Cause error // Original error from the codec
}

func (e *CodecError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Err.Error(), e.Cause)
	}
	return e.Err.Error()
}

func (e *CodecError) Unwrap() error {
	return e.Err
}

// newKeyError creates a KeyError for a rejected key.
func newKeyError(sentinel error, algo Algo, detail string) error {
	return &KeyError{
		Err:       sentinel,
		Algorithm: algo,
		Detail:    detail,
	}
}

// newConfigError creates a ConfigError for missing cipher scenarios.
func newConfigError(sentinel error, algorithm, field string) error {
	return &ConfigError{
		Err:       sentinel,
		Algorithm: algorithm,
		Field:     field,
	}
}

// newTransformError creates a TransformError for field transformation failures.
func newTransformError(sentinel error, operation, field string, cause error) error {
	return &TransformError{
		Err:       sentinel,
		Field:     field,
		Operation: operation,
		Cause:     cause,
	}
}

// newCodecError creates a CodecError for marshal/unmarshal failures.
func newCodecError(sentinel error, cause error) error {
	return &CodecError{
		Err:   sentinel,
		Cause: cause,
	}
}
