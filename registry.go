package scytale

import (
	"context"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"sync"
	"time"
)

// factory builds a cipher from raw key text.
type factory func(key string) (Cipher, error)

// builtinFactories returns the constructor for every known algorithm.
func builtinFactories() map[Algo]factory {
	return map[Algo]factory{
		AlgoCaesar: func(key string) (Cipher, error) {
			shift, err := parseNumericKey(AlgoCaesar, key)
			if err != nil {
				return nil, err
			}
			return Caesar(shift), nil
		},
		AlgoMono:     Mono,
		AlgoVigenere: Vigenere,
		AlgoOTP:      OTP,
		AlgoPlayfair: Playfair,
		AlgoHill: func(key string) (Cipher, error) {
			m, err := ParseHillKey(key)
			if err != nil {
				return nil, err
			}
			return Hill(m)
		},
		AlgoRail: func(key string) (Cipher, error) {
			rails, err := parseNumericKey(AlgoRail, key)
			if err != nil {
				return nil, err
			}
			return RailFence(rails)
		},
	}
}

var factories = builtinFactories()

// parseNumericKey parses a shift or rail-count key.
func parseNumericKey(algo Algo, key string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(key))
	if err != nil {
		return 0, newKeyError(ErrInvalidNumericKey, algo, "must be an integer")
	}
	return n, nil
}

// New builds the named cipher from raw key text. Shift and rail counts are
// parsed as integers; Hill keys as "a,b,c,d"; all other keys are used as given.
func New(algo Algo, key string) (Cipher, error) {
	return newCipher(context.Background(), algo, key)
}

func newCipher(ctx context.Context, algo Algo, key string) (Cipher, error) {
	build, ok := factories[algo]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, algo)
	}
	c, err := build(key)
	emitCipherCreated(ctx, algo, Fingerprint(key), err)
	return c, err
}

// Encode builds the named cipher and encodes text with it.
func Encode(ctx context.Context, algo Algo, text, key string) (string, error) {
	return run(ctx, algo, text, key, opEncode)
}

// Decode builds the named cipher and decodes text with it.
func Decode(ctx context.Context, algo Algo, text, key string) (string, error) {
	return run(ctx, algo, text, key, opDecode)
}

// run wraps a single cipher call with start and complete signals.
func run(ctx context.Context, algo Algo, text, key string, op operation) (string, error) {
	c, err := newCipher(ctx, algo, key)
	if err != nil {
		return "", err
	}

	fp := Fingerprint(key)
	start := time.Now()
	emitStart(ctx, op, algo, fp)

	var out string
	if op == opDecode {
		out, err = c.Decode(text)
	} else {
		out, err = c.Encode(text)
	}
	emitComplete(ctx, op, algo, fp, len(out), time.Since(start), err)
	return out, err
}

// registryKey combines type and codec for cache lookup.
type registryKey struct {
	typ         reflect.Type
	contentType string
}

var (
	registry   = make(map[registryKey]any)
	registryMu sync.RWMutex
)

// Use returns a cached processor or builds a new one.
// The processor is cached by type and codec content type.
// T must implement Cloner[T].
func Use[T Cloner[T]](codec Codec) (*Processor[T], error) {
	typ := reflect.TypeFor[T]()
	key := registryKey{typ: typ, contentType: codec.ContentType()}

	// Fast path: read-lock cache check
	registryMu.RLock()
	if cached, ok := registry[key]; ok {
		registryMu.RUnlock()
		return cached.(*Processor[T]), nil
	}
	registryMu.RUnlock()

	// Slow path: build and cache with write-lock
	registryMu.Lock()
	defer registryMu.Unlock()

	// Double-check pattern
	if cached, ok := registry[key]; ok {
		return cached.(*Processor[T]), nil
	}

	processor, err := NewProcessor[T](codec)
	if err != nil {
		return nil, err
	}

	registry[key] = processor
	return processor, nil
}

// Reset clears the processor registry.
// This is primarily useful for test isolation.
func Reset() {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry = make(map[registryKey]any)
}
