package scytale

import (
	"context"
	"time"

	"github.com/zoobzio/capitan"
)

// Signals for scytale events.
var (
	SignalCipherCreated    = capitan.NewSignal("scytale.cipher.created", "Cipher built from a key")
	SignalEncodeStart      = capitan.NewSignal("scytale.encode.start", "Encode operation beginning")
	SignalEncodeComplete   = capitan.NewSignal("scytale.encode.complete", "Encode operation finished")
	SignalDecodeStart      = capitan.NewSignal("scytale.decode.start", "Decode operation beginning")
	SignalDecodeComplete   = capitan.NewSignal("scytale.decode.complete", "Decode operation finished")
	SignalProcessorCreated = capitan.NewSignal("scytale.processor.created", "Processor instantiated")
	SignalStoreStart       = capitan.NewSignal("scytale.store.start", "Store operation beginning")
	SignalStoreComplete    = capitan.NewSignal("scytale.store.complete", "Store operation finished")
	SignalLoadStart        = capitan.NewSignal("scytale.load.start", "Load operation beginning")
	SignalLoadComplete     = capitan.NewSignal("scytale.load.complete", "Load operation finished")
)

// Keys for typed event data.
var (
	KeyAlgorithm      = capitan.NewStringKey("algorithm")
	KeyKeyFingerprint = capitan.NewStringKey("key_fingerprint")
	KeyContentType    = capitan.NewStringKey("content_type")
	KeyTypeName       = capitan.NewStringKey("type_name")
	KeySize           = capitan.NewIntKey("size")
	KeyDuration       = capitan.NewDurationKey("duration")
	KeyErr            = capitan.NewErrorKey("error")
	KeyEncodedCount   = capitan.NewIntKey("encoded_count")
	KeyDecodedCount   = capitan.NewIntKey("decoded_count")
)

// emitCipherCreated emits an event when New builds or rejects a cipher.
func emitCipherCreated(ctx context.Context, algo Algo, fingerprint string, err error) {
	fields := []capitan.Field{
		KeyAlgorithm.Field(string(algo)),
		KeyKeyFingerprint.Field(fingerprint),
	}
	if err != nil {
		fields = append(fields, KeyErr.Field(err))
		capitan.Error(ctx, SignalCipherCreated, fields...)
		return
	}
	capitan.Emit(ctx, SignalCipherCreated, fields...)
}

// operation selects between the encode and decode signal pairs.
type operation int

const (
	opEncode operation = iota
	opDecode
)

// emitStart emits the start signal for an encode or decode call.
func emitStart(ctx context.Context, op operation, algo Algo, fingerprint string) {
	signal := SignalEncodeStart
	if op == opDecode {
		signal = SignalDecodeStart
	}
	capitan.Emit(ctx, signal,
		KeyAlgorithm.Field(string(algo)),
		KeyKeyFingerprint.Field(fingerprint),
	)
}

// emitComplete emits the completion signal for an encode or decode call.
func emitComplete(ctx context.Context, op operation, algo Algo, fingerprint string, size int, duration time.Duration, err error) {
	signal := SignalEncodeComplete
	if op == opDecode {
		signal = SignalDecodeComplete
	}
	fields := []capitan.Field{
		KeyAlgorithm.Field(string(algo)),
		KeyKeyFingerprint.Field(fingerprint),
		KeySize.Field(size),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, KeyErr.Field(err))
		capitan.Error(ctx, signal, fields...)
		return
	}
	capitan.Emit(ctx, signal, fields...)
}

// emitProcessorCreated emits an event when a processor is created.
func emitProcessorCreated(ctx context.Context, contentType, typeName string) {
	capitan.Emit(ctx, SignalProcessorCreated,
		KeyContentType.Field(contentType),
		KeyTypeName.Field(typeName),
	)
}

// emitStoreStart emits an event when store begins.
func emitStoreStart(ctx context.Context, contentType, typeName string) {
	capitan.Emit(ctx, SignalStoreStart,
		KeyContentType.Field(contentType),
		KeyTypeName.Field(typeName),
	)
}

// emitStoreComplete emits an event when store finishes.
func emitStoreComplete(ctx context.Context, contentType, typeName string, size int, duration time.Duration, encoded int, err error) {
	fields := []capitan.Field{
		KeyContentType.Field(contentType),
		KeyTypeName.Field(typeName),
		KeySize.Field(size),
		KeyDuration.Field(duration),
		KeyEncodedCount.Field(encoded),
	}
	if err != nil {
		fields = append(fields, KeyErr.Field(err))
		capitan.Error(ctx, SignalStoreComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalStoreComplete, fields...)
	}
}

// emitLoadStart emits an event when load begins.
func emitLoadStart(ctx context.Context, contentType, typeName string) {
	capitan.Emit(ctx, SignalLoadStart,
		KeyContentType.Field(contentType),
		KeyTypeName.Field(typeName),
	)
}

// emitLoadComplete emits an event when load finishes.
func emitLoadComplete(ctx context.Context, contentType, typeName string, duration time.Duration, decoded int, err error) {
	fields := []capitan.Field{
		KeyContentType.Field(contentType),
		KeyTypeName.Field(typeName),
		KeyDuration.Field(duration),
		KeyDecodedCount.Field(decoded),
	}
	if err != nil {
		fields = append(fields, KeyErr.Field(err))
		capitan.Error(ctx, SignalLoadComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalLoadComplete, fields...)
	}
}
