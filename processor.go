package scytale

import (
	"context"
	"fmt"
	"reflect"
	"sync"
	"time"

	"github.com/zoobzio/sentinel"
)

// Tag names recognised on struct fields.
const (
	tagStoreEncode = "store.encode"
	tagLoadDecode  = "load.decode"
)

func init() {
	// Register compound tags with sentinel
	sentinel.Tag(tagStoreEncode)
	sentinel.Tag(tagLoadDecode)
}

// Processor marshals values through a Codec, encoding tagged string fields on
// the way out and decoding them on the way in.
//
// Processors are safe for concurrent use. SetCipher may be called at any time
// to register or replace the cipher for an algorithm.
//
// Validation occurs automatically on first operation. Register every cipher
// the type's tags name before the first call to Store or Load.
type Processor[T Cloner[T]] struct {
	codec Codec

	// Mutable configuration protected by mu
	mu      sync.RWMutex
	ciphers map[Algo]Cipher

	// Validation state (runs once on first operation)
	validateOnce sync.Once
	validateErr  error

	// Per-context field plans (immutable after construction)
	encodeFields []fieldPlan
	decodeFields []fieldPlan

	typeName string
}

// fieldPlan describes how to reach and transform a single field.
type fieldPlan struct {
	index      []int  // reflect.Value.FieldByIndex access path
	name       string // field name for error messages
	algo       Algo   // cipher named by the tag
	isBytes    bool   // true if field is []byte, false if string
	ptrIndices []int  // positions in index where a pointer is dereferenced
	isSlice    bool   // true if field is []string
	isMap      bool   // true if field is map[K]string
}

// typePlans holds the field plans for one type.
type typePlans struct {
	typeName string
	encode   []fieldPlan
	decode   []fieldPlan
}

var (
	planCache   = make(map[reflect.Type]*typePlans)
	planCacheMu sync.RWMutex
)

// getOrBuildPlans returns cached field plans for T, scanning tags on first use.
func getOrBuildPlans[T Cloner[T]]() (*typePlans, error) {
	typ := reflect.TypeFor[T]()

	planCacheMu.RLock()
	plans, ok := planCache[typ]
	planCacheMu.RUnlock()
	if ok {
		return plans, nil
	}

	plans, err := buildFieldPlans[T]()
	if err != nil {
		return nil, err
	}

	planCacheMu.Lock()
	planCache[typ] = plans
	planCacheMu.Unlock()
	return plans, nil
}

// NewProcessor creates a new Processor for type T.
//
// Ciphers must be registered with SetCipher before Store or Load is used on
// a type whose fields carry encode or decode tags.
func NewProcessor[T Cloner[T]](codec Codec) (*Processor[T], error) {
	plans, err := getOrBuildPlans[T]()
	if err != nil {
		return nil, err
	}

	p := &Processor[T]{
		codec:        codec,
		ciphers:      make(map[Algo]Cipher),
		typeName:     plans.typeName,
		encodeFields: plans.encode,
		decodeFields: plans.decode,
	}

	emitProcessorCreated(context.Background(), codec.ContentType(), plans.typeName)
	return p, nil
}

// SetCipher registers the cipher used for fields tagged with algo.
// Returns the processor for chaining. Safe for concurrent use.
func (p *Processor[T]) SetCipher(algo Algo, c Cipher) *Processor[T] {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.ciphers[algo] = c
	return p
}

// Validate checks that every algorithm named by a tag has a cipher.
//
// Validation also runs automatically on first operation. Calling Validate
// explicitly allows catching configuration errors at startup.
func (p *Processor[T]) Validate() error {
	return p.ensureValidated()
}

// ensureValidated runs validation once and caches the result.
func (p *Processor[T]) ensureValidated() error {
	p.validateOnce.Do(func() {
		p.mu.RLock()
		defer p.mu.RUnlock()
		p.validateErr = p.validateCiphers()
	})
	return p.validateErr
}

// validateCiphers ensures all required ciphers are registered, skipping the
// direction a type handles itself through an override interface.
func (p *Processor[T]) validateCiphers() error {
	var zero T
	_, hasEncodable := any(&zero).(Encodable)
	_, hasDecodable := any(&zero).(Decodable)

	if !hasEncodable {
		for _, plan := range p.encodeFields {
			if _, ok := p.ciphers[plan.algo]; !ok {
				return newConfigError(ErrMissingCipher, string(plan.algo), plan.name)
			}
		}
	}

	if !hasDecodable {
		for _, plan := range p.decodeFields {
			if _, ok := p.ciphers[plan.algo]; !ok {
				return newConfigError(ErrMissingCipher, string(plan.algo), plan.name)
			}
		}
	}

	return nil
}

// buildFieldPlans creates field plans for type T by scanning struct tags.
func buildFieldPlans[T Cloner[T]]() (*typePlans, error) {
	meta := sentinel.Scan[T]()
	plans := &typePlans{typeName: meta.TypeName}

	onPath := map[reflect.Type]bool{reflect.TypeFor[T](): true}
	if err := buildFieldPlansRecursive(plans, meta, nil, nil, "", onPath); err != nil {
		return nil, err
	}
	return plans, nil
}

// buildFieldPlansRecursive recursively processes fields and nested structs.
// onPath holds the struct types between the root and the current one; a
// field that refers back to one of them is skipped.
func buildFieldPlansRecursive(plans *typePlans, meta sentinel.Metadata, parentIndex, ptrIndices []int, namePrefix string, onPath map[reflect.Type]bool) error {
	for _, field := range meta.Fields {
		fullIndex := append(append([]int{}, parentIndex...), field.Index...)
		fullName := field.Name
		if namePrefix != "" {
			fullName = namePrefix + "." + field.Name
		}

		if field.Kind == sentinel.KindStruct {
			if err := buildNestedPlans(plans, field.ReflectType, fullIndex, ptrIndices, fullName, onPath); err != nil {
				return err
			}
			continue
		}

		if field.Kind == sentinel.KindPointer && field.ReflectType.Elem().Kind() == reflect.Struct {
			newPtrIndices := append(append([]int{}, ptrIndices...), len(fullIndex)-1)
			if err := buildNestedPlans(plans, field.ReflectType.Elem(), fullIndex, newPtrIndices, fullName, onPath); err != nil {
				return err
			}
			continue
		}

		rt := field.ReflectType
		isString := rt.Kind() == reflect.String
		isBytes := rt.Kind() == reflect.Slice && rt.Elem().Kind() == reflect.Uint8
		isStringSlice := rt.Kind() == reflect.Slice && rt.Elem().Kind() == reflect.String
		isStringMap := rt.Kind() == reflect.Map && rt.Elem().Kind() == reflect.String

		if !isString && !isBytes && !isStringSlice && !isStringMap {
			continue
		}

		base := fieldPlan{
			index:      fullIndex,
			name:       fullName,
			isBytes:    isBytes,
			ptrIndices: ptrIndices,
			isSlice:    isStringSlice,
			isMap:      isStringMap,
		}

		if val, ok := field.Tags[tagStoreEncode]; ok {
			if !IsValidAlgo(Algo(val)) {
				return &ConfigError{Err: ErrInvalidTag, Field: fullName, Algorithm: val}
			}
			plan := base
			plan.algo = Algo(val)
			plans.encode = append(plans.encode, plan)
		}

		if val, ok := field.Tags[tagLoadDecode]; ok {
			if !IsValidAlgo(Algo(val)) {
				return &ConfigError{Err: ErrInvalidTag, Field: fullName, Algorithm: val}
			}
			plan := base
			plan.algo = Algo(val)
			plans.decode = append(plans.decode, plan)
		}
	}

	return nil
}

// buildNestedPlans descends into a nested struct type unless it is already on
// the recursion path.
func buildNestedPlans(plans *typePlans, rt reflect.Type, index, ptrIndices []int, name string, onPath map[reflect.Type]bool) error {
	if onPath[rt] {
		return nil
	}
	nested := scanNestedType(rt)
	if nested == nil {
		return nil
	}

	onPath[rt] = true
	defer delete(onPath, rt)
	return buildFieldPlansRecursive(plans, *nested, index, ptrIndices, name, onPath)
}

// scanNestedType scans a nested struct type and returns its metadata.
func scanNestedType(rt reflect.Type) *sentinel.Metadata {
	if meta, ok := sentinel.Lookup(rt.String()); ok {
		return &meta
	}

	if rt.Kind() != reflect.Struct {
		return nil
	}

	meta := sentinel.Metadata{
		TypeName:    rt.Name(),
		PackageName: rt.PkgPath(),
		Fields:      make([]sentinel.FieldMetadata, 0, rt.NumField()),
	}

	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if !sf.IsExported() {
			continue
		}

		fm := sentinel.FieldMetadata{
			Name:        sf.Name,
			Type:        sf.Type.String(),
			ReflectType: sf.Type,
			Index:       sf.Index,
			Tags:        parseCipherTags(sf.Tag),
		}

		switch sf.Type.Kind() {
		case reflect.Struct:
			fm.Kind = sentinel.KindStruct
		case reflect.Ptr:
			fm.Kind = sentinel.KindPointer
		case reflect.Slice, reflect.Array:
			fm.Kind = sentinel.KindSlice
		case reflect.Map:
			fm.Kind = sentinel.KindMap
		case reflect.Interface:
			fm.Kind = sentinel.KindInterface
		default:
			fm.Kind = sentinel.KindScalar
		}

		meta.Fields = append(meta.Fields, fm)
	}

	return &meta
}

// parseCipherTags extracts store.encode and load.decode tags from a struct tag.
func parseCipherTags(tag reflect.StructTag) map[string]string {
	tags := make(map[string]string)
	for _, name := range []string{tagStoreEncode, tagLoadDecode} {
		if val, ok := tag.Lookup(name); ok {
			tags[name] = val
		}
	}
	return tags
}

// Store encodes tagged fields on a clone of obj and marshals the result.
// The caller's value is never modified.
func (p *Processor[T]) Store(ctx context.Context, obj *T) ([]byte, error) {
	if err := p.ensureValidated(); err != nil {
		return nil, err
	}

	start := time.Now()
	emitStoreStart(ctx, p.codec.ContentType(), p.typeName)

	var retErr error
	var retData []byte
	defer func() {
		emitStoreComplete(ctx, p.codec.ContentType(), p.typeName,
			len(retData), time.Since(start), len(p.encodeFields), retErr)
	}()

	if obj == nil {
		retData, retErr = p.marshal(nil)
		return retData, retErr
	}

	// Clone to avoid mutating original
	clone := (*obj).Clone()

	p.mu.RLock()
	defer p.mu.RUnlock()

	if e, ok := any(&clone).(Encodable); ok {
		if err := e.Encode(p.ciphers); err != nil {
			retErr = fmt.Errorf("encode: %w", err)
			return nil, retErr
		}
	} else if err := p.apply(&clone, p.encodeFields, opEncode); err != nil {
		retErr = err
		return nil, retErr
	}

	retData, retErr = p.marshal(&clone)
	return retData, retErr
}

// Load unmarshals data and decodes tagged fields.
func (p *Processor[T]) Load(ctx context.Context, data []byte) (*T, error) {
	if err := p.ensureValidated(); err != nil {
		return nil, err
	}

	start := time.Now()
	emitLoadStart(ctx, p.codec.ContentType(), p.typeName)

	var retErr error
	defer func() {
		emitLoadComplete(ctx, p.codec.ContentType(), p.typeName,
			time.Since(start), len(p.decodeFields), retErr)
	}()

	var obj T
	if err := p.codec.Unmarshal(data, &obj); err != nil {
		retErr = newCodecError(ErrUnmarshal, err)
		return nil, retErr
	}

	p.mu.RLock()
	defer p.mu.RUnlock()

	if d, ok := any(&obj).(Decodable); ok {
		if err := d.Decode(p.ciphers); err != nil {
			retErr = fmt.Errorf("decode: %w", err)
			return nil, retErr
		}
		return &obj, nil
	}

	if err := p.apply(&obj, p.decodeFields, opDecode); err != nil {
		retErr = err
		return nil, retErr
	}

	return &obj, nil
}

func (p *Processor[T]) marshal(v any) ([]byte, error) {
	data, err := p.codec.Marshal(v)
	if err != nil {
		return nil, newCodecError(ErrMarshal, err)
	}
	return data, nil
}

// apply runs the cipher for each plan over the fields of obj.
func (p *Processor[T]) apply(obj *T, plans []fieldPlan, op operation) error {
	rv := reflect.ValueOf(obj).Elem()

	sentinelErr, opName := ErrEncode, "encode"
	if op == opDecode {
		sentinelErr, opName = ErrDecode, "decode"
	}

	for _, plan := range plans {
		c := p.ciphers[plan.algo]
		run := c.Encode
		if op == opDecode {
			run = c.Decode
		}

		field, ok := p.getField(rv, plan)
		if !ok {
			continue
		}

		// Handle slice of strings
		if plan.isSlice {
			for i := 0; i < field.Len(); i++ {
				elem := field.Index(i)
				if !elem.CanSet() {
					continue
				}
				out, err := run(elem.String())
				if err != nil {
					return newTransformError(sentinelErr, opName, fmt.Sprintf("%s[%d]", plan.name, i), err)
				}
				elem.SetString(out)
			}
			continue
		}

		// Handle map of strings
		if plan.isMap {
			iter := field.MapRange()
			for iter.Next() {
				k, v := iter.Key(), iter.Value()
				out, err := run(v.String())
				if err != nil {
					return newTransformError(sentinelErr, opName, fmt.Sprintf("%s[%v]", plan.name, k.Interface()), err)
				}
				field.SetMapIndex(k, reflect.ValueOf(out).Convert(field.Type().Elem()))
			}
			continue
		}

		// Handle scalar string or []byte
		if !field.CanSet() {
			continue
		}

		var in string
		if plan.isBytes {
			in = string(field.Bytes())
		} else {
			in = field.String()
		}

		out, err := run(in)
		if err != nil {
			return newTransformError(sentinelErr, opName, plan.name, err)
		}

		if plan.isBytes {
			field.SetBytes([]byte(out))
		} else {
			field.SetString(out)
		}
	}

	return nil
}

// getField navigates a field path, dereferencing pointers as needed.
func (p *Processor[T]) getField(rv reflect.Value, plan fieldPlan) (reflect.Value, bool) {
	if len(plan.ptrIndices) == 0 {
		return rv.FieldByIndex(plan.index), true
	}

	current := rv
	ptrSet := make(map[int]bool, len(plan.ptrIndices))
	for _, idx := range plan.ptrIndices {
		ptrSet[idx] = true
	}

	for i, idx := range plan.index {
		current = current.Field(idx)

		if ptrSet[i] {
			if current.IsNil() {
				return reflect.Value{}, false
			}
			current = current.Elem()
		}
	}

	return current, true
}
