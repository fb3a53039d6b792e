package integration

import (
	"bytes"
	"context"
	"reflect"
	"testing"

	"github.com/zoobzio/scytale"
	"github.com/zoobzio/scytale/bson"
	"github.com/zoobzio/scytale/json"
	"github.com/zoobzio/scytale/msgpack"
	scytaletest "github.com/zoobzio/scytale/testing"
	"github.com/zoobzio/scytale/xml"
	"github.com/zoobzio/scytale/yaml"
)

func TestProcessor_StoreLoad_JSON(t *testing.T) {
	testStoreLoad(t, json.New())
}

func TestProcessor_StoreLoad_XML(t *testing.T) {
	testStoreLoad(t, xml.New())
}

func TestProcessor_StoreLoad_YAML(t *testing.T) {
	testStoreLoad(t, yaml.New())
}

func TestProcessor_StoreLoad_MessagePack(t *testing.T) {
	testStoreLoad(t, msgpack.New())
}

func TestProcessor_StoreLoad_BSON(t *testing.T) {
	testStoreLoad(t, bson.New())
}

func testStoreLoad(t *testing.T, c scytale.Codec) {
	t.Helper()

	proc := scytaletest.TestProcessor[scytaletest.Dispatch](t, c)

	original := &scytaletest.Dispatch{
		ID:       "42",
		From:     "Headquarters",
		Body:     "Attack at dawn",
		Lines:    []string{"Hold the ridge", "Await signal"},
		Codeword: "Eagle",
	}

	data, err := proc.Store(context.Background(), original)
	if err != nil {
		t.Fatalf("Store error: %v", err)
	}

	// Stored bytes carry ciphertext, never the plain body
	if bytes.Contains(data, []byte(original.Body)) {
		t.Errorf("stored data contains plaintext body: %s", data)
	}
	if !bytes.Contains(data, []byte("Lxfopv ef rnhr")) {
		t.Errorf("stored data missing enciphered body: %s", data)
	}
	if !bytes.Contains(data, []byte(original.From)) {
		t.Errorf("stored data should keep untagged field: %s", data)
	}

	// Original is untouched
	if original.Body != "Attack at dawn" {
		t.Errorf("Store modified original Body: %q", original.Body)
	}

	restored, err := proc.Load(context.Background(), data)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if !reflect.DeepEqual(*restored, *original) {
		t.Errorf("Load() = %+v, want %+v", *restored, *original)
	}
}

func TestProcessor_StoreLoad_NestedAndMap(t *testing.T) {
	proc := scytaletest.TestProcessor[scytaletest.Ledger](t, json.New())

	original := &scytaletest.Ledger{
		Owner:   "quartermaster",
		Entries: map[string]string{"rations": "Low", "powder": "Dry"},
		Seal:    &scytaletest.Seal{Mark: "WEAREDISCOVERED"},
	}

	data, err := proc.Store(context.Background(), original)
	if err != nil {
		t.Fatalf("Store error: %v", err)
	}
	if !bytes.Contains(data, []byte(`"Orz"`)) {
		t.Errorf("map value not shifted: %s", data)
	}
	if !bytes.Contains(data, []byte(`"WECRERDSOEEAIVD"`)) {
		t.Errorf("nested field not transposed: %s", data)
	}

	restored, err := proc.Load(context.Background(), data)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if !reflect.DeepEqual(*restored, *original) {
		t.Errorf("Load() = %+v, want %+v", *restored, *original)
	}
}

func TestProcessor_StoreLoad_NilNested(t *testing.T) {
	proc := scytaletest.TestProcessor[scytaletest.Ledger](t, yaml.New())

	original := &scytaletest.Ledger{Owner: "clerk"}
	data, err := proc.Store(context.Background(), original)
	if err != nil {
		t.Fatalf("Store error: %v", err)
	}

	restored, err := proc.Load(context.Background(), data)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if restored.Owner != "clerk" || restored.Seal != nil {
		t.Errorf("Load() = %+v", *restored)
	}
}

func TestUse_SharesProcessor(t *testing.T) {
	scytale.Reset()
	defer scytale.Reset()

	first, err := scytale.Use[scytaletest.Dispatch](msgpack.New())
	if err != nil {
		t.Fatalf("Use error: %v", err)
	}
	first.SetCipher(scytale.AlgoVigenere, scytaletest.TestCipher(t, scytale.AlgoVigenere)).
		SetCipher(scytale.AlgoCaesar, scytaletest.TestCipher(t, scytale.AlgoCaesar)).
		SetCipher(scytale.AlgoMono, scytaletest.TestCipher(t, scytale.AlgoMono))

	second, err := scytale.Use[scytaletest.Dispatch](msgpack.New())
	if err != nil {
		t.Fatalf("Use error: %v", err)
	}
	if first != second {
		t.Fatal("Use() should return the cached processor")
	}

	data, err := first.Store(context.Background(), &scytaletest.Dispatch{Body: "retreat"})
	if err != nil {
		t.Fatalf("Store error: %v", err)
	}
	restored, err := second.Load(context.Background(), data)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if restored.Body != "retreat" {
		t.Errorf("Body = %q, want %q", restored.Body, "retreat")
	}
}

func TestPipeline_RecipeAcrossCiphers(t *testing.T) {
	steps := []scytale.Step{
		{Algorithm: scytale.AlgoVigenere, Key: scytaletest.VigenereKey},
		{Algorithm: scytale.AlgoRail, Key: scytaletest.RailKey},
		{Algorithm: scytale.AlgoCaesar, Key: scytaletest.CaesarKey},
	}
	p, err := scytale.BuildPipeline(steps)
	if err != nil {
		t.Fatalf("BuildPipeline error: %v", err)
	}

	encoded, err := p.Encode("WEAREDISCOVERED")
	if err != nil {
		t.Fatalf("Encode error: %v", err)
	}
	decoded, err := p.Decode(encoded)
	if err != nil {
		t.Fatalf("Decode error: %v", err)
	}
	if decoded != "WEAREDISCOVERED" {
		t.Errorf("round-trip = %q, want %q", decoded, "WEAREDISCOVERED")
	}

	back, err := p.Reverse().Encode(encoded)
	if err != nil {
		t.Fatalf("Reverse().Encode error: %v", err)
	}
	if back != decoded {
		t.Errorf("Reverse().Encode = %q, want %q", back, decoded)
	}
}
