package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/zoobzio/scytale"
)

const layered = `name: layered
steps:
  - algorithm: vigenere
    key: LEMON
  - algorithm: rail
    key: "3"
`

func TestParseRecipe(t *testing.T) {
	r, err := ParseRecipe([]byte(layered))
	if err != nil {
		t.Fatalf("ParseRecipe() error: %v", err)
	}
	if r.Name != "layered" {
		t.Errorf("Name = %q, want %q", r.Name, "layered")
	}
	if len(r.Steps) != 2 {
		t.Fatalf("Steps = %d, want 2", len(r.Steps))
	}
	if r.Steps[0].Algorithm != scytale.AlgoVigenere || r.Steps[0].Key != "LEMON" {
		t.Errorf("Steps[0] = %+v", r.Steps[0])
	}
	if r.Steps[1].Algorithm != scytale.AlgoRail || r.Steps[1].Key != "3" {
		t.Errorf("Steps[1] = %+v", r.Steps[1])
	}
}

func TestParseRecipe_Errors(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantSub string
	}{
		{"invalid yaml", "steps: [unterminated", "parse yaml"},
		{"no steps", "name: empty\n", "no steps defined"},
		{"unknown algorithm", "steps:\n  - algorithm: enigma\n    key: x\n", "step 0 names an unknown algorithm"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseRecipe([]byte(tt.data))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantSub) {
				t.Errorf("error %q should contain %q", err.Error(), tt.wantSub)
			}
		})
	}
}

func TestParseRecipe_ConfigError(t *testing.T) {
	_, err := ParseRecipe([]byte("name: empty\n"))

	var ce *Error
	if !errors.As(err, &ce) || ce.Field != "recipe" {
		t.Errorf("error should be *Error for field recipe, got %v", err)
	}
}

func TestLoadRecipe(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layered.yaml")
	if err := os.WriteFile(path, []byte(layered), 0o600); err != nil {
		t.Fatalf("WriteFile error: %v", err)
	}

	r, err := LoadRecipe(path)
	if err != nil {
		t.Fatalf("LoadRecipe() error: %v", err)
	}

	p, err := scytale.BuildPipeline(r.Steps)
	if err != nil {
		t.Fatalf("BuildPipeline() error: %v", err)
	}
	if p.Len() != 2 {
		t.Errorf("Len() = %d, want 2", p.Len())
	}
}

func TestLoadRecipe_Missing(t *testing.T) {
	_, err := LoadRecipe(filepath.Join(t.TempDir(), "absent.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("LoadRecipe() error = %v, want os.ErrNotExist", err)
	}
}
