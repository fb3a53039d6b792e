package config

import (
	"strings"
	"testing"
)

func TestValidate_Valid(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"encode with key", Config{Command: CommandEncode, Algorithm: "caesar", Key: "3"}},
		{"decode with prompt", Config{Command: CommandDecode, Algorithm: "vigenere", PromptKey: true}},
		{"encode with recipe", Config{Command: CommandEncode, Recipe: "layers.yaml"}},
		{"list", Config{Command: CommandList}},
		{"freq ignores algorithm", Config{Command: CommandFreq, Algorithm: "enigma"}},
		{"shifts", Config{Command: CommandShifts, Top: 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.cfg.Validate(); err != nil {
				t.Errorf("Validate() error: %v", err)
			}
		})
	}
}

// TestValidate_ErrorMessages verifies that Validate returns actionable
// error messages.
func TestValidate_ErrorMessages(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantSub string
	}{
		{"missing command", Config{}, "a command is required"},
		{"unknown command", Config{Command: "crack"}, "--command=crack: unknown command"},
		{"unknown algorithm", Config{Command: CommandEncode, Algorithm: "enigma", Key: "x"}, "--algorithm=enigma"},
		{"missing key has hint", Config{Command: CommandEncode, Algorithm: "caesar"}, "hint: pass --key"},
		{"key and prompt", Config{Command: CommandEncode, Algorithm: "caesar", Key: "3", PromptKey: true}, "mutually exclusive"},
		{"recipe with key", Config{Command: CommandDecode, Recipe: "r.yaml", Key: "3"}, "recipe steps carry their own keys"},
		{"zero top", Config{Command: CommandShifts}, "--top=0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantSub) {
				t.Errorf("error %q should contain %q", err.Error(), tt.wantSub)
			}
		})
	}
}

func TestError_Message(t *testing.T) {
	err := &Error{Field: "key", Message: "a key is required", Hint: "pass --key"}
	want := "config: --key: a key is required\n  hint: pass --key"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	bare := &Error{Field: "algorithm", Value: "enigma", Message: "unknown algorithm"}
	if got := bare.Error(); got != "config: --algorithm=enigma: unknown algorithm" {
		t.Errorf("Error() = %q", got)
	}
}

func TestNeedsCipher(t *testing.T) {
	for cmd, want := range map[string]bool{
		CommandEncode: true,
		CommandDecode: true,
		CommandList:   false,
		CommandFreq:   false,
		CommandShifts: false,
	} {
		c := Config{Command: cmd}
		if got := c.NeedsCipher(); got != want {
			t.Errorf("NeedsCipher(%s) = %v, want %v", cmd, got, want)
		}
	}
}
