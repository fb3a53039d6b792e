// Package config defines the runtime configuration for the scytale CLI and
// loads it from the environment and recipe files.
package config

import (
	"fmt"
	"strings"

	"github.com/zoobzio/scytale"
)

// Commands understood by the CLI.
const (
	CommandEncode = "encode"
	CommandDecode = "decode"
	CommandList   = "list"
	CommandFreq   = "freq"
	CommandShifts = "shifts"
)

var commands = map[string]bool{
	CommandEncode: true,
	CommandDecode: true,
	CommandList:   true,
	CommandFreq:   true,
	CommandShifts: true,
}

// Config holds every tuneable for a single scytale invocation.
//
// Precedence order (highest wins):
//  1. CLI flags
//  2. SCYTALE_* environment variables
//  3. envDefault values below
type Config struct {
	Command string // first positional argument

	Algorithm string `env:"ALGORITHM" envDefault:"caesar"`
	Key       string `env:"KEY"`
	PromptKey bool   `env:"PROMPT_KEY"`
	Recipe    string `env:"RECIPE"`
	Fold      bool   `env:"FOLD"`
	Top       int    `env:"TOP" envDefault:"5"`
	Verbose   int    `env:"VERBOSE"`
}

// Error represents an invalid configuration value.
type Error struct {
	Field   string // flag name
	Value   string // the invalid value, empty if missing
	Message string // what is wrong
	Hint    string // suggestion for the user (optional)
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("config: --%s", e.Field)
	if e.Value != "" {
		msg += fmt.Sprintf("=%s", e.Value)
	}
	msg += ": " + e.Message
	if e.Hint != "" {
		msg += "\n  hint: " + e.Hint
	}
	return msg
}

// NeedsCipher reports whether the command transforms text.
func (c *Config) NeedsCipher() bool {
	return c.Command == CommandEncode || c.Command == CommandDecode
}

// Validate checks that the configuration is internally consistent.
func (c *Config) Validate() error {
	if c.Command == "" {
		return &Error{Field: "command", Message: "a command is required", Hint: "one of " + commandList()}
	}
	if !commands[c.Command] {
		return &Error{Field: "command", Value: c.Command, Message: "unknown command", Hint: "one of " + commandList()}
	}

	if c.Command == CommandShifts && c.Top < 1 {
		return &Error{Field: "top", Value: fmt.Sprint(c.Top), Message: "must be at least 1"}
	}

	if !c.NeedsCipher() {
		return nil
	}

	if c.Recipe != "" {
		if c.Key != "" || c.PromptKey {
			return &Error{Field: "recipe", Value: c.Recipe, Message: "recipe steps carry their own keys",
				Hint: "drop --key and --prompt-key when using --recipe"}
		}
		return nil
	}

	if !scytale.IsValidAlgo(scytale.Algo(c.Algorithm)) {
		return &Error{Field: "algorithm", Value: c.Algorithm, Message: "unknown algorithm", Hint: "run 'scytale list'"}
	}
	if c.Key == "" && !c.PromptKey {
		return &Error{Field: "key", Message: "a key is required",
			Hint: "pass --key, set " + EnvPrefix + "KEY, or use --prompt-key"}
	}
	if c.Key != "" && c.PromptKey {
		return &Error{Field: "prompt-key", Message: "--key and --prompt-key are mutually exclusive"}
	}
	return nil
}

func commandList() string {
	return strings.Join([]string{CommandEncode, CommandDecode, CommandList, CommandFreq, CommandShifts}, ", ")
}
