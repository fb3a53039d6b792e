package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/zoobzio/scytale"
)

// Recipe is a named, ordered list of cipher steps stored as YAML:
//
//	name: layered
//	steps:
//	  - algorithm: vigenere
//	    key: LEMON
//	  - algorithm: rail
//	    key: "3"
type Recipe struct {
	Name  string         `yaml:"name"`
	Steps []scytale.Step `yaml:"steps"`
}

// LoadRecipe reads and validates a recipe file.
func LoadRecipe(path string) (*Recipe, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read recipe: %w", err)
	}
	r, err := ParseRecipe(data)
	if err != nil {
		return nil, fmt.Errorf("recipe %s: %w", path, err)
	}
	return r, nil
}

// ParseRecipe decodes recipe YAML and checks every step names a known
// algorithm. Keys are checked later, when the pipeline is built.
func ParseRecipe(data []byte) (*Recipe, error) {
	var r Recipe
	if err := yaml.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	if len(r.Steps) == 0 {
		return nil, &Error{Field: "recipe", Message: "no steps defined"}
	}
	for i, s := range r.Steps {
		if !scytale.IsValidAlgo(s.Algorithm) {
			return nil, &Error{Field: "recipe", Value: string(s.Algorithm),
				Message: fmt.Sprintf("step %d names an unknown algorithm", i), Hint: "run 'scytale list'"}
		}
	}
	return &r, nil
}
