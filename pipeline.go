package scytale

import (
	"errors"
	"fmt"
)

// Step names one cipher in a pipeline recipe.
type Step struct {
	Algorithm Algo   `json:"algorithm" yaml:"algorithm"`
	Key       string `json:"key" yaml:"key"`
}

// Pipeline applies a sequence of ciphers. Encode runs them in order and
// Decode runs their decoders in reverse order, so a chain of reversible
// ciphers round-trips like a single one.
type Pipeline struct {
	ciphers []Cipher
}

// Chain returns a pipeline over the given ciphers.
func Chain(ciphers ...Cipher) *Pipeline {
	cs := make([]Cipher, len(ciphers))
	copy(cs, ciphers)
	return &Pipeline{ciphers: cs}
}

// BuildPipeline builds each step with New and chains the results.
func BuildPipeline(steps []Step) (*Pipeline, error) {
	if len(steps) == 0 {
		return nil, errors.New("pipeline has no steps")
	}

	ciphers := make([]Cipher, 0, len(steps))
	for i, s := range steps {
		c, err := New(s.Algorithm, s.Key)
		if err != nil {
			return nil, fmt.Errorf("step %d (%s): %w", i, s.Algorithm, err)
		}
		ciphers = append(ciphers, c)
	}
	return Chain(ciphers...), nil
}

// Len returns the number of ciphers in the pipeline.
func (p *Pipeline) Len() int {
	return len(p.ciphers)
}

// Algorithms returns the algorithm of each stage in encode order.
func (p *Pipeline) Algorithms() []Algo {
	algos := make([]Algo, len(p.ciphers))
	for i, c := range p.ciphers {
		algos[i] = c.Algorithm()
	}
	return algos
}

// Encode runs text through every stage in order.
func (p *Pipeline) Encode(text string) (string, error) {
	var err error
	for i, c := range p.ciphers {
		text, err = c.Encode(text)
		if err != nil {
			return "", fmt.Errorf("%s encode failed at step %d: %w", c.Algorithm(), i, err)
		}
	}
	return text, nil
}

// Decode runs text through every stage's decoder, last stage first.
func (p *Pipeline) Decode(text string) (string, error) {
	var err error
	for i := len(p.ciphers) - 1; i >= 0; i-- {
		c := p.ciphers[i]
		text, err = c.Decode(text)
		if err != nil {
			return "", fmt.Errorf("%s decode failed at step %d: %w", c.Algorithm(), i, err)
		}
	}
	return text, nil
}

// Reverse returns a pipeline whose Encode is p's Decode and whose Decode is
// p's Encode.
func (p *Pipeline) Reverse() *Pipeline {
	cs := make([]Cipher, len(p.ciphers))
	for i, c := range p.ciphers {
		cs[len(p.ciphers)-1-i] = inverted{c}
	}
	return &Pipeline{ciphers: cs}
}

// inverted swaps a cipher's directions.
type inverted struct {
	Cipher
}

func (c inverted) Encode(text string) (string, error) { return c.Cipher.Decode(text) }
func (c inverted) Decode(text string) (string, error) { return c.Cipher.Encode(text) }
