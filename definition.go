package lsystem

import (
	"errors"
	"fmt"
	"io"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// ErrInvalidDefinition is returned for definitions missing required fields.
var ErrInvalidDefinition = errors.New("invalid definition")

// Definition is the textual form of a Token grammar. A rule with a nil
// successor is the identity rule.
type Definition struct {
	Name  string            `json:"name" yaml:"name" mapstructure:"name"`
	Axiom string            `json:"axiom" yaml:"axiom" mapstructure:"axiom"`
	Rules map[Token]*string `json:"rules" yaml:"rules" mapstructure:"rules"`
}

// ReadDefinition decodes a YAML (or JSON) document into a Definition.
func ReadDefinition(r io.Reader) (Definition, error) {
	var raw map[string]any
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return Definition{}, fmt.Errorf("%w: empty document", ErrInvalidDefinition)
		}
		return Definition{}, fmt.Errorf("failed to parse definition: %w", err)
	}
	return DecodeDefinition(raw)
}

// DecodeDefinition decodes an already parsed document, e.g. a section of a
// larger configuration file.
func DecodeDefinition(raw map[string]any) (Definition, error) {
	var def Definition
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &def,
		TagName:          "mapstructure",
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return Definition{}, err
	}
	if err := decoder.Decode(raw); err != nil {
		return Definition{}, fmt.Errorf("%w: %v", ErrInvalidDefinition, err)
	}
	return def, def.Validate()
}

func (d Definition) Validate() error {
	if d.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidDefinition)
	}
	if len(d.Rules) == 0 {
		return fmt.Errorf("%w: %q has no rules", ErrInvalidDefinition, d.Name)
	}
	return nil
}

// Grammar parses the rules and the axiom and validates them.
func (d Definition) Grammar() (*Grammar[Token], error) {
	_, _, rules := ParseRules(d.Rules)
	g, err := NewGrammar(rules, ParseState(d.Axiom))
	if err != nil {
		return nil, fmt.Errorf("definition %q: %w", d.Name, err)
	}
	return g, nil
}

func (d Definition) System() (*System[Token], error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	g, err := d.Grammar()
	if err != nil {
		return nil, err
	}
	return NewSystem(d.Name, g), nil
}

// Sierpinski is the Sierpiński triangle grammar. F and G draw forward,
// L and R turn by 120 degrees.
func Sierpinski() Definition {
	f := "F R G L F L G R F"
	g := "G G"
	return Definition{
		Name:  "Sierpiński triangle",
		Axiom: "F R G R G",
		Rules: map[Token]*string{
			"F": &f,
			"G": &g,
			"L": nil,
			"R": nil,
		},
	}
}
