package lsystem

import (
	"errors"
	"fmt"
	"maps"
	"slices"
)

var (
	// ErrUnknownSymbolInProductionRules is returned when a produced sequence
	// references a symbol that has no rule of its own.
	ErrUnknownSymbolInProductionRules = errors.New("unknown symbol found in production rules")

	// ErrUnknownSymbolInAxiom is returned when the axiom contains a symbol
	// that has no rule.
	ErrUnknownSymbolInAxiom = errors.New("unknown symbol found in axiom")
)

// UnknownSymbolError names the symbol that failed grammar validation.
// Owner is the rule key whose successor referenced Symbol; it is unset for
// axiom failures.
type UnknownSymbolError[S Symbol] struct {
	Kind     error
	Symbol   S
	Owner    S
	HasOwner bool
}

func (e *UnknownSymbolError[S]) Error() string {
	if e.HasOwner {
		return fmt.Sprintf("%s: %q (in rule for %q)", e.Kind, e.Symbol.String(), e.Owner.String())
	}
	return fmt.Sprintf("%s: %q", e.Kind, e.Symbol.String())
}

func (e *UnknownSymbolError[S]) Unwrap() error {
	return e.Kind
}

// Grammar is a validated, closed rule set plus the axiom it starts from.
// Every symbol referenced by a rule or by the axiom has a rule of its own.
type Grammar[S Symbol] struct {
	rules map[S]ProductionRule[S]
	axiom []S
}

// NewGrammar validates rules and axiom and returns the frozen grammar.
// Production rules are checked before the axiom.
func NewGrammar[S Symbol](rules map[S]ProductionRule[S], axiom []S) (*Grammar[S], error) {
	if err := validateRules(rules); err != nil {
		return nil, err
	}
	for _, s := range axiom {
		if _, ok := rules[s]; !ok {
			return nil, &UnknownSymbolError[S]{Kind: ErrUnknownSymbolInAxiom, Symbol: s}
		}
	}

	return &Grammar[S]{
		rules: maps.Clone(rules),
		axiom: slices.Clone(axiom),
	}, nil
}

// validateRules walks the keys in description order so the reported symbol
// does not depend on map iteration.
func validateRules[S Symbol](rules map[S]ProductionRule[S]) error {
	keys := slices.Collect(maps.Keys(rules))
	sortSymbols(keys)
	for _, key := range keys {
		rule := rules[key]
		if rule.IsIdentity() {
			continue
		}
		for _, s := range rule.successor {
			if _, ok := rules[s]; !ok {
				return &UnknownSymbolError[S]{
					Kind:     ErrUnknownSymbolInProductionRules,
					Symbol:   s,
					Owner:    key,
					HasOwner: true,
				}
			}
		}
	}
	return nil
}

// Rules returns a copy of the rule mapping.
func (g *Grammar[S]) Rules() map[S]ProductionRule[S] {
	return maps.Clone(g.rules)
}

// Axiom returns a copy of the axiom.
func (g *Grammar[S]) Axiom() []S {
	return slices.Clone(g.axiom)
}

func (g *Grammar[S]) Rule(symbol S) (ProductionRule[S], bool) {
	rule, ok := g.rules[symbol]
	return rule, ok
}

// Symbols returns the alphabet ordered by description.
func (g *Grammar[S]) Symbols() []S {
	symbols := slices.Collect(maps.Keys(g.rules))
	sortSymbols(symbols)
	return symbols
}

// Constants returns the symbols whose rule is identity.
func (g *Grammar[S]) Constants() SymbolSet[S] {
	consts := make(SymbolSet[S])
	for s, rule := range g.rules {
		if rule.IsIdentity() {
			consts.Add(s)
		}
	}
	return consts
}

// Variables returns the symbols whose rule produces an explicit sequence.
func (g *Grammar[S]) Variables() SymbolSet[S] {
	vars := make(SymbolSet[S])
	for s, rule := range g.rules {
		if !rule.IsIdentity() {
			vars.Add(s)
		}
	}
	return vars
}
