package lsystem

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ErrInvalidRecursionsCount is returned when a negative depth is requested.
var ErrInvalidRecursionsCount = errors.New("recursions count must be non-negative")

// Iteration is the rewritten sequence at one recursion depth.
type Iteration[S Symbol] struct {
	symbols []S
}

// Symbols returns a copy of the sequence.
func (it Iteration[S]) Symbols() []S {
	return slices.Clone(it.symbols)
}

func (it Iteration[S]) Len() int {
	return len(it.symbols)
}

func (it Iteration[S]) At(i int) S {
	return it.symbols[i]
}

func (it Iteration[S]) Equal(other Iteration[S]) bool {
	return slices.Equal(it.symbols, other.symbols)
}

// applyRules rewrites every symbol in order. The output length is counted
// first so the new sequence is allocated exactly once.
func (it Iteration[S]) applyRules(rules map[S]ProductionRule[S]) Iteration[S] {
	size := 0
	for _, s := range it.symbols {
		size += lookup(rules, s).len()
	}

	output := make([]S, 0, size)
	for _, s := range it.symbols {
		output = lookup(rules, s).appendTo(output, s)
	}
	return Iteration[S]{symbols: output}
}

// lookup panics on a miss: a validated grammar is closed under its rules.
func lookup[S Symbol](rules map[S]ProductionRule[S], s S) ProductionRule[S] {
	rule, ok := rules[s]
	if !ok {
		panic(fmt.Sprintf("lsystem: no production rule for symbol %q", s.String()))
	}
	return rule
}

// Fractal is the history of rewrites starting at the axiom. Values are
// immutable; NextRecursion returns a new Fractal.
type Fractal[S Symbol] struct {
	rules      map[S]ProductionRule[S]
	iterations []Iteration[S]
}

func newFractal[S Symbol](axiom []S, rules map[S]ProductionRule[S]) Fractal[S] {
	return Fractal[S]{
		rules:      rules,
		iterations: []Iteration[S]{{symbols: axiom}},
	}
}

// NextRecursion applies the rules once to the current iteration.
func (f Fractal[S]) NextRecursion() Fractal[S] {
	next := f.Current().applyRules(f.rules)

	iterations := make([]Iteration[S], len(f.iterations), len(f.iterations)+1)
	copy(iterations, f.iterations)
	return Fractal[S]{
		rules:      f.rules,
		iterations: append(iterations, next),
	}
}

// Current returns the last iteration.
func (f Fractal[S]) Current() Iteration[S] {
	return f.iterations[len(f.iterations)-1]
}

// Result returns the symbols of the current iteration.
func (f Fractal[S]) Result() []S {
	return f.Current().Symbols()
}

// Depth is the number of rewrites applied to the axiom.
func (f Fractal[S]) Depth() int {
	return len(f.iterations) - 1
}

// Iterations returns the full history, axiom first.
func (f Fractal[S]) Iterations() []Iteration[S] {
	return slices.Clone(f.iterations)
}

func (f Fractal[S]) Iteration(depth int) (Iteration[S], bool) {
	if depth < 0 || depth >= len(f.iterations) {
		return Iteration[S]{}, false
	}
	return f.iterations[depth], true
}

func (f Fractal[S]) String() string {
	var sb strings.Builder
	sb.WriteString("\nAxiom:\n\t")
	sb.WriteString(joinSymbols(f.iterations[0].symbols, ", "))
	sb.WriteString("\n")
	for i, it := range f.iterations[1:] {
		if i > 0 {
			sb.WriteString("\n")
		}
		fmt.Fprintf(&sb, "Recursion %d:\n\t%s", i, joinSymbols(it.symbols, ", "))
	}
	return sb.String()
}

// System is a named grammar together with the fractal rooted at its axiom.
type System[S Symbol] struct {
	name    string
	grammar *Grammar[S]
	fractal Fractal[S]
}

func NewSystem[S Symbol](name string, grammar *Grammar[S]) *System[S] {
	return &System[S]{
		name:    name,
		grammar: grammar,
		fractal: newFractal(grammar.axiom, grammar.rules),
	}
}

func (s *System[S]) Name() string {
	return s.name
}

func (s *System[S]) Grammar() *Grammar[S] {
	return s.grammar
}

// Base returns the fractal holding only the axiom.
func (s *System[S]) Base() Fractal[S] {
	return s.fractal
}

// Fractal returns the fractal after count rewrites of the axiom.
func (s *System[S]) Fractal(count int) (Fractal[S], error) {
	if count < 0 {
		return Fractal[S]{}, fmt.Errorf("%w: got %d", ErrInvalidRecursionsCount, count)
	}
	f := s.fractal
	for i := 0; i < count; i++ {
		f = f.NextRecursion()
	}
	return f, nil
}

func (s *System[S]) String() string {
	var constants, variables []S
	for _, sym := range s.grammar.Symbols() {
		if s.grammar.rules[sym].IsIdentity() {
			constants = append(constants, sym)
		} else {
			variables = append(variables, sym)
		}
	}

	rules := make([]string, 0, len(variables))
	for _, sym := range variables {
		rules = append(rules, "("+sym.String()+" -> "+s.grammar.rules[sym].Expansion(sym)+")")
	}

	return strings.Join([]string{
		"\n\"" + s.name + "\"",
		"\tConstants: " + joinSymbols(constants, ", "),
		"\tVariables: " + joinSymbols(variables, ", "),
		"\tAxiom: " + joinSymbols(s.grammar.axiom, ", "),
		"\tRules: " + strings.Join(rules, ", "),
	}, "\n")
}

func joinSymbols[S Symbol](symbols []S, sep string) string {
	var sb strings.Builder
	for i, s := range symbols {
		if i > 0 {
			sb.WriteString(sep)
		}
		sb.WriteString(s.String())
	}
	return sb.String()
}
