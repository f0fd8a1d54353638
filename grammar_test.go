package lsystem

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type plant uint8

const (
	forward plant = iota
	left
	right
	branch
)

func (p plant) String() string {
	switch p {
	case forward:
		return "F"
	case left:
		return "-"
	case right:
		return "+"
	case branch:
		return "X"
	}
	return "?"
}

func TestNewGrammar(t *testing.T) {
	tests := []struct {
		name    string
		rules   map[Token]ProductionRule[Token]
		axiom   []Token
		wantErr error
	}{
		{
			name: "valid",
			rules: map[Token]ProductionRule[Token]{
				"A": Produce[Token]("A", "B"),
				"B": Identity[Token](),
			},
			axiom: []Token{"A"},
		},
		{
			name: "empty axiom",
			rules: map[Token]ProductionRule[Token]{
				"A": Identity[Token](),
			},
			axiom: nil,
		},
		{
			name:  "empty grammar",
			rules: map[Token]ProductionRule[Token]{},
		},
		{
			name: "empty production",
			rules: map[Token]ProductionRule[Token]{
				"A": Produce[Token](),
			},
			axiom: []Token{"A", "A"},
		},
		{
			name: "unknown symbol in rules",
			rules: map[Token]ProductionRule[Token]{
				"A": Produce[Token]("A", "C"),
			},
			axiom:   []Token{"A"},
			wantErr: ErrUnknownSymbolInProductionRules,
		},
		{
			name: "unknown symbol in axiom",
			rules: map[Token]ProductionRule[Token]{
				"A": Identity[Token](),
			},
			axiom:   []Token{"A", "Z"},
			wantErr: ErrUnknownSymbolInAxiom,
		},
		{
			name: "rules checked before axiom",
			rules: map[Token]ProductionRule[Token]{
				"A": Produce[Token]("C"),
			},
			axiom:   []Token{"Z"},
			wantErr: ErrUnknownSymbolInProductionRules,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := NewGrammar(tt.rules, tt.axiom)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, g)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.rules, g.Rules())
			assert.Equal(t, tt.axiom, nilIfEmpty(g.Axiom()))
		})
	}
}

func nilIfEmpty(tokens []Token) []Token {
	if len(tokens) == 0 {
		return nil
	}
	return tokens
}

func TestUnknownSymbolErrorDetail(t *testing.T) {
	_, err := NewGrammar(map[Token]ProductionRule[Token]{
		"A": Produce[Token]("A", "Q"),
	}, []Token{"A"})

	var symErr *UnknownSymbolError[Token]
	require.True(t, errors.As(err, &symErr))
	assert.Equal(t, Token("Q"), symErr.Symbol)
	assert.Equal(t, Token("A"), symErr.Owner)
	assert.True(t, symErr.HasOwner)
	assert.Contains(t, err.Error(), `"Q"`)
	assert.Contains(t, err.Error(), `rule for "A"`)

	_, err = NewGrammar(map[Token]ProductionRule[Token]{"A": Identity[Token]()}, []Token{"W"})
	require.True(t, errors.As(err, &symErr))
	assert.Equal(t, Token("W"), symErr.Symbol)
	assert.False(t, symErr.HasOwner)
	assert.Equal(t, `unknown symbol found in axiom: "W"`, err.Error())
}

func TestGrammarIsFrozen(t *testing.T) {
	rules := map[Token]ProductionRule[Token]{
		"A": Produce[Token]("A", "B"),
		"B": Identity[Token](),
	}
	axiom := []Token{"A", "B"}

	g, err := NewGrammar(rules, axiom)
	require.NoError(t, err)

	rules["C"] = Produce[Token]("Missing")
	delete(rules, "B")
	axiom[0] = "Missing"

	assert.Len(t, g.Rules(), 2)
	assert.Equal(t, []Token{"A", "B"}, g.Axiom())

	got := g.Axiom()
	got[1] = "Missing"
	assert.Equal(t, []Token{"A", "B"}, g.Axiom())
}

func TestGrammarPartitions(t *testing.T) {
	g, err := NewGrammar(map[plant]ProductionRule[plant]{
		forward: Produce(forward, forward),
		branch:  Produce(forward, left, branch, right, branch),
		left:    Identity[plant](),
		right:   Identity[plant](),
	}, []plant{branch})
	require.NoError(t, err)

	assert.Equal(t, []plant{right, left, forward, branch}, g.Symbols())
	assert.Equal(t, []plant{right, left}, g.Constants().AsSlice())
	assert.Equal(t, []plant{forward, branch}, g.Variables().AsSlice())

	rule, ok := g.Rule(branch)
	require.True(t, ok)
	assert.True(t, rule.Equal(Produce(forward, left, branch, right, branch)))

	_, ok = g.Rule(plant(42))
	assert.False(t, ok)
}

func TestProductionRuleApply(t *testing.T) {
	assert.Equal(t, []Token{"S"}, Identity[Token]().Apply("S"))
	assert.Equal(t, []Token{"A", "B", "A"}, Produce[Token]("A", "B", "A").Apply("S"))
	assert.Empty(t, Produce[Token]().Apply("S"))

	successor := []Token{"A", "B"}
	rule := Produce(successor...)
	successor[0] = "Z"
	assert.Equal(t, []Token{"A", "B"}, rule.Apply("S"))

	out := rule.Apply("S")
	out[0] = "Z"
	assert.Equal(t, []Token{"A", "B"}, rule.Apply("S"))

	var zero ProductionRule[Token]
	assert.True(t, zero.IsIdentity())
	assert.True(t, zero.Equal(Identity[Token]()))
	assert.False(t, Produce[Token]("S").Equal(Identity[Token]()))

	_, ok := Identity[Token]().Successor()
	assert.False(t, ok)

	assert.Equal(t, "identity", Identity[Token]().String())
	assert.Equal(t, "produce(A B)", rule.String())
	assert.Equal(t, "AB", rule.Expansion("S"))
	assert.Equal(t, "S", Identity[Token]().Expansion("S"))
}
