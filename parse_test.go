package lsystem

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseState(t *testing.T) {
	assert.Equal(t, []Token{"F", "R", "G"}, ParseState("  F R\n G "))
	assert.Empty(t, ParseState(""))
}

func TestParseRules(t *testing.T) {
	grow := "A B_ x"
	erase := ""
	vars, consts, rules := ParseRules(map[Token]*string{
		"A": &grow,
		"E": &erase,
		"c": nil,
	})

	// B_ and x have no rule of their own; they are classified by case
	assert.Equal(t, []Token{"A", "B_", "E"}, vars.AsSlice())
	assert.Equal(t, []Token{"c", "x"}, consts.AsSlice())

	assert.True(t, rules["A"].Equal(Produce[Token]("A", "B_", "x")))
	assert.True(t, rules["E"].Equal(Produce[Token]()))
	assert.True(t, rules["c"].IsIdentity())
}

func BenchmarkParseRules(b *testing.B) {
	def := Sierpinski()
	for i := 0; i < b.N; i++ {
		ParseRules(def.Rules)
	}
}
