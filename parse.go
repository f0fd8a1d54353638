package lsystem

import (
	"strings"
)

// ParseRule reads a whitespace separated successor. An empty string
// produces the empty sequence.
func ParseRule(str string) ProductionRule[Token] {
	return Produce(ParseState(str)...)
}

// ParseRules builds the rule mapping from its textual form. A nil entry is
// the identity rule. Symbols only seen inside successors are reported as
// variables or constants as well, so callers can spot missing rules before
// building a grammar.
func ParseRules(rulesMap map[Token]*string) (TokenSet, TokenSet, map[Token]ProductionRule[Token]) {
	vars := make(TokenSet)
	consts := make(TokenSet)
	parsedRules := make(map[Token]ProductionRule[Token], len(rulesMap))

	for key, value := range rulesMap {
		if value == nil {
			consts.Add(key)
			parsedRules[key] = Identity[Token]()
			continue
		}

		vars.Add(key)
		rule := ParseRule(*value)
		parsedRules[key] = rule

		successor, _ := rule.Successor()
		for _, token := range successor {
			if _, known := rulesMap[token]; known {
				continue
			}
			if isCapitalized(token) {
				vars.Add(token)
			} else {
				consts.Add(token)
			}
		}
	}

	return vars, consts, parsedRules
}

func ParseState(state string) []Token {
	return symbolsToTokens(strings.Fields(state))
}

func symbolsToTokens(symbols []string) []Token {
	tokens := make([]Token, 0, len(symbols))
	for _, symbol := range symbols {
		tokens = append(tokens, Token(symbol))
	}
	return tokens
}

func isCapitalized(t Token) bool {
	if len(t) == 0 {
		return false
	}
	firstLetter := string(t)[0]
	return firstLetter >= 'A' && firstLetter <= 'Z'
}
