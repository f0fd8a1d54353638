package lsystem

import (
	"slices"
	"strings"
)

type ruleKind uint8

const (
	identityRule ruleKind = iota
	produceRule
)

// ProductionRule rewrites a single symbol. The zero value is the identity rule.
type ProductionRule[S Symbol] struct {
	kind      ruleKind
	successor []S
}

// Identity returns the rule that rewrites a symbol to itself.
func Identity[S Symbol]() ProductionRule[S] {
	return ProductionRule[S]{kind: identityRule}
}

// Produce returns the rule that rewrites a symbol to successor. The
// successor may be empty and may reference the rewritten symbol.
func Produce[S Symbol](successor ...S) ProductionRule[S] {
	return ProductionRule[S]{
		kind:      produceRule,
		successor: slices.Clone(successor),
	}
}

func (r ProductionRule[S]) IsIdentity() bool {
	return r.kind == identityRule
}

// Successor returns the produced sequence and false for identity rules.
func (r ProductionRule[S]) Successor() ([]S, bool) {
	if r.kind == identityRule {
		return nil, false
	}
	return slices.Clone(r.successor), true
}

// Apply returns the replacement of symbol under r.
func (r ProductionRule[S]) Apply(symbol S) []S {
	if r.kind == identityRule {
		return []S{symbol}
	}
	return slices.Clone(r.successor)
}

func (r ProductionRule[S]) Equal(other ProductionRule[S]) bool {
	if r.kind != other.kind {
		return false
	}
	return slices.Equal(r.successor, other.successor)
}

func (r ProductionRule[S]) len() int {
	if r.kind == identityRule {
		return 1
	}
	return len(r.successor)
}

func (r ProductionRule[S]) appendTo(dst []S, symbol S) []S {
	if r.kind == identityRule {
		return append(dst, symbol)
	}
	return append(dst, r.successor...)
}

// Expansion renders what r produces for symbol, descriptions concatenated.
func (r ProductionRule[S]) Expansion(symbol S) string {
	var sb strings.Builder
	if r.kind == identityRule {
		sb.WriteString(symbol.String())
		return sb.String()
	}
	for _, s := range r.successor {
		sb.WriteString(s.String())
	}
	return sb.String()
}

func (r ProductionRule[S]) String() string {
	if r.kind == identityRule {
		return "identity"
	}
	var sb strings.Builder
	sb.WriteString("produce(")
	for i, s := range r.successor {
		if i > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(s.String())
	}
	sb.WriteString(")")
	return sb.String()
}
