package lsystem

import (
	"fmt"
	"sort"
)

// Symbol is the constraint every alphabet type has to satisfy. Symbols key the
// rule mapping, so they must be comparable; String is their description.
type Symbol interface {
	comparable
	fmt.Stringer
}

// Token is the stock symbol type used by the text and YAML front-ends.
type Token string

func (t Token) String() string {
	return string(t)
}

type SymbolSet[S Symbol] map[S]struct{}

type TokenSet = SymbolSet[Token]

func (ts SymbolSet[S]) Contains(t S) bool {
	_, exists := ts[t]
	return exists
}

func (ts SymbolSet[S]) Add(t S) {
	ts[t] = struct{}{}
}

// AsSlice returns the members ordered by their description.
func (ts SymbolSet[S]) AsSlice() []S {
	slice := make([]S, 0, len(ts))
	for t := range ts {
		slice = append(slice, t)
	}
	sortSymbols(slice)
	return slice
}

func sortSymbols[S Symbol](symbols []S) {
	sort.SliceStable(symbols, func(i, j int) bool {
		return symbols[i].String() < symbols[j].String()
	})
}
