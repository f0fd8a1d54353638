package main

import (
	"fmt"
	"os"

	lsystem "github.com/viktordanov/go-lsystem"
)

// loadDefinition reads the definition at path, or returns the built-in
// Sierpiński grammar when no path is given.
func loadDefinition(args []string) (lsystem.Definition, error) {
	if len(args) == 0 {
		logger.Debug("no definition given, using built-in grammar")
		return lsystem.Sierpinski(), nil
	}

	f, err := os.Open(args[0])
	if err != nil {
		return lsystem.Definition{}, err
	}
	defer f.Close()

	def, err := lsystem.ReadDefinition(f)
	if err != nil {
		return lsystem.Definition{}, fmt.Errorf("%s: %w", args[0], err)
	}
	logger.Debug("loaded definition", "path", args[0], "name", def.Name, "rules", len(def.Rules))
	return def, nil
}

func loadSystem(args []string) (*lsystem.System[lsystem.Token], error) {
	def, err := loadDefinition(args)
	if err != nil {
		return nil, err
	}
	return def.System()
}
