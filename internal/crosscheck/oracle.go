// Package crosscheck compares the engine's move-tree counts with
// independent move generators.
package crosscheck

import (
	"fmt"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Oracle is a reference move generator.
type Oracle interface {
	// Name identifies the oracle on the command line and in reports.
	Name() string

	// Divide returns the perft count below each legal root move of the
	// position, keyed by the move in coordinate notation ("e7e8q").
	Divide(fen string, depth int) (map[string]uint64, error)
}

var registry = map[string]Oracle{
	Dragontooth{}.Name(): Dragontooth{},
	Goose{}.Name():       Goose{},
	Notnil{}.Name():      Notnil{},
}

// Names returns the names of all known oracles, sorted.
func Names() []string {
	names := maps.Keys(registry)
	slices.Sort(names)
	return names
}

// Lookup returns the oracle with the given name.
func Lookup(name string) (Oracle, error) {
	o, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown oracle %q (known: %v): %w", name, Names(), errors.ErrInvalidConfig)
	}
	return o, nil
}

// LookupAll resolves a list of names. "all" selects every oracle.
func LookupAll(names []string) ([]Oracle, error) {
	if len(names) == 1 && names[0] == "all" {
		names = Names()
	}
	oracles := make([]Oracle, 0, len(names))
	for _, name := range names {
		o, err := Lookup(name)
		if err != nil {
			return nil, err
		}
		oracles = append(oracles, o)
	}
	return oracles, nil
}
