package config

import (
	"fmt"
	"runtime"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// MaxPerftDepth bounds the perft depth accepted on the command line.
const MaxPerftDepth = 10

// PerftConfig holds settings for move-tree counting.
type PerftConfig struct {
	// Depth is the number of plies to count
	Depth int

	// Workers is the number of goroutines splitting the root moves
	Workers int

	// Divide reports the count below each root move
	Divide bool

	// Oracles names the reference move generators to compare against
	Oracles []string

	// HashEntries sizes the shared subtree cache (0 = no cache, -1 = unlimited)
	HashEntries int
}

// NewPerftConfig creates a PerftConfig with default values.
func NewPerftConfig() *PerftConfig {
	return &PerftConfig{
		Depth:   1,
		Workers: runtime.NumCPU(),
	}
}

// Validate checks that the perft configuration is valid.
func (p *PerftConfig) Validate() error {
	if p.Depth < 1 || p.Depth > MaxPerftDepth {
		return fmt.Errorf("perft depth %d outside 1..%d: %w", p.Depth, MaxPerftDepth, errors.ErrInvalidConfig)
	}
	if p.HashEntries < -1 {
		return fmt.Errorf("hash entries %d below -1: %w", p.HashEntries, errors.ErrInvalidConfig)
	}
	if p.Workers < 1 {
		return fmt.Errorf("worker count %d below 1: %w", p.Workers, errors.ErrInvalidConfig)
	}
	return nil
}
