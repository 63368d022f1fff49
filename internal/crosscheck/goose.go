package crosscheck

import (
	"fmt"

	"github.com/Oliverans/GooseEngineMG/goosemg"
)

// Goose wraps the goosemg move generator.
type Goose struct{}

// Name implements Oracle.
func (Goose) Name() string { return "goose" }

// Divide implements Oracle.
func (Goose) Divide(fen string, depth int) (map[string]uint64, error) {
	b, err := goosemg.ParseFEN(fen)
	if err != nil {
		return nil, fmt.Errorf("goose: %w", err)
	}
	result := make(map[string]uint64)
	for m, n := range goosemg.PerftDivide(b, depth) {
		result[m.String()] = n
	}
	return result, nil
}
