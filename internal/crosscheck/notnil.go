package crosscheck

import (
	"fmt"

	nchess "github.com/notnil/chess"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Notnil wraps github.com/notnil/chess.
type Notnil struct{}

// Name implements Oracle.
func (Notnil) Name() string { return "notnil" }

// Divide implements Oracle.
func (Notnil) Divide(fen string, depth int) (map[string]uint64, error) {
	opt, err := nchess.FEN(fen)
	if err != nil {
		return nil, fmt.Errorf("notnil: %v: %w", err, errors.ErrInvalidFEN)
	}
	pos := nchess.NewGame(opt).Position()

	result := make(map[string]uint64)
	if depth <= 0 {
		return result, nil
	}
	for _, m := range pos.ValidMoves() {
		result[m.String()] = notnilPerft(pos.Update(m), depth-1)
	}
	return result, nil
}

func notnilPerft(pos *nchess.Position, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	moves := pos.ValidMoves()
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		nodes += notnilPerft(pos.Update(m), depth-1)
	}
	return nodes
}
