package crosscheck

import (
	"fmt"

	"github.com/dylhunn/dragontoothmg"

	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Dragontooth wraps github.com/dylhunn/dragontoothmg.
type Dragontooth struct{}

// Name implements Oracle.
func (Dragontooth) Name() string { return "dragontooth" }

// Divide implements Oracle. dragontoothmg panics on malformed FEN, so the
// string is decoded by the engine first.
func (Dragontooth) Divide(fen string, depth int) (result map[string]uint64, err error) {
	if _, err := engine.NewPositionFromFEN(fen); err != nil {
		return nil, fmt.Errorf("dragontooth: %w", err)
	}
	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = fmt.Errorf("dragontooth: %v: %w", r, errors.ErrInvalidFEN)
		}
	}()

	result = make(map[string]uint64)
	if depth <= 0 {
		return result, nil
	}
	b := dragontoothmg.ParseFen(fen)
	for _, m := range b.GenerateLegalMoves() {
		undo := b.Apply(m)
		result[m.String()] = dragontoothPerft(&b, depth-1)
		undo()
	}
	return result, nil
}

func dragontoothPerft(b *dragontoothmg.Board, depth int) uint64 {
	if depth == 0 {
		return 1
	}
	moves := b.GenerateLegalMoves()
	if depth == 1 {
		return uint64(len(moves))
	}
	var nodes uint64
	for _, m := range moves {
		undo := b.Apply(m)
		nodes += dragontoothPerft(b, depth-1)
		undo()
	}
	return nodes
}
