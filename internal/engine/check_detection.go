package engine

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// IsSquareAttacked returns true if any piece of byColour attacks sq.
// Every square is scanned; cost is O(64 x per-piece attack generation).
func (p *Position) IsSquareAttacked(sq chess.Square, byColour chess.Colour) bool {
	var buf [32]chess.Square
	for from := chess.Square(0); from < chess.NumSquares; from++ {
		piece := p.board[from]
		if !piece.Is(byColour) {
			continue
		}
		if containsSquare(p.attackTargets(from, piece, buf[:0]), sq) {
			return true
		}
	}
	return false
}

// InCheck returns true if the side to move is in check.
func (p *Position) InCheck() (bool, error) {
	return p.isInCheck(p.turn)
}

// isInCheck returns true if the given colour's king is attacked.
// A missing king is an invariant violation and reported as an error.
func (p *Position) isInCheck(colour chess.Colour) (bool, error) {
	king, ok := p.findKing(colour)
	if !ok {
		return false, fmt.Errorf("%s king: %w", colour, errors.ErrMissingKing)
	}
	return p.IsSquareAttacked(king, colour.Opposite()), nil
}

// CausesSelfCheck reports whether playing m would leave the mover's king
// attacked. The move is tried on a copy; p is not modified.
func (p *Position) CausesSelfCheck(m chess.Move) (bool, error) {
	mover := p.PieceAt(m.From)
	if mover == chess.Empty {
		return false, fmt.Errorf("no piece on %s: %w", m.From, errors.ErrIllegalMove)
	}

	trial := p.Clone()
	trial.play(m, chess.NoKind)
	return trial.isInCheck(mover.Colour())
}
