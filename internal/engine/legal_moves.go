package engine

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
)

// LegalMoves returns the destinations of the piece on sq that do not leave
// its own king in check. It returns nil for an empty square or a piece of
// the side not to move.
func (p *Position) LegalMoves(sq chess.Square) ([]chess.Square, error) {
	threats := p.Threatmap(sq)
	if len(threats) == 0 {
		return nil, nil
	}

	legal := threats[:0]
	for _, to := range threats {
		selfCheck, err := p.CausesSelfCheck(chess.NewMove(sq, to))
		if err != nil {
			return nil, err
		}
		if !selfCheck {
			legal = append(legal, to)
		}
	}
	return legal, nil
}

// IsLegal reports whether m is a legal move for the side to move.
func (p *Position) IsLegal(m chess.Move) (bool, error) {
	legal, err := p.LegalMoves(m.From)
	if err != nil {
		return false, err
	}
	return containsSquare(legal, m.To), nil
}

// AllLegalMoves returns every legal move of the side to move, ordered by
// origin square.
func (p *Position) AllLegalMoves() ([]chess.Move, error) {
	var moves []chess.Move
	for from := chess.Square(0); from < chess.NumSquares; from++ {
		if !p.board[from].Is(p.turn) {
			continue
		}
		targets, err := p.LegalMoves(from)
		if err != nil {
			return nil, err
		}
		for _, to := range targets {
			moves = append(moves, chess.NewMove(from, to))
		}
	}
	return moves, nil
}

// HasLegalMoves returns true if the side to move has at least one legal
// move. It stops at the first one found.
func (p *Position) HasLegalMoves() (bool, error) {
	for from := chess.Square(0); from < chess.NumSquares; from++ {
		if !p.board[from].Is(p.turn) {
			continue
		}
		targets, err := p.LegalMoves(from)
		if err != nil {
			return false, err
		}
		if len(targets) > 0 {
			return true, nil
		}
	}
	return false, nil
}

// MoveChoice is a legal move together with a promotion piece. Promotion is
// chess.NoKind unless the move brings a pawn to the far rank.
type MoveChoice struct {
	Move      chess.Move
	Promotion chess.Kind
}

// String returns the choice in coordinate notation, e.g. "e7e8q".
func (c MoveChoice) String() string {
	return c.Move.UCI(c.Promotion)
}

// LegalMoveChoices expands AllLegalMoves so that every promotion is listed
// once per promotion piece.
func (p *Position) LegalMoveChoices() ([]MoveChoice, error) {
	moves, err := p.AllLegalMoves()
	if err != nil {
		return nil, err
	}
	choices := make([]MoveChoice, 0, len(moves))
	for _, m := range moves {
		if !isPromotion(p.board[m.From], m.To) {
			choices = append(choices, MoveChoice{Move: m})
			continue
		}
		for _, kind := range chess.PromotionKinds {
			choices = append(choices, MoveChoice{Move: m, Promotion: kind})
		}
	}
	return choices, nil
}
