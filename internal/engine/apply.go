package engine

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// ApplyMove plays a legal move for the side to move. promotion selects the
// piece a pawn reaching the far rank becomes; chess.NoKind means queen.
// On error the position is left unchanged.
func (p *Position) ApplyMove(m chess.Move, promotion chess.Kind) error {
	if p.state != chess.InProgress {
		return &errors.MoveError{Err: errors.ErrGameOver, MoveText: m.String()}
	}
	if !chess.ValidPromotion(promotion) {
		return &errors.MoveError{Err: errors.ErrInvalidPromotion, MoveText: m.UCI(promotion)}
	}

	legal, err := p.IsLegal(m)
	if err != nil {
		return err
	}
	if !legal {
		return &errors.MoveError{Err: errors.ErrIllegalMove, MoveText: m.String()}
	}
	if promotion != chess.NoKind && !isPromotion(p.board[m.From], m.To) {
		return &errors.MoveError{Err: errors.ErrInvalidPromotion, MoveText: m.UCI(promotion)}
	}

	next := p.Clone()
	next.play(m, promotion)
	state, err := next.Status()
	if err != nil {
		return errors.Wrapf(err, "after %s", m)
	}
	next.state = state

	*p = *next
	return nil
}

// play performs the state transition for m without any legality checks.
func (p *Position) play(m chess.Move, promotion chess.Kind) {
	us := p.turn
	moving := p.board[m.From]
	captured := p.board[m.To]
	enPassant := p.isEnPassantCapture(m)

	p.epTarget = chess.NoSquare
	if isDoublePush(moving, m) {
		p.epTarget = skippedSquare(m)
	}

	if moving.Kind() == chess.Pawn || captured != chess.Empty {
		p.halfmove = 0
	} else {
		p.halfmove++
	}

	if us == chess.Black {
		p.fullmove++
	}

	p.updateCastlingRights(moving, captured, m)

	placed := moving
	if isPromotion(moving, m.To) {
		if promotion == chess.NoKind {
			promotion = chess.Queen
		}
		placed = chess.MakePiece(moving.Colour(), promotion)
	}

	if side, ok := castleSideOf(moving, m); ok {
		p.moveCastlingRook(m.From, side)
	}
	if enPassant {
		p.board[chess.NewSquare(m.To.File(), m.From.Row())] = chess.Empty
	}

	p.board[m.To] = placed
	p.board[m.From] = chess.Empty
	p.turn = us.Opposite()
}
