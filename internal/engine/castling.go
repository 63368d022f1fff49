package engine

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/geometry"
)

var castleSides = [...]chess.CastleSide{chess.Kingside, chess.Queenside}

// castlingTargets appends the king destinations of every castling option
// currently available to us.
func (p *Position) castlingTargets(from chess.Square, us chess.Colour, dst []chess.Square) []chess.Square {
	if from != geometry.KingHome(us) {
		return dst
	}
	for _, side := range castleSides {
		if p.canCastle(us, side) {
			dst = append(dst, geometry.ApplyOffset(from, geometry.Castling(side).Target))
		}
	}
	return dst
}

// canCastle checks the right is held, the rook is home, the squares
// between king and rook are empty, the king is not in check and does not
// cross or land on an attacked square.
func (p *Position) canCastle(us chess.Colour, side chess.CastleSide) bool {
	if !p.castling.Has(chess.CastlingRight(us, side)) {
		return false
	}

	home := geometry.KingHome(us)
	castle := geometry.Castling(side)
	if p.board[home] != chess.MakePiece(us, chess.King) {
		return false
	}
	if p.board[geometry.ApplyOffset(home, castle.RookFrom)] != chess.MakePiece(us, chess.Rook) {
		return false
	}
	for _, sq := range castle.EmptySquares(home) {
		if p.board[sq] != chess.Empty {
			return false
		}
	}

	them := us.Opposite()
	if p.IsSquareAttacked(home, them) {
		return false
	}
	for _, sq := range castle.SafeSquares(home) {
		if p.IsSquareAttacked(sq, them) {
			return false
		}
	}
	return true
}

// castleSideOf returns the castling side of a king move, or false if the
// move is an ordinary king step.
func castleSideOf(piece chess.Piece, m chess.Move) (chess.CastleSide, bool) {
	if piece.Kind() != chess.King || m.From != geometry.KingHome(piece.Colour()) {
		return chess.Kingside, false
	}
	step := geometry.Between(m.From, m.To)
	for _, side := range []chess.CastleSide{chess.Kingside, chess.Queenside} {
		if step == geometry.Castling(side).Target {
			return side, true
		}
	}
	return chess.Kingside, false
}

// moveCastlingRook relocates the rook for a castling king move.
func (p *Position) moveCastlingRook(home chess.Square, side chess.CastleSide) {
	castle := geometry.Castling(side)
	rookFrom := geometry.ApplyOffset(home, castle.RookFrom)
	rookTo := geometry.ApplyOffset(home, castle.RookTo)
	p.board[rookTo] = p.board[rookFrom]
	p.board[rookFrom] = chess.Empty
}

// updateCastlingRights revokes rights after a move: a king move loses
// both of its side's rights, and a rook leaving or captured on a home
// corner loses the right tied to that corner.
func (p *Position) updateCastlingRights(moving, captured chess.Piece, m chess.Move) {
	if moving.Kind() == chess.King {
		p.castling = p.castling.Without(chess.ForColour(moving.Colour()))
	}
	if moving.Kind() == chess.Rook {
		p.castling = p.castling.Without(chess.CornerRight(m.From))
	}
	if captured.Kind() == chess.Rook {
		p.castling = p.castling.Without(chess.CornerRight(m.To))
	}
}
