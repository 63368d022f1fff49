package engine

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/geometry"
)

// pawnTargets appends the pseudo-legal destinations of a pawn.
func (p *Position) pawnTargets(from chess.Square, us chess.Colour, dst []chess.Square) []chess.Square {
	offsets := geometry.Pawn(us)

	// Pushes
	if single, ok := geometry.Target(from, offsets.Single); ok && p.board[single] == chess.Empty {
		dst = append(dst, single)
		if from.Row() == offsets.StartRow {
			if double, ok := geometry.Target(from, offsets.Double); ok && p.board[double] == chess.Empty {
				dst = append(dst, double)
			}
		}
	}

	// Captures
	for _, off := range offsets.Captures {
		to, ok := geometry.Target(from, off)
		if !ok {
			continue
		}
		target := p.board[to]
		if target != chess.Empty && !target.Is(us) {
			dst = append(dst, to)
		}
	}

	// En passant; an occupied target was already handled as a capture
	if p.epTarget != chess.NoSquare && p.board[p.epTarget] == chess.Empty {
		for _, off := range offsets.EnPassant {
			if to, ok := geometry.Target(from, off); ok && to == p.epTarget {
				dst = append(dst, to)
			}
		}
	}
	return dst
}

// isPromotion reports whether moving piece to the square promotes it.
func isPromotion(piece chess.Piece, to chess.Square) bool {
	if piece.Kind() != chess.Pawn {
		return false
	}
	return to.Row() == geometry.Pawn(piece.Colour()).PromotionRow
}

// isEnPassantCapture reports whether the move is a pawn capturing onto the
// en passant target.
func (p *Position) isEnPassantCapture(m chess.Move) bool {
	return p.epTarget != chess.NoSquare &&
		m.To == p.epTarget &&
		p.board[m.From].Kind() == chess.Pawn &&
		p.board[m.To] == chess.Empty &&
		m.From.File() != m.To.File()
}

// isDoublePush reports whether the move is a two-square pawn advance.
func isDoublePush(piece chess.Piece, m chess.Move) bool {
	if piece.Kind() != chess.Pawn {
		return false
	}
	d := m.To.Row() - m.From.Row()
	return d == 2 || d == -2
}

// skippedSquare returns the square a double push passes over.
func skippedSquare(m chess.Move) chess.Square {
	return chess.NewSquare(m.From.File(), (m.From.Row()+m.To.Row())/2)
}
