package engine

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/geometry"
)

// Threatmap returns the pseudo-legal destinations of the piece on sq:
// every square it may move to under the movement rules, without regard
// to the safety of its own king. It returns nil for an empty square or a
// piece that does not belong to the side to move.
func (p *Position) Threatmap(sq chess.Square) []chess.Square {
	piece := p.PieceAt(sq)
	if !piece.Is(p.turn) {
		return nil
	}
	return p.pseudoMoves(sq, piece, nil)
}

// pseudoMoves appends the pseudo-legal destinations of piece on from.
func (p *Position) pseudoMoves(from chess.Square, piece chess.Piece, dst []chess.Square) []chess.Square {
	us := piece.Colour()
	switch piece.Kind() {
	case chess.King:
		steps := geometry.KingSteps()
		dst = p.stepTargets(from, us, steps[:], dst)
		return p.castlingTargets(from, us, dst)
	case chess.Queen:
		rays := geometry.QueenRays()
		return p.slideTargets(from, us, rays[:], dst)
	case chess.Rook:
		rays := geometry.RookRays()
		return p.slideTargets(from, us, rays[:], dst)
	case chess.Bishop:
		rays := geometry.BishopRays()
		return p.slideTargets(from, us, rays[:], dst)
	case chess.Knight:
		jumps := geometry.KnightJumps()
		return p.stepTargets(from, us, jumps[:], dst)
	case chess.Pawn:
		return p.pawnTargets(from, us, dst)
	default:
		return dst
	}
}

// stepTargets handles single-step pieces: each offset is kept when it
// stays on the board and does not land on a friendly piece.
func (p *Position) stepTargets(from chess.Square, us chess.Colour, offsets []geometry.Offset, dst []chess.Square) []chess.Square {
	for _, off := range offsets {
		to, ok := geometry.Target(from, off)
		if !ok || p.board[to].Is(us) {
			continue
		}
		dst = append(dst, to)
	}
	return dst
}

// slideTargets walks each ray outward. A friendly piece ends the ray
// before its square, an enemy piece ends it on its square.
func (p *Position) slideTargets(from chess.Square, us chess.Colour, rays []geometry.Ray, dst []chess.Square) []chess.Square {
	for _, r := range rays {
		for _, off := range r {
			to, ok := geometry.Target(from, off)
			if !ok {
				break
			}
			target := p.board[to]
			if target.Is(us) {
				break
			}
			dst = append(dst, to)
			if target != chess.Empty {
				break
			}
		}
	}
	return dst
}

// attackTargets appends the squares attacked by the piece on from. This
// differs from pseudoMoves: pawns attack diagonally whether or not the
// square is occupied and never attack by pushing, castling never attacks,
// and squares holding friendly pieces are included (they are defended).
func (p *Position) attackTargets(from chess.Square, piece chess.Piece, dst []chess.Square) []chess.Square {
	switch piece.Kind() {
	case chess.King:
		steps := geometry.KingSteps()
		return appendInBounds(from, steps[:], dst)
	case chess.Knight:
		jumps := geometry.KnightJumps()
		return appendInBounds(from, jumps[:], dst)
	case chess.Pawn:
		captures := geometry.Pawn(piece.Colour()).Captures
		return appendInBounds(from, captures[:], dst)
	case chess.Queen:
		rays := geometry.QueenRays()
		return p.attackRays(from, rays[:], dst)
	case chess.Rook:
		rays := geometry.RookRays()
		return p.attackRays(from, rays[:], dst)
	case chess.Bishop:
		rays := geometry.BishopRays()
		return p.attackRays(from, rays[:], dst)
	default:
		return dst
	}
}

func appendInBounds(from chess.Square, offsets []geometry.Offset, dst []chess.Square) []chess.Square {
	for _, off := range offsets {
		if to, ok := geometry.Target(from, off); ok {
			dst = append(dst, to)
		}
	}
	return dst
}

func (p *Position) attackRays(from chess.Square, rays []geometry.Ray, dst []chess.Square) []chess.Square {
	for _, r := range rays {
		for _, off := range r {
			to, ok := geometry.Target(from, off)
			if !ok {
				break
			}
			dst = append(dst, to)
			if p.board[to] != chess.Empty {
				break
			}
		}
	}
	return dst
}

// containsSquare reports whether sq is in squares.
func containsSquare(squares []chess.Square, sq chess.Square) bool {
	for _, s := range squares {
		if s == sq {
			return true
		}
	}
	return false
}
