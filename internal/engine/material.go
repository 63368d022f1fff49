package engine

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
)

// pieceValues are conventional material values; the king counts zero.
var pieceValues = map[chess.Kind]int{
	chess.Pawn:   1,
	chess.Knight: 3,
	chess.Bishop: 3,
	chess.Rook:   5,
	chess.Queen:  9,
	chess.King:   0,
}

// standardMaterial is the piece count of each side at the start of a game.
var standardMaterial = map[chess.Kind]int{
	chess.Pawn:   8,
	chess.Knight: 2,
	chess.Bishop: 2,
	chess.Rook:   2,
	chess.Queen:  1,
	chess.King:   1,
}

// MaterialBalance returns White's material minus Black's.
func (p *Position) MaterialBalance() int {
	balance := 0
	for _, piece := range p.board {
		if piece == chess.Empty {
			continue
		}
		if piece.Colour() == chess.White {
			balance += pieceValues[piece.Kind()]
		} else {
			balance -= pieceValues[piece.Kind()]
		}
	}
	return balance
}

// CapturedPieces returns the pieces of the given colour missing from the
// board compared with the starting material, most valuable first.
// Promoted pieces offset missing pawns only as far as counts allow; a
// count never goes below zero.
func (p *Position) CapturedPieces(colour chess.Colour) []chess.Piece {
	counts := make(map[chess.Kind]int, len(standardMaterial))
	for _, piece := range p.board {
		if piece.Is(colour) {
			counts[piece.Kind()]++
		}
	}

	var captured []chess.Piece
	for _, kind := range []chess.Kind{chess.Queen, chess.Rook, chess.Bishop, chess.Knight, chess.Pawn} {
		for n := standardMaterial[kind] - counts[kind]; n > 0; n-- {
			captured = append(captured, chess.MakePiece(colour, kind))
		}
	}
	return captured
}

// HasInsufficientMaterial returns true if neither side has mating material.
// Insufficient material includes:
// - K vs K
// - K+B vs K
// - K+N vs K
// - K+B vs K+B (same colour bishops)
func (p *Position) HasInsufficientMaterial() bool {
	var whitePieces, blackPieces []chess.Kind
	var whiteBishopOnLight, blackBishopOnLight bool

	for sq := chess.Square(0); sq < chess.NumSquares; sq++ {
		piece := p.board[sq]
		if piece == chess.Empty || piece.Kind() == chess.King {
			continue
		}

		kind := piece.Kind()
		// Any pawn, rook, or queen means sufficient material
		if kind == chess.Pawn || kind == chess.Rook || kind == chess.Queen {
			return false
		}

		if piece.Colour() == chess.White {
			whitePieces = append(whitePieces, kind)
			if kind == chess.Bishop {
				whiteBishopOnLight = isLightSquare(sq)
			}
		} else {
			blackPieces = append(blackPieces, kind)
			if kind == chess.Bishop {
				blackBishopOnLight = isLightSquare(sq)
			}
		}
	}

	switch {
	case len(whitePieces) == 0 && len(blackPieces) == 0:
		return true
	case len(whitePieces) == 0 && len(blackPieces) == 1:
		return blackPieces[0] == chess.Bishop || blackPieces[0] == chess.Knight
	case len(blackPieces) == 0 && len(whitePieces) == 1:
		return whitePieces[0] == chess.Bishop || whitePieces[0] == chess.Knight
	case len(whitePieces) == 1 && len(blackPieces) == 1:
		return whitePieces[0] == chess.Bishop && blackPieces[0] == chess.Bishop &&
			whiteBishopOnLight == blackBishopOnLight
	}
	return false
}

// isLightSquare returns true if the given square is a light square.
// a8 is light.
func isLightSquare(sq chess.Square) bool {
	return (sq.File()+sq.Row())%2 == 0
}
