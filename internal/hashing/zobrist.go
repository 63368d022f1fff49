// Package hashing provides Zobrist position keys and a perft cache keyed
// by them.
package hashing

import (
	"math/rand"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
)

// pieceCodes bounds the Piece encoding (kind<<3 | colour).
const pieceCodes = 1 << (chess.PieceShift + 3)

var (
	zobristPiece     [pieceCodes][chess.NumSquares]uint64
	zobristCastle    [16]uint64
	zobristEnPassant [chess.BoardSize]uint64
	zobristSide      uint64 // White to move
)

func init() {
	// Fixed seed so keys are stable between runs
	rnd := rand.New(rand.NewSource(0xC0DE))

	for p := range zobristPiece {
		for sq := range zobristPiece[p] {
			zobristPiece[p][sq] = rnd.Uint64()
		}
	}
	for i := range zobristCastle {
		zobristCastle[i] = rnd.Uint64()
	}
	for f := range zobristEnPassant {
		zobristEnPassant[f] = rnd.Uint64()
	}
	zobristSide = rnd.Uint64()
}

// ZobristKey hashes everything that determines the legal moves of p:
// placement, side to move, castling rights and en passant file. The
// clocks are not included.
func ZobristKey(p *engine.Position) uint64 {
	var key uint64

	board := p.Board()
	for sq, piece := range board {
		if piece != chess.Empty {
			key ^= zobristPiece[piece][sq]
		}
	}
	if p.Turn() == chess.White {
		key ^= zobristSide
	}
	key ^= zobristCastle[p.CastlingRights()&0xF]
	if ep := p.EnPassantTarget(); ep != chess.NoSquare {
		key ^= zobristEnPassant[ep.File()]
	}
	return key
}
