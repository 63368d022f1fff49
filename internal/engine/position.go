// Package engine provides chess move generation, legality checking and
// position state transitions.
package engine

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
)

// FiftyMoveLimit is the halfmove clock value at which the game is drawn.
const FiftyMoveLimit = 100

// Position is the complete state of a game at one point in time.
// The board array is owned by the Position and only changes through
// ApplyMove.
type Position struct {
	board    [chess.NumSquares]chess.Piece
	turn     chess.Colour
	castling chess.CastlingRights
	epTarget chess.Square
	halfmove int
	fullmove int
	state    chess.GameState
}

// NewPosition creates a position from its parts. The board is taken by
// value, so the caller keeps no reference into the new position.
// The game state is evaluated from the parts; a board without both kings
// starts in progress and its king-dependent queries return ErrMissingKing.
func NewPosition(board [chess.NumSquares]chess.Piece, turn chess.Colour, castling chess.CastlingRights,
	epTarget chess.Square, halfmove, fullmove int) *Position {
	if !epTarget.Valid() {
		epTarget = chess.NoSquare
	}
	p := &Position{
		board:    board,
		turn:     turn,
		castling: castling,
		epTarget: epTarget,
		halfmove: halfmove,
		fullmove: fullmove,
		state:    chess.InProgress,
	}
	if state, err := p.Status(); err == nil {
		p.state = state
	}
	return p
}

// NewInitialPosition creates a position with the standard starting setup.
func NewInitialPosition() *Position {
	var board [chess.NumSquares]chess.Piece
	backRank := []chess.Kind{chess.Rook, chess.Knight, chess.Bishop, chess.Queen, chess.King, chess.Bishop, chess.Knight, chess.Rook}
	for file := 0; file < chess.BoardSize; file++ {
		board[chess.NewSquare(file, 0)] = chess.B(backRank[file])
		board[chess.NewSquare(file, 1)] = chess.B(chess.Pawn)
		board[chess.NewSquare(file, 6)] = chess.W(chess.Pawn)
		board[chess.NewSquare(file, 7)] = chess.W(backRank[file])
	}
	return NewPosition(board, chess.White, chess.AllCastling, chess.NoSquare, 0, 1)
}

// Clone returns an independent copy of the position.
func (p *Position) Clone() *Position {
	c := *p
	return &c
}

// Board returns a copy of the 64 squares.
func (p *Position) Board() [chess.NumSquares]chess.Piece {
	return p.board
}

// PieceAt returns the piece on a square, Empty for off-board squares.
func (p *Position) PieceAt(sq chess.Square) chess.Piece {
	if !sq.Valid() {
		return chess.Empty
	}
	return p.board[sq]
}

// Turn returns the side to move.
func (p *Position) Turn() chess.Colour {
	return p.turn
}

// CastlingRights returns the remaining castling rights.
func (p *Position) CastlingRights() chess.CastlingRights {
	return p.castling
}

// EnPassantTarget returns the square skipped by the last double pawn push,
// or chess.NoSquare.
func (p *Position) EnPassantTarget() chess.Square {
	return p.epTarget
}

// HalfmoveClock returns the number of half-moves since the last capture or
// pawn move.
func (p *Position) HalfmoveClock() int {
	return p.halfmove
}

// FullmoveNumber returns the move number, incremented after Black moves.
func (p *Position) FullmoveNumber() int {
	return p.fullmove
}

// State returns the game state recorded by the last ApplyMove.
func (p *Position) State() chess.GameState {
	return p.state
}

// FiftyMoveDrawAvailable reports whether the halfmove clock has reached the
// fifty-move threshold.
func (p *Position) FiftyMoveDrawAvailable() bool {
	return p.halfmove >= FiftyMoveLimit
}

// findKing returns the square of the given colour's king.
func (p *Position) findKing(colour chess.Colour) (chess.Square, bool) {
	king := chess.MakePiece(colour, chess.King)
	for sq := chess.Square(0); sq < chess.NumSquares; sq++ {
		if p.board[sq] == king {
			return sq, true
		}
	}
	return chess.NoSquare, false
}
