// Package geometry maps board squares and relative offsets to target
// squares. It never reads board contents; all tables are static.
package geometry

import "github.com/lgbarn/chessrules-go/internal/chess"

// Offset is a relative displacement. X counts files toward the h-file,
// Y counts rows toward rank 1 (row 0 is rank 8).
type Offset struct {
	X int
	Y int
}

// Scale returns the offset multiplied by n.
func (o Offset) Scale(n int) Offset {
	return Offset{X: o.X * n, Y: o.Y * n}
}

// ApplyOffset returns the square reached from sq by off. The result is
// only meaningful when InBounds(sq, off) holds.
func ApplyOffset(sq chess.Square, off Offset) chess.Square {
	return chess.NewSquare(sq.File()+off.X, sq.Row()+off.Y)
}

// InBounds reports whether sq displaced by off stays on the board.
func InBounds(sq chess.Square, off Offset) bool {
	x := sq.File() + off.X
	y := sq.Row() + off.Y
	return x >= 0 && x < chess.BoardSize && y >= 0 && y < chess.BoardSize
}

// Target combines InBounds and ApplyOffset.
func Target(sq chess.Square, off Offset) (chess.Square, bool) {
	if !InBounds(sq, off) {
		return chess.NoSquare, false
	}
	return ApplyOffset(sq, off), true
}

// Between returns the offset from one square to another.
func Between(from, to chess.Square) Offset {
	return Offset{X: to.File() - from.File(), Y: to.Row() - from.Row()}
}
