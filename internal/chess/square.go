package chess

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Square is a board index 0-63, row-major from a8 (0) to h1 (63).
type Square int

// NoSquare denotes the absence of a square, e.g. no en passant target.
const NoSquare Square = 64

// Corner squares used for castling rights bookkeeping.
const (
	A8 Square = 0
	E8 Square = 4
	H8 Square = 7
	A1 Square = 56
	E1 Square = 60
	H1 Square = 63
)

// NewSquare builds a square from a file (0-7, a-h) and a row (0-7, rank 8
// to rank 1).
func NewSquare(file, row int) Square {
	return Square(file + BoardSize*row)
}

// Valid reports whether the square lies on the board.
func (s Square) Valid() bool {
	return s >= 0 && s < NumSquares
}

// File returns the file index, 0 for the a-file.
func (s Square) File() int {
	return int(s) % BoardSize
}

// Row returns the row index, 0 for rank 8.
func (s Square) Row() int {
	return (int(s) / BoardSize) % BoardSize
}

// Rank returns the chess rank number 1-8.
func (s Square) Rank() int {
	return BoardSize - s.Row()
}

// String returns the algebraic name of the square, or "-" for NoSquare.
func (s Square) String() string {
	if !s.Valid() {
		return "-"
	}
	return string([]byte{byte(FileBase + s.File()), byte(RankBase + s.Rank() - 1)})
}

// ParseSquare converts algebraic notation such as "e4" to a square.
func ParseSquare(text string) (Square, error) {
	if len(text) != 2 {
		return NoSquare, fmt.Errorf("%q: %w", text, errors.ErrInvalidSquare)
	}
	file, rank := text[0], text[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return NoSquare, fmt.Errorf("%q: %w", text, errors.ErrInvalidSquare)
	}
	return NewSquare(int(file-FileBase), BoardSize-int(rank-RankBase)-1), nil
}

// MustParseSquare is like ParseSquare but panics on malformed input.
// Intended for constants and tests.
func MustParseSquare(text string) Square {
	sq, err := ParseSquare(text)
	if err != nil {
		panic(err)
	}
	return sq
}
