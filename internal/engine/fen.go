package engine

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/geometry"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// FEN field names, used in decode errors.
const (
	FieldBoard     = "board"
	FieldTurn      = "turn"
	FieldCastling  = "castling"
	FieldEnPassant = "en-passant"
	FieldHalfmove  = "halfmove"
	FieldFullmove  = "fullmove"
)

// NewPositionFromFEN creates a position from a FEN string. The board,
// turn, castling and en passant fields are required; missing clocks
// default to "0 1". Decoding is all-or-nothing.
func NewPositionFromFEN(fen string) (*Position, error) {
	parts := strings.Fields(fen)
	if len(parts) < 4 || len(parts) > 6 {
		return nil, &errors.FENError{
			Err: errors.ErrInvalidFEN,
			Msg: fmt.Sprintf("expected 4 to 6 fields, got %d", len(parts)),
		}
	}

	board, err := parsePiecePositions(parts[0])
	if err != nil {
		return nil, err
	}
	turn, err := parseSideToMove(parts[1])
	if err != nil {
		return nil, err
	}
	castling, err := parseCastlingRights(parts[2])
	if err != nil {
		return nil, err
	}
	epTarget, err := parseEnPassant(parts[3], turn, &board)
	if err != nil {
		return nil, err
	}

	halfmove, fullmove := 0, 1
	if len(parts) >= 5 {
		if halfmove, err = parseClock(FieldHalfmove, parts[4]); err != nil {
			return nil, err
		}
	}
	if len(parts) == 6 {
		if fullmove, err = parseClock(FieldFullmove, parts[5]); err != nil {
			return nil, err
		}
	}

	return NewPosition(board, turn, castling, epTarget, halfmove, fullmove), nil
}

// MustPositionFromFEN is like NewPositionFromFEN but panics on error.
// Intended for constants and tests.
func MustPositionFromFEN(fen string) *Position {
	p, err := NewPositionFromFEN(fen)
	if err != nil {
		panic(err)
	}
	return p
}

func fenError(field, value, format string, args ...interface{}) error {
	return &errors.FENError{
		Err:   errors.ErrInvalidFEN,
		Field: field,
		Value: value,
		Msg:   fmt.Sprintf(format, args...),
	}
}

// parsePiecePositions parses the piece placement field.
func parsePiecePositions(field string) ([chess.NumSquares]chess.Piece, error) {
	var board [chess.NumSquares]chess.Piece

	ranks := strings.Split(field, "/")
	if len(ranks) != chess.BoardSize {
		return board, fenError(FieldBoard, field, "expected %d ranks, got %d", chess.BoardSize, len(ranks))
	}

	for row, rank := range ranks {
		file := 0
		for i := 0; i < len(rank); i++ {
			c := rank[i]
			switch {
			case c >= '1' && c <= '8':
				if i > 0 && rank[i-1] >= '1' && rank[i-1] <= '8' {
					return board, fenError(FieldBoard, field, "adjacent empty-square counts in rank %d", chess.BoardSize-row)
				}
				file += int(c - '0')
			default:
				piece, ok := chess.PieceFromChar(c)
				if !ok || piece == chess.Empty {
					return board, fenError(FieldBoard, field, "invalid piece character %q", c)
				}
				if file >= chess.BoardSize {
					return board, fenError(FieldBoard, field, "rank %d is too long", chess.BoardSize-row)
				}
				board[chess.NewSquare(file, row)] = piece
				file++
			}
			if file > chess.BoardSize {
				return board, fenError(FieldBoard, field, "rank %d is too long", chess.BoardSize-row)
			}
		}
		if file != chess.BoardSize {
			return board, fenError(FieldBoard, field, "rank %d has %d squares", chess.BoardSize-row, file)
		}
	}
	return board, nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(field string) (chess.Colour, error) {
	switch field {
	case "w":
		return chess.White, nil
	case "b":
		return chess.Black, nil
	default:
		return chess.White, fenError(FieldTurn, field, "expected w or b")
	}
}

// parseCastlingRights parses the castling availability field.
func parseCastlingRights(field string) (chess.CastlingRights, error) {
	if field == "-" {
		return chess.NoCastling, nil
	}
	rights := chess.NoCastling
	for i := 0; i < len(field); i++ {
		right, ok := chess.CastlingRightFromLetter(field[i])
		if !ok {
			return chess.NoCastling, fenError(FieldCastling, field, "unknown letter %q", field[i])
		}
		if rights.Has(right) {
			return chess.NoCastling, fenError(FieldCastling, field, "duplicate letter %q", field[i])
		}
		rights |= right
	}
	if field == "" {
		return chess.NoCastling, fenError(FieldCastling, field, "empty field")
	}
	return rights, nil
}

// parseEnPassant parses the en passant target square field. The target
// must be empty and lie directly behind a pawn of the side that just moved.
func parseEnPassant(field string, turn chess.Colour, board *[chess.NumSquares]chess.Piece) (chess.Square, error) {
	if field == "-" {
		return chess.NoSquare, nil
	}
	sq, err := chess.ParseSquare(field)
	if err != nil {
		return chess.NoSquare, fenError(FieldEnPassant, field, "not a square")
	}
	wantRank := 6
	if turn == chess.Black {
		wantRank = 3
	}
	if sq.Rank() != wantRank {
		return chess.NoSquare, fenError(FieldEnPassant, field, "target must be on rank %d", wantRank)
	}
	if board[sq] != chess.Empty {
		return chess.NoSquare, fenError(FieldEnPassant, field, "target square is occupied")
	}
	mover := turn.Opposite()
	pushed := geometry.ApplyOffset(sq, geometry.Pawn(mover).Single)
	if board[pushed] != chess.MakePiece(mover, chess.Pawn) {
		return chess.NoSquare, fenError(FieldEnPassant, field, "no pawn on %s", pushed)
	}
	return sq, nil
}

// parseClock parses a non-negative halfmove or fullmove counter written
// as plain decimal digits without sign or leading zeros.
func parseClock(name, field string) (int, error) {
	if field == "" || strings.TrimLeft(field, "0123456789") != "" || (len(field) > 1 && field[0] == '0') {
		return 0, fenError(name, field, "expected a non-negative integer")
	}
	n, err := strconv.Atoi(field)
	if err != nil {
		return 0, fenError(name, field, "expected a non-negative integer")
	}
	return n, nil
}

// PositionToFEN converts a position to a FEN string.
func PositionToFEN(p *Position) string {
	var sb strings.Builder

	writePiecePositions(&sb, p)
	sb.WriteByte(' ')
	sb.WriteByte(p.turn.Letter())
	sb.WriteByte(' ')
	sb.WriteString(p.castling.String())
	sb.WriteByte(' ')
	sb.WriteString(p.epTarget.String())
	sb.WriteByte(' ')
	fmt.Fprintf(&sb, "%d %d", p.halfmove, p.fullmove)

	return sb.String()
}

// FEN returns the position as a FEN string.
func (p *Position) FEN() string {
	return PositionToFEN(p)
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, p *Position) {
	for row := 0; row < chess.BoardSize; row++ {
		emptyCount := 0
		for file := 0; file < chess.BoardSize; file++ {
			piece := p.board[chess.NewSquare(file, row)]
			if piece == chess.Empty {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(piece.Char())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if row < chess.BoardSize-1 {
			sb.WriteByte('/')
		}
	}
}
