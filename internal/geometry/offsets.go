package geometry

import "github.com/lgbarn/chessrules-go/internal/chess"

// RayLength is the number of steps in a sliding ray.
const RayLength = chess.BoardSize - 1

// Ray is one sliding direction, nearest step first.
type Ray [RayLength]Offset

func ray(dx, dy int) Ray {
	var r Ray
	for i := range r {
		r[i] = Offset{X: dx * (i + 1), Y: dy * (i + 1)}
	}
	return r
}

var knightJumps = [8]Offset{
	{1, 2}, {2, 1}, {2, -1}, {1, -2},
	{-1, -2}, {-2, -1}, {-2, 1}, {-1, 2},
}

var kingSteps = [8]Offset{
	{1, 1}, {1, 0}, {1, -1}, {0, -1},
	{-1, -1}, {-1, 0}, {-1, 1}, {0, 1},
}

var (
	bishopRays = [4]Ray{ray(1, 1), ray(1, -1), ray(-1, -1), ray(-1, 1)}
	rookRays   = [4]Ray{ray(1, 0), ray(-1, 0), ray(0, 1), ray(0, -1)}
	queenRays  = [8]Ray{
		rookRays[0], rookRays[1], rookRays[2], rookRays[3],
		bishopRays[0], bishopRays[1], bishopRays[2], bishopRays[3],
	}
)

// The accessors below return arrays by value so callers cannot modify
// the shared tables.

// KnightJumps returns the eight knight displacements.
func KnightJumps() [8]Offset { return knightJumps }

// KingSteps returns the eight adjacent-square displacements.
func KingSteps() [8]Offset { return kingSteps }

// BishopRays returns the four diagonal rays.
func BishopRays() [4]Ray { return bishopRays }

// RookRays returns the four orthogonal rays.
func RookRays() [4]Ray { return rookRays }

// QueenRays returns the union of rook and bishop rays.
func QueenRays() [8]Ray { return queenRays }

// PawnOffsets holds the side-dependent pawn displacements.
type PawnOffsets struct {
	Single    Offset
	Double    Offset
	Captures  [2]Offset
	EnPassant [2]Offset

	// StartRow is the row from which a double push is allowed.
	StartRow int
	// PromotionRow is the far row for the side.
	PromotionRow int
}

var pawnOffsets = [2]PawnOffsets{
	chess.Black: {
		Single:       Offset{0, 1},
		Double:       Offset{0, 2},
		Captures:     [2]Offset{{-1, 1}, {1, 1}},
		EnPassant:    [2]Offset{{-1, 1}, {1, 1}},
		StartRow:     1,
		PromotionRow: 7,
	},
	chess.White: {
		Single:       Offset{0, -1},
		Double:       Offset{0, -2},
		Captures:     [2]Offset{{-1, -1}, {1, -1}},
		EnPassant:    [2]Offset{{-1, -1}, {1, -1}},
		StartRow:     6,
		PromotionRow: 0,
	},
}

// Pawn returns the pawn displacements for a colour. White moves toward
// decreasing row index.
func Pawn(colour chess.Colour) PawnOffsets {
	return pawnOffsets[colour]
}

// Castle describes one castling option relative to the king's home square.
type Castle struct {
	Side     chess.CastleSide
	Target   Offset // king displacement
	RookFrom Offset
	RookTo   Offset

	mustBeEmpty []Offset
	mustBeSafe  []Offset
}

var castles = [2]Castle{
	chess.Kingside: {
		Side:        chess.Kingside,
		Target:      Offset{2, 0},
		RookFrom:    Offset{3, 0},
		RookTo:      Offset{1, 0},
		mustBeEmpty: []Offset{{1, 0}, {2, 0}},
		mustBeSafe:  []Offset{{1, 0}, {2, 0}},
	},
	chess.Queenside: {
		Side:        chess.Queenside,
		Target:      Offset{-2, 0},
		RookFrom:    Offset{-4, 0},
		RookTo:      Offset{-1, 0},
		mustBeEmpty: []Offset{{-1, 0}, {-2, 0}, {-3, 0}},
		mustBeSafe:  []Offset{{-1, 0}, {-2, 0}},
	},
}

// Castling returns the descriptor for one castling side.
func Castling(side chess.CastleSide) Castle {
	return castles[side]
}

// EmptySquares returns the squares between king and rook that must be
// unoccupied, for a king on home.
func (c Castle) EmptySquares(home chess.Square) []chess.Square {
	return squaresFrom(home, c.mustBeEmpty)
}

// SafeSquares returns the squares the king crosses or lands on, which
// must not be attacked. The home square itself is not included.
func (c Castle) SafeSquares(home chess.Square) []chess.Square {
	return squaresFrom(home, c.mustBeSafe)
}

func squaresFrom(home chess.Square, offsets []Offset) []chess.Square {
	squares := make([]chess.Square, 0, len(offsets))
	for _, off := range offsets {
		if sq, ok := Target(home, off); ok {
			squares = append(squares, sq)
		}
	}
	return squares
}

// KingHome returns the initial square of a colour's king.
func KingHome(colour chess.Colour) chess.Square {
	if colour == chess.White {
		return chess.E1
	}
	return chess.E8
}
