package chess

// CastleSide distinguishes the two castling directions.
type CastleSide int

const (
	Kingside CastleSide = iota
	Queenside
)

// String returns the string representation of a castling side.
func (s CastleSide) String() string {
	if s == Kingside {
		return "kingside"
	}
	return "queenside"
}

// CastlingRights is a set of up to four castling permissions.
// Rights only ever shrink during play.
type CastlingRights uint8

const (
	WhiteKingside CastlingRights = 1 << iota
	WhiteQueenside
	BlackKingside
	BlackQueenside

	NoCastling  CastlingRights = 0
	AllCastling                = WhiteKingside | WhiteQueenside | BlackKingside | BlackQueenside
)

// castlingLetters is in FEN order.
var castlingLetters = [...]struct {
	right  CastlingRights
	letter byte
}{
	{WhiteKingside, 'K'},
	{WhiteQueenside, 'Q'},
	{BlackKingside, 'k'},
	{BlackQueenside, 'q'},
}

// CastlingRight returns the single right for a colour and side.
func CastlingRight(colour Colour, side CastleSide) CastlingRights {
	switch {
	case colour == White && side == Kingside:
		return WhiteKingside
	case colour == White:
		return WhiteQueenside
	case side == Kingside:
		return BlackKingside
	default:
		return BlackQueenside
	}
}

// Has reports whether every right in r is present.
func (c CastlingRights) Has(r CastlingRights) bool {
	return c&r == r
}

// Without returns the rights with r revoked.
func (c CastlingRights) Without(r CastlingRights) CastlingRights {
	return c &^ r
}

// ForColour returns the rights belonging to one side.
func ForColour(colour Colour) CastlingRights {
	if colour == White {
		return WhiteKingside | WhiteQueenside
	}
	return BlackKingside | BlackQueenside
}

// CornerRight returns the right tied to a rook's home corner, or NoCastling.
func CornerRight(sq Square) CastlingRights {
	switch sq {
	case A8:
		return BlackQueenside
	case H8:
		return BlackKingside
	case A1:
		return WhiteQueenside
	case H1:
		return WhiteKingside
	default:
		return NoCastling
	}
}

// String returns the FEN castling field, "-" when empty.
func (c CastlingRights) String() string {
	var buf []byte
	for _, cl := range castlingLetters {
		if c.Has(cl.right) {
			buf = append(buf, cl.letter)
		}
	}
	if len(buf) == 0 {
		return "-"
	}
	return string(buf)
}

// CastlingRightFromLetter maps a FEN castling letter to its right.
func CastlingRightFromLetter(c byte) (CastlingRights, bool) {
	for _, cl := range castlingLetters {
		if cl.letter == c {
			return cl.right, true
		}
	}
	return NoCastling, false
}
