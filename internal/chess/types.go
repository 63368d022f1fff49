// Package chess provides core chess types and operations.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Letter returns the FEN side-to-move letter for the colour.
func (c Colour) Letter() byte {
	if c == White {
		return 'w'
	}
	return 'b'
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Kind is a colourless piece type.
type Kind int

const (
	NoKind Kind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	NumKinds
)

// String returns the string representation of a piece kind.
func (k Kind) String() string {
	names := []string{"None", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if k >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a kind (uppercase).
func (k Kind) Letter() byte {
	letters := []byte{'.', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if k >= 0 && int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// KindFromLetter converts a piece letter of either case to a kind.
func KindFromLetter(c byte) Kind {
	switch c {
	case 'K', 'k':
		return King
	case 'Q', 'q':
		return Queen
	case 'R', 'r':
		return Rook
	case 'B', 'b':
		return Bishop
	case 'N', 'n':
		return Knight
	case 'P', 'p':
		return Pawn
	default:
		return NoKind
	}
}

// Piece is a coloured piece, or Empty.
type Piece uint8

// PieceShift is used for encoding coloured pieces.
const PieceShift = 3

// Empty is the content of an unoccupied square.
const Empty Piece = 0

// MakePiece creates a coloured piece value.
func MakePiece(colour Colour, kind Kind) Piece {
	if kind == NoKind {
		return Empty
	}
	return Piece((int(kind) << PieceShift) | int(colour))
}

// W creates a white piece.
func W(kind Kind) Piece {
	return MakePiece(White, kind)
}

// B creates a black piece.
func B(kind Kind) Piece {
	return MakePiece(Black, kind)
}

// Kind extracts the piece type.
func (p Piece) Kind() Kind {
	return Kind(p >> PieceShift)
}

// Colour extracts the colour. The result is meaningless for Empty.
func (p Piece) Colour() Colour {
	return Colour(p & 0x01)
}

// IsEmpty reports whether the square content is Empty.
func (p Piece) IsEmpty() bool {
	return p == Empty
}

// Is reports whether p is a piece of the given colour.
func (p Piece) Is(colour Colour) bool {
	return p != Empty && p.Colour() == colour
}

// Char returns the FEN character for the piece: uppercase for white,
// lowercase for black and '.' for Empty.
func (p Piece) Char() byte {
	if p == Empty {
		return '.'
	}
	letter := p.Kind().Letter()
	if p.Colour() == Black {
		letter += 'a' - 'A'
	}
	return letter
}

// String returns the FEN character of the piece.
func (p Piece) String() string {
	return string(p.Char())
}

// PieceFromChar converts a FEN character to a piece. The second result is
// false for characters that are neither a piece letter nor '.'.
func PieceFromChar(c byte) (Piece, bool) {
	if c == '.' {
		return Empty, true
	}
	kind := KindFromLetter(c)
	if kind == NoKind {
		return Empty, false
	}
	if c >= 'a' && c <= 'z' {
		return B(kind), true
	}
	return W(kind), true
}

// GameState is the outcome status of a position.
type GameState int

const (
	InProgress GameState = iota
	Drawn
	WhiteWins
	BlackWins
)

// String returns the string representation of a game state.
func (s GameState) String() string {
	switch s {
	case InProgress:
		return "in-progress"
	case Drawn:
		return "drawn"
	case WhiteWins:
		return "white-wins"
	case BlackWins:
		return "black-wins"
	default:
		return "unknown"
	}
}

// Result returns the PGN result token for the state.
func (s GameState) Result() string {
	switch s {
	case Drawn:
		return "1/2-1/2"
	case WhiteWins:
		return "1-0"
	case BlackWins:
		return "0-1"
	default:
		return "*"
	}
}

// WinFor returns the state in which the given colour has won.
func WinFor(colour Colour) GameState {
	if colour == White {
		return WhiteWins
	}
	return BlackWins
}

// Constants for board dimensions and coordinates.
const (
	BoardSize  = 8
	NumSquares = BoardSize * BoardSize

	RankBase = '1'
	FileBase = 'a'
)
