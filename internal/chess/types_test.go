package chess

import (
	"testing"
)

func TestPieceEncoding(t *testing.T) {
	kinds := []Kind{Pawn, Knight, Bishop, Rook, Queen, King}
	for _, colour := range []Colour{White, Black} {
		for _, kind := range kinds {
			p := MakePiece(colour, kind)
			if p.Kind() != kind {
				t.Errorf("MakePiece(%v, %v).Kind() = %v", colour, kind, p.Kind())
			}
			if p.Colour() != colour {
				t.Errorf("MakePiece(%v, %v).Colour() = %v", colour, kind, p.Colour())
			}
			if !p.Is(colour) || p.Is(colour.Opposite()) {
				t.Errorf("MakePiece(%v, %v).Is() disagrees with colour", colour, kind)
			}
		}
	}

	if MakePiece(White, NoKind) != Empty {
		t.Error("MakePiece(White, NoKind) != Empty")
	}
	if Empty.Is(White) || Empty.Is(Black) {
		t.Error("Empty belongs to a colour")
	}
}

func TestPieceChar(t *testing.T) {
	tests := []struct {
		piece Piece
		char  byte
	}{
		{W(King), 'K'},
		{W(Queen), 'Q'},
		{W(Rook), 'R'},
		{W(Bishop), 'B'},
		{W(Knight), 'N'},
		{W(Pawn), 'P'},
		{B(King), 'k'},
		{B(Queen), 'q'},
		{B(Rook), 'r'},
		{B(Bishop), 'b'},
		{B(Knight), 'n'},
		{B(Pawn), 'p'},
		{Empty, '.'},
	}

	for _, tt := range tests {
		t.Run(string(tt.char), func(t *testing.T) {
			if got := tt.piece.Char(); got != tt.char {
				t.Errorf("Char() = %q; want %q", got, tt.char)
			}
			got, ok := PieceFromChar(tt.char)
			if !ok || got != tt.piece {
				t.Errorf("PieceFromChar(%q) = %v, %v; want %v, true", tt.char, got, ok, tt.piece)
			}
		})
	}

	for _, c := range []byte{'x', '1', ' ', 'A'} {
		if _, ok := PieceFromChar(c); ok {
			t.Errorf("PieceFromChar(%q) ok; want false", c)
		}
	}
}

func TestColour(t *testing.T) {
	if White.Opposite() != Black || Black.Opposite() != White {
		t.Error("Opposite() does not swap colours")
	}
	if White.Letter() != 'w' || Black.Letter() != 'b' {
		t.Errorf("Letter() = %q, %q; want 'w', 'b'", White.Letter(), Black.Letter())
	}
}

func TestWinFor(t *testing.T) {
	if WinFor(White) != WhiteWins {
		t.Error("WinFor(White) != WhiteWins")
	}
	if WinFor(Black) != BlackWins {
		t.Error("WinFor(Black) != BlackWins")
	}
}
