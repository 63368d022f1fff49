package chess

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Move is an origin/destination pair. Captures, promotions and other
// special moves are derived from the board when the move is applied.
type Move struct {
	From Square
	To   Square
}

// NewMove creates a move between two squares.
func NewMove(from, to Square) Move {
	return Move{From: from, To: to}
}

// String returns the move in coordinate notation, e.g. "e2e4".
func (m Move) String() string {
	return m.From.String() + m.To.String()
}

// UCI returns the move in coordinate notation with an optional lowercase
// promotion suffix, e.g. "e7e8n".
func (m Move) UCI(promotion Kind) string {
	s := m.String()
	if promotion != NoKind {
		s += strings.ToLower(string(promotion.Letter()))
	}
	return s
}

// PromotionKinds lists the pieces a pawn may promote to, queen first.
var PromotionKinds = [...]Kind{Queen, Rook, Bishop, Knight}

// ValidPromotion reports whether kind is an acceptable promotion choice.
// NoKind is accepted and means the default (queen).
func ValidPromotion(kind Kind) bool {
	switch kind {
	case NoKind, Queen, Rook, Bishop, Knight:
		return true
	default:
		return false
	}
}

// ParseMove parses coordinate notation: two algebraic squares optionally
// followed by a promotion letter ("e2e4", "e7e8q"). A hyphen between the
// squares is tolerated ("e2-e4").
func ParseMove(text string) (Move, Kind, error) {
	text = strings.TrimSpace(text)
	if len(text) == 5 && text[2] == '-' {
		text = text[:2] + text[3:]
	}
	if len(text) != 4 && len(text) != 5 {
		return Move{}, NoKind, fmt.Errorf("move %q: %w", text, errors.ErrInvalidSquare)
	}
	from, err := ParseSquare(text[:2])
	if err != nil {
		return Move{}, NoKind, fmt.Errorf("move origin: %w", err)
	}
	to, err := ParseSquare(text[2:4])
	if err != nil {
		return Move{}, NoKind, fmt.Errorf("move destination: %w", err)
	}
	promotion := NoKind
	if len(text) == 5 {
		promotion = KindFromLetter(text[4])
		if promotion == NoKind || !ValidPromotion(promotion) {
			return Move{}, NoKind, fmt.Errorf("move %q: %w", text, errors.ErrInvalidPromotion)
		}
	}
	return NewMove(from, to), promotion, nil
}
