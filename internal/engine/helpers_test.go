package engine

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/exp/slices"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// mustFEN decodes a FEN or fails the test.
func mustFEN(t *testing.T, fen string) *Position {
	t.Helper()
	p, err := NewPositionFromFEN(fen)
	if err != nil {
		t.Fatalf("NewPositionFromFEN(%q) error: %v", fen, err)
	}
	return p
}

// squares converts algebraic names to sorted squares.
func squares(names ...string) []chess.Square {
	out := make([]chess.Square, 0, len(names))
	for _, n := range names {
		out = append(out, chess.MustParseSquare(n))
	}
	slices.Sort(out)
	return out
}

// sorted returns a sorted copy of s.
func sorted(s []chess.Square) []chess.Square {
	out := slices.Clone(s)
	slices.Sort(out)
	if out == nil {
		out = []chess.Square{}
	}
	return out
}

// assertSquares compares two square sets ignoring order.
func assertSquares(t *testing.T, got, want []chess.Square) {
	t.Helper()
	if diff := cmp.Diff(sorted(want), sorted(got)); diff != "" {
		t.Errorf("squares mismatch (-want +got):\n%s", diff)
	}
}

// play applies coordinate-notation moves or fails the test.
func play(t *testing.T, p *Position, moves ...string) {
	t.Helper()
	for _, text := range moves {
		m, promotion, err := chess.ParseMove(text)
		if err != nil {
			t.Fatalf("ParseMove(%q) error: %v", text, err)
		}
		if err := p.ApplyMove(m, promotion); err != nil {
			t.Fatalf("ApplyMove(%s) error: %v", text, err)
		}
	}
}

// mv builds a move from two algebraic squares.
func mv(from, to string) chess.Move {
	return chess.NewMove(chess.MustParseSquare(from), chess.MustParseSquare(to))
}

// positionOpts lets cmp look inside Position.
var positionOpts = cmp.AllowUnexported(Position{})
