package testutil

import (
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
)

// PerftCase is a position with reference perft node counts.
type PerftCase struct {
	Name  string
	FEN   string
	Nodes []uint64 // by depth, starting at 1
}

// PerftCases are well-known positions that exercise castling, en passant,
// promotion and pins.
var PerftCases = []PerftCase{
	{Name: "initial", FEN: engine.InitialFEN, Nodes: []uint64{20, 400, 8902}},
	{Name: "kiwipete", FEN: "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", Nodes: []uint64{48, 2039}},
	{Name: "position 3", FEN: "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1", Nodes: []uint64{14, 191, 2812}},
	{Name: "position 4", FEN: "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1", Nodes: []uint64{6, 264}},
	{Name: "position 5", FEN: "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8", Nodes: []uint64{44, 1486}},
}

// MustPosition decodes a FEN string.
// It calls t.Fatal if the FEN is invalid.
func MustPosition(t *testing.T, fen string) *engine.Position {
	t.Helper()
	p, err := engine.NewPositionFromFEN(fen)
	if err != nil {
		t.Fatalf("failed to decode FEN %q: %v", fen, err)
	}
	return p
}

// MustPlay applies moves in coordinate notation ("e2e4", "e7e8n") to p.
// It calls t.Fatal on the first move that fails to parse or apply.
func MustPlay(t *testing.T, p *engine.Position, moves ...string) {
	t.Helper()
	for i, text := range moves {
		m, promotion, err := chess.ParseMove(text)
		if err != nil {
			t.Fatalf("move %d %q: %v", i+1, text, err)
		}
		if err := p.ApplyMove(m, promotion); err != nil {
			t.Fatalf("move %d %q: %v", i+1, text, err)
		}
	}
}
