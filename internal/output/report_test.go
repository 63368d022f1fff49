package output

import (
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

func TestNewMovesReport(t *testing.T) {
	tests := []struct {
		name        string
		fen         string
		from        chess.Square
		wantCount   int
		wantMoves   []string
		wantStatus  string
		wantResult  string
		wantInCheck bool
	}{
		{
			name:       "initial position",
			fen:        engine.InitialFEN,
			from:       chess.NoSquare,
			wantCount:  20,
			wantStatus: "in-progress",
			wantResult: "*",
		},
		{
			name:       "single piece",
			fen:        engine.InitialFEN,
			from:       chess.MustParseSquare("e2"),
			wantCount:  2,
			wantMoves:  []string{"e2e3", "e2e4"},
			wantStatus: "in-progress",
			wantResult: "*",
		},
		{
			name:       "empty square",
			fen:        engine.InitialFEN,
			from:       chess.MustParseSquare("e4"),
			wantCount:  0,
			wantMoves:  []string{},
			wantStatus: "in-progress",
			wantResult: "*",
		},
		{
			name:       "promotion choices",
			fen:        "8/P6k/8/8/8/8/8/K7 w - - 0 1",
			from:       chess.NoSquare,
			wantCount:  7,
			wantMoves:  []string{"a1a2", "a1b1", "a1b2", "a7a8b", "a7a8n", "a7a8q", "a7a8r"},
			wantStatus: "in-progress",
			wantResult: "*",
		},
		{
			name:        "black to move",
			fen:         "4k3/8/8/8/8/8/8/4K2R b - - 0 1",
			from:        chess.NoSquare,
			wantCount:   5,
			wantStatus:  "in-progress",
			wantResult:  "*",
		},
		{
			name:        "checkmate",
			fen:         "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3",
			from:        chess.NoSquare,
			wantCount:   0,
			wantMoves:   []string{},
			wantStatus:  "checkmate",
			wantResult:  "0-1",
			wantInCheck: true,
		},
		{
			name:       "stalemate",
			fen:        "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1",
			from:       chess.NoSquare,
			wantCount:  0,
			wantMoves:  []string{},
			wantStatus: "stalemate",
			wantResult: "1/2-1/2",
		},
		{
			name:       "fifty-move rule",
			fen:        "7k/8/8/8/8/8/8/KR6 w - - 100 80",
			from:       chess.MustParseSquare("b1"),
			wantCount:  13,
			wantStatus: "fifty-move rule",
			wantResult: "1/2-1/2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := testutil.MustPosition(t, tt.fen)
			r, err := NewMovesReport(p, tt.from)
			testutil.AssertNoError(t, err)

			testutil.AssertEqual(t, len(r.Moves), tt.wantCount, "move count")
			if tt.wantMoves != nil {
				testutil.AssertEqual(t, r.Moves, tt.wantMoves)
			}
			testutil.AssertEqual(t, r.Status, tt.wantStatus)
			testutil.AssertEqual(t, r.Result, tt.wantResult)
			testutil.AssertEqual(t, r.FEN, tt.fen)
		})
	}
}

func TestNewMovesReport_Check(t *testing.T) {
	p := testutil.MustPosition(t, "4k3/8/8/8/8/8/8/4R1K1 b - - 0 1")
	r, err := NewMovesReport(p, chess.NoSquare)
	testutil.AssertNoError(t, err)
	testutil.AssertTrue(t, r.InCheck)
	testutil.AssertEqual(t, r.Status, "check")
	testutil.AssertEqual(t, r.Turn, "black")
	testutil.AssertEqual(t, r.Material, 5)
}

func TestNewMovesReport_MissingKing(t *testing.T) {
	p := testutil.MustPosition(t, "8/8/8/8/8/8/8/R6k w - - 0 1")
	_, err := NewMovesReport(p, chess.NoSquare)
	testutil.AssertError(t, err)
}

func TestPlayReport(t *testing.T) {
	p := engine.NewInitialPosition()
	r := NewPlayReport(p)

	for _, text := range []string{"f2f3", "e7e5", "g2g4", "d8h4"} {
		before := p.Clone()
		testutil.MustPlay(t, p, text)
		r.Record(before, text, p, true)
	}
	testutil.AssertNoError(t, r.Finish(p))

	testutil.AssertEqual(t, r.InitialFEN, engine.InitialFEN)
	testutil.AssertEqual(t, r.PlyCount, 4)
	testutil.AssertEqual(t, r.Status, "checkmate")
	testutil.AssertEqual(t, r.Result, "0-1")
	testutil.AssertEqual(t, r.FinalFEN, "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3")

	want := []PlayedMove{
		{MoveNumber: 1, Color: "white", Move: "f2f3", FEN: "rnbqkbnr/pppppppp/8/8/8/5P2/PPPPP1PP/RNBQKBNR b KQkq - 0 1"},
		{MoveNumber: 1, Color: "black", Move: "e7e5", FEN: "rnbqkbnr/pppp1ppp/8/4p3/8/5P2/PPPPP1PP/RNBQKBNR w KQkq e6 0 2"},
		{MoveNumber: 2, Color: "white", Move: "g2g4", FEN: "rnbqkbnr/pppp1ppp/8/4p3/6P1/5P2/PPPPP2P/RNBQKBNR b KQkq g3 0 2"},
		{MoveNumber: 2, Color: "black", Move: "d8h4", FEN: r.FinalFEN},
	}
	testutil.AssertEqual(t, r.Moves, want)
}

func TestPlayReport_WithoutFEN(t *testing.T) {
	p := engine.NewInitialPosition()
	r := NewPlayReport(p)
	before := p.Clone()
	testutil.MustPlay(t, p, "e2e4")
	r.Record(before, "e2e4", p, false)
	testutil.AssertNoError(t, r.Finish(p))

	testutil.AssertEqual(t, r.Moves[0].FEN, "")
	testutil.AssertEqual(t, r.Status, "in-progress")
}
