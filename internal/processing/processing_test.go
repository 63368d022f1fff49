package processing

import (
	"testing"

	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

func TestAnalyzeLine(t *testing.T) {
	tests := []struct {
		name         string
		fen          string
		moves        []string
		wantFeatures []string
		wantCaptures int
		wantPlies    int
	}{
		{
			name:      "quiet opening",
			fen:       engine.InitialFEN,
			moves:     []string{"e2e4", "e7e5", "g1f3", "b8c6", "f1b5", "a7a6"},
			wantPlies: 6,
		},
		{
			name:         "threefold repetition",
			fen:          engine.InitialFEN,
			moves:        []string{"g1f3", "g8f6", "f3g1", "f6g8", "g1f3", "g8f6", "f3g1", "f6g8"},
			wantFeatures: []string{"threefold repetition"},
			wantPlies:    8,
		},
		{
			name:         "underpromotion",
			fen:          "8/P6k/8/8/8/8/8/K7 w - - 0 1",
			moves:        []string{"a7a8n"},
			wantFeatures: []string{"underpromotion", "insufficient material"},
			wantPlies:    1,
		},
		{
			name:      "queen promotion by default",
			fen:       "8/P6k/8/8/8/8/8/K7 w - - 0 1",
			moves:     []string{"a7a8"},
			wantPlies: 1,
		},
		{
			name:         "fifty-move rule",
			fen:          "7k/8/8/8/8/8/8/KR6 w - - 99 80",
			moves:        []string{"b1b2"},
			wantFeatures: []string{"fifty-move rule"},
			wantPlies:    1,
		},
		{
			name:         "capture leaves bare kings",
			fen:          "4k3/8/8/8/8/8/4r3/4K3 w - - 0 1",
			moves:        []string{"e1e2"},
			wantFeatures: []string{"insufficient material"},
			wantCaptures: 1,
			wantPlies:    1,
		},
		{
			name:         "en passant counts as capture",
			fen:          "4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 1",
			moves:        []string{"e5d6"},
			wantCaptures: 1,
			wantPlies:    1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start := testutil.MustPosition(t, tt.fen)
			_, a, err := AnalyzeLine(start, tt.moves)
			testutil.AssertNoError(t, err)

			testutil.AssertEqual(t, a.Features(), tt.wantFeatures)
			testutil.AssertEqual(t, a.Captures, tt.wantCaptures)
			testutil.AssertEqual(t, a.CountPlies(), tt.wantPlies)
			testutil.AssertFEN(t, start, tt.fen, "start modified")
		})
	}
}

func TestAnalyzeLine_Accessors(t *testing.T) {
	moves := []string{"g1f3", "g8f6", "f3g1", "f6g8", "g1f3", "g8f6", "f3g1", "f6g8"}
	_, a, err := AnalyzeLine(engine.NewInitialPosition(), moves)
	testutil.AssertNoError(t, err)
	testutil.AssertTrue(t, a.RepetitionDetected())
	testutil.AssertFalse(t, a.FiftyMoveTriggered())
	testutil.AssertFalse(t, a.UnderpromotionFound())
	testutil.AssertFalse(t, a.Has5FoldRepetition)
	testutil.AssertEqual(t, a.Positions[0], a.Positions[len(a.Positions)-1])
}

func TestAnalyzeLine_FivefoldRepetition(t *testing.T) {
	var moves []string
	for i := 0; i < 4; i++ {
		moves = append(moves, "g1f3", "g8f6", "f3g1", "f6g8")
	}
	_, a, err := AnalyzeLine(engine.NewInitialPosition(), moves)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, a.Features(), []string{"threefold repetition", "fivefold repetition"})
}

func TestAnalyzeLine_StopsAtIllegalMove(t *testing.T) {
	p, a, err := AnalyzeLine(engine.NewInitialPosition(), []string{"e2e4", "e7e4", "d2d4"})
	testutil.AssertErrorIs(t, err, errors.ErrIllegalMove)
	testutil.AssertEqual(t, a.CountPlies(), 1)
	testutil.AssertFEN(t, p, "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1")
}

func TestAnalyzeLine_BadMoveText(t *testing.T) {
	_, _, err := AnalyzeLine(engine.NewInitialPosition(), []string{"e2"})
	testutil.AssertError(t, err)
}
