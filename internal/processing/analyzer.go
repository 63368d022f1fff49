// Package processing tracks features of a line of play as its moves are
// applied: draw-rule thresholds, repetitions, underpromotion and material.
package processing

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/hashing"
)

// SeventyFiveMoveLimit is the halfmove clock of the seventy-five-move rule.
const SeventyFiveMoveLimit = 150

// LineAnalysis holds what was observed while a line was played.
type LineAnalysis struct {
	HasFiftyMoveRule  bool
	HasRepetition     bool
	HasUnderpromotion bool
	Positions         []uint64 // Zobrist keys for repetition detection
	Captures          int

	// Extended draw rule detection
	Has75MoveRule           bool
	Has5FoldRepetition      bool
	HasInsufficientMaterial bool

	counts map[uint64]int
}

// NewLineAnalysis starts an analysis at the given position.
func NewLineAnalysis(start *engine.Position) *LineAnalysis {
	a := &LineAnalysis{counts: make(map[uint64]int)}
	a.addPosition(start)
	a.HasInsufficientMaterial = start.HasInsufficientMaterial()
	return a
}

// FiftyMoveTriggered returns true if the line reached the fifty-move rule.
func (a *LineAnalysis) FiftyMoveTriggered() bool {
	return a.HasFiftyMoveRule
}

// RepetitionDetected returns true if a position occurred three times.
func (a *LineAnalysis) RepetitionDetected() bool {
	return a.HasRepetition
}

// UnderpromotionFound returns true if any pawn promoted to non-queen.
func (a *LineAnalysis) UnderpromotionFound() bool {
	return a.HasUnderpromotion
}

// Observe records a move that took before to after. promotion is the
// piece requested for the move, NoKind meaning queen.
func (a *LineAnalysis) Observe(before *engine.Position, m chess.Move, promotion chess.Kind, after *engine.Position) {
	moving := before.PieceAt(m.From)
	if isCapture(before, moving, m) {
		a.Captures++
	}
	if moving.Kind() == chess.Pawn && promotion != chess.NoKind && promotion != chess.Queen && after.PieceAt(m.To).Kind() == promotion {
		a.HasUnderpromotion = true
	}

	// 50-move rule (100 half-moves)
	if after.HalfmoveClock() >= engine.FiftyMoveLimit {
		a.HasFiftyMoveRule = true
	}

	// 75-move rule (150 half-moves - automatic draw)
	if after.HalfmoveClock() >= SeventyFiveMoveLimit {
		a.Has75MoveRule = true
	}

	a.addPosition(after)
	a.HasInsufficientMaterial = after.HasInsufficientMaterial()
}

func (a *LineAnalysis) addPosition(p *engine.Position) {
	key := hashing.ZobristKey(p)
	a.Positions = append(a.Positions, key)
	a.counts[key]++

	// 3-fold repetition
	if a.counts[key] >= 3 {
		a.HasRepetition = true
	}

	// 5-fold repetition (automatic draw)
	if a.counts[key] >= 5 {
		a.Has5FoldRepetition = true
	}
}

// Features names the observed features, in a fixed order.
func (a *LineAnalysis) Features() []string {
	var out []string
	if a.HasFiftyMoveRule {
		out = append(out, "fifty-move rule")
	}
	if a.Has75MoveRule {
		out = append(out, "seventy-five-move rule")
	}
	if a.HasRepetition {
		out = append(out, "threefold repetition")
	}
	if a.Has5FoldRepetition {
		out = append(out, "fivefold repetition")
	}
	if a.HasUnderpromotion {
		out = append(out, "underpromotion")
	}
	if a.HasInsufficientMaterial {
		out = append(out, "insufficient material")
	}
	return out
}

// isCapture reports whether m takes a piece, en passant included.
func isCapture(before *engine.Position, moving chess.Piece, m chess.Move) bool {
	if !before.PieceAt(m.To).IsEmpty() {
		return true
	}
	return moving.Kind() == chess.Pawn && m.From.File() != m.To.File()
}

// AnalyzeLine replays moves in coordinate notation from start. It stops at
// the first move that fails and returns the error with the position and
// analysis reached so far. start is not modified.
func AnalyzeLine(start *engine.Position, moves []string) (*engine.Position, *LineAnalysis, error) {
	p := start.Clone()
	a := NewLineAnalysis(p)

	for _, text := range moves {
		m, promotion, err := chess.ParseMove(text)
		if err != nil {
			return p, a, err
		}
		before := p.Clone()
		if err := p.ApplyMove(m, promotion); err != nil {
			return p, a, err
		}
		a.Observe(before, m, promotion, p)
	}
	return p, a, nil
}

// CountPlies returns the number of moves observed.
func (a *LineAnalysis) CountPlies() int {
	return len(a.Positions) - 1
}
