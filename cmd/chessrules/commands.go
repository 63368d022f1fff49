package main

import (
	stderrors "errors"
	"fmt"
	"time"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/crosscheck"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/hashing"
	"github.com/lgbarn/chessrules-go/internal/output"
	"github.com/lgbarn/chessrules-go/internal/processing"
	"github.com/lgbarn/chessrules-go/internal/worker"
)

// Exit codes.
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

// run executes one command against the configured position and returns
// the process exit code. Errors go to cfg.LogFile.
func run(cfg *config.Config, args []string) int {
	if len(args) == 0 {
		fmt.Fprintf(cfg.LogFile, "Error: no command given (moves, play or perft)\n")
		return exitUsage
	}

	start, err := engine.NewPositionFromFEN(cfg.FEN)
	if err != nil {
		fmt.Fprintf(cfg.LogFile, "Error: %v\n", err)
		return exitError
	}

	w := output.NewWriter(cfg.OutputFile, cfg)
	switch args[0] {
	case "moves":
		err = runMoves(cfg, w, start, args[1:])
	case "play":
		err = runPlay(cfg, w, start, args[1:])
	case "perft":
		err = runPerft(cfg, w, start)
	default:
		fmt.Fprintf(cfg.LogFile, "Error: unknown command %q\n", args[0])
		return exitUsage
	}

	if cerr := w.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		fmt.Fprintf(cfg.LogFile, "Error: %v\n", err)
		return exitError
	}
	return exitOK
}

// runMoves lists the legal moves of the position, or of the piece on the
// square given as the only argument.
func runMoves(cfg *config.Config, w output.ReportWriter, p *engine.Position, args []string) error {
	from := chess.NoSquare
	switch len(args) {
	case 0:
	case 1:
		sq, err := chess.ParseSquare(args[0])
		if err != nil {
			return err
		}
		from = sq
	default:
		return fmt.Errorf("moves takes at most one square, got %d arguments", len(args))
	}

	r, err := output.NewMovesReport(p, from)
	if err != nil {
		return err
	}
	if cfg.Verbosity > 1 {
		fmt.Fprintf(cfg.LogFile, "%d legal moves in %s\n", len(r.Moves), r.FEN)
	}
	return w.WriteMoves(r)
}

// runPlay applies each argument as a move. Play stops at the first move
// that fails; the report covers the moves made so far and the error is
// returned after it is written.
func runPlay(cfg *config.Config, w output.ReportWriter, p *engine.Position, args []string) error {
	r := output.NewPlayReport(p)
	a := processing.NewLineAnalysis(p)

	var stopErr error
	for i, text := range args {
		if err := playMove(p, text, r, a, cfg.Output.ShowFEN); err != nil {
			stopErr = atPly(err, text, i+1)
			r.Error = stopErr.Error()
			break
		}
		if cfg.Verbosity > 1 {
			fmt.Fprintf(cfg.LogFile, "Played %s: %s\n", text, p.FEN())
		}
	}

	r.Features = a.Features()
	if err := r.Finish(p); err != nil {
		return err
	}
	if err := w.WritePlay(r); err != nil {
		return err
	}
	if cfg.Verbosity > 0 && stopErr == nil {
		fmt.Fprintf(cfg.LogFile, "%d move(s) played, %s.\n", r.PlyCount, r.Status)
	}
	return stopErr
}

// atPly attaches the ply number to a move error, wrapping errors that do
// not yet name their move.
func atPly(err error, text string, ply int) error {
	var me *errors.MoveError
	if stderrors.As(err, &me) {
		me.Ply = ply
		return me
	}
	return &errors.MoveError{Err: err, MoveText: text, Ply: ply}
}

func playMove(p *engine.Position, text string, r *output.PlayReport, a *processing.LineAnalysis, withFEN bool) error {
	m, promotion, err := chess.ParseMove(text)
	if err != nil {
		return err
	}
	before := p.Clone()
	if err := p.ApplyMove(m, promotion); err != nil {
		return err
	}
	r.Record(before, m.UCI(promotionOf(before, m, promotion)), p, withFEN)
	a.Observe(before, m, promotion, p)
	return nil
}

// promotionOf returns the piece a move promotes to: the requested kind,
// a queen when none was given, or NoKind for other moves.
func promotionOf(before *engine.Position, m chess.Move, requested chess.Kind) chess.Kind {
	if before.PieceAt(m.From).Kind() != chess.Pawn {
		return chess.NoKind
	}
	if row := m.To.Row(); row != 0 && row != chess.BoardSize-1 {
		return chess.NoKind
	}
	if requested == chess.NoKind {
		return chess.Queen
	}
	return requested
}

// runPerft counts the move tree, splitting root moves over the worker
// pool, and compares the result with any configured oracles.
func runPerft(cfg *config.Config, w output.ReportWriter, p *engine.Position) error {
	oracles, err := crosscheck.LookupAll(cfg.Perft.Oracles)
	if err != nil {
		return err
	}

	var cache *hashing.ThreadSafePerftCache
	switch {
	case cfg.Perft.HashEntries > 0:
		cache = hashing.NewThreadSafePerftCache(cfg.Perft.HashEntries)
	case cfg.Perft.HashEntries < 0:
		cache = hashing.NewThreadSafePerftCache(0)
	}

	began := time.Now()
	div, err := worker.DivideCached(p, cfg.Perft.Depth, cfg.Perft.Workers, tableOrNil(cache))
	if err != nil {
		return err
	}
	r, err := crosscheck.CompareDivide(p, cfg.Perft.Depth, div, oracles...)
	if err != nil {
		return err
	}
	if cfg.Verbosity > 1 && cache != nil {
		fmt.Fprintf(cfg.LogFile, "cache: %d entries, %d hits\n", cache.Len(), cache.Hits())
	}
	if cfg.Verbosity > 0 {
		fmt.Fprintf(cfg.LogFile, "perft(%d) = %d in %v with %d worker(s)\n",
			cfg.Perft.Depth, r.Nodes, time.Since(began).Round(time.Millisecond), cfg.Perft.Workers)
	}

	if err := w.WritePerft(r); err != nil {
		return err
	}
	return r.Err()
}

// tableOrNil keeps a nil cache from becoming a non-nil interface.
func tableOrNil(c *hashing.ThreadSafePerftCache) hashing.Table {
	if c == nil {
		return nil
	}
	return c
}
