package output

import (
	"golang.org/x/exp/slices"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
)

// MovesReport lists the legal moves of a position, either for the whole
// side to move or for the piece on one square.
type MovesReport struct {
	FEN      string   `json:"fen"`
	Turn     string   `json:"turn"`
	From     string   `json:"from,omitempty"`
	Moves    []string `json:"moves"`
	InCheck  bool     `json:"inCheck"`
	Status   string   `json:"status"`
	Result   string   `json:"result"`
	Material int      `json:"material"`

	position *engine.Position
}

// NewMovesReport collects the legal moves of p. When from is a valid
// square only that piece's destinations are listed, in coordinate form
// without promotion suffixes.
func NewMovesReport(p *engine.Position, from chess.Square) (*MovesReport, error) {
	r := &MovesReport{
		FEN:      p.FEN(),
		Turn:     colourName(p.Turn()),
		Moves:    []string{},
		Material: p.MaterialBalance(),
		position: p,
	}

	if from.Valid() {
		r.From = from.String()
		targets, err := p.LegalMoves(from)
		if err != nil {
			return nil, err
		}
		for _, to := range targets {
			r.Moves = append(r.Moves, chess.NewMove(from, to).String())
		}
	} else {
		choices, err := p.LegalMoveChoices()
		if err != nil {
			return nil, err
		}
		for _, c := range choices {
			r.Moves = append(r.Moves, c.String())
		}
	}
	slices.Sort(r.Moves)

	if err := r.setStatus(p); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *MovesReport) setStatus(p *engine.Position) error {
	inCheck, err := p.InCheck()
	if err != nil {
		return err
	}
	state, err := p.Status()
	if err != nil {
		return err
	}
	r.InCheck = inCheck
	r.Status = describeStatus(state, inCheck, p)
	r.Result = state.Result()
	return nil
}

// PlayedMove is one move of a PlayReport.
type PlayedMove struct {
	MoveNumber int    `json:"moveNumber"`
	Color      string `json:"color"`
	Move       string `json:"move"`
	FEN        string `json:"fen,omitempty"`
}

// PlayReport records a sequence of moves applied to a starting position.
type PlayReport struct {
	InitialFEN string       `json:"initialFEN"`
	Moves      []PlayedMove `json:"moves"`
	FinalFEN   string       `json:"finalFEN"`
	Status     string       `json:"status"`
	Result     string       `json:"result"`
	Material   int          `json:"material"`
	PlyCount   int          `json:"plyCount"`
	Features   []string     `json:"features,omitempty"`

	// Error holds the reason play stopped early, if it did.
	Error string `json:"error,omitempty"`

	position *engine.Position
}

// NewPlayReport starts a report at the given position.
func NewPlayReport(start *engine.Position) *PlayReport {
	return &PlayReport{
		InitialFEN: start.FEN(),
		Moves:      []PlayedMove{},
	}
}

// Record adds a move. before is the position the move was played from,
// after the position it produced; the FEN is kept when withFEN is set.
func (r *PlayReport) Record(before *engine.Position, text string, after *engine.Position, withFEN bool) {
	pm := PlayedMove{
		MoveNumber: before.FullmoveNumber(),
		Color:      colourName(before.Turn()),
		Move:       text,
	}
	if withFEN {
		pm.FEN = after.FEN()
	}
	r.Moves = append(r.Moves, pm)
	r.PlyCount++
}

// Finish records the final position and its status.
func (r *PlayReport) Finish(p *engine.Position) error {
	r.FinalFEN = p.FEN()
	r.Material = p.MaterialBalance()
	r.position = p

	inCheck, err := p.InCheck()
	if err != nil {
		return err
	}
	state, err := p.Status()
	if err != nil {
		return err
	}
	r.Status = describeStatus(state, inCheck, p)
	r.Result = state.Result()
	return nil
}

func colourName(c chess.Colour) string {
	if c == chess.White {
		return "white"
	}
	return "black"
}
