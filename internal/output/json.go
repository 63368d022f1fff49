package output

import (
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/crosscheck"
)

// Report kinds in JSON output.
const (
	KindMoves = "moves"
	KindPlay  = "play"
	KindPerft = "perft"
)

// JSONReport is one report in JSON output. Exactly one of the payload
// fields is set, matching Kind.
type JSONReport struct {
	Kind  string       `json:"kind"`
	Moves *MovesReport `json:"moves,omitempty"`
	Play  *PlayReport  `json:"play,omitempty"`
	Perft *JSONPerft   `json:"perft,omitempty"`
}

// JSONPerft represents a perft run in JSON format.
type JSONPerft struct {
	FEN        string                `json:"fen"`
	Depth      int                   `json:"depth"`
	Nodes      uint64                `json:"nodes"`
	Divide     map[string]uint64     `json:"divide,omitempty"`
	Oracles    []string              `json:"oracles,omitempty"`
	Mismatches []crosscheck.Mismatch `json:"mismatches,omitempty"`
}

// JSONOutput holds multiple reports for array output.
type JSONOutput struct {
	Reports []interface{} `json:"reports"`
}

// PerftToJSON converts a perft report. The divide is included only when
// cfg.Perft.Divide is set.
func PerftToJSON(r *crosscheck.Report, cfg *config.Config) *JSONReport {
	jp := &JSONPerft{
		FEN:        r.FEN,
		Depth:      r.Depth,
		Nodes:      r.Nodes,
		Oracles:    r.Oracles,
		Mismatches: r.Mismatches,
	}
	if cfg.Perft.Divide {
		jp.Divide = r.Divide
	}
	return &JSONReport{Kind: KindPerft, Perft: jp}
}
