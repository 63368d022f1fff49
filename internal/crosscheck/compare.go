package crosscheck

import (
	"fmt"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/worker"
)

// Mismatch is a root move on which the engine and an oracle disagree.
// A move one side does not generate has a zero count on that side.
type Mismatch struct {
	Oracle    string `json:"oracle"`
	Move      string `json:"move"`
	Engine    uint64 `json:"engine"`
	Reference uint64 `json:"reference"`
}

func (m Mismatch) String() string {
	return fmt.Sprintf("%s %s: engine %d, %s %d", m.Oracle, m.Move, m.Engine, m.Oracle, m.Reference)
}

// Report is the outcome of comparing one position at one depth.
type Report struct {
	FEN        string            `json:"fen"`
	Depth      int               `json:"depth"`
	Divide     map[string]uint64 `json:"divide"`
	Nodes      uint64            `json:"nodes"`
	Oracles    []string          `json:"oracles"`
	Mismatches []Mismatch        `json:"mismatches,omitempty"`
}

// OK reports whether every oracle agreed with the engine.
func (r *Report) OK() bool {
	return len(r.Mismatches) == 0
}

// Err returns nil when the report is clean, otherwise an error wrapping
// ErrOracleMismatch that lists the disagreements.
func (r *Report) Err() error {
	if r.OK() {
		return nil
	}
	lines := make([]string, len(r.Mismatches))
	for i, m := range r.Mismatches {
		lines[i] = m.String()
	}
	return fmt.Errorf("%s at depth %d: %s: %w",
		r.FEN, r.Depth, strings.Join(lines, "; "), errors.ErrOracleMismatch)
}

// Compare divides p with the engine, spread over the given number of
// workers, and checks every root count against each oracle.
func Compare(p *engine.Position, depth, workers int, oracles ...Oracle) (*Report, error) {
	div, err := worker.Divide(p, depth, workers)
	if err != nil {
		return nil, err
	}
	return CompareDivide(p, depth, div, oracles...)
}

// CompareDivide checks an engine divide of p that was already computed.
func CompareDivide(p *engine.Position, depth int, div map[string]uint64, oracles ...Oracle) (*Report, error) {
	fen := p.FEN()

	report := &Report{
		FEN:    fen,
		Depth:  depth,
		Divide: div,
		Nodes:  sum(div),
	}
	if depth <= 0 {
		report.Nodes = 1
	}

	for _, o := range oracles {
		report.Oracles = append(report.Oracles, o.Name())
		ref, err := o.Divide(fen, depth)
		if err != nil {
			return nil, fmt.Errorf("oracle %s: %w", o.Name(), err)
		}
		report.Mismatches = append(report.Mismatches, diff(o.Name(), div, ref)...)
	}
	return report, nil
}

// diff lists the moves whose counts differ, sorted by move.
func diff(oracle string, got, want map[string]uint64) []Mismatch {
	keys := append(maps.Keys(got), maps.Keys(want)...)
	slices.Sort(keys)
	keys = slices.Compact(keys)

	var out []Mismatch
	for _, k := range keys {
		if got[k] != want[k] {
			out = append(out, Mismatch{Oracle: oracle, Move: k, Engine: got[k], Reference: want[k]})
		}
	}
	return out
}

func sum(div map[string]uint64) uint64 {
	var total uint64
	for _, n := range div {
		total += n
	}
	return total
}
