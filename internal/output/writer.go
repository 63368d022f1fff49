package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/crosscheck"
)

// ReportWriter is the interface for writing reports to output.
// Different implementations handle different output formats (text, JSON).
type ReportWriter interface {
	// WriteMoves writes a legal move listing.
	WriteMoves(r *MovesReport) error

	// WritePlay writes the outcome of playing a move sequence.
	WritePlay(r *PlayReport) error

	// WritePerft writes perft counts and any cross-check mismatches.
	WritePerft(r *crosscheck.Report) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close closes the writer and releases any resources.
	// For batch writers (like JSON), this also writes any pending output.
	Close() error
}

// NewWriter returns the writer selected by cfg.Output.Format.
func NewWriter(w io.Writer, cfg *config.Config) ReportWriter {
	if cfg.Output.Format == config.JSONFormat {
		return NewJSONWriter(w, cfg)
	}
	return NewTextWriter(w, cfg)
}

// TextWriter writes reports as plain text.
type TextWriter struct {
	w   io.Writer
	cfg *config.Config
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer, cfg *config.Config) *TextWriter {
	return &TextWriter{
		w:   w,
		cfg: cfg,
	}
}

// WriteMoves writes the position header followed by the wrapped move list.
func (tw *TextWriter) WriteMoves(r *MovesReport) error {
	fmt.Fprintf(tw.w, "FEN: %s\n", r.FEN)
	if tw.cfg.Output.ShowBoard && r.position != nil {
		WriteBoard(tw.w, r.position)
	}
	fmt.Fprintf(tw.w, "Turn: %s\n", r.Turn)
	fmt.Fprintf(tw.w, "Status: %s %s\n", r.Status, r.Result)

	if r.From != "" {
		fmt.Fprintf(tw.w, "Legal moves from %s (%d):\n", r.From, len(r.Moves))
	} else {
		fmt.Fprintf(tw.w, "Legal moves (%d):\n", len(r.Moves))
	}
	ow := NewOutputWriter(tw.w, int(tw.cfg.Output.MaxLineLength))
	for _, m := range r.Moves {
		ow.Write(m)
	}
	ow.NewLine()
	return nil
}

// WritePlay writes the moves with move numbers, then the final position.
func (tw *TextWriter) WritePlay(r *PlayReport) error {
	fmt.Fprintf(tw.w, "Start: %s\n", r.InitialFEN)

	ow := NewOutputWriter(tw.w, int(tw.cfg.Output.MaxLineLength))
	for i, m := range r.Moves {
		switch {
		case m.Color == "white":
			ow.Write(fmt.Sprintf("%d.", m.MoveNumber))
		case i == 0 || r.Moves[i-1].FEN != "":
			ow.Write(fmt.Sprintf("%d...", m.MoveNumber))
		}
		ow.Write(m.Move)
		if m.FEN != "" {
			ow.Write("{" + m.FEN + "}")
			ow.NewLine()
		}
	}
	if r.Error == "" {
		ow.Write(r.Result)
	}
	ow.NewLine()

	if r.Error != "" {
		fmt.Fprintf(tw.w, "Stopped: %s\n", r.Error)
	}
	fmt.Fprintf(tw.w, "Final: %s\n", r.FinalFEN)
	if tw.cfg.Output.ShowBoard && r.position != nil {
		WriteBoard(tw.w, r.position)
	}
	fmt.Fprintf(tw.w, "Status: %s %s\n", r.Status, r.Result)
	fmt.Fprintf(tw.w, "Material: %+d\n", r.Material)
	if len(r.Features) > 0 {
		fmt.Fprintf(tw.w, "Features: %s\n", strings.Join(r.Features, ", "))
	}
	return nil
}

// WritePerft writes the node count, the divide when configured, and the
// cross-check verdict.
func (tw *TextWriter) WritePerft(r *crosscheck.Report) error {
	fmt.Fprintf(tw.w, "FEN: %s\n", r.FEN)
	if tw.cfg.Perft.Divide {
		moves := maps.Keys(r.Divide)
		slices.Sort(moves)
		for _, m := range moves {
			fmt.Fprintf(tw.w, "%s: %d\n", m, r.Divide[m])
		}
	}
	fmt.Fprintf(tw.w, "Depth %d: %d nodes\n", r.Depth, r.Nodes)

	if len(r.Oracles) == 0 {
		return nil
	}
	if r.OK() {
		fmt.Fprintf(tw.w, "Cross-check (%s): ok\n", strings.Join(r.Oracles, ", "))
		return nil
	}
	fmt.Fprintf(tw.w, "Cross-check (%s): %d mismatches\n", strings.Join(r.Oracles, ", "), len(r.Mismatches))
	for _, m := range r.Mismatches {
		fmt.Fprintf(tw.w, "  %s\n", m)
	}
	return nil
}

// Flush flushes the text writer (no-op as it writes immediately).
func (tw *TextWriter) Flush() error {
	return nil
}

// Close closes the text writer.
func (tw *TextWriter) Close() error {
	return nil
}

// JSONWriter writes reports in JSON format.
// It buffers reports and writes them as a JSON array on Close or Flush.
type JSONWriter struct {
	w       io.Writer
	cfg     *config.Config
	reports []interface{}
	single  bool // If true, write each report immediately instead of batching
}

// NewJSONWriter creates a new JSON writer.
// By default, it batches reports and writes them as an array on Close().
func NewJSONWriter(w io.Writer, cfg *config.Config) *JSONWriter {
	return &JSONWriter{
		w:       w,
		cfg:     cfg,
		reports: make([]interface{}, 0),
	}
}

// NewJSONWriterSingle creates a JSON writer that writes each report immediately.
func NewJSONWriterSingle(w io.Writer, cfg *config.Config) *JSONWriter {
	return &JSONWriter{
		w:      w,
		cfg:    cfg,
		single: true,
	}
}

// WriteMoves buffers a moves report (or writes it in single mode).
func (jw *JSONWriter) WriteMoves(r *MovesReport) error {
	return jw.write(&JSONReport{Kind: KindMoves, Moves: r})
}

// WritePlay buffers a play report (or writes it in single mode).
func (jw *JSONWriter) WritePlay(r *PlayReport) error {
	return jw.write(&JSONReport{Kind: KindPlay, Play: r})
}

// WritePerft buffers a perft report (or writes it in single mode).
func (jw *JSONWriter) WritePerft(r *crosscheck.Report) error {
	return jw.write(PerftToJSON(r, jw.cfg))
}

func (jw *JSONWriter) write(report interface{}) error {
	if jw.single {
		enc := json.NewEncoder(jw.w)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}

	// Buffer for batch output
	jw.reports = append(jw.reports, report)
	return nil
}

// Flush writes all buffered reports as a JSON array.
func (jw *JSONWriter) Flush() error {
	if jw.single || len(jw.reports) == 0 {
		return nil
	}

	enc := json.NewEncoder(jw.w)
	enc.SetIndent("", "  ")
	err := enc.Encode(&JSONOutput{Reports: jw.reports})

	// Clear buffer after writing
	jw.reports = jw.reports[:0]

	return err
}

// Close flushes and closes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}
