// Package output renders move lists, played games and perft results as
// text or JSON.
package output

import (
	"fmt"
	"io"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
)

// OutputWriter handles formatted output with line length control.
type OutputWriter struct {
	w             io.Writer
	lineLength    int
	maxLineLength int
	needsSpace    bool
}

// NewOutputWriter creates a new output writer.
func NewOutputWriter(w io.Writer, maxLineLength int) *OutputWriter {
	if maxLineLength <= 0 {
		maxLineLength = 80
	}
	return &OutputWriter{
		w:             w,
		maxLineLength: maxLineLength,
	}
}

// Write writes a string, adding a space separator if needed.
func (o *OutputWriter) Write(s string) {
	if o.needsSpace && len(s) > 0 {
		// Check if we need a new line
		if o.lineLength+1+len(s) > o.maxLineLength {
			fmt.Fprintln(o.w)
			o.lineLength = 0
			o.needsSpace = false
		} else {
			fmt.Fprint(o.w, " ")
			o.lineLength++
		}
	}

	fmt.Fprint(o.w, s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// WriteNoSpace writes without adding a leading space.
func (o *OutputWriter) WriteNoSpace(s string) {
	fmt.Fprint(o.w, s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// NewLine starts a new line unless the current line is empty.
func (o *OutputWriter) NewLine() {
	if o.lineLength == 0 {
		return
	}
	fmt.Fprintln(o.w)
	o.lineLength = 0
	o.needsSpace = false
}

// WriteBoard draws the position with rank 8 at the top, White in
// uppercase and empty squares as dots.
func WriteBoard(w io.Writer, p *engine.Position) {
	for row := 0; row < chess.BoardSize; row++ {
		line := make([]byte, 0, 2*chess.BoardSize+2)
		line = append(line, byte('8'-row), ' ')
		for file := 0; file < chess.BoardSize; file++ {
			if file > 0 {
				line = append(line, ' ')
			}
			line = append(line, p.PieceAt(chess.NewSquare(file, row)).Char())
		}
		fmt.Fprintln(w, string(line))
	}
	fmt.Fprintln(w, "  a b c d e f g h")
}

// describeStatus names the state of the position for display.
func describeStatus(state chess.GameState, inCheck bool, p *engine.Position) string {
	switch {
	case state == chess.InProgress && inCheck:
		return "check"
	case state == chess.InProgress:
		return "in-progress"
	case state != chess.Drawn:
		return "checkmate"
	case stalemated(p):
		return "stalemate"
	default:
		return "fifty-move rule"
	}
}

func stalemated(p *engine.Position) bool {
	ok, err := p.IsStalemate()
	return err == nil && ok
}
