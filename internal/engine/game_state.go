package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// Status evaluates the game state of the position as it stands: a side
// to move without legal moves is checkmated when in check and stalemated
// otherwise; a halfmove clock at the fifty-move limit is a draw.
// Checkmate takes precedence over the fifty-move draw.
func (p *Position) Status() (chess.GameState, error) {
	hasMoves, err := p.HasLegalMoves()
	if err != nil {
		return chess.InProgress, err
	}
	if !hasMoves {
		inCheck, err := p.InCheck()
		if err != nil {
			return chess.InProgress, err
		}
		if inCheck {
			return chess.WinFor(p.turn.Opposite()), nil
		}
		return chess.Drawn, nil
	}
	if p.FiftyMoveDrawAvailable() {
		return chess.Drawn, nil
	}
	return chess.InProgress, nil
}

// IsCheckmate returns true if the side to move is checkmated.
func (p *Position) IsCheckmate() (bool, error) {
	inCheck, err := p.InCheck()
	if err != nil || !inCheck {
		return false, err
	}
	hasMoves, err := p.HasLegalMoves()
	if err != nil {
		return false, err
	}
	return !hasMoves, nil
}

// IsStalemate returns true if the side to move is stalemated.
func (p *Position) IsStalemate() (bool, error) {
	inCheck, err := p.InCheck()
	if err != nil || inCheck {
		return false, err
	}
	hasMoves, err := p.HasLegalMoves()
	if err != nil {
		return false, err
	}
	return !hasMoves, nil
}
