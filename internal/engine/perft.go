package engine

// Perft counts the leaf nodes of the legal move tree to the given depth.
// Each promotion piece counts as a separate move. Game state is not
// consulted, so counting continues through positions a game would end in.
func Perft(p *Position, depth int) (uint64, error) {
	if depth <= 0 {
		return 1, nil
	}
	choices, err := p.LegalMoveChoices()
	if err != nil {
		return 0, err
	}
	if depth == 1 {
		return uint64(len(choices)), nil
	}

	var nodes uint64
	for _, c := range choices {
		n, err := Perft(p.Successor(c), depth-1)
		if err != nil {
			return 0, err
		}
		nodes += n
	}
	return nodes, nil
}

// Divide returns the perft count below each root move, keyed by the move
// in coordinate notation.
func Divide(p *Position, depth int) (map[string]uint64, error) {
	result := make(map[string]uint64)
	if depth <= 0 {
		return result, nil
	}
	choices, err := p.LegalMoveChoices()
	if err != nil {
		return nil, err
	}
	for _, c := range choices {
		n, err := Perft(p.Successor(c), depth-1)
		if err != nil {
			return nil, err
		}
		result[c.String()] = n
	}
	return result, nil
}

// Successor returns a copy of the position with the choice played. The
// choice is assumed legal and the game state of the copy is not updated.
func (p *Position) Successor(c MoveChoice) *Position {
	next := p.Clone()
	next.play(c.Move, c.Promotion)
	return next
}
