package worker

import (
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/hashing"
)

// PerftProcess counts the leaves below the item's position, through the
// item's cache when it has one.
func PerftProcess(item WorkItem) ProcessResult {
	var nodes uint64
	var err error
	if item.Cache != nil {
		nodes, err = hashing.Perft(item.Cache, item.Position, item.Depth)
	} else {
		nodes, err = engine.Perft(item.Position, item.Depth)
	}
	return ProcessResult{
		Choice: item.Choice,
		Index:  item.Index,
		Nodes:  nodes,
		Error:  err,
	}
}

// Divide is engine.Divide with the root moves spread over a worker pool.
// The first subtree error stops the pool and is returned.
func Divide(p *engine.Position, depth, workers int) (map[string]uint64, error) {
	return DivideCached(p, depth, workers, nil)
}

// DivideCached is Divide with the workers sharing a table of subtree
// counts. The table must be safe for concurrent use; nil disables it.
func DivideCached(p *engine.Position, depth, workers int, cache hashing.Table) (map[string]uint64, error) {
	result := make(map[string]uint64)
	if depth <= 0 {
		return result, nil
	}
	choices, err := p.LegalMoveChoices()
	if err != nil {
		return nil, err
	}

	items := make([]WorkItem, len(choices))
	for i, c := range choices {
		items[i] = WorkItem{
			Position: p.Successor(c),
			Choice:   c,
			Depth:    depth - 1,
			Index:    i,
			Cache:    cache,
		}
	}
	pool := NewPool(PerftProcess, WithWorkers(workers), WithBufferSize(len(items)))

	var firstErr error
	for r := range pool.Run(items) {
		if r.Error != nil {
			if firstErr == nil {
				firstErr = r.Error
				pool.Stop()
			}
			continue
		}
		result[r.Choice.String()] = r.Nodes
	}
	if firstErr != nil {
		return nil, firstErr
	}
	return result, nil
}

// Perft is engine.Perft computed through Divide.
func Perft(p *engine.Position, depth, workers int) (uint64, error) {
	if depth <= 0 {
		return 1, nil
	}
	div, err := Divide(p, depth, workers)
	if err != nil {
		return 0, err
	}
	var total uint64
	for _, n := range div {
		total += n
	}
	return total, nil
}
