// Package worker provides a worker pool for counting perft subtrees in
// parallel.
package worker

import (
	"sync"
	"sync/atomic"

	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/hashing"
)

// WorkItem is one root move whose subtree is to be counted.
type WorkItem struct {
	Position *engine.Position  // Position after Choice was played
	Choice   engine.MoveChoice // Root move that led to Position
	Depth    int               // Remaining depth below Position
	Index    int               // Original index for tracking
	Cache    hashing.Table     // Shared subtree counts, or nil
}

// ProcessResult is the node count of one subtree.
type ProcessResult struct {
	Choice engine.MoveChoice
	Index  int
	Nodes  uint64
	Error  error
}

// ProcessFunc counts one work item.
type ProcessFunc func(item WorkItem) ProcessResult

// Pool fans work items out to a fixed set of goroutines.
type Pool struct {
	numWorkers int
	bufferSize int
	process    ProcessFunc

	work    chan WorkItem
	results chan ProcessResult
	wg      sync.WaitGroup

	stopped atomic.Bool
	skipped atomic.Int64
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithWorkers sets the number of worker goroutines. Values below 1 are ignored.
func WithWorkers(n int) PoolOption {
	return func(p *Pool) {
		if n >= 1 {
			p.numWorkers = n
		}
	}
}

// WithBufferSize sets the capacity of the work and result channels.
// Values below 1 are ignored.
func WithBufferSize(size int) PoolOption {
	return func(p *Pool) {
		if size >= 1 {
			p.bufferSize = size
		}
	}
}

// NewPool creates a pool running process.
// Default: 1 worker, buffer size of 10.
func NewPool(process ProcessFunc, opts ...PoolOption) *Pool {
	p := &Pool{
		numWorkers: 1,
		bufferSize: 10,
		process:    process,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.work = make(chan WorkItem, p.bufferSize)
	p.results = make(chan ProcessResult, p.bufferSize)
	return p
}

// Start launches the workers.
func (p *Pool) Start() {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

func (p *Pool) worker() {
	defer p.wg.Done()
	for item := range p.work {
		if p.stopped.Load() {
			p.skipped.Add(1)
			continue
		}
		p.results <- p.process(item)
	}
}

// Submit queues an item, blocking while the buffer is full.
func (p *Pool) Submit(item WorkItem) {
	p.work <- item
}

// Run starts the workers, submits items from a separate goroutine and
// closes the pool once they are all queued. The caller drains Results.
func (p *Pool) Run(items []WorkItem) <-chan ProcessResult {
	p.Start()
	go func() {
		for _, item := range items {
			p.Submit(item)
		}
		p.Close()
	}()
	return p.results
}

// Stop makes workers discard items they have not started.
func (p *Pool) Stop() {
	p.stopped.Store(true)
}

// Stopped reports whether Stop has been called.
func (p *Pool) Stopped() bool {
	return p.stopped.Load()
}

// Skipped returns how many items were discarded after Stop.
func (p *Pool) Skipped() int {
	return int(p.skipped.Load())
}

// Close ends submission, waits for the workers, then closes Results.
func (p *Pool) Close() {
	close(p.work)
	p.wg.Wait()
	close(p.results)
}

// Results returns the channel of finished items.
func (p *Pool) Results() <-chan ProcessResult {
	return p.results
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}
