// Package worker fans independent subtree counts out to a fixed number of
// goroutines.
package worker

import (
	"context"
	"runtime"
	"sync"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// Subtree is the position reached by playing Move from a root, to be
// searched Depth plies further. Each Subtree owns its board.
type Subtree struct {
	Board chess.Board
	Move  chess.Move
	Depth int
}

// Count is the outcome of one Subtree.
type Count struct {
	Move  chess.Move
	Nodes uint64
	Err   error
}

// CountFunc counts one subtree. It should return early once ctx is done.
type CountFunc func(ctx context.Context, st Subtree) Count

// Pool runs a CountFunc over batches of subtrees.
type Pool struct {
	workers int
	count   CountFunc
}

// Option configures a Pool.
type Option func(*Pool)

// WithWorkers sets the number of goroutines. Values below 1 keep the
// default of one per CPU.
func WithWorkers(n int) Option {
	return func(p *Pool) {
		if n >= 1 {
			p.workers = n
		}
	}
}

// New creates a pool around count.
func New(count CountFunc, opts ...Option) *Pool {
	p := &Pool{
		workers: runtime.NumCPU(),
		count:   count,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run counts every subtree and returns the counts indexed like items.
// Subtrees not started when ctx is done are skipped, running ones see the
// cancelled ctx, and Run returns ctx.Err().
func (p *Pool) Run(ctx context.Context, items []Subtree) ([]Count, error) {
	counts := make([]Count, len(items))
	jobs := make(chan int)

	var wg sync.WaitGroup
	for w := 0; w < p.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				counts[i] = p.count(ctx, items[i])
			}
		}()
	}

feed:
	for i := range items {
		select {
		case <-ctx.Done():
			break feed
		case jobs <- i:
		}
	}
	close(jobs)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return counts, nil
}
