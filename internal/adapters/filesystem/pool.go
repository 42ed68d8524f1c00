package filesystem

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Pool bounds how many tasks run at once
type Pool struct {
	workers int
}

// NewPool creates a pool of the given size; sizes below 1 become 1
func NewPool(workers int) *Pool {
	if workers < 1 {
		workers = 1
	}
	return &Pool{workers: workers}
}

// Workers returns the pool size
func (p *Pool) Workers() int {
	return p.workers
}

type indexed[R any] struct {
	i int
	r R
}

// Run calls fn for every index in [0, n) on at most p.Workers() goroutines
// and blocks until all dispatched calls return. Results travel back over a
// channel and are returned in index order. Once ctx is done no further
// indices are dispatched; those slots hold skip(i).
func Run[R any](ctx context.Context, p *Pool, n int, fn func(i int) R, skip func(i int) R) []R {
	results := make(chan indexed[R], n)

	var g errgroup.Group
	g.SetLimit(p.workers)

	for i := 0; i < n; i++ {
		if ctx.Err() != nil {
			break
		}
		g.Go(func() error {
			results <- indexed[R]{i: i, r: fn(i)}
			return nil
		})
	}
	_ = g.Wait()
	close(results)

	out := make([]R, n)
	done := make([]bool, n)
	for res := range results {
		out[res.i] = res.r
		done[res.i] = true
	}
	for i := range out {
		if !done[i] {
			out[i] = skip(i)
		}
	}
	return out
}
