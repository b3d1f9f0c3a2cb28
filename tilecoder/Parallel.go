package tilecoder

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// parallelThreshold is the smallest batch that is split between
// goroutines
const parallelThreshold = 256

// cancelCheckEvery is the number of rows processed between checks of
// the context
const cancelCheckEvery = 64

// rowFunc processes row i of a batch. The scratch slice has Dims()
// elements and is owned by the calling goroutine.
type rowFunc func(i int, scratch []int) error

// forEachRow calls fn for each of n rows. Large batches are split into
// contiguous chunks which are processed concurrently by at most
// t.workers goroutines. The first error returned by fn, or the
// context's error if it is cancelled, is returned.
func (t *TileCoder) forEachRow(ctx context.Context, n int, fn rowFunc) error {
	if t.workers <= 1 || n < parallelThreshold {
		return t.rows(ctx, 0, n, fn)
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(t.workers)

	chunk := (n + t.workers - 1) / t.workers
	for start := 0; start < n; start += chunk {
		start, stop := start, min(start+chunk, n)
		g.Go(func() error {
			return t.rows(ctx, start, stop, fn)
		})
	}
	return g.Wait()
}

// rows calls fn for rows [start, stop) in order
func (t *TileCoder) rows(ctx context.Context, start, stop int,
	fn rowFunc) error {
	scratch := make([]int, t.Dims())
	for i := start; i < stop; i++ {
		if (i-start)%cancelCheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		if err := fn(i, scratch); err != nil {
			return fmt.Errorf("row %d: %w", i, err)
		}
	}
	return nil
}
