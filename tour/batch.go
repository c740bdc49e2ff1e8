// SPDX-License-Identifier: MIT
// Package tour: concurrent batch evaluation.

package tour

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// CostAll scores every tour concurrently with at most workers goroutines
// (workers <= 0 means GOMAXPROCS). Results are index-aligned with tours.
//
// The first failing tour cancels the remaining work; its error is returned
// wrapped with the tour index. Cancelling ctx stops scheduling new tours and
// returns ctx.Err().
func (e *Evaluator) CostAll(ctx context.Context, tours [][]int, workers int) ([]float64, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	out := make([]float64, len(tours))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	var i int
	for i = range tours {
		if gctx.Err() != nil {
			break
		}
		idx := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			c, err := e.Cost(tours[idx])
			if err != nil {
				return fmt.Errorf("tour %d: %w", idx, err)
			}
			out[idx] = c
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
