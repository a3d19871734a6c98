// Package batch aligns many independent sequence pairs concurrently. Each
// pair gets its own matrix, so the only shared state is the read-only
// Aligner.
package batch

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"cloudeng.io/errors"
	"cloudeng.io/logging/ctxlog"
	"cloudeng.io/sync/errgroup"

	"NW-Sequence-Alignments/nw_aligner/aligner"
	"NW-Sequence-Alignments/nw_aligner/common"
)

// Outcome is the result of aligning one pair. Err is set, and Result is
// zero, when the pair could not be aligned.
type Outcome struct {
	Pair   common.Pair
	Result aligner.Result[byte]
	Err    error
}

// Align aligns every pair with al using at most workers goroutines
// (GOMAXPROCS when workers is 0). Outcomes are returned in input order.
// Per-pair failures are recorded in the Outcome and also collected into the
// returned error; cancelling ctx stops pairs that have not started yet.
func Align(ctx context.Context, al *aligner.Aligner[byte], pairs []common.Pair, workers int) ([]Outcome, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	workers = min(workers, max(len(pairs), 1))
	logger := ctxlog.Logger(ctx)
	logger.Debug("batch started", "pairs", len(pairs), "workers", workers)

	outcomes := make([]Outcome, len(pairs))
	// A zero T runs every goroutine to completion and collects all errors.
	var g errgroup.T
	sem := make(chan struct{}, workers)
	start := time.Now()
	var cancelled error

	for idx := range pairs {
		if cancelled = acquire(ctx, sem); cancelled != nil {
			for rest := idx; rest < len(pairs); rest++ {
				outcomes[rest] = Outcome{Pair: pairs[rest], Err: cancelled}
			}
			break
		}
		g.Go(func() error {
			defer func() { <-sem }()
			outcomes[idx] = alignOne(ctx, al, pairs[idx])
			return outcomes[idx].Err
		})
	}
	err := g.Wait()
	logger.Debug("batch finished", "pairs", len(pairs), "elapsed", time.Since(start))
	if cancelled != nil {
		return outcomes, errors.NewM(err, cancelled)
	}
	return outcomes, err
}

// acquire takes a worker slot, or returns the context error if ctx is done
// first. An already cancelled ctx never takes a slot.
func acquire(ctx context.Context, sem chan<- struct{}) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case sem <- struct{}{}:
		return nil
	}
}

func alignOne(ctx context.Context, al *aligner.Aligner[byte], p common.Pair) Outcome {
	res, err := al.Align(p.Query, p.Ref)
	if err != nil {
		return Outcome{Pair: p, Err: fmt.Errorf("%s: %w", p.ID, err)}
	}
	ctxlog.Logger(ctx).Debug("aligned", "id", p.ID, "query_len", len(p.Query), "ref_len", len(p.Ref), "score", res.Score)
	return Outcome{Pair: p, Result: res}
}
