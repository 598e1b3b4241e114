package reconcile

import (
	"context"
	"fmt"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// ApplyPlan executes the create actions in a plan.
// Returns the number of actions executed and the first error encountered.
// Requires opts.Confirmed=true and opts.DryRun=false to actually execute.
func ApplyPlan[T any](ctx context.Context, plan *Plan[T], creator Creator[T], opts Options) (int, error) {
	if !opts.Confirmed || opts.DryRun {
		return 0, nil
	}
	if plan == nil || len(plan.Actions) == 0 {
		return 0, nil
	}
	if creator == nil {
		return 0, fmt.Errorf("no creator configured for %d actions", len(plan.Actions))
	}

	limit := opts.Concurrency
	if limit <= 0 {
		limit = DefaultConcurrency
	}

	var executed atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for _, action := range plan.Actions {
		if action.Type != ActionCreate {
			continue
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if err := creator.Create(gctx, action.Item); err != nil {
				return fmt.Errorf("failed to create %s: %w", action.Key, err)
			}
			executed.Add(1)
			return nil
		})
	}

	err := g.Wait()
	return int(executed.Load()), err
}
