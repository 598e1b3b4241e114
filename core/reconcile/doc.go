// Package reconcile computes which keyed items from a freshly parsed source are not yet
// known to the backend, and applies the resulting plan.
//
// Reconciliation is a plain set difference: every key of the source that is absent from
// the caller's existing key set becomes a planned create action, everything else is
// counted as skipped. The existing set is never mutated.
//
// # Components
//
//  1. Engine: Reconcile walks a Source in its natural order and builds a Plan with
//     aggregate Stats (total, added, skipped).
//
//  2. Apply: ApplyPlan executes the planned creates through a Creator, honoring
//     dry-run and confirmation, with bounded concurrency.
//
//  3. Cache: KeyCache keeps existing key sets per scope (e.g. language) with a TTL and
//     collapses concurrent loads with singleflight.
//
// # Usage Example
//
//	plan := reconcile.Reconcile(parsed, existing, func(key, value string) Entry {
//	    return Entry{Key: key, Value: value}
//	})
//	fmt.Println(plan.Stats.Added, plan.Stats.Skipped)
//
//	executed, err := reconcile.ApplyPlan(ctx, plan, creator, reconcile.Options{Confirmed: true})
package reconcile
