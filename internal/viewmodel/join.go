// Package viewmodel implements the client-side list machinery behind every
// table in the dashboard: joining a primary collection with per-item
// secondary lookups, paging over the result, and the in-place mutations
// the edit modal applies after a save or delete.
package viewmodel

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// DefaultJoinLimit bounds how many secondary lookups run at once.
const DefaultJoinLimit = 8

// Join resolves one secondary lookup per primary record, concurrently and
// bounded by limit. Failures are isolated per item: a lookup error
// (including not-found) leaves the zero S at that index and never aborts
// the batch. The result is index-aligned with primary, so the caller's row
// order is preserved regardless of completion order. The second return is
// the number of lookups that were defaulted.
func Join[P, S any](ctx context.Context, primary []P, lookup func(context.Context, P) (S, error), limit int) ([]S, int) {
	out := make([]S, len(primary))
	if len(primary) == 0 || lookup == nil {
		return out, 0
	}
	if limit <= 0 {
		limit = DefaultJoinLimit
	}

	failed := make([]bool, len(primary))

	var g errgroup.Group
	g.SetLimit(limit)
	for i, p := range primary {
		i, p := i, p
		g.Go(func() error {
			s, err := lookup(ctx, p)
			if err != nil {
				failed[i] = true
				return nil
			}
			out[i] = s
			return nil
		})
	}
	// Workers never return errors; Wait is only a barrier.
	_ = g.Wait()

	n := 0
	for _, f := range failed {
		if f {
			n++
		}
	}
	return out, n
}

// CountByKey returns, for each row, how many rows in the given set share
// its key. This backs the sales "quantity" column: the remote has no
// quantity field, so the existing system counts duplicate product names
// within the currently loaded set. It is a duplicate count over in-memory
// data, not inventory, and must be recomputed whenever the set changes.
func CountByKey[R any](rows []R, key func(R) string) []int {
	counts := make(map[string]int, len(rows))
	for _, r := range rows {
		counts[key(r)]++
	}
	out := make([]int, len(rows))
	for i, r := range rows {
		out[i] = counts[key(r)]
	}
	return out
}
