// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// concurrencyLimit normalizes a configured fan-out cap.
func concurrencyLimit(limit int) int {
	if limit < 1 {
		return 1
	}

	return limit
}

// mapAll calls fn for every item with at most limit calls in flight and returns the results
// in input order. The first failure cancels the calls still running and is returned.
func mapAll[T, R any](ctx context.Context, limit int, items []T, fn func(context.Context, T) (R, error)) ([]R, error) {
	results := make([]R, len(items))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrencyLimit(limit))

	for i, item := range items {
		g.Go(func() error {
			result, err := fn(gctx, item)
			if err != nil {
				return err
			}
			results[i] = result

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

// settledMap calls fn for every item with at most limit calls in flight and returns the results
// in input order. fn cannot fail, so one item never cancels another.
func settledMap[T, R any](ctx context.Context, limit int, items []T, fn func(context.Context, T) R) []R {
	results := make([]R, len(items))

	var g errgroup.Group
	g.SetLimit(concurrencyLimit(limit))

	for i, item := range items {
		g.Go(func() error {
			results[i] = fn(ctx, item)

			return nil
		})
	}

	_ = g.Wait()

	return results
}

// flatten concatenates the parts in order.
func flatten[T any](parts [][]T) []T {
	total := 0
	for _, part := range parts {
		total += len(part)
	}

	flat := make([]T, 0, total)
	for _, part := range parts {
		flat = append(flat, part...)
	}

	return flat
}

// firstN returns at most n leading items.
func firstN[T any](items []T, n int) []T {
	if len(items) <= n {
		return items
	}

	return items[:n]
}
