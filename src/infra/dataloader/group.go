package dataloader

import (
	"context"
	"slices"
)

// GroupBy buckets rows by the key keyOf returns, keeping the rows' order
// within each bucket. It always returns a fresh map.
func GroupBy[K comparable, R any](rows []R, keyOf func(R) K) map[K][]R {
	grouped := make(map[K][]R)
	for _, row := range rows {
		k := keyOf(row)
		grouped[k] = append(grouped[k], row)
	}
	return grouped
}

// Grouped turns a query returning rows for a set of foreign keys into a
// FetchFunc for a one-to-many loader.
func Grouped[K comparable, R any](query func(ctx context.Context, keys []K) ([]R, error), keyOf func(R) K) FetchFunc[K, []R] {
	return func(ctx context.Context, keys []K) (map[K][]R, error) {
		rows, err := query(ctx, keys)
		if err != nil {
			return nil, err
		}
		return GroupBy(rows, keyOf), nil
	}
}

// Indexed turns a query returning rows by primary key into a FetchFunc
// for a one-to-one loader. Later duplicates win.
func Indexed[K comparable, R any](query func(ctx context.Context, keys []K) ([]R, error), keyOf func(R) K) FetchFunc[K, *R] {
	return func(ctx context.Context, keys []K) (map[K]*R, error) {
		rows, err := query(ctx, keys)
		if err != nil {
			return nil, err
		}
		indexed := make(map[K]*R, len(rows))
		for i := range rows {
			indexed[keyOf(rows[i])] = &rows[i]
		}
		return indexed, nil
	}
}

// NewGroupLoader builds a loader resolving each key to all rows carrying
// it. Keys without rows resolve to an empty, non-nil slice and every
// caller gets its own copy of the cached slice.
func NewGroupLoader[K comparable, R any](query func(ctx context.Context, keys []K) ([]R, error), keyOf func(R) K, cfg Config) *Loader[K, []R] {
	return New(Grouped(query, keyOf), cfg).
		WithEmpty(func() []R { return []R{} }).
		WithClone(func(rows []R) []R { return slices.Clone(rows) })
}

// NewIndexLoader builds a loader resolving each key to at most one row.
// Keys without a row resolve to nil. Callers get a shallow copy of the row.
func NewIndexLoader[K comparable, R any](query func(ctx context.Context, keys []K) ([]R, error), keyOf func(R) K, cfg Config) *Loader[K, *R] {
	return New(Indexed(query, keyOf), cfg).
		WithClone(func(row *R) *R {
			if row == nil {
				return nil
			}
			c := *row
			return &c
		})
}
