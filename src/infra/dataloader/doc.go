// Package dataloader coalesces single-key lookups into batched fetches.
//
// A Loader collects the keys requested by concurrent callers (typically
// GraphQL field resolvers walking a list of parent objects), issues one
// fetch per batch, caches the result for every key and releases all
// waiters at once. Keys with no data resolve to the loader's empty value
// and are cached; a failed fetch is delivered to every waiter of the
// batch and leaves the cache untouched so a later Load can retry.
//
// A Loader caches for its whole lifetime with no eviction. Create one per
// incoming request and drop it when the request finishes.
//
// Example:
//
//	questions := dataloader.NewGroupLoader(
//	    repo.ListQuestionsByBandIDs,
//	    func(q domain.Question) uuid.UUID { return q.BandID },
//	    dataloader.Config{MaxBatch: 100, YieldCount: 100},
//	)
//	qs, err := questions.Load(ctx, band.ID)
package dataloader
