package dataloader

import "context"

// batch is the set of distinct keys collected between two dispatches.
//
// Lifecycle: open (accepting keys) -> sealed (dispatching, no key may
// join) -> done (results or err published, waiters released).
type batch[K comparable, V any] struct {
	ctx    context.Context
	keys   []K
	sealed bool

	full chan struct{}
	done chan struct{}

	// written by the dispatcher before done is closed
	results map[K]V
	err     error
}

// newBatch detaches the fetch context from the caller that opened the
// batch, so that caller going away does not cancel the fetch for others.
func newBatch[K comparable, V any](ctx context.Context) *batch[K, V] {
	return &batch[K, V]{
		ctx:  context.WithoutCancel(ctx),
		full: make(chan struct{}),
		done: make(chan struct{}),
	}
}

func (b *batch[K, V]) add(key K) {
	b.keys = append(b.keys, key)
}
