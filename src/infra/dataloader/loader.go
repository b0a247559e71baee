package dataloader

import (
	"context"
	"log/slog"
	"runtime"
	"sync"
	"time"

	"github.com/hashicorp/go-multierror"
)

// Default batching limits.
const (
	DefaultMaxBatch   = 100
	DefaultYieldCount = 100
)

// FetchFunc loads the values for a set of distinct keys in one round trip.
// Keys without data are left out of the returned map.
type FetchFunc[K comparable, V any] func(ctx context.Context, keys []K) (map[K]V, error)

// Config controls when an open batch is dispatched.
type Config struct {
	// MaxBatch is the number of distinct keys that closes a batch immediately.
	// Zero means DefaultMaxBatch.
	MaxBatch int

	// YieldCount is how many times the dispatcher yields to the scheduler
	// before closing a batch that has not filled up. Zero means
	// DefaultYieldCount.
	YieldCount int

	// Wait is an extra collection window after the yields. Zero disables it.
	Wait time.Duration
}

func (c Config) withDefaults() Config {
	if c.MaxBatch == 0 {
		c.MaxBatch = DefaultMaxBatch
	}
	if c.YieldCount == 0 {
		c.YieldCount = DefaultYieldCount
	}
	return c
}

// Loader batches, deduplicates and caches lookups by key.
// It is safe for concurrent use by the goroutines serving one request.
type Loader[K comparable, V any] struct {
	fetch FetchFunc[K, V]
	cfg   Config
	empty func() V
	clone func(V) V
	log   *slog.Logger

	mu      sync.Mutex
	cache   *cache[K, V]
	open    *batch[K, V]
	pending map[K]*batch[K, V]
}

// New creates a Loader around fetch. It panics if fetch is nil or the
// configuration is negative.
func New[K comparable, V any](fetch FetchFunc[K, V], cfg Config) *Loader[K, V] {
	if fetch == nil {
		panic("dataloader: nil fetch func")
	}
	cfg = cfg.withDefaults()
	if cfg.MaxBatch < 1 || cfg.YieldCount < 0 || cfg.Wait < 0 {
		panic("dataloader: invalid config")
	}
	return &Loader[K, V]{
		fetch:   fetch,
		cfg:     cfg,
		empty:   func() V { var zero V; return zero },
		clone:   func(v V) V { return v },
		cache:   newCache[K, V](),
		pending: make(map[K]*batch[K, V]),
	}
}

// WithEmpty sets the value cached for keys the fetch returned nothing for.
func (l *Loader[K, V]) WithEmpty(fn func() V) *Loader[K, V] {
	l.empty = fn
	return l
}

// WithClone sets how a cached value is copied before it is handed out.
func (l *Loader[K, V]) WithClone(fn func(V) V) *Loader[K, V] {
	l.clone = fn
	return l
}

// WithLogger enables debug logging of batch dispatches.
func (l *Loader[K, V]) WithLogger(log *slog.Logger) *Loader[K, V] {
	l.log = log
	return l
}

// Load returns the value for key, joining the current batch if the key is
// not cached yet.
func (l *Loader[K, V]) Load(ctx context.Context, key K) (V, error) {
	return l.LoadThunk(ctx, key)()
}

// LoadThunk registers key right away and returns a function that blocks
// until its value is available. Registering several keys before calling
// any of the thunks puts them all in the same batch.
func (l *Loader[K, V]) LoadThunk(ctx context.Context, key K) func() (V, error) {
	l.mu.Lock()
	if v, ok := l.cache.get(key); ok {
		l.mu.Unlock()
		v = l.clone(v)
		return func() (V, error) { return v, nil }
	}

	b, ok := l.pending[key]
	if !ok {
		b = l.open
		if b == nil {
			b = newBatch[K, V](ctx)
			l.open = b
			go l.dispatch(b)
		}
		b.add(key)
		l.pending[key] = b
		if len(b.keys) >= l.cfg.MaxBatch {
			l.seal(b)
		}
	}
	l.mu.Unlock()

	return func() (V, error) {
		select {
		case <-b.done:
		case <-ctx.Done():
			var zero V
			return zero, ctx.Err()
		}
		if b.err != nil {
			var zero V
			return zero, b.err
		}
		return l.clone(b.results[key]), nil
	}
}

// LoadMany loads every key and returns the values in input order. Keys
// that failed are left at the zero value and their errors are combined.
func (l *Loader[K, V]) LoadMany(ctx context.Context, keys []K) ([]V, error) {
	thunks := make([]func() (V, error), len(keys))
	for i, key := range keys {
		thunks[i] = l.LoadThunk(ctx, key)
	}

	values := make([]V, len(keys))
	var g multierror.Group
	for i, thunk := range thunks {
		g.Go(func() error {
			v, err := thunk()
			if err != nil {
				return err
			}
			values[i] = v
			return nil
		})
	}
	return values, g.Wait().ErrorOrNil()
}

// Prime stores value for key unless the key is already cached or being
// fetched. It reports whether the value was stored.
func (l *Loader[K, V]) Prime(key K, value V) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.pending[key]; ok {
		return false
	}
	if _, ok := l.cache.get(key); ok {
		return false
	}
	l.cache.set(key, l.clone(value))
	return true
}

// seal moves b from open to dispatching. Must be called with l.mu held.
func (l *Loader[K, V]) seal(b *batch[K, V]) {
	if b.sealed {
		return
	}
	b.sealed = true
	if l.open == b {
		l.open = nil
	}
	close(b.full)
}

// dispatch runs once per batch: it waits for the batch to close, fetches
// its keys and resolves every waiter.
func (l *Loader[K, V]) dispatch(b *batch[K, V]) {
	l.collect(b)

	l.mu.Lock()
	l.seal(b)
	keys := b.keys
	l.mu.Unlock()

	if l.log != nil {
		l.log.Debug("dispatching batch", "keys", len(keys))
	}
	results, err := l.call(b.ctx, keys)

	l.mu.Lock()
	if err != nil {
		b.err = &FetchError{Keys: len(keys), Err: err}
	} else {
		b.results = make(map[K]V, len(keys))
		for _, key := range keys {
			v, ok := results[key]
			if !ok {
				v = l.empty()
			}
			l.cache.set(key, v)
			b.results[key] = v
		}
	}
	for _, key := range keys {
		delete(l.pending, key)
	}
	l.mu.Unlock()

	close(b.done)
}

// collect blocks until b is full or its yield budget and wait window are
// spent.
func (l *Loader[K, V]) collect(b *batch[K, V]) {
	for i := 0; i < l.cfg.YieldCount; i++ {
		select {
		case <-b.full:
			return
		default:
		}
		runtime.Gosched()
	}
	if l.cfg.Wait <= 0 {
		return
	}
	timer := time.NewTimer(l.cfg.Wait)
	defer timer.Stop()
	select {
	case <-b.full:
	case <-timer.C:
	}
}

// call invokes the fetch func, turning a panic into an error so waiters
// are always released.
func (l *Loader[K, V]) call(ctx context.Context, keys []K) (results map[K]V, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &panicError{value: r}
		}
	}()
	return l.fetch(ctx, keys)
}
