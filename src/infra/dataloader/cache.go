package dataloader

// cache holds resolved values for the lifetime of a Loader. Access is
// guarded by the Loader's mutex.
type cache[K comparable, V any] struct {
	entries map[K]V
}

func newCache[K comparable, V any]() *cache[K, V] {
	return &cache[K, V]{entries: make(map[K]V)}
}

func (c *cache[K, V]) get(key K) (V, bool) {
	v, ok := c.entries[key]
	return v, ok
}

func (c *cache[K, V]) set(key K, value V) {
	c.entries[key] = value
}
