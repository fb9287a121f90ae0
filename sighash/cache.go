package sighash

// NewCache returns an empty, unpopulated sub-hash Cache.
func NewCache() *Cache {
	return &Cache{}
}

// Reset clears cache so the next SignatureHash call recomputes every
// sub-hash instead of reusing stale ones. Callers must call this after
// mutating any field of the transaction the cache was built against.
func (c *Cache) Reset() {
	*c = Cache{}
}
