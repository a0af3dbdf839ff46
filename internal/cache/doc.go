// Package cache memoizes immutable values such as resampled spectral
// tables.
//
//	tables := cache.New[Key, []float64](64)
//	v := tables.GetOrCreate(key, func() []float64 { return compute(key) })
//
// Creation runs under the cache lock, so concurrent first requests for
// the same key compute the value exactly once. A soft limit bounds the
// number of entries; when it is exceeded the least recently used quarter
// is evicted.
//
// Cache is safe for concurrent use and must not be copied after creation.
package cache
