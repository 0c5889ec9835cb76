package pulse

import lru "github.com/hashicorp/golang-lru/v2"

// variants holds the most recently used values built for a key. Values
// pushed out of the cache, or purged, are handed to free.
type variants[K comparable, V any] struct {
	cache *lru.Cache[K, V]
}

func newVariants[K comparable, V any](size int, free func(V)) *variants[K, V] {
	// only fails for a non-positive size
	cache, err := lru.NewWithEvict[K, V](size, func(_ K, value V) { free(value) })
	if err != nil {
		panic(err)
	}

	return &variants[K, V]{cache: cache}
}

// get returns the value for key and calls build on a miss.
// A failed build is not remembered.
func (v *variants[K, V]) get(key K, build func(K) (V, error)) (V, error) {
	if value, ok := v.cache.Get(key); ok {
		return value, nil
	}

	value, err := build(key)
	if err != nil {
		return value, err
	}

	v.cache.Add(key, value)

	return value, nil
}

func (v *variants[K, V]) len() int {
	return v.cache.Len()
}

func (v *variants[K, V]) purge() {
	v.cache.Purge()
}
