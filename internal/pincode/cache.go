package pincode

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// DefaultCacheSize bounds the number of pincodes kept in memory.
const DefaultCacheSize = 256

// Cache keeps successful lookups in memory for a fixed TTL.
// A nil *Cache or one built with a non-positive TTL never stores anything.
type Cache struct {
	lru *expirable.LRU[string, Result]
}

// NewCache returns a cache holding up to DefaultCacheSize entries for ttl.
func NewCache(ttl time.Duration) *Cache {
	return NewSizedCache(DefaultCacheSize, ttl)
}

// NewSizedCache returns a cache holding up to size entries for ttl. The
// least recently used entry is evicted once size is reached.
func NewSizedCache(size int, ttl time.Duration) *Cache {
	if ttl <= 0 {
		return &Cache{}
	}
	if size <= 0 {
		size = DefaultCacheSize
	}
	return &Cache{lru: expirable.NewLRU[string, Result](size, nil, ttl)}
}

func (c *Cache) enabled() bool {
	return c != nil && c.lru != nil
}

// Get returns the cached result for code if present and unexpired.
func (c *Cache) Get(code string) (Result, bool) {
	if !c.enabled() {
		return Result{}, false
	}
	res, ok := c.lru.Get(code)
	if !ok {
		return Result{}, false
	}
	res.Offices = Clone(res.Offices)
	return res, true
}

// Set stores result under code, replacing any previous entry.
func (c *Cache) Set(code string, result Result) {
	if !c.enabled() {
		return
	}
	result.Offices = Clone(result.Offices)
	result.Cached = false
	c.lru.Add(code, result)
}

// Len reports the number of stored entries. Expired entries count until
// the background sweep removes them.
func (c *Cache) Len() int {
	if !c.enabled() {
		return 0
	}
	return c.lru.Len()
}
