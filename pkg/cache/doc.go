// Package cache provides a small generic LRU cache.
//
// The message catalog uses it to memoise resolved template lookups, which
// otherwise walk nested maps on every rendered violation.
//
//	c := cache.NewLRU[string, int](128)
//	c.Put("a", 1)
//	v, ok := c.Get("a")
package cache
