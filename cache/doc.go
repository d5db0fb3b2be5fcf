// Package cache provides the bounded style cache and deterministic
// argument fingerprinting.
//
// Cache is a key-value store with TTL expiration and LRU eviction under a
// single lock. Expiry is lazy: entries are checked against their insertion
// time on read, never by a background timer. Eviction removes exactly one
// entry, the one with the oldest recorded access time.
//
// Key builds a fixed-length fingerprint from an operation name and its
// arguments by canonical serialization (stable map key ordering) and a
// non-cryptographic digest. Equal argument values always produce equal
// keys regardless of object identity.
//
// Example Usage:
//
//	c := cache.New(1000, time.Hour)
//	key, err := cache.Key("figure_size", schemaHash)
//	c.Put(key, value)
//	v, ok := c.Get(key)
package cache
