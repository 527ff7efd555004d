// Package kvstore provides the durable key/value storage the
// appointment repository persists into: a flat string-to-string map
// with the same shape as web local storage. One file-backed
// implementation is used in production and an in-memory one in tests.
package kvstore

// Store is a durable string key/value map.
type Store interface {
	// Get returns the value under key and whether the key exists.
	Get(key string) (string, bool, error)
	// Set stores value under key, replacing any prior value.
	Set(key, value string) error
}
