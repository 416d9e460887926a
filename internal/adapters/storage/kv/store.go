// Package kv defines the narrow key-value persistence contract the core
// depends on, together with the available backends. Every entity collection
// is serialized as a JSON document under a fixed string key; the contract
// deliberately knows nothing about the shapes stored in it.
package kv

import "context"

// Store is the persistence contract. Get reports found=false for a missing
// key without error; callers treat that as an empty collection or default
// value. Implementations must be safe for concurrent use.
type Store interface {
	// Get returns the raw value stored under key, if any.
	Get(ctx context.Context, key string) (value string, found bool, err error)
	// Set stores value under key, replacing any prior value.
	Set(ctx context.Context, key string, value string) error
	// Remove deletes key. Removing an absent key is not an error.
	Remove(ctx context.Context, key string) error
	// Close releases any underlying resources.
	Close() error
}
