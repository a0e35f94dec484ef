// Package store persists freewrite state in a flat key-value store.
package store

import "context"

// KV is the persistence port: a synchronous, process-wide string store.
// Get reports ok=false for a missing key; Set always overwrites the whole
// value.
type KV interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
}

// Watcher streams change notifications for keys rewritten by any process.
type Watcher interface {
	Watch(ctx context.Context) (<-chan Event, error)
}

// Persistence is a KV that can also be watched, as provided by Load.
type Persistence interface {
	KV
	Watcher
	BasePath() string
}
