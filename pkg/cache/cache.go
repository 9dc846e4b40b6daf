// Package cache stores solved boards so repeated searches can skip the walk.
//
// A search is a pure function of the board and the word list, so its result
// can be keyed by a hash of both and reused until the entry expires. The CLI
// uses a [FileCache] under the XDG cache directory; the HTTP server can share
// results between instances through [RedisCache] or [MongoCache].
//
// Cache failures are never fatal to a solve: callers log them and fall back
// to running the search.
package cache

import (
	"context"
	"time"
)

// Default time-to-live values.
const (
	// TTLResult is how long a solved board stays cached.
	TTLResult = 7 * 24 * time.Hour
)

// Cache is a byte-oriented key/value store with expiry.
type Cache interface {
	// Get returns the stored value and true on a hit, or nil and false on a
	// miss. Expired entries are misses.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases the backend's resources.
	Close() error
}

// ResultKeyOpts holds the search parameters that change a result besides the
// board and the dictionary.
type ResultKeyOpts struct {
	Start  []int `json:"start,omitempty"`
	Traced bool  `json:"traced,omitempty"`
}

// Keyer builds cache keys.
type Keyer interface {
	// ResultKey returns the key for the result of searching the board
	// identified by boardHash with the dictionary identified by dictHash.
	ResultKey(boardHash, dictHash string, opts ResultKeyOpts) string
}

// DefaultKeyer produces "result:<sha256>" keys.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// ResultKey hashes the board, the dictionary and the options together.
func (DefaultKeyer) ResultKey(boardHash, dictHash string, opts ResultKeyOpts) string {
	return hashKey("result", boardHash, dictHash, opts)
}
