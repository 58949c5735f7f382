// Package store provides data persistence interfaces and implementations.
//
// The journal's persisted state is an opaque key-value blob store with
// exactly three entries: the landing flag, the serialized profile and
// the serialized trade collection. Objects are written wholesale; the
// store never inspects their contents.
package store

import "context"

// Storage keys. The _v2 suffix versions the serialized shape; bumping
// it orphans the old entry instead of migrating in place.
const (
	KeyEntered = "smc_entered"
	KeyUser    = "smc_user_v2"
	KeyTrades  = "smc_trades_v2"
)

// StateStore defines the interface for whole-object blob persistence.
type StateStore interface {
	// Get returns the blob stored under key, or errors.ErrKeyNotFound.
	Get(ctx context.Context, key string) ([]byte, error)
	// Put stores value under key, overwriting any previous blob.
	Put(ctx context.Context, key string, value []byte) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	// Lifecycle
	Close() error
}
