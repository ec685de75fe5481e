package store

import (
	"context"

	"github.com/MKhiriev/go-kv-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/mock_store.go -package=mock

// KeyValueRepository is the persistence contract for key/value entries.
// Implementations exist for PostgreSQL, SQLite and an in-memory map; all of
// them honour the same sentinel errors declared in errors.go.
type KeyValueRepository interface {
	// Upsert stores value under key, overwriting any previous value.
	Upsert(ctx context.Context, entry models.Entry) (models.Entry, error)
	// Read returns the entry stored under key or [ErrKeyNotFound].
	Read(ctx context.Context, key string) (models.Entry, error)
	// Update replaces the value of an existing key. It fails with
	// [ErrKeyNotFound] when the key is absent.
	Update(ctx context.Context, entry models.Entry) (models.Entry, error)
	// Remove deletes the entry stored under key. Removing an absent key is
	// not an error.
	Remove(ctx context.Context, key string) error
	// Keys lists all stored keys in lexicographic order. A non-empty prefix
	// narrows the listing to keys starting with it.
	Keys(ctx context.Context, prefix string) ([]string, error)
}

// Snapshotter is implemented by repositories that can persist their state to
// a file on demand. The snapshot worker calls Snapshot periodically; backends
// with durable storage of their own do not implement it.
type Snapshotter interface {
	Snapshot() error
}

// ErrorClassificator decides whether a failed database operation is worth
// retrying.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
