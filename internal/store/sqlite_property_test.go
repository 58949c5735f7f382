package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	apperrors "smc-journal/internal/errors"
)

// Property: blob round-trip consistency.
//
// For any key and payload, putting a blob and getting it back returns
// the identical bytes, and a second put overwrites the first.
func TestProperty_BlobRoundTrip(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "state_property.db")

	store, err := NewSQLiteStore(dbPath)
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	defer store.Close()

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	parameters.Rng.Seed(time.Now().UnixNano())

	properties := gopter.NewProperties(parameters)

	properties.Property("put then get returns identical bytes", prop.ForAll(
		func(key string, payload []byte) bool {
			ctx := context.Background()
			if err := store.Put(ctx, key, payload); err != nil {
				t.Logf("Put failed: %v", err)
				return false
			}
			got, err := store.Get(ctx, key)
			if err != nil {
				t.Logf("Get failed: %v", err)
				return false
			}
			return string(got) == string(payload)
		},
		gen.Identifier(),
		gen.SliceOf(gen.UInt8()),
	))

	properties.Property("second put overwrites the first", prop.ForAll(
		func(key string, first, second []byte) bool {
			ctx := context.Background()
			if err := store.Put(ctx, key, first); err != nil {
				return false
			}
			if err := store.Put(ctx, key, second); err != nil {
				return false
			}
			got, err := store.Get(ctx, key)
			if err != nil {
				return false
			}
			return string(got) == string(second)
		},
		gen.Identifier(),
		gen.SliceOf(gen.UInt8()),
		gen.SliceOf(gen.UInt8()),
	))

	properties.TestingRun(t)
}

func TestSQLiteStore_MissingKey(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "state_missing.db")

	store, err := NewSQLiteStore(dbPath)
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	defer store.Close()

	ctx := context.Background()
	if _, err := store.Get(ctx, "nope"); !apperrors.Is(err, apperrors.ErrKeyNotFound) {
		t.Fatalf("expected ErrKeyNotFound, got %v", err)
	}

	// Deleting a missing key is not an error.
	if err := store.Delete(ctx, "nope"); err != nil {
		t.Fatalf("delete of missing key failed: %v", err)
	}
}

func TestSQLiteStore_DeleteRemovesKey(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "state_delete.db")

	store, err := NewSQLiteStore(dbPath)
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	defer store.Close()

	ctx := context.Background()
	if err := store.Put(ctx, KeyEntered, []byte("true")); err != nil {
		t.Fatalf("put failed: %v", err)
	}
	if err := store.Delete(ctx, KeyEntered); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := store.Get(ctx, KeyEntered); !apperrors.Is(err, apperrors.ErrKeyNotFound) {
		t.Fatalf("expected ErrKeyNotFound after delete, got %v", err)
	}
}
