// Package securestore is the durable, encrypted key-value store that holds
// the client's credential record (bearer token + serialized user).
//
// # Backends
//
//   - SQLiteStore: default; a single-table SQLite file under the data dir,
//     schema managed by embedded goose migrations.
//   - RedisStore: for headless deployments sharing a credential record.
//   - MemoryStore: process-local, for tests and ephemeral runs.
//
// SQLite and Redis values are sealed with cryptox using a device key kept in
// a 0600 key file next to the database. The record key is bound as
// associated data.
//
// # Contract
//
// Get reports absence as ("", false, nil). Delete of an absent key is not an
// error. Backends that can write several keys atomically implement Batcher;
// SetMany and DeleteMany use it when available.
package securestore

//go:generate mockgen -destination=mocks/store.go -package=mocks github.com/dmitrijs2005/trainerhub/internal/client/securestore Store

import (
	"context"
	"errors"
	"io"
)

// ErrCorrupt is returned by Get when a stored value cannot be opened
// (tampered, sealed with another key, or truncated).
var ErrCorrupt = errors.New("stored value is corrupt")

// Store is the durable secure key-value contract.
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// ClosableStore is a Store owning resources released by Close.
type ClosableStore interface {
	Store
	io.Closer
}

// Entry is a single key/value pair for batched writes.
type Entry struct {
	Key   string
	Value string
}

// Batcher is implemented by backends able to apply several writes atomically.
type Batcher interface {
	SetMany(ctx context.Context, entries ...Entry) error
	DeleteMany(ctx context.Context, keys ...string) error
}

// SetMany writes entries in order, atomically when s implements Batcher.
// Without batching it stops at the first failure; callers that need
// all-or-nothing semantics must clean up themselves.
func SetMany(ctx context.Context, s Store, entries ...Entry) error {
	if b, ok := s.(Batcher); ok {
		return b.SetMany(ctx, entries...)
	}

	for _, e := range entries {
		if err := s.Set(ctx, e.Key, e.Value); err != nil {
			return err
		}
	}
	return nil
}

// DeleteMany removes keys. It attempts every key even when some deletions
// fail and returns the joined errors. A failed batch falls back to
// per-key deletes.
func DeleteMany(ctx context.Context, s Store, keys ...string) error {
	if b, ok := s.(Batcher); ok {
		if err := b.DeleteMany(ctx, keys...); err == nil {
			return nil
		}
	}

	var errs []error
	for _, k := range keys {
		if err := s.Delete(ctx, k); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
