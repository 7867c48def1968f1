package storage

import (
	"context"
	"errors"
)

// ErrSnapshotNotFound means the slot has never been written.
var ErrSnapshotNotFound = errors.New("snapshot not found")

// SnapshotStore is a single key-value slot holding the serialized
// domain snapshot. It is an offline-capable cache, read once at startup
// and rewritten after every state change; when a remote record store is
// configured, the record store remains the source of truth.
type SnapshotStore interface {
	Save(ctx context.Context, data []byte) error

	Load(ctx context.Context) ([]byte, error)
}
