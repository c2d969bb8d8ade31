package storage

import (
	"context"
	"errors"
	"fmt"
)

// ErrNotFound indicates no value is stored under the requested key.
var ErrNotFound = errors.New("record not found")

// KV stores opaque values by key.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Close() error
}

const (
	BackendSQLite = "sqlite"
	BackendBolt   = "bolt"
)

// OpenKV opens the backend named by backend at path.
func OpenKV(ctx context.Context, backend, path string) (KV, error) {
	switch backend {
	case BackendSQLite, "":
		db, err := Open(ctx, path)
		if err != nil {
			return nil, err
		}
		return NewSQLiteKV(db), nil
	case BackendBolt:
		return OpenBolt(path)
	default:
		return nil, fmt.Errorf("unknown storage backend: %q", backend)
	}
}
