package storage

import (
	"context"
	"errors"
)

// Storage is a durable key-value medium for cart snapshots.
// Implementations must return ErrNotFound for a key that was never written.
type Storage interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}

var ErrNotFound = errors.New("key not found")
