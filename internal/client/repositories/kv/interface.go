package kv

import (
	"context"
)

type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) (map[string][]byte, error)
	Clear(ctx context.Context) error
}

// Store is a Repository that can also apply a group of writes atomically.
type Store interface {
	Repository

	// Atomically runs fn against a repository whose writes are committed
	// only if fn returns nil.
	Atomically(ctx context.Context, fn func(ctx context.Context, r Repository) error) error

	Close() error
}
