package kv

import (
	"context"
	"maps"
	"sync"
)

// MemoryStore keeps entries in a map. It is used for ":memory:" sessions
// and as a lightweight Store in tests.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string][]byte)}
}

type memRepository struct {
	data map[string][]byte
}

func (r memRepository) Get(_ context.Context, key string) ([]byte, error) {
	v, ok := r.data[key]
	if !ok {
		return nil, nil
	}
	return append([]byte(nil), v...), nil
}

func (r memRepository) Set(_ context.Context, key string, value []byte) error {
	r.data[key] = append([]byte(nil), value...)
	return nil
}

func (r memRepository) Delete(_ context.Context, key string) error {
	delete(r.data, key)
	return nil
}

func (r memRepository) Clear(_ context.Context) error {
	clear(r.data)
	return nil
}

func (r memRepository) List(_ context.Context) (map[string][]byte, error) {
	out := make(map[string][]byte, len(r.data))
	for k, v := range r.data {
		out[k] = append([]byte(nil), v...)
	}
	return out, nil
}

func (s *MemoryStore) Get(ctx context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return memRepository{s.data}.Get(ctx, key)
}

func (s *MemoryStore) Set(ctx context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return memRepository{s.data}.Set(ctx, key, value)
}

func (s *MemoryStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return memRepository{s.data}.Delete(ctx, key)
}

func (s *MemoryStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return memRepository{s.data}.Clear(ctx)
}

func (s *MemoryStore) List(ctx context.Context) (map[string][]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return memRepository{s.data}.List(ctx)
}

// Atomically applies fn to a copy of the map and swaps it in when fn
// succeeds; on error the store is untouched.
func (s *MemoryStore) Atomically(ctx context.Context, fn func(ctx context.Context, r Repository) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	work := maps.Clone(s.data)
	if work == nil {
		work = make(map[string][]byte)
	}
	if err := fn(ctx, memRepository{work}); err != nil {
		return err
	}
	s.data = work
	return nil
}

func (s *MemoryStore) Close() error { return nil }
