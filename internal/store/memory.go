package store

import (
	"context"
	"path"
	"strconv"
	"sync"
)

// MemoryStore is a thread-safe in-memory Store used for tests and local
// development without a Redis instance.
type MemoryStore struct {
	mu      sync.RWMutex
	hashes  map[string]map[string]string
	lists   map[string][]string
	scalars map[string]string
}

var _ Store = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		hashes:  make(map[string]map[string]string),
		lists:   make(map[string][]string),
		scalars: make(map[string]string),
	}
}

func (s *MemoryStore) HGetAll(ctx context.Context, key string) (map[string]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]string, len(s.hashes[key]))
	for field, value := range s.hashes[key] {
		out[field] = value
	}
	return out, nil
}

func (s *MemoryStore) HSet(ctx context.Context, key string, fields map[string]string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	hash, ok := s.hashes[key]
	if !ok {
		hash = make(map[string]string, len(fields))
		s.hashes[key] = hash
	}
	for field, value := range fields {
		hash[field] = value
	}
	return nil
}

func (s *MemoryStore) HGet(ctx context.Context, key, field string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.hashes[key][field], nil
}

func (s *MemoryStore) HDel(ctx context.Context, key string, fields ...string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	hash := s.hashes[key]
	for _, field := range fields {
		delete(hash, field)
	}
	if len(hash) == 0 {
		delete(s.hashes, key)
	}
	return nil
}

func (s *MemoryStore) RPush(ctx context.Context, key string, values ...string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.lists[key] = append(s.lists[key], values...)
	return nil
}

func (s *MemoryStore) LRem(ctx context.Context, key, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	list := s.lists[key]
	out := list[:0]
	for _, v := range list {
		if v != value {
			out = append(out, v)
		}
	}
	if len(out) == 0 {
		delete(s.lists, key)
	} else {
		s.lists[key] = out
	}
	return nil
}

func (s *MemoryStore) LRange(ctx context.Context, key string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]string(nil), s.lists[key]...), nil
}

func (s *MemoryStore) Incr(ctx context.Context, key string) (int64, error) {
	return s.incrBy(ctx, key, 1)
}

func (s *MemoryStore) Decr(ctx context.Context, key string) (int64, error) {
	return s.incrBy(ctx, key, -1)
}

func (s *MemoryStore) incrBy(ctx context.Context, key string, delta int64) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	current, _ := strconv.ParseInt(s.scalars[key], 10, 64)
	current += delta
	s.scalars[key] = strconv.FormatInt(current, 10)
	return current, nil
}

func (s *MemoryStore) GetInt(ctx context.Context, key string) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	raw, ok := s.scalars[key]
	if !ok {
		return 0, nil
	}
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, err
	}
	return value, nil
}

func (s *MemoryStore) Set(ctx context.Context, key, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.scalars[key] = value
	return nil
}

func (s *MemoryStore) Del(ctx context.Context, keys ...string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, key := range keys {
		delete(s.hashes, key)
		delete(s.lists, key)
		delete(s.scalars, key)
	}
	return nil
}

func (s *MemoryStore) Keys(ctx context.Context, pattern string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var keys []string
	match := func(key string) {
		if ok, _ := path.Match(pattern, key); ok {
			keys = append(keys, key)
		}
	}
	for key := range s.hashes {
		match(key)
	}
	for key := range s.lists {
		match(key)
	}
	for key := range s.scalars {
		match(key)
	}
	return keys, nil
}

func (s *MemoryStore) Ping(ctx context.Context) error {
	return ctx.Err()
}

func (s *MemoryStore) Close() error {
	return nil
}
