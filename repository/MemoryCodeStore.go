package repository

import (
	"context"
	"sync"
	"time"
)

type memItem struct {
	value     string
	expiresAt time.Time // zero means no expiry
}

// MemoryCodeStore is a process-local CodeStore for development without Redis
// and for tests. It mimics the store contract including lazy expiry; it is
// always "connected".
type MemoryCodeStore struct {
	data sync.Map // Thread-safe map
}

func NewMemoryCodeStore() *MemoryCodeStore {
	s := &MemoryCodeStore{}

	// Background janitor so abandoned keys don't pile up
	go func() {
		for {
			time.Sleep(10 * time.Minute)
			s.data.Range(func(key, value interface{}) bool {
				item := value.(memItem)
				if !item.expiresAt.IsZero() && time.Now().After(item.expiresAt) {
					s.data.Delete(key)
				}
				return true
			})
		}
	}()

	return s
}

func (s *MemoryCodeStore) Get(ctx context.Context, key string) (string, bool) {
	val, ok := s.data.Load(key)
	if !ok {
		return "", false
	}

	item := val.(memItem)

	// Check expiry (lazy delete)
	if !item.expiresAt.IsZero() && time.Now().After(item.expiresAt) {
		s.data.Delete(key)
		return "", false
	}

	return item.value, true
}

func (s *MemoryCodeStore) Exists(ctx context.Context, key string) (bool, bool) {
	_, found := s.Get(ctx, key)
	return found, true
}

func (s *MemoryCodeStore) SetWithExpiry(ctx context.Context, key, value string, ttl time.Duration) bool {
	s.data.Store(key, memItem{
		value:     value,
		expiresAt: time.Now().Add(ttl),
	})
	return true
}

func (s *MemoryCodeStore) Ping(ctx context.Context) bool { return true }

func (s *MemoryCodeStore) IsConnected() bool { return true }

func (s *MemoryCodeStore) Quit() {}
