package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"travelsure/models"

	"github.com/patrickmn/go-cache"
)

// MemoryStore is a process-local store with TTL expiry, used for development,
// the chat CLI and tests.
type MemoryStore struct {
	mu    sync.Mutex
	cache *cache.Cache
}

// NewMemoryStore creates a store whose entries expire after ttl of inactivity.
// Expired entries are purged every cleanup interval.
func NewMemoryStore(ttl, cleanup time.Duration) *MemoryStore {
	return &MemoryStore{cache: cache.New(ttl, cleanup)}
}

func (s *MemoryStore) GetOrCreate(_ context.Context, id string) (*models.Session, error) {
	id = newID(id)
	s.mu.Lock()
	defer s.mu.Unlock()

	if v, ok := s.cache.Get(id); ok {
		return v.(*models.Session).Clone(), nil
	}
	fresh := models.NewSession(id, now())
	s.cache.Set(id, fresh.Clone(), cache.DefaultExpiration)
	return fresh, nil
}

func (s *MemoryStore) Get(_ context.Context, id string) (*models.Session, error) {
	v, ok := s.cache.Get(id)
	if !ok {
		return nil, ErrSessionNotFound
	}
	return v.(*models.Session).Clone(), nil
}

func (s *MemoryStore) Update(_ context.Context, sess *models.Session) error {
	if sess == nil || sess.SessionID == "" {
		return errors.New("session id is required")
	}
	s.cache.Set(sess.SessionID, sess.Clone(), cache.DefaultExpiration)
	return nil
}

func (s *MemoryStore) Evict(_ context.Context, id string) error {
	s.cache.Delete(id)
	return nil
}

// Count returns the number of live sessions.
func (s *MemoryStore) Count() int {
	return s.cache.ItemCount()
}
