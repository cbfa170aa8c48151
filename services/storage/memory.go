package storage

import (
	"context"
	"fmt"
	"path"
	"sync"
	"time"
)

// MemoryStore keeps documents in process memory. It backs the chat CLI and
// deployments without Cloudinary credentials.
type MemoryStore struct {
	mu   sync.RWMutex
	docs map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{docs: make(map[string][]byte)}
}

func (s *MemoryStore) UploadDocument(_ context.Context, folder, name string, content []byte) (string, string, error) {
	if name == "" {
		return "", "", fmt.Errorf("MemoryStore: document name is required")
	}
	id := path.Join(folder, name)
	s.mu.Lock()
	s.docs[id] = append([]byte(nil), content...)
	s.mu.Unlock()
	return id, "memory://" + id, nil
}

func (s *MemoryStore) DeleteDocument(_ context.Context, publicID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.docs[publicID]; !ok {
		return fmt.Errorf("MemoryStore: document %s not found", publicID)
	}
	delete(s.docs, publicID)
	return nil
}

func (s *MemoryStore) SecureURL(publicID string, _ time.Duration) (string, error) {
	return "memory://" + publicID, nil
}

// Document returns a stored document.
func (s *MemoryStore) Document(publicID string) ([]byte, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.docs[publicID]
	return b, ok
}
