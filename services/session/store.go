package session

import (
	"context"
	"errors"
	"time"

	"travelsure/models"

	"github.com/google/uuid"
)

// ErrSessionNotFound is returned by Get when no live session exists for the id.
var ErrSessionNotFound = errors.New("session not found")

// Store persists conversation sessions. Implementations hand out copies, so a
// caller mutating a returned session never changes stored state until Update.
type Store interface {
	// GetOrCreate returns the session for id, creating it at trip intake when it
	// does not exist. An empty id gets a generated one.
	GetOrCreate(ctx context.Context, id string) (*models.Session, error)
	Get(ctx context.Context, id string) (*models.Session, error)
	Update(ctx context.Context, s *models.Session) error
	Evict(ctx context.Context, id string) error
}

func newID(id string) string {
	if id == "" {
		return uuid.New().String()
	}
	return id
}

func now() time.Time {
	return time.Now().UTC()
}
