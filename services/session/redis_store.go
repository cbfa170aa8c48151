package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"travelsure/models"
	"travelsure/utils"

	"github.com/go-redis/redis/v8"
)

// RedisStore keeps sessions as JSON documents under a key prefix. Every Update
// refreshes the TTL, so idle conversations expire on their own.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
	prefix string
}

// storedSession is the Redis document. It carries the fields the public
// session JSON hides.
type storedSession struct {
	*models.Session
	DeviceToken string `json:"deviceToken,omitempty"`
}

func encodeSession(sess *models.Session) ([]byte, error) {
	b, err := json.Marshal(storedSession{Session: sess, DeviceToken: sess.DeviceToken})
	if err != nil {
		return nil, fmt.Errorf("encode session: %w", err)
	}
	return b, nil
}

func decodeSession(data []byte) (*models.Session, error) {
	doc := storedSession{Session: &models.Session{}}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode session: %w", err)
	}
	doc.Session.DeviceToken = doc.DeviceToken
	return doc.Session, nil
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl, prefix: utils.SessionCachePrefix}
}

func (s *RedisStore) key(id string) string {
	return s.prefix + id
}

func (s *RedisStore) GetOrCreate(ctx context.Context, id string) (*models.Session, error) {
	id = newID(id)
	sess, err := s.Get(ctx, id)
	if err == nil {
		return sess, nil
	}
	if !errors.Is(err, ErrSessionNotFound) {
		return nil, err
	}

	fresh := models.NewSession(id, now())
	b, err := encodeSession(fresh)
	if err != nil {
		return nil, err
	}
	// SetNX keeps a session created concurrently by another instance.
	created, err := s.client.SetNX(ctx, s.key(id), b, s.ttl).Result()
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}
	if !created {
		return s.Get(ctx, id)
	}
	return fresh, nil
}

func (s *RedisStore) Get(ctx context.Context, id string) (*models.Session, error) {
	data, err := s.client.Get(ctx, s.key(id)).Result()
	if err == redis.Nil {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	return decodeSession([]byte(data))
}

func (s *RedisStore) Update(ctx context.Context, sess *models.Session) error {
	if sess == nil || sess.SessionID == "" {
		return errors.New("session id is required")
	}
	b, err := encodeSession(sess)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, s.key(sess.SessionID), b, s.ttl).Err()
}

func (s *RedisStore) Evict(ctx context.Context, id string) error {
	return s.client.Del(ctx, s.key(id)).Err()
}
