package booking

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"priisme/models"

	"github.com/go-redis/redis/v8"
)

// sessionTTL bounds how long an abandoned wizard survives.
const sessionTTL = 30 * time.Minute

// SessionStore persists wizard drafts between HTTP requests.
type SessionStore interface {
	Get(ctx context.Context, sessionID string) (*models.BookingWizard, error)
	Set(ctx context.Context, wizard *models.BookingWizard) error
	Delete(ctx context.Context, sessionID string) error
}

// RedisSessionStore keeps wizard drafts as JSON blobs with a TTL.
type RedisSessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisSessionStore builds the store on the given client.
func NewRedisSessionStore(client *redis.Client) *RedisSessionStore {
	return &RedisSessionStore{client: client, ttl: sessionTTL}
}

func (s *RedisSessionStore) key(sessionID string) string {
	return "wizard:" + sessionID
}

func (s *RedisSessionStore) Get(ctx context.Context, sessionID string) (*models.BookingWizard, error) {
	data, err := s.client.Get(ctx, s.key(sessionID)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load booking session: %w", err)
	}

	var wizard models.BookingWizard
	if err := json.Unmarshal([]byte(data), &wizard); err != nil {
		return nil, fmt.Errorf("failed to parse booking session: %w", err)
	}
	return &wizard, nil
}

func (s *RedisSessionStore) Set(ctx context.Context, wizard *models.BookingWizard) error {
	data, err := json.Marshal(wizard)
	if err != nil {
		return fmt.Errorf("failed to marshal booking session: %w", err)
	}
	if err := s.client.Set(ctx, s.key(wizard.SessionID), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store booking session: %w", err)
	}
	return nil
}

func (s *RedisSessionStore) Delete(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, s.key(sessionID)).Err(); err != nil {
		return fmt.Errorf("failed to delete booking session: %w", err)
	}
	return nil
}
