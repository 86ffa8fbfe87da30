package styling

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// RedisContextStore keeps conversation turns in a capped Redis list per
// session, expiring with the session.
type RedisContextStore struct {
	client *redis.Client
	ttl    time.Duration
}

// maxTurns caps how much history is replayed into a prompt.
const maxTurns = 20

func NewRedisContextStore(client *redis.Client, ttl time.Duration) *RedisContextStore {
	return &RedisContextStore{client: client, ttl: ttl}
}

func (s *RedisContextStore) key(sessionID string) string {
	return "styling:" + sessionID
}

func (s *RedisContextStore) Append(ctx context.Context, sessionID, role, text string) error {
	key := s.key(sessionID)
	entry := role + ": " + text
	pipe := s.client.TxPipeline()
	pipe.RPush(ctx, key, entry)
	pipe.LTrim(ctx, key, -maxTurns, -1)
	pipe.Expire(ctx, key, s.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to append styling context: %w", err)
	}
	return nil
}

func (s *RedisContextStore) History(ctx context.Context, sessionID string) ([]string, error) {
	turns, err := s.client.LRange(ctx, s.key(sessionID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to load styling context: %w", err)
	}
	return turns, nil
}
