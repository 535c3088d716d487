package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
)

type redisStore struct {
	redisClient *redis.Client
	keyPrefix   string
	ttl         time.Duration
}

// NewRedisStore keeps notices in a Redis list per session.
func NewRedisStore(redisClient *redis.Client, ttl time.Duration) FlashStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &redisStore{
		redisClient: redisClient,
		keyPrefix:   "catalog_admin:flash:",
		ttl:         ttl,
	}
}

func (s *redisStore) Push(ctx context.Context, session string, notices ...Notice) error {
	if len(notices) == 0 {
		return nil
	}

	key := s.keyPrefix + session
	values := make([]interface{}, 0, len(notices))
	for _, n := range notices {
		raw, err := json.Marshal(n)
		if err != nil {
			return fmt.Errorf("failed to encode notice: %w", err)
		}
		values = append(values, raw)
	}

	pipe := s.redisClient.TxPipeline()
	pipe.RPush(ctx, key, values...)
	pipe.Expire(ctx, key, s.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to push notices for session %s: %w", session, err)
	}
	return nil
}

func (s *redisStore) Pop(ctx context.Context, session string) ([]Notice, error) {
	key := s.keyPrefix + session

	pipe := s.redisClient.TxPipeline()
	items := pipe.LRange(ctx, key, 0, -1)
	pipe.Del(ctx, key)
	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to pop notices for session %s: %w", session, err)
	}

	raw := items.Val()
	if len(raw) == 0 {
		return nil, nil
	}

	notices := make([]Notice, 0, len(raw))
	for _, item := range raw {
		var n Notice
		if err := json.Unmarshal([]byte(item), &n); err != nil {
			log.Warnf("⚠️ Dropping undecodable notice for session %s: %v", session, err)
			continue
		}
		notices = append(notices, n)
	}
	return notices, nil
}
