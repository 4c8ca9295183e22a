package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

type RedisCartSlot struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisCartSlot stores cart payloads as plain string values. A zero ttl keeps
// them until they are overwritten or deleted.
func NewRedisCartSlot(client *redis.Client, ttl time.Duration) *RedisCartSlot {
	return &RedisCartSlot{client: client, ttl: ttl}
}

func (s *RedisCartSlot) Load(ctx context.Context, key string) ([]byte, error) {
	data, err := s.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrSlotEmpty
	}
	if err != nil {
		return nil, fmt.Errorf("redis get %s: %w", key, err)
	}
	return data, nil
}

func (s *RedisCartSlot) Save(ctx context.Context, key string, data []byte) error {
	if err := s.client.Set(ctx, key, data, s.ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

func (s *RedisCartSlot) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("redis del %s: %w", key, err)
	}
	return nil
}
