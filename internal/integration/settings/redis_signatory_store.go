// Package settings persists back-office settings in Redis.
package settings

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/alumni-portal/backoffice/internal/application/adapter"
	"github.com/alumni-portal/backoffice/internal/domain/entity"
)

// SignatoryKey is the Redis key holding the JSON-encoded signatory.
const SignatoryKey = "settings:signatory"

type redisSignatoryStore struct {
	client *redis.Client
}

// NewRedisSignatoryStore creates a new Redis-backed signatory store.
func NewRedisSignatoryStore(client *redis.Client) adapter.SignatoryStore {
	return &redisSignatoryStore{client: client}
}

// Get loads the saved signatory. found is false when nothing was saved yet.
func (s *redisSignatoryStore) Get(ctx context.Context) (entity.Signatory, bool, error) {
	raw, err := s.client.Get(ctx, SignatoryKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return entity.Signatory{}, false, nil
	}
	if err != nil {
		return entity.Signatory{}, false, fmt.Errorf("failed to read signatory: %w", err)
	}

	var signatory entity.Signatory
	if err := json.Unmarshal(raw, &signatory); err != nil {
		return entity.Signatory{}, false, fmt.Errorf("failed to decode signatory: %w", err)
	}
	return signatory, true, nil
}

func (s *redisSignatoryStore) Save(ctx context.Context, signatory entity.Signatory) error {
	raw, err := json.Marshal(signatory)
	if err != nil {
		return fmt.Errorf("failed to encode signatory: %w", err)
	}
	if err := s.client.Set(ctx, SignatoryKey, raw, 0).Err(); err != nil {
		return fmt.Errorf("failed to save signatory: %w", err)
	}
	return nil
}
