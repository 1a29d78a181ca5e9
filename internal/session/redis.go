package session

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"intakeflow/internal/model"
)

const keyPrefix = "intake:session:"

type redisStore struct {
	client *redis.Client
	ttl    time.Duration
	locks  sync.Map
}

// NewRedisStore returns a Redis-backed store. The TTL bounds how long an
// idle session survives; it is refreshed on every save.
func NewRedisStore(client *redis.Client, ttl time.Duration) Store {
	return &redisStore{
		client: client,
		ttl:    ttl,
	}
}

func (s *redisStore) Save(ctx context.Context, state *model.ConversationState) error {
	data, err := json.Marshal(state)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, keyPrefix+state.ID, data, s.ttl).Err()
}

func (s *redisStore) Get(ctx context.Context, id string) (*model.ConversationState, error) {
	data, err := s.client.Get(ctx, keyPrefix+id).Result()
	if err == redis.Nil {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	var state model.ConversationState
	if err := json.Unmarshal([]byte(data), &state); err != nil {
		return nil, err
	}
	return &state, nil
}

func (s *redisStore) Delete(ctx context.Context, id string) error {
	n, err := s.client.Del(ctx, keyPrefix+id).Result()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	s.locks.Delete(id)
	return nil
}

// WithLock serializes within this process. Sessions are single-caller, so
// cross-instance locking is not needed.
func (s *redisStore) WithLock(id string, fn func() error) error {
	mu := sessionLock(&s.locks, id)
	mu.Lock()
	defer mu.Unlock()
	return fn()
}
