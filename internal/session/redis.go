package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"kisanmitra/internal/domain"
)

const keyPrefix = "session:"

// redisStore keeps each session as a JSON value under session:<id>. Every
// read and write refreshes the key's ttl; Redis expires idle keys itself.
type redisStore struct {
	rdb *redis.Client
	ttl time.Duration
	now func() time.Time
}

func NewRedisStore(rdb *redis.Client, ttl time.Duration) Store {
	return &redisStore{rdb: rdb, ttl: ttl, now: time.Now}
}

func key(id uuid.UUID) string {
	return keyPrefix + id.String()
}

func (r *redisStore) Create(ctx context.Context, s *Session) error {
	s.ID = uuid.New()
	s.CreatedAt = r.now().UTC()
	s.UpdatedAt = s.CreatedAt
	return r.save(ctx, s)
}

func (r *redisStore) Get(ctx context.Context, id uuid.UUID) (*Session, error) {
	data, err := r.rdb.GetEx(ctx, key(id), r.ttl).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, domain.ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	var s Session
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}
	return &s, nil
}

func (r *redisStore) SetLanguage(ctx context.Context, id uuid.UUID, lang domain.Language) error {
	s, err := r.Get(ctx, id)
	if err != nil {
		return err
	}
	s.Language = lang
	s.UpdatedAt = r.now().UTC()
	return r.save(ctx, s)
}

func (r *redisStore) Delete(ctx context.Context, id uuid.UUID) error {
	n, err := r.rdb.Del(ctx, key(id)).Result()
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	if n == 0 {
		return domain.ErrSessionNotFound
	}
	return nil
}

func (r *redisStore) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	n, err := r.rdb.Exists(ctx, key(id)).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check session: %w", err)
	}
	return n > 0, nil
}

// Reap is a no-op: expired keys are evicted by Redis.
func (r *redisStore) Reap(ctx context.Context) (int, error) {
	return 0, nil
}

func (r *redisStore) save(ctx context.Context, s *Session) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	if err := r.rdb.Set(ctx, key(s.ID), data, r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}
