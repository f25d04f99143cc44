package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"studioo/internal/domain/entities"
	"studioo/internal/usecase/interfaces"
)

const sessionKeyPrefix = "quote_session:"

// SessionRedisRepository keeps wizard sessions in Redis as JSON. Every save
// refreshes the TTL, so a session expires after ttl of inactivity.
type SessionRedisRepository struct {
	client *redis.Client
	ttl    time.Duration
}

var _ interfaces.ISessionRepository = (*SessionRedisRepository)(nil)

func NewSessionRedisRepository(client *redis.Client, ttl time.Duration) *SessionRedisRepository {
	return &SessionRedisRepository{client: client, ttl: ttl}
}

func (r *SessionRedisRepository) Get(ctx context.Context, id string) (entities.WizardSession, error) {
	data, err := r.client.Get(ctx, sessionKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return entities.WizardSession{}, nil
	}
	if err != nil {
		return entities.WizardSession{}, fmt.Errorf("get session: %w", err)
	}

	var s entities.WizardSession
	if err := json.Unmarshal(data, &s); err != nil {
		return entities.WizardSession{}, fmt.Errorf("unmarshal session: %w", err)
	}
	return s, nil
}

func (r *SessionRedisRepository) Save(ctx context.Context, s entities.WizardSession) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	return r.client.Set(ctx, sessionKey(s.ID), data, r.ttl).Err()
}

func (r *SessionRedisRepository) Delete(ctx context.Context, id string) error {
	return r.client.Del(ctx, sessionKey(id)).Err()
}

func sessionKey(id string) string {
	return sessionKeyPrefix + id
}
