package wizard

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"washly/models"
	"washly/utils"

	"github.com/go-redis/redis/v8"
)

// SessionTTL is how long an idle wizard session survives before expiring.
const SessionTTL = 30 * time.Minute

// SessionStore persists wizard sessions between requests.
type SessionStore interface {
	Save(ctx context.Context, session *models.WizardSession) error
	Get(ctx context.Context, sessionID string) (*models.WizardSession, error)
	Delete(ctx context.Context, sessionID string) error
}

type redisSessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisSessionStore returns a SessionStore keeping JSON-marshalled
// sessions in Redis with a rolling TTL.
func NewRedisSessionStore(client *redis.Client, ttl time.Duration) SessionStore {
	return &redisSessionStore{client: client, ttl: ttl}
}

func (s *redisSessionStore) Save(ctx context.Context, session *models.WizardSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal wizard session: %w", err)
	}
	if err := s.client.Set(ctx, sessionKey(session.SessionID), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store wizard session: %w", err)
	}
	return nil
}

func (s *redisSessionStore) Get(ctx context.Context, sessionID string) (*models.WizardSession, error) {
	data, err := s.client.Get(ctx, sessionKey(sessionID)).Result()
	if err == redis.Nil {
		return nil, utils.NewNotFoundError("booking session %s not found or expired", sessionID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load wizard session: %w", err)
	}
	var session models.WizardSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, fmt.Errorf("failed to parse wizard session: %w", err)
	}
	return &session, nil
}

func (s *redisSessionStore) Delete(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, sessionKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("failed to delete wizard session: %w", err)
	}
	return nil
}

func sessionKey(sessionID string) string {
	return "wizard:" + sessionID
}
