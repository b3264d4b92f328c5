package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/doctorconsult/appcore/internal/domain/entities"
	"github.com/doctorconsult/appcore/internal/domain/providers"
	redisclient "github.com/doctorconsult/appcore/internal/infrastructure/clients/redis"
	apperrors "github.com/doctorconsult/appcore/pkg/errors"
)

const sessionKey = "consult:session"

// RedisStore implements the SessionStore interface using Redis
type RedisStore struct {
	client *redisclient.Client
	ttl    time.Duration
}

// NewRedisStore creates a new Redis session store
func NewRedisStore(client *redisclient.Client, ttl time.Duration) providers.SessionStore {
	return &RedisStore{
		client: client,
		ttl:    ttl,
	}
}

// Get retrieves the current session
func (s *RedisStore) Get(ctx context.Context) (*entities.Session, error) {
	data, err := s.client.Client().Get(ctx, sessionKey).Bytes()
	if err == redis.Nil {
		return nil, apperrors.NewNotFoundError("no active session")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	var session entities.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("failed to decode session: %w", err)
	}
	return &session, nil
}

// Save stores the session
func (s *RedisStore) Save(ctx context.Context, session *entities.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	if err := s.client.Client().Set(ctx, sessionKey, data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// Clear removes the session
func (s *RedisStore) Clear(ctx context.Context) error {
	if err := s.client.Client().Del(ctx, sessionKey).Err(); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}
