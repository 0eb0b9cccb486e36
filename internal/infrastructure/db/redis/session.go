package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mutreserve/reservation-system/internal/core/domain"
)

// SessionStore holds the serialized Principal of each live session.
// Key format: session:<session_id>. The key's presence is the sole signal
// of "logged in"; deleting it ends the session regardless of token expiry.
type SessionStore struct {
	client *redis.Client
}

// NewSessionStore creates a SessionStore wrapping the given Redis client.
func NewSessionStore(client *redis.Client) *SessionStore {
	return &SessionStore{client: client}
}

// Save persists the principal under the session key with the given TTL.
func (s *SessionStore) Save(ctx context.Context, sessionID string, p domain.Principal, ttl time.Duration) error {
	payload, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encode principal: %w", err)
	}
	return s.client.Set(ctx, s.key(sessionID), payload, ttl).Err()
}

// Find returns the principal for sessionID, or ErrUserNotFound when no such
// session exists.
func (s *SessionStore) Find(ctx context.Context, sessionID string) (*domain.Principal, error) {
	payload, err := s.client.Get(ctx, s.key(sessionID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("load session: %w", err)
	}

	var p domain.Principal
	if err := json.Unmarshal(payload, &p); err != nil {
		return nil, fmt.Errorf("decode principal: %w", err)
	}
	return &p, nil
}

// Delete removes the session key. Deleting an absent key is a no-op.
func (s *SessionStore) Delete(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, s.key(sessionID)).Err()
}

func (s *SessionStore) key(sessionID string) string {
	return fmt.Sprintf("session:%s", sessionID)
}
