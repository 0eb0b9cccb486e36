package ports

import (
	"context"
	"time"

	"github.com/mutreserve/reservation-system/internal/core/domain"
)

// SessionStore holds the active Principal for each live session. The
// presence of the session key is the sole signal of "logged in": deleting it
// invalidates the session even while the bearer token itself is unexpired.
type SessionStore interface {
	Save(ctx context.Context, sessionID string, p domain.Principal, ttl time.Duration) error
	Find(ctx context.Context, sessionID string) (*domain.Principal, error)
	Delete(ctx context.Context, sessionID string) error
}
