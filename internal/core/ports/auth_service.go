package ports

import (
	"context"

	"github.com/mutreserve/reservation-system/internal/core/domain"
)

// AuthService implements login, registration, and session teardown.
type AuthService interface {
	// Login returns a signed bearer token and the authenticated user.
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
	// Register creates a new account with role "user". It never auto-logins.
	Register(ctx context.Context, username, password, email string) (*domain.User, error)
	// Logout destroys the session identified by sessionID.
	Logout(ctx context.Context, sessionID string) error
}
