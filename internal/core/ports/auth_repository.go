package ports

import (
	"context"

	"github.com/mutreserve/reservation-system/internal/core/domain"
)

// AuthRepository defines the interface for the credential store.
type AuthRepository interface {
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}
