package ports

import (
	"context"

	"github.com/mutreserve/reservation-system/internal/core/domain"
)

// BookingRepository defines persistence operations for self-service bookings.
type BookingRepository interface {
	Insert(ctx context.Context, b *domain.Booking) error
	FindByID(ctx context.Context, id string) (*domain.Booking, error)
	ListByUsername(ctx context.Context, username string) ([]domain.Booking, error)
	Remove(ctx context.Context, id string) error
}
