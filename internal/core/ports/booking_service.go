package ports

import (
	"context"

	"github.com/mutreserve/reservation-system/internal/core/domain"
)

// BookRoomInput carries the details of a self-service reservation.
type BookRoomInput struct {
	RoomName     string
	Date         string
	StartTime    string
	EndTime      string
	Participants int
}

// BookingService defines the self-service reservation operations available
// to every authenticated principal. Cancelling another user's booking
// additionally requires the manage-cancellations capability.
type BookingService interface {
	Book(ctx context.Context, actor Actor, input BookRoomInput) (*domain.Booking, error)
	ListOwn(ctx context.Context, actor Actor) ([]domain.Booking, error)
	Cancel(ctx context.Context, actor Actor, id string) error
}
