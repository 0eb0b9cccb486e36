package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/mutreserve/reservation-system/internal/core/domain"
	"github.com/mutreserve/reservation-system/internal/core/ports"
)

// BookingService implements the self-service reservation operations. Any
// authenticated principal may book and cancel their own reservations; the
// manage-cancellations capability additionally allows cancelling on behalf
// of other users.
//
// Time-slot overlap between bookings is deliberately not checked.
type BookingService struct {
	repo ports.BookingRepository
	log  zerolog.Logger
}

func NewBookingService(repo ports.BookingRepository, log zerolog.Logger) *BookingService {
	return &BookingService{repo: repo, log: log}
}

func (s *BookingService) Book(ctx context.Context, actor ports.Actor, input ports.BookRoomInput) (*domain.Booking, error) {
	if input.RoomName == "" || input.Date == "" {
		return nil, fmt.Errorf("%w: room and date are required", domain.ErrInvalidRoom)
	}
	if input.Participants < 1 {
		return nil, fmt.Errorf("%w: at least one participant", domain.ErrInvalidRoom)
	}

	booking := &domain.Booking{
		ID:           generateBookingID(),
		Username:     actor.Username,
		RoomName:     input.RoomName,
		Date:         input.Date,
		StartTime:    input.StartTime,
		EndTime:      input.EndTime,
		Participants: input.Participants,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.repo.Insert(ctx, booking); err != nil {
		s.log.Error().Err(err).Msg("failed to create booking")
		return nil, err
	}

	s.log.Info().Str("booking_id", booking.ID).Str("username", actor.Username).Str("room", booking.RoomName).Msg("booking created")
	return booking, nil
}

func (s *BookingService) ListOwn(ctx context.Context, actor ports.Actor) ([]domain.Booking, error) {
	return s.repo.ListByUsername(ctx, actor.Username)
}

// Cancel removes a booking. Owners may cancel their own; anyone else needs
// the manage-cancellations capability.
func (s *BookingService) Cancel(ctx context.Context, actor ports.Actor, id string) error {
	booking, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if booking.Username != actor.Username && !domain.Can(actor.Role, domain.CapManageCancellations) {
		return domain.ErrForbidden
	}

	if err := s.repo.Remove(ctx, id); err != nil {
		return err
	}

	s.log.Info().Str("booking_id", id).Str("cancelled_by", actor.Username).Msg("booking cancelled")
	return nil
}

// generateBookingID returns a unique booking identifier in the format BK-XXXXXXXX.
func generateBookingID() string {
	b := make([]byte, 4)
	if _, err := rand.Read(b); err != nil {
		return fmt.Sprintf("BK-%08X", time.Now().UnixNano()&0xFFFFFFFF)
	}
	return fmt.Sprintf("BK-%08X", b)
}
