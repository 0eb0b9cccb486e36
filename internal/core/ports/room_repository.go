package ports

import (
	"context"

	"github.com/mutreserve/reservation-system/internal/core/domain"
)

// RoomRepository is the room registry: the durable, ordered collection of
// room records. Writes replace the serialized collection as a whole; there
// is no per-record persistence. The repository performs no uniqueness
// checks — the workflow service is responsible for id freshness at creation.
type RoomRepository interface {
	// List returns all rooms in insertion order.
	List(ctx context.Context) ([]domain.Room, error)
	// ReplaceAll atomically overwrites the stored collection with rooms.
	ReplaceAll(ctx context.Context, rooms []domain.Room) error
}
