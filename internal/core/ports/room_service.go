package ports

import (
	"context"

	"github.com/mutreserve/reservation-system/internal/core/domain"
)

// Actor identifies the principal invoking a workflow operation. The service
// consults the authorization guard with it before every mutation.
type Actor struct {
	Username string
	Role     string
}

// CreateRoomInput carries all data needed to create a room. Status is the
// baseline status for standard rooms; VIP rooms always start in
// pending_approval regardless of the supplied value.
type CreateRoomInput struct {
	Name      string
	Floor     int
	Building  string
	Capacity  int
	Type      domain.RoomType
	Status    domain.RoomStatus
	Date      string
	StartTime string
	EndTime   string
}

// EditRoomInput overwrites every editable field of an existing room. The id
// itself is never reassigned.
type EditRoomInput struct {
	Name      string
	Floor     int
	Building  string
	Capacity  int
	Type      domain.RoomType
	Status    domain.RoomStatus
	Date      string
	StartTime string
	EndTime   string
}

// ApproveRoomInput carries the approval decision. Date and times are merged
// onto the record when non-empty.
type ApproveRoomInput struct {
	Reason    string
	Date      string
	StartTime string
	EndTime   string
}

// RoomService defines the room lifecycle workflow operations. Every mutation
// requires the manage-rooms capability; ordinary users may only list.
//
// Edit, Approve, and Close targeting an id absent from the registry complete
// as silent no-ops and return a nil room. Delete is idempotent.
type RoomService interface {
	ListRooms(ctx context.Context, actor Actor) ([]domain.Room, error)
	CreateRoom(ctx context.Context, actor Actor, input CreateRoomInput) (*domain.Room, error)
	EditRoom(ctx context.Context, actor Actor, id string, input EditRoomInput) (*domain.Room, error)
	ApproveRoom(ctx context.Context, actor Actor, id string, input ApproveRoomInput) (*domain.Room, error)
	CloseRoom(ctx context.Context, actor Actor, id string) (*domain.Room, error)
	DeleteRoom(ctx context.Context, actor Actor, id string) error
}
