package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/mutreserve/reservation-system/internal/api/metrics"
	"github.com/mutreserve/reservation-system/internal/core/domain"
	"github.com/mutreserve/reservation-system/internal/core/ports"
)

// Operator-facing notification messages for each workflow mutation.
const (
	msgRoomCreated = "เพิ่มห้องประชุมเรียบร้อยแล้ว"
	msgRoomUpdated = "อัปเดตข้อมูลห้องประชุมเรียบร้อยแล้ว"
	msgRoomApprove = "อนุมัติห้องประชุม %s เรียบร้อยแล้ว"
	msgRoomClosed  = "ปิดการใช้งานห้องประชุม %s เรียบร้อยแล้ว"
	msgRoomDeleted = "ลบห้องประชุม %s เรียบร้อยแล้ว"
)

// RoomService is the room lifecycle workflow engine. It is the only writer
// of Room.Status; every mutation consults the authorization guard, rewrites
// the registry collection as a whole, and appends one notification entry for
// the acting principal.
type RoomService struct {
	repo          ports.RoomRepository
	notifications ports.NotificationLog
	log           zerolog.Logger
}

func NewRoomService(repo ports.RoomRepository, notifications ports.NotificationLog, log zerolog.Logger) *RoomService {
	return &RoomService{repo: repo, notifications: notifications, log: log}
}

// ListRooms returns the registry in insertion order. Listing is read-only
// and permitted for every authenticated principal.
func (s *RoomService) ListRooms(ctx context.Context, _ ports.Actor) ([]domain.Room, error) {
	return s.repo.List(ctx)
}

// CreateRoom validates the input, assigns a fresh id, and appends the room
// to the registry. VIP rooms start in pending_approval awaiting sign-off;
// standard rooms take the supplied baseline status.
func (s *RoomService) CreateRoom(ctx context.Context, actor ports.Actor, input ports.CreateRoomInput) (*domain.Room, error) {
	if err := s.authorize(actor); err != nil {
		return nil, err
	}
	if err := validateRoomInput(input.Name, input.Floor, input.Building, input.Capacity, input.Type); err != nil {
		return nil, err
	}

	status := input.Status
	if !status.IsBaseline() {
		status = domain.StatusAvailable
	}
	if input.Type == domain.TypeVIP {
		status = domain.StatusPendingApproval
	}

	now := time.Now().UTC()
	room := domain.Room{
		ID:        generateRoomID(),
		Name:      input.Name,
		Floor:     input.Floor,
		Building:  input.Building,
		Capacity:  input.Capacity,
		Type:      input.Type,
		Date:      input.Date,
		StartTime: input.StartTime,
		EndTime:   input.EndTime,
		Status:    status,
		CreatedAt: now,
		UpdatedAt: now,
	}

	rooms, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	rooms = append(rooms, room)
	if err := s.repo.ReplaceAll(ctx, rooms); err != nil {
		s.log.Error().Err(err).Msg("failed to persist room registry")
		return nil, err
	}

	s.notifications.Append(actor.Username, msgRoomCreated)
	metrics.RoomsCreatedTotal.WithLabelValues(string(room.Type)).Inc()
	metrics.RoomOperationsTotal.WithLabelValues("create").Inc()
	s.log.Info().Str("room_id", room.ID).Str("name", room.Name).Str("status", string(room.Status)).Msg("room created")

	return &room, nil
}

// EditRoom overwrites every editable field of the room with the given id.
// The id, creation time, and approval reason survive; the status may only be
// reset to a baseline value — approval and closure go through their own
// operations. An absent id completes as a silent no-op.
func (s *RoomService) EditRoom(ctx context.Context, actor ports.Actor, id string, input ports.EditRoomInput) (*domain.Room, error) {
	if err := s.authorize(actor); err != nil {
		return nil, err
	}
	if err := validateRoomInput(input.Name, input.Floor, input.Building, input.Capacity, input.Type); err != nil {
		return nil, err
	}

	rooms, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	idx := indexByID(rooms, id)
	if idx < 0 {
		s.log.Debug().Str("room_id", id).Msg("edit target absent, nothing to do")
		return nil, nil
	}

	room := rooms[idx]
	room.Name = input.Name
	room.Floor = input.Floor
	room.Building = input.Building
	room.Capacity = input.Capacity
	room.Type = input.Type
	room.Date = input.Date
	room.StartTime = input.StartTime
	room.EndTime = input.EndTime
	if input.Status.IsBaseline() {
		room.Status = input.Status
	}
	room.UpdatedAt = time.Now().UTC()
	rooms[idx] = room

	if err := s.repo.ReplaceAll(ctx, rooms); err != nil {
		s.log.Error().Err(err).Msg("failed to persist room registry")
		return nil, err
	}

	s.notifications.Append(actor.Username, msgRoomUpdated)
	metrics.RoomOperationsTotal.WithLabelValues("edit").Inc()
	s.log.Info().Str("room_id", room.ID).Str("name", room.Name).Msg("room updated")

	return &room, nil
}

// ApproveRoom moves the room to approved and records the approval reason.
// The transition is validated against the state machine: a closed room
// cannot be approved. An absent id completes as a silent no-op.
func (s *RoomService) ApproveRoom(ctx context.Context, actor ports.Actor, id string, input ports.ApproveRoomInput) (*domain.Room, error) {
	if err := s.authorize(actor); err != nil {
		return nil, err
	}

	rooms, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	idx := indexByID(rooms, id)
	if idx < 0 {
		s.log.Debug().Str("room_id", id).Msg("approve target absent, nothing to do")
		return nil, nil
	}

	room := rooms[idx]
	if !room.Status.CanTransitionTo(domain.StatusApproved) {
		return nil, fmt.Errorf("approve room: %w (from %s to %s)", domain.ErrInvalidTransition, room.Status, domain.StatusApproved)
	}

	room.Status = domain.StatusApproved
	room.ApprovalReason = input.Reason
	if input.Date != "" {
		room.Date = input.Date
	}
	if input.StartTime != "" {
		room.StartTime = input.StartTime
	}
	if input.EndTime != "" {
		room.EndTime = input.EndTime
	}
	room.UpdatedAt = time.Now().UTC()
	rooms[idx] = room

	if err := s.repo.ReplaceAll(ctx, rooms); err != nil {
		s.log.Error().Err(err).Msg("failed to persist room registry")
		return nil, err
	}

	s.notifications.Append(actor.Username, fmt.Sprintf(msgRoomApprove, room.Name))
	metrics.RoomOperationsTotal.WithLabelValues("approve").Inc()
	s.log.Info().Str("room_id", room.ID).Str("name", room.Name).Msg("room approved")

	return &room, nil
}

// CloseRoom moves the room to closed. Closing is legal from every state, so
// closing an already-closed room simply rewrites it. An absent id completes
// as a silent no-op.
func (s *RoomService) CloseRoom(ctx context.Context, actor ports.Actor, id string) (*domain.Room, error) {
	if err := s.authorize(actor); err != nil {
		return nil, err
	}

	rooms, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	idx := indexByID(rooms, id)
	if idx < 0 {
		s.log.Debug().Str("room_id", id).Msg("close target absent, nothing to do")
		return nil, nil
	}

	room := rooms[idx]
	room.Status = domain.StatusClosed
	room.UpdatedAt = time.Now().UTC()
	rooms[idx] = room

	if err := s.repo.ReplaceAll(ctx, rooms); err != nil {
		s.log.Error().Err(err).Msg("failed to persist room registry")
		return nil, err
	}

	s.notifications.Append(actor.Username, fmt.Sprintf(msgRoomClosed, room.Name))
	metrics.RoomOperationsTotal.WithLabelValues("close").Inc()
	s.log.Info().Str("room_id", room.ID).Str("name", room.Name).Msg("room closed")

	return &room, nil
}

// DeleteRoom removes the room from the registry. Deleting is idempotent:
// filtering out an absent id leaves the collection unchanged and raises no
// error, and nothing is logged when no record was removed.
func (s *RoomService) DeleteRoom(ctx context.Context, actor ports.Actor, id string) error {
	if err := s.authorize(actor); err != nil {
		return err
	}

	rooms, err := s.repo.List(ctx)
	if err != nil {
		return err
	}
	idx := indexByID(rooms, id)
	if idx < 0 {
		return nil
	}

	removed := rooms[idx]
	rooms = append(rooms[:idx], rooms[idx+1:]...)
	if err := s.repo.ReplaceAll(ctx, rooms); err != nil {
		s.log.Error().Err(err).Msg("failed to persist room registry")
		return err
	}

	s.notifications.Append(actor.Username, fmt.Sprintf(msgRoomDeleted, removed.Name))
	metrics.RoomOperationsTotal.WithLabelValues("delete").Inc()
	s.log.Info().Str("room_id", removed.ID).Str("name", removed.Name).Msg("room deleted")

	return nil
}

func (s *RoomService) authorize(actor ports.Actor) error {
	if !domain.Can(actor.Role, domain.CapManageRooms) {
		metrics.AuthzDeniedTotal.WithLabelValues(string(domain.CapManageRooms)).Inc()
		s.log.Warn().Str("username", actor.Username).Str("role", actor.Role).Msg("room mutation refused")
		return domain.ErrForbidden
	}
	return nil
}

func validateRoomInput(name string, floor int, building string, capacity int, roomType domain.RoomType) error {
	switch {
	case name == "":
		return fmt.Errorf("%w: name is required", domain.ErrInvalidRoom)
	case floor < 1 || floor > 5:
		return fmt.Errorf("%w: floor must be between 1 and 5", domain.ErrInvalidRoom)
	case !domain.ValidBuilding(building):
		return fmt.Errorf("%w: unknown building %q", domain.ErrInvalidRoom, building)
	case capacity < 0:
		return fmt.Errorf("%w: capacity must not be negative", domain.ErrInvalidRoom)
	case roomType != domain.TypeStandard && roomType != domain.TypeVIP:
		return fmt.Errorf("%w: unknown room type %q", domain.ErrInvalidRoom, roomType)
	}
	return nil
}

func indexByID(rooms []domain.Room, id string) int {
	for i := range rooms {
		if rooms[i].ID == id {
			return i
		}
	}
	return -1
}

// generateRoomID returns a unique room identifier in the format RM-XXXXXXXX.
func generateRoomID() string {
	b := make([]byte, 4)
	if _, err := rand.Read(b); err != nil {
		// fallback: use current nanoseconds
		return fmt.Sprintf("RM-%08X", time.Now().UnixNano()&0xFFFFFFFF)
	}
	return fmt.Sprintf("RM-%08X", b)
}
