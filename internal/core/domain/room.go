package domain

import (
	"errors"
	"time"
)

// RoomStatus represents the lifecycle state of a meeting room.
type RoomStatus string

const (
	StatusAvailable       RoomStatus = "available"
	StatusUnavailable     RoomStatus = "unavailable"
	StatusMaintenance     RoomStatus = "maintenance"
	StatusPendingApproval RoomStatus = "pending_approval"
	StatusApproved        RoomStatus = "approved"
	StatusClosed          RoomStatus = "closed"
)

// RoomType distinguishes ordinary rooms from VIP rooms, which require an
// approval step before they are bookable.
type RoomType string

const (
	TypeStandard RoomType = "standard"
	TypeVIP      RoomType = "vip"
)

// validTransitions defines the allowed state machine transitions.
// Closing is permitted from every state, including closed itself: closing an
// already-closed room is a no-op rather than an error. A closed room is not
// terminal — editing rewrites it through the creation path.
var validTransitions = map[RoomStatus][]RoomStatus{
	StatusAvailable:       {StatusApproved, StatusClosed},
	StatusUnavailable:     {StatusApproved, StatusClosed},
	StatusMaintenance:     {StatusApproved, StatusClosed},
	StatusPendingApproval: {StatusApproved, StatusClosed},
	StatusApproved:        {StatusClosed},
	StatusClosed:          {StatusClosed},
}

var ErrInvalidTransition = errors.New("invalid status transition")
var ErrRoomNotFound = errors.New("room not found")
var ErrInvalidRoom = errors.New("invalid room attributes")
var ErrForbidden = errors.New("access forbidden")

// CanTransitionTo reports whether a transition from the current status to next is valid.
func (s RoomStatus) CanTransitionTo(next RoomStatus) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// IsBaseline reports whether s is one of the statuses an operator may assign
// directly when creating or editing a room.
func (s RoomStatus) IsBaseline() bool {
	switch s {
	case StatusAvailable, StatusUnavailable, StatusMaintenance:
		return true
	}
	return false
}

// Buildings a room can belong to.
const (
	BuildingA = "A"
	BuildingB = "B"
	BuildingC = "C"
)

// ValidBuilding reports whether b names a known building.
func ValidBuilding(b string) bool {
	return b == BuildingA || b == BuildingB || b == BuildingC
}

// Room is the core aggregate root. ID is assigned once at creation and is
// the sole lookup key; Status only changes through the workflow service.
type Room struct {
	ID             string     `json:"id" bson:"id"`
	Name           string     `json:"name" bson:"name"`
	Floor          int        `json:"floor" bson:"floor"`
	Building       string     `json:"building" bson:"building"`
	Capacity       int        `json:"capacity" bson:"capacity"`
	Type           RoomType   `json:"type" bson:"type"`
	Date           string     `json:"date,omitempty" bson:"date,omitempty"`
	StartTime      string     `json:"start_time,omitempty" bson:"start_time,omitempty"`
	EndTime        string     `json:"end_time,omitempty" bson:"end_time,omitempty"`
	Status         RoomStatus `json:"status" bson:"status"`
	ApprovalReason string     `json:"approval_reason,omitempty" bson:"approval_reason,omitempty"`
	CreatedAt      time.Time  `json:"created_at" bson:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at" bson:"updated_at"`
}
