package domain

import (
	"errors"
	"time"
)

var ErrBookingNotFound = errors.New("booking not found")

// Booking is a self-service room reservation owned by the user who made it.
type Booking struct {
	ID           string    `json:"id" bson:"id"`
	Username     string    `json:"username" bson:"username"`
	RoomName     string    `json:"room_name" bson:"room_name"`
	Date         string    `json:"date" bson:"date"`
	StartTime    string    `json:"start_time" bson:"start_time"`
	EndTime      string    `json:"end_time" bson:"end_time"`
	Participants int       `json:"participants" bson:"participants"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
}
