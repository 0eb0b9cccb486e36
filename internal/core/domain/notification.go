package domain

import "time"

// NotificationEntry records one successful workflow mutation. Entries are
// ephemeral: they live in memory for the session and are only removed by a
// bulk clear.
type NotificationEntry struct {
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}
