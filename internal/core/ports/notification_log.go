package ports

import "github.com/mutreserve/reservation-system/internal/core/domain"

// NotificationLog is the session-scoped, in-memory event log the workflow
// service appends to on every successful mutation. Entries are never
// persisted; removal is bulk-clear only.
type NotificationLog interface {
	Append(username, message string) domain.NotificationEntry
	// List returns the entries for username, newest first.
	List(username string) []domain.NotificationEntry
	Clear(username string)
}
