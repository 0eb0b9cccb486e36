package service

import (
	"strconv"
	"sync"
	"time"

	"github.com/mutreserve/reservation-system/internal/core/domain"
)

// SessionNotificationLog keeps the per-operator event log in memory for the
// lifetime of the process. Entries are ordered newest first and are only
// removed by a bulk clear; nothing is ever persisted.
type SessionNotificationLog struct {
	mu      sync.Mutex
	entries map[string][]domain.NotificationEntry
}

func NewSessionNotificationLog() *SessionNotificationLog {
	return &SessionNotificationLog{entries: make(map[string][]domain.NotificationEntry)}
}

// Append records a new entry for username and returns it. The id is derived
// from the append timestamp.
func (l *SessionNotificationLog) Append(username, message string) domain.NotificationEntry {
	now := time.Now()
	entry := domain.NotificationEntry{
		ID:        strconv.FormatInt(now.UnixNano(), 10),
		Message:   message,
		CreatedAt: now.UTC(),
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries[username] = append([]domain.NotificationEntry{entry}, l.entries[username]...)
	return entry
}

// List returns a copy of the entries for username, newest first.
func (l *SessionNotificationLog) List(username string) []domain.NotificationEntry {
	l.mu.Lock()
	defer l.mu.Unlock()

	stored := l.entries[username]
	out := make([]domain.NotificationEntry, len(stored))
	copy(out, stored)
	return out
}

// Clear drops every entry for username.
func (l *SessionNotificationLog) Clear(username string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.entries, username)
}
