package service

import "testing"

func TestSessionNotificationLog_AppendAndList(t *testing.T) {
	log := NewSessionNotificationLog()

	first := log.Append("admin", "first")
	second := log.Append("admin", "second")

	if first.ID == "" || second.ID == "" {
		t.Fatalf("entries must carry ids")
	}
	if first.CreatedAt.IsZero() {
		t.Fatalf("entries must carry timestamps")
	}

	entries := log.List("admin")
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	// Newest first.
	if entries[0].Message != "second" || entries[1].Message != "first" {
		t.Fatalf("unexpected ordering: %+v", entries)
	}
}

func TestSessionNotificationLog_PerUserIsolation(t *testing.T) {
	log := NewSessionNotificationLog()

	log.Append("admin", "admin message")
	log.Append("somchai", "user message")

	if entries := log.List("admin"); len(entries) != 1 || entries[0].Message != "admin message" {
		t.Fatalf("unexpected entries for admin: %+v", entries)
	}
	if entries := log.List("somchai"); len(entries) != 1 || entries[0].Message != "user message" {
		t.Fatalf("unexpected entries for somchai: %+v", entries)
	}
	if entries := log.List("ghost"); len(entries) != 0 {
		t.Fatalf("unknown user must have no entries, got %+v", entries)
	}
}

func TestSessionNotificationLog_Clear(t *testing.T) {
	log := NewSessionNotificationLog()

	log.Append("admin", "one")
	log.Append("admin", "two")
	log.Append("somchai", "keep me")

	log.Clear("admin")

	if entries := log.List("admin"); len(entries) != 0 {
		t.Fatalf("clear must remove every entry, got %+v", entries)
	}
	if entries := log.List("somchai"); len(entries) != 1 {
		t.Fatalf("clear must not touch other users, got %+v", entries)
	}
}

func TestSessionNotificationLog_ListReturnsCopy(t *testing.T) {
	log := NewSessionNotificationLog()
	log.Append("admin", "original")

	entries := log.List("admin")
	entries[0].Message = "mutated"

	if fresh := log.List("admin"); fresh[0].Message != "original" {
		t.Fatalf("caller mutation leaked into the log")
	}
}
