// Package queue defines message payloads exchanged over the message broker.
package queue

// EntryCreatedEvent is published whenever a journal entry is written.
// It carries the full entry text so downstream consumers can analyze or
// index it without querying the primary database.
type EntryCreatedEvent struct {
	EntryID   string `json:"entry_id"`
	JournalID string `json:"journal_id"`
	UserID    string `json:"user_id"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"`
}
