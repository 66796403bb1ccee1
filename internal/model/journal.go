package model

import "time"

// Journal is a row in the `journals` table. A user may keep several
// journals; entries always belong to exactly one journal.
type Journal struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Entry is a row in the `entries` table holding the journal text itself.
type Entry struct {
	ID        string    `json:"id"`
	JournalID string    `json:"journalId"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
