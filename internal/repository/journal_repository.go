package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/journalup/journal-up/internal/apperr"
	"github.com/journalup/journal-up/internal/model"
)

// JournalRepo covers both the 'journals' and 'entries' tables; an entry
// never exists without its journal so the two share one repository.
type JournalRepo struct{ DB *sql.DB }

func NewJournalRepo(db *sql.DB) *JournalRepo { return &JournalRepo{DB: db} }

// Create inserts a journal owned by the user.
func (r *JournalRepo) Create(ctx context.Context, userID, title string) (model.Journal, error) {
	const q = `INSERT INTO journals (user_id, title) VALUES ($1, $2)
		RETURNING id, user_id, title, created_at, updated_at`
	var j model.Journal
	err := r.DB.QueryRowContext(ctx, q, userID, title).
		Scan(&j.ID, &j.UserID, &j.Title, &j.CreatedAt, &j.UpdatedAt)
	return j, err
}

// FindByID fetches a journal regardless of owner; handlers enforce
// ownership with the UserID field.
func (r *JournalRepo) FindByID(ctx context.Context, id string) (model.Journal, error) {
	const q = `SELECT id, user_id, title, created_at, updated_at
		FROM journals WHERE id = $1 LIMIT 1`
	var j model.Journal
	err := r.DB.QueryRowContext(ctx, q, id).
		Scan(&j.ID, &j.UserID, &j.Title, &j.CreatedAt, &j.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Journal{}, apperr.NotFound("journal")
	}
	return j, err
}

// FindByUserID lists the user's journals, newest first.
func (r *JournalRepo) FindByUserID(ctx context.Context, userID string) ([]model.Journal, error) {
	const q = `SELECT id, user_id, title, created_at, updated_at
		FROM journals WHERE user_id = $1 ORDER BY created_at DESC`
	rows, err := r.DB.QueryContext(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Journal, 0)
	for rows.Next() {
		var j model.Journal
		if err := rows.Scan(&j.ID, &j.UserID, &j.Title, &j.CreatedAt, &j.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, j)
	}
	return out, rows.Err()
}

// CreateEntry appends an entry to a journal.
func (r *JournalRepo) CreateEntry(ctx context.Context, journalID, content string) (model.Entry, error) {
	const q = `INSERT INTO entries (journal_id, content) VALUES ($1, $2)
		RETURNING id, journal_id, content, created_at, updated_at`
	var e model.Entry
	err := r.DB.QueryRowContext(ctx, q, journalID, content).
		Scan(&e.ID, &e.JournalID, &e.Content, &e.CreatedAt, &e.UpdatedAt)
	return e, err
}

// GetEntries lists a journal's entries oldest first.
func (r *JournalRepo) GetEntries(ctx context.Context, journalID string) ([]model.Entry, error) {
	const q = `SELECT id, journal_id, content, created_at, updated_at
		FROM entries WHERE journal_id = $1 ORDER BY created_at ASC`
	rows, err := r.DB.QueryContext(ctx, q, journalID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Entry, 0)
	for rows.Next() {
		var e model.Entry
		if err := rows.Scan(&e.ID, &e.JournalID, &e.Content, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// UpdateEntry rewrites an entry's content. The journal id scopes the
// update so an entry id from another journal cannot be reached.
func (r *JournalRepo) UpdateEntry(ctx context.Context, journalID, id, content string) (model.Entry, error) {
	const q = `UPDATE entries SET content = $3, updated_at = now()
		WHERE id = $2 AND journal_id = $1
		RETURNING id, journal_id, content, created_at, updated_at`
	var e model.Entry
	err := r.DB.QueryRowContext(ctx, q, journalID, id, content).
		Scan(&e.ID, &e.JournalID, &e.Content, &e.CreatedAt, &e.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Entry{}, apperr.NotFound("entry")
	}
	return e, err
}
