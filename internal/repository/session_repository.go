package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/journalup/journal-up/internal/apperr"
	"github.com/journalup/journal-up/internal/model"
)

// SessionRepo persists session tokens. Tokens are random uuids, globally
// unique by construction, so inserts need no duplicate handling.
type SessionRepo struct {
	DB      *sql.DB
	TTLDays int // session lifetime in days
}

func NewSessionRepo(db *sql.DB, ttlDays int) *SessionRepo {
	return &SessionRepo{DB: db, TTLDays: ttlDays}
}

func (r *SessionRepo) expiry() time.Time {
	return time.Now().UTC().Add(time.Duration(r.TTLDays) * 24 * time.Hour)
}

// Create inserts a session row with a fresh token for the user.
func (r *SessionRepo) Create(ctx context.Context, userID string) (model.Session, error) {
	const q = `INSERT INTO sessions (user_id, token, expires_at) VALUES ($1, $2, $3)
		RETURNING id, user_id, token, expires_at, created_at, updated_at`
	var s model.Session
	err := r.DB.QueryRowContext(ctx, q, userID, uuid.NewString(), r.expiry()).
		Scan(&s.ID, &s.UserID, &s.Token, &s.ExpiresAt, &s.CreatedAt, &s.UpdatedAt)
	return s, err
}

// Replace deletes every session belonging to the user and creates a fresh
// one inside a single transaction, keeping the single-active-session
// guarantee intact even when two logins race.
func (r *SessionRepo) Replace(ctx context.Context, userID string) (model.Session, error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return model.Session{}, err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM sessions WHERE user_id = $1`, userID); err != nil {
		return model.Session{}, err
	}
	const q = `INSERT INTO sessions (user_id, token, expires_at) VALUES ($1, $2, $3)
		RETURNING id, user_id, token, expires_at, created_at, updated_at`
	var s model.Session
	if err := tx.QueryRowContext(ctx, q, userID, uuid.NewString(), r.expiry()).
		Scan(&s.ID, &s.UserID, &s.Token, &s.ExpiresAt, &s.CreatedAt, &s.UpdatedAt); err != nil {
		return model.Session{}, err
	}
	if err := tx.Commit(); err != nil {
		return model.Session{}, fmt.Errorf("commit session replace: %w", err)
	}
	return s, nil
}

// FindByToken fetches a session row by its opaque token.
func (r *SessionRepo) FindByToken(ctx context.Context, token string) (model.Session, error) {
	const q = `SELECT id, user_id, token, expires_at, created_at, updated_at
		FROM sessions WHERE token = $1 LIMIT 1`
	var s model.Session
	err := r.DB.QueryRowContext(ctx, q, token).
		Scan(&s.ID, &s.UserID, &s.Token, &s.ExpiresAt, &s.CreatedAt, &s.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Session{}, apperr.NotFound("session")
	}
	return s, err
}

// DeleteByToken removes a session by token. Deleting zero rows is not an
// error; logout stays idempotent.
func (r *SessionRepo) DeleteByToken(ctx context.Context, token string) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM sessions WHERE token = $1`, token)
	return err
}

// DeleteByUserID removes all sessions owned by the user.
func (r *SessionRepo) DeleteByUserID(ctx context.Context, userID string) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM sessions WHERE user_id = $1`, userID)
	return err
}

// DeleteExpired removes every session past its expiry and reports how many
// rows went away. Scheduling is an operational concern; nothing in-process
// calls this on a timer.
func (r *SessionRepo) DeleteExpired(ctx context.Context) (int64, error) {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM sessions WHERE expires_at < now()`)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
