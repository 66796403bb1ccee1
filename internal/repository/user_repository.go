// Package repository contains data access logic separated from HTTP handlers.
// Every repository wraps a *sql.DB and exposes context-aware methods that
// mirror single-table queries. Database failures are converted to the typed
// errors from the apperr package at this boundary so no raw driver error
// ever reaches a handler.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/journalup/journal-up/internal/apperr"
	"github.com/journalup/journal-up/internal/model"
)

// uniqueViolation is the Postgres error code for a unique constraint hit.
const uniqueViolation = "23505"

// isUniqueViolation reports whether err is a Postgres unique-constraint error.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

// UserRepo mirrors the 'users' table.
type UserRepo struct{ DB *sql.DB }

func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{DB: db} }

// Create inserts a user row and returns the stored record. A duplicate
// email surfaces as a Conflict error, never as a raw database error.
func (r *UserRepo) Create(ctx context.Context, email, passwordHash string) (model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	const q = `INSERT INTO users (email, password_hash) VALUES ($1, $2)
		RETURNING id, email, password_hash, created_at, updated_at`
	var u model.User
	err := r.DB.QueryRowContext(ctx, q, email, passwordHash).
		Scan(&u.ID, &u.Email, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return model.User{}, apperr.Conflict("email already registered")
		}
		return model.User{}, err
	}
	return u, nil
}

// GetByEmail fetches a user by normalized email.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	const q = `SELECT id, email, password_hash, created_at, updated_at
		FROM users WHERE email = $1 LIMIT 1`
	var u model.User
	err := r.DB.QueryRowContext(ctx, q, email).
		Scan(&u.ID, &u.Email, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return model.User{}, apperr.NotFound("user")
	}
	return u, err
}

// GetByID fetches a user by id.
func (r *UserRepo) GetByID(ctx context.Context, id string) (model.User, error) {
	const q = `SELECT id, email, password_hash, created_at, updated_at
		FROM users WHERE id = $1 LIMIT 1`
	var u model.User
	err := r.DB.QueryRowContext(ctx, q, id).
		Scan(&u.ID, &u.Email, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return model.User{}, apperr.NotFound("user")
	}
	return u, err
}

// Delete removes a user row. Administrative use only; dependent rows go
// with it via ON DELETE CASCADE.
func (r *UserRepo) Delete(ctx context.Context, id string) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return apperr.NotFound("user")
	}
	return nil
}
