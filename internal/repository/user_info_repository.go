package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/journalup/journal-up/internal/apperr"
	"github.com/journalup/journal-up/internal/model"
)

// UserInfoRepo manages the one-row-per-user 'user_info' profile table.
type UserInfoRepo struct{ DB *sql.DB }

func NewUserInfoRepo(db *sql.DB) *UserInfoRepo { return &UserInfoRepo{DB: db} }

const userInfoColumns = `id, user_id, first_name, last_name, COALESCE(bio, ''),
	timezone, growth_goals, created_at, updated_at`

func scanUserInfo(row *sql.Row) (model.UserInfo, error) {
	var (
		info  model.UserInfo
		goals []byte
	)
	err := row.Scan(&info.ID, &info.UserID, &info.FirstName, &info.LastName,
		&info.Bio, &info.Timezone, &goals, &info.CreatedAt, &info.UpdatedAt)
	if err != nil {
		return model.UserInfo{}, err
	}
	if err := json.Unmarshal(goals, &info.GrowthGoals); err != nil {
		return model.UserInfo{}, err
	}
	return info, nil
}

// Create inserts the user's profile row. A second insert for the same user
// surfaces as a Conflict via the unique constraint on user_id.
func (r *UserInfoRepo) Create(ctx context.Context, info model.UserInfo) (model.UserInfo, error) {
	goals, err := json.Marshal(info.GrowthGoals)
	if err != nil {
		return model.UserInfo{}, err
	}
	const q = `INSERT INTO user_info (user_id, first_name, last_name, bio, timezone, growth_goals)
		VALUES ($1, $2, $3, NULLIF($4, ''), COALESCE(NULLIF($5, ''), 'UTC'), $6)
		RETURNING ` + userInfoColumns
	created, err := scanUserInfo(r.DB.QueryRowContext(ctx, q,
		info.UserID, info.FirstName, info.LastName, info.Bio, info.Timezone, goals))
	if err != nil {
		if isUniqueViolation(err) {
			return model.UserInfo{}, apperr.Conflict("user info already exists")
		}
		return model.UserInfo{}, err
	}
	return created, nil
}

// FindByUserID fetches the profile for a user.
func (r *UserInfoRepo) FindByUserID(ctx context.Context, userID string) (model.UserInfo, error) {
	const q = `SELECT ` + userInfoColumns + ` FROM user_info WHERE user_id = $1 LIMIT 1`
	info, err := scanUserInfo(r.DB.QueryRowContext(ctx, q, userID))
	if errors.Is(err, sql.ErrNoRows) {
		return model.UserInfo{}, apperr.NotFound("user info")
	}
	return info, err
}

// Update rewrites the full profile row for the user; the service merges
// partial patches into the current record before calling.
func (r *UserInfoRepo) Update(ctx context.Context, info model.UserInfo) (model.UserInfo, error) {
	goals, err := json.Marshal(info.GrowthGoals)
	if err != nil {
		return model.UserInfo{}, err
	}
	const q = `UPDATE user_info SET
			first_name = $2, last_name = $3, bio = NULLIF($4, ''),
			timezone = $5, growth_goals = $6, updated_at = now()
		WHERE user_id = $1
		RETURNING ` + userInfoColumns
	updated, err := scanUserInfo(r.DB.QueryRowContext(ctx, q,
		info.UserID, info.FirstName, info.LastName, info.Bio, info.Timezone, goals))
	if errors.Is(err, sql.ErrNoRows) {
		return model.UserInfo{}, apperr.NotFound("user info")
	}
	return updated, err
}

// Delete removes the user's profile row; deleting a missing row is not an
// error.
func (r *UserInfoRepo) Delete(ctx context.Context, userID string) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM user_info WHERE user_id = $1`, userID)
	return err
}
