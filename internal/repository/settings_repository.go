package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/journalup/journal-up/internal/model"
)

// SettingsRepo manages the one-row-per-user 'user_settings' table. The
// four preference groups live in jsonb columns and are (un)marshalled at
// this boundary.
type SettingsRepo struct{ DB *sql.DB }

func NewSettingsRepo(db *sql.DB) *SettingsRepo { return &SettingsRepo{DB: db} }

const settingsColumns = `id, user_id, notification_preferences, theme_preferences,
	privacy_settings, ai_interaction_settings, created_at, updated_at`

func scanSettings(row *sql.Row) (model.UserSettings, error) {
	var (
		s                          model.UserSettings
		notif, theme, privacy, aiS []byte
	)
	if err := row.Scan(&s.ID, &s.UserID, &notif, &theme, &privacy, &aiS, &s.CreatedAt, &s.UpdatedAt); err != nil {
		return model.UserSettings{}, err
	}
	if err := json.Unmarshal(notif, &s.NotificationPreferences); err != nil {
		return model.UserSettings{}, err
	}
	if err := json.Unmarshal(theme, &s.ThemePreferences); err != nil {
		return model.UserSettings{}, err
	}
	if err := json.Unmarshal(privacy, &s.PrivacySettings); err != nil {
		return model.UserSettings{}, err
	}
	if err := json.Unmarshal(aiS, &s.AIInteractionSettings); err != nil {
		return model.UserSettings{}, err
	}
	return s, nil
}

// Get returns the user's settings row, creating one with defaults when
// none exists yet.
func (r *SettingsRepo) Get(ctx context.Context, userID string) (model.UserSettings, error) {
	const q = `SELECT ` + settingsColumns + ` FROM user_settings WHERE user_id = $1 LIMIT 1`
	s, err := scanSettings(r.DB.QueryRowContext(ctx, q, userID))
	if errors.Is(err, sql.ErrNoRows) {
		return r.createDefaults(ctx, userID)
	}
	return s, err
}

// Upsert writes the full settings record for the user, inserting or
// updating as needed. Callers merge partial updates into the current
// values before calling.
func (r *SettingsRepo) Upsert(ctx context.Context, s model.UserSettings) (model.UserSettings, error) {
	notif, err := json.Marshal(s.NotificationPreferences)
	if err != nil {
		return model.UserSettings{}, err
	}
	theme, err := json.Marshal(s.ThemePreferences)
	if err != nil {
		return model.UserSettings{}, err
	}
	privacy, err := json.Marshal(s.PrivacySettings)
	if err != nil {
		return model.UserSettings{}, err
	}
	aiS, err := json.Marshal(s.AIInteractionSettings)
	if err != nil {
		return model.UserSettings{}, err
	}
	const q = `INSERT INTO user_settings
			(user_id, notification_preferences, theme_preferences, privacy_settings, ai_interaction_settings)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id) DO UPDATE SET
			notification_preferences = EXCLUDED.notification_preferences,
			theme_preferences        = EXCLUDED.theme_preferences,
			privacy_settings         = EXCLUDED.privacy_settings,
			ai_interaction_settings  = EXCLUDED.ai_interaction_settings,
			updated_at               = now()
		RETURNING ` + settingsColumns
	return scanSettings(r.DB.QueryRowContext(ctx, q, s.UserID, notif, theme, privacy, aiS))
}

func (r *SettingsRepo) createDefaults(ctx context.Context, userID string) (model.UserSettings, error) {
	// Writes the default values explicitly so they cannot drift from the
	// schema column defaults. The upsert also absorbs a racing first read
	// for the same user.
	return r.Upsert(ctx, model.DefaultUserSettings(userID))
}
