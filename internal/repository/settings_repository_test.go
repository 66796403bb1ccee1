package repository

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/journalup/journal-up/internal/model"
)

var settingsTestColumns = []string{
	"id", "user_id", "notification_preferences", "theme_preferences",
	"privacy_settings", "ai_interaction_settings", "created_at", "updated_at",
}

func settingsRow(t *testing.T, s model.UserSettings) *sqlmock.Rows {
	t.Helper()
	notif, err := json.Marshal(s.NotificationPreferences)
	require.NoError(t, err)
	theme, err := json.Marshal(s.ThemePreferences)
	require.NoError(t, err)
	privacy, err := json.Marshal(s.PrivacySettings)
	require.NoError(t, err)
	aiS, err := json.Marshal(s.AIInteractionSettings)
	require.NoError(t, err)
	now := time.Now()
	return sqlmock.NewRows(settingsTestColumns).
		AddRow("st1", s.UserID, notif, theme, privacy, aiS, now, now)
}

func TestSettingsRepoGetExisting(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSettingsRepo(db)

	stored := model.DefaultUserSettings("u1")
	stored.ThemePreferences.DarkMode = true
	mock.ExpectQuery(`SELECT id, user_id, notification_preferences`).
		WithArgs("u1").
		WillReturnRows(settingsRow(t, stored))

	s, err := repo.Get(context.Background(), "u1")
	require.NoError(t, err)
	assert.True(t, s.ThemePreferences.DarkMode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSettingsRepoGetCreatesDefaultsOnFirstRead(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewSettingsRepo(db)

	defaults := model.DefaultUserSettings("u1")
	notif, err := json.Marshal(defaults.NotificationPreferences)
	require.NoError(t, err)
	theme, err := json.Marshal(defaults.ThemePreferences)
	require.NoError(t, err)
	privacy, err := json.Marshal(defaults.PrivacySettings)
	require.NoError(t, err)
	aiS, err := json.Marshal(defaults.AIInteractionSettings)
	require.NoError(t, err)

	mock.ExpectQuery(`SELECT id, user_id, notification_preferences`).
		WithArgs("u1").
		WillReturnRows(sqlmock.NewRows(settingsTestColumns))
	// the defaults row is written with explicit values, not left to the
	// schema column defaults
	mock.ExpectQuery(`INSERT INTO user_settings`).
		WithArgs("u1", notif, theme, privacy, aiS).
		WillReturnRows(settingsRow(t, defaults))

	s, err := repo.Get(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, defaults.NotificationPreferences, s.NotificationPreferences)
	assert.Equal(t, defaults.AIInteractionSettings, s.AIInteractionSettings)
	assert.NoError(t, mock.ExpectationsWereMet())
}
