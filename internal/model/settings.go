package model

import "time"

// NotificationPreferences controls how the user is reminded to journal.
type NotificationPreferences struct {
	EmailNotifications bool   `json:"emailNotifications"`
	PushNotifications  bool   `json:"pushNotifications"`
	ReminderFrequency  string `json:"reminderFrequency"`
}

// ThemePreferences holds client rendering preferences.
type ThemePreferences struct {
	DarkMode    bool   `json:"darkMode"`
	FontSize    string `json:"fontSize"`
	ColorScheme string `json:"colorScheme"`
}

// PrivacySettings controls visibility of journals and analytics sharing.
type PrivacySettings struct {
	JournalVisibility string `json:"journalVisibility"`
	ShareAnalytics    bool   `json:"shareAnalytics"`
}

// AIInteractionSettings toggles the AI-backed features per user.
type AIInteractionSettings struct {
	EnableAIInsights        bool `json:"enableAiInsights"`
	EnableSentimentAnalysis bool `json:"enableSentimentAnalysis"`
	EnableGrowthSuggestions bool `json:"enableGrowthSuggestions"`
}

// UserSettings is a row in the `user_settings` table; one row per user,
// the four preference groups stored as jsonb columns.
type UserSettings struct {
	ID                      string                  `json:"id"`
	UserID                  string                  `json:"userId"`
	NotificationPreferences NotificationPreferences `json:"notificationPreferences"`
	ThemePreferences        ThemePreferences        `json:"themePreferences"`
	PrivacySettings         PrivacySettings         `json:"privacySettings"`
	AIInteractionSettings   AIInteractionSettings   `json:"aiInteractionSettings"`
	CreatedAt               time.Time               `json:"createdAt"`
	UpdatedAt               time.Time               `json:"updatedAt"`
}

// DefaultUserSettings returns the preference values applied when a user
// has no settings row yet.
func DefaultUserSettings(userID string) UserSettings {
	return UserSettings{
		UserID: userID,
		NotificationPreferences: NotificationPreferences{
			EmailNotifications: true,
			PushNotifications:  true,
			ReminderFrequency:  "daily",
		},
		ThemePreferences: ThemePreferences{
			DarkMode:    false,
			FontSize:    "medium",
			ColorScheme: "default",
		},
		PrivacySettings: PrivacySettings{
			JournalVisibility: "private",
			ShareAnalytics:    true,
		},
		AIInteractionSettings: AIInteractionSettings{
			EnableAIInsights:        true,
			EnableSentimentAnalysis: true,
			EnableGrowthSuggestions: true,
		},
	}
}
