package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/journalup/journal-up/internal/apperr"
	"github.com/journalup/journal-up/internal/middleware"
	"github.com/journalup/journal-up/internal/model"
	"github.com/journalup/journal-up/internal/repository"
)

// SettingsHandler serves the per-user preferences endpoints. It talks to
// the repository directly; there is no business logic beyond merging.
type SettingsHandler struct {
	Settings *repository.SettingsRepo
}

func NewSettingsHandler(s *repository.SettingsRepo) *SettingsHandler {
	return &SettingsHandler{Settings: s}
}

// updateSettingsReq carries a partial update: each preference group is
// optional and, when present, replaces that group wholesale.
type updateSettingsReq struct {
	NotificationPreferences *model.NotificationPreferences `json:"notificationPreferences"`
	ThemePreferences        *model.ThemePreferences        `json:"themePreferences"`
	PrivacySettings         *model.PrivacySettings         `json:"privacySettings"`
	AIInteractionSettings   *model.AIInteractionSettings   `json:"aiInteractionSettings"`
}

// Get returns the user's settings, creating the default row on first read.
func (h *SettingsHandler) Get(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	settings, err := h.Settings.Get(ctx, middleware.UserID(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "settings": settings})
}

// Update merges the provided preference groups into the current settings
// and writes the result back.
func (h *SettingsHandler) Update(c echo.Context) error {
	var req updateSettingsReq
	if err := c.Bind(&req); err != nil {
		return apperr.Validation("invalid body")
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	current, err := h.Settings.Get(ctx, middleware.UserID(c))
	if err != nil {
		return err
	}
	if req.NotificationPreferences != nil {
		current.NotificationPreferences = *req.NotificationPreferences
	}
	if req.ThemePreferences != nil {
		current.ThemePreferences = *req.ThemePreferences
	}
	if req.PrivacySettings != nil {
		current.PrivacySettings = *req.PrivacySettings
	}
	if req.AIInteractionSettings != nil {
		current.AIInteractionSettings = *req.AIInteractionSettings
	}

	updated, err := h.Settings.Upsert(ctx, current)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "settings": updated})
}
