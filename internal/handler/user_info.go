package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/journalup/journal-up/internal/apperr"
	"github.com/journalup/journal-up/internal/middleware"
	"github.com/journalup/journal-up/internal/model"
	"github.com/journalup/journal-up/internal/repository"
)

// UserInfoHandler serves the profile endpoints.
type UserInfoHandler struct {
	Info *repository.UserInfoRepo
}

func NewUserInfoHandler(r *repository.UserInfoRepo) *UserInfoHandler {
	return &UserInfoHandler{Info: r}
}

type createUserInfoReq struct {
	FirstName   string            `json:"firstName"`
	LastName    string            `json:"lastName"`
	Bio         string            `json:"bio"`
	Timezone    string            `json:"timezone"`
	GrowthGoals model.GrowthGoals `json:"growthGoals"`
}

// updateUserInfoReq is a partial patch; nil fields keep their value.
type updateUserInfoReq struct {
	FirstName   *string            `json:"firstName"`
	LastName    *string            `json:"lastName"`
	Bio         *string            `json:"bio"`
	Timezone    *string            `json:"timezone"`
	GrowthGoals *model.GrowthGoals `json:"growthGoals"`
}

// Get returns the user's profile.
func (h *UserInfoHandler) Get(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	info, err := h.Info.FindByUserID(ctx, middleware.UserID(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "userInfo": info})
}

// Create stores the profile. A user has at most one; a second create
// conflicts.
func (h *UserInfoHandler) Create(c echo.Context) error {
	var req createUserInfoReq
	if err := c.Bind(&req); err != nil {
		return apperr.Validation("invalid body")
	}
	if strings.TrimSpace(req.FirstName) == "" || strings.TrimSpace(req.LastName) == "" {
		return apperr.Validation("firstName and lastName are required")
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	info, err := h.Info.Create(ctx, model.UserInfo{
		UserID:      middleware.UserID(c),
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Bio:         req.Bio,
		Timezone:    req.Timezone,
		GrowthGoals: req.GrowthGoals,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "userInfo": info})
}

// Update merges the patch into the stored profile.
func (h *UserInfoHandler) Update(c echo.Context) error {
	var req updateUserInfoReq
	if err := c.Bind(&req); err != nil {
		return apperr.Validation("invalid body")
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	current, err := h.Info.FindByUserID(ctx, middleware.UserID(c))
	if err != nil {
		return err
	}
	if req.FirstName != nil {
		current.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		current.LastName = *req.LastName
	}
	if req.Bio != nil {
		current.Bio = *req.Bio
	}
	if req.Timezone != nil {
		current.Timezone = *req.Timezone
	}
	if req.GrowthGoals != nil {
		current.GrowthGoals = *req.GrowthGoals
	}

	updated, err := h.Info.Update(ctx, current)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "userInfo": updated})
}

// Delete removes the profile; deleting twice succeeds.
func (h *UserInfoHandler) Delete(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	if err := h.Info.Delete(ctx, middleware.UserID(c)); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}
