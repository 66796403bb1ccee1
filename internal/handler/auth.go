// Package handler contains the HTTP handlers. Handlers bind and validate
// request bodies, delegate to services or repositories, and shape JSON
// responses. Typed errors bubble up to HTTPErrorHandler.
package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/journalup/journal-up/internal/apperr"
	"github.com/journalup/journal-up/internal/service"
)

// dbTimeout bounds every handler-initiated database call.
const dbTimeout = 5 * time.Second

func reqCtx(c echo.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request().Context(), dbTimeout)
}

// reqCtxLong is for endpoints that call out to the AI provider.
func reqCtxLong(c echo.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request().Context(), 75*time.Second)
}

// AuthHandler bundles dependencies for auth endpoints.
type AuthHandler struct {
	Auth *service.AuthService
}

func NewAuthHandler(auth *service.AuthService) *AuthHandler {
	return &AuthHandler{Auth: auth}
}

// ----- DTOs -----

type credentialsReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type userPart struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

type authResp struct {
	Success      bool     `json:"success"`
	Token        string   `json:"token"`
	SessionToken string   `json:"sessionToken"`
	User         userPart `json:"user"`
}

func toAuthResp(res service.AuthResult) authResp {
	return authResp{
		Success:      true,
		Token:        res.Token,
		SessionToken: res.SessionToken,
		User:         userPart{ID: res.User.ID, Email: res.User.Email},
	}
}

// Signup: create the account and authenticate immediately.
func (h *AuthHandler) Signup(c echo.Context) error {
	var req credentialsReq
	if err := c.Bind(&req); err != nil {
		return apperr.Validation("invalid body")
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	res, err := h.Auth.Signup(ctx, req.Email, req.Password)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toAuthResp(res))
}

// Login: verify credentials and rotate the session.
func (h *AuthHandler) Login(c echo.Context) error {
	var req credentialsReq
	if err := c.Bind(&req); err != nil {
		return apperr.Validation("invalid body")
	}
	if req.Email == "" || req.Password == "" {
		return apperr.Validation("email and password are required")
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	res, err := h.Auth.Login(ctx, req.Email, req.Password)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toAuthResp(res))
}

// Logout deletes the session named by X-Session-Token. Always succeeds;
// logging out twice is fine.
func (h *AuthHandler) Logout(c echo.Context) error {
	token := c.Request().Header.Get("X-Session-Token")

	ctx, cancel := reqCtx(c)
	defer cancel()

	if token != "" {
		if err := h.Auth.Logout(ctx, token); err != nil {
			c.Logger().Warnf("logout: session delete failed: %v", err)
		}
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true})
}
