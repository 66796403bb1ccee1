// Package middleware contains reusable HTTP middleware: the combined
// session-and-token authentication gate, the Redis rate limiter and the
// Prometheus request instrumentation.
package middleware

import (
	"context"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/journalup/journal-up/internal/apperr"
	"github.com/journalup/journal-up/internal/utils"
)

// SessionValidator reports whether an opaque session token is live.
// Satisfied by service.AuthService.
type SessionValidator interface {
	ValidateSession(ctx context.Context, sessionToken string) bool
}

// publicPaths are reachable without credentials. Everything else behind
// the gate requires both a bearer token and a session token.
var publicPaths = []string{
	"/auth/",
	"/healthz",
	"/metricsz",
	"/docs",
}

func isPublicPath(path string) bool {
	for _, p := range publicPaths {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

// Auth returns the authentication gate. A request must present a
// Bearer access token in Authorization and the opaque session token in
// X-Session-Token. The session is checked first: a revoked session makes
// the signed token worthless immediately, so there is no point verifying
// the signature of a token whose session is already gone.
//
// On success the token's subject and email are stored in the context as
// "user_id" and "email" for handlers to read via c.Get().
func Auth(secret string, sessions SessionValidator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if isPublicPath(c.Request().URL.Path) {
				return next(c)
			}

			sessionToken := c.Request().Header.Get("X-Session-Token")
			auth := c.Request().Header.Get("Authorization")
			if sessionToken == "" || !strings.HasPrefix(auth, "Bearer ") {
				return apperr.Authentication("missing authentication")
			}
			raw := strings.TrimPrefix(auth, "Bearer ")
			if raw == "" {
				return apperr.Authentication("missing authentication")
			}

			if !sessions.ValidateSession(c.Request().Context(), sessionToken) {
				return apperr.Authentication("session is invalid or expired")
			}

			claims, err := utils.VerifyToken(secret, raw)
			if err != nil {
				return apperr.Authentication("invalid token")
			}

			c.Set("user_id", claims.UserID)
			c.Set("email", claims.Email)
			return next(c)
		}
	}
}

// UserID reads the authenticated user id set by Auth. Empty when the
// request did not pass through the gate.
func UserID(c echo.Context) string {
	if v, ok := c.Get("user_id").(string); ok {
		return v
	}
	return ""
}
