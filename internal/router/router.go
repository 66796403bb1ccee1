// Package router maps the HTTP surface onto handlers. Route paths are
// declared here and nowhere else; middleware is wired in cmd/server.
package router

import (
	"database/sql"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/journalup/journal-up/internal/handler"
)

// Handlers bundles every handler the router needs.
type Handlers struct {
	Auth     *handler.AuthHandler
	Metrics  *handler.MetricsHandler
	Journals *handler.JournalHandler
	Settings *handler.SettingsHandler
	UserInfo *handler.UserInfoHandler
	AI       *handler.AIHandler
}

// Register wires up the full API. The auth gate middleware decides per
// path whether credentials are required, so public and protected routes
// are registered the same way here.
func Register(e *echo.Echo, db *sql.DB, h Handlers) {
	// operational endpoints; /metricsz avoids clashing with the
	// user-facing /metrics API
	e.GET("/healthz", handler.Health(db))
	e.GET("/metricsz", echo.WrapHandler(promhttp.Handler()))

	auth := e.Group("/auth")
	auth.POST("/signup", h.Auth.Signup)
	auth.POST("/login", h.Auth.Login)
	auth.POST("/logout", h.Auth.Logout)

	e.POST("/metrics", h.Metrics.Record)
	e.GET("/metrics", h.Metrics.List)
	e.GET("/metrics/analysis", h.Metrics.Analyze)

	e.POST("/journals", h.Journals.Create)
	e.GET("/journals", h.Journals.List)
	e.POST("/journals/:journalId/entries", h.Journals.CreateEntry)
	e.GET("/journals/:journalId/entries", h.Journals.ListEntries)
	e.PATCH("/journals/:journalId/entries/:entryId", h.Journals.UpdateEntry)

	e.GET("/settings", h.Settings.Get)
	e.PATCH("/settings", h.Settings.Update)

	e.GET("/user-info", h.UserInfo.Get)
	e.POST("/user-info", h.UserInfo.Create)
	e.PATCH("/user-info", h.UserInfo.Update)
	e.DELETE("/user-info", h.UserInfo.Delete)

	e.POST("/ai/chat", h.AI.Chat)
}
