package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/journalup/journal-up/internal/apperr"
	"github.com/journalup/journal-up/internal/middleware"
	"github.com/journalup/journal-up/internal/model"
	"github.com/journalup/journal-up/internal/service"
)

// MetricsHandler serves the growth-metric endpoints.
type MetricsHandler struct {
	Metrics *service.MetricsService
}

func NewMetricsHandler(m *service.MetricsService) *MetricsHandler {
	return &MetricsHandler{Metrics: m}
}

type recordMetricReq struct {
	Type  string `json:"type"`
	Value int    `json:"value"`
	Notes string `json:"notes"`
}

// Record appends one self-assessment for the authenticated user.
func (h *MetricsHandler) Record(c echo.Context) error {
	var req recordMetricReq
	if err := c.Bind(&req); err != nil {
		return apperr.Validation("invalid body")
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	metric, err := h.Metrics.RecordMetric(ctx, middleware.UserID(c), model.MetricType(req.Type), req.Value, req.Notes)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "metric": metric})
}

// List returns the user's metrics, optionally bounded by the startDate
// and endDate query parameters (RFC 3339). Both must be given together.
func (h *MetricsHandler) List(c echo.Context) error {
	var timeRange *model.DateRange
	startRaw, endRaw := c.QueryParam("startDate"), c.QueryParam("endDate")
	if startRaw != "" || endRaw != "" {
		start, err := time.Parse(time.RFC3339, startRaw)
		if err != nil {
			return apperr.Validation("invalid startDate")
		}
		end, err := time.Parse(time.RFC3339, endRaw)
		if err != nil {
			return apperr.Validation("invalid endDate")
		}
		timeRange = &model.DateRange{Start: start, End: end}
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	metrics, err := h.Metrics.GetMetrics(ctx, middleware.UserID(c), timeRange)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "metrics": metrics})
}

// Analyze runs the 30-day trend analysis for the authenticated user. The
// AI call can be slow, so this handler uses a longer deadline than the
// plain DB endpoints.
func (h *MetricsHandler) Analyze(c echo.Context) error {
	ctx, cancel := reqCtxLong(c)
	defer cancel()

	analysis, err := h.Metrics.AnalyzeProgress(ctx, middleware.UserID(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "analysis": analysis})
}
