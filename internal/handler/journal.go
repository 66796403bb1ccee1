package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/journalup/journal-up/internal/apperr"
	"github.com/journalup/journal-up/internal/middleware"
	"github.com/journalup/journal-up/internal/service"
)

// JournalHandler serves journal and entry endpoints.
type JournalHandler struct {
	Journals *service.JournalService
}

func NewJournalHandler(j *service.JournalService) *JournalHandler {
	return &JournalHandler{Journals: j}
}

type createJournalReq struct {
	Title string `json:"title"`
}

type createEntryReq struct {
	Content string `json:"content"`
}

// Create starts a new journal for the authenticated user.
func (h *JournalHandler) Create(c echo.Context) error {
	var req createJournalReq
	if err := c.Bind(&req); err != nil {
		return apperr.Validation("invalid body")
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	journal, err := h.Journals.CreateJournal(ctx, middleware.UserID(c), req.Title)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "journal": journal})
}

// List returns the user's journals, newest first.
func (h *JournalHandler) List(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	journals, err := h.Journals.GetJournals(ctx, middleware.UserID(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "journals": journals})
}

// CreateEntry appends an entry to one of the user's journals.
func (h *JournalHandler) CreateEntry(c echo.Context) error {
	var req createEntryReq
	if err := c.Bind(&req); err != nil {
		return apperr.Validation("invalid body")
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	entry, err := h.Journals.CreateEntry(ctx, middleware.UserID(c), c.Param("journalId"), req.Content)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "entry": entry})
}

// UpdateEntry rewrites an entry in one of the user's journals.
func (h *JournalHandler) UpdateEntry(c echo.Context) error {
	var req createEntryReq
	if err := c.Bind(&req); err != nil {
		return apperr.Validation("invalid body")
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	entry, err := h.Journals.UpdateEntry(ctx, middleware.UserID(c), c.Param("journalId"), c.Param("entryId"), req.Content)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "entry": entry})
}

// ListEntries returns a journal's entries, oldest first.
func (h *JournalHandler) ListEntries(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	entries, err := h.Journals.GetEntries(ctx, middleware.UserID(c), c.Param("journalId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "entries": entries})
}
