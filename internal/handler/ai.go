package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/journalup/journal-up/internal/ai"
	"github.com/journalup/journal-up/internal/apperr"
	"github.com/journalup/journal-up/internal/middleware"
)

// AIHandler is the chat passthrough to the configured AI provider.
type AIHandler struct {
	AI ai.Client
}

func NewAIHandler(client ai.Client) *AIHandler { return &AIHandler{AI: client} }

type chatReq struct {
	Message string `json:"message"`
}

// Chat forwards a single user message and returns the provider's reply.
// With no provider configured the endpoint reports the feature disabled
// rather than pretending to answer.
func (h *AIHandler) Chat(c echo.Context) error {
	var req chatReq
	if err := c.Bind(&req); err != nil {
		return apperr.Validation("invalid body")
	}
	if strings.TrimSpace(req.Message) == "" {
		return apperr.Validation("message is required")
	}

	ctx, cancel := reqCtxLong(c)
	defer cancel()

	reply, err := h.AI.Chat(ctx, middleware.UserID(c), req.Message)
	if err != nil {
		if errors.Is(err, ai.ErrDisabled) {
			return apperr.Validation("ai features are disabled")
		}
		c.Logger().Errorf("ai chat failed: %v", err)
		return apperr.Internal("AI_ERROR", "failed to generate a response")
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "message": reply})
}
