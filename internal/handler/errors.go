package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/journalup/journal-up/internal/apperr"
)

// errorBody is the uniform error envelope: {"error":{"code","message"}}.
type errorBody struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// HTTPErrorHandler translates errors into the error envelope. Typed
// errors carry their own status and code; everything else is logged and
// becomes an opaque 500 so internals never leak to clients.
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status := http.StatusInternalServerError
	detail := errorDetail{Code: "INTERNAL_ERROR", Message: "internal server error"}

	if e := apperr.From(err); e != nil {
		status = e.Status
		detail = errorDetail{Code: e.Code, Message: e.Message}
	} else if he, ok := err.(*echo.HTTPError); ok {
		status = he.Code
		switch status {
		case http.StatusNotFound:
			detail = errorDetail{Code: "NOT_FOUND", Message: "route not found"}
		case http.StatusMethodNotAllowed:
			detail = errorDetail{Code: "METHOD_NOT_ALLOWED", Message: "method not allowed"}
		default:
			c.Logger().Errorf("http error: %v", err)
		}
	} else {
		c.Logger().Errorf("unhandled error: %v", err)
	}

	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(status)
		return
	}
	_ = c.JSON(status, errorBody{Error: detail})
}
