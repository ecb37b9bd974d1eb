package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"consigna/internal/service"
)

type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// writeServiceError maps service errors onto the JSON error envelope.
// Upstream failures keep their original message: the contract passes the
// store/transport error text through to the caller untouched.
func writeServiceError(c echo.Context, err error) error {
	var upstreamErr *service.UpstreamError
	switch {
	case errors.Is(err, service.ErrInvalid):
		return Error(c, http.StatusBadRequest, "missing required fields")
	case errors.Is(err, service.ErrForbidden):
		return Error(c, http.StatusForbidden, "file is outside your namespace")
	case errors.As(err, &upstreamErr):
		return Error(c, http.StatusInternalServerError, upstreamErr.Error())
	default:
		c.Logger().Error(err)
		return Error(c, http.StatusInternalServerError, err.Error())
	}
}

// Error returns a JSON error envelope with the given status and message.
func Error(c echo.Context, status int, message string) error {
	return c.JSON(status, errorResponse{Success: false, Error: message})
}
