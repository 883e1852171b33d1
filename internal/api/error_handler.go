package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/smartoffice/room-booking-api/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API failures.
type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Substitutes generic messages for store failures instead of leaking
//     driver internals; other kinds pass their message through verbatim.
//   - Renders a consistent envelope: {"success":false,"error":"<message>"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Success: false, Error: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, gate rejections).
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Known domain errors → deterministic HTTP codes.
	switch {
	case errors.Is(err, domain.ErrRoomRequired),
		errors.Is(err, domain.ErrRoomDataRequired),
		errors.Is(err, domain.ErrUserNotInBooking):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, domain.ErrInvalidPassword),
		errors.Is(err, domain.ErrTokenRevoked):
		return http.StatusUnauthorized, err.Error()
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, err.Error()
	case errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrRoomNotFound),
		errors.Is(err, domain.ErrBookingNotFound),
		errors.Is(err, domain.ErrUsersNotFound):
		return http.StatusNotFound, err.Error()
	case errors.Is(err, domain.ErrUserExists):
		return http.StatusConflict, err.Error()
	case errors.Is(err, domain.ErrRoomHasBookings):
		return http.StatusConflict, err.Error()
	}

	// Store failure: log the real cause, return the generic message.
	if errors.Is(err, domain.ErrDatabase) {
		log.Error().
			Err(err).
			Str("method", c.Request().Method).
			Str("path", c.Path()).
			Msg("database error")
		return http.StatusInternalServerError, "Database error"
	}

	// Unexpected error: same treatment, different label.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "Server Error"
}
