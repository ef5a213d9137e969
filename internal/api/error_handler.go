package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/crewbase/recruiting-system/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error string `json:"error"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"error": "<message>"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Error: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Known domain errors → deterministic HTTP codes.
	switch {
	case errors.Is(err, domain.ErrContractorNotFound):
		return http.StatusNotFound, "contractor not found"
	case errors.Is(err, domain.ErrKeywordNotFound):
		return http.StatusNotFound, "keyword not found"
	case errors.Is(err, domain.ErrTaskNotFound):
		return http.StatusNotFound, "task not found"
	case errors.Is(err, domain.ErrEmployeeNotFound):
		return http.StatusNotFound, "employee not found"
	case errors.Is(err, domain.ErrObjectNotFound):
		return http.StatusNotFound, "file not found"
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, "access forbidden"
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "invalid credentials"
	case errors.Is(err, domain.ErrInvalidSignedURL):
		return http.StatusUnauthorized, "signed url is invalid or expired"
	case errors.Is(err, domain.ErrEmployeeExists):
		return http.StatusConflict, "employee already exists"
	case errors.Is(err, domain.ErrObjectExists):
		return http.StatusConflict, "file already exists"
	case errors.Is(err, domain.ErrInvalidKeyword):
		return http.StatusUnprocessableEntity, err.Error()
	case errors.Is(err, domain.ErrInvalidCategory):
		return http.StatusUnprocessableEntity, err.Error()
	case errors.Is(err, domain.ErrUnsupportedDocument):
		return http.StatusUnprocessableEntity, err.Error()
	case errors.Is(err, domain.ErrEmptyDocument):
		return http.StatusUnprocessableEntity, err.Error()
	case errors.Is(err, domain.ErrUpstream):
		return http.StatusBadGateway, "upstream service failed"
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}
