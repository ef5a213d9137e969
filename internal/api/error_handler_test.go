package api

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/crewbase/recruiting-system/internal/core/domain"
)

func TestHTTPErrorHandler_MapsDomainErrors(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{domain.ErrContractorNotFound, http.StatusNotFound},
		{domain.ErrKeywordNotFound, http.StatusNotFound},
		{domain.ErrTaskNotFound, http.StatusNotFound},
		{domain.ErrObjectNotFound, http.StatusNotFound},
		{domain.ErrForbidden, http.StatusForbidden},
		{domain.ErrInvalidCredentials, http.StatusUnauthorized},
		{domain.ErrInvalidSignedURL, http.StatusUnauthorized},
		{domain.ErrEmployeeExists, http.StatusConflict},
		{domain.ErrObjectExists, http.StatusConflict},
		{domain.ErrInvalidKeyword, http.StatusUnprocessableEntity},
		{domain.ErrInvalidCategory, http.StatusUnprocessableEntity},
		{domain.ErrUnsupportedDocument, http.StatusUnprocessableEntity},
		{domain.ErrUpstream, http.StatusBadGateway},
		{errors.New("something unexpected"), http.StatusInternalServerError},
	}

	e := echo.New()
	handle := NewHTTPErrorHandler(zerolog.Nop())

	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		handle(tc.err, c)

		if rec.Code != tc.code {
			t.Fatalf("error %v: expected %d, got %d", tc.err, tc.code, rec.Code)
		}
	}
}

func TestHTTPErrorHandler_UnwrapsWrappedErrors(t *testing.T) {
	e := echo.New()
	handle := NewHTTPErrorHandler(zerolog.Nop())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handle(fmt.Errorf("llm: generate: boom: %w", domain.ErrUpstream), c)

	if rec.Code != http.StatusBadGateway {
		t.Fatalf("expected 502 for wrapped upstream error, got %d", rec.Code)
	}
}

func TestHTTPErrorHandler_PassesEchoErrorsThrough(t *testing.T) {
	e := echo.New()
	handle := NewHTTPErrorHandler(zerolog.Nop())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handle(echo.NewHTTPError(http.StatusTeapot, "short and stout"), c)

	if rec.Code != http.StatusTeapot {
		t.Fatalf("expected 418, got %d", rec.Code)
	}
}
