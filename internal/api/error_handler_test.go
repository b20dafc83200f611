package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/campusgrid/timetable-portal/internal/core/domain"
)

func runErrorHandler(t *testing.T, err error) (*httptest.ResponseRecorder, errorResponse) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/anything", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)

	var resp errorResponse
	if uerr := json.Unmarshal(rec.Body.Bytes(), &resp); uerr != nil {
		t.Fatalf("decode body: %v", uerr)
	}
	return rec, resp
}

func TestErrorHandler_DomainErrorMapping(t *testing.T) {
	cases := []struct {
		err      error
		wantCode int
	}{
		{domain.ErrEntryNotFound, http.StatusNotFound},
		{domain.ErrCourseNotFound, http.StatusNotFound},
		{domain.ErrAnnouncementNotFound, http.StatusNotFound},
		{domain.ErrUserNotFound, http.StatusNotFound},
		{domain.ErrUserExists, http.StatusConflict},
		{domain.ErrInvalidCredentials, http.StatusUnauthorized},
		{domain.ErrForbidden, http.StatusForbidden},
		{domain.ErrInvalidWeekday, http.StatusUnprocessableEntity},
		{domain.ErrInvalidTimeRange, http.StatusUnprocessableEntity},
		{domain.ErrMalformedClock, http.StatusUnprocessableEntity},
	}
	for _, tc := range cases {
		t.Run(tc.err.Error(), func(t *testing.T) {
			rec, _ := runErrorHandler(t, tc.err)
			if rec.Code != tc.wantCode {
				t.Errorf("status = %d, want %d", rec.Code, tc.wantCode)
			}
		})
	}
}

func TestErrorHandler_WrappedDomainError(t *testing.T) {
	rec, _ := runErrorHandler(t, fmt.Errorf("validate entry: %w", domain.ErrInvalidWeekday))
	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("status = %d, want 422 for wrapped domain error", rec.Code)
	}
}

func TestErrorHandler_EchoHTTPErrorPassesThrough(t *testing.T) {
	rec, resp := runErrorHandler(t, echo.NewHTTPError(http.StatusTeapot, "short and stout"))
	if rec.Code != http.StatusTeapot {
		t.Errorf("status = %d", rec.Code)
	}
	if resp.Error != "short and stout" {
		t.Errorf("message = %q", resp.Error)
	}
}

func TestErrorHandler_UnknownErrorIsOpaque(t *testing.T) {
	rec, resp := runErrorHandler(t, errors.New("pq: connection refused on 10.0.0.3"))
	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", rec.Code)
	}
	if resp.Error != "internal server error" {
		t.Errorf("internal details leaked: %q", resp.Error)
	}
}
