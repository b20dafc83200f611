package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/campusgrid/timetable-portal/internal/core/domain"
	"github.com/campusgrid/timetable-portal/internal/core/ports"
)

type stubTimetableService struct {
	created   *ports.EntryInput
	deletedID string
}

func (s *stubTimetableService) Create(_ context.Context, input ports.EntryInput) (*domain.TimetableEntry, error) {
	s.created = &input
	return &domain.TimetableEntry{ID: "e1", CourseID: input.CourseID, Level: "100 ICT"}, nil
}

func (s *stubTimetableService) Update(_ context.Context, id string, input ports.EntryInput) (*domain.TimetableEntry, error) {
	return &domain.TimetableEntry{ID: id, CourseID: input.CourseID}, nil
}

func (s *stubTimetableService) Delete(_ context.Context, id string) error {
	s.deletedID = id
	return nil
}

func (s *stubTimetableService) List(_ context.Context) ([]domain.TimetableEntry, error) {
	return []domain.TimetableEntry{{ID: "e1"}}, nil
}

func newEntryContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestTimetableHandler_Create(t *testing.T) {
	svc := &stubTimetableService{}
	h := NewTimetableHandler(svc)

	body := `{"course_id":"c1","day_of_week":"Monday","start_time":"09:00","end_time":"10:00","room":"101"}`
	c, rec := newEntryContext(http.MethodPost, "/v1/admin/timetable", body)

	if err := h.Create(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Errorf("status = %d, want 201", rec.Code)
	}
	if svc.created == nil || svc.created.DayOfWeek != "Monday" {
		t.Errorf("service input = %+v", svc.created)
	}
}

func TestTimetableHandler_CreateRejectsBadPayload(t *testing.T) {
	h := NewTimetableHandler(&stubTimetableService{})

	cases := []struct {
		name, body string
	}{
		{"weekend day", `{"course_id":"c1","day_of_week":"Saturday","start_time":"09:00","end_time":"10:00","room":"101"}`},
		{"time wrong length", `{"course_id":"c1","day_of_week":"Monday","start_time":"9:00","end_time":"10:00","room":"101"}`},
		{"missing course", `{"day_of_week":"Monday","start_time":"09:00","end_time":"10:00","room":"101"}`},
		{"missing room", `{"course_id":"c1","day_of_week":"Monday","start_time":"09:00","end_time":"10:00"}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, rec := newEntryContext(http.MethodPost, "/v1/admin/timetable", tc.body)
			if err := h.Create(c); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", rec.Code)
			}
		})
	}
}

func TestTimetableHandler_Delete(t *testing.T) {
	svc := &stubTimetableService{}
	h := NewTimetableHandler(svc)

	c, rec := newEntryContext(http.MethodDelete, "/v1/admin/timetable/e7", "")
	c.SetParamNames("id")
	c.SetParamValues("e7")

	if err := h.Delete(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Errorf("status = %d, want 204", rec.Code)
	}
	if svc.deletedID != "e7" {
		t.Errorf("deleted id = %q", svc.deletedID)
	}
}

var _ ports.TimetableService = (*stubTimetableService)(nil)
