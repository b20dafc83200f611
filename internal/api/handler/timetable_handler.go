package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/campusgrid/timetable-portal/internal/core/ports"
)

// TimetableHandler is the admin CRUD surface for scheduled classes.
type TimetableHandler struct {
	service ports.TimetableService
}

func NewTimetableHandler(service ports.TimetableService) *TimetableHandler {
	return &TimetableHandler{service: service}
}

type entryRequest struct {
	CourseID  string `json:"course_id"   validate:"required"`
	DayOfWeek string `json:"day_of_week" validate:"required,oneof=Monday Tuesday Wednesday Thursday Friday"`
	StartTime string `json:"start_time"  validate:"required,len=5"`
	EndTime   string `json:"end_time"    validate:"required,len=5"`
	Room      string `json:"room"        validate:"required"`
}

func (r entryRequest) toInput() ports.EntryInput {
	return ports.EntryInput{
		CourseID:  r.CourseID,
		DayOfWeek: r.DayOfWeek,
		StartTime: r.StartTime,
		EndTime:   r.EndTime,
		Room:      r.Room,
	}
}

// List handles GET /v1/admin/timetable.
//
// @Summary      List all timetable entries
// @Tags         timetable
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.TimetableEntry
// @Failure      403  {object}  errorResponse
// @Router       /v1/admin/timetable [get]
func (h *TimetableHandler) List(c echo.Context) error {
	entries, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, entries)
}

// Create handles POST /v1/admin/timetable.
//
// @Summary      Schedule a class
// @Tags         timetable
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      entryRequest  true  "Entry details; times are 24h HH:MM"
// @Success      201   {object}  domain.TimetableEntry
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/admin/timetable [post]
func (h *TimetableHandler) Create(c echo.Context) error {
	var req entryRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	entry, err := h.service.Create(c.Request().Context(), req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, entry)
}

// Update handles PUT /v1/admin/timetable/:id.
//
// @Summary      Update a scheduled class
// @Tags         timetable
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string        true  "Entry id"
// @Param        body  body      entryRequest  true  "Entry details"
// @Success      200   {object}  domain.TimetableEntry
// @Failure      404   {object}  errorResponse
// @Router       /v1/admin/timetable/{id} [put]
func (h *TimetableHandler) Update(c echo.Context) error {
	var req entryRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	entry, err := h.service.Update(c.Request().Context(), c.Param("id"), req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, entry)
}

// Delete handles DELETE /v1/admin/timetable/:id.
//
// @Summary      Remove a scheduled class
// @Tags         timetable
// @Security     BearerAuth
// @Param        id  path  string  true  "Entry id"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /v1/admin/timetable/{id} [delete]
func (h *TimetableHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
