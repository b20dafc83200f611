package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/campusgrid/timetable-portal/internal/core/ports"
)

// CourseHandler is the admin CRUD surface for courses.
type CourseHandler struct {
	service ports.CourseService
}

func NewCourseHandler(service ports.CourseService) *CourseHandler {
	return &CourseHandler{service: service}
}

type courseRequest struct {
	CourseCode  string `json:"course_code"  validate:"required"`
	CourseTitle string `json:"course_title" validate:"required"`
	Level       string `json:"level"        validate:"required"`
	LecturerID  string `json:"lecturer_id"`
}

func (r courseRequest) toInput() ports.CourseInput {
	return ports.CourseInput{
		CourseCode:  r.CourseCode,
		CourseTitle: r.CourseTitle,
		Level:       r.Level,
		LecturerID:  r.LecturerID,
	}
}

// List handles GET /v1/admin/courses.
//
// @Summary      List all courses
// @Tags         courses
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Course
// @Failure      403  {object}  errorResponse
// @Router       /v1/admin/courses [get]
func (h *CourseHandler) List(c echo.Context) error {
	courses, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, courses)
}

// Create handles POST /v1/admin/courses.
//
// @Summary      Create a course
// @Tags         courses
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      courseRequest  true  "Course details"
// @Success      201   {object}  domain.Course
// @Failure      400   {object}  errorResponse
// @Router       /v1/admin/courses [post]
func (h *CourseHandler) Create(c echo.Context) error {
	var req courseRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	course, err := h.service.Create(c.Request().Context(), req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, course)
}

// Update handles PUT /v1/admin/courses/:id.
//
// @Summary      Update a course
// @Tags         courses
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string         true  "Course id"
// @Param        body  body      courseRequest  true  "Course details"
// @Success      200   {object}  domain.Course
// @Failure      404   {object}  errorResponse
// @Router       /v1/admin/courses/{id} [put]
func (h *CourseHandler) Update(c echo.Context) error {
	var req courseRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	course, err := h.service.Update(c.Request().Context(), c.Param("id"), req.toInput())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, course)
}

// Delete handles DELETE /v1/admin/courses/:id.
//
// @Summary      Delete a course
// @Tags         courses
// @Security     BearerAuth
// @Param        id  path  string  true  "Course id"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /v1/admin/courses/{id} [delete]
func (h *CourseHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
