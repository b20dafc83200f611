package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/campusgrid/timetable-portal/internal/core/domain"
	"github.com/campusgrid/timetable-portal/internal/core/ports"
)

// AnnouncementHandler serves announcements to students and administrators.
type AnnouncementHandler struct {
	service ports.AnnouncementService
}

func NewAnnouncementHandler(service ports.AnnouncementService) *AnnouncementHandler {
	return &AnnouncementHandler{service: service}
}

type announcementRequest struct {
	Message string `json:"message" validate:"required"`
	Level   string `json:"level"` // empty = broadcast
}

// ListForUser handles GET /v1/announcements, what the caller should see:
// announcements targeting their level plus broadcasts. Admins see everything.
//
// @Summary      Announcements for the caller
// @Tags         announcements
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Announcement
// @Failure      401  {object}  errorResponse
// @Router       /v1/announcements [get]
func (h *AnnouncementHandler) ListForUser(c echo.Context) error {
	ident, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var announcements []domain.Announcement
	if ident.Role == domain.RoleAdmin {
		announcements, err = h.service.List(c.Request().Context())
	} else {
		announcements, err = h.service.ListForLevel(c.Request().Context(), ident.Level)
	}
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, announcements)
}

// List handles GET /v1/admin/announcements.
//
// @Summary      List all announcements
// @Tags         announcements
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Announcement
// @Router       /v1/admin/announcements [get]
func (h *AnnouncementHandler) List(c echo.Context) error {
	announcements, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, announcements)
}

// Create handles POST /v1/admin/announcements.
//
// @Summary      Post an announcement
// @Tags         announcements
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      announcementRequest  true  "Message; empty level broadcasts to all"
// @Success      201   {object}  domain.Announcement
// @Failure      400   {object}  errorResponse
// @Router       /v1/admin/announcements [post]
func (h *AnnouncementHandler) Create(c echo.Context) error {
	ident, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req announcementRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	created, err := h.service.Create(c.Request().Context(), ident, ports.AnnouncementInput{
		Message: req.Message,
		Level:   req.Level,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, created)
}

// Update handles PUT /v1/admin/announcements/:id.
//
// @Summary      Edit an announcement
// @Tags         announcements
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string               true  "Announcement id"
// @Param        body  body      announcementRequest  true  "Message"
// @Success      200   {object}  domain.Announcement
// @Failure      404   {object}  errorResponse
// @Router       /v1/admin/announcements/{id} [put]
func (h *AnnouncementHandler) Update(c echo.Context) error {
	var req announcementRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	updated, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.AnnouncementInput{
		Message: req.Message,
		Level:   req.Level,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, updated)
}

// Delete handles DELETE /v1/admin/announcements/:id.
//
// @Summary      Delete an announcement
// @Tags         announcements
// @Security     BearerAuth
// @Param        id  path  string  true  "Announcement id"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /v1/admin/announcements/{id} [delete]
func (h *AnnouncementHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
