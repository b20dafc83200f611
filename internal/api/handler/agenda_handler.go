package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/campusgrid/timetable-portal/internal/api/metrics"
	"github.com/campusgrid/timetable-portal/internal/core/domain"
	"github.com/campusgrid/timetable-portal/internal/core/ports"
)

// AgendaHandler serves the student weekly agenda.
type AgendaHandler struct {
	service ports.AgendaService
	logger  zerolog.Logger
}

func NewAgendaHandler(service ports.AgendaService, logger zerolog.Logger) *AgendaHandler {
	return &AgendaHandler{service: service, logger: logger}
}

// Get handles GET /v1/timetable/agenda.
//
// A store fetch failure is deliberately not surfaced as an error: the client
// gets the explicit empty state and the problem is logged server-side. The
// live stream can recover the view on the next change event.
//
// @Summary      Weekly agenda for the caller's level
// @Tags         timetable
// @Produce      json
// @Security     BearerAuth
// @Param        level  query     string  false  "Level override (admin only)"
// @Success      200    {object}  agendaResponse
// @Failure      401    {object}  errorResponse
// @Router       /v1/timetable/agenda [get]
func (h *AgendaHandler) Get(c echo.Context) error {
	ident, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	level := ident.Level
	if ident.Role == domain.RoleAdmin {
		if override := c.QueryParam("level"); override != "" {
			level = override
		}
	}

	start := time.Now()
	result, err := h.service.WeeklyAgenda(c.Request().Context(), level)
	metrics.AgendaRebuildDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.AgendaFetchesTotal.WithLabelValues("error").Inc()
		if errors.Is(err, domain.ErrFetchFailed) {
			return c.JSON(http.StatusOK, emptyAgendaResponse(level))
		}
		return err
	}

	metrics.AgendaFetchesTotal.WithLabelValues("ok").Inc()
	return c.JSON(http.StatusOK, toAgendaResponse(result))
}
