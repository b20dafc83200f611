package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/campusgrid/timetable-portal/internal/api/metrics"
	"github.com/campusgrid/timetable-portal/internal/core/ports"
	"github.com/campusgrid/timetable-portal/internal/core/service"
)

// StreamHandler serves the live agenda stream over server-sent events. Each
// connection owns one live sync controller: subscriptions open when the
// request starts and are guaranteed closed when it ends, on every exit path.
type StreamHandler struct {
	feed   ports.ChangeFeed
	agenda ports.AgendaService
	logger zerolog.Logger
}

func NewStreamHandler(feed ports.ChangeFeed, agenda ports.AgendaService, logger zerolog.Logger) *StreamHandler {
	return &StreamHandler{feed: feed, agenda: agenda, logger: logger}
}

// Stream handles GET /v1/timetable/stream.
//
// @Summary      Live weekly agenda stream (SSE)
// @Tags         timetable
// @Produce      text/event-stream
// @Security     BearerAuth
// @Success      200  {string}  string  "agenda events"
// @Failure      401  {object}  errorResponse
// @Router       /v1/timetable/stream [get]
func (h *StreamHandler) Stream(c echo.Context) error {
	ident, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	w := c.Response()
	w.Header().Set(echo.HeaderContentType, "text/event-stream")
	w.Header().Set(echo.HeaderCacheControl, "no-cache")
	w.Header().Set(echo.HeaderConnection, "keep-alive")
	w.WriteHeader(http.StatusOK)

	metrics.SyncStreamsActive.Inc()
	defer metrics.SyncStreamsActive.Dec()

	ctx := c.Request().Context()
	ctrl := service.NewLiveSync(ident, h.feed, h.agenda, h.logger)
	ctrl.Start(ctx)
	defer ctrl.Close()

	// The initial fetch is done by Start; send its snapshot even when the
	// fetch failed, so the client renders the empty state immediately.
	snapshot, _ := ctrl.Snapshot()
	if err := writeAgendaEvent(w, snapshot); err != nil {
		return nil
	}
	// A successful initial fetch also queued an update; drop it so the same
	// snapshot is not sent twice.
	select {
	case <-ctrl.Updates():
	default:
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case snapshot := <-ctrl.Updates():
			if err := writeAgendaEvent(w, snapshot); err != nil {
				return nil
			}
		}
	}
}

func writeAgendaEvent(w *echo.Response, snapshot ports.AgendaResult) error {
	payload, err := json.Marshal(toAgendaResponse(&snapshot))
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "event: agenda\ndata: %s\n\n", payload); err != nil {
		return err
	}
	w.Flush()
	return nil
}
