package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/shiftgrid/scheduler-backend-go/internal/handler/http/response"
	"github.com/shiftgrid/scheduler-backend-go/internal/pkg/bus"
	"github.com/shiftgrid/scheduler-backend-go/internal/pkg/jwt"
)

type EventsHandler interface {
	Stream(w http.ResponseWriter, r *http.Request)
}

type eventsHandlerImpl struct {
	bus        *bus.Bus
	jwtService jwt.Service
}

func NewEventsHandler(eventBus *bus.Bus, jwtService jwt.Service) EventsHandler {
	return &eventsHandlerImpl{
		bus:        eventBus,
		jwtService: jwtService,
	}
}

// Stream handles the SSE connection sibling views use to refresh after a
// mutation elsewhere. Subscriptions are registered on connect and cleaned
// up when the client goes away.
func (h *eventsHandlerImpl) Stream(w http.ResponseWriter, r *http.Request) {
	// EventSource cannot set an Authorization header, so the access token
	// travels as a query parameter and is checked here.
	tokenStr := r.URL.Query().Get("token")
	if tokenStr == "" {
		response.Unauthorized(w, "Missing token")
		return
	}
	if _, err := h.jwtService.ValidateAccessToken(tokenStr); err != nil {
		response.Unauthorized(w, "Invalid token")
		return
	}

	organizationID := r.URL.Query().Get("organization_id")
	if organizationID == "" {
		response.BadRequest(w, "organization_id query parameter is required", nil)
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming not supported", http.StatusInternalServerError)
		return
	}

	// Set SSE headers
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")

	events, cleanup := h.bus.Subscribe(organizationID)
	defer cleanup()

	fmt.Fprintf(w, "event: connected\ndata: {\"status\":\"connected\",\"organization_id\":%q}\n\n", organizationID)
	flusher.Flush()

	keepalive := time.NewTicker(30 * time.Second)
	defer keepalive.Stop()

	for {
		select {
		case event, ok := <-events:
			if !ok {
				return
			}
			data, err := json.Marshal(event.Data)
			if err != nil {
				continue
			}
			fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event.Topic, data)
			flusher.Flush()

		case <-keepalive.C:
			fmt.Fprintf(w, "event: ping\ndata: {\"timestamp\":%d}\n\n", time.Now().Unix())
			flusher.Flush()

		case <-r.Context().Done():
			return
		}
	}
}
