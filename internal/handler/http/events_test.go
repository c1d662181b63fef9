package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shiftgrid/scheduler-backend-go/internal/pkg/bus"
	"github.com/shiftgrid/scheduler-backend-go/internal/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eventsTestSecret = "test-secret-key-for-jwt"

func newTestEventsHandler() (EventsHandler, jwt.Service) {
	jwtService := jwt.NewJWTService(eventsTestSecret, "1h")
	return NewEventsHandler(bus.NewBus(), jwtService), jwtService
}

func TestEventsStream_MissingToken(t *testing.T) {
	t.Parallel()
	handler, _ := newTestEventsHandler()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/events?organization_id=org-1", nil)
	rec := httptest.NewRecorder()

	handler.Stream(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestEventsStream_InvalidToken(t *testing.T) {
	t.Parallel()
	handler, _ := newTestEventsHandler()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/events?organization_id=org-1&token=not-a-jwt", nil)
	rec := httptest.NewRecorder()

	handler.Stream(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestEventsStream_MissingOrganizationID(t *testing.T) {
	t.Parallel()
	handler, jwtService := newTestEventsHandler()

	token, _, err := jwtService.GenerateAccessToken("user-1", nil)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/events?token="+token, nil)
	rec := httptest.NewRecorder()

	handler.Stream(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestEventsStream_ConnectsWithValidToken(t *testing.T) {
	t.Parallel()
	handler, jwtService := newTestEventsHandler()

	token, _, err := jwtService.GenerateAccessToken("user-1", nil)
	require.NoError(t, err)

	// A pre-cancelled context lets the stream write its connected event
	// and tear down immediately instead of blocking the test.
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/events?organization_id=org-1&token="+token, nil).WithContext(ctx)
	rec := httptest.NewRecorder()

	handler.Stream(rec, req)

	assert.Equal(t, "text/event-stream", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), "event: connected")
	assert.Contains(t, rec.Body.String(), "org-1")
}
