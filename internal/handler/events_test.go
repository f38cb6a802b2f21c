package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/kolocal/kolocal-api/internal/domain"
	"github.com/kolocal/kolocal-api/internal/pkg/database"
	"github.com/kolocal/kolocal-api/internal/repository"
)

func newEventsApp(conn database.Conn) *fiber.App {
	app := fiber.New()
	h := NewEventsHandler(repository.NewEventRepository(conn), zap.NewNop())
	app.Get("/v1/events", h.ListEvents)
	app.Get("/v1/events/search", h.SearchEvents)
	app.Get("/v1/events/:slug", h.GetEvent)
	return app
}

func TestEventsHandler_ListEvents(t *testing.T) {
	conn := &stubConn{rows: []database.Row{eventRow("sand-festival")}, total: 1}
	app := newEventsApp(conn)

	req := httptest.NewRequest(http.MethodGet, "/v1/events?type=festival", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Data []domain.Event `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Data, 1)
	assert.Equal(t, "2025-06-01", body.Data[0].StartDate)
}

func TestEventsHandler_GetEvent_AbsentSlugIs404(t *testing.T) {
	app := newEventsApp(&stubConn{})

	req := httptest.NewRequest(http.MethodGet, "/v1/events/no-such-event", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestEventsHandler_SearchEvents_RequiresTerm(t *testing.T) {
	app := newEventsApp(&stubConn{})

	req := httptest.NewRequest(http.MethodGet, "/v1/events/search", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
