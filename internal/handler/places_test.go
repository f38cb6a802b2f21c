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

func newPlacesApp(conn database.Conn) *fiber.App {
	app := fiber.New()
	h := NewPlacesHandler(repository.NewPlaceRepository(conn), zap.NewNop())
	app.Get("/v1/places", h.ListPlaces)
	app.Get("/v1/places/search", h.SearchPlaces)
	app.Get("/v1/places/stats", h.PlaceStats)
	app.Get("/v1/places/:slug", h.GetPlace)
	return app
}

func TestPlacesHandler_ListPlaces(t *testing.T) {
	conn := &stubConn{rows: []database.Row{placeRow("gukbap-alley")}, total: 25}
	app := newPlacesApp(conn)

	req := httptest.NewRequest(http.MethodGet, "/v1/places?sido=서울특별시&page=2&limit=10", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Data       []domain.Place    `json:"data"`
		Pagination domain.Pagination `json:"pagination"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Data, 1)
	assert.Equal(t, "gukbap-alley", body.Data[0].Slug)
	assert.Equal(t, domain.Pagination{Page: 2, Limit: 10, Total: 25, TotalPages: 3, HasMore: true}, body.Pagination)
}

func TestPlacesHandler_GetPlace(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		conn := &stubConn{rows: []database.Row{placeRow("gukbap-alley")}}
		app := newPlacesApp(conn)

		req := httptest.NewRequest(http.MethodGet, "/v1/places/gukbap-alley", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var place domain.Place
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&place))
		assert.Equal(t, "Place gukbap-alley", place.Name)
	})

	t.Run("absent slug is a 404", func(t *testing.T) {
		conn := &stubConn{}
		app := newPlacesApp(conn)

		req := httptest.NewRequest(http.MethodGet, "/v1/places/no-such-place", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestPlacesHandler_SearchPlaces(t *testing.T) {
	t.Run("requires a term", func(t *testing.T) {
		app := newPlacesApp(&stubConn{})

		req := httptest.NewRequest(http.MethodGet, "/v1/places/search", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("returns ranked matches", func(t *testing.T) {
		conn := &stubConn{rows: []database.Row{placeRow("gukbap-alley")}, total: 1}
		app := newPlacesApp(conn)

		req := httptest.NewRequest(http.MethodGet, "/v1/places/search?q=%EA%B5%AD%EB%B0%A5", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})
}

func TestPlacesHandler_PlaceStats(t *testing.T) {
	conn := &stubConn{rows: []database.Row{
		database.NewRow([]string{"sido", "total"}, []any{"서울특별시", int64(120)}),
	}}
	app := newPlacesApp(conn)

	req := httptest.NewRequest(http.MethodGet, "/v1/places/stats", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]json.RawMessage
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Contains(t, body, "regions")
	assert.Contains(t, body, "categories")
}
