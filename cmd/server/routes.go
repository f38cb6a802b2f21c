package main

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// registerRoutes wires the HTTP surface. The API is read-only: writes go
// through the repositories from ingestion and editorial tooling, not HTTP.
func registerRoutes(app *fiber.App, deps *Dependencies) {
	// Health and probes
	app.Get("/health", deps.HealthHandler.Health)
	app.Get("/livez", deps.HealthHandler.Liveness)
	app.Get("/readyz", deps.HealthHandler.Readiness)

	// Prometheus metrics
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	v1 := app.Group("/v1")

	places := v1.Group("/places")
	places.Get("/", deps.PlacesHandler.ListPlaces)
	places.Get("/search", deps.PlacesHandler.SearchPlaces)
	places.Get("/stats", deps.PlacesHandler.PlaceStats)
	places.Get("/:slug", deps.PlacesHandler.GetPlace)

	posts := v1.Group("/posts")
	posts.Get("/", deps.PostsHandler.ListPosts)
	posts.Get("/search", deps.PostsHandler.SearchPosts)
	posts.Get("/stats", deps.PostsHandler.PostStats)
	posts.Get("/:slug", deps.PostsHandler.GetPost)

	events := v1.Group("/events")
	events.Get("/", deps.EventsHandler.ListEvents)
	events.Get("/search", deps.EventsHandler.SearchEvents)
	events.Get("/stats", deps.EventsHandler.EventStats)
	events.Get("/:slug", deps.EventsHandler.GetEvent)
}
